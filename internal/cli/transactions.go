package cli

import (
	"context"
	"flag"
	"fmt"
	"strings"

	"github.com/dafibh/wealthflow/wealthflow-backend/internal/domain"
	"github.com/dafibh/wealthflow/wealthflow-backend/internal/service"
	"github.com/google/subcommands"
)

type transactionsCmd struct {
	app   *App
	limit int
}

func (*transactionsCmd) Name() string     { return "transactions" }
func (*transactionsCmd) Synopsis() string { return "list recorded transactions" }
func (*transactionsCmd) Usage() string {
	return `transactions [-limit <n>]

  Lists transactions in the order they were recorded. With -limit only the
  n most recent are shown.
`
}

func (c *transactionsCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.limit, "limit", 0, "show only the n most recent transactions")
}

func (c *transactionsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.limit < 0 {
		return c.app.usage("-limit must not be negative")
	}

	txs := c.app.Transactions.GetTransactions()
	if c.limit > 0 {
		txs = service.RecentTransactions(txs, c.limit)
	}

	if len(txs) == 0 {
		return c.app.print("No transactions yet.\n")
	}

	t := newTable("Date", "Description", "Category", "Amount")
	for _, tx := range txs {
		t.add(tx.Date.UTC().Format("2006-01-02 15:04"), tx.Description, tx.Category, c.app.signedMoney(tx.SignedAmount()))
	}
	return c.app.print("# Transactions\n\n" + t.String())
}

// entryCmd records an income or an expense, like the dashboard's quick entry
type entryCmd struct {
	app         *App
	txType      domain.TransactionType
	amount      string
	description string
}

func (c *entryCmd) Name() string { return string(c.txType) }
func (c *entryCmd) Synopsis() string {
	return fmt.Sprintf("record an %s", c.txType)
}
func (c *entryCmd) Usage() string {
	return fmt.Sprintf(`%s -amount <amount> -description <text>

  Records an %s dated now in the default category.
`, c.txType, c.txType)
}

func (c *entryCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.amount, "amount", "", "amount, a non-negative number (required)")
	f.StringVar(&c.description, "description", "", "what it was for (required)")
}

func (c *entryCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	description := c.description
	if description == "" && f.NArg() > 0 {
		description = strings.Join(f.Args(), " ")
	}

	tx, err := c.app.Transactions.RecordQuickEntry(ctx, c.txType, c.amount, description)
	if err != nil {
		return c.app.fail("could not record %s: %v", c.txType, err)
	}

	return c.app.print(fmt.Sprintf("Recorded %s **%s**: %s (%s)\n",
		tx.Type, c.app.money(tx.Amount), tx.Description, tx.Category))
}
