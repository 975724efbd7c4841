// Package cli implements the wealthflow terminal client. Every command works
// directly on the configured snapshot store and prints markdown, rendered
// for the terminal with glamour.
package cli

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/glamour"
	"github.com/dafibh/wealthflow/wealthflow-backend/internal/domain"
	"github.com/dafibh/wealthflow/wealthflow-backend/internal/service"
	"github.com/dafibh/wealthflow/wealthflow-backend/internal/util"
	"github.com/google/subcommands"
	"github.com/shopspring/decimal"
)

// Renderer turns markdown into terminal output
type Renderer func(markdown string) (string, error)

// App holds the services shared by every command
type App struct {
	Snapshots    *service.SnapshotService
	Transactions *service.TransactionService
	Portfolio    *service.PortfolioService
	Goals        *service.GoalService
	Dashboard    *service.DashboardService
	Advice       *service.AdviceService

	Currency string
	Out      io.Writer
	Err      io.Writer
	Render   Renderer
}

// NewApp wires the services over the snapshot service. Events are not
// published: the terminal client has no subscribers.
func NewApp(snapshots *service.SnapshotService, generator domain.TextGenerator, loc *time.Location, adviceTimeout time.Duration, currency string, out, errOut io.Writer) *App {
	return &App{
		Snapshots:    snapshots,
		Transactions: service.NewTransactionService(snapshots),
		Portfolio:    service.NewPortfolioService(snapshots),
		Goals:        service.NewGoalService(snapshots, loc),
		Dashboard:    service.NewDashboardService(snapshots, loc),
		Advice:       service.NewAdviceService(snapshots, generator, adviceTimeout),
		Currency:     currency,
		Out:          out,
		Err:          errOut,
		Render:       TerminalRenderer(),
	}
}

// TerminalRenderer renders markdown with glamour, picking a light or dark
// style from the terminal. Rendering falls back to the raw markdown if the
// renderer cannot be built.
func TerminalRenderer() Renderer {
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(100),
	)
	if err != nil {
		return PlainRenderer
	}
	return r.Render
}

// PlainRenderer prints markdown unchanged
func PlainRenderer(markdown string) (string, error) {
	return markdown, nil
}

// Commands returns every command of the client
func Commands(app *App) []subcommands.Command {
	return []subcommands.Command{
		&summaryCmd{app: app},
		&transactionsCmd{app: app},
		&entryCmd{app: app, txType: domain.TransactionTypeIncome},
		&entryCmd{app: app, txType: domain.TransactionTypeExpense},
		&portfolioCmd{app: app},
		&addAssetCmd{app: app},
		&removeAssetCmd{app: app},
		&setPriceCmd{app: app},
		&goalsCmd{app: app},
		&addGoalCmd{app: app},
		&contributeCmd{app: app},
		&monthlyIncomeCmd{app: app},
		&adviceCmd{app: app},
		&exportCmd{app: app},
		&importCmd{app: app},
		&resetCmd{app: app},
	}
}

// print renders markdown to the app's output
func (a *App) print(markdown string) subcommands.ExitStatus {
	out, err := a.Render(markdown)
	if err != nil {
		out = markdown
	}
	fmt.Fprint(a.Out, out)
	return subcommands.ExitSuccess
}

// fail reports err on the error stream
func (a *App) fail(format string, args ...interface{}) subcommands.ExitStatus {
	fmt.Fprintf(a.Err, "Error: "+format+"\n", args...)
	return subcommands.ExitFailure
}

// usage reports a bad invocation on the error stream
func (a *App) usage(format string, args ...interface{}) subcommands.ExitStatus {
	fmt.Fprintf(a.Err, "Error: "+format+"\n", args...)
	return subcommands.ExitUsageError
}

func (a *App) money(d decimal.Decimal) string {
	return util.FormatMoney(d, a.Currency)
}

func (a *App) signedMoney(d decimal.Decimal) string {
	return util.FormatSignedMoney(d, a.Currency)
}

// table is a small markdown table builder
type table struct {
	header []string
	rows   [][]string
}

func newTable(header ...string) *table {
	return &table{header: header}
}

func (t *table) add(cells ...string) {
	t.rows = append(t.rows, cells)
}

func (t *table) String() string {
	var b strings.Builder
	b.WriteString("| " + strings.Join(t.header, " | ") + " |\n")
	b.WriteString("|" + strings.Repeat(" --- |", len(t.header)) + "\n")
	for _, row := range t.rows {
		cells := make([]string, len(row))
		for i, c := range row {
			cells[i] = strings.ReplaceAll(c, "|", "\\|")
		}
		b.WriteString("| " + strings.Join(cells, " | ") + " |\n")
	}
	return b.String()
}
