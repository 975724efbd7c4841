package cli

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/dafibh/wealthflow/wealthflow-backend/internal/service"
	"github.com/google/subcommands"
)

type monthlyIncomeCmd struct {
	app    *App
	amount string
}

func (*monthlyIncomeCmd) Name() string     { return "monthly-income" }
func (*monthlyIncomeCmd) Synopsis() string { return "set the expected monthly income" }
func (*monthlyIncomeCmd) Usage() string {
	return `monthly-income -amount <amount>
`
}

func (c *monthlyIncomeCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.amount, "amount", "", "monthly income, non-negative (required)")
}

func (c *monthlyIncomeCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	amount, err := service.ParseAmount(c.amount)
	if err != nil {
		return c.app.usage("-amount must be a non-negative number")
	}
	updated, err := c.app.Snapshots.SetMonthlyIncome(ctx, amount)
	if err != nil {
		return c.app.fail("could not update monthly income: %v", err)
	}
	return c.app.print(fmt.Sprintf("Monthly income set to **%s**\n", c.app.money(updated.MonthlyIncome)))
}

type exportCmd struct {
	app  *App
	file string
}

func (*exportCmd) Name() string     { return "export" }
func (*exportCmd) Synopsis() string { return "write the snapshot as JSON" }
func (*exportCmd) Usage() string {
	return `export [-o <file>]

  Writes the whole snapshot in its stored JSON form, to stdout by default.
`
}

func (c *exportCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.file, "o", "", "output file")
}

func (c *exportCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	blob, err := service.EncodeSnapshot(c.app.Snapshots.View())
	if err != nil {
		return c.app.fail("could not encode snapshot: %v", err)
	}

	if c.file == "" {
		fmt.Fprintln(c.app.Out, string(blob))
		return subcommands.ExitSuccess
	}
	if err := os.WriteFile(c.file, blob, 0o644); err != nil {
		return c.app.fail("could not write %s: %v", c.file, err)
	}
	fmt.Fprintf(c.app.Err, "Snapshot written to %s\n", c.file)
	return subcommands.ExitSuccess
}

type importCmd struct {
	app  *App
	file string
}

func (*importCmd) Name() string     { return "import" }
func (*importCmd) Synopsis() string { return "replace the snapshot with a JSON file" }
func (*importCmd) Usage() string {
	return `import -f <file>

  Replaces the whole snapshot. The file is validated first and nothing is
  changed if it is rejected.
`
}

func (c *importCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.file, "f", "", "snapshot JSON file (required)")
}

func (c *importCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.file == "" {
		return c.app.usage("-f is required")
	}
	blob, err := os.ReadFile(c.file)
	if err != nil {
		return c.app.fail("could not read %s: %v", c.file, err)
	}
	snapshot, err := service.DecodeSnapshot(blob)
	if err != nil {
		return c.app.fail("could not parse %s: %v", c.file, err)
	}

	updated, err := c.app.Snapshots.Replace(ctx, snapshot)
	if err != nil {
		return c.app.fail("could not import %s: %v", c.file, err)
	}

	return c.app.print(fmt.Sprintf("Imported %d transactions, %d holdings and %d goals\n",
		len(updated.Transactions), len(updated.Portfolio), len(updated.SavingsGoals)))
}

type resetCmd struct {
	app *App
	yes bool
}

func (*resetCmd) Name() string     { return "reset" }
func (*resetCmd) Synopsis() string { return "restore the sample data" }
func (*resetCmd) Usage() string {
	return `reset -yes

  Discards everything and restores the sample snapshot.
`
}

func (c *resetCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.yes, "yes", false, "confirm the reset")
}

func (c *resetCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if !c.yes {
		return c.app.usage("reset discards all data, pass -yes to confirm")
	}
	if _, err := c.app.Snapshots.Reset(ctx); err != nil {
		return c.app.fail("could not reset: %v", err)
	}
	return c.app.print("Sample data restored.\n")
}
