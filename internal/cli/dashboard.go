package cli

import (
	"context"
	"flag"
	"fmt"
	"strings"

	"github.com/google/subcommands"
)

type summaryCmd struct {
	app *App
}

func (*summaryCmd) Name() string     { return "summary" }
func (*summaryCmd) Synopsis() string { return "show the dashboard summary" }
func (*summaryCmd) Usage() string {
	return `summary

  Prints net balance, totals, portfolio performance, the trailing 7-day
  cash flow and the portfolio allocation.
`
}

func (c *summaryCmd) SetFlags(f *flag.FlagSet) {}

func (c *summaryCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	app := c.app
	s := app.Dashboard.GetSummary()

	var b strings.Builder
	b.WriteString("# Overview\n\n")

	overview := newTable("Figure", "Value")
	overview.add("Net balance", app.money(s.NetBalance))
	overview.add("Total income", app.money(s.TotalIncome))
	overview.add("Total expenses", app.money(s.TotalExpenses))
	overview.add("Portfolio value", app.money(s.PortfolioValue))
	overview.add("Portfolio gain", app.signedMoney(s.PortfolioGain)+" ("+s.PortfolioReturn.SignedString()+")")
	overview.add("Monthly income", app.money(s.MonthlyIncome))
	overview.add("Active goals", fmt.Sprintf("%d", s.ActiveGoals))
	b.WriteString(overview.String())

	b.WriteString("\n## Cash flow\n\n")
	flow := newTable("Day", "Date", "Net")
	for _, p := range s.CashFlow {
		flow.add(p.Label, p.Date.String(), app.signedMoney(p.Total))
	}
	b.WriteString(flow.String())

	b.WriteString("\n## Allocation\n\n")
	if len(s.Allocation) == 0 {
		b.WriteString("No holdings yet.\n")
	} else {
		alloc := newTable("Symbol", "Value", "Share")
		for _, slice := range s.Allocation {
			alloc.add(slice.Symbol, app.money(slice.Value), slice.Share.String())
		}
		b.WriteString(alloc.String())
	}

	return app.print(b.String())
}
