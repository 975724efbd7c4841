package cli

import (
	"context"
	"flag"

	"github.com/google/subcommands"
)

type adviceCmd struct {
	app *App
}

func (*adviceCmd) Name() string     { return "advice" }
func (*adviceCmd) Synopsis() string { return "ask the advisor about your finances" }
func (*adviceCmd) Usage() string {
	return `advice

  Sends a summary of the snapshot to the configured advice provider and
  prints its answer.
`
}

func (c *adviceCmd) SetFlags(f *flag.FlagSet) {}

func (c *adviceCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	advice := c.app.Advice.GetAdvice(ctx)
	status := c.app.print("# Advice\n\n" + advice.Text + "\n")
	if advice.Fallback {
		return subcommands.ExitFailure
	}
	return status
}
