package cli

import (
	"context"
	"flag"
	"fmt"

	"github.com/dafibh/wealthflow/wealthflow-backend/internal/domain"
	"github.com/dafibh/wealthflow/wealthflow-backend/internal/service"
	"github.com/google/subcommands"
	"github.com/shopspring/decimal"
)

type goalsCmd struct {
	app *App
}

func (*goalsCmd) Name() string     { return "goals" }
func (*goalsCmd) Synopsis() string { return "list savings goals and their progress" }
func (*goalsCmd) Usage() string {
	return `goals
`
}

func (c *goalsCmd) SetFlags(f *flag.FlagSet) {}

func (c *goalsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	goals := c.app.Goals.GetGoals()
	if len(goals) == 0 {
		return c.app.print("No savings goals yet.\n")
	}

	t := newTable("ID", "Goal", "Saved", "Target", "Progress", "Deadline", "Status")
	for _, g := range goals {
		t.add(g.Goal.ID, g.Goal.Name, c.app.money(g.Goal.CurrentAmount), c.app.money(g.Goal.TargetAmount),
			g.Progress.String(), g.Goal.Deadline.String()+" ("+daysLabel(g)+")", string(g.Status))
	}
	return c.app.print("# Savings goals\n\n" + t.String())
}

func daysLabel(g domain.GoalProgress) string {
	switch {
	case g.DaysRemaining == nil:
		return "deadline passed"
	case *g.DaysRemaining == 1:
		return "1 day left"
	default:
		return fmt.Sprintf("%d days left", *g.DaysRemaining)
	}
}

type addGoalCmd struct {
	app      *App
	id       string
	name     string
	target   string
	saved    string
	deadline string
}

func (*addGoalCmd) Name() string     { return "add-goal" }
func (*addGoalCmd) Synopsis() string { return "create a savings goal" }
func (*addGoalCmd) Usage() string {
	return `add-goal -name <name> -target <amount> -deadline <YYYY-MM-DD> [-saved <amount>] [-id <id>]
`
}

func (c *addGoalCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.id, "id", "", "goal id, generated when omitted")
	f.StringVar(&c.name, "name", "", "goal name (required)")
	f.StringVar(&c.target, "target", "", "target amount, positive (required)")
	f.StringVar(&c.saved, "saved", "", "amount already saved")
	f.StringVar(&c.deadline, "deadline", "", "deadline date YYYY-MM-DD (required)")
}

func (c *addGoalCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	target, err := service.ParseAmount(c.target)
	if err != nil {
		return c.app.usage("-target must be a positive number")
	}
	saved := decimal.Zero
	if c.saved != "" {
		if saved, err = service.ParseAmount(c.saved); err != nil {
			return c.app.usage("-saved must be a non-negative number")
		}
	}
	deadline, err := domain.ParseDate(c.deadline)
	if err != nil {
		return c.app.usage("-deadline must be a date in YYYY-MM-DD format")
	}

	goal, err := c.app.Goals.CreateGoal(ctx, service.CreateGoalInput{
		ID:            c.id,
		Name:          c.name,
		TargetAmount:  target,
		CurrentAmount: saved,
		Deadline:      deadline,
	})
	if err != nil {
		return c.app.fail("could not create goal: %v", err)
	}

	return c.app.print(fmt.Sprintf("Created goal **%s** of %s by %s, id `%s`\n",
		goal.Name, c.app.money(goal.TargetAmount), goal.Deadline, goal.ID))
}

type contributeCmd struct {
	app    *App
	id     string
	amount string
}

func (*contributeCmd) Name() string     { return "contribute" }
func (*contributeCmd) Synopsis() string { return "add money to a savings goal" }
func (*contributeCmd) Usage() string {
	return `contribute -id <goal id> -amount <amount>
`
}

func (c *contributeCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.id, "id", "", "goal id (required)")
	f.StringVar(&c.amount, "amount", "", "amount to add, positive (required)")
}

func (c *contributeCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.id == "" {
		return c.app.usage("-id is required")
	}
	amount, err := service.ParseAmount(c.amount)
	if err != nil {
		return c.app.usage("-amount must be a positive number")
	}

	progress, err := c.app.Goals.Contribute(ctx, c.id, amount)
	if err != nil {
		return c.app.fail("could not contribute to %s: %v", c.id, err)
	}

	return c.app.print(fmt.Sprintf("**%s**: %s of %s saved (%s)\n",
		progress.Goal.Name, c.app.money(progress.Goal.CurrentAmount),
		c.app.money(progress.Goal.TargetAmount), progress.Progress))
}
