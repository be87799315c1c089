package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/debtplan"
	"github.com/etnz/debtplan/renderer"
	"github.com/google/subcommands"
	"go.uber.org/zap"
)

type strategyCmd struct {
	strategy string
	budget   float64
	today    string
	json     bool
}

func (*strategyCmd) Name() string     { return "strategy" }
func (*strategyCmd) Synopsis() string { return "plan the payoff of all debts with a monthly budget" }
func (*strategyCmd) Usage() string {
	return `dp strategy [-strategy snowball|avalanche] [-budget <amount>] [-today <date>] [-json]

  Orders the debts of the debts file and devotes the whole monthly budget to
  one debt at a time. The row number is the order in which to attack them.
  -strategy and -budget default to the configuration.
`
}

func (c *strategyCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.strategy, "strategy", "", "snowball (smallest balance first) or avalanche (highest rate first)")
	f.Float64Var(&c.budget, "budget", 0, "Monthly amount available for the debts")
	f.StringVar(&c.today, "today", "", "Start date of the plan (default today)")
	f.BoolVar(&c.json, "json", false, "Print the plan as JSON")
}

func (c *strategyCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	today, err := parseToday(c.today)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing date: %v\n", err)
		return subcommands.ExitUsageError
	}
	e, status := setup()
	if e == nil {
		return status
	}
	if c.strategy == "" {
		c.strategy = e.cfg.Plan.Strategy
	}
	if c.budget == 0 {
		c.budget = e.cfg.Plan.Budget
	}

	debts, err := e.debts()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading debts: %v\n", err)
		return subcommands.ExitFailure
	}

	// unknown strategies are reported by the simulation itself.
	s, err := debtplan.ParseStrategy(c.strategy)
	if err != nil {
		s = debtplan.Strategy(c.strategy)
	}
	plan, err := debtplan.SimulateStrategy(debts, s, c.budget, today)
	if err != nil {
		e.logger.Debug("plan rejected", zap.String("strategy", c.strategy), zap.Float64("budget", c.budget), zap.Error(err))
		return reportError(err, c.json)
	}
	e.logger.Debug("plan simulated", zap.String("strategy", string(plan.Strategy)), zap.Int("months", plan.Months()))

	if c.json {
		return printJSON(plan)
	}
	printMarkdown(renderer.PlanMarkdown(plan, e.currency()))
	return subcommands.ExitSuccess
}
