package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"runtime"
	"strings"

	"github.com/etnz/debtplan"
	"github.com/etnz/debtplan/date"
	"github.com/etnz/debtplan/renderer"
	"github.com/google/subcommands"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

type projectCmd struct {
	debt      string
	all       bool
	principal float64
	apr       float64
	payment   float64
	horizon   int
	every     int
	today     string
	json      bool
}

func (*projectCmd) Name() string     { return "project" }
func (*projectCmd) Synopsis() string { return "project the balance of debts month after month" }
func (*projectCmd) Usage() string {
	return `dp project -principal <amount> -apr <percent> -payment <amount> [-horizon <months>] [-every <months>] [-json]
dp project -debt <name> [-payment <amount>] ...
dp project -all ...

  Prints the balance at the start of each month until it reaches zero, or
  until the horizon. -debt and -all use the debts file, paying each debt its
  minimum payment (or 3% of its balance).
`
}

func (c *projectCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.debt, "debt", "", "Name of a debt of the debts file")
	f.BoolVar(&c.all, "all", false, "Project every debt of the debts file")
	f.Float64Var(&c.principal, "principal", 0, "Outstanding balance")
	f.Float64Var(&c.apr, "apr", 0, "Annual interest rate in percent (18 for 18%)")
	f.Float64Var(&c.payment, "payment", 0, "Fixed monthly payment")
	f.IntVar(&c.horizon, "horizon", 0, "Maximum number of months (default from the configuration)")
	f.IntVar(&c.every, "every", 1, "Print one month every N months")
	f.StringVar(&c.today, "today", "", "Date of the first balance (default today)")
	f.BoolVar(&c.json, "json", false, "Print the projections as JSON")
}

// projection is a projected debt.
type projection struct {
	Debt    debtplan.Debt   `json:"debt"`
	Payment float64         `json:"payment"`
	Series  debtplan.Series `json:"series"`
}

func (c *projectCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	today, err := parseToday(c.today)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing date: %v\n", err)
		return subcommands.ExitUsageError
	}
	if c.all && c.debt != "" {
		fmt.Fprintln(os.Stderr, "Error: -all and -debt are exclusive")
		return subcommands.ExitUsageError
	}
	e, status := setup()
	if e == nil {
		return status
	}
	if c.horizon == 0 {
		c.horizon = e.cfg.Plan.Horizon
	}

	var targets []projection
	switch {
	case c.all || c.debt != "":
		debts, err := e.debts()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading debts: %v\n", err)
			return subcommands.ExitFailure
		}
		if c.debt != "" {
			d, err := findDebt(debts, c.debt)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
				return subcommands.ExitUsageError
			}
			debts = []debtplan.Debt{d}
		}
		for _, d := range debts {
			payment := c.payment
			if payment == 0 || c.all {
				payment = debtplan.DefaultPayment(d)
			}
			targets = append(targets, projection{Debt: d, Payment: payment})
		}
	default:
		targets = []projection{{
			Debt:    debtplan.Debt{Name: "Debt", Principal: c.principal, Rate: debtplan.Percent(c.apr).Rate()},
			Payment: c.payment,
		}}
	}

	if err := projectAll(ctx, e.logger, targets, c.horizon); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	if c.json {
		return printJSON(targets)
	}
	printMarkdown(projectionsMarkdown(targets, today, c.every, e.currency()))
	return subcommands.ExitSuccess
}

// projectAll computes the series of all targets concurrently.
func projectAll(ctx context.Context, logger *zap.Logger, targets []projection, horizon int) error {
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i := range targets {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			t := &targets[i]
			t.Series = debtplan.ProjectBalances(t.Debt.Principal, t.Debt.Rate, t.Payment, horizon)
			logger.Debug("balance projected",
				zap.String("debt", t.Debt.Name),
				zap.Float64("payment", t.Payment),
				zap.Int("points", t.Series.Len()),
				zap.Bool("paid_off", t.Series.PaidOff()))
			return nil
		})
	}
	return g.Wait()
}

func projectionsMarkdown(targets []projection, start date.Date, every int, cur string) string {
	var docs []string
	for _, t := range targets {
		docs = append(docs, renderer.ProjectionMarkdown(t.Debt.Name, t.Series, start, every, cur))
	}
	return strings.Join(docs, "\n\n")
}
