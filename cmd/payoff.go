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

// payoffCmd holds the flags for the 'payoff' subcommand.
type payoffCmd struct {
	debt      string
	principal float64
	apr       float64
	payment   float64
	today     string
	json      bool
}

func (*payoffCmd) Name() string     { return "payoff" }
func (*payoffCmd) Synopsis() string { return "compute the payoff of a debt with a fixed monthly payment" }
func (*payoffCmd) Usage() string {
	return `dp payoff -principal <amount> -apr <percent> -payment <amount> [-today <date>] [-json]
dp payoff -debt <name> [-payment <amount>] [-today <date>] [-json]

  Computes how many months a fixed monthly payment takes to retire a balance,
  the payoff date, the total paid and the total interest.
`
}

func (c *payoffCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.debt, "debt", "", "Name of a debt of the debts file, instead of -principal and -apr")
	f.Float64Var(&c.principal, "principal", 0, "Outstanding balance")
	f.Float64Var(&c.apr, "apr", 0, "Annual interest rate in percent (18 for 18%)")
	f.Float64Var(&c.payment, "payment", 0, "Fixed monthly payment (default for -debt is its minimum payment, or 3% of the balance)")
	f.StringVar(&c.today, "today", "", "Start date of the payments (default today)")
	f.BoolVar(&c.json, "json", false, "Print the result as JSON")
}

func (c *payoffCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	today, err := parseToday(c.today)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing date: %v\n", err)
		return subcommands.ExitUsageError
	}
	e, status := setup()
	if e == nil {
		return status
	}

	d := debtplan.Debt{Principal: c.principal, Rate: debtplan.Percent(c.apr).Rate()}
	payment := c.payment
	if c.debt != "" {
		debts, err := e.debts()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading debts: %v\n", err)
			return subcommands.ExitFailure
		}
		if d, err = findDebt(debts, c.debt); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitUsageError
		}
		if payment == 0 {
			payment = debtplan.DefaultPayment(d)
		}
	}

	p, err := debtplan.SolvePayoff(d.Principal, d.Rate, payment)
	if err != nil {
		e.logger.Debug("payoff rejected", zap.String("reason", string(debtplan.ReasonOf(err))))
		return reportError(err, c.json)
	}

	if c.json {
		return printJSON(struct {
			debtplan.Payoff
			PayoffDate string `json:"payoffDate"`
		}{p, p.Date(today).String()})
	}
	printMarkdown(renderer.PayoffMarkdown(d, payment, p, today, e.currency()))
	return subcommands.ExitSuccess
}
