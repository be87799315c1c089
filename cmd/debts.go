package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/etnz/debtplan"
	"github.com/etnz/debtplan/renderer"
	"github.com/google/subcommands"
)

type debtsCmd struct {
	sort string
	term string
	json bool
}

func (*debtsCmd) Name() string     { return "debts" }
func (*debtsCmd) Synopsis() string { return "list the debts of the debts file" }
func (*debtsCmd) Usage() string {
	return `dp debts [-sort <order>] [-type <term>] [-json]

  Lists the debts with their balance, APR and minimum payment, and their total.
`
}

func (c *debtsCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.sort, "sort", string(debtplan.CreatedDesc), "Sort order: created_desc, created_asc, name_asc, balance_desc or balance_asc")
	f.StringVar(&c.term, "type", string(debtplan.AllTerms), "Only list debts of this type: all, long_term or short_term")
	f.BoolVar(&c.json, "json", false, "Print the debts as JSON")
}

func (c *debtsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	order, err := debtplan.ParseDebtOrder(c.sort)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	term, err := debtplan.ParseTerm(c.term)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	e, status := setup()
	if e == nil {
		return status
	}
	debts, err := e.debts()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading debts: %v\n", err)
		return subcommands.ExitFailure
	}

	debts = debtplan.SortDebts(debtplan.FilterTerm(debts, term), order)
	if c.json {
		return printJSON(debts)
	}
	printMarkdown(renderer.DebtsMarkdown(debts, e.currency()))
	return subcommands.ExitSuccess
}

// findDebt returns the debt named name, ignoring case.
func findDebt(debts []debtplan.Debt, name string) (debtplan.Debt, error) {
	for _, d := range debts {
		if strings.EqualFold(d.Name, name) {
			return d, nil
		}
	}
	return debtplan.Debt{}, fmt.Errorf("unknown debt %q", name)
}
