package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/etnz/debtplan/agent"
	"github.com/google/subcommands"
	"google.golang.org/genai"
)

type assistCmd struct {
	today string
}

func (*assistCmd) Name() string { return "assist" }
func (*assistCmd) Synopsis() string {
	return "start an interactive session with the AI debt advisor"
}
func (*assistCmd) Usage() string {
	return `dp assist [-today <date>] [question...]

  Starts a conversation with an AI advisor that knows the debts file and can
  compute payoffs, plans and projections. Requires GOOGLE_API_KEY.
`
}

func (c *assistCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.today, "today", "", "Date the advisor plans from (default today)")
}

func (c *assistCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	today, err := parseToday(c.today)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing date: %v\n", err)
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

	desk := &agent.Desk{
		Debts:    debts,
		Today:    today,
		Currency: e.currency(),
		Horizon:  e.cfg.Plan.Horizon,
	}
	advisor, err := agent.NewAdvisor(e.cfg.Assist.Model, desk, e.logger)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error creating the advisor:", err)
		return subcommands.ExitFailure
	}

	client, err := genai.NewClient(ctx, nil)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error initializing Gemini's client:", err)
		return subcommands.ExitFailure
	}

	a := agent.New(os.Stdout, os.Stdin, advisor)
	a.Print = printMarkdown
	if err := a.Run(ctx, client, strings.Join(f.Args(), " ")); err != nil {
		fmt.Fprintln(os.Stderr, "Advisor failed:", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
