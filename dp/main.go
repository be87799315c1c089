// Command dp plans the payoff of debts.
package main

import (
	"context"
	"flag"
	"os"
	"os/signal"

	"github.com/etnz/debtplan/cmd"
	"github.com/google/subcommands"
)

func main() {
	// Shell completion: answers and exits when invoked by the shell.
	cmd.Completion().Complete("dp")

	commander := subcommands.NewCommander(flag.CommandLine, "dp")
	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")
	commander.Register(commander.CommandsCommand(), "")
	cmd.Register(commander)

	flag.Parse()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	status := commander.Execute(ctx)
	stop()
	os.Exit(int(status))
}
