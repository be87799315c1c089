// Package cmd implements the dp command line application.
package cmd

import (
	"flag"
	"fmt"
	"os"

	"github.com/etnz/debtplan"
	"github.com/etnz/debtplan/config"
	"github.com/etnz/debtplan/date"
	"github.com/google/subcommands"
	"go.uber.org/zap"
)

// Register the subcommands.
// A main package calls Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&payoffCmd{}, "plan")
	c.Register(&strategyCmd{}, "plan")
	c.Register(&projectCmd{}, "plan")

	c.Register(&debtsCmd{}, "debts")

	c.Register(&assistCmd{}, "help")
	c.Register(&topicCmd{}, "help")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var (
	configFile = flag.String("config", "", "Path to the configuration file (default $XDG_CONFIG_HOME/debtplan/config.toml)")
	debtsFile  = flag.String("debts", "", "Path to the debts file (JSON), overrides the configuration")
	selector   = flag.String("select", "", "JSONPath of the list of debts inside the debts file, overrides the configuration")
	verbose    = flag.Bool("v", false, "Log what dp does on stderr")
	plain      = flag.Bool("plain", false, "Print raw markdown instead of rendering it for the terminal")
)

// env is what every command needs once the global flags are parsed.
type env struct {
	cfg    config.Config
	logger *zap.Logger
}

// newEnv loads the configuration and applies the global flags on top of it.
func newEnv() (*env, error) {
	logger := zap.NewNop()
	if *verbose {
		l, err := zap.NewDevelopment()
		if err != nil {
			return nil, fmt.Errorf("could not create logger: %w", err)
		}
		logger = l
	}

	cfg, err := config.Load(*configFile)
	if err != nil {
		return nil, err
	}
	if *debtsFile != "" {
		cfg.Data.Debts = *debtsFile
	}
	if *selector != "" {
		cfg.Data.Select = *selector
	}
	logger.Debug("configuration loaded",
		zap.String("config", *configFile),
		zap.String("debts", cfg.Data.Debts),
		zap.String("select", cfg.Data.Select))
	return &env{cfg: cfg, logger: logger}, nil
}

// debts loads the debts file.
func (e *env) debts() ([]debtplan.Debt, error) {
	debts, err := LoadDebts(e.cfg.Data.Debts, e.cfg.Data.Select)
	if err != nil {
		return nil, err
	}
	e.logger.Debug("debts loaded", zap.String("file", e.cfg.Data.Debts), zap.Int("count", len(debts)))
	return debts, nil
}

func (e *env) currency() string { return e.cfg.Display.Currency }

// parseToday parses a -today flag, an empty value is today.
func parseToday(s string) (date.Date, error) {
	if s == "" {
		return date.Today(), nil
	}
	return date.Parse(s)
}

// setup runs newEnv for a command, reporting failures.
func setup() (*env, subcommands.ExitStatus) {
	e, err := newEnv()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading configuration: %v\n", err)
		return nil, subcommands.ExitFailure
	}
	return e, subcommands.ExitSuccess
}
