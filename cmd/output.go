package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/etnz/debtplan"
	"github.com/google/subcommands"
)

// printMarkdown renders markdown for the terminal, or prints it as is with -plain.
func printMarkdown(doc string) {
	if *plain {
		fmt.Println(doc)
		return
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(100),
	)
	if err != nil {
		fmt.Println(doc)
		return
	}
	out, err := r.Render(doc)
	if err != nil {
		fmt.Println(doc)
		return
	}
	fmt.Print(out)
}

// printJSON prints v as indented JSON on stdout.
func printJSON(v any) subcommands.ExitStatus {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		fmt.Fprintf(os.Stderr, "Error encoding JSON: %v\n", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

// rejection is the JSON form of a failed computation.
type rejection struct {
	OK      bool   `json:"ok"`
	Reason  string `json:"reason,omitempty"`
	Debt    string `json:"debt,omitempty"`
	Message string `json:"message"`
}

// reportError prints a failed computation, as JSON when asJSON is set.
func reportError(err error, asJSON bool) subcommands.ExitStatus {
	if asJSON {
		r := rejection{Reason: string(debtplan.ReasonOf(err)), Message: err.Error()}
		var rej *debtplan.Rejection
		if errors.As(err, &rej) {
			r.Debt = rej.Debt
		}
		printJSON(r)
		return subcommands.ExitFailure
	}
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	return subcommands.ExitFailure
}
