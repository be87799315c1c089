package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"slices"

	"github.com/etnz/debtplan/docs"
	"github.com/google/subcommands"
)

type topicCmd struct{}

func (*topicCmd) Name() string     { return "topic" }
func (*topicCmd) Synopsis() string { return "show documentation" }
func (*topicCmd) Usage() string {
	return `dp topic [topic...]

  Shows the documentation of the given topics, "*" for all of them.
  Without topic, lists the available ones.
`
}

func (*topicCmd) SetFlags(*flag.FlagSet) {}

func (*topicCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	doc, err := topicsDoc(f.Args())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	printMarkdown(doc)
	return subcommands.ExitSuccess
}

// topicsDoc returns the documentation of topics, the topic index if there
// are none.
func topicsDoc(topics []string) (string, error) {
	if len(topics) == 0 {
		return docs.GetTopic("readme")
	}
	known, err := docs.GetAllTopics()
	if err != nil {
		return "", err
	}
	for _, t := range topics {
		if t != "*" && t != "readme" && !slices.Contains(known, t) {
			return "", fmt.Errorf("unknown topic %q, run 'dp topic' for the list", t)
		}
	}
	return docs.GetTopics(topics...)
}
