package agent

import (
	"fmt"

	"github.com/etnz/debtplan/docs"
	"go.uber.org/zap"
	"google.golang.org/genai"
)

// DefaultModel is the Gemini model used when none is configured.
const DefaultModel = "gemini-2.5-flash"

const instruction = `
You are a debt advisor. The user wants to understand how long paying off their
debts will take and in which order to pay them.

Never compute payoff figures yourself: use the tools, they know the user's debts.
Start by listing the debts when the user refers to them by name.
When a tool reports an error, explain it in plain words: for instance a
payment that does not cover the monthly interest never pays off the debt.

Plans devote the whole monthly budget to one debt at a time, say so when you
present one. Amounts are in %s, today is %s.

Below is the user documentation of the calculations.

%s
`

// NewAdvisor creates the debt advisor expert working on desk.
func NewAdvisor(model string, desk *Desk, logger *zap.Logger) (*Expert, error) {
	if model == "" {
		model = DefaultModel
	}
	manual, err := docs.GetTopics("payoff", "strategy", "project")
	if err != nil {
		return nil, err
	}
	tools := desk.Tools()
	return &Expert{
		Name:      "Advisor",
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{FunctionDeclarations: NewDeclaration(tools)},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{
				Text: fmt.Sprintf(instruction, desk.Currency, desk.Today, manual),
			}}},
		},
		Library: NewLibrary(tools),
		Logger:  logger,
	}, nil
}
