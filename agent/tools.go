package agent

import (
	"context"
	"fmt"
	"strings"

	"github.com/etnz/debtplan"
	"github.com/etnz/debtplan/date"
	"github.com/etnz/debtplan/renderer"
	"google.golang.org/genai"
)

// Func implements a Function from a declaration and a callback.
type Func struct {
	Decl *genai.FunctionDeclaration
	Func func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse
}

func (f *Func) Declaration() *genai.FunctionDeclaration { return f.Decl }
func (f *Func) Call(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
	return f.Func(ctx, id, args)
}

// Desk holds the user's debts the advisor tools compute on.
type Desk struct {
	Debts    []debtplan.Debt
	Today    date.Date
	Currency string
	// Horizon bounds projections, debtplan.DefaultHorizon if zero.
	Horizon int
}

// Tools returns the functions exposed to the advisor.
func (d *Desk) Tools() []Function {
	return []Function{
		d.listDebts(),
		d.solvePayoff(),
		d.simulateStrategy(),
		d.projectBalances(),
	}
}

var debtSchemas = map[string]*genai.Schema{
	"debt": {
		Type:        genai.TypeString,
		Description: "Name of a debt of the user. When set, principal and apr are read from the debt.",
	},
	"principal": {
		Type:        genai.TypeNumber,
		Description: "Outstanding balance, when no debt is named.",
	},
	"apr": {
		Type:        genai.TypeNumber,
		Description: "Annual interest rate as a percentage (18 means 18%), when no debt is named.",
	},
	"payment": {
		Type:        genai.TypeNumber,
		Description: "Fixed monthly payment. Defaults to the debt's minimum payment, or 3% of its balance.",
	},
}

func withDebtSchemas(extra map[string]*genai.Schema) map[string]*genai.Schema {
	res := make(map[string]*genai.Schema, len(debtSchemas)+len(extra))
	for k, v := range debtSchemas {
		res[k] = v
	}
	for k, v := range extra {
		res[k] = v
	}
	return res
}

func (d *Desk) listDebts() Function {
	const name = "list_debts"
	return &Func{
		Decl: &genai.FunctionDeclaration{
			Name:        name,
			Description: "Lists the user's debts with their balance, APR, type, category and minimum payment.",
			Response: &genai.Schema{
				Type:        genai.TypeString,
				Description: "A markdown table of the debts and their total.",
			},
		},
		Func: func(_ context.Context, id string, _ map[string]any) *genai.FunctionResponse {
			return outputResponse(id, name, renderer.DebtsMarkdown(d.Debts, d.Currency))
		},
	}
}

func (d *Desk) solvePayoff() Function {
	const name = "solve_payoff"
	return &Func{
		Decl: &genai.FunctionDeclaration{
			Name: name,
			Description: `Computes how many months a fixed monthly payment takes to pay off one debt,
			the payoff date, the total paid and the total interest.`,
			Parameters: &genai.Schema{
				Type:       genai.TypeObject,
				Properties: withDebtSchemas(nil),
			},
			Response: &genai.Schema{
				Type:        genai.TypeString,
				Description: "A markdown table with the payoff date, months, total paid and total interest.",
			},
		},
		Func: func(_ context.Context, id string, args map[string]any) *genai.FunctionResponse {
			debt, payment, err := d.debtArgs(args)
			if err != nil {
				return errorResponse(id, name, err)
			}
			p, err := debtplan.SolvePayoff(debt.Principal, debt.Rate, payment)
			if err != nil {
				return errorResponse(id, name, err)
			}
			return outputResponse(id, name, renderer.PayoffMarkdown(debt, payment, p, d.Today, d.Currency))
		},
	}
}

func (d *Desk) simulateStrategy() Function {
	const name = "simulate_strategy"
	return &Func{
		Decl: &genai.FunctionDeclaration{
			Name: name,
			Description: `Plans the payoff of all the user's debts with a monthly budget. The whole budget
			goes to one debt at a time: smallest balance first (snowball) or highest rate first (avalanche).`,
			Parameters: &genai.Schema{
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"strategy": {
						Type: genai.TypeString,
						Enum: []string{string(debtplan.Snowball), string(debtplan.Avalanche)},
					},
					"budget": {
						Type:        genai.TypeNumber,
						Description: "Total monthly amount available for debt payments.",
					},
				},
				Required: []string{"strategy", "budget"},
			},
			Response: &genai.Schema{
				Type:        genai.TypeString,
				Description: "A markdown table of the debts in payoff order with their payoff dates, and the plan totals.",
			},
		},
		Func: func(_ context.Context, id string, args map[string]any) *genai.FunctionResponse {
			s, err := stringArg(args, "strategy")
			if err != nil {
				return errorResponse(id, name, err)
			}
			budget, _, err := numberArg(args, "budget")
			if err != nil {
				return errorResponse(id, name, err)
			}
			plan, err := debtplan.SimulateStrategy(d.Debts, debtplan.Strategy(strings.ToLower(s)), budget, d.Today)
			if err != nil {
				return errorResponse(id, name, err)
			}
			return outputResponse(id, name, renderer.PlanMarkdown(plan, d.Currency))
		},
	}
}

func (d *Desk) projectBalances() Function {
	const name = "project_balances"
	return &Func{
		Decl: &genai.FunctionDeclaration{
			Name:        name,
			Description: "Projects the balance of one debt month after month under a fixed monthly payment.",
			Parameters: &genai.Schema{
				Type: genai.TypeObject,
				Properties: withDebtSchemas(map[string]*genai.Schema{
					"every": {
						Type:        genai.TypeInteger,
						Description: "Only report one month every N months. Defaults to 1.",
					},
				}),
			},
			Response: &genai.Schema{
				Type:        genai.TypeString,
				Description: "A markdown table of the balance over time and whether the debt gets paid off.",
			},
		},
		Func: func(_ context.Context, id string, args map[string]any) *genai.FunctionResponse {
			debt, payment, err := d.debtArgs(args)
			if err != nil {
				return errorResponse(id, name, err)
			}
			every, _, err := numberArg(args, "every")
			if err != nil {
				return errorResponse(id, name, err)
			}
			s := debtplan.ProjectBalances(debt.Principal, debt.Rate, payment, d.Horizon)
			return outputResponse(id, name, renderer.ProjectionMarkdown(debt.Name, s, d.Today, int(every), d.Currency))
		},
	}
}

// debtArgs reads the debt and the monthly payment of a call.
func (d *Desk) debtArgs(args map[string]any) (debtplan.Debt, float64, error) {
	var debt debtplan.Debt
	if _, ok := args["debt"]; ok {
		n, err := stringArg(args, "debt")
		if err != nil {
			return debt, 0, err
		}
		if debt, err = d.find(n); err != nil {
			return debt, 0, err
		}
	} else {
		principal, ok, err := numberArg(args, "principal")
		if err != nil {
			return debt, 0, err
		}
		if !ok {
			return debt, 0, fmt.Errorf("either 'debt' or 'principal' is required")
		}
		apr, _, err := numberArg(args, "apr")
		if err != nil {
			return debt, 0, err
		}
		debt = debtplan.Debt{Name: "Debt", Principal: principal, Rate: debtplan.Percent(apr).Rate()}
	}

	payment, ok, err := numberArg(args, "payment")
	if err != nil {
		return debt, 0, err
	}
	if !ok {
		payment = debtplan.DefaultPayment(debt)
	}
	return debt, payment, nil
}

func (d *Desk) find(name string) (debtplan.Debt, error) {
	for _, debt := range d.Debts {
		if strings.EqualFold(debt.Name, name) {
			return debt, nil
		}
	}
	return debtplan.Debt{}, fmt.Errorf("unknown debt %q", name)
}

func stringArg(args map[string]any, key string) (string, error) {
	v, ok := args[key].(string)
	if !ok {
		return "", fmt.Errorf("argument %q is not a string as expected but %T", key, args[key])
	}
	return v, nil
}

// numberArg returns the numeric argument key, and whether it was present.
func numberArg(args map[string]any, key string) (float64, bool, error) {
	v, ok := args[key]
	if !ok {
		return 0, false, nil
	}
	switch n := v.(type) {
	case float64:
		return n, true, nil
	case int:
		return float64(n), true, nil
	case int64:
		return float64(n), true, nil
	}
	return 0, true, fmt.Errorf("argument %q is not a number as expected but %T", key, v)
}
