package debtplan

import (
	"cmp"
	"fmt"
	"slices"
	"strings"

	"github.com/etnz/debtplan/date"
)

// Strategy is the order in which debts are attacked.
type Strategy string

const (
	Snowball  Strategy = "snowball"  // smallest balance first
	Avalanche Strategy = "avalanche" // highest APR first
)

// ParseStrategy parses a strategy name.
func ParseStrategy(s string) (Strategy, error) {
	switch st := Strategy(strings.ToLower(strings.TrimSpace(s))); st {
	case Snowball, Avalanche:
		return st, nil
	default:
		return "", fmt.Errorf("unknown strategy %q, want %q or %q", s, Snowball, Avalanche)
	}
}

// Order returns a copy of debts in the strategy attack order.
//
// Snowball sorts by ascending principal, Avalanche by descending rate. Ties
// keep their input order.
func (s Strategy) Order(debts []Debt) []Debt {
	res := slices.Clone(debts)
	switch s {
	case Snowball:
		slices.SortStableFunc(res, func(a, b Debt) int { return cmp.Compare(a.Principal, b.Principal) })
	case Avalanche:
		slices.SortStableFunc(res, func(a, b Debt) int { return cmp.Compare(b.Rate, a.Rate) })
	}
	return res
}

// StrategyRow is one step of the payoff waterfall.
type StrategyRow struct {
	Debt             Debt      `json:"debt"`
	Months           int       `json:"monthsToPayoff"`
	CumulativeMonths int       `json:"cumulativeMonthsAtPayoff"`
	Payment          float64   `json:"paymentUsed"`
	PayoffDate       date.Date `json:"payoffDate"`
	TotalPaid        float64   `json:"totalPaid"`
	TotalInterest    float64   `json:"totalInterest"`
}

// Plan is the resolved schedule of a strategy: Rows are in attack order, the
// row index (1-based) is the recommended action order.
type Plan struct {
	Strategy Strategy      `json:"strategy"`
	Budget   float64       `json:"budget"`
	Start    date.Date     `json:"start"`
	Rows     []StrategyRow `json:"rows"`
	Skipped  []Debt        `json:"skipped,omitempty"` // already paid off
	Message  string        `json:"message"`
}

const planMessage = "This assumes the whole monthly budget goes to one debt at a time, in the chosen order."

// Months returns the number of months until the last debt is paid off.
func (p Plan) Months() int {
	if len(p.Rows) == 0 {
		return 0
	}
	return p.Rows[len(p.Rows)-1].CumulativeMonths
}

// TotalInterest returns the interest paid over the whole plan.
func (p Plan) TotalInterest() float64 {
	total := 0.0
	for _, r := range p.Rows {
		total += r.TotalInterest
	}
	return total
}

// TotalPaid returns the amount paid over the whole plan.
func (p Plan) TotalPaid() float64 {
	total := 0.0
	for _, r := range p.Rows {
		total += r.TotalPaid
	}
	return total
}

// SimulateStrategy orders debts by strategy and pays them off one at a time,
// devoting the whole monthly budget to the current target until it is
// retired. Other debts receive no payment meanwhile.
//
// Debts with no principal are skipped. The first debt the budget cannot pay
// off aborts the whole plan with a DebtUnpayable rejection.
//
// Payoff dates are computed from today, advanced by whole calendar months.
func SimulateStrategy(debts []Debt, s Strategy, budget float64, today date.Date) (Plan, error) {
	if !(budget > 0) {
		return Plan{}, reject(InvalidBudget, "monthly budget must be greater than zero")
	}
	if len(debts) == 0 {
		return Plan{}, reject(NoDebts, "add at least one debt first")
	}
	if s != Snowball && s != Avalanche {
		return Plan{}, reject(InvalidStrategy, "unknown strategy %q", s)
	}

	plan := Plan{Strategy: s, Budget: budget, Start: today, Message: planMessage}
	cumulative := 0
	for _, d := range s.Order(debts) {
		if d.Principal <= 0 {
			plan.Skipped = append(plan.Skipped, d)
			continue
		}
		p, err := SolvePayoff(d.Principal, d.Rate, budget)
		if err != nil {
			return Plan{}, &Rejection{
				Reason:  DebtUnpayable,
				Debt:    d.Name,
				Message: fmt.Sprintf("debt %q: %v", d.Name, err),
				Err:     err,
			}
		}
		cumulative += p.Months
		plan.Rows = append(plan.Rows, StrategyRow{
			Debt:             d,
			Months:           p.Months,
			CumulativeMonths: cumulative,
			Payment:          budget,
			PayoffDate:       today.AddMonths(cumulative),
			TotalPaid:        p.TotalPaid,
			TotalInterest:    p.TotalInterest,
		})
	}
	return plan, nil
}
