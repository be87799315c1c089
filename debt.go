package debtplan

import (
	"cmp"
	"fmt"
	"slices"
	"strings"

	"github.com/etnz/debtplan/date"
)

// Term classifies a debt as long or short term.
type Term string

const (
	AllTerms  Term = "all"
	LongTerm  Term = "long_term"
	ShortTerm Term = "short_term"
)

func (t Term) String() string {
	switch t {
	case LongTerm:
		return "Long term"
	case ShortTerm:
		return "Short term"
	default:
		return string(t)
	}
}

// ParseTerm parses a term filter, "" is AllTerms.
func ParseTerm(s string) (Term, error) {
	switch t := Term(strings.ToLower(s)); t {
	case "", AllTerms:
		return AllTerms, nil
	case LongTerm, ShortTerm:
		return t, nil
	default:
		return AllTerms, fmt.Errorf("unknown debt type %q", s)
	}
}

// Category is the kind of credit behind a debt.
type Category string

const (
	Mortgage     Category = "mortgage"
	CarLoan      Category = "car_loan"
	StudentLoan  Category = "student_loan"
	PersonalLoan Category = "personal_loan"
	CreditCard   Category = "credit_card"
	PayLater     Category = "pay_later"
	OtherDebt    Category = "other"
)

var categoryNames = map[Category]string{
	Mortgage:     "Mortgage",
	CarLoan:      "Car loan",
	StudentLoan:  "Student loan",
	PersonalLoan: "Personal loan",
	CreditCard:   "Credit card",
	PayLater:     "Pay later",
	OtherDebt:    "Other",
}

// String returns the display name of the category, unknown categories are "Other".
func (c Category) String() string {
	if name, ok := categoryNames[c]; ok {
		return name
	}
	return categoryNames[OtherDebt]
}

// Debt is an outstanding balance with its annual interest rate.
type Debt struct {
	ID         string    `json:"id,omitempty"`
	Name       string    `json:"name"`
	Principal  float64   `json:"principal"`
	Rate       float64   `json:"interestRate"` // annual, as a decimal fraction (0.18 for 18%)
	Term       Term      `json:"type,omitempty"`
	Category   Category  `json:"category,omitempty"`
	MinPayment float64   `json:"minPaymentMonthly,omitempty"`
	CreatedAt  date.Date `json:"createdAt"`
}

// APR returns the debt annual rate as a percentage.
func (d Debt) APR() Percent { return Percent(d.Rate * 100) }

// defaultPaymentShare is the share of the principal used as a monthly payment
// when a debt has no minimum payment.
const defaultPaymentShare = 0.03

// DefaultPayment returns the debt minimum payment, or 3% of its principal when
// it has none.
func DefaultPayment(d Debt) float64 {
	if d.MinPayment > 0 {
		return d.MinPayment
	}
	return d.Principal * defaultPaymentShare
}

// TotalPrincipal returns the sum of all debts principal.
func TotalPrincipal(debts []Debt) float64 {
	total := 0.0
	for _, d := range debts {
		total += d.Principal
	}
	return total
}

// FilterTerm returns the debts of the given term, in order. AllTerms keeps them all.
func FilterTerm(debts []Debt, t Term) []Debt {
	if t == AllTerms || t == "" {
		return slices.Clone(debts)
	}
	var res []Debt
	for _, d := range debts {
		if d.Term == t {
			res = append(res, d)
		}
	}
	return res
}

// DebtOrder is a display order for a debt list.
type DebtOrder string

const (
	CreatedDesc DebtOrder = "created_desc"
	CreatedAsc  DebtOrder = "created_asc"
	NameAsc     DebtOrder = "name_asc"
	BalanceDesc DebtOrder = "balance_desc"
	BalanceAsc  DebtOrder = "balance_asc"
)

// ParseDebtOrder parses a debt order, "" is CreatedDesc.
func ParseDebtOrder(s string) (DebtOrder, error) {
	switch o := DebtOrder(strings.ToLower(s)); o {
	case "":
		return CreatedDesc, nil
	case CreatedDesc, CreatedAsc, NameAsc, BalanceDesc, BalanceAsc:
		return o, nil
	default:
		return CreatedDesc, fmt.Errorf("unknown debt order %q", s)
	}
}

// SortDebts returns a sorted copy of debts. Ties keep their input order.
func SortDebts(debts []Debt, order DebtOrder) []Debt {
	res := slices.Clone(debts)
	var compare func(a, b Debt) int
	switch order {
	case CreatedAsc:
		compare = func(a, b Debt) int { return compareDates(a.CreatedAt, b.CreatedAt) }
	case NameAsc:
		compare = func(a, b Debt) int { return strings.Compare(a.Name, b.Name) }
	case BalanceDesc:
		compare = func(a, b Debt) int { return cmp.Compare(b.Principal, a.Principal) }
	case BalanceAsc:
		compare = func(a, b Debt) int { return cmp.Compare(a.Principal, b.Principal) }
	default:
		compare = func(a, b Debt) int { return compareDates(b.CreatedAt, a.CreatedAt) }
	}
	slices.SortStableFunc(res, compare)
	return res
}

func compareDates(a, b date.Date) int {
	switch {
	case a.Before(b):
		return -1
	case a.After(b):
		return 1
	default:
		return 0
	}
}
