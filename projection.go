package debtplan

import (
	"fmt"

	"github.com/etnz/debtplan/date"
	"github.com/shopspring/decimal"
)

// DefaultHorizon is the default number of months a projection may run.
const DefaultHorizon = 600

// Series is a month by month balance trajectory, ready to be charted.
//
// Labels and Balances have the same length. Balances[0] is the starting
// principal, the last balance is 0 unless the horizon was reached first.
type Series struct {
	Labels   []string  `json:"labels"`
	Balances []float64 `json:"balances"`
}

// Len returns the number of points in the series.
func (s Series) Len() int { return len(s.Balances) }

// Final returns the last balance of the series, 0 for an empty series.
func (s Series) Final() float64 {
	if len(s.Balances) == 0 {
		return 0
	}
	return s.Balances[len(s.Balances)-1]
}

// PaidOff reports whether the balance reached zero within the horizon.
func (s Series) PaidOff() bool { return s.Len() > 0 && s.Final() == 0 }

// Dates returns the calendar date of each point, the first point being start.
func (s Series) Dates(start date.Date) []date.Date {
	res := make([]date.Date, s.Len())
	for i := range res {
		res[i] = start.AddMonths(i)
	}
	return res
}

// ProjectBalances simulates the balance of a debt month by month under a fixed
// payment, for at most maxPeriods months (DefaultHorizon if maxPeriods <= 0).
//
// Each period the balance is recorded, then accrues a month of interest and
// is reduced by the payment, never going below zero. The terminal balance is
// recorded too. A non positive or non finite input yields an empty Series. A
// balance growing past the float range ends the series, unpaid, at its last
// finite value.
func ProjectBalances(principal, annualRate, payment float64, maxPeriods int) Series {
	var s Series
	if !(principal > 0) || !(payment > 0) || !finite(principal) || !finite(annualRate) || !finite(payment) {
		return s
	}
	if maxPeriods <= 0 {
		maxPeriods = DefaultHorizon
	}
	r := monthlyRate(annualRate)

	month, balance := 0, principal
	for balance > 0 && month < maxPeriods {
		s.add(month, balance)
		next := max(balance+balance*r-payment, 0)
		if !finite(next) {
			return s
		}
		balance = next
		month++
	}
	s.add(month, balance)
	return s
}

func (s *Series) add(month int, balance float64) {
	s.Labels = append(s.Labels, fmt.Sprintf("M%d", month))
	s.Balances = append(s.Balances, decimal.NewFromFloat(balance).Round(2).InexactFloat64())
}
