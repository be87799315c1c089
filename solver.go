package debtplan

import (
	"math"

	"github.com/etnz/debtplan/date"
)

// maxMonths bounds the period count the solver accepts; beyond it the count
// is not a meaningful schedule and converting it to int is unsafe.
const maxMonths = math.MaxInt32

// Payoff is the outcome of paying a single debt with a fixed monthly payment.
//
// TotalInterest is always TotalPaid - principal.
type Payoff struct {
	Months        int     `json:"months"`
	TotalPaid     float64 `json:"totalPaid"`
	TotalInterest float64 `json:"totalInterest"`
}

// Date returns the payoff date when payments start on the given date.
func (p Payoff) Date(from date.Date) date.Date { return from.AddMonths(p.Months) }

// monthlyRate converts an annual rate into the monthly periodic rate.
func monthlyRate(annualRate float64) float64 { return annualRate / 12 }

// SolvePayoff computes how many months a fixed monthly payment takes to retire
// principal at the given annual rate (a decimal fraction, 0.18 for 18%), and
// how much is paid in total.
//
// A payment that cannot amortize the balance is reported as a *Rejection.
func SolvePayoff(principal, annualRate, payment float64) (Payoff, error) {
	if !(principal > 0) || !(payment > 0) {
		return Payoff{}, reject(NonPositiveInput, "principal and monthly payment must be greater than zero")
	}
	if annualRate < 0 {
		return Payoff{}, reject(NegativeRate, "interest rate cannot be negative")
	}

	if annualRate == 0 {
		monthsExact := principal / payment
		if !finite(monthsExact) || monthsExact > maxMonths {
			return Payoff{}, failed()
		}
		months := int(math.Ceil(monthsExact))
		// the last installment is only what remains of the balance.
		totalPaid := payment*float64(months-1) + (principal - payment*float64(months-1))
		return checked(principal, months, totalPaid)
	}

	r := monthlyRate(annualRate)
	interestPortion := r * principal
	if payment <= interestPortion {
		return Payoff{}, reject(PaymentBelowInterest, "monthly payment is too low, it does not even cover the interest: increase the payment to pay this off")
	}

	// Same invariant as above, but floating point noise can still make it
	// non positive and it is the argument of the logarithm below.
	denominator := payment - r*principal
	if denominator <= 0 {
		return Payoff{}, reject(PaymentTooLow, "payment is too low to ever pay off this debt: increase your monthly payment")
	}

	n := math.Log(payment/denominator) / math.Log(1+r)
	if !finite(n) || n <= 0 || n > maxMonths {
		return Payoff{}, failed()
	}

	months := int(math.Ceil(n))
	return checked(principal, months, payment*float64(months))
}

// checked builds the Payoff, rejecting any non finite figure.
func checked(principal float64, months int, totalPaid float64) (Payoff, error) {
	p := Payoff{Months: months, TotalPaid: totalPaid, TotalInterest: totalPaid - principal}
	if months <= 0 || !finite(p.TotalPaid) || !finite(p.TotalInterest) {
		return Payoff{}, failed()
	}
	return p, nil
}

func failed() *Rejection {
	return reject(ComputationFailed, "could not compute a valid payoff: try adjusting the payment or interest rate")
}

func finite(x float64) bool { return !math.IsNaN(x) && !math.IsInf(x, 0) }
