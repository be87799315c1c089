package debtplan

import (
	"errors"
	"fmt"
)

// Reason enumerates why a calculation was rejected.
type Reason string

const (
	NonPositiveInput     Reason = "non_positive_input"     // principal or payment <= 0
	NegativeRate         Reason = "negative_rate"          // annual rate < 0
	PaymentBelowInterest Reason = "payment_below_interest" // payment does not cover the first month interest
	PaymentTooLow        Reason = "payment_too_low"        // payment - r*principal <= 0
	ComputationFailed    Reason = "computation_failed"     // non finite or non positive period count
	InvalidBudget        Reason = "invalid_budget"         // monthly budget <= 0
	NoDebts              Reason = "no_debts"               // empty debt set
	InvalidStrategy      Reason = "invalid_strategy"       // unknown Strategy value
	DebtUnpayable        Reason = "debt_unpayable"         // one debt of the plan cannot be paid with the budget
)

// Rejection is the error returned when an input cannot produce a result.
//
// It is an expected business outcome ("this debt cannot be paid off with
// this payment"), its Error() is suitable for direct display.
type Rejection struct {
	Reason  Reason
	Debt    string // name of the offending debt, if any
	Message string
	Err     error // underlying rejection, if any
}

func (r *Rejection) Error() string {
	if r.Message == "" {
		return string(r.Reason)
	}
	return r.Message
}

func (r *Rejection) Unwrap() error { return r.Err }

func reject(reason Reason, format string, args ...any) *Rejection {
	return &Rejection{Reason: reason, Message: fmt.Sprintf(format, args...)}
}

// ReasonOf returns the Reason of the outermost Rejection in err's chain, or
// "" if err is not a rejection.
func ReasonOf(err error) Reason {
	var r *Rejection
	if errors.As(err, &r) {
		return r.Reason
	}
	return ""
}
