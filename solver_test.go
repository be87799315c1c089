package debtplan

import (
	"errors"
	"math"
	"testing"
	"time"

	"github.com/etnz/debtplan/date"
)

const epsilon = 1e-9

func TestSolvePayoff(t *testing.T) {
	testCases := []struct {
		name      string
		principal float64
		rate      float64
		payment   float64
		want      Payoff
	}{
		{
			name:      "zero rate with partial last payment",
			principal: 1200, rate: 0, payment: 500,
			want: Payoff{Months: 3, TotalPaid: 1200, TotalInterest: 0},
		},
		{
			name:      "zero rate exact",
			principal: 1000, rate: 0, payment: 250,
			want: Payoff{Months: 4, TotalPaid: 1000, TotalInterest: 0},
		},
		{
			name:      "zero rate single payment",
			principal: 100, rate: 0, payment: 500,
			want: Payoff{Months: 1, TotalPaid: 100, TotalInterest: 0},
		},
		{
			name:      "12% apr",
			principal: 1000, rate: 0.12, payment: 100,
			want: Payoff{Months: 11, TotalPaid: 1100, TotalInterest: 100},
		},
		{
			name:      "one cent above the interest",
			principal: 1000, rate: 0.24, payment: 20.01,
			want: Payoff{Months: 384, TotalPaid: 20.01 * 384, TotalInterest: 20.01*384 - 1000},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := SolvePayoff(tc.principal, tc.rate, tc.payment)
			if err != nil {
				t.Fatalf("SolvePayoff() error = %v", err)
			}
			if got.Months != tc.want.Months {
				t.Errorf("SolvePayoff().Months = %d, want %d", got.Months, tc.want.Months)
			}
			if math.Abs(got.TotalPaid-tc.want.TotalPaid) > epsilon {
				t.Errorf("SolvePayoff().TotalPaid = %v, want %v", got.TotalPaid, tc.want.TotalPaid)
			}
			if math.Abs(got.TotalInterest-tc.want.TotalInterest) > epsilon {
				t.Errorf("SolvePayoff().TotalInterest = %v, want %v", got.TotalInterest, tc.want.TotalInterest)
			}
		})
	}
}

func TestSolvePayoffRejections(t *testing.T) {
	testCases := []struct {
		name      string
		principal float64
		rate      float64
		payment   float64
		want      Reason
	}{
		{"zero principal", 0, 0.1, 100, NonPositiveInput},
		{"negative principal", -10, 0.1, 100, NonPositiveInput},
		{"zero payment", 1000, 0.1, 0, NonPositiveInput},
		{"negative payment", 1000, 0, -5, NonPositiveInput},
		{"zero payment precedes negative rate", 1000, -0.1, 0, NonPositiveInput},
		{"NaN principal", math.NaN(), 0.1, 100, NonPositiveInput},
		{"negative rate", 1000, -0.1, 100, NegativeRate},
		{"payment equals interest", 1000, 0.24, 0.24 / 12 * 1000, PaymentBelowInterest},
		{"payment below interest", 10000, 0.24, 150, PaymentBelowInterest},
		{"NaN rate", 1000, math.NaN(), 100, ComputationFailed},
		{"infinite zero-rate duration", math.MaxFloat64, 0, math.SmallestNonzeroFloat64, ComputationFailed},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := SolvePayoff(tc.principal, tc.rate, tc.payment)
			if err == nil {
				t.Fatalf("SolvePayoff() = %+v, want rejection %q", got, tc.want)
			}
			if r := ReasonOf(err); r != tc.want {
				t.Errorf("SolvePayoff() reason = %q, want %q (%v)", r, tc.want, err)
			}
			var rej *Rejection
			if !errors.As(err, &rej) || rej.Message == "" {
				t.Errorf("SolvePayoff() error %v is not a displayable *Rejection", err)
			}
			if got != (Payoff{}) {
				t.Errorf("SolvePayoff() = %+v, want zero value on rejection", got)
			}
		})
	}
}

func TestSolvePayoffZeroRateExactness(t *testing.T) {
	for _, principal := range []float64{0.01, 1, 99.99, 1200, 5432.1, 1e6} {
		for _, payment := range []float64{0.3, 7, 100, 333.33, 2000} {
			got, err := SolvePayoff(principal, 0, payment)
			if err != nil {
				t.Fatalf("SolvePayoff(%v, 0, %v) error = %v", principal, payment, err)
			}
			if math.Abs(got.TotalInterest) > 1e-6 {
				t.Errorf("SolvePayoff(%v, 0, %v).TotalInterest = %v, want 0", principal, payment, got.TotalInterest)
			}
			if math.Abs(got.TotalPaid-principal) > 1e-6 {
				t.Errorf("SolvePayoff(%v, 0, %v).TotalPaid = %v, want %v", principal, payment, got.TotalPaid, principal)
			}
		}
	}
}

func TestSolvePayoffMonotonic(t *testing.T) {
	const principal, rate = 15000.0, 0.199
	previous := math.MaxInt
	for payment := 250.0; payment <= 16000; payment += 37.5 {
		got, err := SolvePayoff(principal, rate, payment)
		if err != nil {
			t.Fatalf("SolvePayoff(%v) error = %v", payment, err)
		}
		if got.Months > previous {
			t.Fatalf("SolvePayoff(%v).Months = %d, increased from %d", payment, got.Months, previous)
		}
		previous = got.Months
	}
}

func TestSolvePayoffInterestIdentity(t *testing.T) {
	for _, rate := range []float64{0, 0.03, 0.12, 0.299, 1.2} {
		got, err := SolvePayoff(4321.5, rate, 600)
		if err != nil {
			t.Fatalf("SolvePayoff(rate=%v) error = %v", rate, err)
		}
		if d := got.TotalPaid - 4321.5 - got.TotalInterest; math.Abs(d) > epsilon {
			t.Errorf("rate=%v: TotalPaid - principal - TotalInterest = %v, want 0", rate, d)
		}
		if rate > 0 && got.TotalInterest <= 0 {
			t.Errorf("rate=%v: TotalInterest = %v, want > 0", rate, got.TotalInterest)
		}
	}
}

func TestPayoffDate(t *testing.T) {
	p := Payoff{Months: 13}
	if got, want := p.Date(date.New(2025, time.January, 31)), date.New(2026, time.February, 28); got != want {
		t.Errorf("Date() = %v, want %v", got, want)
	}
}
