package debtplan

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/etnz/debtplan/date"
	"github.com/google/go-cmp/cmp"
)

func sampleDebts() []Debt {
	return []Debt{
		{Name: "A", Principal: 5000, Rate: 0.10},
		{Name: "B", Principal: 1000, Rate: 0.20},
		{Name: "C", Principal: 3000, Rate: 0.05},
	}
}

func names(rows []StrategyRow) []string {
	var res []string
	for _, r := range rows {
		res = append(res, r.Debt.Name)
	}
	return res
}

func TestParseStrategy(t *testing.T) {
	for in, want := range map[string]Strategy{"snowball": Snowball, "Avalanche": Avalanche, " SNOWBALL ": Snowball} {
		got, err := ParseStrategy(in)
		if err != nil || got != want {
			t.Errorf("ParseStrategy(%q) = %q, %v, want %q", in, got, err, want)
		}
	}
	if _, err := ParseStrategy("minimums"); err == nil {
		t.Error("ParseStrategy(\"minimums\") expected an error")
	}
}

func TestStrategyOrder(t *testing.T) {
	testCases := []struct {
		strategy Strategy
		want     []string
	}{
		{Snowball, []string{"B", "C", "A"}},
		{Avalanche, []string{"B", "A", "C"}},
	}
	for _, tc := range testCases {
		t.Run(string(tc.strategy), func(t *testing.T) {
			var got []string
			for _, d := range tc.strategy.Order(sampleDebts()) {
				got = append(got, d.Name)
			}
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Errorf("Order() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestStrategyOrderIsStable(t *testing.T) {
	debts := []Debt{
		{Name: "first", Principal: 100, Rate: 0.1},
		{Name: "second", Principal: 100, Rate: 0.1},
		{Name: "third", Principal: 50, Rate: 0.1},
	}
	want := map[Strategy][]string{
		Snowball:  {"third", "first", "second"},
		Avalanche: {"first", "second", "third"},
	}
	for s, w := range want {
		var got []string
		for _, d := range s.Order(debts) {
			got = append(got, d.Name)
		}
		if diff := cmp.Diff(w, got); diff != "" {
			t.Errorf("%s Order() mismatch (-want +got):\n%s", s, diff)
		}
	}
	if debts[0].Name != "first" || debts[2].Name != "third" {
		t.Errorf("Order() modified its input: %v", debts)
	}
}

func TestSimulateStrategy(t *testing.T) {
	today := date.New(2025, time.January, 31)
	debts := sampleDebts()

	testCases := []struct {
		strategy Strategy
		want     []StrategyRow
	}{
		{
			strategy: Snowball,
			want: []StrategyRow{
				{Debt: debts[1], Months: 3, CumulativeMonths: 3, Payment: 500, PayoffDate: date.New(2025, time.April, 30), TotalPaid: 1500, TotalInterest: 500},
				{Debt: debts[2], Months: 7, CumulativeMonths: 10, Payment: 500, PayoffDate: date.New(2025, time.November, 30), TotalPaid: 3500, TotalInterest: 500},
				{Debt: debts[0], Months: 11, CumulativeMonths: 21, Payment: 500, PayoffDate: date.New(2026, time.October, 31), TotalPaid: 5500, TotalInterest: 500},
			},
		},
		{
			strategy: Avalanche,
			want: []StrategyRow{
				{Debt: debts[1], Months: 3, CumulativeMonths: 3, Payment: 500, PayoffDate: date.New(2025, time.April, 30), TotalPaid: 1500, TotalInterest: 500},
				{Debt: debts[0], Months: 11, CumulativeMonths: 14, Payment: 500, PayoffDate: date.New(2026, time.March, 31), TotalPaid: 5500, TotalInterest: 500},
				{Debt: debts[2], Months: 7, CumulativeMonths: 21, Payment: 500, PayoffDate: date.New(2026, time.October, 31), TotalPaid: 3500, TotalInterest: 500},
			},
		},
	}
	for _, tc := range testCases {
		t.Run(string(tc.strategy), func(t *testing.T) {
			plan, err := SimulateStrategy(debts, tc.strategy, 500, today)
			if err != nil {
				t.Fatalf("SimulateStrategy() error = %v", err)
			}
			if diff := cmp.Diff(tc.want, plan.Rows, cmp.AllowUnexported(date.Date{})); diff != "" {
				t.Errorf("SimulateStrategy() rows mismatch (-want +got):\n%s", diff)
			}
			if plan.Months() != 21 {
				t.Errorf("Months() = %d, want 21", plan.Months())
			}
			if plan.TotalInterest() != 1500 || plan.TotalPaid() != 10500 {
				t.Errorf("TotalInterest(), TotalPaid() = %v, %v, want 1500, 10500", plan.TotalInterest(), plan.TotalPaid())
			}
			if plan.Message == "" {
				t.Error("SimulateStrategy() message is empty")
			}
		})
	}
}

func TestSimulateStrategySkipsPaidOffDebts(t *testing.T) {
	debts := append(sampleDebts(), Debt{Name: "done", Principal: 0, Rate: 0.3}, Debt{Name: "credit", Principal: -20})
	plan, err := SimulateStrategy(debts, Avalanche, 500, date.New(2025, time.March, 1))
	if err != nil {
		t.Fatalf("SimulateStrategy() error = %v", err)
	}
	if diff := cmp.Diff([]string{"B", "A", "C"}, names(plan.Rows)); diff != "" {
		t.Errorf("rows mismatch (-want +got):\n%s", diff)
	}
	if len(plan.Skipped) != 2 || plan.Months() != 21 {
		t.Errorf("Skipped = %v, Months() = %d, want 2 skipped debts and 21 months", plan.Skipped, plan.Months())
	}
}

func TestSimulateStrategyAllPaidOff(t *testing.T) {
	plan, err := SimulateStrategy([]Debt{{Name: "done"}}, Snowball, 100, date.New(2025, time.March, 1))
	if err != nil {
		t.Fatalf("SimulateStrategy() error = %v", err)
	}
	if len(plan.Rows) != 0 || plan.Months() != 0 {
		t.Errorf("SimulateStrategy() = %+v, want no rows", plan)
	}
}

func TestSimulateStrategyRejections(t *testing.T) {
	today := date.New(2025, time.March, 1)
	testCases := []struct {
		name     string
		debts    []Debt
		strategy Strategy
		budget   float64
		want     Reason
	}{
		{"zero budget", sampleDebts(), Snowball, 0, InvalidBudget},
		{"negative budget", sampleDebts(), Snowball, -100, InvalidBudget},
		{"budget before debts", nil, Snowball, 0, InvalidBudget},
		{"no debts", nil, Avalanche, 500, NoDebts},
		{"unknown strategy", sampleDebts(), "minimums", 500, InvalidStrategy},
		{"unpayable last in snowball", sampleDebts(), Snowball, 40, DebtUnpayable},
		{"unpayable second in avalanche", sampleDebts(), Avalanche, 40, DebtUnpayable},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			plan, err := SimulateStrategy(tc.debts, tc.strategy, tc.budget, today)
			if err == nil {
				t.Fatalf("SimulateStrategy() = %+v, want rejection %q", plan, tc.want)
			}
			if r := ReasonOf(err); r != tc.want {
				t.Errorf("SimulateStrategy() reason = %q, want %q", r, tc.want)
			}
		})
	}
}

func TestSimulateStrategyNamesUnpayableDebt(t *testing.T) {
	_, err := SimulateStrategy(sampleDebts(), Avalanche, 40, date.New(2025, time.March, 1))
	var rej *Rejection
	if !errors.As(err, &rej) {
		t.Fatalf("SimulateStrategy() error = %v, want *Rejection", err)
	}
	if rej.Debt != "A" || !strings.Contains(rej.Error(), `"A"`) {
		t.Errorf("rejection = %+v, want it to name debt A", rej)
	}
	// the underlying solver rejection is reachable.
	var cause *Rejection
	if !errors.As(rej.Unwrap(), &cause) || cause.Reason != PaymentBelowInterest {
		t.Errorf("rejection cause = %v, want %q", rej.Unwrap(), PaymentBelowInterest)
	}
}
