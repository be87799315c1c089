package date

import (
	"encoding/json"
	"testing"
	"time"
)

// TestTime assert that the time() is cannonical and gives comparable times.
func TestTime(t *testing.T) {
	d1 := New(2025, 7, 31)
	d2 := New(2025, 7, 31)

	if d1.time() != d2.time() {
		// Note that usually time.Time are not comparable (there is a pointer for the timezone) this
		// tests also checks that the property remain true
		t.Errorf("invalid time() function same day gives two different time")
	}
}

func TestNewNormalizes(t *testing.T) {
	if got, want := New(2025, time.February, 30), New(2025, time.March, 2); got != want {
		t.Errorf("New(2025, 2, 30) = %v, want %v", got, want)
	}
}

func TestAddMonths(t *testing.T) {
	testCases := []struct {
		name string
		in   Date
		n    int
		want Date
	}{
		{"same day", New(2025, time.March, 15), 1, New(2025, time.April, 15)},
		{"zero", New(2025, time.March, 31), 0, New(2025, time.March, 31)},
		{"clamp to february", New(2025, time.January, 31), 1, New(2025, time.February, 28)},
		{"clamp to leap february", New(2024, time.January, 31), 1, New(2024, time.February, 29)},
		{"clamp to 30 days", New(2025, time.March, 31), 1, New(2025, time.April, 30)},
		{"across year", New(2025, time.November, 30), 3, New(2026, time.February, 28)},
		{"many years", New(2025, time.October, 17), 120, New(2035, time.October, 17)},
		{"backward", New(2025, time.March, 31), -1, New(2025, time.February, 28)},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.in.AddMonths(tc.n); got != tc.want {
				t.Errorf("%v.AddMonths(%d) = %v, want %v", tc.in, tc.n, got, tc.want)
			}
		})
	}
}

func TestAddMonthsDoesNotAccumulateClamping(t *testing.T) {
	// Each offset is computed from the start date, so the day comes back after a short month.
	start := New(2025, time.January, 31)
	if got, want := start.AddMonths(2), New(2025, time.March, 31); got != want {
		t.Errorf("AddMonths(2) = %v, want %v", got, want)
	}
}

func TestDaysIn(t *testing.T) {
	for _, tc := range []struct {
		y    int
		m    time.Month
		want int
	}{
		{2025, time.February, 28},
		{2024, time.February, 29},
		{2025, time.April, 30},
		{2025, time.December, 31},
	} {
		if got := DaysIn(tc.y, tc.m); got != tc.want {
			t.Errorf("DaysIn(%d, %v) = %d, want %d", tc.y, tc.m, got, tc.want)
		}
	}
}

func TestParse(t *testing.T) {
	d, err := Parse("2025-7-1")
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if want := New(2025, time.July, 1); d != want {
		t.Errorf("Parse() = %v, want %v", d, want)
	}
	if _, err := Parse("July 1st"); err == nil {
		t.Error("Parse(\"July 1st\") expected an error")
	}
}

func TestJSON(t *testing.T) {
	var v struct {
		On    Date `json:"on"`
		Empty Date `json:"empty"`
	}
	if err := json.Unmarshal([]byte(`{"on":"2025-09-08","empty":""}`), &v); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	if want := New(2025, time.September, 8); v.On != want {
		t.Errorf("On = %v, want %v", v.On, want)
	}
	if !v.Empty.IsZero() {
		t.Errorf("Empty = %v, want zero", v.Empty)
	}
	got, err := json.Marshal(v)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	if want := `{"on":"2025-09-08","empty":""}`; string(got) != want {
		t.Errorf("Marshal() = %s, want %s", got, want)
	}
}
