package date

import (
	"encoding/json"
	"testing"
	"time"
)

func TestParse(t *testing.T) {
	testCases := []struct {
		in   string
		want Date
	}{
		{"2025-01-10", New(2025, time.January, 10)},
		{"2025-1-5", New(2025, time.January, 5)},
	}
	for _, tc := range testCases {
		got, err := Parse(tc.in)
		if err != nil {
			t.Fatalf("Parse(%q) failed: %v", tc.in, err)
		}
		if got != tc.want {
			t.Errorf("Parse(%q) = %s, want %s", tc.in, got, tc.want)
		}
	}
	if _, err := Parse("10/01/2025"); err == nil {
		t.Error("Parse() of a slash date did not fail")
	}
}

func TestAddMonths(t *testing.T) {
	testCases := []struct {
		name string
		in   Date
		add  int
		want Date
	}{
		{"same year", New(2025, time.January, 10), 3, New(2025, time.April, 10)},
		{"across year end", New(2025, time.November, 10), 3, New(2026, time.February, 10)},
		{"month end normalizes", New(2025, time.January, 31), 1, New(2025, time.March, 3)},
		{"zero", New(2025, time.June, 15), 0, New(2025, time.June, 15)},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.in.AddMonths(tc.add); got != tc.want {
				t.Errorf("%s.AddMonths(%d) = %s, want %s", tc.in, tc.add, got, tc.want)
			}
		})
	}
}

func TestSameMonth(t *testing.T) {
	a := New(2025, time.February, 3)
	if !a.SameMonth(New(2025, time.February, 27)) {
		t.Error("same month and year reported different")
	}
	if a.SameMonth(New(2026, time.February, 3)) {
		t.Error("same month of another year reported same")
	}
	if a.SameMonth(New(2025, time.March, 3)) {
		t.Error("another month reported same")
	}
}

func TestDaysIn(t *testing.T) {
	testCases := []struct {
		year  int
		month time.Month
		want  int
	}{
		{2025, time.February, 28},
		{2024, time.February, 29},
		{2025, time.April, 30},
		{2025, time.December, 31},
	}
	for _, tc := range testCases {
		if got := DaysIn(tc.year, tc.month); got != tc.want {
			t.Errorf("DaysIn(%d, %s) = %d, want %d", tc.year, tc.month, got, tc.want)
		}
	}
}

func TestRangeContains(t *testing.T) {
	rng := NewRange(New(2025, time.January, 10), New(2025, time.January, 20))
	testCases := []struct {
		name string
		d    Date
		want bool
	}{
		{"inside", New(2025, time.January, 15), true},
		{"lower boundary", New(2025, time.January, 10), true},
		{"upper boundary", New(2025, time.January, 20), true},
		{"before", New(2025, time.January, 9), false},
		{"after", New(2025, time.January, 21), false},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := rng.Contains(tc.d); got != tc.want {
				t.Errorf("Contains(%s) = %v, want %v", tc.d, got, tc.want)
			}
		})
	}

	var unset Range
	if !unset.IsZero() || !unset.Contains(New(1900, time.January, 1)) {
		t.Error("the unset range must contain every date")
	}
	from := Range{From: New(2025, time.January, 1)}
	if from.Contains(New(2024, time.December, 31)) || !from.Contains(New(2099, time.January, 1)) {
		t.Error("a from-only range must bound below only")
	}
}

func TestJSONRoundTrip(t *testing.T) {
	d := New(2025, time.March, 7)
	b, err := json.Marshal(d)
	if err != nil {
		t.Fatal(err)
	}
	if string(b) != `"2025-03-07"` {
		t.Errorf("marshaled to %s", b)
	}
	var back Date
	if err := json.Unmarshal(b, &back); err != nil {
		t.Fatal(err)
	}
	if back != d {
		t.Errorf("round trip gave %s, want %s", back, d)
	}
}
