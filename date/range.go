package date

import "time"

// Range represents an inclusive range of dates.
type Range struct{ From, To Date }

// NewRange returns the range [from, to], inclusive on both ends.
func NewRange(from, to Date) Range { return Range{From: from, To: to} }

// MonthOf returns the range covering one calendar month.
func MonthOf(year int, month time.Month) Range {
	return Range{
		From: New(year, month, 1),
		To:   New(year, month, DaysIn(year, month)),
	}
}

// YearOf returns the range covering one calendar year.
func YearOf(year int) Range {
	return Range{
		From: New(year, time.January, 1),
		To:   New(year, time.December, 31),
	}
}

// Contains return true if date is included in the range (boundaries
// included). An unset boundary does not bound.
func (r Range) Contains(d Date) bool {
	if !r.From.IsZero() && d.Before(r.From) {
		return false
	}
	if !r.To.IsZero() && d.After(r.To) {
		return false
	}
	return true
}

// IsZero reports whether the range is unset. An unset range contains every date.
func (r Range) IsZero() bool { return r.From.IsZero() && r.To.IsZero() }

// Days returns the number of days in the range.
func (r Range) Days() int {
	if r.To.Before(r.From) {
		return 0
	}
	n := 0
	for d := r.From; !d.After(r.To); d = d.Add(1) {
		n++
	}
	return n
}
