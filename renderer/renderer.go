// Package renderer turns reports into markdown documents. It holds no
// business logic: every figure is computed by the khata package and only
// formatted here.
package renderer

import (
	"github.com/sangam/khata"
	"github.com/sangam/khata/date"
)

// period formats a date range for a report title. An unset range reads as
// the whole book.
func period(rng date.Range) string {
	if rng.IsZero() {
		return "all time"
	}
	return rng.From.String() + " to " + rng.To.String()
}

// amount formats a money column cell.
func amount(m khata.Money) string { return m.Display() }

// signedAmount formats a money cell where zero should read as a dash.
func signedAmount(m khata.Money) string { return m.SignedString() }
