package khata

import (
	"time"

	"github.com/sangam/khata/date"
)

// MonthlyDay is one calendar day's totals in a monthly report. Days with no
// activity still get a row, so the report always has one row per day of the
// month.
type MonthlyDay struct {
	On         date.Date
	Savings    Money // signed: withdrawals subtract
	Recovery   Money // repayments received
	Loans      Money // principal disbursed
	Collection Money // Savings + Recovery
}

// MonthlyReport is the day-by-day cash book for one calendar month.
type MonthlyReport struct {
	Year  int
	Month time.Month
	Days  []MonthlyDay

	TotalSavings    Money
	TotalRecovery   Money
	TotalLoans      Money
	TotalCollection Money
	NewMembers      int // members whose join date falls in the month
}

// NewMonthlyReport builds the cash book for one month. Loans count on their
// approval date.
func (s *Store) NewMonthlyReport(year int, month time.Month) *MonthlyReport {
	report := &MonthlyReport{Year: year, Month: month}

	n := date.DaysIn(year, month)
	report.Days = make([]MonthlyDay, n)
	for d := 0; d < n; d++ {
		report.Days[d].On = date.New(year, month, d+1)
	}
	// day index for a date already known to fall in the month
	at := func(on date.Date) *MonthlyDay { return &report.Days[on.Day()-1] }

	rng := date.MonthOf(year, month)
	for _, v := range s.Savings.All() {
		if rng.Contains(v.On) {
			at(v.On).Savings = at(v.On).Savings.Add(v.Amount)
		}
	}
	for _, r := range s.Repayments.All() {
		if rng.Contains(r.On) {
			at(r.On).Recovery = at(r.On).Recovery.Add(r.Amount)
		}
	}
	for _, l := range s.Loans.All() {
		if l.Status == LoanApproved && l.ApprovedOn != nil && rng.Contains(*l.ApprovedOn) {
			at(*l.ApprovedOn).Loans = at(*l.ApprovedOn).Loans.Add(l.Amount)
		}
	}
	for _, m := range s.Members.All() {
		if rng.Contains(m.JoinedOn) {
			report.NewMembers++
		}
	}

	for i := range report.Days {
		day := &report.Days[i]
		day.Collection = day.Savings.Add(day.Recovery)
		report.TotalSavings = report.TotalSavings.Add(day.Savings)
		report.TotalRecovery = report.TotalRecovery.Add(day.Recovery)
		report.TotalLoans = report.TotalLoans.Add(day.Loans)
		report.TotalCollection = report.TotalCollection.Add(day.Collection)
	}
	return report
}
