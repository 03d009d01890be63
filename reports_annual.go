package khata

import (
	"time"

	"github.com/shopspring/decimal"
)

// interestRateGuess is the flat fraction of recoveries the annual report
// presents as interest earned. The original system hard-coded 15% here
// rather than splitting each repayment into principal and interest, and the
// figure is kept as that same rough estimate.
var interestRateGuess = decimal.RequireFromString("0.15")

// AnnualMonth is one month's totals in an annual report.
type AnnualMonth struct {
	Month      time.Month
	Savings    Money
	Recovery   Money
	Loans      Money
	Collection Money // Savings + Recovery
}

// AnnualReport is the month-by-month cash book for one calendar year, with
// the year-end figures the annual general meeting reads out.
type AnnualReport struct {
	Year   int
	Months [12]AnnualMonth

	TotalSavings  Money
	TotalRecovery Money
	TotalLoans    Money
	NetCashFlow   Money // savings + recoveries - disbursements
	EstInterest   Money // interestRateGuess of TotalRecovery

	ActiveLoans  int // approved on or before year end
	PendingLoans int // applied on or before year end, still pending
}

// NewAnnualReport builds the cash book for one calendar year by folding the
// twelve monthly reports.
func (s *Store) NewAnnualReport(year int) *AnnualReport {
	report := &AnnualReport{Year: year}

	for m := time.January; m <= time.December; m++ {
		monthly := s.NewMonthlyReport(year, m)
		row := &report.Months[m-1]
		row.Month = m
		row.Savings = monthly.TotalSavings
		row.Recovery = monthly.TotalRecovery
		row.Loans = monthly.TotalLoans
		row.Collection = monthly.TotalCollection

		report.TotalSavings = report.TotalSavings.Add(row.Savings)
		report.TotalRecovery = report.TotalRecovery.Add(row.Recovery)
		report.TotalLoans = report.TotalLoans.Add(row.Loans)
	}

	report.NetCashFlow = report.TotalSavings.Add(report.TotalRecovery).Sub(report.TotalLoans)
	report.EstInterest = MoneyFromDecimal(report.TotalRecovery.Decimal().Mul(interestRateGuess)).Round()

	for _, l := range s.Loans.All() {
		switch l.Status {
		case LoanApproved:
			if l.ApprovedOn != nil && l.ApprovedOn.Year() <= year {
				report.ActiveLoans++
			}
		case LoanPending:
			if l.AppliedOn.Year() <= year {
				report.PendingLoans++
			}
		}
	}
	return report
}
