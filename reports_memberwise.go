package khata

import (
	"github.com/sangam/khata/date"
)

// MemberwiseRow summarizes one member's position.
//
// PendingDue is the coarse figure the memberwise screen always showed:
// approved principal minus all repayments, clamped at zero. It is not the
// same as summing per-loan Outstanding, which includes interest.
type MemberwiseRow struct {
	Member        Member
	TotalSavings  Money // signed sum over the member's whole savings history
	PeriodSavings Money // signed sum restricted to the report range
	TotalLoans    Money // approved principal, all time
	TotalRepaid   Money // repayments against the member's loans, all time
	PendingDue    Money // TotalLoans - TotalRepaid, clamped at 0
	HasRepayment  bool
	LastRepaidOn  date.Date // zero unless HasRepayment
}

// MemberwiseReport is the memberwise rollup for a member set and period.
type MemberwiseReport struct {
	Range date.Range
	Rows  []MemberwiseRow

	TotalSavings Money
	TotalLoans   Money
	TotalRepaid  Money
	TotalDue     Money
}

// NewMemberwiseReport builds the memberwise report for the given members.
// A nil member set means every member in the book. Every given id must
// resolve. The date range, when set, bounds PeriodSavings only; the loan and
// repayment columns are lifetime figures, as in the original screen.
func (s *Store) NewMemberwiseReport(memberIDs []int, rng date.Range) (*MemberwiseReport, error) {
	var members []Member
	if memberIDs == nil {
		members = s.Members.All()
	} else {
		for _, id := range memberIDs {
			m, err := s.Member(id)
			if err != nil {
				return nil, err
			}
			members = append(members, m)
		}
	}

	report := &MemberwiseReport{Range: rng}
	for _, m := range members {
		row := MemberwiseRow{Member: m}
		for _, v := range s.Savings.All() {
			if v.MemberID != m.ID {
				continue
			}
			row.TotalSavings = row.TotalSavings.Add(v.Amount)
			if rng.IsZero() || rng.Contains(v.On) {
				row.PeriodSavings = row.PeriodSavings.Add(v.Amount)
			}
		}

		loanIDs := make(map[int]bool)
		for _, l := range s.Loans.All() {
			if l.MemberID != m.ID || l.Status != LoanApproved {
				continue
			}
			loanIDs[l.ID] = true
			row.TotalLoans = row.TotalLoans.Add(l.Amount)
		}
		for _, r := range s.Repayments.All() {
			if !loanIDs[r.LoanID] {
				continue
			}
			row.TotalRepaid = row.TotalRepaid.Add(r.Amount)
			if !row.HasRepayment || r.On.After(row.LastRepaidOn) {
				row.HasRepayment = true
				row.LastRepaidOn = r.On
			}
		}

		row.PendingDue = row.TotalLoans.Sub(row.TotalRepaid)
		if row.PendingDue.IsNegative() {
			row.PendingDue = Money{}
		}

		report.Rows = append(report.Rows, row)
		report.TotalSavings = report.TotalSavings.Add(row.TotalSavings)
		report.TotalLoans = report.TotalLoans.Add(row.TotalLoans)
		report.TotalRepaid = report.TotalRepaid.Add(row.TotalRepaid)
		report.TotalDue = report.TotalDue.Add(row.PendingDue)
	}
	return report, nil
}
