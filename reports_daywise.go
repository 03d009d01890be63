package khata

import (
	"fmt"
	"sort"

	"github.com/sangam/khata/date"
)

// TxKind identifies one of the three transaction kinds a daywise report lists.
type TxKind int

const (
	KindSaving TxKind = iota
	KindRepayment
	KindDisbursement
)

func (k TxKind) String() string {
	switch k {
	case KindSaving:
		return "saving"
	case KindRepayment:
		return "repayment"
	case KindDisbursement:
		return "disbursement"
	default:
		return "unknown"
	}
}

// DaywiseEntry is one transaction line in a daywise report. The amount
// carries the saving row's sign, so a withdrawal shows as negative.
type DaywiseEntry struct {
	On     date.Date
	Kind   TxKind
	Member Member
	Label  string // product name, or the loan's purpose for disbursements
	Amount Money
}

// DaywiseSummary folds the period's entries into the four collection-screen
// figures. Collection is savings plus repayments; Payments and NewLoans are
// both the disbursement total, as the original screen reported them.
type DaywiseSummary struct {
	Collection Money
	Payments   Money
	Recovery   Money
	NewLoans   Money
}

// DaywiseReport lists every transaction in a date range in chronological order.
type DaywiseReport struct {
	Range   date.Range
	Entries []DaywiseEntry
	Summary DaywiseSummary
}

// NewDaywiseReport builds the daywise report for a date range in one pass
// over the book. Loans count as disbursed on their approval date.
func (s *Store) NewDaywiseReport(rng date.Range) (*DaywiseReport, error) {
	report := &DaywiseReport{Range: rng}

	for _, v := range s.Savings.All() {
		if !rng.Contains(v.On) {
			continue
		}
		member, err := s.Member(v.MemberID)
		if err != nil {
			return nil, err
		}
		label := fmt.Sprintf("product %d", v.ProductID)
		if p, ok := s.SavingProducts.Get(v.ProductID); ok {
			label = p.Name
		}
		report.Entries = append(report.Entries, DaywiseEntry{
			On: v.On, Kind: KindSaving, Member: member, Label: label, Amount: v.Amount,
		})
		report.Summary.Collection = report.Summary.Collection.Add(v.Amount)
	}

	for _, r := range s.Repayments.All() {
		if !rng.Contains(r.On) {
			continue
		}
		loan, err := s.Loan(r.LoanID)
		if err != nil {
			return nil, err
		}
		member, err := s.Member(loan.MemberID)
		if err != nil {
			return nil, err
		}
		report.Entries = append(report.Entries, DaywiseEntry{
			On: r.On, Kind: KindRepayment, Member: member,
			Label: fmt.Sprintf("loan %d", loan.ID), Amount: r.Amount,
		})
		report.Summary.Collection = report.Summary.Collection.Add(r.Amount)
		report.Summary.Recovery = report.Summary.Recovery.Add(r.Amount)
	}

	for _, l := range s.Loans.All() {
		if l.Status != LoanApproved || l.ApprovedOn == nil || !rng.Contains(*l.ApprovedOn) {
			continue
		}
		member, err := s.Member(l.MemberID)
		if err != nil {
			return nil, err
		}
		label := l.Purpose
		if label == "" {
			if p, ok := s.LoanProducts.Get(l.ProductID); ok {
				label = p.Name
			}
		}
		report.Entries = append(report.Entries, DaywiseEntry{
			On: *l.ApprovedOn, Kind: KindDisbursement, Member: member, Label: label, Amount: l.Amount,
		})
		report.Summary.Payments = report.Summary.Payments.Add(l.Amount)
		report.Summary.NewLoans = report.Summary.NewLoans.Add(l.Amount)
	}

	sort.SliceStable(report.Entries, func(i, j int) bool {
		return report.Entries[i].On.Before(report.Entries[j].On)
	})
	return report, nil
}
