package khata

import (
	"testing"
	"time"

	"github.com/sangam/khata/date"
	"github.com/shopspring/decimal"
)

// newTestBook creates a book with one group, three members and one product of
// each kind, the baseline most tests build on.
func newTestBook(t *testing.T) *Store {
	t.Helper()
	s := NewStore()

	group, err := s.CreateGroup(Group{Code: "G1", Name: "Mahila Mandal", Active: true})
	if err != nil {
		t.Fatalf("CreateGroup() failed: %v", err)
	}
	for _, name := range []string{"Asha", "Bina", "Chaya"} {
		_, err := s.EnrollMember(Member{
			GroupID:  group.ID,
			Name:     name,
			Status:   MemberActive,
			Type:     Primary,
			JoinedOn: date.New(2024, time.June, 1),
		})
		if err != nil {
			t.Fatalf("EnrollMember(%q) failed: %v", name, err)
		}
	}
	if _, err := s.CreateSavingProduct(SavingProduct{Code: "RD", Name: "Weekly Savings", Rate: decimal.NewFromInt(6), Active: true}); err != nil {
		t.Fatalf("CreateSavingProduct() failed: %v", err)
	}
	if _, err := s.CreateLoanProduct(LoanProduct{Code: "GL", Name: "Group Loan", Rate: decimal.NewFromInt(12), MaxAmount: M(100000), Active: true}); err != nil {
		t.Fatalf("CreateLoanProduct() failed: %v", err)
	}
	return s
}

// approveTestLoan applies and approves a loan for member 1, returning it.
func approveTestLoan(t *testing.T, s *Store, amount Money, ratePct int64, tenor int, on date.Date) Loan {
	t.Helper()
	loan, err := s.ApplyLoan(Loan{
		MemberID:  1,
		ProductID: 1,
		Amount:    amount,
		Rate:      decimal.NewFromInt(ratePct),
		Tenor:     tenor,
		Purpose:   "buffalo",
		AppliedOn: on.Add(-5),
	})
	if err != nil {
		t.Fatalf("ApplyLoan() failed: %v", err)
	}
	loan, err = s.ApproveLoan(loan.ID, on)
	if err != nil {
		t.Fatalf("ApproveLoan() failed: %v", err)
	}
	return loan
}
