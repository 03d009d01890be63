package renderer

import (
	"strings"
	"testing"
	"time"

	"github.com/sangam/khata"
	"github.com/sangam/khata/date"
	"github.com/shopspring/decimal"
)

func newReportBook(t *testing.T) *khata.Store {
	t.Helper()
	s := khata.NewStore()
	group, err := s.CreateGroup(khata.Group{Code: "G1", Name: "Mahila Mandal", Active: true})
	if err != nil {
		t.Fatal(err)
	}
	for _, name := range []string{"Asha", "Bina"} {
		if _, err := s.EnrollMember(khata.Member{GroupID: group.ID, Name: name, Status: khata.MemberActive, Type: khata.Primary, JoinedOn: date.New(2024, time.June, 1)}); err != nil {
			t.Fatal(err)
		}
	}
	if _, err := s.CreateSavingProduct(khata.SavingProduct{Code: "RD", Name: "Weekly Savings", Active: true}); err != nil {
		t.Fatal(err)
	}
	if _, err := s.CreateLoanProduct(khata.LoanProduct{Code: "GL", Name: "Group Loan", Rate: decimal.NewFromInt(12), Active: true}); err != nil {
		t.Fatal(err)
	}
	if _, err := s.Collect(khata.Saving{MemberID: 1, ProductID: 1, Amount: khata.M(500), On: date.New(2025, time.January, 12)}); err != nil {
		t.Fatal(err)
	}
	loan, err := s.ApplyLoan(khata.Loan{MemberID: 1, ProductID: 1, Amount: khata.M(10000), Tenor: 12, AppliedOn: date.New(2025, time.January, 5)})
	if err != nil {
		t.Fatal(err)
	}
	if _, err := s.ApproveLoan(loan.ID, date.New(2025, time.January, 10)); err != nil {
		t.Fatal(err)
	}
	if _, err := s.Repay(khata.Repayment{LoanID: loan.ID, Amount: khata.M(933), On: date.New(2025, time.February, 10)}); err != nil {
		t.Fatal(err)
	}
	return s
}

func assertContains(t *testing.T, doc string, wants ...string) {
	t.Helper()
	for _, want := range wants {
		if !strings.Contains(doc, want) {
			t.Errorf("document is missing %q:\n%s", want, doc)
		}
	}
}

func TestMemberwiseMarkdown(t *testing.T) {
	s := newReportBook(t)
	report, err := s.NewMemberwiseReport(nil, date.Range{})
	if err != nil {
		t.Fatal(err)
	}
	doc := MemberwiseMarkdown(report)
	assertContains(t, doc, "# Memberwise Report (all time)", "Asha", "Bina", "Pending Due", "Total")
}

func TestDaywiseMarkdown(t *testing.T) {
	s := newReportBook(t)
	day := date.New(2025, time.February, 10)
	report, err := s.NewDaywiseReport(date.NewRange(day, day))
	if err != nil {
		t.Fatal(err)
	}
	doc := DaywiseMarkdown(report)
	assertContains(t, doc, "# Daywise Report", "repayment", "Asha", "## Summary", "Recovery", "933")
}

func TestMonthlyMarkdown(t *testing.T) {
	s := newReportBook(t)
	doc := MonthlyMarkdown(s.NewMonthlyReport(2025, time.January))
	assertContains(t, doc, "# Monthly Report for January 2025", "2025-01-12", "Total", "500")
}

func TestAnnualMarkdown(t *testing.T) {
	s := newReportBook(t)
	doc := AnnualMarkdown(s.NewAnnualReport(2025))
	assertContains(t, doc, "# Annual Report 2025", "January", "December", "## Year End", "Net Cash Flow", "Active Loans")
}

func TestScheduleMarkdown(t *testing.T) {
	s := newReportBook(t)
	loan, err := s.Loan(1)
	if err != nil {
		t.Fatal(err)
	}
	rows, err := s.Schedule(loan.ID)
	if err != nil {
		t.Fatal(err)
	}
	doc := ScheduleMarkdown(loan, rows)
	assertContains(t, doc, "# Repayment Schedule for Loan 1", "Opening", "2025-01-10", "2025-02-10")
}
