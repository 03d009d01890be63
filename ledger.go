package khata

import (
	"fmt"
	"sort"

	"github.com/sangam/khata/date"
	"github.com/shopspring/decimal"
)

// The ledger engine derives every financial quantity from the append-only
// saving and repayment rows. All functions here are pure reads over the
// store: no mutation, no I/O, total over well-formed input.
//
// Two formulas coexist, deliberately:
//
//   - EMI quotes the installment with the standard reducing-balance formula;
//   - TotalPayable, Outstanding and Schedule account with the flat
//     simple-interest total (amount + amount*rate*tenor/1200).
//
// The quoted EMI is fixed on the loan at approval; the book itself (demand,
// outstanding, schedule rows) always derives from the flat total.

var (
	one           = decimal.NewFromInt(1)
	twelveHundred = decimal.NewFromInt(1200)
)

// SavingsBalance returns the sum of signed saving amounts for a member,
// restricted to rng when it is set (inclusive on both ends). The member
// reference must resolve; withdrawals may drive the balance negative, which
// is reported as-is.
func (s *Store) SavingsBalance(memberID int, rng date.Range) (Money, error) {
	if _, err := s.Member(memberID); err != nil {
		return Money{}, err
	}
	var balance Money
	for _, row := range s.Savings.All() {
		if row.MemberID != memberID {
			continue
		}
		if !rng.IsZero() && !rng.Contains(row.On) {
			continue
		}
		balance = balance.Add(row.Amount)
	}
	return balance, nil
}

// EMI computes the reducing-balance equated monthly installment, rounded to
// the nearest whole currency unit. A zero rate degenerates to a flat division
// of the principal. A zero or negative tenor fails with ErrInvalidTenor.
func EMI(principal Money, annualRatePct decimal.Decimal, tenorMonths int) (Money, error) {
	if tenorMonths <= 0 {
		return Money{}, fmt.Errorf("tenor %d months: %w", tenorMonths, ErrInvalidTenor)
	}
	n := decimal.NewFromInt(int64(tenorMonths))
	if annualRatePct.IsZero() {
		return principal.Div(n).Round(), nil
	}
	i := annualRatePct.Div(twelveHundred)
	pow := one.Add(i).Pow(n)
	emi := principal.Decimal().Mul(i).Mul(pow).Div(pow.Sub(one))
	return MoneyFromDecimal(emi).Round(), nil
}

// TotalPayable returns the flat simple-interest total for a loan:
// amount + amount*rate*tenor/1200.
func TotalPayable(l Loan) Money {
	interest := l.Amount.Decimal().
		Mul(l.Rate).
		Mul(decimal.NewFromInt(int64(l.Tenor))).
		Div(twelveHundred)
	return l.Amount.Add(MoneyFromDecimal(interest))
}

// RepaidTotal returns the sum of all repayment rows against a loan.
func (s *Store) RepaidTotal(loanID int) (Money, error) {
	if _, err := s.Loan(loanID); err != nil {
		return Money{}, err
	}
	var total Money
	for _, r := range s.Repayments.All() {
		if r.LoanID == loanID {
			total = total.Add(r.Amount)
		}
	}
	return total, nil
}

// Outstanding returns TotalPayable minus the repayments to date. The value
// is signed: a negative result signals over-payment and is never clamped
// here — callers that want a floor of zero clamp in the aggregation layer.
func (s *Store) Outstanding(loanID int) (Money, error) {
	loan, err := s.Loan(loanID)
	if err != nil {
		return Money{}, err
	}
	repaid, err := s.RepaidTotal(loanID)
	if err != nil {
		return Money{}, err
	}
	return TotalPayable(loan).Sub(repaid), nil
}

// Installment is one row of an amortization schedule.
type Installment struct {
	Seq       int       // 1-based sequence number
	DueOn     date.Date // due month, anchored on the loan's issue date
	Opening   Money     // balance at the start of the row, clamped at 0
	Principal Money     // flat monthly principal
	Interest  Money     // flat monthly interest
	Total     Money     // Principal + Interest
	Paid      bool      // true when a repayment fell in the due month
	PaidOn    date.Date // date of that repayment (zero when Paid is false)
	PaidAmt   Money     // amount of that repayment
}

// Schedule produces the loan's amortization schedule: exactly tenor rows,
// one per month starting at the loan's issue date, with flat monthly
// principal and interest.
//
// A repayment is matched to a row by calendar month and year equality with
// the row's due date, not by running balance. Multiple repayments in one
// month collapse onto one row: the earliest wins, the rest are not shown.
func (s *Store) Schedule(loanID int) ([]Installment, error) {
	loan, err := s.Loan(loanID)
	if err != nil {
		return nil, err
	}
	if loan.Tenor <= 0 {
		return nil, fmt.Errorf("loan %d tenor %d months: %w", loan.ID, loan.Tenor, ErrInvalidTenor)
	}

	tenor := decimal.NewFromInt(int64(loan.Tenor))
	principal := loan.Amount.Div(tenor).Round()
	interest := MoneyFromDecimal(loan.Amount.Decimal().Mul(loan.Rate).Div(twelveHundred)).Round()

	repayments := s.Repayments.Find(func(r Repayment) bool { return r.LoanID == loanID })
	sort.SliceStable(repayments, func(i, j int) bool { return repayments[i].On.Before(repayments[j].On) })

	issued := loan.IssuedOn()
	rows := make([]Installment, 0, loan.Tenor)
	opening := loan.Amount
	for k := 0; k < loan.Tenor; k++ {
		row := Installment{
			Seq:       k + 1,
			DueOn:     issued.AddMonths(k),
			Opening:   opening,
			Principal: principal,
			Interest:  interest,
			Total:     principal.Add(interest),
		}
		for _, r := range repayments {
			if r.On.SameMonth(row.DueOn) {
				row.Paid = true
				row.PaidOn = r.On
				row.PaidAmt = r.Amount
				break
			}
		}
		rows = append(rows, row)

		opening = opening.Sub(principal)
		if opening.IsNegative() {
			opening = Money{}
		}
	}
	return rows, nil
}
