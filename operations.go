package khata

import (
	"errors"
	"fmt"

	"github.com/sangam/khata/date"
)

// Bookkeeping operations: the validated mutations behind the collection and
// loan screens. Each operation checks its references and quick-fixes what it
// safely can (a missing date becomes today) before touching the store, so a
// failed operation leaves the book unchanged.

// EnrollMember validates and creates a member record.
func (s *Store) EnrollMember(m Member) (Member, error) {
	if m.Name == "" {
		return m, errors.New("member name is missing")
	}
	if _, err := s.Group(m.GroupID); err != nil {
		return m, err
	}
	if m.JoinedOn.IsZero() {
		m.JoinedOn = date.Today()
	}
	return s.Members.Create(m)
}

// CreateGroup validates and creates a group. The code must be unique; the
// store enforces that.
func (s *Store) CreateGroup(g Group) (Group, error) {
	if g.Code == "" {
		return g, errors.New("group code is missing")
	}
	if g.StaffID != 0 {
		if _, ok := s.Users.Get(g.StaffID); !ok {
			return g, fmt.Errorf("staff %d: %w", g.StaffID, ErrNotFound)
		}
	}
	return s.Groups.Create(g)
}

// CreateSavingProduct validates and creates a saving product.
func (s *Store) CreateSavingProduct(p SavingProduct) (SavingProduct, error) {
	if p.Code == "" {
		return p, errors.New("saving product code is missing")
	}
	if p.Rate.IsNegative() {
		return p, fmt.Errorf("saving product rate must not be negative, got %s", p.Rate)
	}
	return s.SavingProducts.Create(p)
}

// CreateLoanProduct validates and creates a loan product.
func (s *Store) CreateLoanProduct(p LoanProduct) (LoanProduct, error) {
	if p.Code == "" {
		return p, errors.New("loan product code is missing")
	}
	if p.Rate.IsNegative() {
		return p, fmt.Errorf("loan product rate must not be negative, got %s", p.Rate)
	}
	if p.MaxAmount.IsNegative() {
		return p, fmt.Errorf("loan product max amount must not be negative, got %s", p.MaxAmount)
	}
	return s.LoanProducts.Create(p)
}

// Collect appends one saving ledger line. A positive amount is a deposit, a
// negative one a withdrawal. Withdrawals are allowed to exceed the member's
// accumulated balance, matching the original system's policy.
func (s *Store) Collect(v Saving) (Saving, error) {
	if err := s.validateSaving(&v); err != nil {
		return v, err
	}
	return s.Savings.Create(v)
}

// CollectBatch appends a batch of saving lines with all-or-nothing
// semantics: every row is validated before any is appended, so a bad row in
// a bulk collection does not leave some members credited and others not.
func (s *Store) CollectBatch(rows []Saving) ([]Saving, error) {
	for i := range rows {
		if err := s.validateSaving(&rows[i]); err != nil {
			return nil, fmt.Errorf("row %d: %w", i+1, err)
		}
	}
	out := make([]Saving, 0, len(rows))
	for _, v := range rows {
		created, err := s.Savings.Create(v)
		if err != nil {
			return nil, err
		}
		out = append(out, created)
	}
	return out, nil
}

func (s *Store) validateSaving(v *Saving) error {
	if v.ID != 0 {
		return fmt.Errorf("savings: %w", ErrIDSupplied)
	}
	if v.Amount.IsZero() {
		return errors.New("saving amount must not be zero")
	}
	if _, err := s.Member(v.MemberID); err != nil {
		return err
	}
	if _, ok := s.SavingProducts.Get(v.ProductID); !ok {
		return fmt.Errorf("saving product %d: %w", v.ProductID, ErrNotFound)
	}
	if v.On.IsZero() {
		v.On = date.Today()
	}
	return nil
}

// ApplyLoan validates and records a loan application in pending status.
// A zero rate is filled from the product; the tenor must be explicit. Both
// are fixed for the life of the loan.
func (s *Store) ApplyLoan(l Loan) (Loan, error) {
	if _, err := s.Member(l.MemberID); err != nil {
		return l, err
	}
	product, ok := s.LoanProducts.Get(l.ProductID)
	if !ok {
		return l, fmt.Errorf("loan product %d: %w", l.ProductID, ErrNotFound)
	}
	if !l.Amount.IsPositive() {
		return l, fmt.Errorf("loan amount must be positive, got %s", l.Amount)
	}
	if product.MaxAmount.IsPositive() && product.MaxAmount.LessThan(l.Amount) {
		return l, fmt.Errorf("loan amount %s exceeds product maximum %s", l.Amount, product.MaxAmount)
	}
	if l.Tenor <= 0 {
		return l, fmt.Errorf("tenor %d months: %w", l.Tenor, ErrInvalidTenor)
	}
	if l.Rate.IsNegative() {
		return l, fmt.Errorf("loan rate must not be negative, got %s", l.Rate)
	}
	if l.Rate.IsZero() {
		l.Rate = product.Rate
	}
	if l.AppliedOn.IsZero() {
		l.AppliedOn = date.Today()
	}
	l.Status = LoanPending
	l.ApprovedOn = nil
	l.EMI = Money{}
	return s.Loans.Create(l)
}

// ApproveLoan transitions a pending loan to approved on the given date and
// fixes its quoted EMI. The transition is monotonic: approving a loan that
// is not pending is an error.
func (s *Store) ApproveLoan(id int, on date.Date) (Loan, error) {
	loan, err := s.Loan(id)
	if err != nil {
		return Loan{}, err
	}
	if loan.Status != LoanPending {
		return loan, fmt.Errorf("loan %d is %s, cannot approve", id, loan.Status)
	}
	emi, err := EMI(loan.Amount, loan.Rate, loan.Tenor)
	if err != nil {
		return loan, err
	}
	if on.IsZero() {
		on = date.Today()
	}
	updated, _, err := s.Loans.Update(id, func(l *Loan) {
		l.Status = LoanApproved
		l.ApprovedOn = &on
		l.EMI = emi
	})
	return updated, err
}

// RejectLoan transitions a pending loan to rejected, terminally.
func (s *Store) RejectLoan(id int) (Loan, error) {
	loan, err := s.Loan(id)
	if err != nil {
		return Loan{}, err
	}
	if loan.Status != LoanPending {
		return loan, fmt.Errorf("loan %d is %s, cannot reject", id, loan.Status)
	}
	updated, _, err := s.Loans.Update(id, func(l *Loan) { l.Status = LoanRejected })
	return updated, err
}

// Repay appends one repayment ledger line against an approved loan. An
// over-payment is accepted: the signed outstanding reports it.
func (s *Store) Repay(r Repayment) (Repayment, error) {
	if r.ID != 0 {
		return r, fmt.Errorf("loanRepayments: %w", ErrIDSupplied)
	}
	loan, err := s.Loan(r.LoanID)
	if err != nil {
		return r, err
	}
	if loan.Status != LoanApproved {
		return r, fmt.Errorf("loan %d is %s, cannot accept repayment", loan.ID, loan.Status)
	}
	if !r.Amount.IsPositive() {
		return r, fmt.Errorf("repayment amount must be positive, got %s", r.Amount)
	}
	if r.On.IsZero() {
		r.On = date.Today()
	}
	if r.Kind == "" {
		r.Kind = "emi"
	}
	return s.Repayments.Create(r)
}

// RecordMeeting validates and records a group meeting. Every attendee must
// resolve to a member of the meeting's group.
func (s *Store) RecordMeeting(m Meeting) (Meeting, error) {
	if _, err := s.Group(m.GroupID); err != nil {
		return m, err
	}
	if m.TypeID != 0 {
		if _, ok := s.MeetingTypes.Get(m.TypeID); !ok {
			return m, fmt.Errorf("meeting type %d: %w", m.TypeID, ErrNotFound)
		}
	}
	for _, id := range m.Attendees {
		member, err := s.Member(id)
		if err != nil {
			return m, err
		}
		if member.GroupID != m.GroupID {
			return m, fmt.Errorf("member %d does not belong to group %d", id, m.GroupID)
		}
	}
	if m.On.IsZero() {
		m.On = date.Today()
	}
	return s.Meetings.Create(m)
}
