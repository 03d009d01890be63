package khata

import (
	"fmt"
)

// table is one named collection of records. A single generic implementation
// provides identity allocation, uniqueness checking and CRUD for every record
// shape, instead of duplicating that logic per entity type.
type table[T any] struct {
	name string
	rows []T

	// id gives access to the record's identity field.
	id func(*T) *int
	// code gives access to the record's unique code, or is nil when the
	// collection carries no uniqueness constraint.
	code func(*T) string
	// appendOnly marks ledger collections whose rows are immutable once
	// created. Calling Update or Remove on such a table is a programmer
	// error, not a recoverable condition.
	appendOnly bool
}

func newTable[T any](name string, id func(*T) *int) *table[T] {
	return &table[T]{name: name, id: id}
}

func (t *table[T]) withCode(code func(*T) string) *table[T] {
	t.code = code
	return t
}

func (t *table[T]) asAppendOnly() *table[T] {
	t.appendOnly = true
	return t
}

// Create assigns a fresh identity to rec, appends it, and returns the stored
// record. The store owns identity: a caller-supplied id is rejected. Ids are
// allocated as max(existing)+1, so an id freed by Remove is only reused once
// the live maximum drops below it.
func (t *table[T]) Create(rec T) (T, error) {
	if *t.id(&rec) != 0 {
		return rec, fmt.Errorf("%s: %w", t.name, ErrIDSupplied)
	}
	if t.code != nil {
		if c := t.code(&rec); c != "" && t.codeInUse(c, 0) {
			return rec, fmt.Errorf("%s: code %q: %w", t.name, c, ErrDuplicateCode)
		}
	}
	next := 1
	for i := range t.rows {
		if id := *t.id(&t.rows[i]); id >= next {
			next = id + 1
		}
	}
	*t.id(&rec) = next
	t.rows = append(t.rows, rec)
	return rec, nil
}

// Update applies mutate to the record matched by id and returns the updated
// record. A missing id is a documented no-op: ok is false and no error is
// returned, preserving the permissive semantics of the original system.
// The identity field is restored after mutate, and a code collision
// introduced by the mutation is rejected without modifying the table.
func (t *table[T]) Update(id int, mutate func(*T)) (rec T, ok bool, err error) {
	if t.appendOnly {
		panic(t.name + " is append-only")
	}
	for i := range t.rows {
		if *t.id(&t.rows[i]) != id {
			continue
		}
		updated := t.rows[i]
		mutate(&updated)
		*t.id(&updated) = id
		if t.code != nil {
			if c := t.code(&updated); c != "" && t.codeInUse(c, id) {
				return rec, false, fmt.Errorf("%s: code %q: %w", t.name, c, ErrDuplicateCode)
			}
		}
		t.rows[i] = updated
		return updated, true, nil
	}
	return rec, false, nil
}

// Remove deletes the record matched by id. A missing id is a no-op.
func (t *table[T]) Remove(id int) bool {
	if t.appendOnly {
		panic(t.name + " is append-only")
	}
	for i := range t.rows {
		if *t.id(&t.rows[i]) == id {
			t.rows = append(t.rows[:i], t.rows[i+1:]...)
			return true
		}
	}
	return false
}

// Get returns the record matched by id.
func (t *table[T]) Get(id int) (rec T, ok bool) {
	for i := range t.rows {
		if *t.id(&t.rows[i]) == id {
			return t.rows[i], true
		}
	}
	return rec, false
}

// All returns every record in insertion order. The returned slice is a copy.
func (t *table[T]) All() []T {
	out := make([]T, len(t.rows))
	copy(out, t.rows)
	return out
}

// Find returns all records matching pred, preserving insertion order.
func (t *table[T]) Find(pred func(T) bool) []T {
	var out []T
	for i := range t.rows {
		if pred(t.rows[i]) {
			out = append(out, t.rows[i])
		}
	}
	return out
}

// Len returns the number of records in the collection.
func (t *table[T]) Len() int { return len(t.rows) }

func (t *table[T]) codeInUse(code string, exceptID int) bool {
	for i := range t.rows {
		if *t.id(&t.rows[i]) != exceptID && t.code(&t.rows[i]) == code {
			return true
		}
	}
	return false
}

// replaceAll swaps the table content wholesale. Restore-only.
func (t *table[T]) replaceAll(rows []T) {
	t.rows = make([]T, len(rows))
	copy(t.rows, rows)
}

// Store holds the whole book in memory: a fixed, closed set of typed
// collections. It is an explicit handle passed to the ledger and aggregation
// engines; there is no ambient singleton. Persistence is all-or-nothing via
// EncodeStore/DecodeStore.
type Store struct {
	Users          *table[User]
	Members        *table[Member]
	Groups         *table[Group]
	SavingProducts *table[SavingProduct]
	LoanProducts   *table[LoanProduct]
	Savings        *table[Saving]
	Loans          *table[Loan]
	Repayments     *table[Repayment]
	MeetingTypes   *table[MeetingType]
	FinancialYears *table[FinancialYear]
	Meetings       *table[Meeting]
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{
		Users: newTable("users", func(u *User) *int { return &u.ID }).
			withCode(func(u *User) string { return u.Code }),
		Members: newTable("members", func(m *Member) *int { return &m.ID }),
		Groups: newTable("shgGroups", func(g *Group) *int { return &g.ID }).
			withCode(func(g *Group) string { return g.Code }),
		SavingProducts: newTable("savingProducts", func(p *SavingProduct) *int { return &p.ID }).
			withCode(func(p *SavingProduct) string { return p.Code }),
		LoanProducts: newTable("loanProducts", func(p *LoanProduct) *int { return &p.ID }).
			withCode(func(p *LoanProduct) string { return p.Code }),
		Savings: newTable("savings", func(s *Saving) *int { return &s.ID }).
			asAppendOnly(),
		Loans: newTable("loans", func(l *Loan) *int { return &l.ID }),
		Repayments: newTable("loanRepayments", func(r *Repayment) *int { return &r.ID }).
			asAppendOnly(),
		MeetingTypes: newTable("meetingTypes", func(m *MeetingType) *int { return &m.ID }).
			withCode(func(m *MeetingType) string { return m.Code }),
		FinancialYears: newTable("financialYears", func(f *FinancialYear) *int { return &f.ID }).
			withCode(func(f *FinancialYear) string { return f.Code }),
		Meetings: newTable("meetings", func(m *Meeting) *int { return &m.ID }),
	}
}

// Member resolves a member reference, wrapping ErrNotFound on failure.
func (s *Store) Member(id int) (Member, error) {
	m, ok := s.Members.Get(id)
	if !ok {
		return Member{}, fmt.Errorf("member %d: %w", id, ErrNotFound)
	}
	return m, nil
}

// Group resolves a group reference, wrapping ErrNotFound on failure.
func (s *Store) Group(id int) (Group, error) {
	g, ok := s.Groups.Get(id)
	if !ok {
		return Group{}, fmt.Errorf("group %d: %w", id, ErrNotFound)
	}
	return g, nil
}

// Loan resolves a loan reference, wrapping ErrNotFound on failure.
func (s *Store) Loan(id int) (Loan, error) {
	l, ok := s.Loans.Get(id)
	if !ok {
		return Loan{}, fmt.Errorf("loan %d: %w", id, ErrNotFound)
	}
	return l, nil
}
