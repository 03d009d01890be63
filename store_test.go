package khata

import (
	"errors"
	"testing"
)

func TestCreateAllocatesIds(t *testing.T) {
	s := NewStore()

	a, err := s.Groups.Create(Group{Code: "G1"})
	if err != nil {
		t.Fatalf("Create() failed: %v", err)
	}
	b, err := s.Groups.Create(Group{Code: "G2"})
	if err != nil {
		t.Fatalf("Create() failed: %v", err)
	}
	if a.ID != 1 || b.ID != 2 {
		t.Fatalf("got ids %d, %d, want 1, 2", a.ID, b.ID)
	}

	// ids come from the live maximum: removing a lower id does not free it
	// for the next create.
	if !s.Groups.Remove(a.ID) {
		t.Fatal("Remove() reported false for an existing id")
	}
	c, err := s.Groups.Create(Group{Code: "G3"})
	if err != nil {
		t.Fatalf("Create() failed: %v", err)
	}
	if c.ID != 3 {
		t.Errorf("after removing id 1, got id %d, want 3", c.ID)
	}
}

func TestCreateRejectsSuppliedId(t *testing.T) {
	s := NewStore()
	_, err := s.Groups.Create(Group{ID: 7, Code: "G1"})
	if !errors.Is(err, ErrIDSupplied) {
		t.Errorf("Create() with id 7: got %v, want ErrIDSupplied", err)
	}
	if s.Groups.Len() != 0 {
		t.Errorf("rejected create left %d rows behind", s.Groups.Len())
	}
}

func TestCreateRejectsDuplicateCode(t *testing.T) {
	s := NewStore()
	if _, err := s.Groups.Create(Group{Code: "G1"}); err != nil {
		t.Fatalf("Create() failed: %v", err)
	}
	_, err := s.Groups.Create(Group{Code: "G1"})
	if !errors.Is(err, ErrDuplicateCode) {
		t.Errorf("Create() with duplicate code: got %v, want ErrDuplicateCode", err)
	}
}

func TestUpdateMissingIdIsNoop(t *testing.T) {
	s := NewStore()
	if _, err := s.Groups.Create(Group{Code: "G1"}); err != nil {
		t.Fatalf("Create() failed: %v", err)
	}

	_, ok, err := s.Groups.Update(99, func(g *Group) { g.Name = "changed" })
	if err != nil {
		t.Fatalf("Update() on missing id failed: %v", err)
	}
	if ok {
		t.Error("Update() on missing id reported ok")
	}
	if got, _ := s.Groups.Get(1); got.Name != "" {
		t.Errorf("Update() on missing id modified another row: %+v", got)
	}
}

func TestUpdateKeepsIdentityAndChecksCode(t *testing.T) {
	s := NewStore()
	s.Groups.Create(Group{Code: "G1"})
	s.Groups.Create(Group{Code: "G2"})

	// the mutation cannot retarget the row to another id
	updated, ok, err := s.Groups.Update(2, func(g *Group) {
		g.ID = 42
		g.Name = "renamed"
	})
	if err != nil || !ok {
		t.Fatalf("Update() failed: ok=%v err=%v", ok, err)
	}
	if updated.ID != 2 {
		t.Errorf("Update() let the mutation change the id to %d", updated.ID)
	}

	// the mutation cannot steal another row's code
	_, _, err = s.Groups.Update(2, func(g *Group) { g.Code = "G1" })
	if !errors.Is(err, ErrDuplicateCode) {
		t.Errorf("Update() stealing a code: got %v, want ErrDuplicateCode", err)
	}
	if got, _ := s.Groups.Get(2); got.Code != "G2" {
		t.Errorf("rejected update modified the row: %+v", got)
	}
}

func TestRemoveMissingIdIsNoop(t *testing.T) {
	s := NewStore()
	s.Groups.Create(Group{Code: "G1"})
	if s.Groups.Remove(99) {
		t.Error("Remove() on missing id reported true")
	}
	if s.Groups.Len() != 1 {
		t.Errorf("Remove() on missing id left %d rows, want 1", s.Groups.Len())
	}
}

func TestLedgerTablesAreAppendOnly(t *testing.T) {
	s := newTestBook(t)
	if _, err := s.Collect(Saving{MemberID: 1, ProductID: 1, Amount: M(100)}); err != nil {
		t.Fatalf("Collect() failed: %v", err)
	}

	assertPanics := func(name string, f func()) {
		t.Helper()
		defer func() {
			if recover() == nil {
				t.Errorf("%s did not panic", name)
			}
		}()
		f()
	}
	assertPanics("Savings.Update", func() { s.Savings.Update(1, func(v *Saving) {}) })
	assertPanics("Savings.Remove", func() { s.Savings.Remove(1) })
	assertPanics("Repayments.Remove", func() { s.Repayments.Remove(1) })
}
