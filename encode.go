package khata

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// The book is persisted as one JSON object with a fixed set of named arrays.
// There is no partial or incremental persistence: the whole state is written
// or the file on disk is left unchanged.

// SnapshotVersion is the current schema version of the persisted book. The
// original system persisted an un-versioned blob; see ImportLegacy for that.
const SnapshotVersion = 1

type snapshot struct {
	Version        int             `json:"version"`
	Users          []User          `json:"users"`
	Members        []Member        `json:"members"`
	Groups         []Group         `json:"shgGroups"`
	Savings        []Saving        `json:"savings"`
	Loans          []Loan          `json:"loans"`
	Repayments     []Repayment     `json:"loanRepayments"`
	SavingProducts []SavingProduct `json:"savingProducts"`
	LoanProducts   []LoanProduct   `json:"loanProducts"`
	MeetingTypes   []MeetingType   `json:"meetingTypes"`
	FinancialYears []FinancialYear `json:"financialYears"`
	Meetings       []Meeting       `json:"meetings"`
}

// EncodeStore serializes the whole store as one JSON snapshot.
func EncodeStore(w io.Writer, s *Store) error {
	snap := snapshot{
		Version:        SnapshotVersion,
		Users:          s.Users.All(),
		Members:        s.Members.All(),
		Groups:         s.Groups.All(),
		Savings:        s.Savings.All(),
		Loans:          s.Loans.All(),
		Repayments:     s.Repayments.All(),
		SavingProducts: s.SavingProducts.All(),
		LoanProducts:   s.LoanProducts.All(),
		MeetingTypes:   s.MeetingTypes.All(),
		FinancialYears: s.FinancialYears.All(),
		Meetings:       s.Meetings.All(),
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(snap); err != nil {
		return fmt.Errorf("persist error: cannot encode book: %w", err)
	}
	return nil
}

// DecodeStore deserializes a snapshot produced by EncodeStore. A snapshot
// with an unknown schema version is rejected rather than half-read.
func DecodeStore(r io.Reader) (*Store, error) {
	var snap snapshot
	dec := json.NewDecoder(r)
	if err := dec.Decode(&snap); err != nil {
		return nil, fmt.Errorf("load error: cannot decode book: %w", err)
	}
	if snap.Version != SnapshotVersion {
		return nil, fmt.Errorf("load error: unsupported book version %d (want %d)", snap.Version, SnapshotVersion)
	}
	s := NewStore()
	s.Users.replaceAll(snap.Users)
	s.Members.replaceAll(snap.Members)
	s.Groups.replaceAll(snap.Groups)
	s.Savings.replaceAll(snap.Savings)
	s.Loans.replaceAll(snap.Loans)
	s.Repayments.replaceAll(snap.Repayments)
	s.SavingProducts.replaceAll(snap.SavingProducts)
	s.LoanProducts.replaceAll(snap.LoanProducts)
	s.MeetingTypes.replaceAll(snap.MeetingTypes)
	s.FinancialYears.replaceAll(snap.FinancialYears)
	s.Meetings.replaceAll(snap.Meetings)
	return s, nil
}

// SaveStore writes the snapshot to path atomically: the snapshot is written
// to a temporary file in the same directory and renamed over the target, so
// a crash mid-write leaves the previous book intact.
func SaveStore(path string, s *Store) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("persist error: cannot create temp file in %q: %w", dir, err)
	}
	defer os.Remove(tmp.Name()) // no-op after a successful rename

	if err := EncodeStore(tmp, s); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return fmt.Errorf("persist error: cannot sync %q: %w", tmp.Name(), err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("persist error: cannot close %q: %w", tmp.Name(), err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("persist error: cannot replace %q: %w", path, err)
	}
	return nil
}

// LoadStore reads a snapshot from path.
func LoadStore(path string) (*Store, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("load error: cannot open book %q: %w", path, err)
	}
	defer f.Close()
	return DecodeStore(f)
}
