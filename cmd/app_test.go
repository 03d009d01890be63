package cmd

import (
	"context"
	"flag"
	"path/filepath"
	"testing"

	"github.com/google/subcommands"
	"github.com/sangam/khata"
)

// withTempBook points the app at a fresh book file for one test.
func withTempBook(t *testing.T, s *khata.Store) {
	t.Helper()
	old := *bookFile
	*bookFile = filepath.Join(t.TempDir(), "khata.json")
	t.Cleanup(func() { *bookFile = old })
	if s != nil {
		if err := khata.SaveStore(*bookFile, s); err != nil {
			t.Fatal(err)
		}
	}
}

// TestDomainRejectionsExitFailure pins the exit status convention: a row the
// book refuses is a failure, not a usage error; only malformed flag values
// are usage errors.
func TestDomainRejectionsExitFailure(t *testing.T) {
	s := khata.NewStore()
	if _, err := s.CreateGroup(khata.Group{Code: "G1", Name: "First", Active: true}); err != nil {
		t.Fatal(err)
	}
	withTempBook(t, s)

	fs := func() *flag.FlagSet { return flag.NewFlagSet("test", flag.ContinueOnError) }

	loan := &loanCmd{member: 99, product: 1, amount: "1000", rate: "12", tenor: 6}
	if got := loan.Execute(context.Background(), fs()); got != subcommands.ExitFailure {
		t.Errorf("loan for an unknown member exited %v, want ExitFailure", got)
	}

	member := &addMemberCmd{group: 99, name: "Asha", memberType: "primary"}
	if got := member.Execute(context.Background(), fs()); got != subcommands.ExitFailure {
		t.Errorf("add-member into an unknown group exited %v, want ExitFailure", got)
	}

	group := &addGroupCmd{code: "G1", name: "Duplicate"}
	if got := group.Execute(context.Background(), fs()); got != subcommands.ExitFailure {
		t.Errorf("add-group with a duplicate code exited %v, want ExitFailure", got)
	}

	bad := &loanCmd{member: 1, product: 1, amount: "not-a-number", rate: "12", tenor: 6}
	if got := bad.Execute(context.Background(), fs()); got != subcommands.ExitUsageError {
		t.Errorf("loan with a malformed amount exited %v, want ExitUsageError", got)
	}
}
