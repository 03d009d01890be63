package khata

import (
	"bytes"
	"errors"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/sangam/khata/date"
)

func TestEncodeDecodeRoundTrip(t *testing.T) {
	s := newTestBook(t)
	loan := approveTestLoan(t, s, M(10000), 12, 12, date.New(2025, time.January, 10))
	if _, err := s.Repay(Repayment{LoanID: loan.ID, Amount: M(933), On: date.New(2025, time.February, 10)}); err != nil {
		t.Fatal(err)
	}
	if _, err := s.Collect(Saving{MemberID: 1, ProductID: 1, Amount: M(500), On: date.New(2025, time.January, 12)}); err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	if err := EncodeStore(&buf, s); err != nil {
		t.Fatalf("EncodeStore() failed: %v", err)
	}

	restored, err := DecodeStore(&buf)
	if err != nil {
		t.Fatalf("DecodeStore() failed: %v", err)
	}

	// observational equality: a second encoding of the restored book must be
	// byte-identical to the first.
	var original, reencoded bytes.Buffer
	if err := EncodeStore(&original, s); err != nil {
		t.Fatal(err)
	}
	if err := EncodeStore(&reencoded, restored); err != nil {
		t.Fatal(err)
	}
	if original.String() != reencoded.String() {
		t.Error("re-encoding the restored book differs from the original encoding")
	}

	// the restored book keeps working: next id continues from the maximum
	m, err := restored.EnrollMember(Member{GroupID: 1, Name: "Devi", Status: MemberActive, Type: Primary})
	if err != nil {
		t.Fatal(err)
	}
	if m.ID != 4 {
		t.Errorf("restored book allocated id %d, want 4", m.ID)
	}
}

func TestDecodeRejectsUnknownVersion(t *testing.T) {
	_, err := DecodeStore(strings.NewReader(`{"version": 99}`))
	if err == nil || !strings.Contains(err.Error(), "version") {
		t.Errorf("DecodeStore() of version 99: got %v, want a version error", err)
	}
	// a legacy, un-versioned blob is rejected too: that is what import is for
	if _, err := DecodeStore(strings.NewReader(`{"members": []}`)); err == nil {
		t.Error("DecodeStore() of an un-versioned blob did not fail")
	}
}

func TestSaveAndLoadStore(t *testing.T) {
	path := filepath.Join(t.TempDir(), "khata.json")
	s := newTestBook(t)

	if err := SaveStore(path, s); err != nil {
		t.Fatalf("SaveStore() failed: %v", err)
	}
	loaded, err := LoadStore(path)
	if err != nil {
		t.Fatalf("LoadStore() failed: %v", err)
	}
	if loaded.Members.Len() != s.Members.Len() {
		t.Errorf("loaded %d members, want %d", loaded.Members.Len(), s.Members.Len())
	}

	// saving over an existing book replaces it whole
	if _, err := s.Collect(Saving{MemberID: 1, ProductID: 1, Amount: M(100)}); err != nil {
		t.Fatal(err)
	}
	if err := SaveStore(path, s); err != nil {
		t.Fatalf("SaveStore() over an existing file failed: %v", err)
	}
	loaded, err = LoadStore(path)
	if err != nil {
		t.Fatal(err)
	}
	if loaded.Savings.Len() != 1 {
		t.Errorf("re-loaded book has %d saving rows, want 1", loaded.Savings.Len())
	}
}

func TestImportLegacy(t *testing.T) {
	legacy := `{
	  "members": [
	    {"id": 1, "group": 1, "name": "Asha", "status": "active", "type": "primary", "joined": "2024-06-01"},
	    {"id": 2, "group": 1, "name": "Bina", "status": "active", "type": "primary", "joined": "2024-06-01"}
	  ],
	  "shgGroups": [
	    {"id": 1, "code": "G1", "name": "Mahila Mandal", "active": true}
	  ],
	  "savings": [
	    {"id": 1, "member": 1, "product": 1, "amount": 500, "date": "2025-01-10"}
	  ]
	}`

	s, err := ImportLegacy(strings.NewReader(legacy))
	if err != nil {
		t.Fatalf("ImportLegacy() failed: %v", err)
	}
	if s.Members.Len() != 2 || s.Groups.Len() != 1 || s.Savings.Len() != 1 {
		t.Fatalf("imported %d members, %d groups, %d savings, want 2, 1, 1",
			s.Members.Len(), s.Groups.Len(), s.Savings.Len())
	}
	m, err := s.Member(1)
	if err != nil {
		t.Fatal(err)
	}
	if m.Name != "Asha" {
		t.Errorf("member 1 name = %q, want Asha", m.Name)
	}

	// a versioned book must go through LoadStore instead
	if _, err := ImportLegacy(strings.NewReader(`{"version": 1, "members": []}`)); err == nil {
		t.Error("ImportLegacy() of a versioned book did not fail")
	}
}

// TestImportLegacyValidates re-checks the store's constraints on the
// untrusted blob: duplicate codes, duplicate ids and non-positive ids are
// all rejected rather than loaded.
func TestImportLegacyValidates(t *testing.T) {
	testCases := []struct {
		name string
		blob string
	}{
		{
			"duplicate code",
			`{"shgGroups": [
			  {"id": 1, "code": "G1", "name": "First", "active": true},
			  {"id": 2, "code": "G1", "name": "Second", "active": true}
			]}`,
		},
		{
			"duplicate id",
			`{"shgGroups": [
			  {"id": 1, "code": "G1", "name": "First", "active": true},
			  {"id": 1, "code": "G2", "name": "Second", "active": true}
			]}`,
		},
		{
			"zero id",
			`{"members": [
			  {"id": 0, "group": 1, "name": "Asha", "status": "active", "type": "primary"}
			]}`,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := ImportLegacy(strings.NewReader(tc.blob)); err == nil {
				t.Errorf("ImportLegacy() accepted a blob with a %s", tc.name)
			}
		})
	}

	_, err := ImportLegacy(strings.NewReader(`{"shgGroups": [
	  {"id": 1, "code": "G1", "name": "First", "active": true},
	  {"id": 2, "code": "G1", "name": "Second", "active": true}
	]}`))
	if !errors.Is(err, ErrDuplicateCode) {
		t.Errorf("ImportLegacy() with duplicate codes: got %v, want ErrDuplicateCode", err)
	}
}
