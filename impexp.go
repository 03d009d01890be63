package khata

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/PaesslerAG/jsonpath"
)

// ImportLegacy reads the un-versioned book blob the previous system wrote and
// rebuilds a store from it. The legacy blob carried the same named arrays as
// the current snapshot but no version marker, and some exports wrapped the
// whole object under a "data" key, so the arrays are located by path rather
// than by decoding into a fixed struct.
func ImportLegacy(r io.Reader) (*Store, error) {
	var jobj any
	if err := json.NewDecoder(r).Decode(&jobj); err != nil {
		return nil, fmt.Errorf("import error: cannot decode legacy book: %w", err)
	}

	// some exports nest the book under "data"
	if inner, err := jsonpath.Get("$.data", jobj); err == nil {
		jobj = inner
	}
	if v, err := jsonpath.Get("$.version", jobj); err == nil {
		return nil, fmt.Errorf("import error: book already carries version %v, use LoadStore", v)
	}

	s := NewStore()
	if err := legacyArray(jobj, "$.users", s.Users); err != nil {
		return nil, err
	}
	if err := legacyArray(jobj, "$.members", s.Members); err != nil {
		return nil, err
	}
	if err := legacyArray(jobj, "$.shgGroups", s.Groups); err != nil {
		return nil, err
	}
	if err := legacyArray(jobj, "$.savings", s.Savings); err != nil {
		return nil, err
	}
	if err := legacyArray(jobj, "$.loans", s.Loans); err != nil {
		return nil, err
	}
	if err := legacyArray(jobj, "$.loanRepayments", s.Repayments); err != nil {
		return nil, err
	}
	if err := legacyArray(jobj, "$.savingProducts", s.SavingProducts); err != nil {
		return nil, err
	}
	if err := legacyArray(jobj, "$.loanProducts", s.LoanProducts); err != nil {
		return nil, err
	}
	if err := legacyArray(jobj, "$.meetingTypes", s.MeetingTypes); err != nil {
		return nil, err
	}
	if err := legacyArray(jobj, "$.financialYears", s.FinancialYears); err != nil {
		return nil, err
	}
	if err := legacyArray(jobj, "$.meetings", s.Meetings); err != nil {
		return nil, err
	}
	return s, nil
}

// legacyArray extracts one named array from the legacy blob and loads it into
// a table, keeping the original ids. A missing key is an empty table, not an
// error: old exports simply omitted arrays they had no rows for.
//
// The blob is untrusted, so the store's constraints are re-validated here:
// every id must be positive and unique within its table, and codes must be
// unique where the table carries a code constraint.
func legacyArray[T any](jobj any, path string, t *table[T]) error {
	jval, err := jsonpath.Get(path, jobj)
	if err != nil {
		return nil
	}
	// round-trip through JSON to get from the generic tree to typed rows
	raw, err := json.Marshal(jval)
	if err != nil {
		return fmt.Errorf("import error: cannot re-encode %q: %w", path, err)
	}
	var rows []T
	if err := json.Unmarshal(raw, &rows); err != nil {
		return fmt.Errorf("import error: cannot read %q: %w", path, err)
	}

	ids := make(map[int]bool, len(rows))
	codes := make(map[string]bool, len(rows))
	for i := range rows {
		id := *t.id(&rows[i])
		if id <= 0 {
			return fmt.Errorf("import error: %s: invalid id %d", t.name, id)
		}
		if ids[id] {
			return fmt.Errorf("import error: %s: duplicate id %d", t.name, id)
		}
		ids[id] = true
		if t.code != nil {
			if c := t.code(&rows[i]); c != "" {
				if codes[c] {
					return fmt.Errorf("import error: %s: code %q: %w", t.name, c, ErrDuplicateCode)
				}
				codes[c] = true
			}
		}
	}

	t.replaceAll(rows)
	return nil
}
