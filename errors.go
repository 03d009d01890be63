package khata

import "errors"

// Sentinel errors for the failure kinds the engine distinguishes.
// Reference failures wrap ErrNotFound with the collection and id, so callers
// can test with errors.Is while error messages stay specific.
var (
	// ErrNotFound reports an operation given an id that does not resolve.
	ErrNotFound = errors.New("record not found")

	// ErrInvalidTenor reports an EMI or schedule computation with a zero or
	// negative tenor. The engine fails fast rather than propagate NaN.
	ErrInvalidTenor = errors.New("invalid tenor")

	// ErrDuplicateCode reports a creation with a code already in use in the
	// same collection. Uniqueness is enforced by the store, once, rather than
	// re-checked ad hoc by every caller.
	ErrDuplicateCode = errors.New("duplicate code")

	// ErrIDSupplied reports a create with a caller-supplied id. The store owns
	// identity allocation.
	ErrIDSupplied = errors.New("id must not be supplied on create")
)
