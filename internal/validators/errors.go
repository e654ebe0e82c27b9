package validators

import "errors"

// Validation failures carry the exact message the auth API writes into
// the response body, so handlers can pass err.Error() straight through.
var (
	ErrInvalidEmail  = errors.New("Signup requires a valid email")
	ErrShortPassword = errors.New("Password should be at least 6 characters")
)
