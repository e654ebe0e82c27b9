package backend

import (
	"errors"
	"fmt"
)

var (
	// ErrNotConfigured is returned by every SDK call when the client
	// was built without a backend URL or API key.
	ErrNotConfigured = errors.New("backend client is not configured")

	// ErrRowNotFound is returned by RowQuery.Single when no row matched
	// the filters.
	ErrRowNotFound = errors.New("row not found")
)

// APIError is an error the backend service itself reported, as opposed
// to a transport failure reaching it. Status is the HTTP status code
// the service answered with; Message is its human-readable reason and
// is passed through to users verbatim.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("backend api error %d: %s", e.Status, e.Message)
}

// AsAPIError unwraps err into an *APIError when the backend reported
// the failure itself.
func AsAPIError(err error) (*APIError, bool) {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr, true
	}
	return nil, false
}
