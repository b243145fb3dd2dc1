// Package errs contains declarations of domain-level errors
// wrappers and methods to map them for client identification of the error.
package errs

import (
	"errors"
	"fmt"
)

// Standard errors.
var (
	ErrMethodNotAllowed = errors.New("method not allowed")
	ErrNoToken          = errors.New("usedesk api token is not configured")
)

// ErrInvalidInput indicates that the request must be corrected by the
// client before sending it again.
type ErrInvalidInput string

// Error returns the string representation of the error.
func (e ErrInvalidInput) Error() string {
	return fmt.Sprintf("invalid input: %s", string(e))
}

// Invalid input reasons.
const (
	ErrMalformedJSON      = ErrInvalidInput("malformed json")
	ErrMissingParams      = ErrInvalidInput("missing required parameters")
	ErrMissingFieldID     = ErrInvalidInput("no field id configured or supplied")
	ErrUnsupportedValType = ErrInvalidInput("unsupported value type")
)

// ErrUpstreamUnreachable indicates that the request to UseDesk failed on the
// network level, the response was not received or read.
type ErrUpstreamUnreachable struct {
	Err error
}

// Error returns the string representation of the error.
func (e ErrUpstreamUnreachable) Error() string {
	return fmt.Sprintf("usedesk is unreachable: %v", e.Err)
}

// Unwrap returns the underlying transport error.
func (e ErrUpstreamUnreachable) Unwrap() error { return e.Err }

// ErrUseDeskAPI describes any failure reported by the UseDesk API, either by
// the response status or by the status field of the response body.
type ErrUseDeskAPI struct {
	ResponseStatus int    `json:"-"`
	Status         string `json:"status"`
	Message        string `json:"message"`
	Body           string `json:"-"`
}

// Error returns the string representation of the error.
func (e ErrUseDeskAPI) Error() string {
	if e.Rejected() {
		return fmt.Sprintf("usedesk api rejected update with status %q, message: %s", e.Status, e.Message)
	}
	return fmt.Sprintf("usedesk api responded with status %d", e.ResponseStatus)
}

// Rejected returns true if UseDesk accepted the request on the HTTP level,
// but reported the failure in the response body.
func (e ErrUseDeskAPI) Rejected() bool {
	return e.ResponseStatus >= 200 && e.ResponseStatus < 300
}
