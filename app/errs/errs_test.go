package errs

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrUpstreamUnreachable_Unwrap(t *testing.T) {
	cause := errors.New("connection refused")
	err := fmt.Errorf("update field: %w", ErrUpstreamUnreachable{Err: cause})
	assert.ErrorIs(t, err, cause)
	assert.EqualError(t, err, "update field: usedesk is unreachable: connection refused")
}

func TestErrUseDeskAPI_Rejected(t *testing.T) {
	assert.True(t, ErrUseDeskAPI{ResponseStatus: 200, Status: "error"}.Rejected())
	assert.False(t, ErrUseDeskAPI{ResponseStatus: 502}.Rejected())
	assert.Equal(t, "usedesk api responded with status 502", ErrUseDeskAPI{ResponseStatus: 502}.Error())
	assert.Equal(t, `usedesk api rejected update with status "error", message: bad field`,
		ErrUseDeskAPI{ResponseStatus: 200, Status: "error", Message: "bad field"}.Error())
}

func TestErrInvalidInput(t *testing.T) {
	var e ErrInvalidInput
	assert.ErrorAs(t, fmt.Errorf("parse: %w", ErrMissingParams), &e)
	assert.Equal(t, ErrMissingParams, e)
	assert.EqualError(t, ErrMalformedJSON, "invalid input: malformed json")
}
