package usecase

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is returned by repositories when no record matches.
	// Queries translate it to an empty result, never to a failure.
	ErrNotFound = errors.New("not found")

	// ErrUnauthenticated rejects a write operation with no acting identity.
	ErrUnauthenticated = errors.New("not authenticated")
)

// InvalidInputError reports a validation or uniqueness failure together with
// the rejected argument values, so the API layer can attach them to the
// response. The original store message is preserved for diagnostics.
type InvalidInputError struct {
	Message string
	Args    map[string]any
}

func (e *InvalidInputError) Error() string {
	return e.Message
}

func invalidInput(args map[string]any, format string, v ...any) *InvalidInputError {
	return &InvalidInputError{
		Message: fmt.Sprintf(format, v...),
		Args:    args,
	}
}

// AsInvalidInput unwraps err into an *InvalidInputError if it is one.
func AsInvalidInput(err error) (*InvalidInputError, bool) {
	var iie *InvalidInputError
	if errors.As(err, &iie) {
		return iie, true
	}
	return nil, false
}
