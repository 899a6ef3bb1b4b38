package graphql

import (
	"errors"

	"libraryapi/internal/usecase"
)

// Error codes surfaced in the extensions of a GraphQL error.
const (
	CodeUnauthenticated = "UNAUTHENTICATED"
	CodeBadUserInput    = "BAD_USER_INPUT"
)

// resolverError carries a machine-readable code and the rejected arguments
// into the response. graphql-go picks Extensions up from any resolver error
// implementing it.
type resolverError struct {
	code    string
	message string
	args    map[string]any
}

func (e *resolverError) Error() string {
	return e.message
}

func (e *resolverError) Extensions() map[string]interface{} {
	ext := map[string]interface{}{"code": e.code}
	if len(e.args) > 0 {
		ext["invalidArgs"] = e.args
	}
	return ext
}

// wrapError maps usecase failures onto the error taxonomy; anything
// unrecognized propagates untouched as a plain GraphQL error.
func wrapError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, usecase.ErrUnauthenticated) {
		return &resolverError{code: CodeUnauthenticated, message: "not authenticated"}
	}
	if iie, ok := usecase.AsInvalidInput(err); ok {
		return &resolverError{code: CodeBadUserInput, message: iie.Message, args: iie.Args}
	}
	return err
}
