package lookup

import apierrors "github.com/olgasafonova/wikilookup-mcp-server/internal/errors"

// Status classifies the outcome of one lookup.
type Status string

const (
	StatusOK     Status = "ok"     // at least one row
	StatusEmpty  Status = "empty"  // the upstream answered, nothing matched
	StatusFailed Status = "failed" // invalid input, transport, HTTP or decode failure
)

// Result wraps a lookup value with its outcome so callers can tell a failure
// from a legitimate empty answer.
type Result[T any] struct {
	Status Status
	Value  T
	Err    error
}

// NewResult classifies a client call. n is the number of rows in value.
// A NotFoundError counts as empty, not failed.
func NewResult[T any](value T, n int, err error) Result[T] {
	switch {
	case err != nil && apierrors.IsNotFound(err):
		return Result[T]{Status: StatusEmpty, Value: value, Err: err}
	case err != nil:
		return Result[T]{Status: StatusFailed, Value: value, Err: err}
	case n == 0:
		return Result[T]{Status: StatusEmpty, Value: value}
	default:
		return Result[T]{Status: StatusOK, Value: value}
	}
}

// OK reports whether the lookup produced rows.
func (r Result[T]) OK() bool {
	return r.Status == StatusOK
}

// Message returns the error text, or "" when there is no error.
func (r Result[T]) Message() string {
	if r.Err == nil {
		return ""
	}
	return r.Err.Error()
}
