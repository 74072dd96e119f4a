// Package usererror provides an error type that wraps both the original error and a
// more "user-friendly" message that details a common user-error and the fix
package usererror

import "errors"

type userError struct {
	original error
	msg      string
}

// New creates a new userError from the original error and a user-friendly message that
// details the common user-error and the fix
func New(original error, msg string) *userError {
	return &userError{
		original: original,
		msg:      msg,
	}
}

func (u *userError) Error() string {
	return u.original.Error()
}

// Unwrap exposes the original error to errors.Is and errors.As
func (u *userError) Unwrap() error {
	return u.original
}

func (u *userError) Msg() string {
	return u.msg
}

// Is returns the first userError in err's chain
func Is(err error) (*userError, bool) {
	var u *userError
	if ok := errors.As(err, &u); !ok {
		return nil, false
	}

	return u, true
}

// Message returns what should be shown to the user for err: the user-friendly message of
// the first userError in the chain followed by the underlying error, or err itself.
func Message(err error) string {
	u, ok := Is(err)
	if !ok {
		return err.Error()
	}

	return u.msg + "\n" + err.Error()
}
