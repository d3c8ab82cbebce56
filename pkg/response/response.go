package response

import (
	"errors"
	"net/http"
	"strings"
)

type Error struct {
	Code int
	Err  error
}

func (e *Error) Error() string {
	return e.Err.Error()
}

func (e *Error) Is(target error) bool {
	var t *Error
	ok := errors.As(target, &t)
	if !ok {
		return false
	}
	return e.Code == t.Code && e.Err.Error() == t.Err.Error()
}

// Kind is the machine readable form of the status, e.g. NOT_FOUND or CONFLICT.
func (e *Error) Kind() string {
	text := http.StatusText(e.Code)
	if text == "" {
		return "ERROR"
	}
	return strings.ToUpper(strings.ReplaceAll(text, " ", "_"))
}

func NewError(code int, err string) error {
	return &Error{code, errors.New(err)}
}
