package address

import (
	"errors"
	"fmt"
)

// ErrInvalidAddress indicates a malformed A1 address, column label or range.
var ErrInvalidAddress = errors.New("invalid address")

// Error describes why an address could not be parsed or formatted.
type Error struct {
	Input  string
	Reason string
}

func (e *Error) Error() string {
	return fmt.Sprintf("invalid address %q: %s", e.Input, e.Reason)
}

func (e *Error) Unwrap() error {
	return ErrInvalidAddress
}

func invalid(input, reason string) *Error {
	return &Error{Input: input, Reason: reason}
}
