package convert

import (
	"errors"
	"fmt"

	"github.com/ukaji3/xlgrid-go/pkg/xlgrid/models"
)

// ErrConversionFailed indicates a raw value could not be coerced to the
// requested type.
var ErrConversionFailed = errors.New("conversion failed")

// ConversionError describes a failed coercion.
type ConversionError struct {
	From  models.Kind
	To    string
	Input string
	Err   error // underlying parse error, if any
}

func (e *ConversionError) Error() string {
	msg := fmt.Sprintf("cannot convert %s value %q to %s", e.From, e.Input, e.To)
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *ConversionError) Unwrap() []error {
	if e.Err == nil {
		return []error{ErrConversionFailed}
	}
	return []error{ErrConversionFailed, e.Err}
}
