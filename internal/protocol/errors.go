// internal/protocol/errors.go
package protocol

import (
	"fmt"

	"github.com/tamzrod/vdc-exporter/internal/status"
)

// InvalidUserError reports a user slot outside {1, 2}.
type InvalidUserError struct {
	User int
}

func (e *InvalidUserError) Error() string {
	return fmt.Sprintf("protocol: invalid user %d: must be %d or %d", e.User, UserOne, UserTwo)
}

func (e *InvalidUserError) Code() uint16 { return status.CodeInvalidUser }

// FieldValidationError reports a fixed-width field that is non-numeric
// or outside its declared inclusive range.
type FieldValidationError struct {
	Field string
	Raw   string
	Min   int
	Max   int
}

func (e *FieldValidationError) Error() string {
	return fmt.Sprintf("protocol: field %s: raw %q not in range %d..%d", e.Field, e.Raw, e.Min, e.Max)
}

func (e *FieldValidationError) Code() uint16 { return status.CodeFieldValidation }

// TruncatedRecordError reports a buffer shorter than a fixed-width record.
type TruncatedRecordError struct {
	Record string
	Want   int
	Got    int
}

func (e *TruncatedRecordError) Error() string {
	return fmt.Sprintf("protocol: truncated %s: want %d bytes, got %d", e.Record, e.Want, e.Got)
}

func (e *TruncatedRecordError) Code() uint16 { return status.CodeTruncatedRecord }
