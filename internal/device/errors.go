// internal/device/errors.go
package device

import (
	"fmt"

	"github.com/tamzrod/vdc-exporter/internal/status"
)

// CountMismatchError: the count the device declared differs from the
// number of records decoded from its payload.
type CountMismatchError struct {
	User     int
	Declared int
	Decoded  int
}

func (e *CountMismatchError) Error() string {
	return fmt.Sprintf("device: user %d: expected %d observations but received %d", e.User, e.Declared, e.Decoded)
}

func (e *CountMismatchError) Code() uint16 { return status.CodeCountMismatch }

// NoObservationsError: the device declared zero observations for the user.
type NoObservationsError struct {
	User int
}

func (e *NoObservationsError) Error() string {
	return fmt.Sprintf("device: no observations available for user #%d", e.User)
}

func (e *NoObservationsError) Code() uint16 { return status.CodeNoObservations }
