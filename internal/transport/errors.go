// internal/transport/errors.go
package transport

import (
	"fmt"

	"github.com/tamzrod/vdc-exporter/internal/status"
)

// NegativeAcknowledgementError: the device answered NAK to a command.
type NegativeAcknowledgementError struct {
	Command string
}

func (e *NegativeAcknowledgementError) Error() string {
	return fmt.Sprintf("transport: negative acknowledgement for %q", e.Command)
}

func (e *NegativeAcknowledgementError) Code() uint16 { return status.CodeNegativeAcknowledgement }

// UnexpectedAcknowledgementError: the device answered neither ACK nor NAK.
type UnexpectedAcknowledgementError struct {
	Command string
	Value   byte
}

func (e *UnexpectedAcknowledgementError) Error() string {
	return fmt.Sprintf("transport: unexpected acknowledgement 0x%02x for %q", e.Value, e.Command)
}

func (e *UnexpectedAcknowledgementError) Code() uint16 { return status.CodeUnexpectedAcknowledgement }

// TransportError wraps a serial open, read, write or close failure.
type TransportError struct {
	Op  string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("transport: %s: %v", e.Op, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

func (e *TransportError) Code() uint16 { return status.CodeTransport }
