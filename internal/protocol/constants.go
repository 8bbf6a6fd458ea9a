// internal/protocol/constants.go
package protocol

// Wire protocol constants.
// These values are fixed by the device and MUST NOT be configurable.

// ---- FRAMING ----

const (
	STX byte = 0x02 // start of command
	ETX byte = 0x03 // end of command
	ENQ byte = 0x05 // request payload
)

// ---- ACKNOWLEDGEMENT ----

const (
	ACK byte = 0x06
	NAK byte = 0x15
)

// ---- RESPONSE GEOMETRY ----

// HeaderSize is the number of leading bytes skipped in every data response.
const HeaderSize = 5

// CountWidth is the width of the ASCII observation count.
const CountWidth = 3

// MaxObservationCount is the largest count the device may declare.
const MaxObservationCount = 100

// ObservationSize is the width of one observation record:
// date and time 10, readings 9, flags 5, reserved 1.
const ObservationSize = 25

// ---- USERS ----

const (
	UserOne = 1
	UserTwo = 2
)
