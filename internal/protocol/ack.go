// internal/protocol/ack.go
package protocol

// Acknowledgement is the single byte the device returns after a command.
type Acknowledgement byte

// AckClass is the classification of an Acknowledgement.
type AckClass int

const (
	AckOther AckClass = iota
	AckPositive
	AckNegative
)

func (c AckClass) String() string {
	switch c {
	case AckPositive:
		return "positive"
	case AckNegative:
		return "negative"
	default:
		return "other"
	}
}

// Classify returns exactly one class. Anything that is not ACK or NAK is AckOther.
func (a Acknowledgement) Classify() AckClass {
	switch byte(a) {
	case ACK:
		return AckPositive
	case NAK:
		return AckNegative
	default:
		return AckOther
	}
}
