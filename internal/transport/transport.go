// internal/transport/transport.go
package transport

import (
	"errors"
	"io"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/tamzrod/vdc-exporter/internal/protocol"
)

// Protocol timing and sizing.
// The device has no negotiated timing: these delays are part of its contract.
const (
	SettleDelay    = 1 * time.Second        // after STX cmd ETX, before reading the ack
	PayloadDelay   = 500 * time.Millisecond // after ENQ, before reading the payload
	MaxPayloadSize = 3000
)

// Port is one open serial connection.
type Port interface {
	io.ReadWriteCloser
}

// Opener opens a fresh Port. ONE attempt per call.
type Opener func() (Port, error)

// Transport runs framed request/response exchanges.
// Each exchange opens its own Port and always closes it before returning.
type Transport struct {
	open  Opener
	sleep func(time.Duration)
	log   *zap.Logger

	mu sync.Mutex // one exchange in flight
}

// Option customizes a Transport.
type Option func(*Transport)

// WithSleep replaces time.Sleep for the settle delays.
func WithSleep(fn func(time.Duration)) Option {
	return func(t *Transport) { t.sleep = fn }
}

// WithLogger sets the logger. Defaults to a no-op logger.
func WithLogger(l *zap.Logger) Option {
	return func(t *Transport) { t.log = l }
}

// New creates a Transport over open.
func New(open Opener, opts ...Option) (*Transport, error) {
	if open == nil {
		return nil, errors.New("transport: opener required")
	}
	t := &Transport{
		open:  open,
		sleep: time.Sleep,
		log:   zap.NewNop(),
	}
	for _, o := range opts {
		o(t)
	}
	return t, nil
}

// Exchange sends cmd and returns the raw response payload.
//
//	STX cmd ETX | wait SettleDelay | read ack | ENQ | wait PayloadDelay | read payload
//
// The payload is read only after a positive acknowledgement.
func (t *Transport) Exchange(cmd protocol.Command) (raw []byte, err error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	log := t.log.With(zap.Stringer("command", cmd))

	port, err := t.open()
	if err != nil {
		return nil, &TransportError{Op: "open", Err: err}
	}
	defer func() {
		if cerr := port.Close(); cerr != nil {
			log.Warn("serial close failed", zap.Error(cerr))
			if err == nil {
				raw, err = nil, &TransportError{Op: "close", Err: cerr}
			}
		}
	}()

	// ---- command ----
	frame := make([]byte, 0, len(cmd.String())+2)
	frame = append(frame, protocol.STX)
	frame = append(frame, cmd.Bytes()...)
	frame = append(frame, protocol.ETX)
	if _, err := port.Write(frame); err != nil {
		return nil, &TransportError{Op: "write command", Err: err}
	}
	log.Debug("command sent", zap.Binary("frame", frame))
	t.sleep(SettleDelay)

	// ---- acknowledgement ----
	var ackBuf [1]byte
	if _, err := io.ReadFull(port, ackBuf[:]); err != nil {
		return nil, &TransportError{Op: "read acknowledgement", Err: err}
	}
	ack := protocol.Acknowledgement(ackBuf[0])
	class := ack.Classify()
	log.Debug("acknowledgement received", zap.Uint8("value", ackBuf[0]), zap.Stringer("class", class))

	// ---- payload request ----
	if _, err := port.Write([]byte{protocol.ENQ}); err != nil {
		return nil, &TransportError{Op: "write enquiry", Err: err}
	}
	t.sleep(PayloadDelay)

	switch class {
	case protocol.AckPositive:
	case protocol.AckNegative:
		return nil, &NegativeAcknowledgementError{Command: cmd.String()}
	default:
		return nil, &UnexpectedAcknowledgementError{Command: cmd.String(), Value: ackBuf[0]}
	}

	raw, err = readPayload(port, MaxPayloadSize)
	if err != nil {
		return nil, &TransportError{Op: "read payload", Err: err}
	}
	log.Debug("payload received", zap.Int("bytes", len(raw)))
	return raw, nil
}

// readPayload reads until max bytes, io.EOF, or a zero-length read.
// The device sends no length header; end of data is the only terminator.
func readPayload(r io.Reader, max int) ([]byte, error) {
	buf := make([]byte, max)
	n := 0
	for n < max {
		m, err := r.Read(buf[n:])
		n += m
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}
		if m == 0 {
			break
		}
	}
	return buf[:n], nil
}
