// internal/simulator/device.go
package simulator

import (
	"fmt"
	"io"
	"sync"

	"github.com/tamzrod/vdc-exporter/internal/protocol"
	"github.com/tamzrod/vdc-exporter/internal/transport"
)

// Device is an in-memory monitor speaking the STX/ETX/ENQ protocol.
// Each Open returns a fresh connection; the stored observations persist.
type Device struct {
	mu sync.Mutex

	observations map[int][]protocol.Observation

	// Ack replaces the acknowledgement byte when non-zero.
	Ack byte
	// DeclaredCount replaces the count response when non-nil.
	DeclaredCount *int
	// Trailing is appended to every observation payload.
	Trailing []byte
	// OpenErr is returned by Open when non-nil.
	OpenErr error

	opens        int
	closes       int
	payloadReads int
	commands     []string
}

// New creates an empty device.
func New() *Device {
	return &Device{observations: make(map[int][]protocol.Observation)}
}

// NewDemo creates a device holding a few measurements for both users.
func NewDemo() *Device {
	d := New()
	d.Store(protocol.UserOne,
		protocol.Observation{Year: 24, Month: 3, Day: 15, Hour: 8, Minute: 30, RegularHeartBeat: true, Systolic: 128, Diastolic: 82, Pulse: 67, Usable: true},
		protocol.Observation{Year: 24, Month: 3, Day: 15, Hour: 20, Minute: 5, RegularHeartBeat: true, Systolic: 135, Diastolic: 88, Pulse: 72, Usable: true},
		protocol.Observation{Year: 24, Month: 3, Day: 16, Hour: 7, Minute: 45, Systolic: 142, Diastolic: 91, Pulse: 80, BodyMovement: true},
	)
	d.Store(protocol.UserTwo,
		protocol.Observation{Year: 24, Month: 2, Day: 29, Hour: 9, Minute: 0, RegularHeartBeat: true, Systolic: 118, Diastolic: 76, Pulse: 61, Usable: true},
	)
	return d
}

// Store appends observations for user.
func (d *Device) Store(user int, obs ...protocol.Observation) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.observations[user] = append(d.observations[user], obs...)
}

// Open implements transport.Opener.
func (d *Device) Open() (transport.Port, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.OpenErr != nil {
		return nil, d.OpenErr
	}
	d.opens++
	return &conn{dev: d}, nil
}

// Commands returns the command payloads received, in order.
func (d *Device) Commands() []string {
	d.mu.Lock()
	defer d.mu.Unlock()
	return append([]string(nil), d.commands...)
}

// Opens returns how many connections were opened.
func (d *Device) Opens() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.opens
}

// Closes returns how many connections were closed.
func (d *Device) Closes() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.closes
}

// PayloadReads returns how many reads happened after an ENQ.
func (d *Device) PayloadReads() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.payloadReads
}

// respond builds the ack byte and payload for one command.
func (d *Device) respond(cmd string) (byte, []byte) {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.commands = append(d.commands, cmd)

	var user int
	var kind string
	switch {
	case len(cmd) == 5 && cmd[:4] == "?MRN":
		kind, user = "count", int(cmd[4]-'0')
	case len(cmd) == 6 && cmd[:4] == "?MDR" && cmd[5] == 'A':
		kind, user = "dump", int(cmd[4]-'0')
	default:
		return protocol.NAK, nil
	}
	if user != protocol.UserOne && user != protocol.UserTwo {
		return protocol.NAK, nil
	}

	ack := protocol.ACK
	if d.Ack != 0 {
		ack = d.Ack
	}

	header := append([]byte{protocol.STX}, cmd[1:protocol.HeaderSize]...)
	obs := d.observations[user]

	if kind == "count" {
		n := len(obs)
		if d.DeclaredCount != nil {
			n = *d.DeclaredCount
		}
		return ack, append(header, fmt.Sprintf("%03d", n)...)
	}

	payload := header
	for _, o := range obs {
		b, err := o.Bytes()
		if err != nil {
			return protocol.NAK, nil
		}
		payload = append(payload, b...)
	}
	return ack, append(payload, d.Trailing...)
}

// conn is one open connection to the device.
type conn struct {
	dev *Device

	frame   []byte
	inFrame bool
	enq     bool
	closed  bool

	rx      []byte // bytes the device has sent
	pending []byte // payload released on ENQ
}

func (c *conn) Write(b []byte) (int, error) {
	if c.closed {
		return 0, io.ErrClosedPipe
	}
	for _, x := range b {
		switch {
		case x == protocol.STX:
			c.inFrame, c.frame, c.enq = true, c.frame[:0], false
		case x == protocol.ETX && c.inFrame:
			c.inFrame = false
			ack, payload := c.dev.respond(string(c.frame))
			c.rx = append(c.rx, ack)
			c.pending = nil
			if ack == protocol.ACK {
				c.pending = payload
			}
		case x == protocol.ENQ && !c.inFrame:
			c.enq = true
			c.rx = append(c.rx, c.pending...)
			c.pending = nil
		case c.inFrame:
			c.frame = append(c.frame, x)
		}
	}
	return len(b), nil
}

func (c *conn) Read(b []byte) (int, error) {
	if c.closed {
		return 0, io.ErrClosedPipe
	}
	if c.enq {
		c.dev.mu.Lock()
		c.dev.payloadReads++
		c.dev.mu.Unlock()
	}
	if len(c.rx) == 0 {
		return 0, io.EOF
	}
	n := copy(b, c.rx)
	c.rx = c.rx[n:]
	return n, nil
}

func (c *conn) Close() error {
	if c.closed {
		return nil
	}
	c.closed = true
	c.dev.mu.Lock()
	c.dev.closes++
	c.dev.mu.Unlock()
	return nil
}
