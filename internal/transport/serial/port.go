// internal/transport/serial/port.go
package serial

import (
	"errors"
	"io"
	"time"

	gserial "github.com/goburrow/serial"

	"github.com/tamzrod/vdc-exporter/internal/transport"
)

// Config is minimal serial line config.
type Config struct {
	Address     string
	BaudRate    int
	DataBits    int
	StopBits    int
	Parity      string
	ReadTimeout time.Duration
}

// NewOpener returns a transport.Opener that opens the tty on every call.
// No retries.
func NewOpener(cfg Config) (transport.Opener, error) {
	if cfg.Address == "" {
		return nil, errors.New("serial: address required")
	}

	sc := &gserial.Config{
		Address:  cfg.Address,
		BaudRate: cfg.BaudRate,
		DataBits: cfg.DataBits,
		StopBits: cfg.StopBits,
		Parity:   cfg.Parity,
		Timeout:  cfg.ReadTimeout,
	}

	return func() (transport.Port, error) {
		p, err := gserial.Open(sc)
		if err != nil {
			return nil, err
		}
		return &port{p: p}, nil
	}, nil
}

// port maps the driver's read timeout onto io.EOF.
// A silent line means the device has nothing more to send.
type port struct {
	p io.ReadWriteCloser
}

func (p *port) Read(b []byte) (int, error) {
	n, err := p.p.Read(b)
	if errors.Is(err, gserial.ErrTimeout) {
		return n, io.EOF
	}
	return n, err
}

func (p *port) Write(b []byte) (int, error) {
	return p.p.Write(b)
}

func (p *port) Close() error {
	return p.p.Close()
}
