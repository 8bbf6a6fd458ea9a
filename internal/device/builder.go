// internal/device/builder.go
package device

import (
	"time"

	"go.uber.org/zap"

	cfg "github.com/tamzrod/vdc-exporter/internal/config"
	"github.com/tamzrod/vdc-exporter/internal/simulator"
	"github.com/tamzrod/vdc-exporter/internal/transport"
	tserial "github.com/tamzrod/vdc-exporter/internal/transport/serial"
)

// Build constructs a Session and wires the serial connection lifecycle.
// The tty is opened per exchange and closed before the exchange returns.
// No retries.
func Build(d cfg.DeviceConfig, logger *zap.Logger, opts ...transport.Option) (*Session, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	var open transport.Opener

	if d.Simulate {
		open = simulator.NewDemo().Open
		logger.Warn("using simulated device", zap.String("path", d.Path))
	} else {
		o, err := tserial.NewOpener(tserial.Config{
			Address:     d.Path,
			BaudRate:    d.BaudRate,
			DataBits:    d.DataBits,
			StopBits:    d.StopBits,
			Parity:      d.Parity,
			ReadTimeout: time.Duration(d.ReadTimeoutMs) * time.Millisecond,
		})
		if err != nil {
			return nil, err
		}
		open = o
	}

	opts = append([]transport.Option{transport.WithLogger(logger.Named("transport"))}, opts...)
	tr, err := transport.New(open, opts...)
	if err != nil {
		return nil, err
	}

	return New(tr, logger.Named("session"))
}
