// internal/config/validate.go
package config

import (
	"fmt"
	"strings"
)

// Validate checks configuration correctness.
// It performs declarative validation only.
// Zero values mean "use default" and are accepted.
// It MUST NOT mutate configuration.
func Validate(cfg *Config) error {
	if cfg == nil {
		return fmt.Errorf("config: nil")
	}

	// ------------------------------------------------------------
	// DEVICE
	// ------------------------------------------------------------

	d := cfg.Device

	if d.User != 0 && d.User != 1 && d.User != 2 {
		return fmt.Errorf("config: device.user %d: must be 1 or 2", d.User)
	}

	if d.BaudRate < 0 {
		return fmt.Errorf("config: device.baud_rate %d: must be > 0", d.BaudRate)
	}

	if d.DataBits != 0 && (d.DataBits < 5 || d.DataBits > 8) {
		return fmt.Errorf("config: device.data_bits %d: must be 5..8", d.DataBits)
	}

	if d.StopBits != 0 && d.StopBits != 1 && d.StopBits != 2 {
		return fmt.Errorf("config: device.stop_bits %d: must be 1 or 2", d.StopBits)
	}

	switch strings.ToUpper(d.Parity) {
	case "", "N", "E", "O":
	default:
		return fmt.Errorf("config: device.parity %q: must be N, E or O", d.Parity)
	}

	if d.ReadTimeoutMs < 0 {
		return fmt.Errorf("config: device.read_timeout_ms %d: must be >= 0", d.ReadTimeoutMs)
	}

	// ------------------------------------------------------------
	// LOGGING
	// ------------------------------------------------------------

	switch strings.ToLower(cfg.Logging.Level) {
	case "", "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("config: logging.level %q: unknown level", cfg.Logging.Level)
	}

	switch strings.ToLower(cfg.Logging.Format) {
	case "", "json", "console":
	default:
		return fmt.Errorf("config: logging.format %q: must be json or console", cfg.Logging.Format)
	}

	f := cfg.Logging.File
	if f.MaxSizeMB < 0 || f.MaxBackups < 0 || f.MaxAgeDays < 0 {
		return fmt.Errorf("config: logging.file: rotation limits must be >= 0")
	}

	return nil
}
