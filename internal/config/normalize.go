// internal/config/normalize.go
package config

import (
	"runtime"
	"strings"
)

// Defaults.
const (
	DefaultUser          = 1
	DefaultBaudRate      = 9600
	DefaultDataBits      = 8
	DefaultStopBits      = 1
	DefaultParity        = "N"
	DefaultReadTimeoutMs = 1000
	DefaultLogLevel      = "info"
	DefaultLogFormat     = "console"
)

// DefaultDevicePath returns the platform-standard serial device name.
func DefaultDevicePath() string {
	if runtime.GOOS == "windows" {
		return "COM3"
	}
	return "/dev/ttyACM0"
}

// Normalize applies post-validation normalization.
// It is allowed to mutate configuration.
// It MUST be called only after Validate().
func Normalize(cfg *Config) {
	if cfg == nil {
		return
	}

	d := &cfg.Device

	if d.Path == "" {
		d.Path = DefaultDevicePath()
	}
	if d.User == 0 {
		d.User = DefaultUser
	}
	if d.BaudRate == 0 {
		d.BaudRate = DefaultBaudRate
	}
	if d.DataBits == 0 {
		d.DataBits = DefaultDataBits
	}
	if d.StopBits == 0 {
		d.StopBits = DefaultStopBits
	}
	if d.Parity == "" {
		d.Parity = DefaultParity
	}
	d.Parity = strings.ToUpper(d.Parity)
	if d.ReadTimeoutMs == 0 {
		d.ReadTimeoutMs = DefaultReadTimeoutMs
	}

	if cfg.Export.Output == "-" {
		cfg.Export.Output = ""
	}

	l := &cfg.Logging
	if l.Level == "" {
		l.Level = DefaultLogLevel
	}
	l.Level = strings.ToLower(l.Level)
	if l.Format == "" {
		l.Format = DefaultLogFormat
	}
	l.Format = strings.ToLower(l.Format)
}
