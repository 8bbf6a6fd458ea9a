// internal/config/validate_test.go
package config

import "testing"

// helper to build a config quickly
func device(user int, parity string, dataBits, stopBits int) *Config {
	return &Config{
		Device: DeviceConfig{
			Path:     "/dev/ttyACM0",
			User:     user,
			Parity:   parity,
			DataBits: dataBits,
			StopBits: stopBits,
		},
	}
}

// ---- tests ----

func TestValidate_EmptyConfigAccepted(t *testing.T) {
	if err := Validate(&Config{}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestValidate_BothUsersAccepted(t *testing.T) {
	for _, u := range []int{1, 2} {
		if err := Validate(device(u, "N", 8, 1)); err != nil {
			t.Fatalf("user %d: unexpected error: %v", u, err)
		}
	}
}

func TestValidate_InvalidUserRejected(t *testing.T) {
	for _, u := range []int{-1, 3, 9} {
		if err := Validate(device(u, "N", 8, 1)); err == nil {
			t.Fatalf("user %d: expected error, got nil", u)
		}
	}
}

func TestValidate_LowercaseParityAccepted(t *testing.T) {
	if err := Validate(device(1, "e", 7, 2)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestValidate_BadParityRejected(t *testing.T) {
	if err := Validate(device(1, "X", 8, 1)); err == nil {
		t.Fatalf("expected parity error, got nil")
	}
}

func TestValidate_BadLineGeometryRejected(t *testing.T) {
	if err := Validate(device(1, "N", 9, 1)); err == nil {
		t.Fatalf("expected data_bits error, got nil")
	}
	if err := Validate(device(1, "N", 8, 3)); err == nil {
		t.Fatalf("expected stop_bits error, got nil")
	}

	cfg := device(1, "N", 8, 1)
	cfg.Device.ReadTimeoutMs = -5
	if err := Validate(cfg); err == nil {
		t.Fatalf("expected read_timeout_ms error, got nil")
	}
}

func TestValidate_LoggingRejected(t *testing.T) {
	cfg := &Config{Logging: LoggingConfig{Level: "loud"}}
	if err := Validate(cfg); err == nil {
		t.Fatalf("expected level error, got nil")
	}

	cfg = &Config{Logging: LoggingConfig{Format: "xml"}}
	if err := Validate(cfg); err == nil {
		t.Fatalf("expected format error, got nil")
	}
}

func TestValidate_DoesNotMutate(t *testing.T) {
	cfg := &Config{}
	_ = Validate(cfg)
	if cfg.Device.User != 0 || cfg.Device.Path != "" {
		t.Fatalf("validate mutated config: %+v", cfg.Device)
	}
}
