// internal/status/encode.go
package status

import "errors"

// Coder is implemented by every error of the export taxonomy.
type Coder interface {
	Code() uint16
}

// ErrorCode extracts a code from an error without assuming concrete types.
// nil maps to CodeOK. Errors that do not expose a code map to CodeGeneric.
func ErrorCode(err error) uint16 {
	if err == nil {
		return CodeOK
	}

	var c Coder
	if errors.As(err, &c) {
		return c.Code()
	}

	return CodeGeneric
}

// Complete fills health and error code from the run result.
// No IO. No side effects beyond the returned value.
func Complete(s Snapshot, err error) Snapshot {
	s.LastErrorCode = ErrorCode(err)
	if err == nil {
		s.Health = HealthOK
	} else {
		s.Health = HealthError
		s.Observations = 0
	}
	return s
}

// ExitCode encodes a snapshot as a process exit code.
func ExitCode(s Snapshot) int {
	if s.Health == HealthOK {
		return 0
	}
	if s.LastErrorCode == CodeOK {
		return int(CodeGeneric)
	}
	return int(s.LastErrorCode)
}
