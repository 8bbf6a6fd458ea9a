// internal/status/snapshot.go
package status

import "time"

// Snapshot represents the outcome of one export run.
// It contains no logic.
type Snapshot struct {
	RunID         string
	User          int
	Health        uint16
	LastErrorCode uint16
	Observations  int
	At            time.Time
	Duration      time.Duration
}
