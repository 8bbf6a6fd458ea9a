// internal/writer/types.go
package writer

import (
	"github.com/tamzrod/vdc-exporter/internal/protocol"
	"github.com/tamzrod/vdc-exporter/internal/status"
)

// Writer delivers a validated observation set.
// It formats only; it never validates.
type Writer interface {
	Write(user int, set protocol.ObservationSet) error
}

// StatusWriter is the delivery-only contract for run status.
// It receives a snapshot and writes it verbatim.
type StatusWriter interface {
	WriteStatus(s status.Snapshot) error
}
