// internal/writer/status_writer.go
package writer

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/tamzrod/vdc-exporter/internal/status"
)

// textfileStatusWriter renders run status as Prometheus gauges into a
// node_exporter textfile. The file is replaced atomically on every write.
type textfileStatusWriter struct {
	path string
	reg  *prometheus.Registry

	health       *prometheus.GaugeVec
	lastError    *prometheus.GaugeVec
	observations *prometheus.GaugeVec
	lastRun      *prometheus.GaugeVec
	duration     *prometheus.GaugeVec
}

// NewStatusWriter builds a status writer if a textfile path is configured.
// If path is empty, status is disabled.
func NewStatusWriter(path string) (*textfileStatusWriter, bool) {
	if path == "" {
		return nil, false
	}

	labels := []string{"user"}
	sw := &textfileStatusWriter{
		path: path,
		reg:  prometheus.NewRegistry(),
		health: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "vdc_export_health",
			Help: "Outcome of the last export: 0 unknown, 1 ok, 2 error.",
		}, labels),
		lastError: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "vdc_export_last_error_code",
			Help: "Error code of the last export, 0 on success.",
		}, labels),
		observations: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "vdc_export_observations",
			Help: "Observations exported by the last successful run.",
		}, labels),
		lastRun: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "vdc_export_last_run_timestamp_seconds",
			Help: "Unix time the last export finished.",
		}, labels),
		duration: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "vdc_export_duration_seconds",
			Help: "Wall time of the last export.",
		}, labels),
	}
	sw.reg.MustRegister(sw.health, sw.lastError, sw.observations, sw.lastRun, sw.duration)
	return sw, true
}

// WriteStatus delivers a run snapshot into the textfile.
func (sw *textfileStatusWriter) WriteStatus(s status.Snapshot) error {
	if sw == nil || sw.reg == nil {
		return errors.New("status writer: disabled")
	}

	user := strconv.Itoa(s.User)
	sw.health.WithLabelValues(user).Set(float64(s.Health))
	sw.lastError.WithLabelValues(user).Set(float64(s.LastErrorCode))
	sw.observations.WithLabelValues(user).Set(float64(s.Observations))
	sw.lastRun.WithLabelValues(user).Set(float64(s.At.Unix()))
	sw.duration.WithLabelValues(user).Set(s.Duration.Seconds())

	if err := prometheus.WriteToTextfile(sw.path, sw.reg); err != nil {
		return fmt.Errorf("status writer: %w", err)
	}
	return nil
}
