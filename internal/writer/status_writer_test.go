// internal/writer/status_writer_test.go
package writer

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tamzrod/vdc-exporter/internal/status"
)

func TestNewStatusWriter_DisabledWithoutPath(t *testing.T) {
	sw, enabled := NewStatusWriter("")
	assert.False(t, enabled)
	assert.Error(t, sw.WriteStatus(status.Snapshot{}))
}

func TestStatusWriter_WritesTextfile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "vdc.prom")

	sw, enabled := NewStatusWriter(path)
	require.True(t, enabled)

	err := sw.WriteStatus(status.Snapshot{
		User:          1,
		Health:        status.HealthOK,
		LastErrorCode: status.CodeOK,
		Observations:  3,
		At:            time.Unix(1700000000, 0),
		Duration:      1500 * time.Millisecond,
	})
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	text := string(data)

	assert.Contains(t, text, `vdc_export_health{user="1"} 1`)
	assert.Contains(t, text, `vdc_export_last_error_code{user="1"} 0`)
	assert.Contains(t, text, `vdc_export_observations{user="1"} 3`)
	assert.Contains(t, text, `vdc_export_last_run_timestamp_seconds{user="1"} 1.7e+09`)
	assert.Contains(t, text, `vdc_export_duration_seconds{user="1"} 1.5`)
}

func TestStatusWriter_ErrorOverwrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "vdc.prom")
	sw, _ := NewStatusWriter(path)

	require.NoError(t, sw.WriteStatus(status.Snapshot{User: 2, Health: status.HealthOK, Observations: 4}))
	require.NoError(t, sw.WriteStatus(status.Snapshot{User: 2, Health: status.HealthError, LastErrorCode: status.CodeCountMismatch}))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `vdc_export_health{user="2"} 2`)
	assert.Contains(t, string(data), `vdc_export_last_error_code{user="2"} 8`)
	assert.Contains(t, string(data), `vdc_export_observations{user="2"} 0`)
}
