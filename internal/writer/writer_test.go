// internal/writer/writer_test.go
package writer

import (
	"bytes"
	"encoding/csv"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tamzrod/vdc-exporter/internal/protocol"
)

func sampleSet() protocol.ObservationSet {
	return protocol.ObservationSet{Observations: []protocol.Observation{
		{Year: 24, Month: 3, Day: 5, Hour: 8, Minute: 7, RegularHeartBeat: true, Systolic: 128, Diastolic: 82, Pulse: 67, Usable: true},
		{Year: 9, Month: 12, Day: 31, Hour: 23, Minute: 59, Systolic: 990, BodyMovement: true, IncorrectCuffWrapping: true, UnsuitableTemperature: true},
	}}
}

func TestCSVWriter_Rows(t *testing.T) {
	var buf bytes.Buffer
	w := NewCSVWriter(&buf)

	require.NoError(t, w.Write(2, sampleSet()))

	rows, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 3)

	assert.Equal(t, Header, rows[0])
	assert.Equal(t, []string{"2", "2024-03-05", "08:07", "1", "128", "82", "67", "0", "0", "0", "1"}, rows[1])
	assert.Equal(t, []string{"2", "2009-12-31", "23:59", "0", "990", "0", "0", "1", "1", "1", "0"}, rows[2])
}

func TestCSVWriter_HeaderOnce(t *testing.T) {
	var buf bytes.Buffer
	w := NewCSVWriter(&buf)

	require.NoError(t, w.Write(1, sampleSet()))
	require.NoError(t, w.Write(2, sampleSet()))

	rows, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	assert.Len(t, rows, 5)
	assert.Equal(t, "1", rows[1][0])
	assert.Equal(t, "2", rows[4][0])
}

func TestCSVWriter_EmptySetWritesHeader(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewCSVWriter(&buf).Write(1, protocol.ObservationSet{}))
	assert.Equal(t, "User,Date,Hour,Regular Heart Beat,Systolic,Diastolic,Pulse,Body Movement,Incorrect Cuff Wrapping,Unsuitable Temperature,Usable Measurement\n", buf.String())
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

func TestCSVWriter_PropagatesIOError(t *testing.T) {
	err := NewCSVWriter(failingWriter{}).Write(1, sampleSet())
	assert.Error(t, err)
}
