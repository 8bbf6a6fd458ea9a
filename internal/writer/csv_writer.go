// internal/writer/csv_writer.go
package writer

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/tamzrod/vdc-exporter/internal/protocol"
)

// Header is the fixed first row.
var Header = []string{
	"User",
	"Date",
	"Hour",
	"Regular Heart Beat",
	"Systolic",
	"Diastolic",
	"Pulse",
	"Body Movement",
	"Incorrect Cuff Wrapping",
	"Unsuitable Temperature",
	"Usable Measurement",
}

const dateLayout = "2006-01-02"

// CSVWriter renders observation sets as CSV rows.
// The header is written once, before the first set.
type CSVWriter struct {
	w          *csv.Writer
	headerDone bool
}

func NewCSVWriter(w io.Writer) *CSVWriter {
	return &CSVWriter{w: csv.NewWriter(w)}
}

func (c *CSVWriter) Write(user int, set protocol.ObservationSet) error {
	if !c.headerDone {
		if err := c.w.Write(Header); err != nil {
			return fmt.Errorf("writer: csv header: %w", err)
		}
		c.headerDone = true
	}

	u := strconv.Itoa(user)
	for i, o := range set.Observations {
		if err := c.w.Write(Row(u, o)); err != nil {
			return fmt.Errorf("writer: csv row %d: %w", i, err)
		}
	}

	c.w.Flush()
	if err := c.w.Error(); err != nil {
		return fmt.Errorf("writer: csv flush: %w", err)
	}
	return nil
}

// Row formats one observation.
func Row(user string, o protocol.Observation) []string {
	return []string{
		user,
		o.Date().Format(dateLayout),
		o.TimeOfDay(),
		flag(o.RegularHeartBeat),
		strconv.Itoa(o.Systolic),
		strconv.Itoa(o.Diastolic),
		strconv.Itoa(o.Pulse),
		flag(o.BodyMovement),
		flag(o.IncorrectCuffWrapping),
		flag(o.UnsuitableTemperature),
		flag(o.Usable),
	}
}

func flag(b bool) string {
	if b {
		return "1"
	}
	return "0"
}
