// internal/protocol/records.go
package protocol

import (
	"fmt"
	"time"
)

// ---- FIELD LAYOUT ----

var (
	countField = Field{Name: "observation_count", Width: CountWidth, Min: 0, Max: MaxObservationCount}

	yearField   = Field{Name: "year", Width: 2, Min: 0, Max: 99}
	monthField  = Field{Name: "month", Width: 2, Min: 1, Max: 12}
	dayField    = Field{Name: "day", Width: 2, Min: 1, Max: 31}
	hourField   = Field{Name: "hour", Width: 2, Min: 0, Max: 23}
	minuteField = Field{Name: "minute", Width: 2, Min: 0, Max: 59}

	regularHeartBeatField = Flag("regular_heart_beat")

	systolicField  = Field{Name: "systolic", Width: 3, Min: 0, Max: 990}
	diastolicField = Field{Name: "diastolic", Width: 3, Min: 0, Max: 990}
	pulseField     = Field{Name: "pulse", Width: 3, Min: 0, Max: 990}

	bodyMovementField          = Flag("body_movement")
	incorrectCuffWrappingField = Flag("incorrect_cuff_wrapping")
	unsuitableTemperatureField = Flag("unsuitable_temperature")
	usableField                = Flag("usable")
)

// reservedSize is the unused byte between unsuitable_temperature and usable.
const reservedSize = 1

// yearOffset converts the two-digit wire year to a calendar year.
const yearOffset = 2000

// ---- OBSERVATION COUNT ----

// ObservationCount is how many observations the device claims to hold for a user.
type ObservationCount struct {
	value int
}

// DecodeObservationCount decodes the count response.
// Bytes after the count field are not consumed.
func DecodeObservationCount(b []byte) (ObservationCount, int, error) {
	c := cursor{buf: b}
	c.skip("observation count header", HeaderSize)
	if c.err == nil && len(b)-c.off < CountWidth {
		c.err = &TruncatedRecordError{Record: "observation count", Want: HeaderSize + CountWidth, Got: len(b)}
	}
	v := c.number(countField)
	if c.err != nil {
		return ObservationCount{}, 0, c.err
	}
	return ObservationCount{value: v}, c.off, nil
}

// Value returns the validated count.
func (c ObservationCount) Value() int {
	return c.value
}

// ---- OBSERVATION ----

// Observation is one stored blood pressure measurement.
type Observation struct {
	Year   int // two-digit wire year
	Month  int
	Day    int
	Hour   int
	Minute int

	RegularHeartBeat bool

	Systolic  int // mmHg
	Diastolic int // mmHg
	Pulse     int // beats/min

	BodyMovement          bool
	IncorrectCuffWrapping bool
	UnsuitableTemperature bool
	Usable                bool
}

// DecodeObservation decodes one fixed-width record from the start of b.
func DecodeObservation(b []byte) (Observation, int, error) {
	if len(b) < ObservationSize {
		return Observation{}, 0, &TruncatedRecordError{Record: "observation", Want: ObservationSize, Got: len(b)}
	}

	c := cursor{buf: b[:ObservationSize]}
	o := Observation{
		Year:             c.number(yearField),
		Month:            c.number(monthField),
		Day:              c.number(dayField),
		Hour:             c.number(hourField),
		Minute:           c.number(minuteField),
		RegularHeartBeat: c.flag(regularHeartBeatField),
		Systolic:         c.number(systolicField),
		Diastolic:        c.number(diastolicField),
		Pulse:            c.number(pulseField),
		BodyMovement:     c.flag(bodyMovementField),

		IncorrectCuffWrapping: c.flag(incorrectCuffWrappingField),
		UnsuitableTemperature: c.flag(unsuitableTemperatureField),
	}
	c.skip("observation", reservedSize)
	o.Usable = c.flag(usableField)

	if c.err != nil {
		return Observation{}, 0, c.err
	}

	// Range checks passed; the day must also exist in that month.
	if last := daysIn(o.Year+yearOffset, o.Month); o.Day > last {
		return Observation{}, 0, &FieldValidationError{
			Field: dayField.Name,
			Raw:   fmt.Sprintf("%02d", o.Day),
			Min:   dayField.Min,
			Max:   last,
		}
	}

	return o, c.off, nil
}

// Bytes encodes the observation in its wire form.
func (o Observation) Bytes() ([]byte, error) {
	out := make([]byte, 0, ObservationSize)

	put := func(f Field, v int) error {
		b, err := f.Encode(v)
		if err != nil {
			return err
		}
		out = append(out, b...)
		return nil
	}

	steps := []struct {
		f Field
		v int
	}{
		{yearField, o.Year},
		{monthField, o.Month},
		{dayField, o.Day},
		{hourField, o.Hour},
		{minuteField, o.Minute},
		{regularHeartBeatField, flagValue(o.RegularHeartBeat)},
		{systolicField, o.Systolic},
		{diastolicField, o.Diastolic},
		{pulseField, o.Pulse},
		{bodyMovementField, flagValue(o.BodyMovement)},
		{incorrectCuffWrappingField, flagValue(o.IncorrectCuffWrapping)},
		{unsuitableTemperatureField, flagValue(o.UnsuitableTemperature)},
	}
	for _, s := range steps {
		if err := put(s.f, s.v); err != nil {
			return nil, err
		}
	}

	out = append(out, '0') // reserved
	if err := put(usableField, flagValue(o.Usable)); err != nil {
		return nil, err
	}
	return out, nil
}

// Date is the calendar date of the measurement.
func (o Observation) Date() time.Time {
	return time.Date(o.Year+yearOffset, time.Month(o.Month), o.Day, 0, 0, 0, 0, time.UTC)
}

// TimeOfDay is the measurement time as HH:MM.
func (o Observation) TimeOfDay() string {
	return fmt.Sprintf("%02d:%02d", o.Hour, o.Minute)
}

// ---- OBSERVATION SET ----

// ObservationSet is the decoded observation dump for one user.
type ObservationSet struct {
	Observations []Observation
}

// DecodeObservationSet decodes the header and then records until b is exhausted.
// A trailing partial record is an error.
func DecodeObservationSet(b []byte) (ObservationSet, int, error) {
	c := cursor{buf: b}
	c.skip("observation set header", HeaderSize)
	if c.err != nil {
		return ObservationSet{}, 0, c.err
	}

	var set ObservationSet
	for c.off < len(b) {
		o, n, err := DecodeObservation(b[c.off:])
		if err != nil {
			return ObservationSet{}, 0, fmt.Errorf("observation %d: %w", len(set.Observations), err)
		}
		set.Observations = append(set.Observations, o)
		c.off += n
	}

	return set, c.off, nil
}

// Len returns the number of observations.
func (s ObservationSet) Len() int {
	return len(s.Observations)
}

func flagValue(b bool) int {
	if b {
		return 1
	}
	return 0
}

func daysIn(year, month int) int {
	return time.Date(year, time.Month(month)+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
