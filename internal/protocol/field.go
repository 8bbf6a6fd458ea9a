// internal/protocol/field.go
package protocol

import "fmt"

// Field describes one fixed-width ASCII decimal field with an inclusive range.
// Every numeric and flag field of every record is decoded through a Field.
type Field struct {
	Name  string
	Width int
	Min   int
	Max   int
}

// Flag returns a one-character field restricted to 0 or 1.
func Flag(name string) Field {
	return Field{Name: name, Width: 1, Min: 0, Max: 1}
}

// Decode parses exactly Width ASCII digits from the start of b.
// Signs, spaces and any other non-digit byte are rejected.
// No side effects.
func (f Field) Decode(b []byte) (int, error) {
	if len(b) < f.Width {
		return 0, &TruncatedRecordError{Record: "field " + f.Name, Want: f.Width, Got: len(b)}
	}

	raw := b[:f.Width]
	v := 0
	for _, c := range raw {
		if c < '0' || c > '9' {
			return 0, f.invalid(string(raw))
		}
		v = v*10 + int(c-'0')
	}

	if v < f.Min || v > f.Max {
		return 0, f.invalid(string(raw))
	}
	return v, nil
}

// DecodeFlag decodes a 0/1 field as a bool.
func (f Field) DecodeFlag(b []byte) (bool, error) {
	v, err := f.Decode(b)
	return v == 1, err
}

// Encode renders v as Width zero-padded ASCII digits.
func (f Field) Encode(v int) ([]byte, error) {
	if v < f.Min || v > f.Max {
		return nil, f.invalid(fmt.Sprint(v))
	}
	s := fmt.Sprintf("%0*d", f.Width, v)
	if len(s) != f.Width {
		return nil, f.invalid(s)
	}
	return []byte(s), nil
}

func (f Field) invalid(raw string) error {
	return &FieldValidationError{Field: f.Name, Raw: raw, Min: f.Min, Max: f.Max}
}

// cursor walks a response buffer field by field.
// The first error sticks; later calls are no-ops.
type cursor struct {
	buf []byte
	off int
	err error
}

func (c *cursor) number(f Field) int {
	if c.err != nil {
		return 0
	}
	v, err := f.Decode(c.buf[c.off:])
	if err != nil {
		c.err = err
		return 0
	}
	c.off += f.Width
	return v
}

func (c *cursor) flag(f Field) bool {
	return c.number(f) == 1
}

func (c *cursor) skip(record string, n int) {
	if c.err != nil {
		return
	}
	if len(c.buf)-c.off < n {
		c.err = &TruncatedRecordError{Record: record, Want: n, Got: len(c.buf) - c.off}
		return
	}
	c.off += n
}
