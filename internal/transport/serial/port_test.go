// internal/transport/serial/port_test.go
package serial

import (
	"bytes"
	"io"
	"testing"

	gserial "github.com/goburrow/serial"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeLine struct {
	data   []byte
	closed bool
	wrote  bytes.Buffer
}

func (f *fakeLine) Read(b []byte) (int, error) {
	if len(f.data) == 0 {
		return 0, gserial.ErrTimeout
	}
	n := copy(b, f.data)
	f.data = f.data[n:]
	return n, nil
}

func (f *fakeLine) Write(b []byte) (int, error) { return f.wrote.Write(b) }

func (f *fakeLine) Close() error {
	f.closed = true
	return nil
}

func TestNewOpener_RequiresAddress(t *testing.T) {
	_, err := NewOpener(Config{})
	assert.Error(t, err)
}

func TestPort_TimeoutEndsRead(t *testing.T) {
	line := &fakeLine{data: []byte("abc")}
	p := &port{p: line}

	got, err := io.ReadAll(p)
	require.NoError(t, err)
	assert.Equal(t, "abc", string(got))

	_, err = p.Write([]byte{0x05})
	require.NoError(t, err)
	assert.Equal(t, []byte{0x05}, line.wrote.Bytes())

	require.NoError(t, p.Close())
	assert.True(t, line.closed)
}
