// internal/protocol/command_test.go
package protocol

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildCommands(t *testing.T) {
	cases := []struct {
		user  int
		count string
		obs   string
	}{
		{1, "?MRN1", "?MDR1A"},
		{2, "?MRN2", "?MDR2A"},
	}

	for _, tc := range cases {
		c, err := BuildCountCommand(tc.user)
		require.NoError(t, err)
		assert.Equal(t, tc.count, c.String())
		assert.Equal(t, []byte(tc.count), c.Bytes())

		o, err := BuildObservationsCommand(tc.user)
		require.NoError(t, err)
		assert.Equal(t, tc.obs, o.String())
		assert.Equal(t, []byte(tc.obs), o.Bytes())
	}
}

func TestBuildCommands_InvalidUser(t *testing.T) {
	for _, user := range []int{-1, 0, 3, 10, 255} {
		_, err := BuildCountCommand(user)
		var iue *InvalidUserError
		require.ErrorAs(t, err, &iue)
		assert.Equal(t, user, iue.User)

		_, err = BuildObservationsCommand(user)
		assert.ErrorAs(t, err, new(*InvalidUserError))
	}
}

func TestCommandBytesIsCopy(t *testing.T) {
	c, err := BuildCountCommand(1)
	require.NoError(t, err)

	b := c.Bytes()
	b[0] = 'X'
	assert.Equal(t, "?MRN1", c.String())
}

func TestAcknowledgementClassify(t *testing.T) {
	counts := map[AckClass]int{}

	for i := 0; i < 256; i++ {
		class := Acknowledgement(byte(i)).Classify()
		counts[class]++

		switch byte(i) {
		case 0x06:
			assert.Equal(t, AckPositive, class)
		case 0x15:
			assert.Equal(t, AckNegative, class)
		default:
			assert.Equal(t, AckOther, class, "byte 0x%02x", i)
		}
	}

	assert.Equal(t, 1, counts[AckPositive])
	assert.Equal(t, 1, counts[AckNegative])
	assert.Equal(t, 254, counts[AckOther])
}
