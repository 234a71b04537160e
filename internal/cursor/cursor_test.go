package cursor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadU8U16U32(t *testing.T) {
	c := New([]byte{0x01, 0x00, 0x02, 0x00, 0x00, 0x00, 0x03}, 0)

	b, err := c.ReadU8()
	require.NoError(t, err)
	assert.Equal(t, byte(1), b)

	u16, err := c.ReadU16()
	require.NoError(t, err)
	assert.Equal(t, uint16(2), u16)

	u32, err := c.ReadU32()
	require.NoError(t, err)
	assert.Equal(t, uint32(3), u32)

	assert.Equal(t, 0, c.Remaining())
}

func TestReadBytesOutOfBounds(t *testing.T) {
	c := New([]byte{0x01, 0x02}, 0)
	_, err := c.ReadBytes(5)
	require.Error(t, err)
}

func TestReadLengthPrefixed(t *testing.T) {
	c := New([]byte{0x03, 'a', 'b', 'c'}, 0)
	b, err := c.ReadLengthPrefixed()
	require.NoError(t, err)
	assert.Equal(t, []byte("abc"), b)
}

func TestReadLengthPrefixedTruncated(t *testing.T) {
	c := New([]byte{0x05, 'a', 'b'}, 0)
	_, err := c.ReadLengthPrefixed()
	require.Error(t, err)
}
