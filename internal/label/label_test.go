package label

import (
	"testing"

	"github.com/dnsscience/dnsclient/internal/wireerr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeDecodeRoundTrip(t *testing.T) {
	names := []string{"dns.lookup.dog", "example.com", "a.b.c.d.e", ""}
	for _, n := range names {
		wire, err := Encode(n)
		require.NoError(t, err)

		decoded, consumed, err := Decode(wire, 0)
		require.NoError(t, err)
		assert.Equal(t, len(wire), consumed)

		want := n
		if want == "" {
			want = ""
		}
		assert.Equal(t, want, decoded)
	}
}

func TestEncodeRejectsOverlongLabel(t *testing.T) {
	long := make([]byte, 64)
	for i := range long {
		long[i] = 'a'
	}
	_, err := Encode(string(long) + ".com")
	require.Error(t, err)
}

func TestEncodeRejectsOverlongName(t *testing.T) {
	label := ""
	for i := 0; i < 63; i++ {
		label += "a"
	}
	name := ""
	for i := 0; i < 5; i++ {
		name += label + "."
	}
	_, err := Encode(name)
	require.Error(t, err)
}

func TestDecodeCompressedPointer(t *testing.T) {
	// "lookup.dog" at offset 0, then "dns" + pointer back to offset 0.
	buf := []byte{}
	suffix, err := Encode("lookup.dog")
	require.NoError(t, err)
	buf = append(buf, suffix...)

	cnameOffset := len(buf)
	buf = append(buf, 0x03)
	buf = append(buf, "dns"...)
	buf = append(buf, 0xC0, 0x00)

	name, consumed, err := Decode(buf, cnameOffset)
	require.NoError(t, err)
	assert.Equal(t, "dns.lookup.dog", name)
	assert.Equal(t, 6, consumed) // 1+3 label bytes + 2 pointer bytes
}

func TestDecodeRejectsPointerCycle(t *testing.T) {
	buf := []byte{0xC0, 0x00} // points to itself
	_, _, err := Decode(buf, 0)
	require.Error(t, err)
	var we *wireerr.WireError
	require.ErrorAs(t, err, &we)
	assert.Equal(t, wireerr.TooMuchRecursion, we.Kind)
}

func TestDecodeRejectsTooManyHops(t *testing.T) {
	// Nine pointers chained together, one per two-byte slot, each
	// pointing to the previous one; the byte at offset 0 is the terminator.
	buf := make([]byte, 0, 32)
	buf = append(buf, 0x00) // offset 0: terminator
	for i := 0; i < 9; i++ {
		target := len(buf) - 2
		if i == 0 {
			target = 0
		}
		buf = append(buf, 0xC0|byte(target>>8), byte(target))
	}
	_, _, err := Decode(buf, len(buf)-2)
	require.Error(t, err)
	var we *wireerr.WireError
	require.ErrorAs(t, err, &we)
	assert.Equal(t, wireerr.TooMuchRecursion, we.Kind)
}

func TestDecodeRejectsReservedBits(t *testing.T) {
	buf := []byte{0x40, 0x01}
	_, _, err := Decode(buf, 0)
	require.Error(t, err)
}

func TestDecodeOutOfBounds(t *testing.T) {
	buf := []byte{0x05, 'a', 'b'}
	_, _, err := Decode(buf, 0)
	require.Error(t, err)
}
