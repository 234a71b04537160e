// Package cursor provides a small random-access byte reader used by the
// record codec. It tracks a position within a full packet buffer but can be
// bounded to a sub-window (an RDLENGTH-sized slice) so a record reader can
// never read past its own RDATA.
package cursor

import (
	"encoding/binary"

	"github.com/dnsscience/dnsclient/internal/wireerr"
)

// Cursor reads sequentially from buf starting at Pos. Pos is absolute within
// buf, which lets record readers call into the label codec (which needs the
// full packet for compression pointers) without losing their place.
type Cursor struct {
	Buf []byte
	Pos int
}

func New(buf []byte, pos int) *Cursor {
	return &Cursor{Buf: buf, Pos: pos}
}

func (c *Cursor) Remaining() int {
	return len(c.Buf) - c.Pos
}

func (c *Cursor) ReadU8() (byte, error) {
	if c.Remaining() < 1 {
		return 0, wireerr.ErrIO()
	}
	b := c.Buf[c.Pos]
	c.Pos++
	return b, nil
}

func (c *Cursor) ReadU16() (uint16, error) {
	if c.Remaining() < 2 {
		return 0, wireerr.ErrIO()
	}
	v := binary.BigEndian.Uint16(c.Buf[c.Pos:])
	c.Pos += 2
	return v, nil
}

func (c *Cursor) ReadU32() (uint32, error) {
	if c.Remaining() < 4 {
		return 0, wireerr.ErrIO()
	}
	v := binary.BigEndian.Uint32(c.Buf[c.Pos:])
	c.Pos += 4
	return v, nil
}

func (c *Cursor) ReadBytes(n int) ([]byte, error) {
	if n < 0 || c.Remaining() < n {
		return nil, wireerr.ErrIO()
	}
	b := make([]byte, n)
	copy(b, c.Buf[c.Pos:c.Pos+n])
	c.Pos += n
	return b, nil
}

// ReadLengthPrefixed reads a one-byte length L followed by L bytes.
func (c *Cursor) ReadLengthPrefixed() ([]byte, error) {
	l, err := c.ReadU8()
	if err != nil {
		return nil, err
	}
	return c.ReadBytes(int(l))
}
