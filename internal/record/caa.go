package record

import (
	"github.com/dnsscience/dnsclient/internal/cursor"
	"github.com/dnsscience/dnsclient/internal/rrtype"
)

// CAA restricts which certificate authorities may issue for a name (RFC 6844).
type CAA struct {
	Critical bool
	Tag      []byte
	Value    []byte
}

func (CAA) TypeName() string { return "CAA" }

func readCAA(statedLength int, c *cursor.Cursor) (Record, error) {
	flags, err := c.ReadU8()
	if err != nil {
		return nil, err
	}
	tagLen, err := c.ReadU8()
	if err != nil {
		return nil, err
	}
	tag, err := c.ReadBytes(int(tagLen))
	if err != nil {
		return nil, err
	}

	consumed := 2 + int(tagLen)
	remaining := statedLength - consumed
	if remaining < 0 {
		remaining = 0 // saturating subtraction: a too-short stated length just yields no value
	}
	value, err := c.ReadBytes(remaining)
	if err != nil {
		return nil, err
	}

	return CAA{
		Critical: flags&0x80 != 0,
		Tag:      tag,
		Value:    value,
	}, nil
}

func init() { register(rrtype.TypeCAA, readCAA) }
