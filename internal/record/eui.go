package record

import (
	"github.com/dnsscience/dnsclient/internal/cursor"
	"github.com/dnsscience/dnsclient/internal/rrtype"
	"github.com/dnsscience/dnsclient/internal/wireerr"
)

// EUI48 is a 48-bit MAC-style identifier record (RFC 7043).
type EUI48 struct {
	Identifier [6]byte
}

func (EUI48) TypeName() string { return "EUI48" }

func readEUI48(statedLength int, c *cursor.Cursor) (Record, error) {
	if statedLength != 6 {
		return nil, wireerr.ErrWrongRecordLength(statedLength, wireerr.ExactlyN(6))
	}
	b, err := c.ReadBytes(6)
	if err != nil {
		return nil, err
	}
	var out EUI48
	copy(out.Identifier[:], b)
	return out, nil
}

// EUI64 is a 64-bit identifier record (RFC 7043).
type EUI64 struct {
	Identifier [8]byte
}

func (EUI64) TypeName() string { return "EUI64" }

func readEUI64(statedLength int, c *cursor.Cursor) (Record, error) {
	if statedLength != 8 {
		return nil, wireerr.ErrWrongRecordLength(statedLength, wireerr.ExactlyN(8))
	}
	b, err := c.ReadBytes(8)
	if err != nil {
		return nil, err
	}
	var out EUI64
	copy(out.Identifier[:], b)
	return out, nil
}

func init() {
	register(rrtype.TypeEUI48, readEUI48)
	register(rrtype.TypeEUI64, readEUI64)
}
