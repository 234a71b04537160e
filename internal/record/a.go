package record

import (
	"net"

	"github.com/dnsscience/dnsclient/internal/cursor"
	"github.com/dnsscience/dnsclient/internal/rrtype"
	"github.com/dnsscience/dnsclient/internal/wireerr"
)

// A is an IPv4 address record.
type A struct {
	Address net.IP
}

func (A) TypeName() string { return "A" }

func readA(statedLength int, c *cursor.Cursor) (Record, error) {
	if statedLength != 4 {
		return nil, wireerr.ErrWrongRecordLength(statedLength, wireerr.ExactlyN(4))
	}
	b, err := c.ReadBytes(4)
	if err != nil {
		return nil, err
	}
	return A{Address: net.IPv4(b[0], b[1], b[2], b[3])}, nil
}

func init() { register(rrtype.TypeA, readA) }
