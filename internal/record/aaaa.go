package record

import (
	"net"

	"github.com/dnsscience/dnsclient/internal/cursor"
	"github.com/dnsscience/dnsclient/internal/rrtype"
	"github.com/dnsscience/dnsclient/internal/wireerr"
)

// AAAA is an IPv6 address record.
type AAAA struct {
	Address net.IP
}

func (AAAA) TypeName() string { return "AAAA" }

func readAAAA(statedLength int, c *cursor.Cursor) (Record, error) {
	if statedLength != 16 {
		return nil, wireerr.ErrWrongRecordLength(statedLength, wireerr.ExactlyN(16))
	}
	b, err := c.ReadBytes(16)
	if err != nil {
		return nil, err
	}
	return AAAA{Address: net.IP(b)}, nil
}

func init() { register(rrtype.TypeAAAA, readAAAA) }
