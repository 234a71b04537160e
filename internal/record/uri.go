package record

import (
	"github.com/dnsscience/dnsclient/internal/cursor"
	"github.com/dnsscience/dnsclient/internal/rrtype"
	"github.com/dnsscience/dnsclient/internal/wireerr"
)

// URI maps a name to a URI target, weighted like SRV (RFC 7553).
type URI struct {
	Priority uint16
	Weight   uint16
	Target   string
}

func (URI) TypeName() string { return "URI" }

func readURI(statedLength int, c *cursor.Cursor) (Record, error) {
	if statedLength < 5 {
		return nil, wireerr.ErrWrongRecordLength(statedLength, wireerr.AtLeastN(5))
	}
	priority, err := c.ReadU16()
	if err != nil {
		return nil, err
	}
	weight, err := c.ReadU16()
	if err != nil {
		return nil, err
	}
	target, err := c.ReadBytes(statedLength - 4)
	if err != nil {
		return nil, err
	}
	return URI{Priority: priority, Weight: weight, Target: string(target)}, nil
}

func init() { register(rrtype.TypeURI, readURI) }
