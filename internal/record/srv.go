package record

import (
	"github.com/dnsscience/dnsclient/internal/cursor"
	"github.com/dnsscience/dnsclient/internal/label"
	"github.com/dnsscience/dnsclient/internal/rrtype"
	"github.com/dnsscience/dnsclient/internal/wireerr"
)

// SRV is a service-location record (RFC 2782).
type SRV struct {
	Priority uint16
	Weight   uint16
	Port     uint16
	Target   string
}

func (SRV) TypeName() string { return "SRV" }

func readSRV(statedLength int, c *cursor.Cursor) (Record, error) {
	priority, err := c.ReadU16()
	if err != nil {
		return nil, err
	}
	weight, err := c.ReadU16()
	if err != nil {
		return nil, err
	}
	port, err := c.ReadU16()
	if err != nil {
		return nil, err
	}
	name, consumed, err := label.Decode(c.Buf, c.Pos)
	if err != nil {
		return nil, err
	}
	c.Pos += consumed
	if 6+consumed != statedLength {
		return nil, wireerr.ErrWrongLabelLength(statedLength, 6+consumed)
	}
	return SRV{Priority: priority, Weight: weight, Port: port, Target: name}, nil
}

func init() { register(rrtype.TypeSRV, readSRV) }
