package record

import (
	"github.com/dnsscience/dnsclient/internal/cursor"
	"github.com/dnsscience/dnsclient/internal/label"
	"github.com/dnsscience/dnsclient/internal/rrtype"
	"github.com/dnsscience/dnsclient/internal/wireerr"
)

// SOA is the start-of-authority record.
type SOA struct {
	MName   string
	RName   string
	Serial  uint32
	Refresh uint32
	Retry   uint32
	Expire  uint32
	Minimum uint32
}

func (SOA) TypeName() string { return "SOA" }

func readSOA(statedLength int, c *cursor.Cursor) (Record, error) {
	mname, mconsumed, err := label.Decode(c.Buf, c.Pos)
	if err != nil {
		return nil, err
	}
	c.Pos += mconsumed

	rname, rconsumed, err := label.Decode(c.Buf, c.Pos)
	if err != nil {
		return nil, err
	}
	c.Pos += rconsumed

	serial, err := c.ReadU32()
	if err != nil {
		return nil, err
	}
	refresh, err := c.ReadU32()
	if err != nil {
		return nil, err
	}
	retry, err := c.ReadU32()
	if err != nil {
		return nil, err
	}
	expire, err := c.ReadU32()
	if err != nil {
		return nil, err
	}
	minimum, err := c.ReadU32()
	if err != nil {
		return nil, err
	}

	total := 20 + mconsumed + rconsumed
	if total != statedLength {
		return nil, wireerr.ErrWrongLabelLength(statedLength, total)
	}

	return SOA{
		MName: mname, RName: rname,
		Serial: serial, Refresh: refresh, Retry: retry, Expire: expire, Minimum: minimum,
	}, nil
}

func init() { register(rrtype.TypeSOA, readSOA) }
