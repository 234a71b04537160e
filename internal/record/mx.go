package record

import (
	"github.com/dnsscience/dnsclient/internal/cursor"
	"github.com/dnsscience/dnsclient/internal/label"
	"github.com/dnsscience/dnsclient/internal/rrtype"
	"github.com/dnsscience/dnsclient/internal/wireerr"
)

// MX is a mail-exchange record.
type MX struct {
	Preference uint16
	Exchange   string
}

func (MX) TypeName() string { return "MX" }

func readMX(statedLength int, c *cursor.Cursor) (Record, error) {
	pref, err := c.ReadU16()
	if err != nil {
		return nil, err
	}
	name, consumed, err := label.Decode(c.Buf, c.Pos)
	if err != nil {
		return nil, err
	}
	c.Pos += consumed
	if 2+consumed != statedLength {
		return nil, wireerr.ErrWrongLabelLength(statedLength, 2+consumed)
	}
	return MX{Preference: pref, Exchange: name}, nil
}

func init() { register(rrtype.TypeMX, readMX) }
