package record

import (
	"github.com/dnsscience/dnsclient/internal/cursor"
	"github.com/dnsscience/dnsclient/internal/label"
	"github.com/dnsscience/dnsclient/internal/rrtype"
	"github.com/dnsscience/dnsclient/internal/wireerr"
)

// NAPTR is a naming-authority-pointer record (RFC 3403).
type NAPTR struct {
	Order       uint16
	Preference  uint16
	Flags       []byte
	Service     []byte
	Regex       []byte
	Replacement string
}

func (NAPTR) TypeName() string { return "NAPTR" }

func readNAPTR(statedLength int, c *cursor.Cursor) (Record, error) {
	order, err := c.ReadU16()
	if err != nil {
		return nil, err
	}
	pref, err := c.ReadU16()
	if err != nil {
		return nil, err
	}
	flags, err := c.ReadLengthPrefixed()
	if err != nil {
		return nil, err
	}
	service, err := c.ReadLengthPrefixed()
	if err != nil {
		return nil, err
	}
	regex, err := c.ReadLengthPrefixed()
	if err != nil {
		return nil, err
	}
	replacement, consumed, err := label.Decode(c.Buf, c.Pos)
	if err != nil {
		return nil, err
	}
	c.Pos += consumed

	total := 4 + 1 + len(flags) + 1 + len(service) + 1 + len(regex) + consumed
	if total != statedLength {
		return nil, wireerr.ErrWrongLabelLength(statedLength, total)
	}

	return NAPTR{
		Order: order, Preference: pref,
		Flags: flags, Service: service, Regex: regex,
		Replacement: replacement,
	}, nil
}

func init() { register(rrtype.TypeNAPTR, readNAPTR) }
