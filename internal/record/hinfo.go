package record

import (
	"github.com/dnsscience/dnsclient/internal/cursor"
	"github.com/dnsscience/dnsclient/internal/rrtype"
	"github.com/dnsscience/dnsclient/internal/wireerr"
)

// HINFO describes host CPU and operating system (RFC 1035).
type HINFO struct {
	CPU []byte
	OS  []byte
}

func (HINFO) TypeName() string { return "HINFO" }

func readHINFO(statedLength int, c *cursor.Cursor) (Record, error) {
	cpu, err := c.ReadLengthPrefixed()
	if err != nil {
		return nil, err
	}
	os, err := c.ReadLengthPrefixed()
	if err != nil {
		return nil, err
	}
	total := 1 + len(cpu) + 1 + len(os)
	if total != statedLength {
		return nil, wireerr.ErrWrongLabelLength(statedLength, total)
	}
	return HINFO{CPU: cpu, OS: os}, nil
}

func init() { register(rrtype.TypeHINFO, readHINFO) }
