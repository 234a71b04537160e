package record

import (
	"github.com/dnsscience/dnsclient/internal/cursor"
	"github.com/dnsscience/dnsclient/internal/label"
	"github.com/dnsscience/dnsclient/internal/rrtype"
	"github.com/dnsscience/dnsclient/internal/wireerr"
)

// CNAME, NS, and PTR all hold exactly one domain name and share the same
// length-consistency rule: the RDLENGTH must equal the bytes consumed
// reading that one label sequence.

type CNAME struct{ Domain string }

func (CNAME) TypeName() string { return "CNAME" }

type NS struct{ Domain string }

func (NS) TypeName() string { return "NS" }

type PTR struct{ Domain string }

func (PTR) TypeName() string { return "PTR" }

func readSingleLabel(statedLength int, c *cursor.Cursor) (string, error) {
	name, consumed, err := label.Decode(c.Buf, c.Pos)
	if err != nil {
		return "", err
	}
	c.Pos += consumed
	if consumed != statedLength {
		return "", wireerr.ErrWrongLabelLength(statedLength, consumed)
	}
	return name, nil
}

func readCNAME(statedLength int, c *cursor.Cursor) (Record, error) {
	name, err := readSingleLabel(statedLength, c)
	if err != nil {
		return nil, err
	}
	return CNAME{Domain: name}, nil
}

func readNS(statedLength int, c *cursor.Cursor) (Record, error) {
	name, err := readSingleLabel(statedLength, c)
	if err != nil {
		return nil, err
	}
	return NS{Domain: name}, nil
}

func readPTR(statedLength int, c *cursor.Cursor) (Record, error) {
	name, err := readSingleLabel(statedLength, c)
	if err != nil {
		return nil, err
	}
	return PTR{Domain: name}, nil
}

func init() {
	register(rrtype.TypeCNAME, readCNAME)
	register(rrtype.TypeNS, readNS)
	register(rrtype.TypePTR, readPTR)
}
