package packet

import (
	"encoding/binary"

	"github.com/dnsscience/dnsclient/internal/cursor"
	"github.com/dnsscience/dnsclient/internal/label"
	"github.com/dnsscience/dnsclient/internal/record"
	"github.com/dnsscience/dnsclient/internal/rrtype"
	"github.com/dnsscience/dnsclient/internal/wireerr"
)

// safeSectionCap bounds pre-allocation for a section whose declared count
// comes straight off the wire and must not be trusted.
const safeSectionCap = 9

// Query is one question: a name, class, and type.
type Query struct {
	QName  string
	QClass rrtype.QClass
	QType  uint16 // raw wire type number; resolved against rrtype.FromNumber by the Answer reader
}

// Answer is a tagged variant over a standard resource record and the OPT
// pseudo-record, which reuses the class/TTL wire positions for its own
// fields and therefore cannot share the standard shape.
type Answer struct {
	IsPseudo bool

	// Standard
	QName  string
	QClass rrtype.QClass
	TTL    uint32
	Record record.Record

	// Pseudo (OPT)
	OptQName string
	Opt      record.OPT
}

// Request is a single outgoing query, optionally carrying an OPT additional
// record (EDNS).
type Request struct {
	TransactionID uint16
	Flags         Flags
	Query         Query
	Additional    *record.OPT
}

// Response is a fully parsed, fully owned reply. No field holds a reference
// into the byte buffer it was parsed from.
type Response struct {
	TransactionID uint16
	Flags         Flags
	Queries       []Query
	Answers       []Answer
	Authorities   []Answer
	Additionals   []Answer
}

// Serialize emits the wire bytes for a Request: header, question, and an
// optional OPT additional record.
func (r Request) Serialize() ([]byte, error) {
	qnameBytes, err := label.Encode(r.Query.QName)
	if err != nil {
		return nil, err
	}

	arcount := uint16(0)
	var optBytes []byte
	if r.Additional != nil {
		optBytes, err = r.Additional.Bytes()
		if err != nil {
			return nil, err
		}
		arcount = 1
	}

	buf := make([]byte, 0, 12+len(qnameBytes)+4+1+2+len(optBytes))
	buf = binary.BigEndian.AppendUint16(buf, r.TransactionID)
	buf = binary.BigEndian.AppendUint16(buf, r.Flags.Encode())
	buf = binary.BigEndian.AppendUint16(buf, 1) // qdcount
	buf = binary.BigEndian.AppendUint16(buf, 0) // ancount
	buf = binary.BigEndian.AppendUint16(buf, 0) // nscount
	buf = binary.BigEndian.AppendUint16(buf, arcount)

	buf = append(buf, qnameBytes...)
	buf = binary.BigEndian.AppendUint16(buf, r.Query.QType)
	buf = binary.BigEndian.AppendUint16(buf, uint16(r.Query.QClass))

	if r.Additional != nil {
		buf = append(buf, 0x00) // root name
		buf = binary.BigEndian.AppendUint16(buf, record.RRType)
		buf = append(buf, optBytes...)
	}

	return buf, nil
}

// Parse decodes a full response packet.
func Parse(buf []byte) (*Response, error) {
	c := cursor.New(buf, 0)

	txid, err := c.ReadU16()
	if err != nil {
		return nil, err
	}
	flagsRaw, err := c.ReadU16()
	if err != nil {
		return nil, err
	}
	qdcount, err := c.ReadU16()
	if err != nil {
		return nil, err
	}
	ancount, err := c.ReadU16()
	if err != nil {
		return nil, err
	}
	nscount, err := c.ReadU16()
	if err != nil {
		return nil, err
	}
	arcount, err := c.ReadU16()
	if err != nil {
		return nil, err
	}

	resp := &Response{TransactionID: txid, Flags: DecodeFlags(flagsRaw)}

	resp.Queries = make([]Query, 0, clampCount(qdcount))
	for i := uint16(0); i < qdcount; i++ {
		q, err := parseQuery(c)
		if err != nil {
			return nil, err
		}
		resp.Queries = append(resp.Queries, q)
	}

	resp.Answers = make([]Answer, 0, clampCount(ancount))
	for i := uint16(0); i < ancount; i++ {
		a, err := parseAnswer(c)
		if err != nil {
			return nil, err
		}
		resp.Answers = append(resp.Answers, a)
	}

	resp.Authorities = make([]Answer, 0, clampCount(nscount))
	for i := uint16(0); i < nscount; i++ {
		a, err := parseAnswer(c)
		if err != nil {
			return nil, err
		}
		resp.Authorities = append(resp.Authorities, a)
	}

	resp.Additionals = make([]Answer, 0, clampCount(arcount))
	for i := uint16(0); i < arcount; i++ {
		a, err := parseAnswer(c)
		if err != nil {
			return nil, err
		}
		resp.Additionals = append(resp.Additionals, a)
	}

	return resp, nil
}

func clampCount(n uint16) int {
	if int(n) > safeSectionCap {
		return safeSectionCap
	}
	return int(n)
}

func parseQuery(c *cursor.Cursor) (Query, error) {
	name, consumed, err := label.Decode(c.Buf, c.Pos)
	if err != nil {
		return Query{}, err
	}
	c.Pos += consumed

	qtype, err := c.ReadU16()
	if err != nil {
		return Query{}, err
	}
	qclass, err := c.ReadU16()
	if err != nil {
		return Query{}, err
	}

	return Query{QName: name, QType: qtype, QClass: rrtype.QClass(qclass)}, nil
}

func parseAnswer(c *cursor.Cursor) (Answer, error) {
	name, consumed, err := label.Decode(c.Buf, c.Pos)
	if err != nil {
		return Answer{}, err
	}
	c.Pos += consumed

	typeNum, err := c.ReadU16()
	if err != nil {
		return Answer{}, err
	}

	if typeNum == record.RRType {
		opt, err := record.ReadOPT(c)
		if err != nil {
			return Answer{}, err
		}
		return Answer{IsPseudo: true, OptQName: name, Opt: opt}, nil
	}

	qclass, err := c.ReadU16()
	if err != nil {
		return Answer{}, err
	}
	ttl, err := c.ReadU32()
	if err != nil {
		return Answer{}, err
	}
	rdlength, err := c.ReadU16()
	if err != nil {
		return Answer{}, err
	}

	var rec record.Record
	if t, ok := rrtype.FromNumber(typeNum); ok {
		readFn, ok := record.Lookup(t)
		if !ok {
			return Answer{}, wireerr.ErrIO()
		}
		rec, err = readFn(int(rdlength), c)
		if err != nil {
			return Answer{}, err
		}
	} else {
		b, err := c.ReadBytes(int(rdlength))
		if err != nil {
			return Answer{}, err
		}
		rec = record.Other{TypeNumber: rrtype.UnknownFromNumber(typeNum), Bytes: b}
	}

	return Answer{
		QName:  name,
		QClass: rrtype.QClass(qclass),
		TTL:    ttl,
		Record: rec,
	}, nil
}
