// Package rrtype defines the closed set of DNS record types this client
// parses, plus the QClass and rcode enumerations used throughout the packet
// and record codecs.
package rrtype

import "strings"

// Type is a record type that may or may not be one of the known,
// fully-parsed ones. A Type carries no data beyond which kind of record it
// identifies.
type Type uint16

const (
	TypeA          Type = 1
	TypeNS         Type = 2
	TypeCNAME      Type = 5
	TypeSOA        Type = 6
	TypePTR        Type = 12
	TypeHINFO      Type = 13
	TypeMX         Type = 15
	TypeTXT        Type = 16
	TypeAAAA       Type = 28
	TypeLOC        Type = 29
	TypeSRV        Type = 33
	TypeNAPTR      Type = 35
	TypeEUI48      Type = 108
	TypeEUI64      Type = 109
	TypeOPT        Type = 41
	TypeSSHFP      Type = 44
	TypeOPENPGPKEY Type = 61
	TypeSVCB       Type = 64
	TypeHTTPS      Type = 65
	TypeTLSA       Type = 52
	TypeCAA        Type = 257
	TypeURI        Type = 256
)

var knownNames = map[Type]string{
	TypeA:          "A",
	TypeNS:         "NS",
	TypeCNAME:      "CNAME",
	TypeSOA:        "SOA",
	TypePTR:        "PTR",
	TypeHINFO:      "HINFO",
	TypeMX:         "MX",
	TypeTXT:        "TXT",
	TypeAAAA:       "AAAA",
	TypeLOC:        "LOC",
	TypeSRV:        "SRV",
	TypeNAPTR:      "NAPTR",
	TypeEUI48:      "EUI48",
	TypeEUI64:      "EUI64",
	TypeOPT:        "OPT",
	TypeSSHFP:      "SSHFP",
	TypeOPENPGPKEY: "OPENPGPKEY",
	TypeSVCB:       "SVCB",
	TypeHTTPS:      "HTTPS",
	TypeTLSA:       "TLSA",
	TypeCAA:        "CAA",
	TypeURI:        "URI",
}

// otherTypes maps textual names of recognized-but-not-parsed record types to
// their IANA numbers. Lookup is ASCII-case-insensitive. This is a closed
// table, not an extension point.
var otherTypes = []struct {
	Name   string
	Number uint16
}{
	{"AFSDB", 18},
	{"ANY", 255},
	{"APL", 42},
	{"AXFR", 252},
	{"CDNSKEY", 60},
	{"CDS", 59},
	{"CERT", 37},
	{"CSYNC", 62},
	{"DHCID", 49},
	{"DLV", 32769},
	{"DNAME", 39},
	{"DNSKEY", 48},
	{"DS", 43},
	{"HIP", 55},
	{"IPSECKEY", 45},
	{"IXFR", 251},
	{"KEY", 25},
	{"KX", 36},
	{"NSEC", 47},
	{"NSEC3", 50},
	{"NSEC3PARAM", 51},
	{"RRSIG", 46},
	{"RP", 17},
	{"SIG", 24},
	{"SMIMEA", 53},
	{"TA", 32768},
	{"TKEY", 249},
	{"TSIG", 250},
}

// UnknownQtype is a record type number the codec does not fully parse: it
// may still have a recognized textual name (from otherTypes), or be a bare
// numeric code with no known name at all.
type UnknownQtype struct {
	Number uint16
	Name   string // empty when the number has no known name
}

func (u UnknownQtype) String() string {
	if u.Name != "" {
		return u.Name
	}
	return uintToString(u.Number)
}

func uintToString(n uint16) string {
	if n == 0 {
		return "0"
	}
	var buf [5]byte
	i := len(buf)
	for n > 0 {
		i--
		buf[i] = byte('0' + n%10)
		n /= 10
	}
	return string(buf[i:])
}

// FromNumber returns the known, fully-parsed Type for a raw 16-bit type
// number and true, or false when the number is not one of them
// (UnknownFromNumber classifies those).
func FromNumber(n uint16) (Type, bool) {
	t := Type(n)
	if _, ok := knownNames[t]; ok {
		return t, true
	}
	return 0, false
}

func UnknownFromNumber(n uint16) UnknownQtype {
	for _, e := range otherTypes {
		if e.Number == n {
			return UnknownQtype{Number: n, Name: e.Name}
		}
	}
	return UnknownQtype{Number: n}
}

// Name returns the textual name of a known type.
func (t Type) Name() string { return knownNames[t] }

// Lookup resolves a textual record type name (ASCII-case-insensitive) to its
// numeric code, checking both the known fully-parsed types and the
// recognized-but-opaque ones.
func Lookup(name string) (uint16, bool) {
	upper := strings.ToUpper(name)
	for t, n := range knownNames {
		if n == upper {
			return uint16(t), true
		}
	}
	for _, e := range otherTypes {
		if e.Name == upper {
			return e.Number, true
		}
	}
	return 0, false
}

// QClass is the query/record class field.
type QClass uint16

const (
	ClassIN    QClass = 1
	ClassCH    QClass = 3
	ClassHS    QClass = 4
	classOther QClass = 0xFFFF // sentinel, never compared directly
)

func (c QClass) String() string {
	switch c {
	case ClassIN:
		return "IN"
	case ClassCH:
		return "CH"
	case ClassHS:
		return "HS"
	default:
		return uintToString(uint16(c))
	}
}

func QClassFromName(name string) (QClass, bool) {
	switch strings.ToUpper(name) {
	case "IN":
		return ClassIN, true
	case "CH":
		return ClassCH, true
	case "HS":
		return ClassHS, true
	default:
		return 0, false
	}
}

// ErrorCode is the 4-bit (extendable via OPT) response code.
type ErrorCode int

const (
	NoError ErrorCode = iota
	FormatError
	ServerFailure
	NXDomain
	NotImplemented
	QueryRefused
	BadVersion
	ErrorCodeOtherOrPrivate // distinguished further by the numeric code carried alongside
)

func (e ErrorCode) String() string {
	switch e {
	case NoError:
		return "NOERROR"
	case FormatError:
		return "FORMERR"
	case ServerFailure:
		return "SERVFAIL"
	case NXDomain:
		return "NXDOMAIN"
	case NotImplemented:
		return "NOTIMP"
	case QueryRefused:
		return "REFUSED"
	case BadVersion:
		return "BADVERS"
	default:
		return "OTHER"
	}
}

func ErrorCodeFromNumber(n uint16) (ErrorCode, uint16) {
	switch n {
	case 0:
		return NoError, n
	case 1:
		return FormatError, n
	case 2:
		return ServerFailure, n
	case 3:
		return NXDomain, n
	case 4:
		return NotImplemented, n
	case 5:
		return QueryRefused, n
	case 16:
		return BadVersion, n
	default:
		return ErrorCodeOtherOrPrivate, n
	}
}

// IsPrivate reports whether a numeric rcode falls in the private-use range.
func IsPrivate(n uint16) bool {
	return n >= 0x0F01 && n <= 0x0FFE
}
