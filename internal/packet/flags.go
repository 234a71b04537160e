// Package packet implements the DNS packet codec: request serialization and
// response parsing, built on top of the label and record codecs.
package packet

import "github.com/dnsscience/dnsclient/internal/rrtype"

// Flags is a bit-positional view of the header's second 16-bit field.
type Flags struct {
	Response           bool
	Opcode             byte // 4 bits
	Authoritative      bool
	Truncated          bool
	RecursionDesired   bool
	RecursionAvailable bool
	AuthenticData      bool
	CheckingDisabled   bool
	ErrorCode          rrtype.ErrorCode
	ErrorCodeNumber    uint16 // raw 4-bit header rcode; OPT's higher bits are not merged in
}

// Encode packs Flags into the 16-bit wire representation.
func (f Flags) Encode() uint16 {
	var v uint16
	if f.Response {
		v |= 1 << 15
	}
	v |= uint16(f.Opcode&0x0F) << 11
	if f.Authoritative {
		v |= 1 << 10
	}
	if f.Truncated {
		v |= 1 << 9
	}
	if f.RecursionDesired {
		v |= 1 << 8
	}
	if f.RecursionAvailable {
		v |= 1 << 7
	}
	if f.AuthenticData {
		v |= 1 << 5
	}
	if f.CheckingDisabled {
		v |= 1 << 4
	}
	v |= f.ErrorCodeNumber & 0x0F
	return v
}

// DecodeFlags unpacks the 16-bit wire representation into Flags.
func DecodeFlags(v uint16) Flags {
	rcode := v & 0x0F
	code, _ := rrtype.ErrorCodeFromNumber(rcode)
	return Flags{
		Response:           v&(1<<15) != 0,
		Opcode:             byte((v >> 11) & 0x0F),
		Authoritative:      v&(1<<10) != 0,
		Truncated:          v&(1<<9) != 0,
		RecursionDesired:   v&(1<<8) != 0,
		RecursionAvailable: v&(1<<7) != 0,
		AuthenticData:      v&(1<<5) != 0,
		CheckingDisabled:   v&(1<<4) != 0,
		ErrorCode:          code,
		ErrorCodeNumber:    rcode,
	}
}

// DefaultRequestFlags matches a typical recursive query: recursion desired,
// everything else zeroed.
func DefaultRequestFlags() Flags {
	return Flags{RecursionDesired: true}
}
