// Package record implements the per-type DNS record codec: given a bounded
// byte window (a record's RDLENGTH) and the packet's label codec, parse a
// typed payload out of it.
package record

import (
	"github.com/dnsscience/dnsclient/internal/cursor"
	"github.com/dnsscience/dnsclient/internal/rrtype"
)

// Record is implemented by every parsed record payload.
type Record interface {
	TypeName() string
}

// Other holds the raw bytes of a record type this codec does not parse.
type Other struct {
	TypeNumber rrtype.UnknownQtype
	Bytes      []byte
}

func (Other) TypeName() string { return "OTHER" }

// ReadFunc parses a record payload from statedLength bytes available at c.
type ReadFunc func(statedLength int, c *cursor.Cursor) (Record, error)

// dispatch is keyed by the numeric record type. Populated by each record
// file's init().
var dispatch = map[rrtype.Type]ReadFunc{}

func register(t rrtype.Type, fn ReadFunc) {
	dispatch[t] = fn
}

// Lookup returns the reader for a known record type, if one is registered.
func Lookup(t rrtype.Type) (ReadFunc, bool) {
	fn, ok := dispatch[t]
	return fn, ok
}
