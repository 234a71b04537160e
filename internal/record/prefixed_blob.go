package record

import (
	"github.com/dnsscience/dnsclient/internal/cursor"
	"github.com/dnsscience/dnsclient/internal/rrtype"
	"github.com/dnsscience/dnsclient/internal/wireerr"
)

// OPENPGPKEY, SSHFP, and TLSA are raw byte blobs with a small fixed-size
// typed prefix, requiring at least one byte of payload beyond it.

// OPENPGPKEY carries an OpenPGP public key (RFC 7929). It has no typed
// prefix of its own: the whole RDATA is the key.
type OPENPGPKEY struct {
	Key []byte
}

func (OPENPGPKEY) TypeName() string { return "OPENPGPKEY" }

func readOPENPGPKEY(statedLength int, c *cursor.Cursor) (Record, error) {
	if statedLength < 1 {
		return nil, wireerr.ErrWrongRecordLength(statedLength, wireerr.AtLeastN(1))
	}
	b, err := c.ReadBytes(statedLength)
	if err != nil {
		return nil, err
	}
	return OPENPGPKEY{Key: b}, nil
}

// SSHFP carries a fingerprint of an SSH public key (RFC 4255).
type SSHFP struct {
	Algorithm   byte
	FPType      byte
	Fingerprint []byte
}

func (SSHFP) TypeName() string { return "SSHFP" }

func readSSHFP(statedLength int, c *cursor.Cursor) (Record, error) {
	const prefix = 2
	if statedLength < prefix+1 {
		return nil, wireerr.ErrWrongRecordLength(statedLength, wireerr.AtLeastN(prefix+1))
	}
	algo, err := c.ReadU8()
	if err != nil {
		return nil, err
	}
	fpType, err := c.ReadU8()
	if err != nil {
		return nil, err
	}
	fp, err := c.ReadBytes(statedLength - prefix)
	if err != nil {
		return nil, err
	}
	return SSHFP{Algorithm: algo, FPType: fpType, Fingerprint: fp}, nil
}

// TLSA associates a TLS certificate with the domain (RFC 6698).
type TLSA struct {
	CertUsage    byte
	Selector     byte
	MatchingType byte
	Data         []byte
}

func (TLSA) TypeName() string { return "TLSA" }

func readTLSA(statedLength int, c *cursor.Cursor) (Record, error) {
	const prefix = 3
	if statedLength < prefix+1 {
		return nil, wireerr.ErrWrongRecordLength(statedLength, wireerr.AtLeastN(prefix+1))
	}
	usage, err := c.ReadU8()
	if err != nil {
		return nil, err
	}
	selector, err := c.ReadU8()
	if err != nil {
		return nil, err
	}
	matching, err := c.ReadU8()
	if err != nil {
		return nil, err
	}
	data, err := c.ReadBytes(statedLength - prefix)
	if err != nil {
		return nil, err
	}
	return TLSA{CertUsage: usage, Selector: selector, MatchingType: matching, Data: data}, nil
}

func init() {
	register(rrtype.TypeOPENPGPKEY, readOPENPGPKEY)
	register(rrtype.TypeSSHFP, readSSHFP)
	register(rrtype.TypeTLSA, readTLSA)
}
