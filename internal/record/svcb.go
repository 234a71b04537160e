package record

import (
	"net"

	"github.com/dnsscience/dnsclient/internal/cursor"
	"github.com/dnsscience/dnsclient/internal/label"
	"github.com/dnsscience/dnsclient/internal/rrtype"
	"github.com/dnsscience/dnsclient/internal/wireerr"
)

// Service parameter keys, draft-ietf-dnsop-svcb-https.
const (
	KeyMandatory     uint16 = 0
	KeyALPN          uint16 = 1
	KeyNoDefaultALPN uint16 = 2
	KeyPort          uint16 = 3
	KeyIPv4Hint      uint16 = 4
	KeyECH           uint16 = 5
	KeyIPv6Hint      uint16 = 6
)

// SvcParam is one keyed, ordered service-parameter block.
type SvcParam struct {
	Key   uint16
	Value []byte
}

// SVCBData is the shared body of SVCB and HTTPS records: a priority, a
// target name, and — only when priority is non-zero — an ordered,
// strictly-increasing-by-key list of service parameters.
type SVCBData struct {
	Priority uint16
	Target   string
	Params   []SvcParam
}

// SVCB is a generic service-binding record.
type SVCB struct{ SVCBData }

func (SVCB) TypeName() string { return "SVCB" }

// HTTPS is the HTTP-specific service-binding record; same wire shape as SVCB.
type HTTPS struct{ SVCBData }

func (HTTPS) TypeName() string { return "HTTPS" }

func readSVCBData(statedLength int, c *cursor.Cursor) (SVCBData, error) {
	start := c.Pos
	priority, err := c.ReadU16()
	if err != nil {
		return SVCBData{}, err
	}
	target, consumed, err := label.Decode(c.Buf, c.Pos)
	if err != nil {
		return SVCBData{}, err
	}
	c.Pos += consumed

	var params []SvcParam
	if priority != 0 {
		var lastKey uint16
		first := true
		for c.Pos-start < statedLength {
			key, err := c.ReadU16()
			if err != nil {
				return SVCBData{}, err
			}
			length, err := c.ReadU16()
			if err != nil {
				return SVCBData{}, err
			}
			value, err := c.ReadBytes(int(length))
			if err != nil {
				return SVCBData{}, err
			}

			if !first && key <= lastKey {
				return SVCBData{}, wireerr.ErrBadSVCB()
			}
			lastKey = key
			first = false

			if key == KeyMandatory {
				if err := validateMandatory(value); err != nil {
					return SVCBData{}, err
				}
			}

			params = append(params, SvcParam{Key: key, Value: value})
		}

		if err := validateALPNRules(params); err != nil {
			return SVCBData{}, err
		}
	}

	if c.Pos-start != statedLength {
		return SVCBData{}, wireerr.ErrWrongLabelLength(statedLength, c.Pos-start)
	}

	return SVCBData{Priority: priority, Target: target, Params: params}, nil
}

// validateMandatory ensures the mandatory parameter's own value list never
// lists key 0 (itself) among the keys it claims are mandatory.
func validateMandatory(value []byte) error {
	for i := 0; i+1 < len(value); i += 2 {
		key := uint16(value[i])<<8 | uint16(value[i+1])
		if key == KeyMandatory {
			return wireerr.ErrBadSVCB()
		}
	}
	return nil
}

// validateALPNRules enforces that no-default-alpn only appears alongside a
// non-empty alpn list.
func validateALPNRules(params []SvcParam) error {
	var hasALPN, hasNoDefault bool
	for _, p := range params {
		switch p.Key {
		case KeyALPN:
			if len(p.Value) > 0 {
				hasALPN = true
			}
		case KeyNoDefaultALPN:
			hasNoDefault = true
		}
	}
	if hasNoDefault && !hasALPN {
		return wireerr.ErrBadSVCB()
	}
	return nil
}

// ALPNProtocols decodes the length-prefixed ALPN protocol-ID list out of a
// raw alpn parameter value.
func ALPNProtocols(value []byte) []string {
	var out []string
	i := 0
	for i < len(value) {
		n := int(value[i])
		i++
		if i+n > len(value) {
			break
		}
		out = append(out, string(value[i:i+n]))
		i += n
	}
	return out
}

// IPv4Hints decodes the ipv4hint parameter value into addresses.
func IPv4Hints(value []byte) []net.IP {
	var out []net.IP
	for i := 0; i+4 <= len(value); i += 4 {
		out = append(out, net.IPv4(value[i], value[i+1], value[i+2], value[i+3]))
	}
	return out
}

// IPv6Hints decodes the ipv6hint parameter value into addresses.
func IPv6Hints(value []byte) []net.IP {
	var out []net.IP
	for i := 0; i+16 <= len(value); i += 16 {
		ip := make(net.IP, 16)
		copy(ip, value[i:i+16])
		out = append(out, ip)
	}
	return out
}

func readSVCB(statedLength int, c *cursor.Cursor) (Record, error) {
	d, err := readSVCBData(statedLength, c)
	if err != nil {
		return nil, err
	}
	return SVCB{d}, nil
}

func readHTTPS(statedLength int, c *cursor.Cursor) (Record, error) {
	d, err := readSVCBData(statedLength, c)
	if err != nil {
		return nil, err
	}
	return HTTPS{d}, nil
}

func init() {
	register(rrtype.TypeSVCB, readSVCB)
	register(rrtype.TypeHTTPS, readHTTPS)
}
