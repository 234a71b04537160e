package record

import (
	"github.com/dnsscience/dnsclient/internal/cursor"
	"github.com/dnsscience/dnsclient/internal/rrtype"
	"github.com/dnsscience/dnsclient/internal/wireerr"
)

// LOC encodes geographic location (RFC 1876).
type LOC struct {
	Version   byte
	SizeBase  byte
	SizePower byte
	Latitude  uint32
	Longitude uint32
	Altitude  uint32
}

func (LOC) TypeName() string { return "LOC" }

func readLOC(statedLength int, c *cursor.Cursor) (Record, error) {
	if statedLength != 16 {
		return nil, wireerr.ErrWrongRecordLength(statedLength, wireerr.ExactlyN(16))
	}
	version, err := c.ReadU8()
	if err != nil {
		return nil, err
	}
	// A non-zero version is accepted, not rejected: the record is still
	// 16 bytes of the same shape, just from a revision this codec hasn't
	// been specifically taught about.
	size, err := c.ReadU8()
	if err != nil {
		return nil, err
	}
	_, err = c.ReadU8() // horizontal precision, unused
	if err != nil {
		return nil, err
	}
	_, err = c.ReadU8() // vertical precision, unused
	if err != nil {
		return nil, err
	}
	lat, err := c.ReadU32()
	if err != nil {
		return nil, err
	}
	lon, err := c.ReadU32()
	if err != nil {
		return nil, err
	}
	alt, err := c.ReadU32()
	if err != nil {
		return nil, err
	}

	return LOC{
		Version:   version,
		SizeBase:  size >> 4,
		SizePower: size & 0x0F,
		Latitude:  lat,
		Longitude: lon,
		Altitude:  alt,
	}, nil
}

func init() { register(rrtype.TypeLOC, readLOC) }
