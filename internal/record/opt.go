package record

import (
	"encoding/binary"

	"github.com/dnsscience/dnsclient/internal/cursor"
	"github.com/dnsscience/dnsclient/internal/wireerr"
)

// OPT is the EDNS(0) pseudo-record (RFC 6891). Unlike every other record
// type it does not go through the normal class/TTL/RDLENGTH dispatch: those
// six bytes are repurposed as OPT-specific fields, so the packet codec
// detects type 41 before reading class/TTL at all and calls ReadOPT instead
// of going through the Lookup dispatch table.
type OPT struct {
	UDPPayloadSize uint16
	HigherBits     byte
	EDNS0Version   byte
	Flags          uint16
	Data           []byte
}

// RRType is OPT's numeric record type, 41.
const RRType = 41

// ReadOPT parses an OPT record starting where class would normally be read.
func ReadOPT(c *cursor.Cursor) (OPT, error) {
	udpPayloadSize, err := c.ReadU16()
	if err != nil {
		return OPT{}, err
	}
	higherBits, err := c.ReadU8()
	if err != nil {
		return OPT{}, err
	}
	version, err := c.ReadU8()
	if err != nil {
		return OPT{}, err
	}
	flags, err := c.ReadU16()
	if err != nil {
		return OPT{}, err
	}
	dataLength, err := c.ReadU16()
	if err != nil {
		return OPT{}, err
	}
	data, err := c.ReadBytes(int(dataLength))
	if err != nil {
		return OPT{}, err
	}
	return OPT{
		UDPPayloadSize: udpPayloadSize,
		HigherBits:     higherBits,
		EDNS0Version:   version,
		Flags:          flags,
		Data:           data,
	}, nil
}

// Bytes serializes the OPT record for inclusion in a request's Additional
// section.
func (o OPT) Bytes() ([]byte, error) {
	if len(o.Data) > 0xFFFF {
		return nil, wireerr.ErrBadSVCB()
	}
	buf := make([]byte, 0, 11+len(o.Data))
	buf = binary.BigEndian.AppendUint16(buf, o.UDPPayloadSize)
	buf = append(buf, o.HigherBits, o.EDNS0Version)
	buf = binary.BigEndian.AppendUint16(buf, o.Flags)
	buf = binary.BigEndian.AppendUint16(buf, uint16(len(o.Data)))
	buf = append(buf, o.Data...)
	return buf, nil
}

// DefaultOPT is the OPT record this client attaches to every outgoing
// request: a 512-byte advertised UDP payload size, no flags, no options.
func DefaultOPT() OPT {
	return OPT{UDPPayloadSize: 512}
}
