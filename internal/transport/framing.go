package transport

import (
	"encoding/binary"
	"io"

	"github.com/dnsscience/dnsclient/internal/wireerr"
)

const chunkSize = 4096

// readFramed implements the length-prefixed read protocol shared by TCP and
// TLS: read a 4 KiB chunk, recover the big-endian u16 length prefix (reading
// one extra byte if the first read landed on an odd boundary), then keep
// reading 4 KiB chunks until at least that many payload bytes have arrived.
// The excess past the advertised length in the final chunk, if any, is
// simply dropped — this is a deliberately preserved quirk, not a bug.
func readFramed(r io.Reader) ([]byte, error) {
	buf := make([]byte, chunkSize)
	n, err := r.Read(buf)
	if err == io.EOF {
		return nil, wireerr.ErrTruncatedResponse()
	}
	if err != nil {
		return nil, wireerr.ErrNetworkError(err)
	}
	if n == 0 {
		return nil, wireerr.ErrTruncatedResponse()
	}
	if n == 1 {
		m, err := r.Read(buf[1:2])
		if err == io.EOF {
			return nil, wireerr.ErrTruncatedResponse()
		}
		if err != nil {
			return nil, wireerr.ErrNetworkError(err)
		}
		if m == 0 {
			return nil, wireerr.ErrTruncatedResponse()
		}
		n = 2
	}

	total := int(binary.BigEndian.Uint16(buf[:2]))
	payload := append([]byte(nil), buf[2:n]...)

	for len(payload) < total {
		chunk := make([]byte, chunkSize)
		m, err := r.Read(chunk)
		if err == io.EOF {
			return nil, wireerr.ErrTruncatedResponse()
		}
		if err != nil {
			return nil, wireerr.ErrNetworkError(err)
		}
		if m == 0 {
			return nil, wireerr.ErrTruncatedResponse()
		}
		payload = append(payload, chunk[:m]...)
	}

	return payload[:total], nil
}

func frame(raw []byte) []byte {
	out := make([]byte, 2+len(raw))
	binary.BigEndian.PutUint16(out, uint16(len(raw)))
	copy(out[2:], raw)
	return out
}
