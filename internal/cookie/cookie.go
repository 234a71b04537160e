// Package cookie implements the client side of RFC 7873 DNS Cookies: an
// EDNS(0) option that lets a resolver prove query continuity to a server
// without the overhead of a full TCP/TLS handshake.
package cookie

import (
	"crypto/rand"
	"encoding/binary"
	"errors"

	"github.com/dchest/siphash"
)

var (
	ErrInvalidClientCookie = errors.New("invalid client cookie")
	ErrInvalidServerCookie = errors.New("invalid server cookie")
)

const (
	clientCookieSize = 8 // 64 bits, RFC 7873 section 4
)

// GenerateClientCookie derives an 8-byte client cookie from a per-session
// secret and the nameserver's address, so repeated queries to the same
// nameserver present the same client cookie (as RFC 7873 requires) while
// queries to a different nameserver do not.
func GenerateClientCookie(secret [16]byte, serverIP []byte) [8]byte {
	var out [8]byte
	h := siphash.New(secret[:])
	h.Write(serverIP)
	binary.LittleEndian.PutUint64(out[:], h.Sum64())
	return out
}

// NewSecret generates a fresh per-session client cookie secret.
func NewSecret() ([16]byte, error) {
	var secret [16]byte
	_, err := rand.Read(secret[:])
	return secret, err
}

// ParseCookie splits raw EDNS0 COOKIE option data into the client cookie
// and, if present, the opaque server cookie echoed back by a nameserver.
func ParseCookie(data []byte) (clientCookie [8]byte, serverCookie []byte, err error) {
	if len(data) < clientCookieSize {
		return clientCookie, nil, ErrInvalidClientCookie
	}
	copy(clientCookie[:], data[:clientCookieSize])

	if len(data) > clientCookieSize {
		serverCookie = make([]byte, len(data)-clientCookieSize)
		copy(serverCookie, data[clientCookieSize:])
		if len(serverCookie) < 8 || len(serverCookie) > 32 {
			return clientCookie, nil, ErrInvalidServerCookie
		}
	}

	return clientCookie, serverCookie, nil
}

// FormatCookie builds the EDNS0 COOKIE option data to send with a query:
// the client cookie, plus any server cookie previously echoed by this
// nameserver.
func FormatCookie(clientCookie [8]byte, serverCookie []byte) []byte {
	data := make([]byte, clientCookieSize+len(serverCookie))
	copy(data[:clientCookieSize], clientCookie[:])
	if len(serverCookie) > 0 {
		copy(data[clientCookieSize:], serverCookie)
	}
	return data
}
