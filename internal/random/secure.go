// Package random provides cryptographically secure randomization for the
// values an off-path attacker would otherwise try to guess.
package random

import (
	"crypto/rand"
	"encoding/binary"
	"fmt"
	"strings"
)

// TransactionID generates a cryptographically random 16-bit transaction ID.
// NEVER use math/rand here - it's predictable, and the transaction ID is
// the only thing standing between a query and a spoofed response.
func TransactionID() uint16 {
	var buf [2]byte
	if _, err := rand.Read(buf[:]); err != nil {
		panic(fmt.Sprintf("crypto/rand failed: %v", err))
	}
	return binary.BigEndian.Uint16(buf[:])
}

// MatchesResponse reports whether a response's transaction ID and question
// name/type/class echo the request that was sent. A mismatch on any of these
// means the response did not come from the query we made, whether because of
// a spoofing attempt or a stale/crossed-wire reply, and must be discarded.
// Names compare ASCII-case-insensitively and ignore a trailing dot.
func MatchesResponse(sentTxID, gotTxID uint16, sentQName, gotQName string, sentQType, gotQType uint16, sentQClass, gotQClass uint16) bool {
	if sentTxID != gotTxID {
		return false
	}
	if sentQType != gotQType || sentQClass != gotQClass {
		return false
	}
	return strings.EqualFold(strings.TrimSuffix(sentQName, "."), strings.TrimSuffix(gotQName, "."))
}
