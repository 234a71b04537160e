// Package label implements the DNS domain-name wire format: length-prefixed
// labels terminated by a zero byte, with pointer-based back-reference
// compression on read.
package label

import (
	"strings"

	"github.com/dnsscience/dnsclient/internal/wireerr"
)

const (
	maxLabelLength = 63
	maxNameLength  = 255

	// recursionLimit bounds the number of pointer hops a single name may
	// take. RFC 1035 puts no hard number on this; 8 matches the ceiling
	// this client has always shipped with.
	recursionLimit = 8

	pointerFlag = 0xC0
)

// Encode converts a dotted textual domain name into its wire representation.
// An empty name encodes as the single root byte 0x00.
func Encode(name string) ([]byte, error) {
	name = strings.TrimSuffix(name, ".")
	if name == "" {
		return []byte{0x00}, nil
	}

	labels := strings.Split(name, ".")
	var out []byte
	total := 0
	for _, l := range labels {
		if len(l) == 0 || len(l) > maxLabelLength {
			return nil, wireerr.ErrBadName()
		}
		out = append(out, byte(len(l)))
		out = append(out, l...)
		total += 1 + len(l)
		if total+1 > maxNameLength { // +1 for the terminating zero byte
			return nil, wireerr.ErrBadName()
		}
	}
	out = append(out, 0x00)
	return out, nil
}

// Decode reads a domain name from buf starting at offset, following
// compression pointers as needed. It returns the assembled textual name and
// the number of bytes consumed from the cursor's original position — i.e.
// bytes consumed before any pointer jump, which is what RDLENGTH-consistency
// checks compare against.
func Decode(buf []byte, offset int) (string, int, error) {
	if offset < 0 || offset >= len(buf) {
		return "", 0, wireerr.ErrOutOfBounds(offset)
	}

	var sb strings.Builder
	cur := offset
	consumed := -1 // bytes consumed at the original cursor position; set on first jump or at terminator
	hops := 0
	visited := make([]int, 0, 4)
	first := true

	for {
		if cur >= len(buf) {
			return "", 0, wireerr.ErrOutOfBounds(cur)
		}

		b := buf[cur]

		switch {
		case b == 0x00:
			if consumed == -1 {
				consumed = cur - offset + 1
			}
			return sb.String(), consumed, nil

		case b&pointerFlag == pointerFlag:
			if cur+1 >= len(buf) {
				return "", 0, wireerr.ErrOutOfBounds(cur + 1)
			}
			if consumed == -1 {
				consumed = cur - offset + 2
			}

			ptr := (int(b&^pointerFlag) << 8) | int(buf[cur+1])
			for _, v := range visited {
				if v == ptr {
					return "", 0, wireerr.ErrTooMuchRecursion(append(append([]int{}, visited...), ptr))
				}
			}
			visited = append(visited, ptr)
			hops++
			if hops > recursionLimit {
				return "", 0, wireerr.ErrTooMuchRecursion(visited)
			}
			if ptr < 0 || ptr >= len(buf) {
				return "", 0, wireerr.ErrOutOfBounds(ptr)
			}
			cur = ptr
			first = true
			continue

		case b&pointerFlag != 0:
			// Reserved top-bit combination (0x40 or 0x80).
			return "", 0, wireerr.ErrBadName()

		default:
			length := int(b)
			cur++
			if cur+length > len(buf) {
				return "", 0, wireerr.ErrOutOfBounds(cur + length)
			}
			if !first || sb.Len() > 0 {
				sb.WriteByte('.')
			}
			sb.WriteString(lossyUTF8(buf[cur : cur+length]))
			cur += length
			first = false
		}
	}
}

// lossyUTF8 decodes wire bytes as UTF-8, substituting the replacement
// character for invalid sequences, matching the label codec's stated policy
// of always producing a displayable, valid-UTF-8 textual name.
func lossyUTF8(b []byte) string {
	return strings.ToValidUTF8(string(b), "�")
}
