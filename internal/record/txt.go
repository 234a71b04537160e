package record

import (
	"strings"

	"github.com/dnsscience/dnsclient/internal/cursor"
	"github.com/dnsscience/dnsclient/internal/rrtype"
	"github.com/dnsscience/dnsclient/internal/wireerr"
)

// TXT holds arbitrary descriptive text. The wire encoding is not specified
// beyond length-prefixed chunks; this codec treats the assembled bytes as
// UTF-8, substituting the replacement character for invalid sequences.
type TXT struct {
	Message string
}

func (TXT) TypeName() string { return "TXT" }

func readTXT(statedLength int, c *cursor.Cursor) (Record, error) {
	if c.Remaining() < statedLength {
		return nil, wireerr.ErrIO()
	}
	window := cursor.New(c.Buf[c.Pos:c.Pos+statedLength], 0)

	var buf []byte
	for {
		next, err := window.ReadU8()
		if err != nil {
			return nil, err
		}
		chunk, err := window.ReadBytes(int(next))
		if err != nil {
			return nil, err
		}
		buf = append(buf, chunk...)

		if next < 255 {
			break
		}
	}

	// The stated length is consumed in full even if the chunks ended early.
	c.Pos += statedLength
	return TXT{Message: strings.ToValidUTF8(string(buf), "�")}, nil
}

func init() { register(rrtype.TypeTXT, readTXT) }
