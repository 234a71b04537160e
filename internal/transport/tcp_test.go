package transport

import (
	"net"
	"testing"
	"time"

	"github.com/dnsscience/dnsclient/internal/packet"
	"github.com/dnsscience/dnsclient/internal/rrtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestTCPSendReceive exercises only the framing and parse round trip;
// the reply's transaction ID deliberately differs from the request's
// because matching a response to its query is the driver's job
// (cmd/dnsclient's responseMatches), not this transport's.
func TestTCPSendReceive(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer ln.Close()

	go func() {
		conn, err := ln.Accept()
		if err != nil {
			return
		}
		defer conn.Close()

		payload, err := readFramed(conn)
		if err != nil {
			return
		}
		if _, err := packet.Parse(payload); err != nil {
			return
		}

		reply := packet.Request{
			TransactionID: 0xBEEF,
			Flags:         packet.Flags{Response: true},
			Query:         packet.Query{QName: "example.com", QClass: rrtype.ClassIN, QType: uint16(rrtype.TypeA)},
		}
		out, err := reply.Serialize()
		if err != nil {
			return
		}
		conn.Write(frame(out))
	}()

	tc := TCP{Target: ln.Addr().String()}
	req := packet.Request{
		TransactionID: 0x1234,
		Flags:         packet.DefaultRequestFlags(),
		Query:         packet.Query{QName: "example.com", QClass: rrtype.ClassIN, QType: uint16(rrtype.TypeA)},
	}

	resp, err := tc.Send(req, 2*time.Second)
	require.NoError(t, err)
	assert.Equal(t, uint16(0xBEEF), resp.TransactionID)
}
