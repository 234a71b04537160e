package transport

import (
	"net"
	"time"

	"github.com/dnsscience/dnsclient/internal/packet"
	"github.com/dnsscience/dnsclient/internal/wireerr"
)

// TCP sends a length-prefixed request and reads a length-prefixed reply.
type TCP struct {
	Target string
}

func (t TCP) Send(req packet.Request, timeout time.Duration) (*packet.Response, error) {
	dialer := net.Dialer{Timeout: timeout}
	conn, err := dialer.Dial("tcp", hostPort(t.Target, DefaultDNSPort))
	if err != nil {
		return nil, wireerr.ErrNetworkError(err)
	}
	defer conn.Close()

	if timeout > 0 {
		if err := conn.SetDeadline(time.Now().Add(timeout)); err != nil {
			return nil, wireerr.ErrNetworkError(err)
		}
	}

	raw, err := req.Serialize()
	if err != nil {
		return nil, err
	}
	if _, err := conn.Write(frame(raw)); err != nil {
		return nil, wireerr.ErrNetworkError(err)
	}

	payload, err := readFramed(conn)
	if err != nil {
		return nil, err
	}
	return packet.Parse(payload)
}
