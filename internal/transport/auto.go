package transport

import (
	"time"

	"github.com/dnsscience/dnsclient/internal/packet"
)

// Auto tries UDP first and retries over TCP exactly once, only when the
// UDP reply set its truncated flag. Any other UDP error is returned as-is.
// The udp/tcp fields default to the real transports; tests substitute
// fakes to exercise the fallback decision without touching a socket.
type Auto struct {
	Target string

	udp Sender
	tcp Sender
}

func (a Auto) Send(req packet.Request, timeout time.Duration) (*packet.Response, error) {
	udp := a.udp
	if udp == nil {
		udp = UDP{Target: a.Target}
	}
	tcp := a.tcp
	if tcp == nil {
		tcp = TCP{Target: a.Target}
	}

	resp, err := udp.Send(req, timeout)
	if err != nil {
		return nil, err
	}
	if !resp.Flags.Truncated {
		return resp, nil
	}
	return tcp.Send(req, timeout)
}
