package transport

import (
	"time"

	"net"

	"github.com/dnsscience/dnsclient/internal/packet"
	"github.com/dnsscience/dnsclient/internal/pool"
	"github.com/dnsscience/dnsclient/internal/wireerr"
)

// UDP sends a single datagram and reads a single reply. No retries; a
// truncated answer is the caller's problem (see Auto for the fallback).
type UDP struct {
	Target string
}

func (u UDP) Send(req packet.Request, timeout time.Duration) (*packet.Response, error) {
	raddr, err := net.ResolveUDPAddr("udp", hostPort(u.Target, DefaultDNSPort))
	if err != nil {
		return nil, wireerr.ErrNetworkError(err)
	}

	conn, err := net.DialUDP("udp", nil, raddr)
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
	if _, err := conn.Write(raw); err != nil {
		return nil, wireerr.ErrNetworkError(err)
	}

	buf := pool.GetMediumBuffer()
	defer pool.PutMediumBuffer(buf)

	n, err := conn.Read(buf)
	if err != nil {
		return nil, wireerr.ErrNetworkError(err)
	}

	return packet.Parse(buf[:n])
}
