// Package transport dispatches a serialized request over one of the four
// wire transports a resolver can use: UDP, TCP, DNS-over-TLS, and
// DNS-over-HTTPS, plus an Automatic mode that falls back from UDP to TCP
// on truncation.
//
// Every transport is single-use: it owns its socket for the lifetime of
// one Send call and releases it on every exit path. There is no connection
// pooling and no retry beyond what each transport's own section describes.
package transport

import (
	"net"
	"time"

	"github.com/dnsscience/dnsclient/internal/packet"
)

// Sender is the common contract every transport implements: serialize,
// send, block for a reply, parse, return.
type Sender interface {
	Send(req packet.Request, timeout time.Duration) (*packet.Response, error)
}

const (
	DefaultDNSPort   = "53"
	DefaultTLSPort   = "853"
	DefaultHTTPSPort = "443"
)

// hostPort appends defaultPort to target when target has no port of its
// own, and returns target unchanged otherwise.
func hostPort(target, defaultPort string) string {
	if _, _, err := net.SplitHostPort(target); err == nil {
		return target
	}
	return net.JoinHostPort(target, defaultPort)
}

// New builds the Sender named by transport ("udp", "tcp", "tls", "https",
// or "auto") for the given target.
func New(transport, target string) (Sender, error) {
	switch transport {
	case "udp":
		return UDP{Target: target}, nil
	case "tcp":
		return TCP{Target: target}, nil
	case "tls":
		return TLS{Target: target}, nil
	case "https":
		return HTTPS{Target: target}, nil
	case "auto", "":
		return Auto{Target: target}, nil
	default:
		return nil, &UnknownTransportError{Name: transport}
	}
}

// UnknownTransportError is returned by New for an unrecognized transport name.
type UnknownTransportError struct{ Name string }

func (e *UnknownTransportError) Error() string {
	return "transport: unknown transport " + e.Name
}
