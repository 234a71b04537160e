package transport

import (
	"crypto/tls"
	"net"
	"time"

	"github.com/dnsscience/dnsclient/internal/packet"
	"github.com/dnsscience/dnsclient/internal/wireerr"
)

// TLS is DNS-over-TLS: the TCP length-prefixed framing of 4.4.2, carried
// over an encrypted stream whose SNI is the host portion of Target.
type TLS struct {
	Target string
	// Config, when non-nil, overrides the default TLS config. ServerName
	// is always set from Target regardless of what Config specifies.
	Config *tls.Config
}

func (t TLS) Send(req packet.Request, timeout time.Duration) (*packet.Response, error) {
	addr := hostPort(t.Target, DefaultTLSPort)
	host, _, err := net.SplitHostPort(addr)
	if err != nil {
		host = t.Target
	}

	dialer := net.Dialer{Timeout: timeout}
	raw, err := dialer.Dial("tcp", addr)
	if err != nil {
		return nil, wireerr.ErrNetworkError(err)
	}
	defer raw.Close()

	if timeout > 0 {
		if err := raw.SetDeadline(time.Now().Add(timeout)); err != nil {
			return nil, wireerr.ErrNetworkError(err)
		}
	}

	cfg := t.Config
	if cfg == nil {
		cfg = &tls.Config{}
	} else {
		cfg = cfg.Clone()
	}
	cfg.ServerName = host

	conn := tls.Client(raw, cfg)
	defer conn.Close()
	if err := conn.Handshake(); err != nil {
		return nil, wireerr.ErrTlsHandshakeError(err)
	}

	reqBytes, err := req.Serialize()
	if err != nil {
		return nil, err
	}
	if _, err := conn.Write(frame(reqBytes)); err != nil {
		return nil, wireerr.ErrTlsError(err)
	}

	payload, err := readFramed(conn)
	if err != nil {
		return nil, err
	}
	return packet.Parse(payload)
}
