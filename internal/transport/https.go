package transport

import (
	"bufio"
	"crypto/tls"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/dnsscience/dnsclient/internal/packet"
	"github.com/dnsscience/dnsclient/internal/wireerr"
)

// productName/productVersion identify this client in the DoH User-Agent
// header.
const (
	productName    = "dnsclient"
	productVersion = "1.0"
)

// HTTPS is DNS-over-HTTPS: a plain HTTP/1.1 POST of the raw DNS message,
// written by hand rather than through net/http so the proxy-tunnel-then-TLS
// sequencing in 4.4.6 stays under our control.
type HTTPS struct {
	Target string // a full https://host[:port]/path URL
}

func (h HTTPS) Send(req packet.Request, timeout time.Duration) (*packet.Response, error) {
	host, path, err := splitDoHURL(h.Target)
	if err != nil {
		return nil, err
	}

	raw, err := dialMaybeProxied(host, DefaultHTTPSPort, timeout)
	if err != nil {
		return nil, err
	}
	defer raw.Close()

	if timeout > 0 {
		if err := raw.SetDeadline(time.Now().Add(timeout)); err != nil {
			return nil, wireerr.ErrNetworkError(err)
		}
	}

	sniHost := host
	if hostOnly, _, err := splitHostMaybePort(host); err == nil {
		sniHost = hostOnly
	}

	conn := tls.Client(raw, &tls.Config{ServerName: sniHost})
	defer conn.Close()
	if err := conn.Handshake(); err != nil {
		return nil, wireerr.ErrTlsHandshakeError(err)
	}

	body, err := req.Serialize()
	if err != nil {
		return nil, err
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "POST %s HTTP/1.1\r\n", path)
	fmt.Fprintf(&sb, "Host: %s\r\n", host)
	sb.WriteString("Content-Type: application/dns-message\r\n")
	sb.WriteString("Accept: application/dns-message\r\n")
	fmt.Fprintf(&sb, "User-Agent: %s/%s\r\n", productName, productVersion)
	fmt.Fprintf(&sb, "Content-Length: %d\r\n", len(body))
	sb.WriteString("\r\n")

	if _, err := conn.Write([]byte(sb.String())); err != nil {
		return nil, wireerr.ErrHttpError(err)
	}
	if _, err := conn.Write(body); err != nil {
		return nil, wireerr.ErrHttpError(err)
	}

	return readDoHResponse(conn)
}

// splitDoHURL splits a https:// target into its host[:port] and path.
func splitDoHURL(target string) (host, path string, err error) {
	const prefix = "https://"
	if !strings.HasPrefix(target, prefix) {
		return "", "", wireerr.ErrHttpError(errors.New("doh target must be an https:// URL"))
	}
	rest := target[len(prefix):]
	idx := strings.IndexByte(rest, '/')
	if idx < 0 {
		return rest, "/", nil
	}
	return rest[:idx], rest[idx:], nil
}

func splitHostMaybePort(hostport string) (host, port string, err error) {
	idx := strings.LastIndexByte(hostport, ':')
	if idx < 0 {
		return hostport, "", nil
	}
	return hostport[:idx], hostport[idx+1:], nil
}

// readDoHResponse parses the HTTP status line and headers, then loops
// reading chunks until the full advertised Content-Length has arrived —
// unlike a single fixed-size read, this does not silently truncate a
// response larger than one chunk.
func readDoHResponse(r io.Reader) (*packet.Response, error) {
	br := bufio.NewReader(r)

	statusLine, err := br.ReadString('\n')
	if err != nil {
		return nil, wireerr.ErrHttpError(err)
	}
	fields := strings.SplitN(strings.TrimSpace(statusLine), " ", 3)
	if len(fields) < 2 {
		return nil, wireerr.ErrHttpError(errors.New("malformed HTTP status line"))
	}
	code, err := strconv.Atoi(fields[1])
	if err != nil {
		return nil, wireerr.ErrHttpError(err)
	}

	contentLength := -1
	for {
		line, err := br.ReadString('\n')
		if err != nil {
			return nil, wireerr.ErrHttpError(err)
		}
		line = strings.TrimRight(line, "\r\n")
		if line == "" {
			break
		}
		if key, value, ok := strings.Cut(line, ":"); ok && strings.EqualFold(strings.TrimSpace(key), "Content-Length") {
			n, err := strconv.Atoi(strings.TrimSpace(value))
			if err != nil {
				return nil, wireerr.ErrHttpError(err)
			}
			contentLength = n
		}
	}

	if code != 200 {
		reason := ""
		if len(fields) == 3 {
			reason = fields[2]
		}
		return nil, wireerr.ErrWrongHttpStatus(code, reason)
	}
	if contentLength < 0 {
		return nil, wireerr.ErrHttpError(errors.New("response missing Content-Length"))
	}

	body := make([]byte, 0, contentLength)
	chunk := make([]byte, chunkSize)
	for len(body) < contentLength {
		n, err := br.Read(chunk)
		if n > 0 {
			body = append(body, chunk[:n]...)
		}
		if err != nil {
			if err == io.EOF {
				break
			}
			return nil, wireerr.ErrHttpError(err)
		}
	}
	if len(body) < contentLength {
		return nil, wireerr.ErrTruncatedResponse()
	}

	return packet.Parse(body[:contentLength])
}
