package transport

import (
	"bufio"
	"net"
	"os"
	"strings"
	"time"

	"github.com/dnsscience/dnsclient/internal/wireerr"
)

// proxyEnvVars lists the variables consulted, in priority order, for an
// HTTPS proxy. An empty or whitespace-only value is treated as unset.
var proxyEnvVars = []string{"HTTPS_PROXY", "https_proxy", "ALL_PROXY", "all_proxy"}

func proxyFromEnv() string {
	for _, key := range proxyEnvVars {
		if v := strings.TrimSpace(os.Getenv(key)); v != "" {
			return v
		}
	}
	return ""
}

// dialMaybeProxied opens a TCP connection to host:defaultPort, tunneling
// through an HTTPS proxy named by the environment when one is configured.
func dialMaybeProxied(host, defaultPort string, timeout time.Duration) (net.Conn, error) {
	target := hostPort(host, defaultPort)

	proxy := proxyFromEnv()
	if proxy == "" {
		dialer := net.Dialer{Timeout: timeout}
		conn, err := dialer.Dial("tcp", target)
		if err != nil {
			return nil, wireerr.ErrNetworkError(err)
		}
		return conn, nil
	}

	return dialViaProxy(proxy, target, timeout)
}

func dialViaProxy(proxy, target string, timeout time.Duration) (net.Conn, error) {
	proxyAddr := strings.TrimPrefix(strings.TrimPrefix(proxy, "https://"), "http://")
	proxyAddr = hostPort(proxyAddr, "80")

	dialer := net.Dialer{Timeout: timeout}
	conn, err := dialer.Dial("tcp", proxyAddr)
	if err != nil {
		return nil, wireerr.ErrProxyError("dial proxy: " + err.Error())
	}

	req := "CONNECT " + target + " HTTP/1.1\r\nHost: " + target + "\r\n\r\n"
	if _, err := conn.Write([]byte(req)); err != nil {
		conn.Close()
		return nil, wireerr.ErrProxyError("write CONNECT: " + err.Error())
	}

	br := bufio.NewReader(conn)
	statusLine, err := br.ReadString('\n')
	if err != nil {
		conn.Close()
		return nil, wireerr.ErrProxyError("read CONNECT response: " + err.Error())
	}

	fields := strings.SplitN(strings.TrimSpace(statusLine), " ", 3)
	if len(fields) < 2 {
		conn.Close()
		return nil, wireerr.ErrProxyError("malformed CONNECT response")
	}

	switch fields[1] {
	case "200":
		for {
			line, err := br.ReadString('\n')
			if err != nil {
				conn.Close()
				return nil, wireerr.ErrProxyError("read CONNECT headers: " + err.Error())
			}
			if strings.TrimRight(line, "\r\n") == "" {
				break
			}
		}
		return conn, nil
	case "407":
		conn.Close()
		return nil, wireerr.ErrProxyError("proxy authentication required")
	default:
		conn.Close()
		return nil, wireerr.ErrProxyError("unexpected proxy response: " + strings.TrimSpace(statusLine))
	}
}
