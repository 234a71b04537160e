// Command dnsclient sends DNS queries over UDP, TCP, DNS-over-TLS, or
// DNS-over-HTTPS and prints the parsed responses.
package main

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/dnsscience/dnsclient/internal/config"
	"github.com/dnsscience/dnsclient/internal/cookie"
	"github.com/dnsscience/dnsclient/internal/eventbus"
	"github.com/dnsscience/dnsclient/internal/metrics"
	"github.com/dnsscience/dnsclient/internal/packet"
	"github.com/dnsscience/dnsclient/internal/random"
	"github.com/dnsscience/dnsclient/internal/record"
	"github.com/dnsscience/dnsclient/internal/rrtype"
	"github.com/dnsscience/dnsclient/internal/transport"
	"github.com/dnsscience/dnsclient/internal/wireerr"

	flag "flag"
)

// repeatedFlag accumulates every occurrence of a flag that may be passed
// more than once, e.g. -ns 1.1.1.1 -ns 8.8.8.8.
type repeatedFlag []string

func (r *repeatedFlag) String() string { return strings.Join(*r, ",") }
func (r *repeatedFlag) Set(v string) error {
	*r = append(*r, v)
	return nil
}

var (
	nameservers repeatedFlag
	types       repeatedFlag
	class       = flag.String("class", "IN", "query class")
	transportFl = flag.String("transport", "auto", "transport: udp, tcp, tls, https, auto")
	timeoutFl   = flag.Duration("timeout", 5*time.Second, "per-query timeout (0 disables it)")
	configPath  = flag.String("config", "", "path to a YAML resolver configuration file")
	useCookie   = flag.Bool("cookie", false, "attach an RFC 7873 EDNS client cookie")
	verbose     = flag.Bool("verbose", false, "print one line per matrix cell as it runs")
)

func init() {
	flag.Var(&nameservers, "ns", "nameserver target (repeatable); falls back to config file nameservers")
	flag.Var(&types, "type", "record type name (repeatable, default A)")
}

func main() {
	flag.Parse()
	domains := flag.Args()

	fmt.Println("╔══════════════════════════════════════════════════════════════╗")
	fmt.Println("║                       dnsclient                               ║")
	fmt.Println("╚══════════════════════════════════════════════════════════════╝")
	fmt.Println()

	if len(domains) == 0 {
		fmt.Fprintln(os.Stderr, "usage: dnsclient [flags] domain [domain ...]")
		os.Exit(1)
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error loading config %q: %v\n", *configPath, err)
		os.Exit(1)
	}

	servers := []string(nameservers)
	if len(servers) == 0 {
		servers = cfg.Nameservers
	}
	if len(servers) == 0 {
		fmt.Fprintln(os.Stderr, "no nameservers: pass -ns or set nameservers in -config")
		os.Exit(1)
	}

	typeNames := []string(types)
	if len(typeNames) == 0 {
		typeNames = []string{"A"}
	}

	transportName := *transportFl
	if transportName == "auto" && cfg.Transport != "" {
		transportName = cfg.Transport
	}

	timeout := *timeoutFl
	if timeout == 5*time.Second && cfg.Timeout() != 0 {
		timeout = cfg.Timeout()
	}

	cookiesEnabled := *useCookie || cfg.Cookies

	qclass, ok := rrtype.QClassFromName(*class)
	if !ok {
		fmt.Fprintf(os.Stderr, "unknown class %q\n", *class)
		os.Exit(1)
	}

	fmt.Printf("Configuration:\n")
	fmt.Printf("  Nameservers: %s\n", strings.Join(servers, ", "))
	fmt.Printf("  Types:       %s\n", strings.Join(typeNames, ", "))
	fmt.Printf("  Class:       %s\n", qclass)
	fmt.Printf("  Transport:   %s\n", transportName)
	fmt.Printf("  Timeout:     %s\n", timeout)
	fmt.Printf("  Cookies:     %v\n", cookiesEnabled)
	fmt.Println()

	bus := eventbus.New(8)
	var cookieSecret [16]byte
	if cookiesEnabled {
		cookieSecret, err = cookie.NewSecret()
		if err != nil {
			fmt.Fprintf(os.Stderr, "error generating cookie secret: %v\n", err)
			os.Exit(1)
		}
	}

	run := &driver{
		bus:            bus,
		cookiesEnabled: cookiesEnabled,
		cookieSecret:   cookieSecret,
		timeout:        timeout,
	}

	total, failures := run.execute(domains, typeNames, qclass, servers, transportName)

	fmt.Println()
	fmt.Printf("Summary: %d cells, %d succeeded, %d failed\n", total, total-len(failures), len(failures))
	for phase, count := range failures {
		fmt.Printf("  %-10s %d\n", phase, count)
	}
}

type driver struct {
	bus            *eventbus.Bus
	cookiesEnabled bool
	cookieSecret   [16]byte
	timeout        time.Duration
}

func (d *driver) execute(domains, typeNames []string, qclass rrtype.QClass, servers []string, transportName string) (total int, failuresByPhase map[string]int) {
	failuresByPhase = make(map[string]int)

	for _, domain := range domains {
		for _, typeName := range typeNames {
			qtype, ok := rrtype.Lookup(typeName)
			if !ok {
				fmt.Fprintf(os.Stderr, "unknown record type %q, skipping\n", typeName)
				continue
			}
			for _, ns := range servers {
				total++
				d.runCell(domain, typeName, qtype, qclass, ns, transportName, failuresByPhase)
			}
		}
	}

	return total, failuresByPhase
}

func (d *driver) runCell(domain, typeName string, qtype uint16, qclass rrtype.QClass, ns, transportName string, failuresByPhase map[string]int) {
	sender, err := transport.New(transportName, ns)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%-10s %-6s %-15s %s: %v\n", domain, typeName, ns, transportName, err)
		failuresByPhase["system"]++
		return
	}

	req := packet.Request{
		TransactionID: random.TransactionID(),
		Flags:         packet.DefaultRequestFlags(),
		Query:         packet.Query{QName: domain, QClass: qclass, QType: qtype},
	}

	opt := record.DefaultOPT()
	if d.cookiesEnabled {
		cc := cookie.GenerateClientCookie(d.cookieSecret, []byte(ns))
		cd := cookie.FormatCookie(cc, nil)
		// EDNS option TLV: option code 10 (COOKIE), option length, value.
		opt.Data = append([]byte{0x00, 0x0A, 0x00, byte(len(cd))}, cd...)
	}
	req.Additional = &opt

	start := time.Now()
	resp, err := sender.Send(req, d.timeout)
	duration := time.Since(start)

	if err == nil && !responseMatches(req, resp) {
		resp, err = nil, wireerr.ErrMismatchedResponse()
	}

	rcode := "error"
	if resp != nil {
		rcode = resp.Flags.ErrorCode.String()
	}
	metrics.Observe(transportName, rcode, duration)
	d.bus.Publish(nil, eventbus.TopicQuery, eventbus.QueryEvent{
		Nameserver: ns,
		Transport:  transportName,
		QName:      domain,
		QType:      qtype,
		Duration:   duration,
		Err:        err,
	})

	if err != nil {
		phase := "network"
		var te *wireerr.TransportError
		if ok := asTransportError(err, &te); ok {
			phase = string(te.Phase)
		}
		failuresByPhase[phase]++
		fmt.Printf("%-10s %-6s %-15s %-6s FAIL (%s): %v\n", domain, typeName, ns, transportName, phase, err)
		return
	}

	if *verbose {
		printResponse(domain, typeName, ns, transportName, resp)
	}
}

// responseMatches reports whether resp actually answers req: a wrong
// transaction ID or echoed question is what a spoofed or crossed-wire
// reply looks like and must be discarded rather than printed as success.
func responseMatches(req packet.Request, resp *packet.Response) bool {
	if len(resp.Queries) == 0 {
		return false
	}
	got := resp.Queries[0]
	return random.MatchesResponse(
		req.TransactionID, resp.TransactionID,
		req.Query.QName, got.QName,
		req.Query.QType, got.QType,
		uint16(req.Query.QClass), uint16(got.QClass),
	)
}

func asTransportError(err error, target **wireerr.TransportError) bool {
	for err != nil {
		if te, ok := err.(*wireerr.TransportError); ok {
			*target = te
			return true
		}
		unwrapper, ok := err.(interface{ Unwrap() error })
		if !ok {
			return false
		}
		err = unwrapper.Unwrap()
	}
	return false
}

func printResponse(domain, typeName, ns, transportName string, resp *packet.Response) {
	fmt.Printf("%-10s %-6s %-15s %-6s %s (%d answer(s))\n",
		domain, typeName, ns, transportName, resp.Flags.ErrorCode, len(resp.Answers))
	for _, a := range resp.Answers {
		if a.IsPseudo {
			fmt.Printf("  OPT udp_payload_size=%d\n", a.Opt.UDPPayloadSize)
			continue
		}
		fmt.Printf("  %-30s %-6d %v\n", a.QName, a.TTL, a.Record)
	}
}
