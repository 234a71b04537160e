package cookie

import (
	"bytes"
	"net"
	"testing"
)

func TestGenerateClientCookieDeterministicPerServer(t *testing.T) {
	secret, err := NewSecret()
	if err != nil {
		t.Fatalf("NewSecret() error: %v", err)
	}
	serverIP := net.ParseIP("192.0.2.53").To4()

	c1 := GenerateClientCookie(secret, serverIP)
	c2 := GenerateClientCookie(secret, serverIP)

	if c1 != c2 {
		t.Error("same secret and nameserver should produce the same client cookie")
	}
	if len(c1) != clientCookieSize {
		t.Errorf("client cookie size = %d, want %d", len(c1), clientCookieSize)
	}
}

func TestGenerateClientCookieDiffersPerServer(t *testing.T) {
	secret, err := NewSecret()
	if err != nil {
		t.Fatalf("NewSecret() error: %v", err)
	}

	a := GenerateClientCookie(secret, net.ParseIP("192.0.2.53").To4())
	b := GenerateClientCookie(secret, net.ParseIP("198.51.100.1").To4())

	if a == b {
		t.Error("client cookies for different nameservers should differ")
	}
}

func TestParseCookieClientOnly(t *testing.T) {
	var cc [8]byte
	copy(cc[:], []byte("abcdefgh"))

	clientCookie, serverCookie, err := ParseCookie(cc[:])
	if err != nil {
		t.Fatalf("ParseCookie() error: %v", err)
	}
	if clientCookie != cc {
		t.Error("client cookie round-trip mismatch")
	}
	if serverCookie != nil {
		t.Errorf("expected no server cookie, got %d bytes", len(serverCookie))
	}
}

func TestParseCookieWithServerCookie(t *testing.T) {
	var cc [8]byte
	copy(cc[:], []byte("abcdefgh"))
	sc := bytes.Repeat([]byte{0xAA}, 16)

	data := FormatCookie(cc, sc)
	gotCC, gotSC, err := ParseCookie(data)
	if err != nil {
		t.Fatalf("ParseCookie() error: %v", err)
	}
	if gotCC != cc {
		t.Error("client cookie round-trip mismatch")
	}
	if !bytes.Equal(gotSC, sc) {
		t.Error("server cookie round-trip mismatch")
	}
}

func TestParseCookieTooShort(t *testing.T) {
	_, _, err := ParseCookie([]byte{0x01, 0x02, 0x03})
	if err == nil {
		t.Error("expected error for cookie shorter than 8 bytes")
	}
}

func TestParseCookieServerCookieBadSize(t *testing.T) {
	var cc [8]byte
	data := append(cc[:], make([]byte, 3)...) // 3-byte server cookie, below the 8-byte minimum
	_, _, err := ParseCookie(data)
	if err == nil {
		t.Error("expected error for undersized server cookie")
	}
}

func TestFormatCookieNoServerCookie(t *testing.T) {
	var cc [8]byte
	copy(cc[:], []byte("abcdefgh"))

	data := FormatCookie(cc, nil)
	if len(data) != clientCookieSize {
		t.Errorf("formatted cookie length = %d, want %d", len(data), clientCookieSize)
	}
}
