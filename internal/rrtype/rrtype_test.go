package rrtype

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFromNumberKnown(t *testing.T) {
	typ, ok := FromNumber(1)
	assert.True(t, ok)
	assert.Equal(t, TypeA, typ)
	assert.Equal(t, "A", typ.Name())
}

func TestFromNumberUnknown(t *testing.T) {
	_, ok := FromNumber(9999)
	assert.False(t, ok)
}

func TestUnknownFromNumberKnownName(t *testing.T) {
	u := UnknownFromNumber(48) // DNSKEY
	assert.Equal(t, "DNSKEY", u.String())
}

func TestUnknownFromNumberNoName(t *testing.T) {
	u := UnknownFromNumber(9999)
	assert.Equal(t, "9999", u.String())
}

func TestLookupCaseInsensitive(t *testing.T) {
	n, ok := Lookup("aaaa")
	assert.True(t, ok)
	assert.Equal(t, uint16(TypeAAAA), n)

	n, ok = Lookup("dnskey")
	assert.True(t, ok)
	assert.Equal(t, uint16(48), n)

	_, ok = Lookup("NOTAREALTYPE")
	assert.False(t, ok)
}

func TestQClassFromName(t *testing.T) {
	c, ok := QClassFromName("in")
	assert.True(t, ok)
	assert.Equal(t, ClassIN, c)
	assert.Equal(t, "IN", c.String())

	_, ok = QClassFromName("nope")
	assert.False(t, ok)
}

func TestErrorCodeFromNumber(t *testing.T) {
	code, n := ErrorCodeFromNumber(3)
	assert.Equal(t, NXDomain, code)
	assert.Equal(t, uint16(3), n)
	assert.Equal(t, "NXDOMAIN", code.String())
}

func TestIsPrivate(t *testing.T) {
	assert.True(t, IsPrivate(0x0F01))
	assert.True(t, IsPrivate(0x0FFE))
	assert.False(t, IsPrivate(0x0F00))
	assert.False(t, IsPrivate(0x0FFF))
}
