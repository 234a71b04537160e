package random

import "testing"

func TestTransactionIDUnique(t *testing.T) {
	seen := make(map[uint16]bool)
	const iterations = 10000

	for i := 0; i < iterations; i++ {
		seen[TransactionID()] = true
	}

	uniqueCount := len(seen)
	if uniqueCount < iterations*9/10 {
		t.Errorf("too many collisions: got %d unique IDs from %d iterations", uniqueCount, iterations)
	}
}

func TestMatchesResponse(t *testing.T) {
	if !MatchesResponse(0x1234, 0x1234, "example.com", "example.com", 1, 1, 1, 1) {
		t.Error("expected matching response to be accepted")
	}
	if MatchesResponse(0x1234, 0x5678, "example.com", "example.com", 1, 1, 1, 1) {
		t.Error("expected transaction ID mismatch to be rejected")
	}
	if MatchesResponse(0x1234, 0x1234, "example.com", "evil.com", 1, 1, 1, 1) {
		t.Error("expected qname mismatch to be rejected")
	}
	if MatchesResponse(0x1234, 0x1234, "example.com", "example.com", 1, 28, 1, 1) {
		t.Error("expected qtype mismatch to be rejected")
	}
}
