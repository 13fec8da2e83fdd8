package credential

import (
	"strings"
	"testing"
)

func TestHashVerify_RoundTrip(t *testing.T) {
	t.Parallel()

	h := Hash("secret1")

	if !Verify("secret1", h) {
		t.Fatalf("expected matching plaintext to verify")
	}
	if Verify("secret2", h) {
		t.Fatalf("expected different plaintext to fail verification")
	}
}

func TestHash_FreshSaltPerCall(t *testing.T) {
	t.Parallel()

	h1 := Hash("same-password")
	h2 := Hash("same-password")

	if h1 == h2 {
		t.Fatalf("expected distinct hashes for the same plaintext, salt is not random")
	}
	if !Verify("same-password", h1) || !Verify("same-password", h2) {
		t.Fatalf("both hashes must verify against the original plaintext")
	}
}

func TestHash_Shape(t *testing.T) {
	t.Parallel()

	h := Hash("secret")
	parts := strings.SplitN(h, ":", 2)
	if len(parts) != 2 {
		t.Fatalf("expected salt:key shape, got %q", h)
	}
	if len(parts[0]) != saltLength*2 {
		t.Fatalf("expected %d hex chars of salt, got %d", saltLength*2, len(parts[0]))
	}
	if len(parts[1]) != keyLength*2 {
		t.Fatalf("expected %d hex chars of key, got %d", keyLength*2, len(parts[1]))
	}
}

func TestVerify_EmptyPlaintext(t *testing.T) {
	t.Parallel()

	h := Hash("")
	if !Verify("", h) {
		t.Fatalf("empty plaintext must hash and verify like any other string")
	}
	if Verify("x", h) {
		t.Fatalf("non-empty candidate must not match empty-password hash")
	}
}

func TestVerify_MalformedStored(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		stored string
	}{
		{"empty", ""},
		{"no separator", "deadbeef"},
		{"empty salt", ":deadbeef"},
		{"empty key", "deadbeef:"},
		{"non-hex salt", "zzzz:deadbeef"},
		{"non-hex key", "deadbeef:zzzz"},
		{"truncated key", Hash("secret")[:40]},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			if Verify("secret", tc.stored) {
				t.Fatalf("malformed stored value %q must not verify", tc.stored)
			}
		})
	}
}

func TestVerify_LengthMismatchFailsClosed(t *testing.T) {
	t.Parallel()

	// A stored key shorter than the derived length must simply not match.
	h := Hash("secret")
	short := h[:len(h)-8]
	if Verify("secret", short) {
		t.Fatalf("length mismatch must evaluate to non-match")
	}
}
