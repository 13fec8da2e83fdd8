// Package credential turns plaintext passwords into storable salted hashes
// and verifies candidates against them in constant time.
package credential

import (
	"crypto/subtle"
	"encoding/hex"
	"strings"

	"golang.org/x/crypto/argon2"

	"github.com/avinash6982/TripMakerWeb-BE/internal/common"
)

const (
	saltLength = 16
	keyLength  = 64
	separator  = ":"
)

func deriveKey(password, salt []byte) []byte {
	return argon2.IDKey(password, salt, 1, 64*1024, 4, keyLength)
}

// Hash derives a key from the plaintext with a fresh random salt and encodes
// both as hex joined by ":". Empty plaintext is hashed like any other string;
// rejecting weak passwords is a validation concern upstream.
func Hash(plaintext string) string {
	salt := common.GenerateRandByteArray(saltLength)
	key := deriveKey([]byte(plaintext), salt)
	return hex.EncodeToString(salt) + separator + hex.EncodeToString(key)
}

// Verify reports whether plaintext matches the stored salt+key encoding.
// Malformed input (missing separator, empty or non-hex parts) evaluates to
// false; verification fails closed and never panics or errors, so a stored
// length mismatch cannot open a distinguishable control path.
func Verify(plaintext, stored string) bool {
	saltHex, keyHex, ok := strings.Cut(stored, separator)
	if !ok || saltHex == "" || keyHex == "" {
		return false
	}

	salt, err := hex.DecodeString(saltHex)
	if err != nil {
		return false
	}
	key, err := hex.DecodeString(keyHex)
	if err != nil {
		return false
	}

	candidate := deriveKey([]byte(plaintext), salt)
	// ConstantTimeCompare reports 0 for differing lengths without comparing.
	return subtle.ConstantTimeCompare(candidate, key) == 1
}
