// Package apikey issues and verifies the opaque per-user API tokens.
package apikey

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/hex"

	"swimapi/internal/pkg/errs"
)

// Keys are 256-bit random values, hex encoded to 64 characters. A key is
// generated exactly once, at account creation, and never reissued.
const keyBytes = 32

func Generate() (string, error) {
	buf := make([]byte, keyBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", errs.Wrap(err, "failed to generate api key")
	}
	return hex.EncodeToString(buf), nil
}

// Equal compares a presented token against a stored key in constant time so
// the comparison leaks no timing information about the stored value.
func Equal(token, key string) bool {
	if key == "" {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(token), []byte(key)) == 1
}
