// Package slug generates opaque tokens for guest page URLs.
package slug

import (
	"crypto/rand"
	"encoding/hex"
)

const tokenBytes = 8

// New returns a random 16-character hex token. The token is opaque: nothing
// about the booking can be recovered from it.
func New() string {
	b := make([]byte, tokenBytes)
	if _, err := rand.Read(b); err != nil {
		// crypto/rand never fails on supported platforms
		panic(err)
	}
	return hex.EncodeToString(b)
}
