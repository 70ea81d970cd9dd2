package challenge

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
)

// Size is the number of random bytes in a challenge: 32 bytes = 256 bits.
const Size = 32

// New returns a cryptographically secure random challenge encoded as a
// URL-safe base64 string without padding. An error is only possible if the
// system entropy source is unavailable, which callers should treat as fatal.
func New() (string, error) {
	b := make([]byte, Size)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("challenge: read random bytes: %w", err)
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}
