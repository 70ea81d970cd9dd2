// Package challenge generates the single-use random values bound to
// identity-verification sessions. A challenge acts as a protocol nonce:
// the wallet echoes it back inside the signed presentation, which lets the
// relying party reject replayed responses.
//
// Challenges carry 256 bits of entropy from crypto/rand and are encoded
// with base64 URL-safe alphabet without padding, so they can be embedded
// in URLs and JSON fields without escaping.
//
// Usage:
//
//	nonce, err := challenge.New()
//	if err != nil {
//		// entropy source failure, treat as fatal
//	}
package challenge
