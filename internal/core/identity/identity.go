// Package identity derives anonymous participation tokens. Raw addresses are
// never stored: the hashed token is the only value that reaches the database,
// and it cannot be reversed to the original address.
package identity

import (
	"crypto/sha256"
	"encoding/hex"
)

type Hasher struct {
	salt string
}

func NewHasher(salt string) *Hasher {
	return &Hasher{salt: salt}
}

// TokenForIP returns the deduplication key for a network address: the hex
// SHA-256 digest of the address concatenated with the secret salt.
func (h *Hasher) TokenForIP(ip string) string {
	sum := sha256.Sum256([]byte(ip + h.salt))
	return hex.EncodeToString(sum[:])
}

// Fingerprint digests browser signature material (user agent and accept
// language). It is persisted alongside the response but never consulted for
// duplicate detection; the address token is the sole authoritative key.
func Fingerprint(userAgent, acceptLanguage string) string {
	sum := sha256.Sum256([]byte(userAgent + "|" + acceptLanguage))
	return hex.EncodeToString(sum[:])
}
