package identity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTokenForIPDeterministic(t *testing.T) {
	hasher := NewHasher("test-salt")

	first := hasher.TokenForIP("1.2.3.4")
	second := hasher.TokenForIP("1.2.3.4")

	assert.Equal(t, first, second)
	assert.Len(t, first, 64) // hex-encoded sha256
}

func TestTokenForIPDistinguishesAddresses(t *testing.T) {
	hasher := NewHasher("test-salt")

	assert.NotEqual(t, hasher.TokenForIP("1.2.3.4"), hasher.TokenForIP("5.6.7.8"))
}

func TestTokenForIPDependsOnSalt(t *testing.T) {
	a := NewHasher("salt-a").TokenForIP("1.2.3.4")
	b := NewHasher("salt-b").TokenForIP("1.2.3.4")

	assert.NotEqual(t, a, b)
}

func TestTokenNeverEchoesAddress(t *testing.T) {
	token := NewHasher("test-salt").TokenForIP("203.0.113.7")

	assert.NotContains(t, token, "203.0.113.7")
}

func TestFingerprint(t *testing.T) {
	a := Fingerprint("Mozilla/5.0", "en-NG")
	b := Fingerprint("Mozilla/5.0", "en-NG")
	c := Fingerprint("Mozilla/5.0", "fr")

	assert.Equal(t, a, b)
	assert.NotEqual(t, a, c)
	assert.Len(t, a, 64)
}
