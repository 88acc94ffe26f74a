package crypto

import (
	"crypto/rand"

	"golang.org/x/crypto/chacha20poly1305"

	"passvault/internal/domain"
)

// KeyBytes is the length of keys produced by GenerateKey.
const KeyBytes = chacha20poly1305.KeySize

// GenerateKey returns a fresh random key.
//
// crypto/rand.Read does not return errors; it aborts the process if the
// system source fails.
func GenerateKey() domain.SymmetricKey {
	key := make(domain.SymmetricKey, KeyBytes)
	_, _ = rand.Read(key)
	return key
}
