package crypto

import (
	"crypto/cipher"
	"crypto/rand"
	"fmt"

	"golang.org/x/crypto/chacha20poly1305"

	"passvault/internal/domain"
)

const (
	// tokenVersion is the current token layout.
	tokenVersion byte = 0x01

	NonceBytes = chacha20poly1305.NonceSizeX
	TagBytes   = chacha20poly1305.Overhead
)

// minTokenBytes is a token carrying an empty plaintext.
const minTokenBytes = 1 + NonceBytes + TagBytes

// Encrypt seals plaintext under key and returns a text token.
func Encrypt(key domain.SymmetricKey, plaintext []byte) (string, error) {
	if !key.IsSet() {
		return "", domain.ErrKeyNotSet
	}
	aead, err := newAEAD(key)
	if err != nil {
		return "", fmt.Errorf("%w: %w", domain.ErrInvalidKey, err)
	}

	out := make([]byte, 1+NonceBytes, minTokenBytes+len(plaintext))
	out[0] = tokenVersion
	nonce := out[1 : 1+NonceBytes]
	_, _ = rand.Read(nonce)

	out = aead.Seal(out, nonce, plaintext, []byte{tokenVersion})
	return B64(out), nil
}

// Decrypt verifies and opens a token produced by Encrypt.
//
// Every failure other than an unset key is reported as domain.ErrDecryption:
// the caller cannot tell a wrong key from a tampered or truncated token.
func Decrypt(key domain.SymmetricKey, token string) ([]byte, error) {
	if !key.IsSet() {
		return nil, domain.ErrKeyNotSet
	}
	raw, err := UnB64(token)
	if err != nil {
		return nil, fmt.Errorf("%w: bad token encoding", domain.ErrDecryption)
	}
	if len(raw) < minTokenBytes {
		return nil, fmt.Errorf("%w: token truncated", domain.ErrDecryption)
	}
	if raw[0] != tokenVersion {
		return nil, fmt.Errorf("%w: unsupported token version %d", domain.ErrDecryption, raw[0])
	}
	aead, err := newAEAD(key)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrDecryption, err)
	}

	nonce := raw[1 : 1+NonceBytes]
	pt, err := aead.Open(nil, nonce, raw[1+NonceBytes:], []byte{tokenVersion})
	if err != nil {
		return nil, fmt.Errorf("%w: authentication failed", domain.ErrDecryption)
	}
	return pt, nil
}

func newAEAD(key domain.SymmetricKey) (cipher.AEAD, error) {
	if len(key) != KeyBytes {
		return nil, fmt.Errorf("key must be %d bytes, got %d", KeyBytes, len(key))
	}
	return chacha20poly1305.NewX(key)
}
