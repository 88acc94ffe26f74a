package crypto

import (
	"crypto/sha256"
	"encoding/hex"

	"passvault/internal/domain"
)

// Fingerprint returns a short hex fingerprint of a key.
//
// It hashes with SHA-256 and truncates to 10 bytes (20 hex chars). An unset
// key has an empty fingerprint.
func Fingerprint(key domain.SymmetricKey) string {
	if !key.IsSet() {
		return ""
	}
	sum := sha256.Sum256(key)
	return hex.EncodeToString(sum[:10])
}
