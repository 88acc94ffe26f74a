package store

import (
	"os"

	"passvault/internal/domain"
)

// KeyFileStore reads and writes raw key files: the key bytes, no header and
// no length prefix.
type KeyFileStore struct{}

// NewKeyFileStore returns a KeyFileStore.
func NewKeyFileStore() *KeyFileStore { return &KeyFileStore{} }

// SaveKey writes key to path, creating parent directories as needed.
func (s *KeyFileStore) SaveKey(path string, key domain.SymmetricKey) error {
	if err := checkPath("save key", path); err != nil {
		return err
	}
	if err := ensureDir(path); err != nil {
		return fsError("save key", path, err)
	}
	if err := writeFile(path, key, 0o600); err != nil {
		return fsError("save key", path, err)
	}
	return nil
}

// LoadKey reads the raw key bytes at path. The length is not checked.
func (s *KeyFileStore) LoadKey(path string) (domain.SymmetricKey, error) {
	if err := checkPath("load key", path); err != nil {
		return nil, err
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fsError("load key", path, err)
	}
	return domain.SymmetricKey(b), nil
}

// Compile-time assertion that KeyFileStore implements domain.KeyStore.
var _ domain.KeyStore = (*KeyFileStore)(nil)
