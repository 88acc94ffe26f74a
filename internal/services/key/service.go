package key

import (
	"fmt"

	"go.uber.org/zap"

	"passvault/internal/crypto"
	"passvault/internal/domain"
	"passvault/internal/logger"
	"passvault/internal/util/memzero"
)

// Service holds the current key and a store for key files.
type Service struct {
	store domain.KeyStore
	log   *zap.Logger
	key   domain.SymmetricKey
}

// New returns a key service backed by the given store. A nil log discards output.
func New(s domain.KeyStore, log *zap.Logger) *Service {
	return &Service{store: s, log: logger.OrNop(log)}
}

// Generate creates a random key and makes it current.
func (s *Service) Generate() domain.SymmetricKey {
	s.replace(crypto.GenerateKey())
	s.log.Debug("generated key", zap.String("fingerprint", crypto.Fingerprint(s.key)))
	return s.key.Clone()
}

// Persist writes key to path. It never changes the current key.
func (s *Service) Persist(key domain.SymmetricKey, path string) error {
	if !key.IsSet() {
		return domain.ErrKeyNotSet
	}
	if err := s.store.SaveKey(path, key); err != nil {
		return err
	}
	s.log.Debug("persisted key", zap.String("path", path))
	return nil
}

// Create generates a key and tries to persist it to path.
//
// The returned key is always current and usable. A non-nil error only
// reports that the key could not be written.
func (s *Service) Create(path string) (domain.SymmetricKey, error) {
	key := s.Generate()
	if err := s.Persist(key, path); err != nil {
		s.log.Warn("key not saved; continuing with in-memory key",
			zap.String("path", path), zap.Error(err))
		return key, fmt.Errorf("key generated but not saved: %w", err)
	}
	return key, nil
}

// Load reads the key at path and makes it current. On failure the current
// key is left as it was.
func (s *Service) Load(path string) (domain.SymmetricKey, error) {
	key, err := s.store.LoadKey(path)
	if err != nil {
		return nil, err
	}
	s.replace(key)
	s.log.Debug("loaded key", zap.String("path", path), zap.String("fingerprint", crypto.Fingerprint(key)))
	return s.key.Clone(), nil
}

// SetManual makes a copy of b the current key. The bytes are not validated.
// Empty input is ignored and the current key, if any, is returned.
func (s *Service) SetManual(b []byte) domain.SymmetricKey {
	if len(b) == 0 {
		return s.key.Clone()
	}
	s.replace(domain.SymmetricKey(b).Clone())
	return s.key.Clone()
}

// Key returns the current key or domain.ErrKeyNotSet. The slice is wiped when
// the key is replaced, so callers must not keep it.
func (s *Service) Key() (domain.SymmetricKey, error) {
	if !s.key.IsSet() {
		return nil, domain.ErrKeyNotSet
	}
	return s.key, nil
}

func (s *Service) replace(k domain.SymmetricKey) {
	memzero.Zero(s.key)
	s.key = k
}

// Compile-time assertion that Service implements domain.KeyManager.
var _ domain.KeyManager = (*Service)(nil)
