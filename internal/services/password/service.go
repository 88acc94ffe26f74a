package password

import (
	"fmt"
	"maps"
	"slices"

	"go.uber.org/zap"

	"passvault/internal/crypto"
	"passvault/internal/domain"
	"passvault/internal/logger"
	"passvault/internal/store"
	"passvault/internal/util/memzero"
)

// Service is the password store for one session.
type Service struct {
	keys    domain.KeyProvider
	records domain.RecordLog
	log     *zap.Logger

	entries map[string]string
	path    string
}

// New returns an empty store that takes its key from keys and persists via
// records. A nil log discards output.
func New(keys domain.KeyProvider, records domain.RecordLog, log *zap.Logger) *Service {
	return &Service{
		keys:    keys,
		records: records,
		log:     logger.OrNop(log),
		entries: make(map[string]string),
	}
}

// InitializeEmpty truncates or creates the file at path, binds it and clears
// the mapping. Each pair in initial is then added in site order.
func (s *Service) InitializeEmpty(path string, initial map[string]string) error {
	if err := s.records.Create(path); err != nil {
		return err
	}
	s.path = path
	s.entries = make(map[string]string)
	s.log.Debug("created password file", zap.String("path", path))

	for _, site := range slices.Sorted(maps.Keys(initial)) {
		if err := s.Add(site, initial[site]); err != nil {
			return fmt.Errorf("add initial %q: %w", site, err)
		}
	}
	return nil
}

// Load binds path and replaces the mapping with the decrypted contents of the
// file. Later lines win over earlier ones for the same site.
//
// The first malformed or unauthenticated line aborts the load with a
// *domain.LineError; the previous mapping and binding are kept.
func (s *Service) Load(path string) error {
	key, err := s.keys.Key()
	if err != nil {
		return err
	}

	staged := make(map[string]string)
	err = s.records.Scan(path, func(_ int, rec domain.EncryptedRecord) error {
		pt, err := crypto.Decrypt(key, rec.Ciphertext)
		if err != nil {
			return err
		}
		staged[rec.Site] = string(pt)
		memzero.Zero(pt)
		return nil
	})
	if err != nil {
		s.log.Warn("password file not loaded", zap.String("path", path), zap.Error(err))
		return err
	}

	s.entries = staged
	s.path = path
	s.log.Debug("loaded password file", zap.String("path", path), zap.Int("sites", len(staged)))
	return nil
}

// Add stores secret under site, replacing any previous value. With a bound
// file the encrypted record is appended first; the mapping only changes once
// the write succeeded.
func (s *Service) Add(site, secret string) error {
	if err := store.ValidateSite(site); err != nil {
		return err
	}
	if s.path != "" {
		key, err := s.keys.Key()
		if err != nil {
			return err
		}
		pt := []byte(secret)
		token, err := crypto.Encrypt(key, pt)
		memzero.Zero(pt)
		if err != nil {
			return err
		}
		if err := s.records.Append(s.path, domain.EncryptedRecord{Site: site, Ciphertext: token}); err != nil {
			return err
		}
	}
	s.entries[site] = secret
	s.log.Debug("added password", zap.String("site", site), zap.Bool("persisted", s.path != ""))
	return nil
}

// Get returns the secret for site or domain.ErrNotFound.
func (s *Service) Get(site string) (string, error) {
	secret, ok := s.entries[site]
	if !ok {
		return "", fmt.Errorf("%w: %q", domain.ErrNotFound, site)
	}
	return secret, nil
}

// Sites lists the sites in the mapping, sorted.
func (s *Service) Sites() []string {
	return slices.Sorted(maps.Keys(s.entries))
}

// Path returns the bound file, or "" when the store is memory-only.
func (s *Service) Path() string { return s.path }

// Compile-time assertion that Service implements domain.PasswordStore.
var _ domain.PasswordStore = (*Service)(nil)
