package domain

// KeyStore reads and writes raw key files.
type KeyStore interface {
	SaveKey(path string, key SymmetricKey) error
	LoadKey(path string) (SymmetricKey, error)
}

// RecordLog is an append-only file of encrypted records.
type RecordLog interface {
	// Create truncates or creates the file at path.
	Create(path string) error
	// Append writes one record to the end of the file at path.
	Append(path string, rec EncryptedRecord) error
	// Scan calls fn for every record in file order, stopping at the first error.
	// line is 1-based.
	Scan(path string, fn func(line int, rec EncryptedRecord) error) error
}

// KeyProvider hands out the key currently in use.
type KeyProvider interface {
	Key() (SymmetricKey, error)
}

// KeyManager owns the lifecycle of the symmetric key.
type KeyManager interface {
	KeyProvider
	Generate() SymmetricKey
	Persist(key SymmetricKey, path string) error
	Create(path string) (SymmetricKey, error)
	Load(path string) (SymmetricKey, error)
	SetManual(b []byte) SymmetricKey
}

// PasswordStore maps sites to secrets, optionally backed by a record file.
type PasswordStore interface {
	InitializeEmpty(path string, initial map[string]string) error
	Load(path string) error
	Add(site, secret string) error
	Get(site string) (string, error)
	Sites() []string
	Path() string
}
