package domain

// SymmetricKey is the raw secret used to seal and open password records.
//
// Its length is not checked when it is loaded or supplied; a mismatch surfaces
// on first use.
type SymmetricKey []byte

// IsSet reports whether the key holds any bytes.
func (k SymmetricKey) IsSet() bool { return len(k) > 0 }

// Clone returns an independent copy of the key.
func (k SymmetricKey) Clone() SymmetricKey {
	if k == nil {
		return nil
	}
	return append(SymmetricKey(nil), k...)
}

// String hides key material from fmt and loggers.
func (k SymmetricKey) String() string {
	if !k.IsSet() {
		return "SymmetricKey(unset)"
	}
	return "SymmetricKey(redacted)"
}

// GoString hides key material from %#v.
func (k SymmetricKey) GoString() string { return k.String() }

// PasswordEntry is a decrypted site/secret pair held in memory.
type PasswordEntry struct {
	Site   string
	Secret string
}

// EncryptedRecord is one persisted line: a site and its sealed secret token.
type EncryptedRecord struct {
	Site       string
	Ciphertext string
}
