package store

import (
	"fmt"
	"strings"

	"passvault/internal/domain"
)

// recordSep separates the site from the token on a password file line.
const recordSep = ":"

// MaxLineBytes bounds a single record line, trailing newline included. Lines
// longer than this are neither written nor read.
const MaxLineBytes = 1 << 20

// ValidateSite reports whether site can be written to a password file.
//
// The line format has no escaping, so a site may not contain the separator or
// a line break.
func ValidateSite(site string) error {
	if site == "" {
		return fmt.Errorf("%w: empty site", domain.ErrFormat)
	}
	if strings.ContainsAny(site, recordSep+"\r\n") {
		return fmt.Errorf("%w: site %q contains ':' or a line break", domain.ErrFormat, site)
	}
	return nil
}

// FormatRecord renders rec as one password file line, trailing newline included.
func FormatRecord(rec domain.EncryptedRecord) (string, error) {
	if err := ValidateSite(rec.Site); err != nil {
		return "", err
	}
	if strings.ContainsAny(rec.Ciphertext, "\r\n") {
		return "", fmt.Errorf("%w: ciphertext contains a line break", domain.ErrFormat)
	}
	line := rec.Site + recordSep + rec.Ciphertext + "\n"
	if len(line) > MaxLineBytes {
		return "", fmt.Errorf("%w: record is %d bytes, limit is %d", domain.ErrFormat, len(line), MaxLineBytes)
	}
	return line, nil
}

// ParseRecord splits a line at its first ':' into site and ciphertext. A
// trailing newline is ignored.
func ParseRecord(line string) (domain.EncryptedRecord, error) {
	line = strings.TrimSuffix(line, "\n")
	site, ct, ok := strings.Cut(line, recordSep)
	if !ok {
		return domain.EncryptedRecord{}, fmt.Errorf("%w: missing %q delimiter", domain.ErrFormat, recordSep)
	}
	return domain.EncryptedRecord{Site: site, Ciphertext: ct}, nil
}
