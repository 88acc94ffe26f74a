package store

import (
	"bufio"
	"errors"
	"os"

	"passvault/internal/domain"
)

// RecordFileStore persists encrypted records as an append-only text file.
// Superseded records are never removed.
type RecordFileStore struct{}

// NewRecordFileStore returns a RecordFileStore.
func NewRecordFileStore() *RecordFileStore { return &RecordFileStore{} }

// Create truncates or creates the file at path, creating parent directories.
func (s *RecordFileStore) Create(path string) error {
	if err := checkPath("create password file", path); err != nil {
		return err
	}
	if err := ensureDir(path); err != nil {
		return fsError("create password file", path, err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0o600)
	if err != nil {
		return fsError("create password file", path, err)
	}
	if err := f.Close(); err != nil {
		return fsError("create password file", path, err)
	}
	return nil
}

// Append writes rec as one line at the end of the file.
func (s *RecordFileStore) Append(path string, rec domain.EncryptedRecord) error {
	if err := checkPath("append record", path); err != nil {
		return err
	}
	line, err := FormatRecord(rec)
	if err != nil {
		return err
	}
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o600)
	if err != nil {
		return fsError("append record", path, err)
	}
	if _, err := f.WriteString(line); err != nil {
		_ = f.Close()
		return fsError("append record", path, err)
	}
	if err := f.Close(); err != nil {
		return fsError("append record", path, err)
	}
	return nil
}

// Scan parses the file line by line and hands each record to fn.
//
// A line that does not parse, or an error from fn, stops the scan; it is
// returned as a *domain.LineError carrying the 1-based line number.
func (s *RecordFileStore) Scan(path string, fn func(line int, rec domain.EncryptedRecord) error) error {
	if err := checkPath("read password file", path); err != nil {
		return err
	}
	f, err := os.Open(path)
	if err != nil {
		return fsError("read password file", path, err)
	}
	defer f.Close()

	sc := bufio.NewScanner(f)
	sc.Buffer(make([]byte, 0, 4096), MaxLineBytes)

	n := 0
	for sc.Scan() {
		n++
		rec, err := ParseRecord(sc.Text())
		if err != nil {
			return &domain.LineError{Line: n, Err: err}
		}
		if err := fn(n, rec); err != nil {
			var le *domain.LineError
			if errors.As(err, &le) {
				return err
			}
			return &domain.LineError{Line: n, Err: err}
		}
	}
	if err := sc.Err(); err != nil {
		if errors.Is(err, bufio.ErrTooLong) {
			return &domain.LineError{Line: n + 1, Err: errors.Join(domain.ErrFormat, err)}
		}
		return fsError("read password file", path, err)
	}
	return nil
}

// Compile-time assertion that RecordFileStore implements domain.RecordLog.
var _ domain.RecordLog = (*RecordFileStore)(nil)
