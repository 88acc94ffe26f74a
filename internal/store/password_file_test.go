package store_test

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"passvault/internal/domain"
	"passvault/internal/store"
)

type scanned struct {
	line int
	rec  domain.EncryptedRecord
}

func collect(t *testing.T, log domain.RecordLog, path string) ([]scanned, error) {
	t.Helper()
	var out []scanned
	err := log.Scan(path, func(line int, rec domain.EncryptedRecord) error {
		out = append(out, scanned{line, rec})
		return nil
	})
	return out, err
}

func TestRecordFile_CreateAppendScan(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sub", "passwords.txt")
	var log domain.RecordLog = store.NewRecordFileStore()

	require.NoError(t, log.Create(path))
	require.NoError(t, log.Append(path, domain.EncryptedRecord{Site: "a.com", Ciphertext: "t1"}))
	require.NoError(t, log.Append(path, domain.EncryptedRecord{Site: "b.com", Ciphertext: "t2"}))
	require.NoError(t, log.Append(path, domain.EncryptedRecord{Site: "a.com", Ciphertext: "t3"}))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "a.com:t1\nb.com:t2\na.com:t3\n", string(raw))

	got, err := collect(t, log, path)
	require.NoError(t, err)
	assert.Equal(t, []scanned{
		{1, domain.EncryptedRecord{Site: "a.com", Ciphertext: "t1"}},
		{2, domain.EncryptedRecord{Site: "b.com", Ciphertext: "t2"}},
		{3, domain.EncryptedRecord{Site: "a.com", Ciphertext: "t3"}},
	}, got)
}

func TestRecordFile_CreateTruncates(t *testing.T) {
	path := filepath.Join(t.TempDir(), "passwords.txt")
	require.NoError(t, os.WriteFile(path, []byte("old:data\n"), 0o600))

	log := store.NewRecordFileStore()
	require.NoError(t, log.Create(path))

	got, err := collect(t, log, path)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestRecordFile_AppendRejectsBadSite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "passwords.txt")
	log := store.NewRecordFileStore()
	require.NoError(t, log.Create(path))

	err := log.Append(path, domain.EncryptedRecord{Site: "a:b", Ciphertext: "t"})
	assert.ErrorIs(t, err, domain.ErrFormat)

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Empty(t, raw)
}

func TestRecordFile_ScanMissing(t *testing.T) {
	_, err := collect(t, store.NewRecordFileStore(), filepath.Join(t.TempDir(), "missing.txt"))
	assert.ErrorIs(t, err, domain.ErrPath)
}

func TestRecordFile_ScanMalformedLine(t *testing.T) {
	path := filepath.Join(t.TempDir(), "passwords.txt")
	require.NoError(t, os.WriteFile(path, []byte("a.com:t1\nbroken\nc.com:t3\n"), 0o600))

	got, err := collect(t, store.NewRecordFileStore(), path)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrFormat)

	var le *domain.LineError
	require.ErrorAs(t, err, &le)
	assert.Equal(t, 2, le.Line)
	assert.Len(t, got, 1)
}

func TestRecordFile_ScanStopsOnCallbackError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "passwords.txt")
	require.NoError(t, os.WriteFile(path, []byte("a.com:t1\nb.com:t2\n"), 0o600))

	boom := errors.New("boom")
	calls := 0
	err := store.NewRecordFileStore().Scan(path, func(line int, rec domain.EncryptedRecord) error {
		calls++
		if line == 2 {
			return boom
		}
		return nil
	})

	assert.ErrorIs(t, err, boom)
	var le *domain.LineError
	require.ErrorAs(t, err, &le)
	assert.Equal(t, 2, le.Line)
	assert.Equal(t, 2, calls)
}

func TestRecordFile_ScanToleratesCRLF(t *testing.T) {
	path := filepath.Join(t.TempDir(), "passwords.txt")
	require.NoError(t, os.WriteFile(path, []byte("a.com:t1\r\n"), 0o600))

	got, err := collect(t, store.NewRecordFileStore(), path)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "t1", got[0].rec.Ciphertext)
}

func TestRecordFile_LineAtLimitRoundTrips(t *testing.T) {
	path := filepath.Join(t.TempDir(), "passwords.txt")
	log := store.NewRecordFileStore()
	require.NoError(t, log.Create(path))

	// "a.com" + ":" + token + "\n" is exactly MaxLineBytes.
	token := strings.Repeat("A", store.MaxLineBytes-len("a.com:\n"))
	require.NoError(t, log.Append(path, domain.EncryptedRecord{Site: "a.com", Ciphertext: token}))

	got, err := collect(t, log, path)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, token, got[0].rec.Ciphertext)
}

func TestRecordFile_AppendRejectsOverlongLine(t *testing.T) {
	path := filepath.Join(t.TempDir(), "passwords.txt")
	log := store.NewRecordFileStore()
	require.NoError(t, log.Create(path))

	token := strings.Repeat("A", store.MaxLineBytes)
	err := log.Append(path, domain.EncryptedRecord{Site: "a.com", Ciphertext: token})
	assert.ErrorIs(t, err, domain.ErrFormat)

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Empty(t, raw)
}
