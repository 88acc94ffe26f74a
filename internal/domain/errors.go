package domain

import (
	"errors"
	"fmt"
)

// Error kinds. Callers match them with errors.Is; the OS cause, when there is
// one, is wrapped alongside.
var (
	ErrPath       = errors.New("invalid or missing path")
	ErrPermission = errors.New("permission denied")
	ErrIO         = errors.New("i/o failure")
	ErrKeyNotSet  = errors.New("no key set")
	ErrInvalidKey = errors.New("invalid key")
	ErrFormat     = errors.New("malformed record")
	ErrDecryption = errors.New("decryption failed")
	ErrNotFound   = errors.New("site not found")
)

// LineError reports the 1-based line of a password file that failed to load.
type LineError struct {
	Line int
	Err  error
}

func (e *LineError) Error() string {
	return fmt.Sprintf("line %d: %v", e.Line, e.Err)
}

func (e *LineError) Unwrap() error { return e.Err }
