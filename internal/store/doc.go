// Package store provides file-based persistence for passvault.
//
// It contains concrete implementations of the domain storage interfaces:
//   - Raw key files (KeyFileStore)
//   - Append-only password files of "<site>:<token>" lines (RecordFileStore)
//
// and the line codec for those password files (FormatRecord, ParseRecord).
//
// File system failures are reported with the domain error kinds: a missing
// file or directory is domain.ErrPath, a permission failure is
// domain.ErrPermission and anything else is domain.ErrIO. The OS error is
// wrapped alongside the kind.
//
// None of the stores lock. Two processes appending to the same password file
// race without ordering guarantees.
package store
