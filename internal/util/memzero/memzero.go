// Package memzero wipes sensitive byte slices.
package memzero

import "runtime"

// Zero overwrites b with zeros. This is best-effort: copies made by the
// runtime or by string conversions are out of reach.
//
//go:noinline
func Zero(b []byte) {
	if len(b) == 0 {
		return
	}
	clear(b)
	// Ensure b is considered live until after the write.
	runtime.KeepAlive(&b)
}
