// Package key manages the lifecycle of the symmetric key: generation,
// persistence, loading and manual entry.
//
// Generation and persistence are decoupled. A key that could not be written
// to disk stays current and usable for the rest of the session.
package key
