// Package crypto exposes the minimal primitives used by passvault.
//
// Contents
//
//   - Symmetric key generation (GenerateKey)
//   - Authenticated encryption of secrets into URL-safe text tokens and the
//     reverse (Encrypt, Decrypt), using XChaCha20-Poly1305
//   - Short key fingerprints for display/logging (Fingerprint)
//
// # Token format
//
// A token is the URL-safe base64 encoding of
//
//	version (1 byte) || nonce (24 bytes) || ciphertext || tag (16 bytes)
//
// The version byte is authenticated as associated data. Every call to Encrypt
// draws a fresh random nonce, so sealing the same plaintext twice yields two
// different tokens.
package crypto
