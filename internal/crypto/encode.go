package crypto

import "encoding/base64"

// B64 returns URL-safe, padded base64 without newlines.
func B64(b []byte) string { return base64.URLEncoding.EncodeToString(b) }

// UnB64 reverses B64.
func UnB64(s string) ([]byte, error) { return base64.URLEncoding.DecodeString(s) }
