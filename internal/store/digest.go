package store

import (
	"encoding/hex"

	"golang.org/x/crypto/blake2b"
)

// Digest returns a short hex fingerprint of a reference document.
//
// It hashes with BLAKE2b-256 and truncates to 10 bytes (20 hex chars), enough
// to tell table revisions apart in logs and API responses.
func Digest(raw []byte) string {
	sum := blake2b.Sum256(raw)
	return hex.EncodeToString(sum[:10])
}
