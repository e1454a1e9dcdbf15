package fileutil

import (
	"crypto/sha256"
	"encoding/hex"
)

// HashBytes returns a short content fingerprint, enough to detect file
// changes between index builds.
func HashBytes(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])[:16]
}
