package embedding

import (
	"crypto/sha256"
	"encoding/hex"
)

// hashString returns the hex-encoded SHA-256 of text, used to build stable
// cache keys for arbitrary-length inputs.
func hashString(text string) string {
	sum := sha256.Sum256([]byte(text))
	return hex.EncodeToString(sum[:])
}
