package auth

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
)

// PreviewLength is how many leading characters Mask keeps visible.
const PreviewLength = 12

// Fingerprint returns the SHA-256 hex digest of a token. Display
// surfaces print the fingerprint instead of the value, so a stored
// token can be recognized without ever showing it.
func Fingerprint(token string) string {
	h := sha256.Sum256([]byte(token))
	return hex.EncodeToString(h[:])
}

// Mask returns a short preview of a token safe to print: the leading
// characters followed by "...". Tokens no longer than the preview are
// fully starred out.
func Mask(token string) string {
	if len(token) <= PreviewLength {
		return strings.Repeat("*", len(token))
	}
	return token[:PreviewLength] + "..."
}
