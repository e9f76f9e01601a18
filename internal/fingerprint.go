package internal

import (
	"crypto/md5"
	"encoding/hex"
)

// Fingerprint creates a stable cache key for a source line translated by a
// given model. The model name is part of the key so that switching models
// never reuses stale translations.
func Fingerprint(model, text string) string {
	hash := md5.Sum([]byte(model + "\x00" + text))
	return hex.EncodeToString(hash[:])
}
