package keygen

import (
	"crypto/rand"
	"encoding/base64"

	"github.com/google/uuid"
)

// GenerateSecret returns a URL-safe base64 secret built from n random bytes
func GenerateSecret(n int) (string, error) {
	b := make([]byte, n)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}

// GenerateSessionID returns a fresh random session identifier (UUID v4)
func GenerateSessionID() string {
	return uuid.New().String()
}
