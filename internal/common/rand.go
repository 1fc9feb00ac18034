package common

import (
	"crypto/rand"
	"encoding/base64"
)

// GenerateRandByteArray returns size bytes read from the system CSPRNG.
// It panics if the random source fails, which is not recoverable anyway.
func GenerateRandByteArray(size int) []byte {
	b := make([]byte, size)
	if _, err := rand.Read(b); err != nil {
		panic(err)
	}
	return b
}

// MakeRandBase64String returns size random bytes encoded with standard
// base64. Used for opaque high-entropy secrets such as refresh tokens.
func MakeRandBase64String(size int) string {
	return base64.StdEncoding.EncodeToString(GenerateRandByteArray(size))
}
