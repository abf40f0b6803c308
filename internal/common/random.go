package common

import "crypto/rand"

// GenerateRandByteArray returns size bytes from crypto/rand. It panics if
// the system source fails, which crypto/rand documents as unrecoverable.
func GenerateRandByteArray(size int) []byte {
	b := make([]byte, size)
	if _, err := rand.Read(b); err != nil {
		panic(err)
	}
	return b
}
