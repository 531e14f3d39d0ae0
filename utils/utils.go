package utils

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"

	"golang.org/x/crypto/sha3"
)

// Sha3Hash converts a message to a hash value using SHA3-256.
func Sha3Hash(message []byte) ([]byte, error) {
	sha := sha3.New256()
	_, err := sha.Write(message)
	if err != nil {
		return nil, err
	}
	return sha.Sum(nil), nil
}

// Fingerprint returns the first 8 bytes of the SHA3-256 of data, hex encoded.
// It identifies a share document in logs without revealing its content.
func Fingerprint(data []byte) string {
	sum := sha3.Sum256(data)
	return hex.EncodeToString(sum[:8])
}

// GenerateSalt returns size random bytes.
func GenerateSalt(size int) ([]byte, error) {
	if size < 16 || size > 64 {
		return nil, fmt.Errorf("salt size must be between 16 and 64 bytes, but got %d", size)
	}
	salt := make([]byte, size)
	_, err := rand.Read(salt)
	if err != nil {
		return nil, fmt.Errorf("failed to generate random salt: %w", err)
	}
	return salt, nil
}
