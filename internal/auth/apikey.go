package auth

import (
	"crypto/rand"
	"encoding/hex"
	"errors"

	"golang.org/x/crypto/bcrypt"
)

// MinAPIKeyLength is the minimum accepted length of a plaintext API key.
const MinAPIKeyLength = 16

var (
	ErrInvalidAPIKey  = errors.New("invalid API key")
	ErrAPIKeyTooShort = errors.New("API key must be at least 16 characters")
	ErrAPIKeyTooLong  = errors.New("API key exceeds maximum length of 72 bytes")
)

// HashAPIKey creates a bcrypt hash of the key, suitable for API_KEY_HASH.
func HashAPIKey(key string, cost int) (string, error) {
	if len(key) < MinAPIKeyLength {
		return "", ErrAPIKeyTooShort
	}
	// bcrypt has a 72-byte limit
	if len(key) > 72 {
		return "", ErrAPIKeyTooLong
	}
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(key), cost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// CheckAPIKey compares a key with its hash.
func CheckAPIKey(key, hash string) error {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(key))
	if err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return ErrInvalidAPIKey
		}
		return err
	}
	return nil
}

// GenerateAPIKey creates a random 32-byte key, hex encoded.
func GenerateAPIKey() (string, error) {
	bytes := make([]byte, 32)
	if _, err := rand.Read(bytes); err != nil {
		return "", err
	}
	return hex.EncodeToString(bytes), nil
}
