package auth

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
)

// HashServiceInterface hashes shared secrets such as the sweep trigger key.
type HashServiceInterface interface {
	HashKey(key string) (string, error)
	CompareKey(hashedKey, key string) bool
}

type HashService struct{}

func (b *HashService) HashKey(key string) (string, error) {
	if key == "" {
		return "", errors.New("key cannot be empty")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(key), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// CompareKey reports whether key matches hashedKey. An empty hash never matches.
func (b *HashService) CompareKey(hashedKey, key string) bool {
	if hashedKey == "" || key == "" {
		return false
	}
	err := bcrypt.CompareHashAndPassword([]byte(hashedKey), []byte(key))
	return err == nil
}
