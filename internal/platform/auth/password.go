package auth

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/hex"
	"fmt"
	"strings"

	"golang.org/x/crypto/scrypt"
)

const (
	scryptN      = 16384
	scryptR      = 8
	scryptP      = 1
	scryptKeyLen = 64
	saltLen      = 16
)

// HashPassword derives a scrypt hash and returns it as "hexhash.hexsalt".
func HashPassword(password string) (string, error) {
	salt := make([]byte, saltLen)
	if _, err := rand.Read(salt); err != nil {
		return "", fmt.Errorf("generating salt: %w", err)
	}
	key, err := scrypt.Key([]byte(password), salt, scryptN, scryptR, scryptP, scryptKeyLen)
	if err != nil {
		return "", fmt.Errorf("deriving key: %w", err)
	}
	return hex.EncodeToString(key) + "." + hex.EncodeToString(salt), nil
}

// ComparePasswords checks a plaintext password against a stored
// "hexhash.hexsalt" value in constant time.
func ComparePasswords(stored, supplied string) (bool, error) {
	parts := strings.Split(stored, ".")
	if len(parts) != 2 {
		return false, fmt.Errorf("malformed password hash")
	}
	hash, err := hex.DecodeString(parts[0])
	if err != nil {
		return false, fmt.Errorf("decoding hash: %w", err)
	}
	salt, err := hex.DecodeString(parts[1])
	if err != nil {
		return false, fmt.Errorf("decoding salt: %w", err)
	}
	key, err := scrypt.Key([]byte(supplied), salt, scryptN, scryptR, scryptP, scryptKeyLen)
	if err != nil {
		return false, fmt.Errorf("deriving key: %w", err)
	}
	return subtle.ConstantTimeCompare(hash, key) == 1, nil
}
