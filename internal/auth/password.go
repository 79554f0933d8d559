// Package auth holds the credential primitives: password salting/hashing,
// access token generation and request credential parsing.
package auth

import (
	"crypto/rand"
	"crypto/sha512"
	"crypto/subtle"
	"encoding/base64"
	"encoding/hex"
	"errors"
	"fmt"

	"golang.org/x/crypto/pbkdf2"
)

const (
	saltLength       = 32
	hashIterations   = 1000
	hashKeyLength    = 64
	MaxPasswordLen   = 256
	minPasswordBytes = 1
)

var ErrInvalidPassword = errors.New("password length out of range")

// PasswordProvider produces a salt and a deterministic hash for a plaintext
// credential, and reproduces that hash from a stored salt at sign-in.
type PasswordProvider struct {
	iterations int
}

func NewPasswordProvider() *PasswordProvider {
	return &PasswordProvider{iterations: hashIterations}
}

// Encrypt generates a fresh salt and returns (salt, hash).
func (p *PasswordProvider) Encrypt(password string) (string, string, error) {
	if len(password) < minPasswordBytes || len(password) > MaxPasswordLen {
		return "", "", ErrInvalidPassword
	}

	b := make([]byte, saltLength)
	if _, err := rand.Read(b); err != nil {
		return "", "", fmt.Errorf("generate salt: %w", err)
	}
	salt := base64.StdEncoding.EncodeToString(b)

	return salt, p.EncryptWithSalt(password, salt), nil
}

// EncryptWithSalt hashes password with an existing salt.
func (p *PasswordProvider) EncryptWithSalt(password, salt string) string {
	key := pbkdf2.Key([]byte(password), []byte(salt), p.iterations, hashKeyLength, sha512.New)
	return hex.EncodeToString(key)
}

// Matches reports whether password hashes to storedHash under salt.
func (p *PasswordProvider) Matches(password, salt, storedHash string) bool {
	if storedHash == "" {
		return false
	}
	candidate := p.EncryptWithSalt(password, salt)
	return subtle.ConstantTimeCompare([]byte(candidate), []byte(storedHash)) == 1
}
