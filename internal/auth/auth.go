// Package auth derives the credential key stored alongside an account. The
// scheme is salt-and-stretch: a per-account random salt is mixed into a
// slow PBKDF2-SHA512 derivation so identical passwords never share a key
// and brute forcing has to be repeated per account.
package auth

import (
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha512"
	"encoding/hex"
	"fmt"

	"golang.org/x/crypto/pbkdf2"
)

const (
	saltBytes  = 32
	keyBytes   = 64
	iterations = 1 << 17
)

// NewSalt returns a fresh random salt as a lowercase hex string. The salt is
// not secret and is stored next to the key.
func NewSalt() (string, error) {
	buf := make([]byte, saltBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("read salt: %w", err)
	}
	return hex.EncodeToString(buf), nil
}

// DeriveKey stretches password with the hex-encoded salt into the credential
// key, returned as lowercase hex.
func DeriveKey(password, saltHex string) (string, error) {
	salt, err := hex.DecodeString(saltHex)
	if err != nil {
		return "", fmt.Errorf("decode salt: %w", err)
	}
	key := pbkdf2.Key([]byte(password), salt, iterations, keyBytes, sha512.New)
	return hex.EncodeToString(key), nil
}

// Verify re-derives the key from password and salt and compares it with the
// stored key in constant time.
func Verify(password, saltHex, keyHex string) bool {
	derived, err := DeriveKey(password, saltHex)
	if err != nil {
		return false
	}
	return hmac.Equal([]byte(derived), []byte(keyHex))
}
