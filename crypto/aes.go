// Package crypto seals small secrets at rest.
package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"errors"
	"fmt"
)

// KeySize is the size of AES-256 keys.
const KeySize = 32

// SaltSize is the size of salts generated by NewSalt.
const SaltSize = 16

var ErrDecryption = errors.New("aes decryption error")

// NewSalt returns SaltSize random bytes.
func NewSalt() ([]byte, error) {
	salt := make([]byte, SaltSize)
	if _, err := rand.Read(salt); err != nil {
		return nil, fmt.Errorf("read random salt: %w", err)
	}
	return salt, nil
}

// AesGCMSeal encrypts and authenticates clearText. The random nonce is prepended to the result.
func AesGCMSeal(key, clearText, additional []byte) ([]byte, error) {
	aead, err := newGCM(key)
	if err != nil {
		return nil, err
	}
	nonce := make([]byte, aead.NonceSize(), aead.NonceSize()+len(clearText)+aead.Overhead())
	if _, err := rand.Read(nonce); err != nil {
		return nil, fmt.Errorf("read nonce: %w", err)
	}
	return aead.Seal(nonce, nonce, clearText, additional), nil
}

// AesGCMOpen reverses AesGCMSeal.
func AesGCMOpen(key, sealed, additional []byte) ([]byte, error) {
	aead, err := newGCM(key)
	if err != nil {
		return nil, err
	}
	if len(sealed) < aead.NonceSize()+aead.Overhead() {
		return nil, ErrDecryption
	}
	nonce, cipherText := sealed[:aead.NonceSize()], sealed[aead.NonceSize():]
	clearText, err := aead.Open(nil, nonce, cipherText, additional)
	if err != nil {
		return nil, ErrDecryption
	}
	return clearText, nil
}

func newGCM(key []byte) (cipher.AEAD, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, err
	}
	return cipher.NewGCM(block)
}
