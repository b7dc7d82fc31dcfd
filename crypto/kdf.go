package crypto

import (
	"fmt"

	"golang.org/x/crypto/scrypt"
)

// KDFParams are the scrypt cost parameters. N must be a power of two.
type KDFParams struct {
	N int `mapstructure:"n" json:"n"`
	R int `mapstructure:"r" json:"r"`
	P int `mapstructure:"p" json:"p"`
}

// DefaultKDFParams needs about 256MB of memory per derivation.
func DefaultKDFParams() KDFParams {
	return KDFParams{N: 1 << 18, R: 8, P: 1}
}

// DeriveKey stretches a passphrase into an AES key with scrypt.
func DeriveKey(passphrase, salt []byte, params KDFParams) ([]byte, error) {
	key, err := scrypt.Key(passphrase, salt, params.N, params.R, params.P, KeySize)
	if err != nil {
		return nil, fmt.Errorf("derive key (n=%d r=%d p=%d): %w", params.N, params.R, params.P, err)
	}
	return key, nil
}
