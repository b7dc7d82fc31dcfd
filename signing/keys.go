package signing

import (
	"encoding/hex"

	"github.com/oasisprotocol/curve25519-voi/primitives/ed25519"
)

// PrivateKey of a single wallet account.
type PrivateKey = ed25519.PrivateKey

// PublicKey of a wallet account. Its bytes are the account viewing key.
type PublicKey struct {
	ed25519.PublicKey
}

// Public returns the public half of priv.
func Public(priv PrivateKey) *PublicKey {
	return &PublicKey{priv.Public().(ed25519.PublicKey)}
}

// Bytes is nil for a nil key.
func (p *PublicKey) Bytes() []byte {
	if p == nil {
		return nil
	}
	return p.PublicKey
}

func (p *PublicKey) String() string {
	return hex.EncodeToString(p.Bytes())
}

const fingerprintSize = 8

// Fingerprint is the hex prefix used to tell keys apart in logs.
func (p *PublicKey) Fingerprint() string {
	s := p.String()
	return s[:min(len(s), fingerprintSize)]
}
