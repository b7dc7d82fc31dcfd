// Package signing derives per-account key material from a wallet seed.
package signing

import (
	"encoding/binary"
	"errors"
	"fmt"

	"github.com/oasisprotocol/curve25519-voi/primitives/ed25519"
	"github.com/zeebo/blake3"

	"github.com/spacemeshos/smwallet/common/types"
)

const accountKeyContext = "smwallet 2024-01-01 account key"

// MinSeedSize is the smallest seed accepted for derivation.
const MinSeedSize = 32

var (
	ErrShortSeed  = errors.New("seed too short")
	ErrNoAccounts = errors.New("at least one account is required")
)

// Deriver derives account keys for a network.
type Deriver struct {
	hrp string
}

func NewDeriver(network types.Network) *Deriver {
	return &Deriver{hrp: network.HRP}
}

// AccountKey derives the private key of an account.
func (d *Deriver) AccountKey(seed []byte, account uint32) (PrivateKey, error) {
	if len(seed) < MinSeedSize {
		return nil, fmt.Errorf("%w: %d bytes", ErrShortSeed, len(seed))
	}
	material := make([]byte, 0, len(seed)+4)
	material = append(material, seed...)
	material = binary.BigEndian.AppendUint32(material, account)

	var keySeed [ed25519.SeedSize]byte
	blake3.DeriveKey(accountKeyContext, material, keySeed[:])
	return ed25519.NewKeyFromSeed(keySeed[:]), nil
}

// DeriveViewingKeys returns one viewing key per account, for accounts [0, accounts).
func (d *Deriver) DeriveViewingKeys(seed []byte, accounts int) ([]types.ViewingKey, error) {
	if accounts <= 0 {
		return nil, ErrNoAccounts
	}
	keys := make([]types.ViewingKey, 0, accounts)
	for i := range accounts {
		priv, err := d.AccountKey(seed, uint32(i))
		if err != nil {
			return nil, fmt.Errorf("account %d: %w", i, err)
		}
		keys = append(keys, types.ViewingKey{
			Account: uint32(i),
			Key:     Public(priv).Bytes(),
		})
	}
	return keys, nil
}

// Address returns the receiving address of an account.
func (d *Deriver) Address(seed []byte, account uint32) (types.Address, error) {
	priv, err := d.AccountKey(seed, account)
	if err != nil {
		return types.Address{}, err
	}
	return types.GenerateAddress(Public(priv).Bytes()), nil
}

// IsValidAddress reports whether s is an address of the deriver's network.
func (d *Deriver) IsValidAddress(s string) bool {
	return types.IsValidAddress(d.hrp, s)
}
