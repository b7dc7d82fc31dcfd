package types

import "strconv"

// Height is a block height.
type Height uint64

func (h Height) String() string {
	return strconv.FormatUint(uint64(h), 10)
}

// Uint64 returns the height as uint64.
func (h Height) Uint64() uint64 { return uint64(h) }

// Network identifies the chain the wallet operates on.
type Network struct {
	Name string `mapstructure:"name"`
	// HRP is the human readable part of bech32 encoded addresses and keys.
	HRP string `mapstructure:"hrp"`
	// DefaultBirthday is used when a restored wallet doesn't carry its own birthday.
	DefaultBirthday Height `mapstructure:"default-birthday"`
}

func (n Network) String() string { return n.Name }

// Mainnet returns mainnet parameters.
func Mainnet() Network {
	return Network{Name: "mainnet", HRP: "sm", DefaultBirthday: 419_200}
}

// Testnet returns testnet parameters.
func Testnet() Network {
	return Network{Name: "testnet", HRP: "stest", DefaultBirthday: 280_000}
}
