package types

import (
	"errors"
	"fmt"

	"github.com/cosmos/btcutil/bech32"
)

const (
	// AddressLength is the expected length of the decoded address payload.
	AddressLength = 24
	// AddressReservedSpace define how much bytes from top is reserved in address for future.
	AddressReservedSpace = 4
)

var (
	// ErrWrongAddressLength is returned when the length of the address is not correct.
	ErrWrongAddressLength = errors.New("wrong address length")
	// ErrUnsupportedNetwork is returned when the address hrp doesn't match the network.
	ErrUnsupportedNetwork = errors.New("unsupported network")
	// ErrDecodeBech32 is returned when an error occurs during decoding bech32.
	ErrDecodeBech32 = errors.New("error decoding bech32")
	// ErrMissingReservedSpace is returned if top bytes of address is not 0.
	ErrMissingReservedSpace = errors.New("missing reserved space")
)

// Address represents the address of a wallet account with AddressLength length.
type Address [AddressLength]byte

// ParseAddress decodes an address like `sm1abc...` and checks that it belongs to the network
// with the given human readable part.
func ParseAddress(hrp, src string) (Address, error) {
	var addr Address
	decodedHrp, data, err := bech32.DecodeNoLimit(src)
	if err != nil {
		return addr, fmt.Errorf("%w: %w", ErrDecodeBech32, err)
	}

	// for encoding bech32 uses slice of 5-bit unsigned integers. convert it back it 8-bit uints.
	converted, err := bech32.ConvertBits(data, 5, 8, true)
	if err != nil {
		return addr, fmt.Errorf("error converting bech32 bits: %w", err)
	}

	// AddressLength+1 cause ConvertBits append empty byte to the end of the slice.
	if len(converted) != AddressLength+1 {
		return addr, fmt.Errorf("expected %d bytes, got %d: %w", AddressLength, len(converted), ErrWrongAddressLength)
	}
	if hrp != decodedHrp {
		return addr, fmt.Errorf("wrong network id: expected `%s`, got `%s`: %w", hrp, decodedHrp, ErrUnsupportedNetwork)
	}
	for i := 0; i < AddressReservedSpace; i++ {
		if converted[i] != 0 {
			return addr, fmt.Errorf("expected first %d bytes to be 0, got %d: %w",
				AddressReservedSpace, converted[i], ErrMissingReservedSpace)
		}
	}

	copy(addr[:], converted)
	return addr, nil
}

// IsValidAddress returns true if src is a well formed address for the network.
func IsValidAddress(hrp, src string) bool {
	_, err := ParseAddress(hrp, src)
	return err == nil
}

// GenerateAddress generates an address from a public key.
func GenerateAddress(publicKey []byte) Address {
	var addr Address
	if len(publicKey) > len(addr)-AddressReservedSpace {
		publicKey = publicKey[len(publicKey)-AddressLength+AddressReservedSpace:]
	}
	copy(addr[AddressReservedSpace:], publicKey)
	return addr
}

// Encode returns the bech32 representation of the address for the network.
func (a Address) Encode(hrp string) string {
	return encodeBech32(hrp, a[:])
}

// Bytes gets the underlying address bytes.
func (a Address) Bytes() []byte { return a[:] }

// IsEmpty checks if address is empty.
func (a Address) IsEmpty() bool {
	for i := AddressReservedSpace; i < AddressLength; i++ {
		if a[i] != 0 {
			return false
		}
	}
	return true
}

func encodeBech32(hrp string, data []byte) string {
	converted, err := bech32.ConvertBits(data, 8, 5, true)
	if err != nil {
		panic("error converting bech32 bits: " + err.Error())
	}
	result, err := bech32.Encode(hrp, converted)
	if err != nil {
		panic("error encoding to bech32: " + err.Error())
	}
	return result
}
