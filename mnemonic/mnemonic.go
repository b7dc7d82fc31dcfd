// Package mnemonic generates and validates bip39 recovery phrases.
package mnemonic

import (
	"errors"
	"fmt"
	"strings"

	"github.com/tyler-smith/go-bip39"

	"github.com/spacemeshos/smwallet/common/types"
)

const (
	// EntropyBits produces 24 word phrases.
	EntropyBits = 256
	// WordCount is the number of words in generated phrases.
	WordCount = 24
)

// ErrWordCount is returned for phrases with an unexpected number of words.
var ErrWordCount = errors.New("unexpected number of words")

// Service implements the seed phrase operations on the english bip39 word list.
type Service struct{}

// New returns the english bip39 service.
func New() Service {
	return Service{}
}

// RandomPhrase returns a fresh 24 word phrase.
func (Service) RandomPhrase() (string, error) {
	entropy, err := bip39.NewEntropy(EntropyBits)
	if err != nil {
		return "", fmt.Errorf("generate entropy: %w", err)
	}
	phrase, err := bip39.NewMnemonic(entropy)
	if err != nil {
		return "", fmt.Errorf("encode mnemonic: %w", err)
	}
	return phrase, nil
}

// Validate checks word count, word list membership and checksum.
func (Service) Validate(phrase string) error {
	words := strings.Fields(phrase)
	if len(words) != WordCount {
		return &types.ValidationError{Err: fmt.Errorf("%w: %d", ErrWordCount, len(words))}
	}
	if _, err := bip39.EntropyFromMnemonic(strings.Join(words, " ")); err != nil {
		return &types.ValidationError{Err: err}
	}
	return nil
}

// ToSeed derives the 64 byte bip39 seed with an empty passphrase.
func (s Service) ToSeed(phrase string) ([]byte, error) {
	if err := s.Validate(phrase); err != nil {
		return nil, err
	}
	seed, err := bip39.NewSeedWithErrorChecking(normalize(phrase), "")
	if err != nil {
		return nil, fmt.Errorf("derive seed: %w", err)
	}
	return seed, nil
}

// ToWords splits a valid phrase into its words.
func (s Service) ToWords(phrase string) ([]string, error) {
	if err := s.Validate(phrase); err != nil {
		return nil, err
	}
	return strings.Fields(phrase), nil
}

func normalize(phrase string) string {
	return strings.Join(strings.Fields(phrase), " ")
}
