// Package backup forces every wallet through recovery phrase verification.
package backup

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/spacemeshos/smwallet/common/types"
)

var ErrNoWallet = errors.New("no stored wallet")

//go:generate mockgen -typed -package=backup -destination=./mocks.go -source=./gate.go

type wordSplitter interface {
	ToWords(phrase string) ([]string, error)
}

type backupMarker interface {
	MarkBackupPassed() error
}

// ShouldGate reports whether the wallet must pass phrase validation first.
func ShouldGate(w types.StoredWallet) bool {
	return !w.HasPassedBackupTest
}

// Flow is the data shown while the user reviews and validates the phrase.
type Flow struct {
	Phrase    types.RecoveryPhrase
	Challenge Challenge
}

type Opt func(*Gate)

func WithLogger(logger *zap.Logger) Opt {
	return func(g *Gate) {
		g.logger = logger
	}
}

// WithRandom sets the source used to build challenges.
func WithRandom(rng Random) Opt {
	return func(g *Gate) {
		g.rng = rng
	}
}

type Gate struct {
	logger *zap.Logger
	words  wordSplitter
	marker backupMarker
	rng    Random
}

func New(words wordSplitter, marker backupMarker, opts ...Opt) *Gate {
	g := &Gate{
		logger: zap.NewNop(),
		words:  words,
		marker: marker,
		rng:    globalRandom{},
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Prime derives the recovery phrase of the wallet and a fresh validation challenge.
// Failures are returned as *types.GateError.
func (g *Gate) Prime(w *types.StoredWallet) (*Flow, error) {
	if w == nil {
		return nil, &types.GateError{Err: ErrNoWallet}
	}
	words, err := g.words.ToWords(w.SeedPhrase)
	if err != nil {
		return nil, &types.GateError{Err: fmt.Errorf("split phrase: %w", err)}
	}
	phrase := types.NewRecoveryPhrase(words)
	challenge, err := NewChallenge(phrase, g.rng)
	if err != nil {
		return nil, &types.GateError{Err: err}
	}
	g.logger.Debug("primed backup flow", zap.Int("groups", challenge.Len()))
	return &Flow{Phrase: phrase, Challenge: challenge}, nil
}

// MarkPassed records the successful validation. It is idempotent.
func (g *Gate) MarkPassed() error {
	if err := g.marker.MarkBackupPassed(); err != nil {
		return fmt.Errorf("mark backup passed: %w", err)
	}
	return nil
}
