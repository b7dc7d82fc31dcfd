package bootstrap

import (
	"context"
	"encoding/binary"
	"errors"
	"sync"

	"go.uber.org/zap"

	"github.com/spacemeshos/smwallet/common/types"
	"github.com/spacemeshos/smwallet/hash"
	"github.com/spacemeshos/smwallet/log"
)

var (
	// ErrNoWallet is reported when bootstrap runs without a stored wallet.
	ErrNoWallet = errors.New("no stored wallet")
	// ErrReset is reported when the sequencer was reset after the run was requested.
	ErrReset = errors.New("engine reset before start")
)

type Opt func(*Sequencer)

func WithLogger(logger *zap.Logger) Opt {
	return func(s *Sequencer) {
		s.logger = logger
	}
}

// Sequencer starts the engine at most once per wallet. Runs are serialized.
type Sequencer struct {
	logger *zap.Logger
	env    Environment
	engine Engine

	mu         sync.Mutex
	generation uint64
	running    *EngineConfig
	owner      [hash.Size]byte
}

func NewSequencer(env Environment, engine Engine, opts ...Opt) *Sequencer {
	s := &Sequencer{
		logger: zap.NewNop(),
		env:    env,
		engine: engine,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Generation is bumped by every Reset. Callers capture it when they decide
// to bootstrap and pass it to Run.
func (s *Sequencer) Generation() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.generation
}

// Run validates the wallet seed, resolves the birthday, prepares the engine
// and starts it. Run fails with ErrReset if the sequencer was reset since
// generation was captured.
//
// If the engine already runs for the same wallet Run returns its
// configuration. An engine running for another wallet is stopped first.
// A failed start stops the engine so the next attempt begins from scratch.
func (s *Sequencer) Run(ctx context.Context, generation uint64, wallet *types.StoredWallet) (*EngineConfig, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if generation != s.generation {
		return nil, &types.BootstrapError{Step: StepWallet, Err: ErrReset}
	}
	if wallet == nil {
		return nil, &types.BootstrapError{Step: StepWallet, Err: ErrNoWallet}
	}
	owner := walletDigest(wallet)
	if s.running != nil {
		if owner == s.owner {
			s.logger.Debug("engine already running", log.ZContext(ctx))
			return s.running, nil
		}
		s.logger.Info("engine runs for another wallet, restarting", log.ZContext(ctx))
		s.stop()
	}
	if err := s.env.Seeds.Validate(wallet.SeedPhrase); err != nil {
		return nil, &types.BootstrapError{Step: StepSeed, Err: err}
	}
	birthday := wallet.Birthday
	if birthday == 0 {
		birthday = s.env.Network.DefaultBirthday
	}
	cfg, err := Prepare(wallet.SeedPhrase, birthday, s.env)
	if err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, &types.BootstrapError{Step: StepPrepare, Err: err}
	}
	if err := s.engine.Prepare(cfg); err != nil {
		return nil, &types.BootstrapError{Step: StepPrepare, Err: err}
	}
	if err := s.engine.Start(); err != nil {
		s.engine.Stop()
		return nil, &types.BootstrapError{Step: StepStart, Err: err}
	}
	s.running = cfg
	s.owner = owner
	s.logger.Info("engine started", log.ZContext(ctx), zap.Object("config", cfg))
	return cfg, nil
}

// Reset stops a running engine and invalidates every generation captured
// before it.
func (s *Sequencer) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.generation++
	if s.running != nil {
		s.stop()
	}
}

func (s *Sequencer) stop() {
	s.engine.Stop()
	s.running = nil
	s.owner = [hash.Size]byte{}
	s.logger.Info("engine stopped")
}

func walletDigest(wallet *types.StoredWallet) [hash.Size]byte {
	var birthday [8]byte
	binary.BigEndian.PutUint64(birthday[:], uint64(wallet.Birthday))
	return hash.Sum([]byte(wallet.SeedPhrase), birthday[:])
}

// Running reports whether the engine was started and not reset.
func (s *Sequencer) Running() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.running != nil
}
