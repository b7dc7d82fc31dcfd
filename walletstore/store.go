// Package walletstore persists the wallet credentials in an encrypted file.
package walletstore

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/gofrs/flock"
	"github.com/natefinch/atomic"
	"go.uber.org/zap"

	"github.com/spacemeshos/smwallet/common/types"
	"github.com/spacemeshos/smwallet/crypto"
)

const recordVersion = 1

var (
	// ErrNotFound is returned when no wallet is stored.
	ErrNotFound = errors.New("wallet not found")
	// ErrUnsupportedVersion is returned for files written by a newer release.
	ErrUnsupportedVersion = errors.New("unsupported wallet file version")
)

type Config struct {
	FileName   string `mapstructure:"file-name"`
	Passphrase string `mapstructure:"passphrase"`
	// KDF applies to wallets stored from now on. Stored wallets keep their own.
	KDF crypto.KDFParams `mapstructure:"kdf"`
}

func DefaultConfig() Config {
	return Config{
		FileName: "wallet.json",
		KDF:      crypto.DefaultKDFParams(),
	}
}

type record struct {
	Version  int              `json:"version"`
	KDF      crypto.KDFParams `json:"kdf"`
	Salt     []byte           `json:"salt"`
	Sealed   []byte           `json:"sealed"`
	Birthday uint64 `json:"birthday"`
	Language uint8  `json:"language"`
	BackedUp bool   `json:"has_passed_backup_test"`
}

type Opt func(*Store)

func WithLogger(logger *zap.Logger) Opt {
	return func(s *Store) {
		s.logger = logger
	}
}

// WithLockFile guards every file operation with an inter-process lock on path.
// The directory of path must exist on the os filesystem.
func WithLockFile(path string) Opt {
	return func(s *Store) {
		s.lock = flock.New(path)
	}
}

// Store is the credential store. It is safe for concurrent use.
type Store struct {
	logger *zap.Logger
	dir    string
	cfg    Config
	lock   *flock.Flock

	mu sync.Mutex
}

func New(dir string, cfg Config, opts ...Opt) *Store {
	s := &Store{
		logger: zap.NewNop(),
		dir:    dir,
		cfg:    cfg,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Store) path() string {
	return filepath.Join(s.dir, s.cfg.FileName)
}

func (s *Store) locked(f func() error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.lock != nil {
		if err := s.lock.Lock(); err != nil {
			return fmt.Errorf("lock %s: %w", s.lock.Path(), err)
		}
		defer s.lock.Unlock()
	}
	return f()
}

// KeysPresent reports whether a wallet is stored. If the store directory was
// never created it fails with an uninitialized ProbeError.
func (s *Store) KeysPresent() (bool, error) {
	var present bool
	err := s.locked(func() error {
		if _, err := os.Stat(s.dir); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return &types.ProbeError{Kind: types.ProbeUninitialized, Err: err}
			}
			return &types.ProbeError{Kind: types.ProbeOther, Err: err}
		}
		_, err := os.Stat(s.path())
		switch {
		case err == nil:
			present = true
		case !errors.Is(err, fs.ErrNotExist):
			return &types.ProbeError{Kind: types.ProbeOther, Err: err}
		}
		return nil
	})
	return present, err
}

// ExportWallet reads and decrypts the stored wallet.
func (s *Store) ExportWallet() (*types.StoredWallet, error) {
	var wallet *types.StoredWallet
	err := s.locked(func() error {
		rec, err := s.read()
		if err != nil {
			return err
		}
		phrase, err := s.open(rec)
		if err != nil {
			return err
		}
		wallet = &types.StoredWallet{
			SeedPhrase:          string(phrase),
			Birthday:            types.Height(rec.Birthday),
			Language:            types.Language(rec.Language),
			HasPassedBackupTest: rec.BackedUp,
		}
		return nil
	})
	return wallet, err
}

// ImportWallet stores a wallet, replacing any stored one.
func (s *Store) ImportWallet(phrase string, birthday types.Height, language types.Language, alreadyBackedUp bool) error {
	return s.locked(func() error {
		salt, err := crypto.NewSalt()
		if err != nil {
			return err
		}
		rec := &record{
			Version:  recordVersion,
			KDF:      s.cfg.KDF,
			Salt:     salt,
			Birthday: birthday.Uint64(),
			Language: uint8(language),
			BackedUp: alreadyBackedUp,
		}
		if err := s.seal(rec, []byte(phrase)); err != nil {
			return err
		}
		if err := s.write(rec); err != nil {
			return err
		}
		s.logger.Info("stored wallet",
			zap.Stringer("birthday", birthday),
			zap.Bool("backed_up", alreadyBackedUp),
		)
		return nil
	})
}

// MarkBackupPassed records that the user verified the backup. Marking twice is a no-op.
func (s *Store) MarkBackupPassed() error {
	return s.locked(func() error {
		rec, err := s.read()
		if err != nil {
			return err
		}
		if rec.BackedUp {
			return nil
		}
		// the flag is bound to the ciphertext, reseal under the new value
		phrase, err := s.open(rec)
		if err != nil {
			return err
		}
		rec.BackedUp = true
		if err := s.seal(rec, phrase); err != nil {
			return err
		}
		if err := s.write(rec); err != nil {
			return err
		}
		s.logger.Info("backup marked as passed")
		return nil
	})
}

// Wipe removes the stored wallet. Wiping an empty store is not an error.
func (s *Store) Wipe() error {
	return s.locked(func() error {
		if err := os.Remove(s.path()); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("remove %s: %w", s.path(), err)
		}
		s.logger.Info("wiped wallet credentials")
		return nil
	})
}

func (s *Store) seal(rec *record, phrase []byte) error {
	key, err := crypto.DeriveKey([]byte(s.cfg.Passphrase), rec.Salt, rec.KDF)
	if err != nil {
		return err
	}
	rec.Sealed, err = crypto.AesGCMSeal(key, phrase, s.additional(rec))
	if err != nil {
		return fmt.Errorf("seal seed phrase: %w", err)
	}
	return nil
}

func (s *Store) open(rec *record) ([]byte, error) {
	key, err := crypto.DeriveKey([]byte(s.cfg.Passphrase), rec.Salt, rec.KDF)
	if err != nil {
		return nil, err
	}
	phrase, err := crypto.AesGCMOpen(key, rec.Sealed, s.additional(rec))
	if err != nil {
		return nil, fmt.Errorf("open seed phrase: %w", err)
	}
	return phrase, nil
}

// additional binds the plaintext metadata to the sealed phrase.
func (s *Store) additional(rec *record) []byte {
	return fmt.Appendf(nil, "v%d/%d/%d/%t", rec.Version, rec.Birthday, rec.Language, rec.BackedUp)
}

func (s *Store) read() (*record, error) {
	data, err := os.ReadFile(s.path())
	if errors.Is(err, fs.ErrNotExist) {
		return nil, ErrNotFound
	} else if err != nil {
		return nil, fmt.Errorf("read %s: %w", s.path(), err)
	}
	var rec record
	if err := json.Unmarshal(data, &rec); err != nil {
		return nil, fmt.Errorf("decode %s: %w", s.path(), err)
	}
	if rec.Version != recordVersion {
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedVersion, rec.Version)
	}
	return &rec, nil
}

// write replaces the file atomically, a crash leaves either the old or the new record.
func (s *Store) write(rec *record) error {
	data, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("encode wallet: %w", err)
	}
	if err := os.MkdirAll(s.dir, 0o700); err != nil {
		return fmt.Errorf("create %s: %w", s.dir, err)
	}
	if err := atomic.WriteFile(s.path(), bytes.NewReader(data)); err != nil {
		return fmt.Errorf("write %s: %w", s.path(), err)
	}
	return nil
}
