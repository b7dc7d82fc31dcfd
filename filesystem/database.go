// Package filesystem locates the wallet's local databases and checks their presence.
package filesystem

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"

	"github.com/spf13/afero"
	"go.uber.org/zap"

	"github.com/spacemeshos/smwallet/common/types"
)

const (
	cacheDBName   = "cache.db"
	dataDBName    = "data.db"
	pendingDBName = "pending.db"
	paramsDir     = "params"
	spendParams   = "sapling-spend.params"
	outputParams  = "sapling-output.params"
)

type Opt func(*DatabaseFiles)

func WithLogger(logger *zap.Logger) Opt {
	return func(d *DatabaseFiles) {
		d.logger = logger
	}
}

// WithFilesystem overrides the os filesystem, mainly for tests.
func WithFilesystem(fs afero.Fs) Opt {
	return func(d *DatabaseFiles) {
		d.fs = fs
	}
}

// DatabaseFiles resolves per network database paths under a data directory.
// Databases of a network live in <dataDir>/<network>; proving parameters are shared.
type DatabaseFiles struct {
	logger  *zap.Logger
	fs      afero.Fs
	dataDir string
}

func NewDatabaseFiles(dataDir string, opts ...Opt) *DatabaseFiles {
	d := &DatabaseFiles{
		logger:  zap.NewNop(),
		fs:      afero.NewOsFs(),
		dataDir: GetCanonicalPath(dataDir),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

func (d *DatabaseFiles) networkDir(network types.Network) string {
	return filepath.Join(d.dataDir, network.Name)
}

func (d *DatabaseFiles) CacheDBPath(network types.Network) string {
	return filepath.Join(d.networkDir(network), cacheDBName)
}

func (d *DatabaseFiles) DataDBPath(network types.Network) string {
	return filepath.Join(d.networkDir(network), dataDBName)
}

func (d *DatabaseFiles) PendingDBPath(network types.Network) string {
	return filepath.Join(d.networkDir(network), pendingDBName)
}

func (d *DatabaseFiles) SpendParamsPath() string {
	return filepath.Join(d.dataDir, paramsDir, spendParams)
}

func (d *DatabaseFiles) OutputParamsPath() string {
	return filepath.Join(d.dataDir, paramsDir, outputParams)
}

// EnsureNetworkDir creates the directory holding the network databases.
func (d *DatabaseFiles) EnsureNetworkDir(network types.Network) error {
	if err := d.fs.MkdirAll(d.networkDir(network), OwnerReadWriteExec); err != nil {
		return fmt.Errorf("create %s: %w", d.networkDir(network), err)
	}
	return nil
}

// FilesPresent reports whether both the cache and data databases exist.
// Failures to stat a file are returned as a presence check ProbeError.
func (d *DatabaseFiles) FilesPresent(network types.Network) (bool, error) {
	for _, path := range []string{d.CacheDBPath(network), d.DataDBPath(network)} {
		exists, err := d.exists(path)
		if err != nil {
			return false, &types.ProbeError{Kind: types.ProbePresenceCheck, Err: err}
		}
		if !exists {
			return false, nil
		}
	}
	return true, nil
}

func (d *DatabaseFiles) exists(path string) (bool, error) {
	_, err := d.fs.Stat(path)
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, fs.ErrNotExist):
		return false, nil
	default:
		return false, fmt.Errorf("stat %s: %w", path, err)
	}
}

// WipeFiles removes the cache, data and pending databases of the network.
// Missing files are not an error.
func (d *DatabaseFiles) WipeFiles(network types.Network) error {
	var errs []error
	for _, path := range []string{
		d.CacheDBPath(network),
		d.DataDBPath(network),
		d.PendingDBPath(network),
	} {
		if err := d.fs.Remove(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
			errs = append(errs, fmt.Errorf("remove %s: %w", path, err))
		}
	}
	if err := errors.Join(errs...); err != nil {
		return err
	}
	d.logger.Info("wiped database files", zap.Stringer("network", network))
	return nil
}
