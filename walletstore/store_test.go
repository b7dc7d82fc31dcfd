package walletstore

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/spacemeshos/smwallet/common/types"
	"github.com/spacemeshos/smwallet/crypto"
	"github.com/spacemeshos/smwallet/log/logtest"
)

const phrase = "abandon ability able about above absent absorb abstract absurd abuse access accident"

var testKDF = crypto.KDFParams{N: 1 << 10, R: 8, P: 1}

func testConfig() Config {
	cfg := DefaultConfig()
	cfg.Passphrase = "secret"
	cfg.KDF = testKDF
	return cfg
}

func newStore(t *testing.T, dir string, opts ...Opt) *Store {
	opts = append([]Opt{WithLogger(logtest.New(t))}, opts...)
	return New(dir, testConfig(), opts...)
}

func TestKeysPresent(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "wallet")
	store := newStore(t, dir)

	_, err := store.KeysPresent()
	require.Error(t, err)
	require.Equal(t, types.ProbeUninitialized, types.ProbeKind(err))

	require.NoError(t, os.MkdirAll(dir, 0o700))
	present, err := store.KeysPresent()
	require.NoError(t, err)
	require.False(t, present)

	require.NoError(t, store.ImportWallet(phrase, 100, types.English, false))
	present, err = store.KeysPresent()
	require.NoError(t, err)
	require.True(t, present)
}

func TestKeysPresentOtherFailure(t *testing.T) {
	// a regular file where the store directory should be
	file := filepath.Join(t.TempDir(), "file")
	require.NoError(t, os.WriteFile(file, nil, 0o600))

	store := newStore(t, filepath.Join(file, "wallet"))
	_, err := store.KeysPresent()
	require.Error(t, err)
	require.Equal(t, types.ProbeOther, types.ProbeKind(err))
}

func TestImportExport(t *testing.T) {
	dir := t.TempDir()
	store := newStore(t, dir)

	_, err := store.ExportWallet()
	require.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, store.ImportWallet(phrase, 2_000_000, types.English, true))
	wallet, err := store.ExportWallet()
	require.NoError(t, err)
	require.Equal(t, &types.StoredWallet{
		SeedPhrase:          phrase,
		Birthday:            2_000_000,
		Language:            types.English,
		HasPassedBackupTest: true,
	}, wallet)

	raw, err := os.ReadFile(filepath.Join(dir, "wallet.json"))
	require.NoError(t, err)
	require.NotContains(t, string(raw), "abandon")

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1, "no temporary files are left behind")
}

func TestCredentialFileIsPrivate(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "wallet")
	store := newStore(t, dir)
	require.NoError(t, store.ImportWallet(phrase, 1, types.English, false))
	require.NoError(t, store.MarkBackupPassed())

	info, err := os.Stat(filepath.Join(dir, "wallet.json"))
	require.NoError(t, err)
	require.Zero(t, info.Mode().Perm()&0o077)
	info, err = os.Stat(dir)
	require.NoError(t, err)
	require.Zero(t, info.Mode().Perm()&0o077)
}

func TestRewriteReplacesRecord(t *testing.T) {
	dir := t.TempDir()
	store := newStore(t, dir)
	require.NoError(t, store.ImportWallet(phrase, 1, types.English, false))
	require.NoError(t, store.ImportWallet(phrase, 2, types.English, false))

	wallet, err := store.ExportWallet()
	require.NoError(t, err)
	require.Equal(t, types.Height(2), wallet.Birthday)
}

func TestWrongPassphrase(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, newStore(t, dir).ImportWallet(phrase, 1, types.English, false))

	cfg := testConfig()
	cfg.Passphrase = "guess"
	_, err := New(dir, cfg).ExportWallet()
	require.Error(t, err)
}

func TestStoredKDFParamsAreKept(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, newStore(t, dir).ImportWallet(phrase, 1, types.English, false))

	raw, err := os.ReadFile(filepath.Join(dir, "wallet.json"))
	require.NoError(t, err)
	var rec record
	require.NoError(t, json.Unmarshal(raw, &rec))
	require.Equal(t, testKDF, rec.KDF)

	// a store configured with another cost still opens the wallet
	cfg := testConfig()
	cfg.KDF.N = 1 << 11
	wallet, err := New(dir, cfg).ExportWallet()
	require.NoError(t, err)
	require.Equal(t, phrase, wallet.SeedPhrase)
}

func TestInvalidKDFParams(t *testing.T) {
	cfg := testConfig()
	cfg.KDF.N = 1000
	store := New(t.TempDir(), cfg)
	require.Error(t, store.ImportWallet(phrase, 1, types.English, false))

	present, err := store.KeysPresent()
	require.NoError(t, err)
	require.False(t, present)
}

func TestMarkBackupPassedIdempotent(t *testing.T) {
	store := newStore(t, t.TempDir())
	require.ErrorIs(t, store.MarkBackupPassed(), ErrNotFound)

	require.NoError(t, store.ImportWallet(phrase, 1, types.English, false))
	require.NoError(t, store.MarkBackupPassed())
	require.NoError(t, store.MarkBackupPassed())

	wallet, err := store.ExportWallet()
	require.NoError(t, err)
	require.True(t, wallet.HasPassedBackupTest)
	require.Equal(t, phrase, wallet.SeedPhrase)
}

func TestTamperedFlagIsRejected(t *testing.T) {
	store := newStore(t, t.TempDir())
	require.NoError(t, store.ImportWallet(phrase, 1, types.English, false))

	rec, err := store.read()
	require.NoError(t, err)
	rec.BackedUp = true
	require.NoError(t, store.write(rec))

	_, err = store.ExportWallet()
	require.Error(t, err)
}

func TestWipe(t *testing.T) {
	store := newStore(t, t.TempDir())
	require.NoError(t, store.Wipe())
	require.NoError(t, store.ImportWallet(phrase, 1, types.English, false))
	require.NoError(t, store.Wipe())

	present, err := store.KeysPresent()
	require.NoError(t, err)
	require.False(t, present)
	_, err = store.ExportWallet()
	require.ErrorIs(t, err, ErrNotFound)
}

func TestLockFile(t *testing.T) {
	dir := t.TempDir()
	lock := filepath.Join(dir, "wallet.lock")
	store := newStore(t, dir, WithLockFile(lock))

	require.NoError(t, store.ImportWallet(phrase, 7, types.English, false))
	wallet, err := store.ExportWallet()
	require.NoError(t, err)
	require.Equal(t, types.Height(7), wallet.Birthday)
	require.FileExists(t, lock)
	require.False(t, store.lock.Locked())
}
