package filesystem

import (
	"path/filepath"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"
)

func TestGetFullDirectoryPath(t *testing.T) {
	fs := afero.NewMemMapFs()
	path, err := GetFullDirectoryPath(fs, "/tmp/wallet/../wallet/data")
	require.NoError(t, err)
	require.Equal(t, filepath.FromSlash("/tmp/wallet/data"), path)

	info, err := fs.Stat(path)
	require.NoError(t, err)
	require.True(t, info.IsDir())
}

func TestGetUserHomeDirectory(t *testing.T) {
	t.Setenv("HOME", "/home/wallet")
	require.Equal(t, "/home/wallet", GetUserHomeDirectory())
}

func TestGetCanonicalPath(t *testing.T) {
	t.Setenv("HOME", "/home/wallet")
	t.Setenv("WALLET_DIR", "/var/wallet")
	for _, tc := range []struct {
		path     string
		expected string
	}{
		{"", "."},
		{".", "."},
		{"smwallet", "smwallet"},
		{"smwallet/../test", "test"},
		{"smwallet/../..", ".."},
		{"a/b/../c/d/..", "a/c"},
		{"~/smwallet/test/../data", "/home/wallet/smwallet/data"},
		{"${WALLET_DIR}/data", "/var/wallet/data"},
		{"/smwallet/../test", "/test"},
	} {
		t.Run(tc.path, func(t *testing.T) {
			require.Equal(t, filepath.FromSlash(tc.expected), GetCanonicalPath(tc.path))
		})
	}
}
