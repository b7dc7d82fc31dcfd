package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/require"

	"github.com/spacemeshos/smwallet/common/types"
)

func TestLoadConfig(t *testing.T) {
	t.Run("explicit missing file", func(t *testing.T) {
		err := LoadConfig(filepath.Join(t.TempDir(), "missing.toml"), viper.New())
		require.ErrorContains(t, err, "failed to read config file")
	})
	t.Run("file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.toml")
		require.NoError(t, os.WriteFile(path, []byte(`
[main]
network = "testnet"

[timing]
route-delay = "1s"
`), 0o600))
		vip := viper.New()
		require.NoError(t, LoadConfig(path, vip))
		require.Equal(t, "testnet", vip.GetString("main.network"))
		require.Equal(t, "1s", vip.GetString("timing.route-delay"))
	})
}

func TestNetwork(t *testing.T) {
	conf := DefaultConfig()
	network, err := conf.Network()
	require.NoError(t, err)
	require.Equal(t, types.Mainnet(), network)

	conf.NetworkName = "testnet"
	conf.Sync.DefaultBirthday = 42
	network, err = conf.Network()
	require.NoError(t, err)
	require.Equal(t, "testnet", network.Name)
	require.Equal(t, types.Height(42), network.DefaultBirthday)

	conf.NetworkName = "devnet"
	_, err = conf.Network()
	require.Error(t, err)
}

func TestDefaults(t *testing.T) {
	conf := DefaultConfig()
	require.Equal(t, 5, conf.Projector.VisibleRows)
	require.Equal(t, "wallet.json", conf.Keystore.FileName)
	require.NotEmpty(t, conf.DataDir())
}
