package node

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/require"

	"github.com/spacemeshos/smwallet/cmd"
	"github.com/spacemeshos/smwallet/config"
)

func writeConfig(tb testing.TB, content string) string {
	tb.Helper()
	path := filepath.Join(tb.TempDir(), "config.toml")
	require.NoError(tb, os.WriteFile(path, []byte(content), 0o600))
	return path
}

const testConfigFile = `
[main]
network = "testnet"

[timing]
route-delay = "2s"

[engine]
genesis-time = "2024-05-01T00:00:00Z"
batch-size = 7
`

func TestLoadConfigFile(t *testing.T) {
	conf := config.DefaultConfig()
	require.NoError(t, LoadConfig(&conf, "", writeConfig(t, testConfigFile)))
	require.Equal(t, "testnet", conf.NetworkName)
	require.Equal(t, 2*time.Second, conf.Timing.RouteDelay)
	require.Equal(t, time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC), conf.Engine.GenesisTime.UTC())
	require.EqualValues(t, 7, conf.Engine.BatchSize)
	// untouched values keep their defaults
	require.Equal(t, config.DefaultConfig().Projector, conf.Projector)
}

func TestLoadConfigUnknownKey(t *testing.T) {
	conf := config.DefaultConfig()
	err := LoadConfig(&conf, "", writeConfig(t, "[main]\nunknown-key = 1\n"))
	require.ErrorContains(t, err, "unknown-key")
}

func TestLoadConfigPreset(t *testing.T) {
	conf := config.DefaultConfig()
	require.NoError(t, LoadConfig(&conf, "standalone", ""))
	require.Equal(t, "standalone", conf.Preset)
	require.Equal(t, 5*time.Second, conf.Engine.BlockTime)

	conf = config.DefaultConfig()
	require.Error(t, LoadConfig(&conf, "unknown", ""))
}

func TestLoadConfigPresetFromFile(t *testing.T) {
	conf := config.DefaultConfig()
	path := writeConfig(t, "[main]\npreset = \"standalone\"\n[timing]\nroute-delay = \"1s\"\n")
	require.NoError(t, LoadConfig(&conf, "", path))
	require.Equal(t, 5*time.Second, conf.Engine.BlockTime)
	require.Equal(t, time.Second, conf.Timing.RouteDelay)
}

func TestFlagsOverrideConfigFile(t *testing.T) {
	path := writeConfig(t, testConfigFile)
	conf := config.DefaultConfig()
	c := &cobra.Command{}
	cmd.AddFlags(c.Flags(), &conf)
	require.NoError(t, c.ParseFlags([]string{"--route-delay=7s", "--config", path}))

	require.NoError(t, configure(c, path, &conf))
	require.Equal(t, 7*time.Second, conf.Timing.RouteDelay)
	require.Equal(t, "testnet", conf.NetworkName)
}
