package presets

import (
	"os"
	"path/filepath"
	"time"

	"go.uber.org/zap/zapcore"

	"github.com/spacemeshos/smwallet/common/types"
	"github.com/spacemeshos/smwallet/config"
)

func init() {
	register("standalone", standalone())
}

// standalone runs against a short local chain that synchronizes in seconds.
func standalone() config.Config {
	conf := config.DefaultConfig()
	conf.Preset = "standalone"
	conf.NetworkName = types.Testnet().Name
	conf.DataDirParent = filepath.Join(os.TempDir(), "smwallet")
	conf.FileLock = filepath.Join(conf.DataDirParent, "LOCK")

	conf.Sync.Endpoint = "localhost:9067"
	conf.Sync.Confirmations = 2
	conf.Sync.DefaultBirthday = 1

	conf.Timing.RouteDelay = 500 * time.Millisecond

	conf.Engine.GenesisTime = time.Now().Add(-time.Hour).Truncate(time.Second)
	conf.Engine.GenesisHeight = 1
	conf.Engine.BlockTime = 5 * time.Second
	conf.Engine.Interval = 200 * time.Millisecond
	conf.Engine.BatchSize = 50
	conf.Engine.TxEvery = 40

	conf.Projector.RefreshTimeout = 5 * time.Second

	conf.Keystore.KDF.N = 1 << 14

	conf.LOGGING.MachineLoggerLevel = zapcore.DebugLevel.String()
	conf.LOGGING.ProjectorLoggerLevel = zapcore.DebugLevel.String()
	return conf
}
