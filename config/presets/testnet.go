package presets

import (
	"time"

	"github.com/spacemeshos/smwallet/common/types"
	"github.com/spacemeshos/smwallet/config"
)

func init() {
	register("testnet", testnet())
}

func testnet() config.Config {
	conf := config.DefaultConfig()
	conf.Preset = "testnet"
	conf.NetworkName = types.Testnet().Name
	conf.Sync.Endpoint = "testnet.lightwalletd.spacemesh.io:9067"
	conf.Sync.Confirmations = 3
	conf.Engine.GenesisHeight = types.Testnet().DefaultBirthday
	conf.Engine.BlockTime = 25 * time.Second
	return conf
}
