package presets

import "github.com/spacemeshos/smwallet/config"

func init() {
	register("mainnet", mainnet())
}

func mainnet() config.Config {
	conf := config.DefaultConfig()
	conf.Preset = "mainnet"
	return conf
}
