// Package config contains smwallet configuration definitions.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/viper"

	"github.com/spacemeshos/smwallet/app"
	"github.com/spacemeshos/smwallet/bootstrap"
	"github.com/spacemeshos/smwallet/common/types"
	"github.com/spacemeshos/smwallet/engine"
	"github.com/spacemeshos/smwallet/filesystem"
	"github.com/spacemeshos/smwallet/syncer"
	"github.com/spacemeshos/smwallet/walletstore"
)

const (
	defaultConfigFileName = "./config.toml"
	defaultDataDirName    = "smwallet"
)

var (
	defaultHomeDir = filesystem.GetUserHomeDirectory()
	defaultDataDir = filepath.Join(defaultHomeDir, defaultDataDirName)
)

// Config defines the top level configuration of the wallet.
type Config struct {
	BaseConfig `mapstructure:"main"`
	Timing     app.Config         `mapstructure:"timing"`
	Keystore   walletstore.Config `mapstructure:"keystore"`
	Sync       SyncConfig         `mapstructure:"sync"`
	Engine     engine.Config      `mapstructure:"engine"`
	Projector  syncer.Config      `mapstructure:"projector"`
	LOGGING    LoggerConfig       `mapstructure:"logging"`
}

// BaseConfig defines the default configuration options of the wallet.
type BaseConfig struct {
	DataDirParent string `mapstructure:"data-folder"`
	FileLock      string `mapstructure:"filelock"`
	ConfigFile    string `mapstructure:"config"`
	// Preset is applied before the config file.
	Preset string `mapstructure:"preset"`
	// NetworkName is either mainnet or testnet.
	NetworkName string `mapstructure:"network"`

	CollectMetrics    bool          `mapstructure:"metrics"`
	MetricsPort       int           `mapstructure:"metrics-port"`
	MetricsPush       string        `mapstructure:"metrics-push"`
	MetricsPushPeriod time.Duration `mapstructure:"metrics-push-period"`
}

// SyncConfig configures the synchronization engine bootstrap.
type SyncConfig struct {
	bootstrap.Config `mapstructure:",squash"`
	// DefaultBirthday overrides the network default when not zero.
	DefaultBirthday types.Height `mapstructure:"default-birthday"`
}

// DataDir returns the absolute path of the wallet data.
func (cfg *Config) DataDir() string {
	return filesystem.GetCanonicalPath(cfg.DataDirParent)
}

// Network returns the parameters of the configured network.
func (cfg *Config) Network() (types.Network, error) {
	var network types.Network
	switch cfg.NetworkName {
	case "", types.Mainnet().Name:
		network = types.Mainnet()
	case types.Testnet().Name:
		network = types.Testnet()
	default:
		return types.Network{}, fmt.Errorf("unknown network %q", cfg.NetworkName)
	}
	if cfg.Sync.DefaultBirthday != 0 {
		network.DefaultBirthday = cfg.Sync.DefaultBirthday
	}
	return network, nil
}

// DefaultConfig returns the default configuration of the wallet.
func DefaultConfig() Config {
	return Config{
		BaseConfig: defaultBaseConfig(),
		Timing:     app.DefaultConfig(),
		Keystore:   walletstore.DefaultConfig(),
		Sync:       SyncConfig{Config: bootstrap.DefaultConfig()},
		Engine:     engine.DefaultConfig(),
		Projector:  syncer.DefaultConfig(),
		LOGGING:    DefaultLoggingConfig(),
	}
}

func defaultBaseConfig() BaseConfig {
	return BaseConfig{
		DataDirParent:     defaultDataDir,
		FileLock:          filepath.Join(os.TempDir(), "smwallet.lock"),
		ConfigFile:        defaultConfigFileName,
		NetworkName:       types.Mainnet().Name,
		MetricsPort:       1010,
		MetricsPushPeriod: time.Minute,
	}
}

// LoadConfig reads the config file into vip. A missing file is not an error
// unless it was requested explicitly.
func LoadConfig(fileLocation string, vip *viper.Viper) error {
	explicit := fileLocation != ""
	if !explicit {
		fileLocation = defaultConfigFileName
	}
	if _, err := os.Stat(fileLocation); err != nil && !explicit {
		return nil
	}
	vip.SetConfigFile(fileLocation)
	if err := vip.ReadInConfig(); err != nil {
		return fmt.Errorf("failed to read config file %w", err)
	}
	return nil
}
