package bootstrap

import (
	"slices"

	"go.uber.org/zap/zapcore"

	"github.com/spacemeshos/smwallet/common/types"
)

// Config holds the engine settings that don't come from the wallet.
type Config struct {
	// Endpoint of the lightwalletd compatible server the engine syncs from.
	Endpoint string `mapstructure:"endpoint"`
	// Confirmations before a transaction counts towards the verified balance.
	Confirmations uint32 `mapstructure:"confirmations"`
}

func DefaultConfig() Config {
	return Config{
		Endpoint:      "mainnet.lightwalletd.spacemesh.io:9067",
		Confirmations: 10,
	}
}

// EngineConfig is everything the synchronization engine needs to start.
// It is immutable once built by Prepare.
type EngineConfig struct {
	cacheDB       string
	dataDB        string
	pendingDB     string
	spendParams   string
	outputParams  string
	endpoint      string
	confirmations uint32
	network       types.Network
	viewingKeys   []types.ViewingKey
	birthday      types.Height
}

func (c *EngineConfig) CacheDBPath() string      { return c.cacheDB }
func (c *EngineConfig) DataDBPath() string       { return c.dataDB }
func (c *EngineConfig) PendingDBPath() string    { return c.pendingDB }
func (c *EngineConfig) SpendParamsPath() string  { return c.spendParams }
func (c *EngineConfig) OutputParamsPath() string { return c.outputParams }
func (c *EngineConfig) Endpoint() string         { return c.endpoint }
func (c *EngineConfig) Confirmations() uint32    { return c.confirmations }
func (c *EngineConfig) Network() types.Network   { return c.network }
func (c *EngineConfig) Birthday() types.Height   { return c.birthday }

// ViewingKeys returns a copy of the derived keys.
func (c *EngineConfig) ViewingKeys() []types.ViewingKey {
	keys := slices.Clone(c.viewingKeys)
	for i := range keys {
		keys[i].Key = slices.Clone(keys[i].Key)
	}
	return keys
}

// MarshalLogObject implements zapcore.ObjectMarshaler.
func (c *EngineConfig) MarshalLogObject(enc zapcore.ObjectEncoder) error {
	enc.AddString("network", c.network.Name)
	enc.AddString("endpoint", c.endpoint)
	enc.AddString("data_db", c.dataDB)
	enc.AddUint64("birthday", c.birthday.Uint64())
	enc.AddInt("viewing_keys", len(c.viewingKeys))
	return nil
}
