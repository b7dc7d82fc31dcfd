package engine

import (
	"time"

	"github.com/spacemeshos/smwallet/common/types"
)

// Config of the simulated chain. The chain tip grows by one block every
// BlockTime starting at GenesisHeight at GenesisTime.
type Config struct {
	GenesisTime   time.Time     `mapstructure:"genesis-time"`
	GenesisHeight types.Height  `mapstructure:"genesis-height"`
	BlockTime     time.Duration `mapstructure:"block-time"`
	// Interval between two synchronization steps.
	Interval time.Duration `mapstructure:"interval"`
	// BatchSize is the number of blocks downloaded or scanned per step.
	BatchSize uint64 `mapstructure:"batch-size"`
	// TxEvery is the distance in blocks between two wallet transactions.
	TxEvery uint64 `mapstructure:"tx-every"`
	// StreamBuffer is the capacity of a status stream. Statuses are dropped
	// for subscribers that don't keep up.
	StreamBuffer int `mapstructure:"stream-buffer"`
	// MeterQueries records database query durations.
	MeterQueries bool `mapstructure:"meter-queries"`
}

func DefaultConfig() Config {
	return Config{
		GenesisTime:   time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		GenesisHeight: types.Mainnet().DefaultBirthday,
		BlockTime:     75 * time.Second,
		Interval:      100 * time.Millisecond,
		BatchSize:     10_000,
		TxEvery:       5_000,
		StreamBuffer:  64,
	}
}
