package bootstrap

import (
	"github.com/spacemeshos/smwallet/common/types"
)

//go:generate mockgen -typed -package=bootstrap -destination=./mocks.go -source=./interface.go

type seedConverter interface {
	Validate(phrase string) error
	ToSeed(phrase string) ([]byte, error)
}

type keyDeriver interface {
	DeriveViewingKeys(seed []byte, accounts int) ([]types.ViewingKey, error)
}

type pathResolver interface {
	CacheDBPath(network types.Network) string
	DataDBPath(network types.Network) string
	PendingDBPath(network types.Network) string
	SpendParamsPath() string
	OutputParamsPath() string
	EnsureNetworkDir(network types.Network) error
}

// Engine is the synchronization engine as seen by the sequencer.
type Engine interface {
	Prepare(cfg *EngineConfig) error
	Start() error
	Stop()
}
