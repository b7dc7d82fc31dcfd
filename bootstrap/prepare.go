// Package bootstrap turns a stored wallet into a running synchronization engine.
package bootstrap

import (
	"fmt"

	"github.com/spacemeshos/smwallet/common/types"
)

// Accounts is the number of accounts whose viewing keys are derived.
const Accounts = 1

// Steps reported in types.BootstrapError.
const (
	StepWallet  = "wallet"
	StepSeed    = "seed"
	StepDerive  = "derive"
	StepPaths   = "paths"
	StepPrepare = "prepare"
	StepStart   = "start"
)

// Environment bundles the collaborators Prepare needs.
type Environment struct {
	Seeds   seedConverter
	Keys    keyDeriver
	Paths   pathResolver
	Network types.Network
	Config  Config
}

// Prepare builds the engine configuration for a seed phrase and birthday.
// Every failure is returned as *types.BootstrapError.
func Prepare(seedPhrase string, birthday types.Height, env Environment) (*EngineConfig, error) {
	seed, err := env.Seeds.ToSeed(seedPhrase)
	if err != nil {
		return nil, &types.BootstrapError{Step: StepSeed, Err: err}
	}
	keys, err := env.Keys.DeriveViewingKeys(seed, Accounts)
	if err != nil {
		return nil, &types.BootstrapError{Step: StepDerive, Err: err}
	}
	if len(keys) != Accounts {
		return nil, &types.BootstrapError{
			Step: StepDerive,
			Err:  fmt.Errorf("expected %d viewing keys, got %d", Accounts, len(keys)),
		}
	}
	if err := env.Paths.EnsureNetworkDir(env.Network); err != nil {
		return nil, &types.BootstrapError{Step: StepPaths, Err: err}
	}
	cfg := &EngineConfig{
		cacheDB:       env.Paths.CacheDBPath(env.Network),
		dataDB:        env.Paths.DataDBPath(env.Network),
		pendingDB:     env.Paths.PendingDBPath(env.Network),
		spendParams:   env.Paths.SpendParamsPath(),
		outputParams:  env.Paths.OutputParamsPath(),
		endpoint:      env.Config.Endpoint,
		confirmations: env.Config.Confirmations,
		network:       env.Network,
		birthday:      birthday,
	}
	cfg.viewingKeys = make([]types.ViewingKey, len(keys))
	copy(cfg.viewingKeys, keys)
	for i := range cfg.viewingKeys {
		cfg.viewingKeys[i].Key = append([]byte(nil), keys[i].Key...)
	}
	return cfg, nil
}
