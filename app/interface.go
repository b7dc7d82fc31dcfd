package app

import (
	"context"

	"github.com/spacemeshos/smwallet/backup"
	"github.com/spacemeshos/smwallet/bootstrap"
	"github.com/spacemeshos/smwallet/common/types"
)

//go:generate mockgen -typed -package=app -destination=./mocks.go -source=./interface.go

type credentialStore interface {
	KeysPresent() (bool, error)
	ExportWallet() (*types.StoredWallet, error)
	ImportWallet(phrase string, birthday types.Height, language types.Language, alreadyBackedUp bool) error
	Wipe() error
}

type databaseFiles interface {
	FilesPresent(network types.Network) (bool, error)
	WipeFiles(network types.Network) error
}

type seedService interface {
	RandomPhrase() (string, error)
	Validate(phrase string) error
}

type engineStarter interface {
	Generation() uint64
	Run(ctx context.Context, generation uint64, wallet *types.StoredWallet) (*bootstrap.EngineConfig, error)
	Reset()
}

type chainHeight interface {
	LatestHeight(ctx context.Context) (types.Height, error)
}

type backupGate interface {
	Prime(wallet *types.StoredWallet) (*backup.Flow, error)
	MarkPassed() error
}
