package syncer

import (
	"context"

	"github.com/spacemeshos/smwallet/common/types"
)

//go:generate mockgen -typed -package=syncer -destination=./mocks.go -source=./interface.go

// statusSource streams engine status. The channel is closed once ctx is done.
type statusSource interface {
	StatusStream(ctx context.Context) (<-chan types.SyncStatusSnapshot, error)
}

type ledger interface {
	Transactions(ctx context.Context) ([]types.Transaction, error)
	Balance(ctx context.Context) (types.WalletBalance, error)
}
