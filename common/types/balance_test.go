package types_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/spacemeshos/smwallet/common/types"
)

func TestWalletBalanceClamped(t *testing.T) {
	require.Equal(t,
		types.WalletBalance{Verified: 10, Total: 10},
		types.WalletBalance{Verified: 12, Total: 10}.Clamped(),
	)
	require.Equal(t,
		types.WalletBalance{Verified: 5, Total: 10},
		types.WalletBalance{Verified: 5, Total: 10}.Clamped(),
	)
	require.Equal(t, types.WalletBalance{}, types.WalletBalance{}.Clamped())
}
