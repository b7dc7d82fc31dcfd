package chain

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/spacemeshos/smwallet/sql"
)

func TestProgress(t *testing.T) {
	db := sql.InMemory(sql.WithSchema(sql.CacheSchema))
	_, err := Get(db)
	require.ErrorIs(t, err, sql.ErrNotFound)

	require.NoError(t, Set(db, Progress{Height: 10, Scanned: 2}))
	require.NoError(t, Set(db, Progress{Height: 12, Scanned: 5}))
	p, err := Get(db)
	require.NoError(t, err)
	require.Equal(t, Progress{Height: 12, Scanned: 5}, p)

	require.NoError(t, Clear(db))
	_, err = Get(db)
	require.ErrorIs(t, err, sql.ErrNotFound)
}
