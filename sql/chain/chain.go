// Package chain stores the synchronization progress of the local chain copy.
package chain

import (
	"fmt"

	"github.com/spacemeshos/smwallet/common/types"
	"github.com/spacemeshos/smwallet/sql"
)

// Progress is the downloaded and the scanned height.
type Progress struct {
	Height  types.Height
	Scanned types.Height
}

// Set overwrites the stored progress.
func Set(db sql.Executor, p Progress) error {
	if _, err := db.Exec(`insert into chain (id, height, scanned) values (0, ?1, ?2)
	on conflict(id) do update set height = ?1, scanned = ?2`,
		func(stmt *sql.Statement) {
			stmt.BindInt64(1, int64(p.Height))
			stmt.BindInt64(2, int64(p.Scanned))
		}, nil); err != nil {
		return fmt.Errorf("set progress: %w", err)
	}
	return nil
}

// Get returns the stored progress or sql.ErrNotFound if nothing was stored yet.
func Get(db sql.Executor) (Progress, error) {
	var p Progress
	rows, err := db.Exec("select height, scanned from chain where id = 0", nil,
		func(stmt *sql.Statement) bool {
			p.Height = types.Height(stmt.ColumnInt64(0))
			p.Scanned = types.Height(stmt.ColumnInt64(1))
			return false
		})
	if err != nil {
		return Progress{}, fmt.Errorf("get progress: %w", err)
	}
	if rows == 0 {
		return Progress{}, sql.ErrNotFound
	}
	return p, nil
}

// Clear removes the stored progress.
func Clear(db sql.Executor) error {
	if _, err := db.Exec("delete from chain", nil, nil); err != nil {
		return fmt.Errorf("clear progress: %w", err)
	}
	return nil
}
