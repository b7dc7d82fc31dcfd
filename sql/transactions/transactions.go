package transactions

import (
	"fmt"
	"time"

	"github.com/spacemeshos/smwallet/common/types"
	"github.com/spacemeshos/smwallet/sql"
)

const fields = "id, timestamp, amount, fee, direction, status, mined_height, address, memo"

// Add inserts the transaction or updates the mutable fields of a known one.
func Add(db sql.Executor, tx types.Transaction) error {
	if _, err := db.Exec(`insert into transactions (`+fields+`)
	values (?1, ?2, ?3, ?4, ?5, ?6, ?7, ?8, ?9)
	on conflict(id) do update set
		timestamp = ?2, status = ?6, mined_height = ?7`,
		func(stmt *sql.Statement) {
			stmt.BindText(1, string(tx.ID))
			stmt.BindInt64(2, tx.Timestamp.UnixNano())
			stmt.BindInt64(3, int64(tx.Amount))
			stmt.BindInt64(4, int64(tx.Fee))
			stmt.BindInt64(5, int64(tx.Direction))
			stmt.BindInt64(6, int64(tx.Status))
			stmt.BindInt64(7, int64(tx.MinedHeight))
			stmt.BindText(8, tx.Address)
			stmt.BindText(9, tx.Memo)
		}, nil); err != nil {
		return fmt.Errorf("insert %s: %w", tx.ID, err)
	}
	return nil
}

// SetStatus updates the confirmation status of a stored transaction.
func SetStatus(db sql.Executor, id types.TransactionID, status types.TxStatus, height types.Height) error {
	rows, err := db.Exec("update transactions set status = ?2, mined_height = ?3 where id = ?1 returning id",
		func(stmt *sql.Statement) {
			stmt.BindText(1, string(id))
			stmt.BindInt64(2, int64(status))
			stmt.BindInt64(3, int64(height))
		}, nil)
	if err != nil {
		return fmt.Errorf("set status %s: %w", id, err)
	}
	if rows == 0 {
		return fmt.Errorf("%w: tx %s", sql.ErrNotFound, id)
	}
	return nil
}

// Delete transaction from database.
func Delete(db sql.Executor, id types.TransactionID) error {
	if _, err := db.Exec("delete from transactions where id = ?1",
		func(stmt *sql.Statement) {
			stmt.BindText(1, string(id))
		}, nil); err != nil {
		return fmt.Errorf("delete %s: %w", id, err)
	}
	return nil
}

func decode(stmt *sql.Statement) types.Transaction {
	return types.Transaction{
		ID:          types.TransactionID(stmt.ColumnText(0)),
		Timestamp:   time.Unix(0, stmt.ColumnInt64(1)),
		Amount:      types.Amount(stmt.ColumnInt64(2)),
		Fee:         types.Amount(stmt.ColumnInt64(3)),
		Direction:   types.Direction(stmt.ColumnInt64(4)),
		Status:      types.TxStatus(stmt.ColumnInt64(5)),
		MinedHeight: types.Height(stmt.ColumnInt64(6)),
		Address:     stmt.ColumnText(7),
		Memo:        stmt.ColumnText(8),
	}
}

// Get transaction from database.
func Get(db sql.Executor, id types.TransactionID) (types.Transaction, error) {
	var tx types.Transaction
	rows, err := db.Exec("select "+fields+" from transactions where id = ?1",
		func(stmt *sql.Statement) {
			stmt.BindText(1, string(id))
		}, func(stmt *sql.Statement) bool {
			tx = decode(stmt)
			return false
		})
	if err != nil {
		return types.Transaction{}, fmt.Errorf("get %s: %w", id, err)
	}
	if rows == 0 {
		return types.Transaction{}, fmt.Errorf("%w: tx %s", sql.ErrNotFound, id)
	}
	return tx, nil
}

// Has returns true if transaction is stored in the database.
func Has(db sql.Executor, id types.TransactionID) (bool, error) {
	rows, err := db.Exec("select 1 from transactions where id = ?1",
		func(stmt *sql.Statement) {
			stmt.BindText(1, string(id))
		}, nil)
	if err != nil {
		return false, fmt.Errorf("has %s: %w", id, err)
	}
	return rows > 0, nil
}

// All returns every transaction, newest first.
func All(db sql.Executor) ([]types.Transaction, error) {
	var txs []types.Transaction
	if _, err := db.Exec("select "+fields+" from transactions order by timestamp desc, id",
		nil, func(stmt *sql.Statement) bool {
			txs = append(txs, decode(stmt))
			return true
		}); err != nil {
		return nil, fmt.Errorf("select all: %w", err)
	}
	return txs, nil
}

// Pending returns unconfirmed transactions, oldest first.
func Pending(db sql.Executor) ([]types.Transaction, error) {
	var txs []types.Transaction
	if _, err := db.Exec("select "+fields+" from transactions where status = ?1 order by timestamp, id",
		func(stmt *sql.Statement) {
			stmt.BindInt64(1, int64(types.TxUnconfirmed))
		}, func(stmt *sql.Statement) bool {
			txs = append(txs, decode(stmt))
			return true
		}); err != nil {
		return nil, fmt.Errorf("select pending: %w", err)
	}
	return txs, nil
}

// Balance computes the wallet balance from stored transactions. Incoming funds
// count towards the total once confirmed and towards the verified balance once
// mined at or below verifiedAt. Outgoing funds and fees are deducted from both
// as soon as they are known. Failed transactions are ignored.
func Balance(db sql.Executor, verifiedAt types.Height) (types.WalletBalance, error) {
	var (
		credit, verified, debit uint64
	)
	if _, err := db.Exec("select amount, fee, direction, status, mined_height from transactions where status != ?1",
		func(stmt *sql.Statement) {
			stmt.BindInt64(1, int64(types.TxFailed))
		}, func(stmt *sql.Statement) bool {
			amount := uint64(stmt.ColumnInt64(0))
			fee := uint64(stmt.ColumnInt64(1))
			status := types.TxStatus(stmt.ColumnInt64(3))
			height := types.Height(stmt.ColumnInt64(4))
			switch types.Direction(stmt.ColumnInt64(2)) {
			case types.Incoming:
				if status == types.TxConfirmed {
					credit += amount
					if height <= verifiedAt {
						verified += amount
					}
				}
			case types.Outgoing:
				debit += amount + fee
			case types.Shielding:
				debit += fee
			}
			return true
		}); err != nil {
		return types.WalletBalance{}, fmt.Errorf("balance: %w", err)
	}
	return types.WalletBalance{
		Verified: types.Amount(subtract(verified, debit)),
		Total:    types.Amount(subtract(credit, debit)),
	}, nil
}

func subtract(a, b uint64) uint64 {
	if b > a {
		return 0
	}
	return a - b
}
