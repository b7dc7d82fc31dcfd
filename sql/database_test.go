package sql

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func testTables(db Executor) error {
	if _, err := db.Exec(`create table testing1 (
		id varchar primary key,
		field int
	)`, nil, nil); err != nil {
		return err
	}
	return nil
}

func testURI(tb testing.TB) string {
	tb.Helper()
	return "file:" + filepath.Join(tb.TempDir(), "data.sql")
}

func TestTransactionIsolation(t *testing.T) {
	db := InMemory(WithMigrations(testTables))

	tx, err := db.Tx(context.TODO())
	require.NoError(t, err)

	key := "dsada"
	_, err = tx.Exec("insert into testing1(id, field) values (?1, ?2)", func(stmt *Statement) {
		stmt.BindText(1, key)
		stmt.BindInt64(2, 20)
	}, nil)
	require.NoError(t, err)

	rows, err := tx.Exec("select 1 from testing1 where id = ?1", func(stmt *Statement) {
		stmt.BindText(1, key)
	}, nil)
	require.NoError(t, err)
	require.Equal(t, 1, rows)

	require.NoError(t, tx.Release())

	rows, err = db.Exec("select 1 from testing1 where id = ?1", func(stmt *Statement) {
		stmt.BindText(1, key)
	}, nil)
	require.NoError(t, err)
	require.Equal(t, 0, rows)
}

func TestWithTx(t *testing.T) {
	db := InMemory(WithMigrations(testTables))
	insert := func(tx *Tx, id string) error {
		_, err := tx.Exec("insert into testing1(id, field) values (?1, 1)", func(stmt *Statement) {
			stmt.BindText(1, id)
		}, nil)
		return err
	}

	require.NoError(t, db.WithTx(context.Background(), func(tx *Tx) error {
		return insert(tx, "committed")
	}))
	errRollback := errors.New("rollback")
	require.ErrorIs(t, db.WithTx(context.Background(), func(tx *Tx) error {
		require.NoError(t, insert(tx, "rolled back"))
		return errRollback
	}), errRollback)

	var ids []string
	_, err := db.Exec("select id from testing1", nil, func(stmt *Statement) bool {
		ids = append(ids, stmt.ColumnText(0))
		return true
	})
	require.NoError(t, err)
	require.Equal(t, []string{"committed"}, ids)
}

func TestObjectExists(t *testing.T) {
	db := InMemory(WithMigrations(testTables))
	for i := 0; i < 2; i++ {
		_, err := db.Exec("insert into testing1(id, field) values ('dup', 1)", nil, nil)
		if i == 0 {
			require.NoError(t, err)
		} else {
			require.ErrorIs(t, err, ErrObjectExists)
		}
	}
}

func TestPersistentDatabase(t *testing.T) {
	uri := testURI(t)
	db, err := Open(uri, WithMigrations(testTables))
	require.NoError(t, err)
	_, err = db.Exec("insert into testing1(id, field) values ('kept', 7)", nil, nil)
	require.NoError(t, err)
	require.NoError(t, db.Close())
	require.NoError(t, db.Close())

	db, err = Open(uri, WithMigrationsDisabled())
	require.NoError(t, err)
	t.Cleanup(func() { require.NoError(t, db.Close()) })
	var field int64
	rows, err := db.Exec("select field from testing1 where id = 'kept'", nil, func(stmt *Statement) bool {
		field = stmt.ColumnInt64(0)
		return true
	})
	require.NoError(t, err)
	require.Equal(t, 1, rows)
	require.EqualValues(t, 7, field)
}
