package sql

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func tables(tb testing.TB, db Executor) []string {
	tb.Helper()
	var names []string
	_, err := db.Exec("select name from sqlite_master where type = 'table' order by name", nil,
		func(stmt *Statement) bool {
			names = append(names, stmt.ColumnText(0))
			return true
		})
	require.NoError(tb, err)
	return names
}

func TestSchemas(t *testing.T) {
	for _, tc := range []struct {
		schema Schema
		tables []string
	}{
		{schema: CacheSchema, tables: []string{"chain"}},
		{schema: DataSchema, tables: []string{"transactions"}},
	} {
		t.Run(tc.schema.String(), func(t *testing.T) {
			db := InMemory(WithSchema(tc.schema))
			require.Equal(t, tc.tables, tables(t, db))
		})
	}
}

func TestMigrationsAppliedOnce(t *testing.T) {
	db := InMemory(WithSchema(DataSchema))

	version, err := Version(db)
	require.NoError(t, err)

	migrations, err := DataSchema.load()
	require.NoError(t, err)
	require.NotEmpty(t, migrations)
	require.Equal(t, migrations[len(migrations)-1].order, version)

	require.NoError(t, DataSchema.Migrate(db))
	again, err := Version(db)
	require.NoError(t, err)
	require.Equal(t, version, again)
}

func TestMigrationsRejectNewerSchema(t *testing.T) {
	db := InMemory()
	_, err := db.Exec("PRAGMA user_version = 1000;", nil, nil)
	require.NoError(t, err)
	require.ErrorIs(t, CacheSchema.Migrate(db), ErrTooNew)
}

func TestUnknownSchema(t *testing.T) {
	require.Error(t, Schema("missing").Migrate(InMemory()))
}

func TestMigrationStatements(t *testing.T) {
	m := migration{body: []byte("create table a (id int);\n\ncreate index b on a (id);\n")}
	require.Equal(t, []string{
		"create table a (id int);",
		"create index b on a (id);",
	}, m.statements())
}
