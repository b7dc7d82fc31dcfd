// Package sql wraps the sqlite databases of the synchronization engine.
//
// The engine keeps two databases per network. The cache database tracks how
// far the chain was downloaded and scanned, the data database holds the
// wallet transactions. Each has its own embedded Schema.
package sql

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	sqlite "github.com/go-llsqlite/crawshaw"
	"github.com/go-llsqlite/crawshaw/sqlitex"
	"go.uber.org/zap"
)

var (
	// ErrNoConnection is returned when the pool is closed or the context ended
	// before a connection was free.
	ErrNoConnection = errors.New("database: no free connection")
	// ErrNotFound is returned if requested record is not found.
	ErrNotFound = errors.New("database: not found")
	// ErrObjectExists is returned if database constraints didn't allow to insert an object.
	ErrObjectExists = errors.New("database: object exists")
	// ErrTooNew is returned if database version is newer than expected.
	ErrTooNew = errors.New("database version is too new")
)

// Executor runs a single statement. Both *Database and *Tx implement it.
type Executor interface {
	Exec(string, Encoder, Decoder) (int, error)
}

// Statement is an sqlite statement.
type Statement = sqlite.Stmt

// Encoder binds parameters, positional (?1) or named (@id).
type Encoder func(*Statement)

// Decoder is called for every row. Returning false stops the iteration.
type Decoder func(*Statement) bool

type conf struct {
	connections int
	meter       bool
	logger      *zap.Logger
	schema      Schema
	migrations  Migrations
}

type Opt func(c *conf)

// WithConnections overwrites number of pooled connections.
func WithConnections(n int) Opt {
	return func(c *conf) {
		c.connections = n
	}
}

func WithLogger(logger *zap.Logger) Opt {
	return func(c *conf) {
		c.logger = logger
	}
}

// WithSchema migrates the database to the embedded schema.
func WithSchema(schema Schema) Opt {
	return func(c *conf) {
		c.schema = schema
		c.migrations = schema.Migrate
	}
}

// WithMigrations replaces the schema migrations.
func WithMigrations(migrations Migrations) Opt {
	return func(c *conf) {
		c.migrations = migrations
	}
}

// WithMigrationsDisabled opens the database as it is.
func WithMigrationsDisabled() Opt {
	return func(c *conf) {
		c.migrations = nil
	}
}

// WithQueryMetering records the duration of every query.
func WithQueryMetering(enable bool) Opt {
	return func(c *conf) {
		c.meter = enable
	}
}

// InMemory creates an in-memory database and panics if there's an error.
// In-memory databases are private to a single connection.
func InMemory(opts ...Opt) *Database {
	opts = append(opts, WithConnections(1))
	db, err := open("file::memory:?mode=memory", 0, opts...)
	if err != nil {
		panic(err)
	}
	return db
}

// Open opens or creates the database at uri in WAL mode and migrates it.
func Open(uri string, opts ...Opt) (*Database, error) {
	flags := sqlite.SQLITE_OPEN_READWRITE |
		sqlite.SQLITE_OPEN_CREATE |
		sqlite.SQLITE_OPEN_WAL |
		sqlite.SQLITE_OPEN_URI |
		sqlite.SQLITE_OPEN_NOMUTEX
	return open(uri, flags, opts...)
}

func open(uri string, flags sqlite.OpenFlags, opts ...Opt) (*Database, error) {
	cfg := &conf{connections: 2, logger: zap.NewNop()}
	for _, opt := range opts {
		opt(cfg)
	}
	pool, err := sqlitex.Open(uri, flags, cfg.connections)
	if err != nil {
		return nil, fmt.Errorf("open db %s: %w", uri, err)
	}
	db := &Database{pool: pool, schema: cfg.schema, meter: cfg.meter}
	if cfg.migrations != nil {
		if err := cfg.migrations(db); err != nil {
			return nil, errors.Join(fmt.Errorf("migrate %s: %w", uri, err), db.Close())
		}
	}
	cfg.logger.Debug("database opened",
		zap.String("uri", uri),
		zap.Stringer("schema", cfg.schema),
		zap.Int("connections", cfg.connections),
	)
	return db, nil
}

// Database is a pool of connections to one sqlite database.
type Database struct {
	pool   *sqlitex.Pool
	schema Schema
	meter  bool

	closeMu sync.Mutex
	closed  bool
}

func (db *Database) begin(ctx context.Context, stmt string) (*Tx, error) {
	conn := db.pool.Get(ctx)
	if conn == nil {
		return nil, ErrNoConnection
	}
	tx := &Tx{db: db, conn: conn}
	if _, err := conn.Prep(stmt).Step(); err != nil {
		db.pool.Put(conn)
		return nil, fmt.Errorf("begin: %w", err)
	}
	return tx, nil
}

// Tx starts a deferred transaction. It takes the write lock with its first
// write statement. The caller must Release it.
func (db *Database) Tx(ctx context.Context) (*Tx, error) {
	return db.begin(ctx, "BEGIN;")
}

// WithTx runs exec in an immediate transaction and commits if exec returned nil.
func (db *Database) WithTx(ctx context.Context, exec func(*Tx) error) error {
	tx, err := db.begin(ctx, "BEGIN IMMEDIATE;")
	if err != nil {
		return err
	}
	defer tx.Release()
	if err := exec(tx); err != nil {
		return err
	}
	return tx.Commit()
}

// Exec runs query on a pooled connection outside of a transaction.
func (db *Database) Exec(query string, encoder Encoder, decoder Decoder) (int, error) {
	conn := db.pool.Get(context.Background())
	if conn == nil {
		return 0, ErrNoConnection
	}
	defer db.pool.Put(conn)
	return db.exec(conn, query, encoder, decoder)
}

// Close closes all pooled connections. It is safe to call Close more than once.
func (db *Database) Close() error {
	db.closeMu.Lock()
	defer db.closeMu.Unlock()
	if db.closed {
		return nil
	}
	if err := db.pool.Close(); err != nil {
		return fmt.Errorf("close pool: %w", err)
	}
	db.closed = true
	return nil
}

func (db *Database) exec(conn *sqlite.Conn, query string, encoder Encoder, decoder Decoder) (int, error) {
	if db.meter {
		defer func(start time.Time) {
			queryDuration.WithLabelValues(db.schema.String()).Observe(time.Since(start).Seconds())
		}(time.Now())
	}
	stmt, err := conn.Prepare(query)
	if err != nil {
		return 0, fmt.Errorf("prepare %s: %w", query, err)
	}
	if encoder != nil {
		encoder(stmt)
	}
	defer stmt.ClearBindings()

	rows := 0
	for {
		row, err := stmt.Step()
		if err != nil {
			switch sqlite.ErrCode(err) {
			case sqlite.SQLITE_CONSTRAINT_PRIMARYKEY, sqlite.SQLITE_CONSTRAINT_UNIQUE:
				return 0, ErrObjectExists
			}
			return 0, fmt.Errorf("step %d: %w", rows, err)
		}
		if !row {
			return rows, nil
		}
		rows++
		if decoder != nil && !decoder(stmt) {
			if err := stmt.Reset(); err != nil {
				return rows, fmt.Errorf("statement reset: %w", err)
			}
			return rows, nil
		}
	}
}

// Tx is a transaction holding one connection of the pool.
type Tx struct {
	db        *Database
	conn      *sqlite.Conn
	committed bool
}

// Commit the transaction.
func (tx *Tx) Commit() error {
	if _, err := tx.conn.Prep("COMMIT;").Step(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	tx.committed = true
	return nil
}

// Release rolls back an uncommitted transaction and returns the connection.
// Every transaction must be released.
func (tx *Tx) Release() error {
	defer tx.db.pool.Put(tx.conn)
	if tx.committed {
		return nil
	}
	if _, err := tx.conn.Prep("ROLLBACK;").Step(); err != nil {
		return fmt.Errorf("rollback: %w", err)
	}
	return nil
}

func (tx *Tx) Exec(query string, encoder Encoder, decoder Decoder) (int, error) {
	return tx.db.exec(tx.conn, query, encoder, decoder)
}
