package sql

import (
	"bufio"
	"bytes"
	"embed"
	"fmt"
	"io/fs"
	"path"
	"slices"
	"strconv"
	"strings"
)

//go:embed migrations
var embedded embed.FS

// Migrations brings the schema of a freshly opened database up to date.
type Migrations func(Executor) error

// Schema names a set of embedded migrations under migrations/<schema>.
type Schema string

const (
	// CacheSchema is the download and scan progress of the chain.
	CacheSchema Schema = "cache"
	// DataSchema is the wallet transaction history.
	DataSchema Schema = "data"
)

func (s Schema) String() string {
	if s == "" {
		return "none"
	}
	return string(s)
}

type migration struct {
	order int
	name  string
	body  []byte
}

// statements splits the migration on semicolons.
func (m migration) statements() []string {
	scanner := bufio.NewScanner(bytes.NewReader(m.body))
	scanner.Split(func(data []byte, atEOF bool) (int, []byte, error) {
		if i := bytes.IndexByte(data, ';'); i >= 0 {
			return i + 1, data[:i+1], nil
		}
		if atEOF && len(data) > 0 {
			return len(data), data, nil
		}
		return 0, nil, nil
	})
	var out []string
	for scanner.Scan() {
		if query := strings.TrimSpace(scanner.Text()); query != "" && query != ";" {
			out = append(out, query)
		}
	}
	return out
}

func (s Schema) load() ([]migration, error) {
	dir := path.Join("migrations", string(s))
	entries, err := fs.ReadDir(embedded, dir)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", dir, err)
	}
	migrations := make([]migration, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() || path.Ext(entry.Name()) != ".sql" {
			continue
		}
		prefix, _, _ := strings.Cut(entry.Name(), "_")
		order, err := strconv.Atoi(prefix)
		if err != nil {
			return nil, fmt.Errorf("invalid migration %s: %w", entry.Name(), err)
		}
		body, err := fs.ReadFile(embedded, path.Join(dir, entry.Name()))
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", entry.Name(), err)
		}
		migrations = append(migrations, migration{order: order, name: entry.Name(), body: body})
	}
	slices.SortFunc(migrations, func(a, b migration) int { return a.order - b.order })
	return migrations, nil
}

// Version returns the schema version stored in the database.
func Version(db Executor) (int, error) {
	var current int
	if _, err := db.Exec("PRAGMA user_version;", nil, func(stmt *Statement) bool {
		current = stmt.ColumnInt(0)
		return true
	}); err != nil {
		return 0, fmt.Errorf("read user_version: %w", err)
	}
	return current, nil
}

// Migrate applies every migration newer than the database version.
func (s Schema) Migrate(db Executor) error {
	migrations, err := s.load()
	if err != nil {
		return err
	}
	current, err := Version(db)
	if err != nil {
		return err
	}
	if len(migrations) > 0 && current > migrations[len(migrations)-1].order {
		return fmt.Errorf("%w: %s schema at %d", ErrTooNew, s, current)
	}
	for _, m := range migrations {
		if m.order <= current {
			continue
		}
		for _, query := range m.statements() {
			if _, err := db.Exec(query, nil, nil); err != nil {
				return fmt.Errorf("%s: exec %s: %w", m.name, query, err)
			}
		}
		// binding values in pragma statement is not allowed
		if _, err := db.Exec(fmt.Sprintf("PRAGMA user_version = %d;", m.order), nil, nil); err != nil {
			return fmt.Errorf("update user_version to %d: %w", m.order, err)
		}
	}
	return nil
}
