package duckno

import (
	"database/sql"
	_ "embed"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"
)

//go:embed schema.sql
var schemaSQL string

const (
	// DefaultFilename is the database file created in the working
	// directory when no location is given.
	DefaultFilename = "duckno.db"

	// MemoryLocation is the sentinel location selecting an ephemeral
	// in-memory database.
	MemoryLocation = ":memory:"
)

// Options configures store construction.
type Options struct {
	// Location is a file path or the literal ":memory:". Empty selects
	// DefaultFilename in the current working directory. A path naming an
	// existing directory places DefaultFilename inside it; a path with
	// no extension gets ".db" appended.
	Location string

	// InMemory forces an ephemeral, non-persisted store. Takes
	// precedence over Location when both are set.
	InMemory bool
}

// Store is a key/value store over a single SQLite connection.
//
// A Store has two states, Open and Closed; Close is the only transition
// and it is one-way. After Close every operation fails with a
// CodeClosed StoreError.
//
// Not safe for concurrent use: the connection is exclusively owned by
// one Store and the design assumes single-owner access.
type Store struct {
	db     *sql.DB
	path   string // "" when in-memory
	closed bool
}

// Open creates or opens a store at the resolved location.
// The schema is created if absent; opening is idempotent.
//
// The connection is configured with:
//   - a single pooled connection (SQLite supports one writer)
//   - WAL mode and NORMAL synchronous for file-backed databases
//   - 5-second busy timeout for lock contention
func Open(opts Options) (*Store, error) {
	dsn, path, err := resolveLocation(opts)
	if err != nil {
		return nil, newStoreError(CodeStorageInit, "open", "", err)
	}

	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, newStoreError(CodeStorageInit, "open", "", err)
	}

	// One connection only. With more, each pool connection would race
	// for the write lock, and a plain in-memory DSN would hand every
	// connection its own private database.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, newStoreError(CodeStorageInit, "open", "", err)
	}

	if err := applyPragmas(db); err != nil {
		db.Close()
		return nil, newStoreError(CodeStorageInit, "open", "", err)
	}

	if _, err := db.Exec(schemaSQL); err != nil {
		db.Close()
		return nil, newStoreError(CodeStorageInit, "open", "", fmt.Errorf("create schema: %w", err))
	}

	return &Store{db: db, path: path}, nil
}

// Do opens a store, runs fn with it, and guarantees exactly one Close on
// every exit path. A Close error is reported only when fn itself succeeded.
func Do(opts Options, fn func(*Store) error) (err error) {
	s, err := Open(opts)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := s.Close(); err == nil {
			err = cerr
		}
	}()
	return fn(s)
}

// Close releases the underlying connection.
// Idempotent: closing a closed store is a no-op.
func (s *Store) Close() error {
	if s.closed || s.db == nil {
		return nil
	}
	s.closed = true
	if err := s.db.Close(); err != nil {
		return newStoreError(CodeStorage, "close", "", err)
	}
	return nil
}

// DatabasePath returns the resolved database file path, or "" when the
// store is in-memory.
func (s *Store) DatabasePath() string {
	return s.path
}

// resolveLocation turns Options into a driver DSN and, for file-backed
// stores, the resolved path. InMemory wins over a non-sentinel Location.
func resolveLocation(opts Options) (dsn, path string, err error) {
	if opts.InMemory || opts.Location == MemoryLocation {
		// A named shared-cache database outlives any single pooled
		// connection while staying private to this Store instance.
		name := uuid.Must(uuid.NewV7()).String()
		return fmt.Sprintf("file:duckno-%s?mode=memory&cache=shared", name), "", nil
	}

	loc := opts.Location
	switch {
	case loc == "":
		wd, werr := os.Getwd()
		if werr != nil {
			return "", "", fmt.Errorf("resolve working directory: %w", werr)
		}
		path = filepath.Join(wd, DefaultFilename)
	default:
		if info, serr := os.Stat(loc); serr == nil && info.IsDir() {
			path = filepath.Join(loc, DefaultFilename)
		} else if filepath.Ext(loc) == "" {
			path = loc + ".db"
		} else {
			path = loc
		}
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return "", "", fmt.Errorf("create parent directory: %w", err)
		}
	}
	return path, path, nil
}

// applyPragmas sets required SQLite configuration.
func applyPragmas(db *sql.DB) error {
	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA synchronous = NORMAL",
		"PRAGMA busy_timeout = 5000",
	}

	for _, pragma := range pragmas {
		if _, err := db.Exec(pragma); err != nil {
			return fmt.Errorf("failed to execute %q: %w", pragma, err)
		}
	}

	return nil
}
