package duckno

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
)

// Set stores a JSON value under key, inserting if absent and replacing
// if present. The upsert is a single atomic statement, not a
// read-then-write, so there is no window between existence check and
// write even if the engine is shared with another process.
func (s *Store) Set(ctx context.Context, key string, value Value) error {
	if err := s.check("set", key); err != nil {
		return err
	}

	text, err := MarshalValue(value)
	if err != nil {
		return newStoreError(CodeSerialization, "set", key, err)
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO duckno_kv (k, v) VALUES (?, ?)
		ON CONFLICT(k) DO UPDATE SET v = excluded.v
	`, key, string(text))
	if err != nil {
		return newStoreError(CodeStorage, "set", key, err)
	}

	return nil
}

// Get returns the value stored under key, or def unchanged when the key
// is absent. A nil def makes absence indistinguishable from a stored
// null; pass a sentinel Value when that matters.
//
// Undecodable stored text propagates as a CodeDeserialization error,
// never as def.
func (s *Store) Get(ctx context.Context, key string, def Value) (Value, error) {
	if err := s.check("get", key); err != nil {
		return nil, err
	}

	var text string
	err := s.db.QueryRowContext(ctx, `SELECT v FROM duckno_kv WHERE k = ?`, key).Scan(&text)
	if errors.Is(err, sql.ErrNoRows) {
		return def, nil
	}
	if err != nil {
		return nil, newStoreError(CodeStorage, "get", key, err)
	}

	v, err := UnmarshalValue([]byte(text))
	if err != nil {
		return nil, newStoreError(CodeDeserialization, "get", key, err)
	}
	return v, nil
}

// Keys returns every key currently stored, in ascending order.
func (s *Store) Keys(ctx context.Context) ([]string, error) {
	if err := s.checkOpen("keys"); err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, `SELECT k FROM duckno_kv ORDER BY k`)
	if err != nil {
		return nil, newStoreError(CodeStorage, "keys", "", err)
	}
	defer rows.Close()

	var keys []string
	for rows.Next() {
		var k string
		if err := rows.Scan(&k); err != nil {
			return nil, newStoreError(CodeStorage, "keys", "", err)
		}
		keys = append(keys, k)
	}
	if err := rows.Err(); err != nil {
		return nil, newStoreError(CodeStorage, "keys", "", err)
	}
	return keys, nil
}

// SetAny encodes an arbitrary Go value with encoding/json and stores the
// resulting text under key. Convenience over Set for callers that work
// with native Go types rather than Values.
func (s *Store) SetAny(ctx context.Context, key string, value any) error {
	if err := s.check("set", key); err != nil {
		return err
	}

	data, err := json.Marshal(value)
	if err != nil {
		return newStoreError(CodeSerialization, "set", key, err)
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO duckno_kv (k, v) VALUES (?, ?)
		ON CONFLICT(k) DO UPDATE SET v = excluded.v
	`, key, string(data))
	if err != nil {
		return newStoreError(CodeStorage, "set", key, err)
	}

	return nil
}

// GetAny decodes the value stored under key into out. Returns false
// with a nil error when the key is absent; out is left untouched.
func (s *Store) GetAny(ctx context.Context, key string, out any) (bool, error) {
	if err := s.check("get", key); err != nil {
		return false, err
	}

	var text string
	err := s.db.QueryRowContext(ctx, `SELECT v FROM duckno_kv WHERE k = ?`, key).Scan(&text)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, newStoreError(CodeStorage, "get", key, err)
	}

	if err := json.Unmarshal([]byte(text), out); err != nil {
		return false, newStoreError(CodeDeserialization, "get", key, err)
	}
	return true, nil
}

// check rejects operations on a closed store and empty keys.
func (s *Store) check(op, key string) error {
	if s.closed {
		return newStoreError(CodeClosed, op, "", nil)
	}
	if key == "" {
		return fmt.Errorf("%s: %w", op, ErrKeyEmpty)
	}
	return nil
}

// checkOpen rejects operations on a closed store.
func (s *Store) checkOpen(op string) error {
	if s.closed {
		return newStoreError(CodeClosed, op, "", nil)
	}
	return nil
}
