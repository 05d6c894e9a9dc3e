// Package duckno is a tiny key/value store on top of an embedded SQL engine.
//
// A Store owns a single SQLite connection (file-backed or in-memory),
// ensures a two-column table exists, and exposes Set, Get and Keys over
// JSON-encoded values:
//   - Set(key, value): upsert a JSON value under a key
//   - Get(key, default): fetch and decode a value, or return default
//   - Keys(): list all keys in ascending order
//
// Values are stored as UTF-8 JSON text in a single table:
//
//	CREATE TABLE IF NOT EXISTS duckno_kv (k TEXT PRIMARY KEY, v TEXT NOT NULL)
//
// The store contract is defined in terms of the Value sum type (Null, Bool,
// Number, String, Array, Object), never the host language's object model.
// Only JSON's own type system survives a Set/Get round trip.
//
// A Store is single-owner: one goroutine opens it, uses it, closes it. No
// internal locking is provided; multi-writer coordination is the caller's
// responsibility or the engine's own file locking.
package duckno
