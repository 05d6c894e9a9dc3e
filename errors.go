package duckno

import (
	"errors"
	"fmt"
)

// StoreError represents a failure of a store operation.
//
// Every failure surfaces synchronously at the failing call; nothing is
// swallowed or retried internally. Each operation is all-or-nothing: a
// failed Set leaves prior state untouched.
type StoreError struct {
	// Code identifies the error category.
	Code ErrorCode

	// Op names the failing operation ("open", "set", "get", "keys", "close").
	Op string

	// Key is the affected key, when one exists.
	Key string

	// Err is the underlying cause.
	Err error
}

// ErrorCode categorizes store errors.
type ErrorCode string

const (
	// CodeStorageInit indicates the connection or schema setup failed
	// at construction. Fatal, no retry.
	CodeStorageInit ErrorCode = "STORAGE_INIT"

	// CodeSerialization indicates the value passed to Set is not
	// JSON-encodable. Nothing was written.
	CodeSerialization ErrorCode = "SERIALIZATION"

	// CodeDeserialization indicates stored text failed to decode as JSON
	// on Get. Defensive: should not occur when all writes go through Set.
	CodeDeserialization ErrorCode = "DESERIALIZATION"

	// CodeStorage indicates a generic engine failure during read or write.
	CodeStorage ErrorCode = "STORAGE"

	// CodeClosed indicates an operation was invoked after Close.
	CodeClosed ErrorCode = "CLOSED_RESOURCE"
)

// ErrKeyEmpty is returned when an operation is given an empty key.
var ErrKeyEmpty = errors.New("key must be a non-empty string")

// Error implements the error interface.
func (e *StoreError) Error() string {
	if e.Key != "" && e.Err != nil {
		return fmt.Sprintf("%s: %s %q: %v", e.Code, e.Op, e.Key, e.Err)
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Op, e.Err)
	}
	if e.Key != "" {
		return fmt.Sprintf("%s: %s %q", e.Code, e.Op, e.Key)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Op)
}

// Unwrap returns the underlying cause.
func (e *StoreError) Unwrap() error {
	return e.Err
}

// IsClosed returns true if the error reports use after Close.
// Uses errors.As to handle wrapped errors.
func IsClosed(err error) bool {
	return hasCode(err, CodeClosed)
}

// IsStorageInit returns true if the error reports a failed construction.
func IsStorageInit(err error) bool {
	return hasCode(err, CodeStorageInit)
}

// IsSerialization returns true if the error reports a non-encodable value.
func IsSerialization(err error) bool {
	return hasCode(err, CodeSerialization)
}

// IsDeserialization returns true if the error reports undecodable stored text.
func IsDeserialization(err error) bool {
	return hasCode(err, CodeDeserialization)
}

// IsStorage returns true if the error reports an underlying engine failure.
func IsStorage(err error) bool {
	return hasCode(err, CodeStorage)
}

func hasCode(err error, code ErrorCode) bool {
	var se *StoreError
	if errors.As(err, &se) {
		return se.Code == code
	}
	return false
}

func newStoreError(code ErrorCode, op, key string, err error) *StoreError {
	return &StoreError{Code: code, Op: op, Key: key, Err: err}
}
