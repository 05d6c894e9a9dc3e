package duckno

import (
	"errors"
	"fmt"
	"testing"
)

func TestStoreError_Message(t *testing.T) {
	tests := []struct {
		name string
		err  *StoreError
		want string
	}{
		{
			"code and op",
			&StoreError{Code: CodeClosed, Op: "set"},
			"CLOSED_RESOURCE: set",
		},
		{
			"with key",
			&StoreError{Code: CodeStorage, Op: "get", Key: "k"},
			`STORAGE: get "k"`,
		},
		{
			"with cause",
			&StoreError{Code: CodeStorageInit, Op: "open", Err: errors.New("disk full")},
			"STORAGE_INIT: open: disk full",
		},
		{
			"with key and cause",
			&StoreError{Code: CodeSerialization, Op: "set", Key: "k", Err: errors.New("bad value")},
			`SERIALIZATION: set "k": bad value`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestStoreError_Unwrap(t *testing.T) {
	cause := errors.New("root cause")
	err := newStoreError(CodeStorage, "set", "k", cause)

	if !errors.Is(err, cause) {
		t.Error("errors.Is did not reach the wrapped cause")
	}
}

func TestPredicates_MatchWrappedErrors(t *testing.T) {
	wrapped := fmt.Errorf("outer: %w", newStoreError(CodeClosed, "keys", "", nil))

	if !IsClosed(wrapped) {
		t.Error("IsClosed() missed a wrapped CLOSED_RESOURCE error")
	}
	if IsStorage(wrapped) {
		t.Error("IsStorage() matched a CLOSED_RESOURCE error")
	}
	if IsClosed(errors.New("plain")) {
		t.Error("IsClosed() matched a plain error")
	}
}
