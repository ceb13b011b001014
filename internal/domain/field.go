package domain

import (
	"bytes"
	"encoding/json"
)

// Field is an optional JSON value that records whether the key was present.
// A present null leaves Value nil with Set true. Values of the wrong JSON
// type are dropped as if the key was absent.
type Field[T any] struct {
	Set   bool
	Value *T
}

func (f *Field[T]) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		f.Set = true
		f.Value = nil
		return nil
	}
	var v T
	if err := json.Unmarshal(data, &v); err != nil {
		*f = Field[T]{}
		return nil
	}
	f.Set = true
	f.Value = &v
	return nil
}

// Present reports a non-null value.
func (f Field[T]) Present() bool {
	return f.Set && f.Value != nil
}

// Null reports an explicit JSON null.
func (f Field[T]) Null() bool {
	return f.Set && f.Value == nil
}

// Ptr returns the value, or nil when absent or null.
func (f Field[T]) Ptr() *T {
	if !f.Set {
		return nil
	}
	return f.Value
}

// Of builds a present Field, mostly for tests and internal callers.
func Of[T any](v T) Field[T] {
	return Field[T]{Set: true, Value: &v}
}
