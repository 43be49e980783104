package domain

import (
	"bytes"
	"encoding/json"
)

// Field is a tagged optional used in partial-update payloads. It has three
// states: unchanged (the zero value, key absent from the JSON body),
// cleared (key present with a JSON null) and set (key present with a
// value). This removes the ambiguity between "field omitted" and "field
// explicitly emptied" that plain pointers carry through falsy checks.
type Field[T any] struct {
	present bool
	null    bool
	value   T
}

// Set returns a Field carrying the given value.
func Set[T any](v T) Field[T] {
	return Field[T]{present: true, value: v}
}

// Clear returns a Field in the cleared state.
func Clear[T any]() Field[T] {
	return Field[T]{present: true, null: true}
}

// Present reports whether the field was included in the payload at all,
// whether as a value or an explicit null.
func (f Field[T]) Present() bool { return f.present }

// Cleared reports whether the field was explicitly set to null.
func (f Field[T]) Cleared() bool { return f.present && f.null }

// Value returns the carried value and whether the field is in the set
// state. For unchanged or cleared fields the zero value is returned.
func (f Field[T]) Value() (T, bool) {
	if !f.present || f.null {
		var zero T
		return zero, false
	}
	return f.value, true
}

// UnmarshalJSON implements json.Unmarshaler. It is only invoked by
// encoding/json when the key is present in the body, so an absent key
// leaves the field in the unchanged state.
func (f *Field[T]) UnmarshalJSON(b []byte) error {
	f.present = true
	if bytes.Equal(b, []byte("null")) {
		f.null = true
		return nil
	}
	f.null = false
	return json.Unmarshal(b, &f.value)
}

// MarshalJSON implements json.Marshaler for symmetry in tests and logs.
// Unchanged and cleared fields marshal as null.
func (f Field[T]) MarshalJSON() ([]byte, error) {
	if !f.present || f.null {
		return []byte("null"), nil
	}
	return json.Marshal(f.value)
}
