// Package optional provides a generic presence-aware value wrapper.
//
// The API distinguishes three situations the wire protocol cares about:
// a field that was never supplied (unset, omitted from JSON via omitzero),
// a field explicitly set to null (set, zero pointer), and a field set to a
// value. Model structs also use it for lazily loaded relations, where unset
// means "not fetched yet" rather than "fetched and empty".
package optional

import "encoding/json"

type Optional[T any] struct {
	Val   T
	IsSet bool
}

func Some[T any](v T) Optional[T] {
	return Optional[T]{Val: v, IsSet: true}
}

func None[T any]() Optional[T] {
	return Optional[T]{}
}

// Get returns the value and whether it is set.
func (o Optional[T]) Get() (T, bool) {
	return o.Val, o.IsSet
}

func (o Optional[T]) Unwrap() T {
	if !o.IsSet {
		panic("called Unwrap on a None value")
	}
	return o.Val
}

func (o Optional[T]) UnwrapOr(defaultVal T) T {
	if !o.IsSet {
		return defaultVal
	}
	return o.Val
}

// IsZero reports whether the value is unset, letting the encoding/json
// `omitzero` option drop unset fields from request bodies.
func (o Optional[T]) IsZero() bool {
	return !o.IsSet
}

func (o Optional[T]) MarshalJSON() ([]byte, error) {
	if !o.IsSet {
		return []byte("null"), nil
	}
	return json.Marshal(o.Val)
}

func (o *Optional[T]) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		var zero T
		o.Val = zero
		o.IsSet = false
		return nil
	}
	var v T
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	o.Val = v
	o.IsSet = true
	return nil
}
