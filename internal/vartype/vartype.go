// SPDX-FileCopyrightText: Winni Neessen <wn@neessen.dev>
//
// SPDX-License-Identifier: MIT

// Package vartype provides value wrappers that remember whether a value was ever provided.
package vartype

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// VarFloat64 is a type alias for Variable[float64], representing a float64 value with initialization tracking.
type VarFloat64 = Variable[float64]

var jsonNull = []byte("null")

// Variable represents a generic type wrapper that holds a value and tracks its initialization state.
// The zero Variable is unset and its Value is the zero value of T.
type Variable[T any] struct {
	value T
	isset bool
}

// NewVariable creates and returns a new Variable instance initialized with the provided value.
func NewVariable[T any](value T) Variable[T] {
	return Variable[T]{
		isset: true,
		value: value,
	}
}

// Reset clears the value of the Variable and marks it as uninitialized.
func (v *Variable[T]) Reset() {
	var newVal T
	v.value = newVal
	v.isset = false
}

// Value retrieves the current value stored in the Variable. Unset variables yield the zero value.
func (v Variable[T]) Value() T {
	return v.value
}

// Set assigns the provided value to the Variable and marks it as initialized.
func (v *Variable[T]) Set(val T) {
	v.value = val
	v.isset = true
}

// IsSet returns true if the Variable has been initialized with a value, otherwise false.
func (v Variable[T]) IsSet() bool {
	return v.isset
}

// String returns a string representation of the Variable. If uninitialized, it returns a default placeholder message.
func (v Variable[T]) String() string {
	if !v.isset {
		return "not provided"
	}
	return fmt.Sprint(v.value)
}

// UnmarshalJSON decodes a JSON value into the Variable. A JSON null leaves the Variable unset.
func (v *Variable[T]) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || bytes.Equal(b, jsonNull) {
		v.Reset()
		return nil
	}
	var val T
	if err := json.Unmarshal(b, &val); err != nil {
		return fmt.Errorf("failed to decode variable: %w", err)
	}
	v.Set(val)
	return nil
}

// MarshalJSON encodes the Variable, writing null for unset values.
func (v Variable[T]) MarshalJSON() ([]byte, error) {
	if !v.isset {
		return jsonNull, nil
	}
	return json.Marshal(v.value)
}
