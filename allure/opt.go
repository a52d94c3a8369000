package allure

import (
	"encoding/json"
	"fmt"

	"github.com/google/go-cmp/cmp"
)

type presence uint8

const (
	absent presence = iota
	null
	present
)

// Opt is a document field that may be absent, explicitly null or set.
// The zero value is absent.
type Opt[T any] struct {
	value T
	state presence
}

func Some[T any](v T) Opt[T] {
	return Opt[T]{value: v, state: present}
}

func Null[T any]() Opt[T] {
	return Opt[T]{state: null}
}

// Get returns the value and true only if the field is set to a non-null value.
func (o Opt[T]) Get() (T, bool) {
	return o.value, o.state == present
}

func (o Opt[T]) IsAbsent() bool {
	return o.state == absent
}

func (o Opt[T]) IsNull() bool {
	return o.state == null
}

// IsUnset reports whether the field is absent or explicitly null.
func (o Opt[T]) IsUnset() bool {
	return o.state != present
}

// IsZero makes absent fields disappear under the omitzero tag option.
func (o Opt[T]) IsZero() bool {
	return o.state == absent
}

// Equal reports whether both fields are in the same state and, when set,
// hold equal values. cmp.Equal uses it for records made of Opt fields.
func (o Opt[T]) Equal(other Opt[T]) bool {
	if o.state != other.state {
		return false
	}

	if o.state != present {
		return true
	}

	return cmp.Equal(o.value, other.value)
}

func (o Opt[T]) String() string {
	switch o.state {
	case null:
		return "null"
	case present:
		return fmt.Sprintf("%v", o.value)
	default:
		return "<absent>"
	}
}

func (o Opt[T]) MarshalJSON() ([]byte, error) {
	if o.state != present {
		return []byte("null"), nil
	}

	return json.Marshal(o.value)
}

// UnmarshalJSON is only invoked for keys present in the input, so a missing
// key keeps the field absent.
func (o *Opt[T]) UnmarshalJSON(b []byte) error {
	if string(b) == "null" {
		*o = Null[T]()
		return nil
	}

	var v T
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	*o = Some(v)

	return nil
}
