// Package match is a small hamcrest-style matcher library. A Matcher is an
// immutable predicate over a value that can also explain itself: String
// describes what is expected and DescribeMismatch describes why a concrete
// value was rejected.
package match

import (
	"fmt"
	"reflect"
	"strings"
)

// Matcher checks values of type T.
type Matcher[T any] interface {
	fmt.Stringer

	// Matches reports whether actual satisfies the matcher.
	Matches(actual T) bool

	// DescribeMismatch explains why actual does not satisfy the matcher.
	// The result is unspecified when Matches(actual) is true.
	DescribeMismatch(actual T) string
}

// New builds a Matcher from a predicate. A nil mismatch function falls back
// to "was <actual>".
func New[T any](description string, matches func(T) bool, mismatch func(T) string) Matcher[T] {
	if mismatch == nil {
		mismatch = func(actual T) string {
			return "was " + Describe(actual)
		}
	}

	return &funcMatcher[T]{desc: description, matches: matches, mismatch: mismatch}
}

type funcMatcher[T any] struct {
	desc     string
	matches  func(T) bool
	mismatch func(T) string
}

func (m *funcMatcher[T]) String() string {
	return m.desc
}

func (m *funcMatcher[T]) Matches(actual T) bool {
	return m.matches(actual)
}

func (m *funcMatcher[T]) DescribeMismatch(actual T) string {
	return m.mismatch(actual)
}

// Describe renders a value the way matcher descriptions quote it.
func Describe(v any) string {
	switch x := v.(type) {
	case nil:
		return "nil"
	case string:
		return fmt.Sprintf("%q", x)
	case []byte:
		return fmt.Sprintf("%q", x)
	case fmt.Stringer:
		if rv := reflect.ValueOf(v); rv.Kind() == reflect.Pointer && rv.IsNil() {
			return "nil"
		}
		return x.String()
	default:
		return fmt.Sprintf("%v", x)
	}
}

func indent(s string) string {
	return strings.ReplaceAll(s, "\n", "\n  ")
}
