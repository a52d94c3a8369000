package match

import (
	"fmt"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// MismatchError is returned by Check when a value does not match.
type MismatchError struct {
	Expected string
	But      string
}

func (e *MismatchError) Error() string {
	return fmt.Sprintf("\nExpected: %s\n     but: %s\n", e.Expected, e.But)
}

// Check evaluates m against actual and returns a *MismatchError on failure.
func Check[T any](actual T, m Matcher[T]) error {
	if m.Matches(actual) {
		return nil
	}

	return &MismatchError{
		Expected: m.String(),
		But:      m.DescribeMismatch(actual),
	}
}

type tHelper interface {
	Helper()
}

// AssertThat fails the test and stops it when actual does not match.
func AssertThat[T any](t require.TestingT, actual T, m Matcher[T], msgAndArgs ...any) {
	if h, ok := t.(tHelper); ok {
		h.Helper()
	}

	if err := Check(actual, m); err != nil {
		require.Fail(t, err.Error(), msgAndArgs...)
	}
}

// ExpectThat reports a mismatch like AssertThat but lets the test go on.
func ExpectThat[T any](t assert.TestingT, actual T, m Matcher[T], msgAndArgs ...any) bool {
	if h, ok := t.(tHelper); ok {
		h.Helper()
	}

	if err := Check(actual, m); err != nil {
		return assert.Fail(t, err.Error(), msgAndArgs...)
	}

	return true
}

// Convey adapts m to a goconvey assertion, so it can be used as
// So(actual, match.Convey(m)).
func Convey[T any](m Matcher[T]) func(actual any, expected ...any) string {
	return func(actual any, _ ...any) string {
		v, ok := actual.(T)
		if !ok {
			var want T
			return fmt.Sprintf("Expected a value of type %T, but got %T", want, actual)
		}

		if err := Check(v, m); err != nil {
			return err.Error()
		}

		return ""
	}
}
