package match

import (
	"fmt"
	"reflect"
	"regexp"
	"strings"

	"github.com/google/go-cmp/cmp"
)

// EqualTo matches values equal to expected under cmp.Equal.
func EqualTo[T any](expected T, opts ...cmp.Option) Matcher[T] {
	return New(
		Describe(expected),
		func(actual T) bool {
			return cmp.Equal(expected, actual, opts...)
		},
		func(actual T) string {
			switch reflect.ValueOf(actual).Kind() {
			case reflect.Struct, reflect.Map, reflect.Slice, reflect.Array:
				return fmt.Sprintf("differs (-want, +got):\n%s", cmp.Diff(expected, actual, opts...))
			default:
				return "was " + Describe(actual)
			}
		},
	)
}

// ContainsString matches strings containing substr.
func ContainsString(substr string) Matcher[string] {
	return New(
		fmt.Sprintf("a string containing %q", substr),
		func(actual string) bool {
			return strings.Contains(actual, substr)
		},
		nil,
	)
}

// StartsWith matches strings beginning with prefix.
func StartsWith(prefix string) Matcher[string] {
	return New(
		fmt.Sprintf("a string starting with %q", prefix),
		func(actual string) bool {
			return strings.HasPrefix(actual, prefix)
		},
		nil,
	)
}

// MatchesRegexp matches strings the expression finds a match in. It panics
// on an invalid expression, like regexp.MustCompile.
func MatchesRegexp(expr string) Matcher[string] {
	re := regexp.MustCompile(expr)

	return New(
		fmt.Sprintf("a string matching /%s/", expr),
		re.MatchString,
		nil,
	)
}

// IsTrue matches the boolean true.
func IsTrue() Matcher[bool] {
	return EqualTo(true)
}
