package match

import (
	"fmt"
	"strings"

	"github.com/robotomize/go-allure-match/internal/slice"
)

// HasItem matches sequences where at least one element satisfies all of
// ms. Element order does not matter.
func HasItem[T any](ms ...Matcher[T]) Matcher[[]T] {
	return &hasItem[T]{m: AllOf(ms...)}
}

type hasItem[T any] struct {
	m Matcher[T]
}

func (h *hasItem[T]) String() string {
	return "a sequence containing " + h.m.String()
}

func (h *hasItem[T]) Matches(actual []T) bool {
	_, ok := slice.Find(actual, h.m.Matches)

	return ok
}

// DescribeMismatch lists the reason every element was rejected.
func (h *hasItem[T]) DescribeMismatch(actual []T) string {
	if len(actual) == 0 {
		return "was empty"
	}

	var b strings.Builder
	b.WriteString("no item matched")
	for idx, item := range actual {
		fmt.Fprintf(&b, "\n  item %d: %s", idx, indent(h.m.DescribeMismatch(item)))
	}

	return b.String()
}

// ContainsExactly matches sequences of exactly len(ms) elements where
// element i satisfies ms[i].
func ContainsExactly[T any](ms ...Matcher[T]) Matcher[[]T] {
	return &containsExactly[T]{ms: append([]Matcher[T](nil), ms...)}
}

type containsExactly[T any] struct {
	ms []Matcher[T]
}

func (c *containsExactly[T]) String() string {
	return "a sequence of exactly [" + strings.Join(descriptions(c.ms), ", ") + "]"
}

func (c *containsExactly[T]) Matches(actual []T) bool {
	if len(actual) != len(c.ms) {
		return false
	}

	for idx := range c.ms {
		if !c.ms[idx].Matches(actual[idx]) {
			return false
		}
	}

	return true
}

func (c *containsExactly[T]) DescribeMismatch(actual []T) string {
	if len(actual) != len(c.ms) {
		return fmt.Sprintf(
			"expected %d items, got %d: [%s]", len(c.ms), len(actual), strings.Join(
				slice.Map(actual, func(t T) string {
					return Describe(t)
				}), ", ",
			),
		)
	}

	for idx := range c.ms {
		if !c.ms[idx].Matches(actual[idx]) {
			return fmt.Sprintf(
				"item %d: expected %s but %s", idx, c.ms[idx], indent(c.ms[idx].DescribeMismatch(actual[idx])),
			)
		}
	}

	return "matched"
}

// HasLen matches sequences of length n.
func HasLen[T any](n int) Matcher[[]T] {
	return New(
		fmt.Sprintf("a sequence of length %d", n),
		func(actual []T) bool {
			return len(actual) == n
		},
		func(actual []T) string {
			return fmt.Sprintf("had length %d", len(actual))
		},
	)
}
