package match

import (
	"strings"

	"github.com/robotomize/go-allure-match/internal/slice"
)

// Anything matches every value.
func Anything[T any]() Matcher[T] {
	return New("anything", func(T) bool { return true }, nil)
}

// AllOf matches when every matcher does. With no matchers it matches
// anything, with one it is that matcher.
func AllOf[T any](ms ...Matcher[T]) Matcher[T] {
	switch len(ms) {
	case 0:
		return Anything[T]()
	case 1:
		return ms[0]
	}

	return &allOf[T]{ms: append([]Matcher[T](nil), ms...)}
}

type allOf[T any] struct {
	ms []Matcher[T]
}

func (m *allOf[T]) String() string {
	return "(" + strings.Join(descriptions(m.ms), " and ") + ")"
}

func (m *allOf[T]) Matches(actual T) bool {
	_, failed := slice.Find(m.ms, func(sub Matcher[T]) bool {
		return !sub.Matches(actual)
	})

	return !failed
}

func (m *allOf[T]) DescribeMismatch(actual T) string {
	sub, ok := slice.Find(m.ms, func(sub Matcher[T]) bool {
		return !sub.Matches(actual)
	})
	if !ok {
		return "matched"
	}

	return sub.String() + " " + sub.DescribeMismatch(actual)
}

// AnyOf matches when at least one matcher does. With no matchers it matches
// nothing.
func AnyOf[T any](ms ...Matcher[T]) Matcher[T] {
	return &anyOf[T]{ms: append([]Matcher[T](nil), ms...)}
}

type anyOf[T any] struct {
	ms []Matcher[T]
}

func (m *anyOf[T]) String() string {
	return "(" + strings.Join(descriptions(m.ms), " or ") + ")"
}

func (m *anyOf[T]) Matches(actual T) bool {
	_, ok := slice.Find(m.ms, func(sub Matcher[T]) bool {
		return sub.Matches(actual)
	})

	return ok
}

func (m *anyOf[T]) DescribeMismatch(actual T) string {
	if len(m.ms) == 0 {
		return "nothing can match " + Describe(actual)
	}

	return strings.Join(
		slice.Map(m.ms, func(sub Matcher[T]) string {
			return sub.String() + " " + sub.DescribeMismatch(actual)
		}), " and ",
	)
}

// Not inverts a matcher.
func Not[T any](m Matcher[T]) Matcher[T] {
	return &not[T]{m: m}
}

type not[T any] struct {
	m Matcher[T]
}

func (n *not[T]) String() string {
	return "not " + n.m.String()
}

func (n *not[T]) Matches(actual T) bool {
	return !n.m.Matches(actual)
}

func (n *not[T]) DescribeMismatch(actual T) string {
	return "was " + Describe(actual)
}

// Transform applies m to f(actual). The description names what f extracts.
func Transform[From, To any](description string, f func(From) To, m Matcher[To]) Matcher[From] {
	return &transform[From, To]{desc: description, f: f, m: m}
}

type transform[From, To any] struct {
	desc string
	f    func(From) To
	m    Matcher[To]
}

func (t *transform[From, To]) String() string {
	return t.desc + " " + t.m.String()
}

func (t *transform[From, To]) Matches(actual From) bool {
	return t.m.Matches(t.f(actual))
}

func (t *transform[From, To]) DescribeMismatch(actual From) string {
	return t.desc + " " + t.m.DescribeMismatch(t.f(actual))
}

func descriptions[T any](ms []Matcher[T]) []string {
	return slice.Map(ms, func(m Matcher[T]) string {
		return m.String()
	})
}
