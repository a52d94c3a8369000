// Package allurematch builds matchers over Allure test result documents:
// field checks, existential and exact matches over steps, parameters, links
// and attachments, and attachment content checks through a store.Lookup.
//
// Builders return match.Matcher[allure.Node] so the same matcher applies to
// a test result and to any of its (nested) steps:
//
//	allurematch.AssertThat(t, result,
//		allurematch.HasStep("login",
//			allurematch.WithStatus(allure.StatusPass),
//			allurematch.HasParameter("user", "bob"),
//		),
//	)
package allurematch

import (
	"github.com/stretchr/testify/require"

	"github.com/robotomize/go-allure-match/allure"
	"github.com/robotomize/go-allure-match/internal/slice"
	"github.com/robotomize/go-allure-match/match"
)

// Entry matches D when its key field is present and the value satisfies all
// of ms. An absent field never matches; a null field matches only when ms is
// empty.
func Entry[D, T any](key string, get func(D) allure.Opt[T], ms ...match.Matcher[T]) match.Matcher[D] {
	m := match.AllOf(ms...)
	bare := len(ms) == 0

	return match.New(
		key+" "+m.String(),
		func(d D) bool {
			o := get(d)
			switch {
			case o.IsAbsent():
				return false
			case o.IsNull():
				return bare
			}

			v, _ := o.Get()

			return m.Matches(v)
		},
		func(d D) string {
			o := get(d)
			switch {
			case o.IsAbsent():
				return "no " + key
			case o.IsNull():
				return key + " was null"
			}

			v, _ := o.Get()

			return key + " " + m.DescribeMismatch(v)
		},
	)
}

// AssertThat checks a result or step and stops the test on mismatch.
func AssertThat(t require.TestingT, n allure.Node, m match.Matcher[allure.Node], msgAndArgs ...any) {
	if h, ok := t.(interface{ Helper() }); ok {
		h.Helper()
	}

	match.AssertThat(t, n, m, msgAndArgs...)
}

// Check returns a *match.MismatchError when n does not satisfy m.
func Check(n allure.Node, m match.Matcher[allure.Node]) error {
	return match.Check(n, m)
}

// nonNull is a value matcher that rejects an explicit null through Entry.
func nonNull[T any]() match.Matcher[T] {
	return match.New("a non-null value", func(T) bool { return true }, nil)
}

func nodeField[T any](f func(*allure.Executable) allure.Opt[T]) func(allure.Node) allure.Opt[T] {
	return func(n allure.Node) allure.Opt[T] {
		base := allure.Base(n)
		if base == nil {
			return allure.Opt[T]{}
		}

		return f(base)
	}
}

func resultField[T any](f func(*allure.Result) allure.Opt[T]) func(allure.Node) allure.Opt[T] {
	return func(n allure.Node) allure.Opt[T] {
		r, ok := n.(*allure.Result)
		if !ok || r == nil {
			return allure.Opt[T]{}
		}

		return f(r)
	}
}

// field reads a field of a collection element; nil elements have no fields.
func field[E, T any](f func(*E) allure.Opt[T]) func(*E) allure.Opt[T] {
	return func(e *E) allure.Opt[T] {
		if e == nil {
			return allure.Opt[T]{}
		}

		return f(e)
	}
}

func mapOpt[T, R any](o allure.Opt[T], f func(T) R) allure.Opt[R] {
	switch {
	case o.IsAbsent():
		return allure.Opt[R]{}
	case o.IsNull():
		return allure.Null[R]()
	}

	v, _ := o.Get()

	return allure.Some(f(v))
}

var (
	nodeName            = nodeField(func(e *allure.Executable) allure.Opt[string] { return e.Name })
	nodeStatus          = nodeField(func(e *allure.Executable) allure.Opt[string] { return e.Status })
	nodeDescription     = nodeField(func(e *allure.Executable) allure.Opt[string] { return e.Description })
	nodeDescriptionHTML = nodeField(func(e *allure.Executable) allure.Opt[string] { return e.DescriptionHTML })

	nodeStatusDetails = nodeField(func(e *allure.Executable) allure.Opt[*allure.StatusDetails] {
		return e.StatusDetails
	})
	nodeParameters = nodeField(func(e *allure.Executable) allure.Opt[[]*allure.Parameter] {
		return e.Parameters
	})
	nodeAttachments = nodeField(func(e *allure.Executable) allure.Opt[[]*allure.Attachment] {
		return e.Attachments
	})
	nodeSteps = nodeField(func(e *allure.Executable) allure.Opt[[]allure.Node] {
		return mapOpt(e.Steps, func(steps []*allure.Step) []allure.Node {
			return slice.Map(steps, func(s *allure.Step) allure.Node {
				if s == nil {
					return nil
				}
				return s
			})
		})
	})

	resultUUID      = resultField(func(r *allure.Result) allure.Opt[string] { return r.UUID })
	resultHistoryID = resultField(func(r *allure.Result) allure.Opt[string] { return r.HistoryID })
	resultFullName  = resultField(func(r *allure.Result) allure.Opt[string] { return r.FullName })
	resultLinks     = resultField(func(r *allure.Result) allure.Opt[[]*allure.Link] { return r.Links })
	resultLabels    = resultField(func(r *allure.Result) allure.Opt[[]*allure.Label] { return r.Labels })

	detailsMessage = field(func(d *allure.StatusDetails) allure.Opt[string] { return d.Message })
	detailsTrace   = field(func(d *allure.StatusDetails) allure.Opt[string] { return d.Trace })

	parameterName     = field(func(p *allure.Parameter) allure.Opt[string] { return p.Name })
	parameterValue    = field(func(p *allure.Parameter) allure.Opt[string] { return p.Value })
	parameterExcluded = field(func(p *allure.Parameter) allure.Opt[bool] { return p.Excluded })
	parameterMode     = field(func(p *allure.Parameter) allure.Opt[string] { return p.Mode })

	labelName  = field(func(l *allure.Label) allure.Opt[string] { return l.Name })
	labelValue = field(func(l *allure.Label) allure.Opt[string] { return l.Value })

	attachmentName   = field(func(a *allure.Attachment) allure.Opt[string] { return a.Name })
	attachmentType   = field(func(a *allure.Attachment) allure.Opt[string] { return a.Type })
	attachmentSource = field(func(a *allure.Attachment) allure.Opt[string] { return a.Source })
)
