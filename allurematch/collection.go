package allurematch

import (
	"github.com/robotomize/go-allure-match/allure"
	"github.com/robotomize/go-allure-match/match"
)

// HasStep matches nodes with at least one direct step named name that also
// satisfies ms. ms apply to the step, so steps can be nested:
//
//	HasStep("outer", HasStep("inner"))
func HasStep(name string, ms ...match.Matcher[allure.Node]) match.Matcher[allure.Node] {
	return Entry(
		"steps", nodeSteps, match.HasItem(
			append([]match.Matcher[allure.Node]{HasTitle(name)}, ms...)...,
		),
	)
}

// WithSteps matches nodes whose step list has exactly len(ms) steps, the
// i-th satisfying ms[i].
func WithSteps(ms ...match.Matcher[allure.Node]) match.Matcher[allure.Node] {
	return Entry("steps", nodeSteps, match.ContainsExactly(ms...))
}

// ParameterMatcher matches nodes with a parameter named name that also
// satisfies ms.
func ParameterMatcher(name string, ms ...match.Matcher[*allure.Parameter]) match.Matcher[allure.Node] {
	return Entry(
		"parameters", nodeParameters, match.HasItem(
			append([]match.Matcher[*allure.Parameter]{parameterNamed(name)}, ms...)...,
		),
	)
}

// HasParameter matches nodes with a parameter name=value that also
// satisfies ms, e.g. WithExcluded or WithMode.
func HasParameter(name, value string, ms ...match.Matcher[*allure.Parameter]) match.Matcher[allure.Node] {
	return ParameterMatcher(
		name,
		append([]match.Matcher[*allure.Parameter]{Entry("value", parameterValue, match.EqualTo(value))}, ms...)...,
	)
}

// DoesntHaveParameter matches nodes without a parameter named name,
// whatever its value. A node with no parameters at all matches.
func DoesntHaveParameter(name string) match.Matcher[allure.Node] {
	return match.Not(ParameterMatcher(name))
}

func WithExcluded() match.Matcher[*allure.Parameter] {
	return Entry("excluded", parameterExcluded, match.IsTrue())
}

func WithMode(mode string) match.Matcher[*allure.Parameter] {
	return Entry("mode", parameterMode, match.EqualTo(mode))
}

func parameterNamed(name string) match.Matcher[*allure.Parameter] {
	return Entry("name", parameterName, match.EqualTo(name))
}
