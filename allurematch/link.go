package allurematch

import (
	"fmt"

	"github.com/robotomize/go-allure-match/allure"
	"github.com/robotomize/go-allure-match/match"
)

var linkAttrs = map[string]func(*allure.Link) allure.Opt[string]{
	"url":  field(func(l *allure.Link) allure.Opt[string] { return l.URL }),
	"type": field(func(l *allure.Link) allure.Opt[string] { return l.Type }),
	"name": field(func(l *allure.Link) allure.Opt[string] { return l.Name }),
}

// ResolveLinkAttr turns an optional expectation on a link attribute (url,
// type or name) into a matcher. A non-nil value requires the attribute to be
// present and equal; nil requires it to be absent or null. An unknown key
// yields a matcher that never matches.
func ResolveLinkAttr(key string, value *string) match.Matcher[*allure.Link] {
	get, ok := linkAttrs[key]
	if !ok {
		return match.New(
			fmt.Sprintf("a link attribute %q", key),
			func(*allure.Link) bool { return false },
			func(*allure.Link) string {
				return fmt.Sprintf("links have no attribute %q, only url, type and name", key)
			},
		)
	}

	if value != nil {
		return Entry(key, get, match.EqualTo(*value))
	}

	return match.New(
		"no "+key,
		func(l *allure.Link) bool {
			return get(l).IsUnset()
		},
		func(l *allure.Link) string {
			v, _ := get(l).Get()
			return key + " was " + match.Describe(v)
		},
	)
}

type LinkOption func(options *LinkOptions)

type LinkOptions struct {
	linkType attrConstraint
	name     attrConstraint
}

type attrConstraint struct {
	set   bool
	value *string
}

// LinkType requires the link type to equal t.
func LinkType(t string) LinkOption {
	return func(o *LinkOptions) {
		o.linkType = attrConstraint{set: true, value: &t}
	}
}

// LinkName requires the link name to equal name.
func LinkName(name string) LinkOption {
	return func(o *LinkOptions) {
		o.name = attrConstraint{set: true, value: &name}
	}
}

// NoLinkType requires the link type to be absent or null.
func NoLinkType() LinkOption {
	return func(o *LinkOptions) {
		o.linkType = attrConstraint{set: true}
	}
}

// NoLinkName requires the link name to be absent or null.
func NoLinkName() LinkOption {
	return func(o *LinkOptions) {
		o.name = attrConstraint{set: true}
	}
}

// HasLink matches results with a link to url. Type and name are only
// checked when an option constrains them.
func HasLink(url string, opts ...LinkOption) match.Matcher[allure.Node] {
	var o LinkOptions
	for _, opt := range opts {
		opt(&o)
	}

	attrs := []match.Matcher[*allure.Link]{ResolveLinkAttr("url", &url)}
	if o.linkType.set {
		attrs = append(attrs, ResolveLinkAttr("type", o.linkType.value))
	}

	if o.name.set {
		attrs = append(attrs, ResolveLinkAttr("name", o.name.value))
	}

	return Entry("links", resultLinks, match.HasItem(attrs...))
}

// HasIssueLink is HasLink with type "issue".
func HasIssueLink(url string, opts ...LinkOption) match.Matcher[allure.Node] {
	return HasLink(url, append(append([]LinkOption(nil), opts...), LinkType(allure.LinkTypeIssue))...)
}

// HasTestCaseLink is HasLink with type "tms".
func HasTestCaseLink(url string, opts ...LinkOption) match.Matcher[allure.Node] {
	return HasLink(url, append(append([]LinkOption(nil), opts...), LinkType(allure.LinkTypeTMS))...)
}
