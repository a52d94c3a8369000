// Package expectation reads YAML expectation files and compiles them into
// result matchers.
package expectation

import (
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/robotomize/go-allure-match/allure"
	"github.com/robotomize/go-allure-match/allurematch"
	"github.com/robotomize/go-allure-match/internal/slice"
	"github.com/robotomize/go-allure-match/match"
	"github.com/robotomize/go-allure-match/store"
)

var ErrNoSelector = errors.New("expectation needs a test or fullName")

type File struct {
	Expectations []Expectation `yaml:"expectations"`
}

type Expectation struct {
	Test                string         `yaml:"test"`
	FullName            string         `yaml:"fullName"`
	Status              string         `yaml:"status"`
	ID                  bool           `yaml:"id"`
	HistoryID           bool           `yaml:"historyId"`
	DescriptionContains string         `yaml:"descriptionContains"`
	Steps               []string       `yaml:"steps"`
	ExactSteps          []string       `yaml:"exactSteps"`
	Parameters          []Parameter    `yaml:"parameters"`
	AbsentParameters    []string       `yaml:"absentParameters"`
	Links               []Link         `yaml:"links"`
	Labels              []Label        `yaml:"labels"`
	Attachments         []Attachment   `yaml:"attachments"`
	StatusDetails       *StatusDetails `yaml:"statusDetails"`
}

type Parameter struct {
	Name     string `yaml:"name"`
	Value    string `yaml:"value"`
	Excluded bool   `yaml:"excluded"`
	Mode     string `yaml:"mode"`
}

// Link leaves type and name unchecked when omitted.
type Link struct {
	URL  string  `yaml:"url"`
	Type *string `yaml:"type"`
	Name *string `yaml:"name"`
}

type Label struct {
	Name  string `yaml:"name"`
	Value string `yaml:"value"`
}

// Attachment without any content field only requires the attachment to
// exist; with one, its content is resolved through the results directory.
type Attachment struct {
	Name     *string `yaml:"name"`
	Type     *string `yaml:"type"`
	Contains *string `yaml:"contains"`
	Equals   *string `yaml:"equals"`
	JSONPath string  `yaml:"jsonPath"`
	Schema   string  `yaml:"schema"`
}

type StatusDetails struct {
	MessageContains string `yaml:"messageContains"`
	TraceContains   string `yaml:"traceContains"`
}

// Parse decodes an expectation file, rejecting unknown keys.
func Parse(r io.Reader) (*File, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var f File
	if err := dec.Decode(&f); err != nil {
		if errors.Is(err, io.EOF) {
			return &f, nil
		}

		return nil, fmt.Errorf("yaml.Decode: %w", err)
	}

	for idx, e := range f.Expectations {
		if e.Test == "" && e.FullName == "" {
			return nil, fmt.Errorf("expectation %d: %w", idx, ErrNoSelector)
		}
	}

	return &f, nil
}

// Title names the expectation in reports.
func (e Expectation) Title() string {
	if e.FullName != "" {
		return e.FullName
	}

	return e.Test
}

// Select returns the results the expectation applies to.
func (e Expectation) Select(docs []*allure.Result) []*allure.Result {
	return slice.Filter(docs, func(doc *allure.Result) bool {
		if doc == nil {
			return false
		}

		if e.Test != "" {
			if name, _ := doc.Name.Get(); name != e.Test {
				return false
			}
		}

		if e.FullName != "" {
			if fullName, _ := doc.FullName.Get(); fullName != e.FullName {
				return false
			}
		}

		return true
	})
}

// Compile turns the expectation into one matcher. lookup resolves
// attachment content.
func (e Expectation) Compile(lookup store.Lookup) match.Matcher[allure.Node] {
	var ms []match.Matcher[allure.Node]

	if e.Status != "" {
		ms = append(ms, allurematch.WithStatus(e.Status))
	}

	if e.ID {
		ms = append(ms, allurematch.WithID())
	}

	if e.HistoryID {
		ms = append(ms, allurematch.HasHistoryID())
	}

	if e.DescriptionContains != "" {
		ms = append(ms, allurematch.HasDescription(match.ContainsString(e.DescriptionContains)))
	}

	for _, name := range e.Steps {
		ms = append(ms, allurematch.HasStep(name))
	}

	if e.ExactSteps != nil {
		ms = append(
			ms, allurematch.WithSteps(
				slice.Map(e.ExactSteps, allurematch.HasTitle)...,
			),
		)
	}

	for _, p := range e.Parameters {
		ms = append(ms, p.compile())
	}

	for _, name := range e.AbsentParameters {
		ms = append(ms, allurematch.DoesntHaveParameter(name))
	}

	for _, l := range e.Links {
		ms = append(ms, l.compile())
	}

	for _, l := range e.Labels {
		ms = append(ms, allurematch.HasLabel(l.Name, l.Value))
	}

	for _, a := range e.Attachments {
		ms = append(ms, a.compile(lookup))
	}

	if e.StatusDetails != nil {
		ms = append(ms, e.StatusDetails.compile())
	}

	return match.AllOf(ms...)
}

func (p Parameter) compile() match.Matcher[allure.Node] {
	var extra []match.Matcher[*allure.Parameter]
	if p.Excluded {
		extra = append(extra, allurematch.WithExcluded())
	}

	if p.Mode != "" {
		extra = append(extra, allurematch.WithMode(p.Mode))
	}

	return allurematch.HasParameter(p.Name, p.Value, extra...)
}

func (l Link) compile() match.Matcher[allure.Node] {
	var opts []allurematch.LinkOption
	if l.Type != nil {
		opts = append(opts, allurematch.LinkType(*l.Type))
	}

	if l.Name != nil {
		opts = append(opts, allurematch.LinkName(*l.Name))
	}

	return allurematch.HasLink(l.URL, opts...)
}

func (a Attachment) compile(lookup store.Lookup) match.Matcher[allure.Node] {
	var opts []allurematch.AttachmentOption
	if a.Type != nil {
		opts = append(opts, allurematch.AttachmentType(*a.Type))
	}

	if a.Name != nil {
		opts = append(opts, allurematch.AttachmentName(*a.Name))
	}

	var content []match.Matcher[[]byte]
	if a.Contains != nil {
		content = append(content, match.Text(match.ContainsString(*a.Contains)))
	}

	switch {
	case a.JSONPath != "" && a.Equals != nil:
		content = append(content, match.JSONPath(a.JSONPath, match.EqualTo(*a.Equals)))
	case a.JSONPath != "":
		content = append(content, match.JSONPath(a.JSONPath))
	case a.Equals != nil:
		content = append(content, match.Text(match.EqualTo(*a.Equals)))
	}

	if a.Schema != "" {
		content = append(content, match.JSONSchema(a.Schema))
	}

	if len(content) == 0 {
		return allurematch.HasAttachment(opts...)
	}

	return allurematch.HasAttachmentWithContent(lookup, match.AllOf(content...), opts...)
}

func (d StatusDetails) compile() match.Matcher[allure.Node] {
	var ms []match.Matcher[*allure.StatusDetails]
	if d.MessageContains != "" {
		ms = append(ms, allurematch.WithMessageContains(d.MessageContains))
	}

	if d.TraceContains != "" {
		ms = append(ms, allurematch.WithTraceContains(d.TraceContains))
	}

	return allurematch.HasStatusDetails(ms...)
}
