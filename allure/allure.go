// Package allure describes the Allure test result document as a read-only,
// typed view. Every field is an Opt so that a missing key and an explicit
// null stay distinguishable after decoding.
package allure

import (
	"encoding/json"
	"fmt"
)

const StageFinished = "finished"

const (
	StatusPass   = "passed"
	StatusFail   = "failed"
	StatusSkip   = "skipped"
	StatusBroken = "broken"
)

const (
	LinkTypeIssue = "issue"
	LinkTypeTMS   = "tms"
)

const (
	ParameterModeDefault = "default"
	ParameterModeMasked  = "masked"
	ParameterModeHidden  = "hidden"
)

// Node is a test result or a step.
type Node interface {
	executable() *Executable
}

var (
	_ Node = (*Result)(nil)
	_ Node = (*Step)(nil)
)

// Executable holds the fields shared by test results and steps.
type Executable struct {
	Name            Opt[string]         `json:"name,omitzero"`
	Status          Opt[string]         `json:"status,omitzero"`
	StatusDetails   Opt[*StatusDetails] `json:"statusDetails,omitzero"`
	Stage           Opt[string]         `json:"stage,omitzero"`
	Description     Opt[string]         `json:"description,omitzero"`
	DescriptionHTML Opt[string]         `json:"descriptionHtml,omitzero"`
	Steps           Opt[[]*Step]        `json:"steps,omitzero"`
	Attachments     Opt[[]*Attachment]  `json:"attachments,omitzero"`
	Parameters      Opt[[]*Parameter]   `json:"parameters,omitzero"`
	Start           Opt[int64]          `json:"start,omitzero"`
	Stop            Opt[int64]          `json:"stop,omitzero"`
}

func (e *Executable) executable() *Executable {
	return e
}

// Base returns the fields shared by results and steps, or nil for a nil node.
func Base(n Node) *Executable {
	switch x := n.(type) {
	case *Result:
		if x == nil {
			return nil
		}
	case *Step:
		if x == nil {
			return nil
		}
	case nil:
		return nil
	}

	return n.executable()
}

type Result struct {
	Executable

	UUID       Opt[string]   `json:"uuid,omitzero"`
	HistoryID  Opt[string]   `json:"historyId,omitzero"`
	TestCaseID Opt[string]   `json:"testCaseId,omitzero"`
	FullName   Opt[string]   `json:"fullName,omitzero"`
	Labels     Opt[[]*Label] `json:"labels,omitzero"`
	Links      Opt[[]*Link]  `json:"links,omitzero"`
}

type Step struct {
	Executable
}

type StatusDetails struct {
	Message Opt[string] `json:"message,omitzero"`
	Trace   Opt[string] `json:"trace,omitzero"`
	Known   Opt[bool]   `json:"known,omitzero"`
	Muted   Opt[bool]   `json:"muted,omitzero"`
	Flaky   Opt[bool]   `json:"flaky,omitzero"`
}

type Parameter struct {
	Name     Opt[string] `json:"name,omitzero"`
	Value    Opt[string] `json:"value,omitzero"`
	Excluded Opt[bool]   `json:"excluded,omitzero"`
	Mode     Opt[string] `json:"mode,omitzero"`
}

type Label struct {
	Name  Opt[string] `json:"name,omitzero"`
	Value Opt[string] `json:"value,omitzero"`
}

type Link struct {
	URL  Opt[string] `json:"url,omitzero"`
	Type Opt[string] `json:"type,omitzero"`
	Name Opt[string] `json:"name,omitzero"`
}

type Attachment struct {
	Name   Opt[string] `json:"name,omitzero"`
	Type   Opt[string] `json:"type,omitzero"`
	Source Opt[string] `json:"source,omitzero"`
}

// Decode reads a single result document.
func Decode(b []byte) (*Result, error) {
	var r Result
	if err := json.Unmarshal(b, &r); err != nil {
		return nil, fmt.Errorf("json.Unmarshal: %w", err)
	}

	return &r, nil
}

// String renders the document back to JSON for failure descriptions.
func (r *Result) String() string {
	return marshalString(r)
}

func (s *Step) String() string {
	return marshalString(s)
}

func (p *Parameter) String() string {
	return marshalString(p)
}

func (l *Link) String() string {
	return marshalString(l)
}

func (l *Label) String() string {
	return marshalString(l)
}

func (a *Attachment) String() string {
	return marshalString(a)
}

func (d *StatusDetails) String() string {
	return marshalString(d)
}

func marshalString(v any) string {
	b, err := json.Marshal(v)
	if err != nil {
		return fmt.Sprintf("%+v", v)
	}

	return string(b)
}
