package allurematch

import (
	"github.com/google/uuid"

	"github.com/robotomize/go-allure-match/allure"
	"github.com/robotomize/go-allure-match/match"
)

func HasTitle(title string) match.Matcher[allure.Node] {
	return Entry("name", nodeName, match.EqualTo(title))
}

func HasDescription(ms ...match.Matcher[string]) match.Matcher[allure.Node] {
	return Entry("description", nodeDescription, ms...)
}

func HasDescriptionHTML(ms ...match.Matcher[string]) match.Matcher[allure.Node] {
	return Entry("descriptionHtml", nodeDescriptionHTML, ms...)
}

func WithStatus(status string) match.Matcher[allure.Node] {
	return Entry("status", nodeStatus, match.EqualTo(status))
}

func HasStatusDetails(ms ...match.Matcher[*allure.StatusDetails]) match.Matcher[allure.Node] {
	return Entry("statusDetails", nodeStatusDetails, ms...)
}

// WithMessageContains is meant to be passed to HasStatusDetails.
func WithMessageContains(s string) match.Matcher[*allure.StatusDetails] {
	return Entry("message", detailsMessage, match.ContainsString(s))
}

// WithTraceContains is meant to be passed to HasStatusDetails.
func WithTraceContains(s string) match.Matcher[*allure.StatusDetails] {
	return Entry("trace", detailsTrace, match.ContainsString(s))
}

// WithID matches results carrying a non-null uuid. Steps have no uuid.
func WithID() match.Matcher[allure.Node] {
	return Entry("uuid", resultUUID, nonNull[string]())
}

// WithUUID is WithID that also requires the identifier to parse as a UUID.
func WithUUID() match.Matcher[allure.Node] {
	valid := match.New(
		"a valid UUID",
		func(s string) bool {
			_, err := uuid.Parse(s)
			return err == nil
		},
		nil,
	)

	return Entry("uuid", resultUUID, valid)
}

// HasHistoryID requires a historyId; without matchers any value, null
// included, is accepted.
func HasHistoryID(ms ...match.Matcher[string]) match.Matcher[allure.Node] {
	return Entry("historyId", resultHistoryID, ms...)
}

func HasFullName(m match.Matcher[string]) match.Matcher[allure.Node] {
	return Entry("fullName", resultFullName, m)
}

// HasLabel matches results with a label of the given name and value.
func HasLabel(name, value string) match.Matcher[allure.Node] {
	return Entry(
		"labels", resultLabels, match.HasItem(
			Entry("name", labelName, match.EqualTo(name)),
			Entry("value", labelValue, match.EqualTo(value)),
		),
	)
}
