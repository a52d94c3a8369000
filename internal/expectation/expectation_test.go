package expectation

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robotomize/go-allure-match/allure"
	"github.com/robotomize/go-allure-match/store"
)

const loginExpectations = `
expectations:
  - test: TestLogin
    status: passed
    id: true
    historyId: true
    descriptionContains: login
    steps: [open, submit]
    exactSteps: [open, submit]
    parameters:
      - {name: user, value: bob}
      - {name: password, value: "***", excluded: true, mode: masked}
    absentParameters: [token]
    links:
      - {url: "http://jira/AUTH-1", type: issue}
      - {url: "http://tms/TC-7"}
    labels:
      - {name: suite, value: auth}
    attachments:
      - {type: text/plain}
      - {name: log, contains: "200 OK"}
      - {name: response, jsonPath: "user.name", equals: bob}
      - {name: response, schema: '{"type": "object", "required": ["user"]}'}
    statusDetails:
      messageContains: flaky
`

const loginResult = `{
	"uuid": "u1",
	"historyId": "h1",
	"name": "TestLogin",
	"fullName": "auth/login_test.go:TestLogin",
	"status": "passed",
	"description": "login with a password",
	"statusDetails": {"message": "was flaky once"},
	"steps": [{"name": "open"}, {"name": "submit"}],
	"parameters": [
		{"name": "user", "value": "bob"},
		{"name": "password", "value": "***", "excluded": true, "mode": "masked"}
	],
	"links": [
		{"url": "http://jira/AUTH-1", "type": "issue"},
		{"url": "http://tms/TC-7", "type": "tms", "name": "TC-7"}
	],
	"labels": [{"name": "suite", "value": "auth"}],
	"attachments": [
		{"name": "log", "type": "text/plain", "source": "log.txt"},
		{"name": "response", "type": "application/json", "source": "response.json"}
	]
}`

func TestParse(t *testing.T) {
	t.Parallel()

	f, err := Parse(strings.NewReader(loginExpectations))
	require.NoError(t, err)
	require.Len(t, f.Expectations, 1)

	e := f.Expectations[0]
	issue := "issue"

	if diff := cmp.Diff([]Link{{URL: "http://jira/AUTH-1", Type: &issue}, {URL: "http://tms/TC-7"}}, e.Links); diff != "" {
		t.Errorf("mismatch (-want, +got):\n%s", diff)
	}

	if diff := cmp.Diff(
		[]Parameter{{Name: "user", Value: "bob"}, {Name: "password", Value: "***", Excluded: true, Mode: "masked"}},
		e.Parameters,
	); diff != "" {
		t.Errorf("mismatch (-want, +got):\n%s", diff)
	}

	assert.Equal(t, "TestLogin", e.Title())
}

func TestParse_Errors(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name     string
		input    string
		selector bool
	}{
		{name: "test_unknown_key", input: "expectations:\n  - test: a\n    colour: red\n"},
		{name: "test_bad_yaml", input: "expectations: [\n"},
		{name: "test_no_selector", input: "expectations:\n  - status: passed\n", selector: true},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(
			tc.name, func(t *testing.T) {
				t.Parallel()

				_, err := Parse(strings.NewReader(tc.input))
				require.Error(t, err)
				assert.Equal(t, tc.selector, errors.Is(err, ErrNoSelector))
			},
		)
	}

	f, err := Parse(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, f.Expectations)
}

func TestCompile(t *testing.T) {
	t.Parallel()

	f, err := Parse(strings.NewReader(loginExpectations))
	require.NoError(t, err)

	doc, err := allure.Decode([]byte(loginResult))
	require.NoError(t, err)

	lookup := store.Map{
		"log.txt":       []byte("GET /login 200 OK"),
		"response.json": []byte(`{"user": {"name": "bob"}}`),
	}

	m := f.Expectations[0].Compile(lookup)
	assert.True(t, m.Matches(doc), m.DescribeMismatch(doc))

	t.Run(
		"test_missing_attachment_content", func(t *testing.T) {
			t.Parallel()

			partial := store.Map{"log.txt": []byte("GET /login 200 OK")}
			m := f.Expectations[0].Compile(partial)
			require.False(t, m.Matches(doc))
			assert.Contains(t, m.DescribeMismatch(doc), "could not be resolved")
		},
	)

	t.Run(
		"test_reordered_steps", func(t *testing.T) {
			t.Parallel()

			e := Expectation{Test: "TestLogin", ExactSteps: []string{"submit", "open"}, Steps: []string{"submit"}}
			m := e.Compile(lookup)
			assert.False(t, m.Matches(doc))
		},
	)

	t.Run(
		"test_empty_expectation_matches", func(t *testing.T) {
			t.Parallel()

			assert.True(t, Expectation{Test: "TestLogin"}.Compile(lookup).Matches(doc))
		},
	)
}

func TestSelect(t *testing.T) {
	t.Parallel()

	docs := []*allure.Result{
		{Executable: allure.Executable{Name: allure.Some("TestA")}, FullName: allure.Some("pkg/a_test.go:TestA")},
		{Executable: allure.Executable{Name: allure.Some("TestA")}, FullName: allure.Some("other/a_test.go:TestA")},
		{Executable: allure.Executable{Name: allure.Some("TestB")}},
		nil,
	}

	assert.Len(t, Expectation{Test: "TestA"}.Select(docs), 2)
	assert.Len(t, Expectation{FullName: "pkg/a_test.go:TestA"}.Select(docs), 1)
	assert.Len(t, Expectation{Test: "TestB", FullName: "pkg/a_test.go:TestA"}.Select(docs), 0)
	assert.Empty(t, Expectation{Test: "TestC"}.Select(docs))
}
