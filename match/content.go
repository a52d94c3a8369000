package match

import (
	"fmt"
	"strings"

	"github.com/tidwall/gjson"
	"github.com/xeipuuv/gojsonschema"

	"github.com/robotomize/go-allure-match/internal/slice"
)

// Text applies string matchers to raw content.
func Text(ms ...Matcher[string]) Matcher[[]byte] {
	return Transform("text", func(b []byte) string { return string(b) }, AllOf(ms...))
}

// JSONPath matches JSON content whose value at path (gjson syntax) satisfies
// ms. The value is compared in its string form.
func JSONPath(path string, ms ...Matcher[string]) Matcher[[]byte] {
	m := AllOf(ms...)

	return New(
		fmt.Sprintf("json at %q %s", path, m),
		func(b []byte) bool {
			res := gjson.GetBytes(b, path)
			return res.Exists() && m.Matches(res.String())
		},
		func(b []byte) string {
			if !gjson.ValidBytes(b) {
				return "was not valid JSON: " + Describe(b)
			}

			res := gjson.GetBytes(b, path)
			if !res.Exists() {
				return fmt.Sprintf("had no value at %q", path)
			}

			return fmt.Sprintf("json at %q %s", path, m.DescribeMismatch(res.String()))
		},
	)
}

// JSONSchema matches JSON content valid against the given schema document.
func JSONSchema(schema string) Matcher[[]byte] {
	compiled, compileErr := gojsonschema.NewSchema(gojsonschema.NewStringLoader(schema))

	validate := func(b []byte) []string {
		if compileErr != nil {
			return []string{"schema is invalid: " + compileErr.Error()}
		}

		res, err := compiled.Validate(gojsonschema.NewBytesLoader(b))
		if err != nil {
			return []string{err.Error()}
		}

		return slice.Map(res.Errors(), func(e gojsonschema.ResultError) string {
			return e.String()
		})
	}

	return New(
		"json valid against the schema",
		func(b []byte) bool {
			return len(validate(b)) == 0
		},
		func(b []byte) string {
			return "violated the schema: " + strings.Join(validate(b), "; ")
		},
	)
}
