package match

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestLogic(t *testing.T) {
	t.Parallel()

	hello := EqualTo("hello")
	world := ContainsString("world")

	testCases := []struct {
		name     string
		matcher  Matcher[string]
		input    string
		expected bool
	}{
		{name: "test_anything", matcher: Anything[string](), input: "x", expected: true},
		{name: "test_all_of_empty", matcher: AllOf[string](), input: "x", expected: true},
		{name: "test_all_of_pass", matcher: AllOf(StartsWith("hello"), world), input: "hello world", expected: true},
		{name: "test_all_of_fail", matcher: AllOf(hello, world), input: "hello", expected: false},
		{name: "test_any_of_empty", matcher: AnyOf[string](), input: "x", expected: false},
		{name: "test_any_of_pass", matcher: AnyOf(hello, world), input: "world", expected: true},
		{name: "test_any_of_fail", matcher: AnyOf(hello, world), input: "bye", expected: false},
		{name: "test_not", matcher: Not(hello), input: "bye", expected: true},
		{name: "test_not_fail", matcher: Not(hello), input: "hello", expected: false},
		{name: "test_regexp", matcher: MatchesRegexp(`^v\d+$`), input: "v12", expected: true},
		{name: "test_regexp_fail", matcher: MatchesRegexp(`^v\d+$`), input: "12", expected: false},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(
			tc.name, func(t *testing.T) {
				t.Parallel()

				if got := tc.matcher.Matches(tc.input); got != tc.expected {
					t.Errorf("%s on %q: got: %v, want: %v", tc.matcher, tc.input, got, tc.expected)
				}
			},
		)
	}
}

func TestDescriptions(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name        string
		matcher     Matcher[string]
		input       string
		description string
		mismatch    string
	}{
		{
			name:        "test_equal_to",
			matcher:     EqualTo("a"),
			input:       "b",
			description: `"a"`,
			mismatch:    `was "b"`,
		},
		{
			name:        "test_all_of",
			matcher:     AllOf(StartsWith("a"), ContainsString("z")),
			input:       "abc",
			description: `(a string starting with "a" and a string containing "z")`,
			mismatch:    `a string containing "z" was "abc"`,
		},
		{
			name:        "test_any_of",
			matcher:     AnyOf(EqualTo("a"), EqualTo("b")),
			input:       "c",
			description: `("a" or "b")`,
			mismatch:    `"a" was "c" and "b" was "c"`,
		},
		{
			name:        "test_not",
			matcher:     Not(EqualTo("a")),
			input:       "a",
			description: `not "a"`,
			mismatch:    `was "a"`,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(
			tc.name, func(t *testing.T) {
				t.Parallel()

				if diff := cmp.Diff(tc.description, tc.matcher.String()); diff != "" {
					t.Errorf("mismatch (-want, +got):\n%s", diff)
				}

				if diff := cmp.Diff(tc.mismatch, tc.matcher.DescribeMismatch(tc.input)); diff != "" {
					t.Errorf("mismatch (-want, +got):\n%s", diff)
				}
			},
		)
	}
}

func TestEqualTo_Diff(t *testing.T) {
	t.Parallel()

	type pair struct {
		A string
		B int
	}

	m := EqualTo(pair{A: "x", B: 1})
	if !m.Matches(pair{A: "x", B: 1}) {
		t.Fatalf("expected equal structs to match")
	}

	got := m.DescribeMismatch(pair{A: "x", B: 2})
	want := "differs (-want, +got):\n" + cmp.Diff(pair{A: "x", B: 1}, pair{A: "x", B: 2})
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("mismatch (-want, +got):\n%s", diff)
	}
}

func TestHasItem(t *testing.T) {
	t.Parallel()

	m := HasItem(EqualTo(2))

	if !m.Matches([]int{1, 2, 3}) {
		t.Errorf("got: false, want: true")
	}

	if m.Matches(nil) {
		t.Errorf("got: true, want: false")
	}

	if diff := cmp.Diff("was empty", m.DescribeMismatch(nil)); diff != "" {
		t.Errorf("mismatch (-want, +got):\n%s", diff)
	}

	want := "no item matched\n  item 0: was 1\n  item 1: was 3"
	if diff := cmp.Diff(want, m.DescribeMismatch([]int{1, 3})); diff != "" {
		t.Errorf("mismatch (-want, +got):\n%s", diff)
	}

	if diff := cmp.Diff("a sequence containing 2", m.String()); diff != "" {
		t.Errorf("mismatch (-want, +got):\n%s", diff)
	}
}

func TestContainsExactly(t *testing.T) {
	t.Parallel()

	m := ContainsExactly(EqualTo(1), EqualTo(2))

	testCases := []struct {
		name     string
		input    []int
		expected bool
		mismatch string
	}{
		{name: "test_exact", input: []int{1, 2}, expected: true},
		{name: "test_swapped", input: []int{2, 1}, mismatch: "item 0: expected 1 but was 2"},
		{name: "test_short", input: []int{1}, mismatch: "expected 2 items, got 1: [1]"},
		{name: "test_long", input: []int{1, 2, 3}, mismatch: "expected 2 items, got 3: [1, 2, 3]"},
		{name: "test_nil", input: nil, mismatch: "expected 2 items, got 0: []"},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(
			tc.name, func(t *testing.T) {
				t.Parallel()

				if got := m.Matches(tc.input); got != tc.expected {
					t.Fatalf("got: %v, want: %v", got, tc.expected)
				}

				if tc.expected {
					return
				}

				if diff := cmp.Diff(tc.mismatch, m.DescribeMismatch(tc.input)); diff != "" {
					t.Errorf("mismatch (-want, +got):\n%s", diff)
				}
			},
		)
	}

	if !ContainsExactly[int]().Matches([]int{}) {
		t.Errorf("empty matcher list must match an empty sequence")
	}

	if !HasLen[int](2).Matches([]int{1, 2}) || HasLen[int](2).Matches([]int{1}) {
		t.Errorf("HasLen mismatch")
	}
}

func TestTransform(t *testing.T) {
	t.Parallel()

	m := Transform("length", func(s string) int { return len(s) }, EqualTo(3))

	if !m.Matches("abc") {
		t.Errorf("got: false, want: true")
	}

	if diff := cmp.Diff("length was 2", m.DescribeMismatch("ab")); diff != "" {
		t.Errorf("mismatch (-want, +got):\n%s", diff)
	}
}

func TestCheck(t *testing.T) {
	t.Parallel()

	if err := Check("a", EqualTo("a")); err != nil {
		t.Fatalf("Check: %v", err)
	}

	err := Check("a", EqualTo("b"))

	var mismatchErr *MismatchError
	if !errors.As(err, &mismatchErr) {
		t.Fatalf("got: %T, want: *MismatchError", err)
	}

	want := &MismatchError{Expected: `"b"`, But: `was "a"`}
	if diff := cmp.Diff(want, mismatchErr); diff != "" {
		t.Errorf("mismatch (-want, +got):\n%s", diff)
	}

	if diff := cmp.Diff("\nExpected: \"b\"\n     but: was \"a\"\n", err.Error()); diff != "" {
		t.Errorf("mismatch (-want, +got):\n%s", diff)
	}
}

type recordingT struct {
	errors int
}

func (r *recordingT) Errorf(string, ...any) {
	r.errors++
}

func TestExpectThat(t *testing.T) {
	t.Parallel()

	rt := &recordingT{}
	if !ExpectThat(rt, 1, EqualTo(1)) {
		t.Errorf("got: false, want: true")
	}

	if ExpectThat(rt, 1, EqualTo(2)) {
		t.Errorf("got: true, want: false")
	}

	if rt.errors != 1 {
		t.Errorf("got: %d, want: %d", rt.errors, 1)
	}

	AssertThat(t, "hello world", AllOf(StartsWith("hello"), ContainsString("world")))
}
