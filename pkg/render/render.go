// Package render turns arbitrary values into strings for
// assertion failure messages, and produces unified diffs between
// expected and actual values.
package render

import (
	"strings"

	"github.com/davecgh/go-spew/spew"
	"github.com/pmezard/go-difflib/difflib"
)

// compact renders single-line value representations for inline
// message text.
var compact = &spew.ConfigState{
	Indent:                  " ",
	SortKeys:                true,
	DisablePointerAddresses: true,
	DisableCapacities:       true,
	DisableMethods:          true,
}

// expanded renders multi-line value dumps for diffing.
var expanded = &spew.ConfigState{
	Indent:                  "  ",
	SortKeys:                true,
	DisablePointerAddresses: true,
	DisableCapacities:       true,
	DisableMethods:          true,
}

// Stringify renders a value as a compact single-line string.
// nil renders as "<nil>".
func Stringify(v any) string {
	if v == nil {
		return "<nil>"
	}
	s := compact.Sprintf("%#v", v)
	return strings.Join(strings.Fields(s), " ")
}

// StringifyTruncated renders a value and truncates the result to
// max characters, appending an ellipsis marker when cut. A max
// of zero or less disables truncation.
func StringifyTruncated(v any, max int) string {
	s := Stringify(v)
	if max <= 0 || len(s) <= max {
		return s
	}
	return s[:max] + "..."
}

// Dump renders a value as an indented multi-line string suitable
// for line-based diffing.
func Dump(v any) string {
	if v == nil {
		return "<nil>\n"
	}
	return expanded.Sdump(v)
}

// Diff returns a unified diff between the rendered forms of
// expected and actual. It returns the empty string when both
// render identically.
func Diff(expected, actual any) string {
	e := Dump(expected)
	a := Dump(actual)
	if e == a {
		return ""
	}

	text, err := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(e),
		B:        difflib.SplitLines(a),
		FromFile: "Expected",
		ToFile:   "Actual",
		Context:  3,
	})
	if err != nil {
		return ""
	}
	return text
}
