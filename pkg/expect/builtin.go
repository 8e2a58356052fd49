package expect

import (
	"fmt"

	"github.com/askadityapandey/vitest/pkg/spy"
)

// MatcherCalledBefore is the reserved name of the built-in
// call-order matcher merged into every Extend batch.
const MatcherCalledBefore = "toHaveBeenCalledBefore"

// builtins are merged into every registration batch before the
// user's entries, so a user matcher under the same name shadows
// the built-in.
var builtins = MatcherMap{
	MatcherCalledBefore: toHaveBeenCalledBefore,
}

// toHaveBeenCalledBefore asserts that the subject spy's first
// invocation happened before the expected spy's first
// invocation. Arguments: the expected spy, and an optional
// failIfNoSecondInvocation flag (default true) controlling the
// verdict when the expected spy was never called.
func toHaveBeenCalledBefore(
	mc *Context, subject any, args ...any,
) Outcome {
	if !spy.IsSpy(subject) {
		return Verdict{
			Pass: false,
			Message: func() string {
				return fmt.Sprintf(
					"Received value must be a mock or spy function, got %s",
					mc.Utils.Stringify(subject),
				)
			},
		}
	}
	actual := subject.(spy.Recorder)

	var expected spy.Recorder
	var ok bool
	if len(args) > 0 {
		expected, ok = args[0].(spy.Recorder)
	}
	if len(args) == 0 || !ok {
		return Verdict{
			Pass: false,
			Message: func() string {
				var got any
				if len(args) > 0 {
					got = args[0]
				}
				return fmt.Sprintf(
					"Expected value must be a mock or spy function, got %s",
					mc.Utils.Stringify(got),
				)
			},
		}
	}

	failIfNoSecondInvocation := true
	if len(args) > 1 {
		if flag, ok := args[1].(bool); ok {
			failIfNoSecondInvocation = flag
		}
	}

	actualOrder := actual.InvocationOrder()
	expectedOrder := expected.InvocationOrder()

	var pass bool
	switch {
	case len(actualOrder) == 0:
		pass = false
	case len(expectedOrder) == 0:
		pass = !failIfNoSecondInvocation
	default:
		pass = minOf(actualOrder) < minOf(expectedOrder)
	}

	isNot := mc.IsNot
	stringify := mc.Utils.Stringify
	return Verdict{
		Pass:     pass,
		Actual:   actualOrder,
		Expected: expectedOrder,
		Message: func() string {
			header := "expected first spy to have been called before second spy"
			if isNot {
				header = "expected first spy not to have been called before second spy"
			}

			detail := ""
			if len(actualOrder) == 0 {
				detail = "\nfirst mock was never called"
			}
			return fmt.Sprintf(
				"%s%s\nfirst spy invocation order: %s\nsecond spy invocation order: %s",
				header, detail,
				stringify(actualOrder),
				stringify(expectedOrder),
			)
		},
	}
}

// minOf returns the smallest element of a non-empty slice.
func minOf(xs []int) int {
	m := xs[0]
	for _, x := range xs[1:] {
		if x < m {
			m = x
		}
	}
	return m
}
