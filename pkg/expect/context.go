package expect

import (
	"github.com/askadityapandey/vitest/pkg/equality"
	"github.com/askadityapandey/vitest/pkg/logging"
	"github.com/askadityapandey/vitest/pkg/render"
)

// Promise tags recording how a fluent assertion was reached.
const (
	// PromiseNone marks a plain synchronous assertion.
	PromiseNone = ""
	// PromiseResolves marks an assertion chained off a
	// resolved promise.
	PromiseResolves = "resolves"
	// PromiseRejects marks an assertion chained off a
	// rejected promise.
	PromiseRejects = "rejects"
)

// Context is the ephemeral per-invocation state handed to a
// matcher. It is built fresh for every fluent or asymmetric
// invocation and discarded once the verdict is produced; no
// state leaks between unrelated assertions.
type Context struct {
	// Subject is the value under test.
	Subject any

	// IsNot reports whether negation is active at the call
	// site. Matchers use it only to phrase messages; the
	// pass/fail inversion itself happens in the dispatcher.
	IsNot bool

	// Promise is the promise tag active at the call site.
	Promise string

	// Soft reports whether failures are being collected
	// rather than raised.
	Soft bool

	// Poll reports whether the assertion runs under an
	// eventually-true retry loop. Carried for matcher
	// authors; this layer does not retry.
	Poll bool

	// Utils bundles the shared comparison and rendering
	// helpers.
	Utils *Utils

	// CustomTesters are the entry point's registered custom
	// equality testers at invocation time.
	CustomTesters []equality.Tester
}

// Utils bundles the comparison and rendering utilities shared
// with matchers. All functions observe the entry point's
// configuration at invocation time, not at registration time.
type Utils struct {
	// Equals is the deep-equality algorithm.
	Equals func(a, b any, testers []equality.Tester, strict ...bool) bool

	// IterableEquality and SubsetEquality are composable
	// testers for Equals.
	IterableEquality equality.Tester
	SubsetEquality   equality.Tester

	// Stringify renders a value for messages, truncated per
	// the active configuration.
	Stringify func(v any) string

	// Diff renders a unified diff between two values, or the
	// empty string when they render identically.
	Diff func(expected, actual any) string

	// Logger is the entry point's logger.
	Logger logging.Logger
}

// buildContext projects a live fluent assertion and its entry
// point into a fresh matcher Context. Flags come off the call
// site; shared utilities come off the entry point through
// read-through accessors, so configuration changes made after
// registration are observed.
func buildContext(a *Assertion) *Context {
	return &Context{
		Subject:       a.subject,
		IsNot:         a.negated,
		Promise:       a.promise,
		Soft:          a.soft,
		Poll:          a.poll,
		Utils:         a.ep.utils(),
		CustomTesters: a.ep.CustomTesters(),
	}
}

// buildAsymmetricContext projects the registering entry point
// into a Context for an asymmetric match. The subject is the
// value encountered at the matcher's position.
func buildAsymmetricContext(
	ep *Expect, subject any, isNot bool,
) *Context {
	return &Context{
		Subject:       subject,
		IsNot:         isNot,
		Promise:       PromiseNone,
		Utils:         ep.utils(),
		CustomTesters: ep.CustomTesters(),
	}
}

// utils builds the shared utility bundle against the entry
// point's current configuration.
func (e *Expect) utils() *Utils {
	cfg := e.Config()
	return &Utils{
		Equals:           equality.Equals,
		IterableEquality: equality.IterableEquality,
		SubsetEquality:   equality.SubsetEquality,
		Stringify: func(v any) string {
			return render.StringifyTruncated(
				v, cfg.TruncateThreshold,
			)
		},
		Diff:   render.Diff,
		Logger: e.Logger(),
	}
}
