// Package expect implements an extensible matcher layer for
// fluent assertions. User-defined matchers registered through
// Extend become callable both as fluent assertions with negation
// support and as asymmetric matcher objects usable inside deep
// equality comparisons.
package expect

// MatcherFunc is a user-defined matcher. It receives the
// per-invocation context, the subject under test, and the
// arguments supplied at the call site, and returns either a
// Verdict or a *Pending that resolves to one. Matchers always
// express the positive sense; negation is applied by the
// dispatch layer.
type MatcherFunc func(mc *Context, subject any, args ...any) Outcome

// MatcherMap maps matcher names to their definitions. Later
// entries with the same name overwrite earlier ones during
// registration.
type MatcherMap map[string]MatcherFunc
