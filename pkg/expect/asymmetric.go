package expect

import (
	"strings"

	"github.com/askadityapandey/vitest/pkg/logging"
	"github.com/askadityapandey/vitest/pkg/render"
)

// AsymmetricMatcher is a registered matcher packaged as a
// reusable value usable inside deep equality comparisons: the
// equality algorithm lets it decide the outcome for whatever
// occupies its position. Instances are immutable; the positive
// and negated forms are distinct instances.
type AsymmetricMatcher struct {
	name    string
	fn      MatcherFunc
	ep      *Expect
	sample  []any
	inverse bool
}

// Match invokes the matcher against the encountered value and
// returns the (possibly inverted) pass verdict. The verdict
// must resolve synchronously: a deferred verdict counts as a
// failed match before inversion, because the consuming equality
// algorithm cannot suspend mid-comparison.
func (m *AsymmetricMatcher) Match(other any) bool {
	mc := buildAsymmetricContext(m.ep, other, m.inverse)
	outcome := m.fn(mc, other, m.sample...)

	pass := false
	if v, ok := outcome.(Verdict); ok {
		pass = v.Pass
	} else {
		m.ep.Logger().Debug(
			"deferred verdict in asymmetric position",
			logging.StringField("matcher", m.name),
		)
	}

	if m.inverse {
		return !pass
	}
	return pass
}

// Describe returns the matcher name, prefixed with "not." for
// the negated form. Used in failure diffs to show which matcher
// rejected a position.
func (m *AsymmetricMatcher) Describe() string {
	if m.inverse {
		return "not." + m.name
	}
	return m.name
}

// DescribeWithArguments returns the name plus the rendered
// sample, for top-level failure messages.
func (m *AsymmetricMatcher) DescribeWithArguments() string {
	parts := make([]string, 0, len(m.sample))
	for _, s := range m.sample {
		parts = append(parts, render.Stringify(s))
	}
	return m.Describe() + "<" + strings.Join(parts, ", ") + ">"
}

// ExpectedTypeHint returns the static type expectation of the
// matcher. This layer offers no narrowing.
func (m *AsymmetricMatcher) ExpectedTypeHint() string {
	return "any"
}

// String implements fmt.Stringer.
func (m *AsymmetricMatcher) String() string {
	return m.DescribeWithArguments()
}

// invert returns the negated twin of the matcher. Sample and
// definition are shared; only the inverse flag differs.
func (m *AsymmetricMatcher) invert() *AsymmetricMatcher {
	return &AsymmetricMatcher{
		name:    m.name,
		fn:      m.fn,
		ep:      m.ep,
		sample:  m.sample,
		inverse: !m.inverse,
	}
}

// asymmetricFactory builds the positive-form factory for a
// matcher, scoped to the entry point that performed the
// registration.
func asymmetricFactory(
	ep *Expect, name string, fn MatcherFunc,
) AsymmetricFactory {
	return func(sample ...any) *AsymmetricMatcher {
		return &AsymmetricMatcher{
			name:   name,
			fn:     fn,
			ep:     ep,
			sample: sample,
		}
	}
}
