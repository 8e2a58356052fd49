package expect

import (
	"context"
	"sort"
	"time"

	"github.com/askadityapandey/vitest/pkg/logging"
)

// Extend registers a batch of matchers on an entry point. The
// built-in matchers are merged in first, so a user entry with
// the same name silently shadows them (last-write-wins). For
// every name, installation runs to completion on all three
// surfaces — the entry point's own table, the shared fluent
// registry, and the shared asymmetric registry — before the
// next name is processed, so no partially installed matcher is
// ever observable. Re-registration overwrites cleanly.
func Extend(ep *Expect, matchers MatcherMap) {
	merged := make(MatcherMap, len(matchers)+len(builtins))
	for name, fn := range builtins {
		merged[name] = fn
	}
	for name, fn := range matchers {
		merged[name] = fn
	}

	names := make([]string, 0, len(merged))
	for name := range merged {
		names = append(names, name)
	}
	sort.Strings(names)

	log := ep.Logger()
	for _, name := range names {
		fn := merged[name]

		adapted := softWrap(name, adaptFluent(name, fn))
		ep.install(name, adapted)
		SharedMatchers.Register(name, adapted)

		factory := asymmetricFactory(ep, name, fn)
		ep.installAsymmetric(name, factory)
		SharedAsymmetric.Register(name, factory)

		log.Debug("registered matcher",
			logging.StringField("matcher", name),
		)
	}

	ep.recorder.IncrementExtendTotal()
	ep.recorder.SetRegisteredMatchers(SharedMatchers.Count())
}

// Extend registers a batch of matchers on this entry point.
func (e *Expect) Extend(matchers MatcherMap) {
	Extend(e, matchers)
}

// adaptFluent wraps a matcher definition into the fluent
// calling convention: build a fresh context, run the matcher,
// settle the verdict, then apply the negation decision rule.
// This is the single place negation semantics are enforced.
func adaptFluent(name string, fn MatcherFunc) AdaptedMatcher {
	return func(
		ctx context.Context, a *Assertion, args ...any,
	) error {
		mc := buildContext(a)

		start := time.Now()
		outcome := fn(mc, a.subject, args...)
		verdict, err := outcome.settle(ctx)
		if err != nil {
			return err
		}

		fail := verdict.Pass == mc.IsNot
		a.ep.recorder.RecordDispatch(
			name, !fail, time.Since(start),
		)
		if !fail {
			return nil
		}

		a.ep.Logger().Debug("assertion failed",
			logging.StringField("matcher", name),
			logging.BoolField("negated", mc.IsNot),
		)
		return &Failure{
			Matcher:     name,
			Actual:      verdict.Actual,
			Expected:    verdict.Expected,
			Inverted:    mc.IsNot,
			message:     verdict.Message,
			includeDiff: a.ep.Config().IncludeDiff,
		}
	}
}
