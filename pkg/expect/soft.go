package expect

import (
	"context"
	"errors"
)

// softWrap applies the soft-assertion convention to an adapted
// matcher. Every installed matcher is wrapped; the wrapper is a
// pass-through until the call site's soft flag is set and a
// sink is attached, at which point structured failures are
// collected instead of returned. Matcher-internal errors are
// never collected.
func softWrap(name string, fn AdaptedMatcher) AdaptedMatcher {
	return func(
		ctx context.Context, a *Assertion, args ...any,
	) error {
		err := fn(ctx, a, args...)
		if err == nil || !a.soft || a.sink == nil {
			return err
		}

		var failure *Failure
		if !errors.As(err, &failure) {
			return err
		}

		a.sink.Collect(err)
		a.ep.recorder.RecordSoftCollected(name)
		return nil
	}
}
