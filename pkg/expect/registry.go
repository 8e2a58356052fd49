package expect

import (
	"context"
	"sort"
	"sync"
)

// AdaptedMatcher is a matcher after fluent adaptation: it runs
// the matcher against the live assertion, applies the negation
// decision rule, and returns a *Failure (or nil) once the
// verdict settles.
type AdaptedMatcher func(
	ctx context.Context,
	a *Assertion,
	args ...any,
) error

// AsymmetricFactory constructs the positive asymmetric matcher
// instance for a registered name.
type AsymmetricFactory func(sample ...any) *AsymmetricMatcher

// Registry holds adapted fluent matchers by name. It is safe
// for concurrent reads; writes happen during the registration
// phase, before assertions run.
type Registry struct {
	mu       sync.RWMutex
	matchers map[string]AdaptedMatcher
}

// NewRegistry creates a new, empty Registry.
func NewRegistry() *Registry {
	return &Registry{
		matchers: make(map[string]AdaptedMatcher),
	}
}

// Register installs an adapted matcher under a name. Existing
// entries are overwritten; re-registration is last-write-wins.
func (r *Registry) Register(name string, fn AdaptedMatcher) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.matchers[name] = fn
}

// Lookup retrieves an adapted matcher by name.
func (r *Registry) Lookup(name string) (AdaptedMatcher, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	fn, ok := r.matchers[name]
	return fn, ok
}

// Names returns all registered matcher names, sorted.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]string, 0, len(r.matchers))
	for name := range r.matchers {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// Count returns the number of registered matchers.
func (r *Registry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.matchers)
}

// Clear removes all registered matchers.
func (r *Registry) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.matchers = make(map[string]AdaptedMatcher)
}

// AsymmetricRegistry holds asymmetric matcher factories by
// name. Same locking discipline as Registry.
type AsymmetricRegistry struct {
	mu        sync.RWMutex
	factories map[string]AsymmetricFactory
}

// NewAsymmetricRegistry creates a new, empty
// AsymmetricRegistry.
func NewAsymmetricRegistry() *AsymmetricRegistry {
	return &AsymmetricRegistry{
		factories: make(map[string]AsymmetricFactory),
	}
}

// Register installs a factory under a name, overwriting any
// existing entry.
func (r *AsymmetricRegistry) Register(
	name string, factory AsymmetricFactory,
) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.factories[name] = factory
}

// Lookup retrieves a factory by name.
func (r *AsymmetricRegistry) Lookup(
	name string,
) (AsymmetricFactory, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	factory, ok := r.factories[name]
	return factory, ok
}

// Names returns all registered factory names, sorted.
func (r *AsymmetricRegistry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]string, 0, len(r.factories))
	for name := range r.factories {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// Count returns the number of registered factories.
func (r *AsymmetricRegistry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.factories)
}

// Clear removes all registered factories.
func (r *AsymmetricRegistry) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.factories = make(map[string]AsymmetricFactory)
}

// The two process-wide registry slots. Every Extend call
// mirrors its installations here so independent or cloned entry
// points observe the same matcher set. Registration during
// active concurrent assertion execution is unsupported.
var (
	// SharedMatchers is the process-wide fluent matcher
	// registry.
	SharedMatchers = NewRegistry()

	// SharedAsymmetric is the process-wide asymmetric matcher
	// registry. Only positive factories are mirrored; the
	// negated form is reached through an entry point's Not
	// namespace.
	SharedAsymmetric = NewAsymmetricRegistry()
)
