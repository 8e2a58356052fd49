package expect

import (
	"fmt"
	"sort"
	"sync"

	"github.com/askadityapandey/vitest/pkg/equality"
	"github.com/askadityapandey/vitest/pkg/logging"
	"github.com/askadityapandey/vitest/pkg/metrics"
	"github.com/askadityapandey/vitest/pkg/softassert"
)

// Expect is an assertion entry point. It owns a local matcher
// table (consulted before the shared registries), ambient
// configuration, custom equality testers, and the Not namespace
// for negated asymmetric matchers.
type Expect struct {
	mu       sync.RWMutex
	matchers map[string]AdaptedMatcher
	asym     map[string]AsymmetricFactory
	config   *Config
	testers  []equality.Tester
	logger   logging.Logger
	recorder metrics.AssertionMetrics

	// Not exposes the negated asymmetric matcher constructors.
	Not *NotNamespace
}

// Option configures an Expect entry point.
type Option func(*Expect)

// WithConfig sets the entry point's configuration.
func WithConfig(cfg *Config) Option {
	return func(e *Expect) { e.config = cfg }
}

// WithLogger sets the entry point's logger.
func WithLogger(l logging.Logger) Option {
	return func(e *Expect) { e.logger = l }
}

// WithMetrics sets the dispatch metrics recorder.
func WithMetrics(m metrics.AssertionMetrics) Option {
	return func(e *Expect) { e.recorder = m }
}

// WithCustomTesters appends custom equality testers.
func WithCustomTesters(testers ...equality.Tester) Option {
	return func(e *Expect) {
		e.testers = append(e.testers, testers...)
	}
}

// New creates an entry point. Without options it uses default
// configuration, a NullLogger and no-op metrics. Matchers
// already present in the shared registries are visible to it
// immediately.
func New(opts ...Option) *Expect {
	e := &Expect{
		matchers: make(map[string]AdaptedMatcher),
		asym:     make(map[string]AsymmetricFactory),
		config:   NewConfig(),
		logger:   logging.NullLogger{},
		recorder: metrics.NoopMetrics{},
	}
	e.Not = &NotNamespace{ep: e}

	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Default is the package-level default entry point.
var Default = New()

// Value begins a fluent assertion on a subject.
func (e *Expect) Value(subject any) *Assertion {
	return &Assertion{ep: e, subject: subject}
}

// Soft begins a soft fluent assertion on a subject: failures
// are collected into the sink instead of being returned.
func (e *Expect) Soft(
	subject any, sink *softassert.Sink,
) *Assertion {
	return &Assertion{
		ep:      e,
		subject: subject,
		soft:    true,
		sink:    sink,
	}
}

// NewSink creates a soft-assertion sink honouring the entry
// point's SoftFailureLimit.
func (e *Expect) NewSink() *softassert.Sink {
	return softassert.NewSinkWithLimit(
		e.Config().SoftFailureLimit,
	)
}

// Clone creates a new entry point sharing this one's
// configuration, testers, logger and metrics. Matchers are
// discovered through the shared registries, so the clone sees
// everything registered before or after the clone was made.
func (e *Expect) Clone() *Expect {
	e.mu.RLock()
	defer e.mu.RUnlock()

	clone := New(
		WithConfig(e.config),
		WithLogger(e.logger),
		WithMetrics(e.recorder),
		WithCustomTesters(e.testers...),
	)
	return clone
}

// Config returns the entry point's configuration.
func (e *Expect) Config() *Config {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.config
}

// SetConfig replaces the entry point's configuration. Matcher
// invocations observe the change immediately.
func (e *Expect) SetConfig(cfg *Config) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.config = cfg
}

// Logger returns the entry point's logger.
func (e *Expect) Logger() logging.Logger {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.logger
}

// CustomTesters returns a copy of the registered custom
// equality testers.
func (e *Expect) CustomTesters() []equality.Tester {
	e.mu.RLock()
	defer e.mu.RUnlock()

	out := make([]equality.Tester, len(e.testers))
	copy(out, e.testers)
	return out
}

// AddCustomTesters registers additional custom equality
// testers. Subsequent matcher invocations observe them.
func (e *Expect) AddCustomTesters(
	testers ...equality.Tester,
) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.testers = append(e.testers, testers...)
}

// State is a snapshot of an entry point's ambient
// configuration.
type State struct {
	Config        Config
	CustomTesters []equality.Tester
	Matchers      []string
}

// State snapshots the entry point's ambient configuration and
// the matcher names visible to it.
func (e *Expect) State() State {
	return State{
		Config:        *e.Config(),
		CustomTesters: e.CustomTesters(),
		Matchers:      e.MatcherNames(),
	}
}

// MatcherNames returns every matcher name visible to the entry
// point, local table and shared registry merged, sorted.
func (e *Expect) MatcherNames() []string {
	seen := make(map[string]bool)

	e.mu.RLock()
	for name := range e.matchers {
		seen[name] = true
	}
	e.mu.RUnlock()

	for _, name := range SharedMatchers.Names() {
		seen[name] = true
	}

	out := make([]string, 0, len(seen))
	for name := range seen {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// Matcher constructs the positive asymmetric matcher registered
// under name with the given sample arguments.
func (e *Expect) Matcher(
	name string, sample ...any,
) (*AsymmetricMatcher, error) {
	factory, ok := e.lookupAsymmetric(name)
	if !ok {
		return nil, fmt.Errorf(
			"unknown asymmetric matcher: %s", name,
		)
	}
	return factory(sample...), nil
}

// install adds an adapted matcher to the local table.
func (e *Expect) install(name string, fn AdaptedMatcher) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.matchers[name] = fn
}

// installAsymmetric adds a factory to the local table.
func (e *Expect) installAsymmetric(
	name string, factory AsymmetricFactory,
) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.asym[name] = factory
}

// lookup resolves a fluent matcher: the local table first, the
// shared registry second.
func (e *Expect) lookup(name string) (AdaptedMatcher, bool) {
	e.mu.RLock()
	fn, ok := e.matchers[name]
	e.mu.RUnlock()
	if ok {
		return fn, true
	}
	return SharedMatchers.Lookup(name)
}

// lookupAsymmetric resolves an asymmetric factory: the local
// table first, the shared registry second.
func (e *Expect) lookupAsymmetric(
	name string,
) (AsymmetricFactory, bool) {
	e.mu.RLock()
	factory, ok := e.asym[name]
	e.mu.RUnlock()
	if ok {
		return factory, true
	}
	return SharedAsymmetric.Lookup(name)
}

// NotNamespace exposes negated asymmetric matcher construction
// for an entry point.
type NotNamespace struct {
	ep *Expect
}

// Matcher constructs the negated asymmetric matcher registered
// under name with the given sample arguments.
func (n *NotNamespace) Matcher(
	name string, sample ...any,
) (*AsymmetricMatcher, error) {
	m, err := n.ep.Matcher(name, sample...)
	if err != nil {
		return nil, err
	}
	return m.invert(), nil
}
