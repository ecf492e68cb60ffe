package xuma

// Matcher is the compiled, immutable decision tree: an ordered list of
// field matchers plus an optional fallback, produced either by
// Registry.LoadMatcher or by NewMatcher for programmatic construction.
// A Matcher is safe for concurrent read-only use by any number of
// goroutines once constructed; nothing about it is mutated after
// NewMatcher/LoadMatcher returns.
type Matcher[Ctx, A any] struct {
	fieldMatchers []FieldMatcher[Ctx, A]
	onNoMatch     *OnMatch[Ctx, A]
	hooks         evalHooks[Ctx]
}

// NewMatcher builds a Matcher from field matchers and an optional
// fallback (pass nil for none). Use this to construct matchers
// programmatically without going through the Registry/config path.
func NewMatcher[Ctx, A any](fieldMatchers []FieldMatcher[Ctx, A], onNoMatch *OnMatch[Ctx, A], opts ...EvalOption[Ctx]) *Matcher[Ctx, A] {
	m := &Matcher[Ctx, A]{fieldMatchers: fieldMatchers, onNoMatch: onNoMatch}
	for _, opt := range opts {
		opt(&m.hooks)
	}
	return m
}

// Evaluate walks the field matchers in declared order (first-match-wins)
// and returns the dispatched action, or (zero, false) if nothing
// matched and no on_no_match was configured.
//
// A field matcher whose predicate is true but whose nested sub-matcher
// itself produces nothing does not terminate the scan: evaluation
// continues at the next sibling (the nested-fall-through rule).
func (m *Matcher[Ctx, A]) Evaluate(ctx Ctx) (A, bool) {
	for i, fm := range m.fieldMatchers {
		if !fm.Predicate.eval(ctx) {
			continue
		}
		if m.hooks.onEvaluate != nil {
			m.hooks.onEvaluate(ctx, i, true)
		}
		if a, ok := fm.OnMatch.dispatch(ctx); ok {
			return a, true
		}
		// nested sub-matcher produced nothing: fall through to the
		// next sibling rather than terminating the outer scan.
	}
	if m.onNoMatch != nil {
		if a, ok := m.onNoMatch.dispatch(ctx); ok {
			return a, true
		}
	}
	if m.hooks.onNoMatch != nil {
		m.hooks.onNoMatch(ctx)
	}
	var zero A
	return zero, false
}

// EvaluateWithTrace behaves like Evaluate but also returns an ordered
// Trace of every field matcher actually visited. Tracing is opt-in per
// call: Evaluate itself never builds a Trace and so never pays its
// allocation cost.
func (m *Matcher[Ctx, A]) EvaluateWithTrace(ctx Ctx) (A, bool, Trace) {
	return m.evaluateWithTrace(ctx)
}

func (m *Matcher[Ctx, A]) evaluateWithTrace(ctx Ctx) (A, bool, Trace) {
	var trace Trace
	for i, fm := range m.fieldMatchers {
		pt := fm.Predicate.trace(ctx)
		if !pt.Matched {
			trace.Steps = append(trace.Steps, Step{Index: i, Matched: false, Predicate: pt})
			continue
		}
		a, ok, _ := fm.OnMatch.dispatchTrace(ctx)
		trace.Steps = append(trace.Steps, Step{Index: i, Matched: true, Predicate: pt})
		if ok {
			return a, true, trace
		}
	}
	if m.onNoMatch != nil {
		if a, ok := m.onNoMatch.dispatch(ctx); ok {
			trace.UsedFallback = true
			return a, true, trace
		}
	}
	var zero A
	return zero, false, trace
}

// evalHooks holds optional per-call evaluation hooks set via
// EvalOption.
type evalHooks[Ctx any] struct {
	onEvaluate func(ctx Ctx, stepIndex int, matched bool)
	onNoMatch  func(ctx Ctx)
}

// EvalOption configures evaluation-time hook behavior for a Matcher.
type EvalOption[Ctx any] func(*evalHooks[Ctx])

// WithOnEvaluate sets the hook called once per field-matcher step whose
// predicate evaluates true. A Matcher holds one such hook; a later
// WithOnEvaluate replaces an earlier one.
func WithOnEvaluate[Ctx any](fn func(ctx Ctx, stepIndex int, matched bool)) EvalOption[Ctx] {
	return func(h *evalHooks[Ctx]) { h.onEvaluate = fn }
}

// WithOnNoMatch sets the hook called when a top-level Matcher produces no
// action at all. A Matcher holds one such hook; a later WithOnNoMatch
// replaces an earlier one.
func WithOnNoMatch[Ctx any](fn func(ctx Ctx)) EvalOption[Ctx] {
	return func(h *evalHooks[Ctx]) { h.onNoMatch = fn }
}
