// Package xuma provides a generic, config-driven match engine: it
// compiles a declarative description of predicates over an opaque
// context into an evaluator producing a typed action.
//
// xuma is the decision core behind request-routing gateways, request
// filters, and command gating for agent tooling — anywhere the shape is
// "extract value from context → compare → dispatch an action". It
// mirrors the xDS Unified Matcher API in semantics but stays
// domain-agnostic: concrete domains (HTTP requests, hook events,
// key-value bags) are plugged in at registration time, not baked into
// the core. See the domain/kv and domain/hook packages for two worked
// examples.
//
// # Quick Start
//
// Build a context type, describe predicates and actions over it, and
// compile a Matcher directly:
//
//	type ctx struct{ role, org string }
//
//	roleInput := xuma.InputFunc[ctx](func(c ctx) xuma.MatchingData { return xuma.String(c.role) })
//	orgInput := xuma.InputFunc[ctx](func(c ctx) xuma.MatchingData { return xuma.String(c.org) })
//
//	m := xuma.NewMatcher[ctx, string](
//	    []xuma.FieldMatcher[ctx, string]{
//	        {
//	            Predicate: xuma.And[ctx](
//	                xuma.Single[ctx](roleInput, xuma.Exact("admin")),
//	                xuma.Single[ctx](orgInput, xuma.Exact("acme")),
//	            ),
//	            OnMatch: xuma.ActionOnMatch[ctx, string]("grant"),
//	        },
//	    },
//	    nil, // no on_no_match
//	)
//
//	action, ok := m.Evaluate(ctx{role: "admin", org: "acme"}) // "grant", true
//
// # Config-Driven Construction
//
// Most hosts won't hand-build a Matcher; they'll decode a config payload
// and compile it via a Registry:
//
//	registry := kv.NewRegistry()
//
//	var cfg xuma.MatcherConfig[kv.NamedAction]
//	json.Unmarshal(payload, &cfg)
//
//	matcher, err := registry.LoadMatcher(ctx, cfg)
//	action, ok := matcher.Evaluate(kvCtx)
//
// # Design Philosophy
//
// The package separates concerns into three layers:
//
//   - Data inputs: pure, side-effect-free extractors from an opaque
//     context to a MatchingData
//   - Value matchers: predicate leaves that test a MatchingData
//   - Registry: a frozen, concurrent-read map from type_url to factory,
//     turning untyped config into concrete inputs/matchers/actions
//     without unsafe downcasts
//
// This separation allows:
//   - Multiple unrelated domains sharing one engine
//   - Config-driven behavior changes without redeploying code
//   - Deterministic, allocation-free evaluation on the hot path
//   - Optional step-by-step tracing for debugging, opt-in per call
//
// # Predicate Tree
//
// Predicates compose Single leaves with And/Or/Not:
//
//	xuma.And[ctx](
//	    xuma.Single[ctx](toolNameInput, xuma.Exact("Bash")),
//	    xuma.Single[ctx](argInput, xuma.Contains("rm -rf")),
//	)
//
// Evaluation is short-circuit and order-preserving: And/Or evaluate
// children in declared order and stop as soon as the result is decided —
// no further Get or Matches calls are made on the remaining children.
// This preserves cost semantics for expensive inputs guarded by cheap
// predicates.
//
// # Matcher Evaluation
//
// A Matcher is an ordered list of FieldMatchers plus an optional
// fallback. Evaluate walks the list first-match-wins:
//
//	for each field matcher in declared order:
//	    if predicate matches:
//	        dispatch on_match; if it yields a result, return it
//	        (otherwise — a nested sub-matcher matched its predicate but
//	        produced nothing — fall through to the next sibling)
//	if on_no_match is set: dispatch it
//	otherwise: no result
//
// The nested-fall-through rule is the subtle part: a field matcher whose
// predicate is true but whose nested sub-matcher itself matches nothing
// does not terminate the outer scan. This is what makes nested matchers
// compose as refinements ("if X, then maybe narrow further") rather than
// unconditional commitments.
//
// # Registry and Type URLs
//
// The Registry maps type_url strings — conventionally dotted package
// paths like xuma.claude.v1.ToolNameInput — to factories for data
// inputs, value matchers, and actions. Build one with a
// RegistryBuilder, register factories, then Build():
//
//	b := xuma.NewRegistryBuilder[*kv.Context, kv.NamedAction]()
//	kv.Register(b)
//	registry := b.Build()
//
// A missing type_url at load time fails with an UnknownTypeUrl error
// naming the requested url and the full sorted list of registered urls —
// operators configure the system via strings, and a typo is the
// dominant failure mode.
//
// # Tracing
//
// EvaluateWithTrace returns the action plus an ordered Trace of every
// field matcher actually visited, reflecting short-circuit semantics: a
// predicate child that was never reached appears only as "not visited".
// Evaluate itself never builds a Trace, so the non-tracing path pays no
// allocation cost for it.
//
// # Thread Safety
//
// A compiled Matcher and a built Registry are both immutable and safe
// for concurrent use by any number of goroutines. Do not call
// RegistryBuilder methods after Build, and do not attempt to mutate a
// Matcher after construction — there is no mutation API once either is
// built.
package xuma
