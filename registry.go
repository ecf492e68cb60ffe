package xuma

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
)

// DefaultMaxDepth is the default bound on predicate/matcher tree depth.
// Exceeding it at load time is a DepthExceeded error; the bound protects
// against stack exhaustion during evaluation and DoS via deeply nested
// config.
const DefaultMaxDepth = 32

// InputFactory decodes a config payload into a concrete DataInput.
type InputFactory[Ctx any] func(config json.RawMessage) (DataInput[Ctx], error)

// MatcherFactory decodes a config payload into a concrete ValueMatcher.
type MatcherFactory func(config json.RawMessage) (ValueMatcher, error)

// ActionFactory decodes a config payload into a concrete action value A.
// Used by Registry.ResolveAction for hosts that parameterize their
// Registry over a carrier type (e.g. TypedConfig) and want type-url
// driven action construction, rather than the default monomorphic
// verbatim-action path.
type ActionFactory[A any] func(config json.RawMessage) (A, error)

// RegistryBuilder accumulates input, value-matcher, and action factories
// keyed by type_url, then produces an immutable Registry via Build. The
// builder is single-threaded by convention; races during registration
// are undefined. Configure it fully, then Build; do not mutate it
// afterward.
type RegistryBuilder[Ctx, A any] struct {
	inputFactories   map[string]InputFactory[Ctx]
	matcherFactories map[string]MatcherFactory
	actionFactories  map[string]ActionFactory[A]
	maxDepth         int
	hooks            loadHooks[Ctx]
}

// NewRegistryBuilder creates a builder with DefaultMaxDepth, applying any
// RegistryOptions (see hooks.go).
func NewRegistryBuilder[Ctx, A any](opts ...RegistryOption[Ctx, A]) *RegistryBuilder[Ctx, A] {
	b := &RegistryBuilder[Ctx, A]{
		inputFactories:   make(map[string]InputFactory[Ctx]),
		matcherFactories: make(map[string]MatcherFactory),
		actionFactories:  make(map[string]ActionFactory[A]),
		maxDepth:         DefaultMaxDepth,
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// WithInputFactory registers a DataInput factory under type_url.
func (b *RegistryBuilder[Ctx, A]) WithInputFactory(typeURL string, f InputFactory[Ctx]) *RegistryBuilder[Ctx, A] {
	b.inputFactories[typeURL] = f
	return b
}

// WithMatcherFactory registers a custom ValueMatcher factory under
// type_url.
func (b *RegistryBuilder[Ctx, A]) WithMatcherFactory(typeURL string, f MatcherFactory) *RegistryBuilder[Ctx, A] {
	b.matcherFactories[typeURL] = f
	return b
}

// WithActionFactory registers an action factory under type_url.
func (b *RegistryBuilder[Ctx, A]) WithActionFactory(typeURL string, f ActionFactory[A]) *RegistryBuilder[Ctx, A] {
	b.actionFactories[typeURL] = f
	return b
}

// WithMaxDepth overrides DefaultMaxDepth.
func (b *RegistryBuilder[Ctx, A]) WithMaxDepth(n int) *RegistryBuilder[Ctx, A] {
	b.maxDepth = n
	return b
}

// Build freezes the builder into an immutable, concurrent-read Registry.
// The builder must not be reused or mutated after Build.
func (b *RegistryBuilder[Ctx, A]) Build() *Registry[Ctx, A] {
	r := &Registry[Ctx, A]{
		inputFactories:   make(map[string]InputFactory[Ctx], len(b.inputFactories)),
		matcherFactories: make(map[string]MatcherFactory, len(b.matcherFactories)),
		actionFactories:  make(map[string]ActionFactory[A], len(b.actionFactories)),
		maxDepth:         b.maxDepth,
		hooks:            b.hooks,
	}
	for k, v := range b.inputFactories {
		r.inputFactories[k] = v
	}
	for k, v := range b.matcherFactories {
		r.matcherFactories[k] = v
	}
	for k, v := range b.actionFactories {
		r.actionFactories[k] = v
	}
	return r
}

// loadHooks holds optional load-time hooks set via RegistryOption.
type loadHooks[Ctx any] struct {
	onLoad      []func(ctx context.Context, typeURL string)
	onLoadError []func(ctx context.Context, err *LoadError)
}

// Registry maps type-url strings to factory functions for inputs, value
// matchers, and actions, and compiles MatcherConfig into a runtime
// Matcher. A Registry is frozen after RegistryBuilder.Build and safe
// for concurrent reads; it exposes no mutation.
type Registry[Ctx, A any] struct {
	inputFactories   map[string]InputFactory[Ctx]
	matcherFactories map[string]MatcherFactory
	actionFactories  map[string]ActionFactory[A]
	maxDepth         int
	hooks            loadHooks[Ctx]
}

// InputTypeURLs returns the sorted list of registered input type-urls.
func (r *Registry[Ctx, A]) InputTypeURLs() []string { return sortedKeys(r.inputFactories) }

// MatcherTypeURLs returns the sorted list of registered custom-matcher
// type-urls.
func (r *Registry[Ctx, A]) MatcherTypeURLs() []string { return sortedKeys(r.matcherFactories) }

// ActionTypeURLs returns the sorted list of registered action type-urls.
func (r *Registry[Ctx, A]) ActionTypeURLs() []string { return sortedKeys(r.actionFactories) }

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// ResolveAction decodes a TypedConfig into an action value via the
// registered ActionFactory. This is the alternate, type-url-driven
// action path for hosts that parameterize Registry over a carrier type;
// the default LoadMatcher path uses the action value verbatim.
func (r *Registry[Ctx, A]) ResolveAction(tc TypedConfig) (A, error) {
	f, ok := r.actionFactories[tc.TypeURL]
	if !ok {
		var zero A
		return zero, unknownTypeURLErr("action", tc.TypeURL, r.ActionTypeURLs())
	}
	a, err := f(tc.Config)
	if err != nil {
		var zero A
		return zero, wrapFactoryErr(tc.TypeURL, err)
	}
	return a, nil
}

// LoadMatcher compiles a MatcherConfig into an immutable, evaluable
// Matcher: recursive descent, type_url resolution, depth-bound
// validation, and exclusivity already enforced at JSON-decode time by
// config.go's UnmarshalJSON methods.
func (r *Registry[Ctx, A]) LoadMatcher(ctx context.Context, cfg MatcherConfig[A]) (*Matcher[Ctx, A], error) {
	m, err := r.loadMatcher(ctx, cfg, 1)
	if err != nil {
		var lerr *LoadError
		if errors.As(err, &lerr) {
			for _, fn := range r.hooks.onLoadError {
				fn(ctx, lerr)
			}
		}
		return nil, err
	}
	return m, nil
}

func (r *Registry[Ctx, A]) loadMatcher(ctx context.Context, cfg MatcherConfig[A], depth int) (*Matcher[Ctx, A], error) {
	if depth > r.maxDepth {
		return nil, depthExceededErr(r.maxDepth)
	}

	fieldMatchers := make([]FieldMatcher[Ctx, A], 0, len(cfg.Matchers))
	for i, fmCfg := range cfg.Matchers {
		pred, err := r.loadPredicate(ctx, fmCfg.Predicate, depth+1)
		if err != nil {
			return nil, wrapContext(err, fmt.Sprintf("field matcher #%d predicate", i))
		}
		om, err := r.loadOnMatch(ctx, fmCfg.OnMatch, depth+1)
		if err != nil {
			return nil, wrapContext(err, fmt.Sprintf("field matcher #%d on_match", i))
		}
		fieldMatchers = append(fieldMatchers, FieldMatcher[Ctx, A]{Predicate: pred, OnMatch: om})
	}

	var onNoMatch *OnMatch[Ctx, A]
	if cfg.OnNoMatch != nil {
		om, err := r.loadOnMatch(ctx, *cfg.OnNoMatch, depth+1)
		if err != nil {
			return nil, wrapContext(err, "on_no_match")
		}
		onNoMatch = &om
	}

	return NewMatcher[Ctx, A](fieldMatchers, onNoMatch), nil
}

func (r *Registry[Ctx, A]) loadPredicate(ctx context.Context, cfg PredicateConfig, depth int) (Predicate[Ctx], error) {
	if depth > r.maxDepth {
		return nil, depthExceededErr(r.maxDepth)
	}

	switch cfg.Type {
	case "single":
		if cfg.Input == nil {
			return nil, invalidConfigErr(`predicate type "single" requires "input"`)
		}
		if (cfg.ValueMatch == nil) == (cfg.CustomMatch == nil) {
			return nil, invalidConfigErr(`predicate type "single": exactly one of "value_match" or "custom_match" must be set`)
		}
		input, err := r.resolveInput(ctx, *cfg.Input)
		if err != nil {
			return nil, wrapContext(err, "input")
		}
		var vm ValueMatcher
		if cfg.ValueMatch != nil {
			vm, err = buildBuiltinMatcher(*cfg.ValueMatch)
		} else {
			vm, err = r.resolveMatcher(ctx, *cfg.CustomMatch)
		}
		if err != nil {
			return nil, wrapContext(err, "value_match/custom_match")
		}
		return Single[Ctx](input, vm), nil

	case "and":
		children := make([]Predicate[Ctx], 0, len(cfg.Predicates))
		for i, c := range cfg.Predicates {
			child, err := r.loadPredicate(ctx, c, depth+1)
			if err != nil {
				return nil, wrapContext(err, fmt.Sprintf("and predicate #%d", i))
			}
			children = append(children, child)
		}
		return And[Ctx](children...), nil

	case "or":
		children := make([]Predicate[Ctx], 0, len(cfg.Predicates))
		for i, c := range cfg.Predicates {
			child, err := r.loadPredicate(ctx, c, depth+1)
			if err != nil {
				return nil, wrapContext(err, fmt.Sprintf("or predicate #%d", i))
			}
			children = append(children, child)
		}
		return Or[Ctx](children...), nil

	case "not":
		child, err := r.loadPredicate(ctx, *cfg.Predicate, depth+1)
		if err != nil {
			return nil, wrapContext(err, "not predicate")
		}
		return Not[Ctx](child), nil

	default:
		return nil, invalidConfigErr("unknown predicate type %q", cfg.Type)
	}
}

func (r *Registry[Ctx, A]) loadOnMatch(ctx context.Context, cfg OnMatchConfig[A], depth int) (OnMatch[Ctx, A], error) {
	if depth > r.maxDepth {
		return OnMatch[Ctx, A]{}, depthExceededErr(r.maxDepth)
	}
	switch cfg.Type {
	case "action":
		return ActionOnMatch[Ctx, A](*cfg.Action), nil
	case "matcher":
		sub, err := r.loadMatcher(ctx, *cfg.Matcher, depth+1)
		if err != nil {
			return OnMatch[Ctx, A]{}, wrapContext(err, "nested matcher")
		}
		return NestedOnMatch[Ctx, A](sub), nil
	default:
		return OnMatch[Ctx, A]{}, invalidConfigErr("unknown on_match type %q", cfg.Type)
	}
}

func (r *Registry[Ctx, A]) resolveInput(ctx context.Context, tc TypedConfig) (DataInput[Ctx], error) {
	f, ok := r.inputFactories[tc.TypeURL]
	if !ok {
		return nil, unknownTypeURLErr("input", tc.TypeURL, r.InputTypeURLs())
	}
	input, err := f(tc.Config)
	if err != nil {
		return nil, wrapFactoryErr(tc.TypeURL, err)
	}
	for _, fn := range r.hooks.onLoad {
		fn(ctx, tc.TypeURL)
	}
	return input, nil
}

func (r *Registry[Ctx, A]) resolveMatcher(ctx context.Context, tc TypedConfig) (ValueMatcher, error) {
	f, ok := r.matcherFactories[tc.TypeURL]
	if !ok {
		return nil, unknownTypeURLErr("matcher", tc.TypeURL, r.MatcherTypeURLs())
	}
	vm, err := f(tc.Config)
	if err != nil {
		return nil, wrapFactoryErr(tc.TypeURL, err)
	}
	for _, fn := range r.hooks.onLoad {
		fn(ctx, tc.TypeURL)
	}
	return vm, nil
}

// buildBuiltinMatcher constructs the built-in ValueMatcher for a decoded
// StringMatchSpec, including the *Fold case-insensitive variants.
func buildBuiltinMatcher(spec StringMatchSpec) (ValueMatcher, error) {
	switch {
	case spec.Exact != nil:
		return Exact(*spec.Exact), nil
	case spec.ExactFold != nil:
		return ExactFold(*spec.ExactFold), nil
	case spec.Prefix != nil:
		return Prefix(*spec.Prefix), nil
	case spec.PrefixFold != nil:
		return PrefixFold(*spec.PrefixFold), nil
	case spec.Suffix != nil:
		return Suffix(*spec.Suffix), nil
	case spec.SuffixFold != nil:
		return SuffixFold(*spec.SuffixFold), nil
	case spec.Contains != nil:
		return Contains(*spec.Contains), nil
	case spec.ContainsFold != nil:
		return ContainsFold(*spec.ContainsFold), nil
	case spec.Regex != nil:
		m, err := Regex(*spec.Regex)
		if err != nil {
			return nil, invalidPatternErr(*spec.Regex, err)
		}
		return m, nil
	case spec.RegexFold != nil:
		m, err := Regex("(?i)" + *spec.RegexFold)
		if err != nil {
			return nil, invalidPatternErr(*spec.RegexFold, err)
		}
		return m, nil
	case spec.Bool != nil:
		return MatchBool(*spec.Bool), nil
	default:
		// Unreachable: StringMatchSpec.UnmarshalJSON already enforces
		// exactly one variant is set.
		return nil, invalidConfigErr("value_match sets no variant")
	}
}

// wrapFactoryErr classifies a factory's error. A factory that already
// returns a *LoadError keeps its Kind intact; any other error is
// treated as InvalidConfig.
func wrapFactoryErr(typeURL string, err error) error {
	var lerr *LoadError
	if errors.As(err, &lerr) {
		return lerr
	}
	return &LoadError{Kind: InvalidConfig, Message: fmt.Sprintf("factory for %q failed", typeURL), Cause: err}
}

// wrapContext appends a location marker to a *LoadError without
// reclassifying it; any other error is wrapped as InvalidConfig.
func wrapContext(err error, where string) error {
	var lerr *LoadError
	if errors.As(err, &lerr) {
		return lerr.withContext(where)
	}
	return &LoadError{Kind: InvalidConfig, Message: "load failed", Cause: err, Context: []string{where}}
}
