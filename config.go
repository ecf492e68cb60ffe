package xuma

import (
	"encoding/json"
	"fmt"
)

// TypedConfig references a registered type by its type_url, carrying an
// opaque configuration payload for the factory to decode. This is the
// JSON mirror of Envoy's TypedExtensionConfig / xDS Any.
type TypedConfig struct {
	TypeURL string          `json:"type_url"`
	Config  json.RawMessage `json:"config,omitempty"`
}

// UnmarshalJSON tolerates an omitted config field, defaulting it to `{}`.
func (t *TypedConfig) UnmarshalJSON(data []byte) error {
	type alias TypedConfig
	var a alias
	if err := json.Unmarshal(data, &a); err != nil {
		return err
	}
	if len(a.Config) == 0 {
		a.Config = json.RawMessage(`{}`)
	}
	*t = TypedConfig(a)
	return nil
}

// StringMatchSpec is the built-in value-match configuration shape.
// Exactly one field may be set; the *Fold variants are the
// case-insensitive forms of each.
type StringMatchSpec struct {
	Exact        *string
	Prefix       *string
	Suffix       *string
	Contains     *string
	Regex        *string
	ExactFold    *string
	PrefixFold   *string
	SuffixFold   *string
	ContainsFold *string
	RegexFold    *string
	Bool         *bool
}

func (s StringMatchSpec) setCount() int {
	n := 0
	for _, set := range []bool{
		s.Exact != nil, s.Prefix != nil, s.Suffix != nil, s.Contains != nil, s.Regex != nil,
		s.ExactFold != nil, s.PrefixFold != nil, s.SuffixFold != nil, s.ContainsFold != nil, s.RegexFold != nil,
		s.Bool != nil,
	} {
		if set {
			n++
		}
	}
	return n
}

// UnmarshalJSON rejects a payload that sets zero or more than one
// variant key.
func (s *StringMatchSpec) UnmarshalJSON(data []byte) error {
	type alias StringMatchSpec
	var a alias
	if err := json.Unmarshal(data, &a); err != nil {
		return err
	}
	cp := StringMatchSpec(a)
	if n := cp.setCount(); n != 1 {
		return fmt.Errorf("value_match must set exactly one of Exact/Prefix/Suffix/Contains/Regex/Bool (and their Fold variants), got %d", n)
	}
	*s = cp
	return nil
}

// PredicateConfig is the tagged-union wire shape for a Predicate. The
// Type field discriminates among "single", "and", "or", "not".
type PredicateConfig struct {
	Type string

	// type == "single"
	Input       *TypedConfig
	ValueMatch  *StringMatchSpec
	CustomMatch *TypedConfig

	// type == "and" | "or"
	Predicates []PredicateConfig

	// type == "not"
	Predicate *PredicateConfig
}

type predicateConfigWire struct {
	Type        string            `json:"type"`
	Input       *TypedConfig      `json:"input,omitempty"`
	ValueMatch  *StringMatchSpec  `json:"value_match,omitempty"`
	CustomMatch *TypedConfig      `json:"custom_match,omitempty"`
	Predicates  []PredicateConfig `json:"predicates,omitempty"`
	Predicate   *PredicateConfig  `json:"predicate,omitempty"`
}

// UnmarshalJSON validates the discriminator against the allowed set and,
// for "single", enforces that exactly one of value_match/custom_match is
// present.
func (p *PredicateConfig) UnmarshalJSON(data []byte) error {
	var w predicateConfigWire
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	switch w.Type {
	case "single":
		if w.Input == nil {
			return fmt.Errorf(`predicate type "single" requires "input"`)
		}
		switch {
		case w.ValueMatch != nil && w.CustomMatch != nil:
			return fmt.Errorf(`predicate type "single": exactly one of "value_match" or "custom_match" must be set, got both`)
		case w.ValueMatch == nil && w.CustomMatch == nil:
			return fmt.Errorf(`predicate type "single": one of "value_match" or "custom_match" is required`)
		}
	case "and", "or":
		if len(w.Predicates) == 0 {
			return fmt.Errorf("predicate type %q requires a non-empty \"predicates\" list", w.Type)
		}
	case "not":
		if w.Predicate == nil {
			return fmt.Errorf(`predicate type "not" requires "predicate"`)
		}
	default:
		return fmt.Errorf("unknown predicate type %q (expected one of: single, and, or, not)", w.Type)
	}
	*p = PredicateConfig{
		Type:        w.Type,
		Input:       w.Input,
		ValueMatch:  w.ValueMatch,
		CustomMatch: w.CustomMatch,
		Predicates:  w.Predicates,
		Predicate:   w.Predicate,
	}
	return nil
}

// OnMatchConfig is the tagged-union wire shape for an OnMatch. A is the
// application's action type.
type OnMatchConfig[A any] struct {
	Type    string
	Action  *A
	Matcher *MatcherConfig[A]
}

type onMatchConfigWire[A any] struct {
	Type    string          `json:"type"`
	Action  *A              `json:"action,omitempty"`
	Matcher *MatcherConfig[A] `json:"matcher,omitempty"`
}

// UnmarshalJSON validates the discriminator and the matching required
// field.
func (o *OnMatchConfig[A]) UnmarshalJSON(data []byte) error {
	var w onMatchConfigWire[A]
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	switch w.Type {
	case "action":
		if w.Action == nil {
			return fmt.Errorf(`on_match type "action" requires "action"`)
		}
	case "matcher":
		if w.Matcher == nil {
			return fmt.Errorf(`on_match type "matcher" requires "matcher"`)
		}
	default:
		return fmt.Errorf("unknown on_match type %q (expected one of: action, matcher)", w.Type)
	}
	*o = OnMatchConfig[A]{Type: w.Type, Action: w.Action, Matcher: w.Matcher}
	return nil
}

// FieldMatcherConfig is the wire shape for a FieldMatcher. Both
// Predicate and OnMatch are required.
type FieldMatcherConfig[A any] struct {
	Predicate PredicateConfig   `json:"predicate"`
	OnMatch   OnMatchConfig[A]  `json:"on_match"`
}

// MatcherConfig is the wire shape for a Matcher.
type MatcherConfig[A any] struct {
	Matchers   []FieldMatcherConfig[A] `json:"matchers"`
	OnNoMatch  *OnMatchConfig[A]       `json:"on_no_match,omitempty"`
}

// UnmarshalJSON enforces that "matchers" is present; it may be an empty
// list, but the key itself must be set.
func (m *MatcherConfig[A]) UnmarshalJSON(data []byte) error {
	type alias MatcherConfig[A]
	var a alias
	if err := json.Unmarshal(data, &a); err != nil {
		return err
	}
	if a.Matchers == nil {
		return fmt.Errorf(`matcher requires a "matchers" field (may be an empty list)`)
	}
	*m = MatcherConfig[A](a)
	return nil
}
