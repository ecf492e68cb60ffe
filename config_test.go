package xuma_test

import (
	"encoding/json"
	"testing"

	"github.com/bjaus/xuma"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMatcherConfig_DeserializeSimple(t *testing.T) {
	raw := []byte(`{
		"matchers": [{
			"predicate": {
				"type": "single",
				"input": {"type_url": "test.Input", "config": {"key": "val"}},
				"value_match": {"Exact": "hello"}
			},
			"on_match": {"type": "action", "action": "hit"}
		}],
		"on_no_match": {"type": "action", "action": "miss"}
	}`)

	var cfg xuma.MatcherConfig[string]
	require.NoError(t, json.Unmarshal(raw, &cfg))
	assert.Len(t, cfg.Matchers, 1)
	require.NotNil(t, cfg.OnNoMatch)
	assert.Equal(t, "action", cfg.OnNoMatch.Type)
	assert.Equal(t, "miss", *cfg.OnNoMatch.Action)
}

func TestMatcherConfig_DeserializeAndPredicate(t *testing.T) {
	raw := []byte(`{
		"matchers": [{
			"predicate": {
				"type": "and",
				"predicates": [
					{"type": "single", "input": {"type_url": "a"}, "value_match": {"Exact": "x"}},
					{"type": "single", "input": {"type_url": "b"}, "value_match": {"Prefix": "y"}}
				]
			},
			"on_match": {"type": "action", "action": "ok"}
		}]
	}`)

	var cfg xuma.MatcherConfig[string]
	require.NoError(t, json.Unmarshal(raw, &cfg))
	assert.Equal(t, "and", cfg.Matchers[0].Predicate.Type)
	assert.Len(t, cfg.Matchers[0].Predicate.Predicates, 2)
}

func TestMatcherConfig_DeserializeNotPredicate(t *testing.T) {
	raw := []byte(`{
		"matchers": [{
			"predicate": {
				"type": "not",
				"predicate": {"type": "single", "input": {"type_url": "a"}, "value_match": {"Exact": "x"}}
			},
			"on_match": {"type": "action", "action": "ok"}
		}]
	}`)

	var cfg xuma.MatcherConfig[string]
	require.NoError(t, json.Unmarshal(raw, &cfg))
	assert.Equal(t, "not", cfg.Matchers[0].Predicate.Type)
	require.NotNil(t, cfg.Matchers[0].Predicate.Predicate)
}

func TestMatcherConfig_DeserializeNestedMatcher(t *testing.T) {
	raw := []byte(`{
		"matchers": [{
			"predicate": {"type": "single", "input": {"type_url": "a"}, "value_match": {"Prefix": ""}},
			"on_match": {
				"type": "matcher",
				"matcher": {
					"matchers": [{
						"predicate": {"type": "single", "input": {"type_url": "a"}, "value_match": {"Exact": "deep"}},
						"on_match": {"type": "action", "action": "nested"}
					}]
				}
			}
		}]
	}`)

	var cfg xuma.MatcherConfig[string]
	require.NoError(t, json.Unmarshal(raw, &cfg))
	om := cfg.Matchers[0].OnMatch
	assert.Equal(t, "matcher", om.Type)
	require.NotNil(t, om.Matcher)
	assert.Len(t, om.Matcher.Matchers, 1)
}

func TestTypedConfig_DefaultsToEmptyObject(t *testing.T) {
	var tc xuma.TypedConfig
	require.NoError(t, json.Unmarshal([]byte(`{"type_url": "test.Input"}`), &tc))
	assert.JSONEq(t, "{}", string(tc.Config))
}

func TestMatcherConfig_NoOnNoMatchIsNil(t *testing.T) {
	raw := []byte(`{
		"matchers": [{
			"predicate": {"type": "single", "input": {"type_url": "a"}, "value_match": {"Exact": "x"}},
			"on_match": {"type": "action", "action": "ok"}
		}]
	}`)
	var cfg xuma.MatcherConfig[string]
	require.NoError(t, json.Unmarshal(raw, &cfg))
	assert.Nil(t, cfg.OnNoMatch)
}

func TestSinglePredicate_ExclusivityViolation(t *testing.T) {
	raw := []byte(`{
		"type": "single",
		"input": {"type_url": "a"},
		"value_match": {"Exact": "x"},
		"custom_match": {"type_url": "b"}
	}`)
	var p xuma.PredicateConfig
	err := json.Unmarshal(raw, &p)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "value_match")
	assert.Contains(t, err.Error(), "custom_match")
}

func TestSinglePredicate_NeitherSetIsError(t *testing.T) {
	raw := []byte(`{"type": "single", "input": {"type_url": "a"}}`)
	var p xuma.PredicateConfig
	err := json.Unmarshal(raw, &p)
	require.Error(t, err)
}

func TestPredicateConfig_UnknownTypeRejected(t *testing.T) {
	raw := []byte(`{"type": "bogus"}`)
	var p xuma.PredicateConfig
	err := json.Unmarshal(raw, &p)
	assert.Error(t, err)
}

func TestStringMatchSpec_RejectsMultipleVariants(t *testing.T) {
	raw := []byte(`{"Exact": "x", "Prefix": "y"}`)
	var s xuma.StringMatchSpec
	err := json.Unmarshal(raw, &s)
	assert.Error(t, err)
}

func TestStringMatchSpec_RejectsEmpty(t *testing.T) {
	raw := []byte(`{}`)
	var s xuma.StringMatchSpec
	err := json.Unmarshal(raw, &s)
	assert.Error(t, err)
}

func TestMatcherConfig_RequiresMatchersField(t *testing.T) {
	raw := []byte(`{"on_no_match": {"type": "action", "action": "x"}}`)
	var cfg xuma.MatcherConfig[string]
	err := json.Unmarshal(raw, &cfg)
	assert.Error(t, err)
}

func TestMatcherConfig_EmptyMatchersListIsValid(t *testing.T) {
	raw := []byte(`{"matchers": [], "on_no_match": {"type": "action", "action": "x"}}`)
	var cfg xuma.MatcherConfig[string]
	require.NoError(t, json.Unmarshal(raw, &cfg))
	assert.Empty(t, cfg.Matchers)
}
