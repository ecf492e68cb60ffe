package xuma

import (
	"regexp"
	"strings"
)

// ValueMatcher is the capability exposed by every value-match leaf:
// given a MatchingData, decide true or false. Implementations must never
// error — a kind mismatch (e.g. Regex handed Bytes) or None simply
// returns false.
type ValueMatcher interface {
	Matches(d MatchingData) bool
}

// ValueMatcherFunc adapts a function to ValueMatcher.
type ValueMatcherFunc func(d MatchingData) bool

// Matches implements ValueMatcher.
func (f ValueMatcherFunc) Matches(d MatchingData) bool { return f(d) }

type exactMatcher struct {
	value string
	fold  bool
}

func (m exactMatcher) Matches(d MatchingData) bool {
	s, ok := d.AsString()
	if !ok {
		return false
	}
	if m.fold {
		return strings.EqualFold(s, m.value)
	}
	return s == m.value
}

type prefixMatcher struct {
	value string
	fold  bool
}

func (m prefixMatcher) Matches(d MatchingData) bool {
	s, ok := d.AsString()
	if !ok {
		return false
	}
	if m.fold {
		return len(s) >= len(m.value) && strings.EqualFold(s[:len(m.value)], m.value)
	}
	return strings.HasPrefix(s, m.value)
}

type suffixMatcher struct {
	value string
	fold  bool
}

func (m suffixMatcher) Matches(d MatchingData) bool {
	s, ok := d.AsString()
	if !ok {
		return false
	}
	if m.fold {
		return len(s) >= len(m.value) && strings.EqualFold(s[len(s)-len(m.value):], m.value)
	}
	return strings.HasSuffix(s, m.value)
}

type containsMatcher struct {
	value string
	fold  bool
}

func (m containsMatcher) Matches(d MatchingData) bool {
	s, ok := d.AsString()
	if !ok {
		return false
	}
	if m.fold {
		return strings.Contains(strings.ToLower(s), strings.ToLower(m.value))
	}
	return strings.Contains(s, m.value)
}

type regexMatcher struct {
	re *regexp.Regexp
}

func (m regexMatcher) Matches(d MatchingData) bool {
	s, ok := d.AsString()
	if !ok {
		return false
	}
	return m.re.MatchString(s)
}

type boolMatcher struct {
	value bool
}

func (m boolMatcher) Matches(d MatchingData) bool {
	b, ok := d.AsBool()
	if !ok {
		return false
	}
	return b == m.value
}

// Exact returns a ValueMatcher that is true iff the data is the string v.
func Exact(v string) ValueMatcher { return exactMatcher{value: v} }

// ExactFold is the case-insensitive form of Exact.
func ExactFold(v string) ValueMatcher { return exactMatcher{value: v, fold: true} }

// Prefix returns a ValueMatcher that is true iff the data string begins
// with v.
func Prefix(v string) ValueMatcher { return prefixMatcher{value: v} }

// PrefixFold is the case-insensitive form of Prefix.
func PrefixFold(v string) ValueMatcher { return prefixMatcher{value: v, fold: true} }

// Suffix returns a ValueMatcher that is true iff the data string ends
// with v.
func Suffix(v string) ValueMatcher { return suffixMatcher{value: v} }

// SuffixFold is the case-insensitive form of Suffix.
func SuffixFold(v string) ValueMatcher { return suffixMatcher{value: v, fold: true} }

// Contains returns a ValueMatcher that is true iff v occurs within the
// data string.
func Contains(v string) ValueMatcher { return containsMatcher{value: v} }

// ContainsFold is the case-insensitive form of Contains.
func ContainsFold(v string) ValueMatcher { return containsMatcher{value: v, fold: true} }

// Regex returns a ValueMatcher backed by Go's RE2 engine, which is
// linear-time in the length of the input by construction. There is no
// backtracking and no pattern that compiles to an exponential automaton.
func Regex(pattern string) (ValueMatcher, error) {
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, err
	}
	return regexMatcher{re: re}, nil
}

// MustRegex is like Regex but panics on an invalid pattern. Intended for
// use with statically known patterns (tests, constants).
func MustRegex(pattern string) ValueMatcher {
	m, err := Regex(pattern)
	if err != nil {
		panic(err)
	}
	return m
}

// MatchBool returns a ValueMatcher that is true iff the data is the bool
// v. Only matches the Bool variant; any other kind (including None)
// returns false.
func MatchBool(v bool) ValueMatcher { return boolMatcher{value: v} }
