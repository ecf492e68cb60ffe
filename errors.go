package xuma

import (
	"fmt"
	"strings"
)

// Kind classifies a load/validate-time error. Evaluation never errors
// — Kind values only ever appear on errors returned from
// Registry.LoadMatcher and friends.
type Kind int

const (
	// InvalidConfig covers a missing required field, wrong shape, both
	// or neither of an exclusive pair set, or an empty required list.
	InvalidConfig Kind = iota
	// UnknownTypeUrl is raised when a type_url is not present in the
	// relevant registry table. The error carries the requested url and
	// the full sorted list of registered urls of that kind.
	UnknownTypeUrl
	// InvalidPattern is raised when a regex fails to compile.
	InvalidPattern
	// DepthExceeded is raised when the predicate/matcher tree nests
	// deeper than the configured limit.
	DepthExceeded
)

func (k Kind) String() string {
	switch k {
	case InvalidConfig:
		return "InvalidConfig"
	case UnknownTypeUrl:
		return "UnknownTypeUrl"
	case InvalidPattern:
		return "InvalidPattern"
	case DepthExceeded:
		return "DepthExceeded"
	default:
		return "Unknown"
	}
}

// LoadError is the single structured error type the core produces at
// compile time. Outer layers append Context as they propagate the
// error but never change Kind: load errors bubble from the deepest
// point with their kind intact.
type LoadError struct {
	Kind Kind
	// Message is a human-readable description.
	Message string
	// TypeURL is set for UnknownTypeUrl errors: the url that was
	// requested but not registered.
	TypeURL string
	// Registered is set for UnknownTypeUrl errors: the full sorted list
	// of urls registered in the relevant table.
	Registered []string
	// Context is a stack of human-readable location markers appended by
	// outer layers as the error propagates (e.g. "nested matcher of
	// field matcher #2").
	Context []string
	// Cause is the underlying error, if any (e.g. a regexp.Compile
	// failure for InvalidPattern).
	Cause error
}

func (e *LoadError) Error() string {
	var b strings.Builder
	b.WriteString(e.Kind.String())
	b.WriteString(": ")
	b.WriteString(e.Message)
	if e.Kind == UnknownTypeUrl {
		fmt.Fprintf(&b, " (requested %q; registered: [%s])", e.TypeURL, strings.Join(e.Registered, ", "))
	}
	if e.Cause != nil {
		fmt.Fprintf(&b, ": %v", e.Cause)
	}
	for i := len(e.Context) - 1; i >= 0; i-- {
		fmt.Fprintf(&b, " (in %s)", e.Context[i])
	}
	return b.String()
}

func (e *LoadError) Unwrap() error { return e.Cause }

// withContext returns a copy of e with an additional context marker
// appended, without reclassifying Kind.
func (e *LoadError) withContext(ctx string) *LoadError {
	cp := *e
	cp.Context = append(append([]string{}, e.Context...), ctx)
	return &cp
}

func invalidConfigErr(format string, args ...any) *LoadError {
	return &LoadError{Kind: InvalidConfig, Message: fmt.Sprintf(format, args...)}
}

func unknownTypeURLErr(kind, typeURL string, registered []string) *LoadError {
	return &LoadError{
		Kind:       UnknownTypeUrl,
		Message:    fmt.Sprintf("unknown %s type_url", kind),
		TypeURL:    typeURL,
		Registered: registered,
	}
}

func invalidPatternErr(pattern string, cause error) *LoadError {
	return &LoadError{
		Kind:    InvalidPattern,
		Message: fmt.Sprintf("invalid regex pattern %q", pattern),
		Cause:   cause,
	}
}

func depthExceededErr(limit int) *LoadError {
	return &LoadError{
		Kind:    DepthExceeded,
		Message: fmt.Sprintf("predicate/matcher tree exceeds depth limit of %d", limit),
	}
}
