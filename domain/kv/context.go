// Package kv is a reference domain plug-in: a JSON-object-backed
// key-value bag used both as a worked example of a matcher context and
// as the fixture domain for the engine's own integration tests.
package kv

import (
	"encoding/json"

	"github.com/tidwall/gjson"
)

// Context wraps a JSON object as an opaque matching context. Field
// access follows gjson's dotted-path syntax for format-agnostic field
// access.
type Context struct {
	raw []byte
}

// New wraps raw JSON bytes as a Context. raw must be a valid JSON
// object; callers that can't guarantee this should validate with
// gjson.ValidBytes first.
func New(raw []byte) *Context {
	return &Context{raw: raw}
}

// FromMap builds a Context from a flat string-keyed map, for tests and
// programmatic construction.
func FromMap(fields map[string]string) *Context {
	raw, err := json.Marshal(fields)
	if err != nil {
		// fields is a map[string]string; json.Marshal over it cannot fail.
		panic(err)
	}
	return &Context{raw: raw}
}

// HasField reports whether path exists in the underlying JSON object.
func (c *Context) HasField(path string) bool {
	if c == nil {
		return false
	}
	return gjson.GetBytes(c.raw, path).Exists()
}

// GetString returns the string value at path, or false if it doesn't
// exist or isn't a JSON string.
func (c *Context) GetString(path string) (string, bool) {
	if c == nil {
		return "", false
	}
	r := gjson.GetBytes(c.raw, path)
	if !r.Exists() || r.Type != gjson.String {
		return "", false
	}
	return r.String(), true
}
