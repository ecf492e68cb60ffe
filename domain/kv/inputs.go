package kv

import (
	"encoding/json"
	"fmt"

	"github.com/bjaus/xuma"
)

// FieldInput extracts the string value at a dotted JSON path, returning
// xuma.None when the path is absent or not a string. Every built-in
// value matcher returns false against None.
type FieldInput struct {
	Path string
}

// Get implements xuma.DataInput[*Context].
func (in FieldInput) Get(ctx *Context) xuma.MatchingData {
	s, ok := ctx.GetString(in.Path)
	if !ok {
		return xuma.None
	}
	return xuma.String(s)
}

// HasFieldInput is a boolean input: true iff the path exists, regardless
// of its value's type.
type HasFieldInput struct {
	Path string
}

// Get implements xuma.DataInput[*Context].
func (in HasFieldInput) Get(ctx *Context) xuma.MatchingData {
	return xuma.Bool(ctx.HasField(in.Path))
}

// FieldInputTypeURL is the registered type_url for FieldInput, following
// the <package>.<version>.<TypeName> naming convention.
const FieldInputTypeURL = "xuma.kv.v1.FieldInput"

// HasFieldInputTypeURL is the registered type_url for HasFieldInput.
const HasFieldInputTypeURL = "xuma.kv.v1.HasFieldInput"

type fieldInputConfig struct {
	Path string `json:"path"`
}

func fieldInputFactory(raw json.RawMessage) (xuma.DataInput[*Context], error) {
	var cfg fieldInputConfig
	if err := json.Unmarshal(raw, &cfg); err != nil {
		return nil, fmt.Errorf("decode FieldInput config: %w", err)
	}
	if cfg.Path == "" {
		return nil, fmt.Errorf("FieldInput config requires non-empty \"path\"")
	}
	return FieldInput{Path: cfg.Path}, nil
}

func hasFieldInputFactory(raw json.RawMessage) (xuma.DataInput[*Context], error) {
	var cfg fieldInputConfig
	if err := json.Unmarshal(raw, &cfg); err != nil {
		return nil, fmt.Errorf("decode HasFieldInput config: %w", err)
	}
	if cfg.Path == "" {
		return nil, fmt.Errorf("HasFieldInput config requires non-empty \"path\"")
	}
	return HasFieldInput{Path: cfg.Path}, nil
}
