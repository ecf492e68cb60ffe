package hook

import (
	"encoding/json"
	"fmt"

	"github.com/bjaus/xuma"
)

// EventTypeInput extracts the hook event type as a string.
type EventTypeInput struct{}

// Get implements xuma.DataInput[*Context].
func (EventTypeInput) Get(ctx *Context) xuma.MatchingData {
	return xuma.String(string(ctx.Event()))
}

// ToolNameInput extracts the tool name.
type ToolNameInput struct{}

// Get implements xuma.DataInput[*Context].
func (ToolNameInput) Get(ctx *Context) xuma.MatchingData {
	return xuma.String(ctx.ToolName())
}

// ToolArgInput extracts a named tool argument, returning xuma.None when
// absent.
type ToolArgInput struct {
	Name string
}

// Get implements xuma.DataInput[*Context].
func (in ToolArgInput) Get(ctx *Context) xuma.MatchingData {
	v, ok := ctx.Argument(in.Name)
	if !ok {
		return xuma.None
	}
	return xuma.String(v)
}

// SessionIDInput extracts the session id.
type SessionIDInput struct{}

// Get implements xuma.DataInput[*Context].
func (SessionIDInput) Get(ctx *Context) xuma.MatchingData {
	return xuma.String(ctx.SessionID())
}

// CwdInput extracts the current working directory.
type CwdInput struct{}

// Get implements xuma.DataInput[*Context].
func (CwdInput) Get(ctx *Context) xuma.MatchingData {
	return xuma.String(ctx.Cwd())
}

// GitBranchInput extracts the git branch, or xuma.None if not in a
// repository.
type GitBranchInput struct{}

// Get implements xuma.DataInput[*Context].
func (GitBranchInput) Get(ctx *Context) xuma.MatchingData {
	b, ok := ctx.GitBranch()
	if !ok {
		return xuma.None
	}
	return xuma.String(b)
}

// Type-url conventions for this domain's inputs.
const (
	EventTypeInputTypeURL  = "xuma.claude.v1.EventTypeInput"
	ToolNameInputTypeURL   = "xuma.claude.v1.ToolNameInput"
	ToolArgInputTypeURL    = "xuma.claude.v1.ToolArgInput"
	SessionIDInputTypeURL  = "xuma.claude.v1.SessionIdInput"
	CwdInputTypeURL        = "xuma.claude.v1.CwdInput"
	GitBranchInputTypeURL  = "xuma.claude.v1.GitBranchInput"
)

func eventTypeInputFactory(_ json.RawMessage) (xuma.DataInput[*Context], error) {
	return EventTypeInput{}, nil
}

func toolNameInputFactory(_ json.RawMessage) (xuma.DataInput[*Context], error) {
	return ToolNameInput{}, nil
}

type toolArgInputConfig struct {
	Name string `json:"name"`
}

func toolArgInputFactory(raw json.RawMessage) (xuma.DataInput[*Context], error) {
	var cfg toolArgInputConfig
	if err := json.Unmarshal(raw, &cfg); err != nil {
		return nil, fmt.Errorf("decode ToolArgInput config: %w", err)
	}
	if cfg.Name == "" {
		return nil, fmt.Errorf("ToolArgInput config requires non-empty \"name\"")
	}
	return ToolArgInput{Name: cfg.Name}, nil
}

func sessionIDInputFactory(_ json.RawMessage) (xuma.DataInput[*Context], error) {
	return SessionIDInput{}, nil
}

func cwdInputFactory(_ json.RawMessage) (xuma.DataInput[*Context], error) {
	return CwdInput{}, nil
}

func gitBranchInputFactory(_ json.RawMessage) (xuma.DataInput[*Context], error) {
	return GitBranchInput{}, nil
}
