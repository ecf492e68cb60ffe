// Package hook is a reference domain plug-in for gating agent tool
// calls: inputs and a context type for matching against the lifecycle
// events an agent harness emits around tool invocations.
package hook

// Event identifies the kind of hook event a Context describes.
type Event string

const (
	EventPreToolUse       Event = "PreToolUse"
	EventPostToolUse      Event = "PostToolUse"
	EventStop             Event = "Stop"
	EventSubagentStop     Event = "SubagentStop"
	EventUserPromptSubmit Event = "UserPromptSubmit"
	EventSessionStart     Event = "SessionStart"
	EventSessionEnd       Event = "SessionEnd"
	EventPreCompact       Event = "PreCompact"
	EventNotification     Event = "Notification"
)

// Context is a single agent-tool hook invocation: the opaque matching
// context for this domain.
type Context struct {
	event      Event
	toolName   string
	args       map[string]string
	sessionID  string
	cwd        string
	gitBranch  *string
}

func newContext(event Event) *Context {
	return &Context{event: event, args: make(map[string]string)}
}

// PreToolUse builds a Context for a pre-tool-use event.
func PreToolUse(toolName string) *Context {
	c := newContext(EventPreToolUse)
	c.toolName = toolName
	return c
}

// PostToolUse builds a Context for a post-tool-use event.
func PostToolUse(toolName string) *Context {
	c := newContext(EventPostToolUse)
	c.toolName = toolName
	return c
}

// Stop builds a Context for a stop event.
func Stop() *Context { return newContext(EventStop) }

// SubagentStop builds a Context for a subagent-stop event.
func SubagentStop() *Context { return newContext(EventSubagentStop) }

// UserPromptSubmit builds a Context for a user-prompt-submit event.
func UserPromptSubmit() *Context { return newContext(EventUserPromptSubmit) }

// SessionStart builds a Context for a session-start event.
func SessionStart() *Context { return newContext(EventSessionStart) }

// SessionEnd builds a Context for a session-end event.
func SessionEnd() *Context { return newContext(EventSessionEnd) }

// PreCompact builds a Context for a pre-compact event.
func PreCompact() *Context { return newContext(EventPreCompact) }

// Notification builds a Context for a notification event.
func Notification() *Context { return newContext(EventNotification) }

// WithArg attaches a tool argument, returning c for chaining.
func (c *Context) WithArg(name, value string) *Context {
	c.args[name] = value
	return c
}

// WithSessionID sets the session id, returning c for chaining.
func (c *Context) WithSessionID(id string) *Context {
	c.sessionID = id
	return c
}

// WithCwd sets the working directory, returning c for chaining.
func (c *Context) WithCwd(cwd string) *Context {
	c.cwd = cwd
	return c
}

// WithGitBranch sets the git branch, returning c for chaining.
func (c *Context) WithGitBranch(branch string) *Context {
	c.gitBranch = &branch
	return c
}

func (c *Context) Event() Event           { return c.event }
func (c *Context) ToolName() string       { return c.toolName }
func (c *Context) SessionID() string      { return c.sessionID }
func (c *Context) Cwd() string            { return c.cwd }

// GitBranch returns the branch and true, or ("", false) if not set,
// e.g. outside a repository or in a detached-HEAD context.
func (c *Context) GitBranch() (string, bool) {
	if c.gitBranch == nil {
		return "", false
	}
	return *c.gitBranch, true
}

// Argument returns the named argument and true, or ("", false) if unset.
func (c *Context) Argument(name string) (string, bool) {
	v, ok := c.args[name]
	return v, ok
}
