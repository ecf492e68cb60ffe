package hook

import "github.com/bjaus/xuma"

// Register wires this domain's data inputs into b under their
// xuma.claude.v1.* type-urls, one factory at a time.
func Register(b *xuma.RegistryBuilder[*Context, NamedAction]) *xuma.RegistryBuilder[*Context, NamedAction] {
	b.WithInputFactory(EventTypeInputTypeURL, eventTypeInputFactory)
	b.WithInputFactory(ToolNameInputTypeURL, toolNameInputFactory)
	b.WithInputFactory(ToolArgInputTypeURL, toolArgInputFactory)
	b.WithInputFactory(SessionIDInputTypeURL, sessionIDInputFactory)
	b.WithInputFactory(CwdInputTypeURL, cwdInputFactory)
	b.WithInputFactory(GitBranchInputTypeURL, gitBranchInputFactory)
	return b
}

// NewRegistry is a convenience constructor: a Registry over *Context and
// NamedAction with this domain's inputs pre-registered.
func NewRegistry(opts ...xuma.RegistryOption[*Context, NamedAction]) *xuma.Registry[*Context, NamedAction] {
	b := xuma.NewRegistryBuilder[*Context, NamedAction](opts...)
	Register(b)
	return b.Build()
}
