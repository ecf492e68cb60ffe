package kv

import "github.com/bjaus/xuma"

// Register wires this domain's data inputs into b under the
// xuma.kv.v1.* type-urls. Call before RegistryBuilder.Build.
func Register(b *xuma.RegistryBuilder[*Context, NamedAction]) *xuma.RegistryBuilder[*Context, NamedAction] {
	b.WithInputFactory(FieldInputTypeURL, fieldInputFactory)
	b.WithInputFactory(HasFieldInputTypeURL, hasFieldInputFactory)
	return b
}

// NewRegistry is a convenience constructor: a Registry over *Context and
// NamedAction with this domain's inputs pre-registered.
func NewRegistry(opts ...xuma.RegistryOption[*Context, NamedAction]) *xuma.Registry[*Context, NamedAction] {
	b := xuma.NewRegistryBuilder[*Context, NamedAction](opts...)
	Register(b)
	return b.Build()
}
