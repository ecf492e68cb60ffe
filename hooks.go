package xuma

import "context"

// RegistryOption configures load-time hook behavior for a
// RegistryBuilder via functional options.
type RegistryOption[Ctx, A any] func(*RegistryBuilder[Ctx, A])

// WithOnLoad adds a hook called once per resolved type_url during
// LoadMatcher. Multiple hooks are called in order.
//
// Example:
//
//	xuma.NewRegistryBuilder[*kv.Context, kv.NamedAction](
//	    xuma.WithOnLoad[*kv.Context, kv.NamedAction](func(ctx context.Context, typeURL string) {
//	        log.Printf("resolved %s", typeURL)
//	    }),
//	)
func WithOnLoad[Ctx, A any](fn func(ctx context.Context, typeURL string)) RegistryOption[Ctx, A] {
	return func(b *RegistryBuilder[Ctx, A]) {
		b.hooks.onLoad = append(b.hooks.onLoad, fn)
	}
}

// WithOnLoadError adds a hook called when LoadMatcher fails. Multiple
// hooks are called in order.
func WithOnLoadError[Ctx, A any](fn func(ctx context.Context, err *LoadError)) RegistryOption[Ctx, A] {
	return func(b *RegistryBuilder[Ctx, A]) {
		b.hooks.onLoadError = append(b.hooks.onLoadError, fn)
	}
}
