package xuma

// DataInput extracts a MatchingData from a context of type Ctx. Inputs
// must be pure functions of the context — the same context yields the
// same data — and safe for concurrent invocation.
type DataInput[Ctx any] interface {
	Get(ctx Ctx) MatchingData
}

// InputFunc adapts a function to DataInput.
type InputFunc[Ctx any] func(ctx Ctx) MatchingData

// Get implements DataInput.
func (f InputFunc[Ctx]) Get(ctx Ctx) MatchingData { return f(ctx) }
