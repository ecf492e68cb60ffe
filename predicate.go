package xuma

// Predicate is a boolean expression over a context, built from Single
// leaves composed with And/Or/Not. The zero value is not
// usable; predicates are produced by Registry.LoadMatcher or by the
// constructors below for programmatic construction.
type Predicate[Ctx any] interface {
	eval(ctx Ctx) bool
	trace(ctx Ctx) predicateTrace
}

// singlePredicate is a leaf predicate: extract data via input, then test
// it with matcher.
type singlePredicate[Ctx any] struct {
	input   DataInput[Ctx]
	matcher ValueMatcher
	// description is used only for tracing; never consulted during eval.
	description string
}

// Single builds a leaf predicate from an input and a value matcher.
func Single[Ctx any](input DataInput[Ctx], matcher ValueMatcher) Predicate[Ctx] {
	return &singlePredicate[Ctx]{input: input, matcher: matcher}
}

func (p *singlePredicate[Ctx]) eval(ctx Ctx) bool {
	return p.matcher.Matches(p.input.Get(ctx))
}

func (p *singlePredicate[Ctx]) trace(ctx Ctx) predicateTrace {
	matched := p.eval(ctx)
	return predicateTrace{Kind: "single", Description: p.description, Matched: matched}
}

type andPredicate[Ctx any] struct {
	children []Predicate[Ctx]
}

// And returns a predicate that is true iff every child is true. An empty
// And is true. Children are evaluated in declared order with
// mandatory short-circuit: once the result is false, no further child is
// evaluated.
func And[Ctx any](children ...Predicate[Ctx]) Predicate[Ctx] {
	return &andPredicate[Ctx]{children: children}
}

func (p *andPredicate[Ctx]) eval(ctx Ctx) bool {
	for _, c := range p.children {
		if !c.eval(ctx) {
			return false
		}
	}
	return true
}

func (p *andPredicate[Ctx]) trace(ctx Ctx) predicateTrace {
	t := predicateTrace{Kind: "and"}
	result := true
	for _, c := range p.children {
		if !result {
			t.Children = append(t.Children, predicateTrace{Kind: "not_visited"})
			continue
		}
		ct := c.trace(ctx)
		t.Children = append(t.Children, ct)
		if !ct.Matched {
			result = false
		}
	}
	t.Matched = result
	return t
}

type orPredicate[Ctx any] struct {
	children []Predicate[Ctx]
}

// Or returns a predicate that is true iff any child is true. An empty Or
// is false. Children are evaluated in declared order with
// mandatory short-circuit: once the result is true, no further child is
// evaluated.
func Or[Ctx any](children ...Predicate[Ctx]) Predicate[Ctx] {
	return &orPredicate[Ctx]{children: children}
}

func (p *orPredicate[Ctx]) eval(ctx Ctx) bool {
	for _, c := range p.children {
		if c.eval(ctx) {
			return true
		}
	}
	return false
}

func (p *orPredicate[Ctx]) trace(ctx Ctx) predicateTrace {
	t := predicateTrace{Kind: "or"}
	result := false
	for _, c := range p.children {
		if result {
			t.Children = append(t.Children, predicateTrace{Kind: "not_visited"})
			continue
		}
		ct := c.trace(ctx)
		t.Children = append(t.Children, ct)
		if ct.Matched {
			result = true
		}
	}
	t.Matched = result
	return t
}

type notPredicate[Ctx any] struct {
	child Predicate[Ctx]
}

// Not returns a predicate that is the negation of child.
func Not[Ctx any](child Predicate[Ctx]) Predicate[Ctx] {
	return &notPredicate[Ctx]{child: child}
}

func (p *notPredicate[Ctx]) eval(ctx Ctx) bool {
	return !p.child.eval(ctx)
}

func (p *notPredicate[Ctx]) trace(ctx Ctx) predicateTrace {
	ct := p.child.trace(ctx)
	return predicateTrace{Kind: "not", Matched: !ct.Matched, Children: []predicateTrace{ct}}
}
