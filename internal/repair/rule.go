package repair

// Rule is an atomic, stateless rewrite over a Context's TokenStream: a
// predicate (Applies) and a mutation (Apply). A plain interface over
// abstract-class polymorphism — no runtime type introspection is needed
// beyond the rule's own Name.
//
// Rules must not rely on Applies having been called immediately before
// Apply (the RuleEngine does, but a rule must be idempotent under
// re-application once the stream reaches a fixed point).
type Rule interface {
	Name() string
	Priority() int
	Tags() []string
	Applies(ctx *Context) bool
	Apply(ctx *Context)
}

// ApplyFunc mutates a Context in place.
type ApplyFunc func(ctx *Context)

// AppliesFunc is a cheap predicate over a Context.
type AppliesFunc func(ctx *Context) bool

// funcRule is a Rule built from two function values plus identity/priority/
// tags — the concrete value type the catalog's rules are built from,
// avoiding one tiny struct type per rule.
type funcRule struct {
	name     string
	priority int
	tags     []string
	applies  AppliesFunc
	apply    ApplyFunc
}

// NewRule constructs a stateless Rule value from its identity, priority,
// tags, and the two pure-ish functions that implement it.
func NewRule(name string, priority int, tags []string, applies AppliesFunc, apply ApplyFunc) Rule {
	return &funcRule{
		name:     name,
		priority: priority,
		tags:     tags,
		applies:  applies,
		apply:    apply,
	}
}

func (r *funcRule) Name() string            { return r.name }
func (r *funcRule) Priority() int            { return r.priority }
func (r *funcRule) Tags() []string           { return r.tags }
func (r *funcRule) Applies(ctx *Context) bool { return r.applies(ctx) }
func (r *funcRule) Apply(ctx *Context)       { r.apply(ctx) }
