package repair

// Flow groups rule execution with an internal bounded fixed-point loop: it
// runs its selected rules up to MaxPasses times, exiting early the first
// pass that produces no change.
type Flow struct {
	Name      string
	Engine    *RuleEngine
	Selector  *RuleSelector
	MaxPasses int
}

const defaultMaxPasses = 10

// NewFlowFromTags builds a Flow that selects rules by tag union.
func NewFlowFromTags(name string, engine *RuleEngine, tags ...string) *Flow {
	return &Flow{
		Name:      name,
		Engine:    engine,
		Selector:  NewRuleSelector(engine.Registry).AddTags(tags...),
		MaxPasses: defaultMaxPasses,
	}
}

// NewFlowFromSelector builds a Flow around a caller-assembled selector, for
// custom flows that need explicit includes/excludes beyond a tag union.
func NewFlowFromSelector(name string, engine *RuleEngine, selector *RuleSelector) *Flow {
	return &Flow{
		Name:      name,
		Engine:    engine,
		Selector:  selector,
		MaxPasses: defaultMaxPasses,
	}
}

// Run resolves the flow's selector once and runs the resulting rule list up
// to MaxPasses times, stopping at the first pass that makes no change.
func (f *Flow) Run(ctx *Context) bool {
	rules := f.Selector.Resolve()
	changed := false
	for pass := 0; pass < f.MaxPasses; pass++ {
		if f.Engine.RunRules(ctx, rules) {
			changed = true
		} else {
			break
		}
	}
	return changed
}

// BootstrapFlow is the mandatory first flow run every iteration: it ensures
// the stream carries a root object or array, balances brackets, and strips
// prefix garbage.
func BootstrapFlow(engine *RuleEngine) *Flow {
	f := NewFlowFromTags("bootstrap", engine, "structure", "pre_repair")
	f.MaxPasses = 5
	return f
}

// StandardFlow is the default user flow.
func StandardFlow(engine *RuleEngine) *Flow {
	return NewFlowFromTags("standard", engine,
		"structure", "pre_repair", "values", "smart", "normalization", "cleanup")
}

// MinimalFlow applies only coarse structural repair.
func MinimalFlow(engine *RuleEngine) *Flow {
	return NewFlowFromTags("minimal", engine, "structure", "pre_repair")
}

// AggressiveFlow applies every registered rule.
func AggressiveFlow(engine *RuleEngine) *Flow {
	return NewFlowFromTags("aggressive", engine, allTag)
}
