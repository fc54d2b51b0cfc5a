package repair

import (
	"github.com/jsonrepair-go/jsonrepair/internal/errors"
	"github.com/jsonrepair-go/jsonrepair/internal/repair/diffutil"
)

// RuleEngine executes rule lists against a Context, detecting per-rule
// stream changes and recording diagnostics.
type RuleEngine struct {
	Registry *RuleRegistry
	Logger   Logger
}

// NewRuleEngine returns an engine bound to registry, logging to NopLogger
// until WithLogger overrides it.
func NewRuleEngine(registry *RuleRegistry) *RuleEngine {
	return &RuleEngine{Registry: registry, Logger: NopLogger}
}

// WithLogger sets the engine's logger and returns it for chaining.
func (e *RuleEngine) WithLogger(l Logger) *RuleEngine {
	if l != nil {
		e.Logger = l
	}
	return e
}

// RunRules runs rules once, in the order given, against ctx. It clears
// ctx.Changed up front; for each rule whose Applies predicate holds it
// snapshots the token concatenation, invokes Apply, and re-concatenates —
// if the two differ it marks ctx.Changed, records the rule name (deduped,
// order-preserving) and a truncated diff preview. In dry-run mode,
// modifications are deduped by rule name so repeatedly-firing rules don't
// flood the report. Returns the final ctx.Changed.
func (e *RuleEngine) RunRules(ctx *Context, rules []Rule) bool {
	ctx.Changed = false

	for _, rule := range rules {
		var applies bool
		if err := errors.SafeCall("rule_engine", errors.ErrRulePanic, func() {
			applies = rule.Applies(ctx)
		}); err != nil {
			ctx.Report.AddIssue("rule " + rule.Name() + " panicked in Applies: " + err.Error())
			continue
		}
		if !applies {
			continue
		}

		before := ctx.ConcatTokens()
		if err := errors.SafeCall("rule_engine", errors.ErrRulePanic, func() {
			rule.Apply(ctx)
		}); err != nil {
			ctx.Report.AddIssue("rule " + rule.Name() + " panicked in Apply: " + err.Error())
			continue
		}
		after := ctx.ConcatTokens()

		if before == after {
			continue
		}

		ctx.Changed = true
		ctx.Report.recordRule(rule.Name())

		preview := diffutil.Preview(before, after)

		if ctx.DryRun {
			if !ctx.Report.hasModificationFor(rule.Name()) {
				ctx.Report.recordModification(rule.Name(), preview)
			}
		} else {
			ctx.Report.recordModification(rule.Name(), preview)
		}

		e.Logger.Debugw("rule fired",
			"rule", rule.Name(),
			"iteration", ctx.CurrentIteration,
			"dry_run", ctx.DryRun,
		)
	}

	return ctx.Changed
}

// RunFlow resolves tags via the registry (tag-union, priority-sorted) and
// delegates to RunRules.
func (e *RuleEngine) RunFlow(ctx *Context, tags []string) bool {
	selector := NewRuleSelector(e.Registry).AddTags(tags...)
	return e.RunRules(ctx, selector.Resolve())
}
