package repair

import "testing"

func noopRule(name string, priority int, tags ...string) Rule {
	return NewRule(name, priority, tags, func(*Context) bool { return false }, func(*Context) {})
}

func TestRegistryRulesForTagUnion(t *testing.T) {
	reg := NewRuleRegistry()
	reg.Register(noopRule("a", 10, "structure"))
	reg.Register(noopRule("b", 20, "values"))
	reg.Register(noopRule("c", 30, "structure", "values"))

	structureRules := reg.RulesForTag("structure")
	if len(structureRules) != 2 {
		t.Fatalf("RulesForTag(structure) = %d rules, want 2", len(structureRules))
	}

	all := reg.RulesForTag(allTag)
	if len(all) != 3 {
		t.Fatalf("RulesForTag(all) = %d rules, want 3", len(all))
	}
}

func TestSelectorResolveSortsByPriorityThenRegistrationOrder(t *testing.T) {
	reg := NewRuleRegistry()
	reg.Register(noopRule("high", 50, "structure"))
	reg.Register(noopRule("low", 10, "structure"))
	reg.Register(noopRule("low-second", 10, "structure"))

	resolved := NewRuleSelector(reg).AddTags("structure").Resolve()
	if len(resolved) != 3 {
		t.Fatalf("resolved = %d rules, want 3", len(resolved))
	}
	if resolved[0].Name() != "low" || resolved[1].Name() != "low-second" || resolved[2].Name() != "high" {
		names := make([]string, len(resolved))
		for i, r := range resolved {
			names[i] = r.Name()
		}
		t.Errorf("resolved order = %v, want [low low-second high]", names)
	}
}

func TestSelectorResolveExcludes(t *testing.T) {
	reg := NewRuleRegistry()
	reg.Register(noopRule("keep", 10, "structure"))
	reg.Register(noopRule("drop", 20, "structure"))

	resolved := NewRuleSelector(reg).AddTags("structure").ExcludeRules("drop").Resolve()
	if len(resolved) != 1 || resolved[0].Name() != "keep" {
		t.Fatalf("resolved = %v, want only [keep]", resolved)
	}
}

func TestSelectorResolveIsMemoized(t *testing.T) {
	reg := NewRuleRegistry()
	reg.Register(noopRule("a", 10, "structure"))

	sel := NewRuleSelector(reg).AddTags("structure")
	first := sel.Resolve()
	hitsBefore, _ := reg.selectorHits.stats()
	second := sel.Resolve()
	hitsAfter, _ := reg.selectorHits.stats()

	if len(first) != len(second) {
		t.Fatalf("resolve results differ across calls: %v vs %v", first, second)
	}
	if hitsAfter <= hitsBefore {
		t.Errorf("expected a cache hit on the second Resolve call, hits %d -> %d", hitsBefore, hitsAfter)
	}
}

func TestFlowRunStopsAtFixedPoint(t *testing.T) {
	reg := NewRuleRegistry()
	calls := 0
	reg.RegisterFunc("toggle", 10, []string{"structure"},
		func(ctx *Context) bool { return calls < 1 },
		func(ctx *Context) {
			calls++
			ctx.Tokens = append(ctx.Tokens, NewToken(BARE_WORD, "x", 0, 0, 0))
		},
	)

	engine := NewRuleEngine(reg)
	flow := NewFlowFromTags("test", engine, "structure")
	ctx := NewContext("")
	ctx.Tokens = TokenStream{}

	changed := flow.Run(ctx)
	if !changed {
		t.Fatal("expected Run to report a change")
	}
	if calls != 1 {
		t.Errorf("expected the rule to fire exactly once before reaching a fixed point, fired %d times", calls)
	}
}
