package repair

import "sort"

// RuleSelector is a builder that combines tag queries, explicit includes,
// and excludes into a priority-ordered rule list.
type RuleSelector struct {
	registry *RuleRegistry
	tags     []string
	include  []Rule
	exclude  map[string]struct{}
}

// NewRuleSelector builds a selector against registry.
func NewRuleSelector(registry *RuleRegistry) *RuleSelector {
	return &RuleSelector{
		registry: registry,
		exclude:  make(map[string]struct{}),
	}
}

// AddTags accumulates tag queries; Resolve unions the rules carrying any of
// them.
func (s *RuleSelector) AddTags(tags ...string) *RuleSelector {
	s.tags = append(s.tags, tags...)
	return s
}

// AddRules accumulates explicit rule includes, added to the union
// regardless of tag membership.
func (s *RuleSelector) AddRules(rules ...Rule) *RuleSelector {
	s.include = append(s.include, rules...)
	return s
}

// ExcludeRules accumulates rule names to subtract from the final union,
// applied after tags and explicit includes.
func (s *RuleSelector) ExcludeRules(names ...string) *RuleSelector {
	for _, n := range names {
		s.exclude[n] = struct{}{}
	}
	return s
}

// Resolve computes the union of tag-keyed rules and explicit includes,
// subtracts excludes, and returns the result sorted ascending by priority.
// Sort is stable; ties break by registration order. Results are memoized per
// exact (tags, includes, excludes) combination in the registry's selector
// cache, since the four preset flows re-resolve the same tag sets on every
// iteration.
func (s *RuleSelector) Resolve() []Rule {
	includeNames := make([]string, len(s.include))
	for i, r := range s.include {
		includeNames[i] = r.Name()
	}
	excludeNames := make([]string, 0, len(s.exclude))
	for n := range s.exclude {
		excludeNames = append(excludeNames, n)
	}
	sort.Strings(excludeNames)

	key := cacheKey(s.tags, includeNames, excludeNames)
	if cached, ok := s.registry.selectorHits.get(key); ok {
		return cached
	}

	seen := make(map[string]Rule)
	for _, tag := range s.tags {
		for _, r := range s.registry.RulesForTag(tag) {
			seen[r.Name()] = r
		}
	}
	for _, r := range s.include {
		seen[r.Name()] = r
	}
	for name := range s.exclude {
		delete(seen, name)
	}

	resolved := make([]Rule, 0, len(seen))
	for _, r := range seen {
		resolved = append(resolved, r)
	}
	sort.SliceStable(resolved, func(i, j int) bool {
		pi, pj := resolved[i].Priority(), resolved[j].Priority()
		if pi != pj {
			return pi < pj
		}
		return s.registry.registrationOrder(resolved[i].Name()) < s.registry.registrationOrder(resolved[j].Name())
	})

	s.registry.selectorHits.set(key, resolved)
	return resolved
}
