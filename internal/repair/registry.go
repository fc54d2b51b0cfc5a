package repair

import (
	"container/list"
	"strings"
	"sync"
	"sync/atomic"
)

// allTag is the synthetic tag every rule is also indexed under.
const allTag = "all"

const (
	selectorCacheMaxEntries = 256
)

// selectorCacheEntry is a cached RuleSelector.Resolve() result, keyed by a
// canonical string of its inputs.
type selectorCacheEntry struct {
	key   string
	rules []Rule
}

// selectorCache is a small LRU memoizing Resolve() results, adapted from the
// teacher's runtime/metadata lruCache: the four preset flows re-resolve the
// same tag sets on every iteration, so this turns that into a map lookup
// after the first resolution.
type selectorCache struct {
	mu           sync.Mutex
	maxEntries   int
	entries      map[string]*list.Element
	evictionList *list.List
	hits, misses int64
}

func newSelectorCache() *selectorCache {
	return &selectorCache{
		maxEntries:   selectorCacheMaxEntries,
		entries:      make(map[string]*list.Element),
		evictionList: list.New(),
	}
}

func (c *selectorCache) get(key string) ([]Rule, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if elem, ok := c.entries[key]; ok {
		c.evictionList.MoveToFront(elem)
		atomic.AddInt64(&c.hits, 1)
		return elem.Value.(*selectorCacheEntry).rules, true
	}
	atomic.AddInt64(&c.misses, 1)
	return nil, false
}

func (c *selectorCache) set(key string, rules []Rule) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if elem, ok := c.entries[key]; ok {
		elem.Value.(*selectorCacheEntry).rules = rules
		c.evictionList.MoveToFront(elem)
		return
	}
	elem := c.evictionList.PushFront(&selectorCacheEntry{key: key, rules: rules})
	c.entries[key] = elem
	for c.evictionList.Len() > c.maxEntries {
		back := c.evictionList.Back()
		if back == nil {
			break
		}
		c.evictionList.Remove(back)
		delete(c.entries, back.Value.(*selectorCacheEntry).key)
	}
}

// stats returns cache hit/miss counters, read by tests.
func (c *selectorCache) stats() (hits, misses int64) {
	return atomic.LoadInt64(&c.hits), atomic.LoadInt64(&c.misses)
}

// RuleRegistry is a process-wide mapping from tag to the rules carrying that
// tag, populated once at init time and read-only thereafter — safe to share
// across concurrent parses.
type RuleRegistry struct {
	mu           sync.RWMutex
	byTag        map[string][]Rule
	order        map[string]int // registration order, for stable priority ties
	nextOrder    int
	selectorHits *selectorCache
}

// NewRuleRegistry returns an empty registry. Most callers use the
// process-wide DefaultRegistry populated by this package's rule catalog.
func NewRuleRegistry() *RuleRegistry {
	return &RuleRegistry{
		byTag:        make(map[string][]Rule),
		order:        make(map[string]int),
		selectorHits: newSelectorCache(),
	}
}

// Register adds rule under every tag it carries, plus the synthetic "all"
// tag. Registration is a one-time side effect at component-init time; there
// is no dynamic re-registration during a parse.
func (r *RuleRegistry) Register(rule Rule) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, seen := r.order[rule.Name()]; !seen {
		r.order[rule.Name()] = r.nextOrder
		r.nextOrder++
	}

	tags := append([]string{allTag}, rule.Tags()...)
	for _, tag := range tags {
		r.byTag[tag] = append(r.byTag[tag], rule)
	}
}

// RegisterFunc is the registration hook exposed to users: register a
// custom Rule under the given tags and priority without needing the
// funcRule constructor directly.
func (r *RuleRegistry) RegisterFunc(name string, priority int, tags []string, applies AppliesFunc, apply ApplyFunc) {
	r.Register(NewRule(name, priority, tags, applies, apply))
}

// RulesForTag returns every rule registered under tag, unsorted.
func (r *RuleRegistry) RulesForTag(tag string) []Rule {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Rule, len(r.byTag[tag]))
	copy(out, r.byTag[tag])
	return out
}

// registrationOrder returns the order rule was first Register-ed in, used to
// break priority ties stably.
func (r *RuleRegistry) registrationOrder(name string) int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.order[name]
}

// cacheKey canonicalizes a selector's inputs into a single lookup key.
func cacheKey(tags, includes, excludes []string) string {
	var b strings.Builder
	b.WriteString("t:")
	b.WriteString(strings.Join(tags, ","))
	b.WriteString("|i:")
	b.WriteString(strings.Join(includes, ","))
	b.WriteString("|e:")
	b.WriteString(strings.Join(excludes, ","))
	return b.String()
}

// DefaultRegistry is the process-wide registry populated by this package's
// init-time rule registration (see the init functions in
// internal/repair/rules).
var DefaultRegistry = NewRuleRegistry()
