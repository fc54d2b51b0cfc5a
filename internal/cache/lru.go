package cache

import (
	"context"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/jsonrepair-go/jsonrepair/internal/repair"
)

type lruEntry struct {
	report  *repair.RepairReport
	expires time.Time
}

// LRU is an in-process, fixed-capacity Cache backed by
// hashicorp/golang-lru/v2 — the natural backend for a single-process CLI
// or short-lived API replica that doesn't need a shared cache.
type LRU struct {
	cache *lru.Cache[string, lruEntry]
}

// NewLRU returns an LRU cache holding at most size entries.
func NewLRU(size int) (*LRU, error) {
	c, err := lru.New[string, lruEntry](size)
	if err != nil {
		return nil, err
	}
	return &LRU{cache: c}, nil
}

// Get implements Cache.
func (l *LRU) Get(_ context.Context, text string) (*repair.RepairReport, bool, error) {
	entry, ok := l.cache.Get(KeyFor(text))
	if !ok {
		return nil, false, nil
	}
	if !entry.expires.IsZero() && time.Now().After(entry.expires) {
		l.cache.Remove(KeyFor(text))
		return nil, false, nil
	}
	return entry.report, true, nil
}

// Set implements Cache. ttl of zero means the entry never expires on its
// own (though it can still be evicted for capacity).
func (l *LRU) Set(_ context.Context, text string, report *repair.RepairReport, ttl time.Duration) error {
	var expires time.Time
	if ttl > 0 {
		expires = time.Now().Add(ttl)
	}
	l.cache.Add(KeyFor(text), lruEntry{report: report, expires: expires})
	return nil
}
