// Package cache memoizes repair results by input text, so a service
// repeatedly asked to repair the same malformed payload (a flaky upstream
// retried by a client, say) doesn't re-run the rule engine every time.
package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"time"

	"github.com/jsonrepair-go/jsonrepair/internal/repair"
)

// Cache stores RepairReports keyed by input text.
type Cache interface {
	Get(ctx context.Context, text string) (*repair.RepairReport, bool, error)
	Set(ctx context.Context, text string, report *repair.RepairReport, ttl time.Duration) error
}

// KeyFor derives a cache key from input text. Exported so callers building
// a custom Cache backend don't have to re-derive the same hashing scheme.
func KeyFor(text string) string {
	sum := sha256.Sum256([]byte(text))
	return hex.EncodeToString(sum[:])
}
