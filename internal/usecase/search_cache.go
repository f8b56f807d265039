package usecase

import (
	"context"
	"time"
)

// SearchCache fronts filtered list results. Implementations must degrade to
// no-ops when the backing store is unavailable; the in-memory repository
// remains the source of truth either way.
type SearchCache interface {
	GetJSON(ctx context.Context, key string, out any) (bool, error)
	SetJSON(ctx context.Context, key string, value any, ttl time.Duration) error
	DeleteByPattern(ctx context.Context, pattern string) error
}
