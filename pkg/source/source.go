// Package source implements adapters for external content providers.
// Each adapter fetches raw items from one provider's public API, applies
// a validity filter, classifies surviving items and normalizes them into
// domain.ExternalItem records. Adapters absorb all upstream failures:
// a failed batch fetch is logged and returned as an empty result, a
// malformed individual item is dropped without affecting the batch.
package source

import (
	"context"
	"strings"

	"github.com/umputun/devpulse/pkg/domain"
)

// Adapter fetches and normalizes content from one external provider
type Adapter interface {
	Name() domain.Source
	Fetch(ctx context.Context, limit int) []domain.ExternalItem
}

// titles containing any of these markers are dropped regardless of engagement
var denylist = []string{"spam", "test"}

// acceptable reports whether an item passes the validity filter: non-empty
// title, engagement at or above the adapter's threshold, and no denylisted
// marker in the title
func acceptable(title string, engagement, minEngagement int) bool {
	if strings.TrimSpace(title) == "" {
		return false
	}
	if engagement < minEngagement {
		return false
	}
	lower := strings.ToLower(title)
	for _, marker := range denylist {
		if strings.Contains(lower, marker) {
			return false
		}
	}
	return true
}

// capLimit bounds the caller's requested limit by the adapter's hard ceiling
func capLimit(limit, maxCap int) int {
	if limit <= 0 || limit > maxCap {
		return maxCap
	}
	return limit
}
