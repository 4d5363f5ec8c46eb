package feed

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/umputun/devpulse/pkg/domain"
)

// Trending counts tag occurrences across recent first-party records and
// returns the top tags by count, most frequent first
func (a *Assembler) Trending(ctx context.Context, window time.Duration, limit int) ([]domain.TagCount, error) {
	since := a.now().Add(-window)

	projectTags, err := a.store.ProjectTagsSince(ctx, since)
	if err != nil {
		return nil, fmt.Errorf("project tags: %w", err)
	}
	postTags, err := a.store.PostTagsSince(ctx, since)
	if err != nil {
		return nil, fmt.Errorf("post tags: %w", err)
	}

	counts := map[string]int{}
	for _, tags := range projectTags {
		for _, tag := range tags {
			counts[strings.ToLower(tag)]++
		}
	}
	for _, tags := range postTags {
		for _, tag := range tags {
			counts[strings.ToLower(tag)]++
		}
	}

	result := make([]domain.TagCount, 0, len(counts))
	for name, count := range counts {
		result = append(result, domain.TagCount{Name: name, Count: count})
	}
	sort.Slice(result, func(i, j int) bool {
		if result[i].Count != result[j].Count {
			return result[i].Count > result[j].Count
		}
		return result[i].Name < result[j].Name
	})

	if limit > 0 && len(result) > limit {
		result = result[:limit]
	}
	return result, nil
}
