package source

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/go-pkgz/lgr"
	"github.com/go-pkgz/repeater/v2"
	"golang.org/x/sync/errgroup"

	"github.com/umputun/devpulse/pkg/domain"
)

// hard safety ceiling, independent of the caller's requested limit
const hackerNewsMaxCap = 30

// concurrent per-item fetches against the HN API
const hackerNewsFetchWorkers = 5

// HackerNews fetches top stories from the Hacker News Firebase API
type HackerNews struct {
	client    *http.Client
	baseURL   string
	minPoints int
}

// HackerNewsParams holds adapter construction parameters
type HackerNewsParams struct {
	BaseURL   string // defaults to the public Firebase API
	Timeout   time.Duration
	MinPoints int // minimum score for a story to be kept
}

// NewHackerNews creates a Hacker News adapter
func NewHackerNews(params HackerNewsParams) *HackerNews {
	if params.BaseURL == "" {
		params.BaseURL = "https://hacker-news.firebaseio.com/v0"
	}
	if params.Timeout == 0 {
		params.Timeout = 15 * time.Second
	}
	return &HackerNews{
		client:    &http.Client{Timeout: params.Timeout},
		baseURL:   params.BaseURL,
		minPoints: params.MinPoints,
	}
}

// Name returns the provider identity
func (h *HackerNews) Name() domain.Source { return domain.SourceHackerNews }

// hnStory is the raw item shape of the HN API
type hnStory struct {
	ID          int64  `json:"id"`
	By          string `json:"by"`
	Descendants int    `json:"descendants"`
	Score       int    `json:"score"`
	Time        int64  `json:"time"` // unix seconds
	Title       string `json:"title"`
	Type        string `json:"type"`
	URL         string `json:"url"`
	Dead        bool   `json:"dead"`
	Deleted     bool   `json:"deleted"`
}

// Fetch returns up to min(limit, 30) normalized top stories, ranked order
// preserved. Any batch-level failure is logged and yields an empty result,
// per-story failures drop only the affected story.
func (h *HackerNews) Fetch(ctx context.Context, limit int) []domain.ExternalItem {
	n := capLimit(limit, hackerNewsMaxCap)

	ids, err := h.topStoryIDs(ctx)
	if err != nil {
		lgr.Printf("[WARN] hackernews: fetch top stories failed: %v", err)
		return []domain.ExternalItem{}
	}
	if len(ids) > n {
		ids = ids[:n]
	}

	// fetch story details concurrently, keeping ranked slots so order survives
	stories := make([]*hnStory, len(ids))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(hackerNewsFetchWorkers)
	for i, id := range ids {
		g.Go(func() error {
			story, err := h.story(gctx, id)
			if err != nil {
				lgr.Printf("[DEBUG] hackernews: skip story %d: %v", id, err)
				return nil // a malformed story is not fatal to the batch
			}
			stories[i] = story
			return nil
		})
	}
	_ = g.Wait() // goroutines never return errors

	items := make([]domain.ExternalItem, 0, len(stories))
	for _, story := range stories {
		if story == nil || story.Dead || story.Deleted || story.Type != "story" {
			continue
		}
		if story.Time == 0 {
			continue // no publication timestamp
		}
		if !acceptable(story.Title, story.Score, h.minPoints) {
			continue
		}

		url := story.URL
		if url == "" {
			// text posts have no external link, point at the HN discussion
			url = fmt.Sprintf("https://news.ycombinator.com/item?id=%d", story.ID)
		}

		items = append(items, domain.ExternalItem{
			SourceID:     fmt.Sprintf("%d", story.ID),
			Source:       domain.SourceHackerNews,
			Title:        story.Title,
			URL:          url,
			Points:       story.Score,
			CommentCount: story.Descendants,
			Author:       story.By,
			Category:     classify(story.Title, nil),
			PublishedAt:  time.Unix(story.Time, 0).UTC(),
		})
	}

	lgr.Printf("[DEBUG] hackernews: fetched %d stories, %d passed filters", len(ids), len(items))
	return items
}

// topStoryIDs retrieves the current ranked top story IDs with retries
func (h *HackerNews) topStoryIDs(ctx context.Context) ([]int64, error) {
	var ids []int64
	retrier := repeater.NewBackoff(3, 200*time.Millisecond, repeater.WithMaxDelay(2*time.Second))
	err := retrier.Do(ctx, func() error {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, h.baseURL+"/topstories.json", http.NoBody)
		if err != nil {
			return fmt.Errorf("make request: %w", err)
		}
		resp, err := h.client.Do(req)
		if err != nil {
			return fmt.Errorf("get top stories: %w", err)
		}
		defer resp.Body.Close() //nolint:errcheck // nothing to do with close error

		if resp.StatusCode != http.StatusOK {
			return fmt.Errorf("unexpected status %d", resp.StatusCode)
		}
		if err := json.NewDecoder(resp.Body).Decode(&ids); err != nil {
			return fmt.Errorf("decode top stories: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return ids, nil
}

// story retrieves a single story by ID
func (h *HackerNews) story(ctx context.Context, id int64) (*hnStory, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fmt.Sprintf("%s/item/%d.json", h.baseURL, id), http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("make request: %w", err)
	}
	resp, err := h.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("get story: %w", err)
	}
	defer resp.Body.Close() //nolint:errcheck // nothing to do with close error

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	var story hnStory
	if err := json.NewDecoder(resp.Body).Decode(&story); err != nil {
		return nil, fmt.Errorf("decode story: %w", err)
	}
	return &story, nil
}
