package source

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/go-pkgz/lgr"
	"github.com/go-pkgz/repeater/v2"

	"github.com/umputun/devpulse/pkg/domain"
)

// hard safety ceiling, independent of the caller's requested limit
const devToMaxCap = 25

// DevTo fetches recent articles from the Dev.to articles API
type DevTo struct {
	client       *http.Client
	baseURL      string
	minReactions int
	token        string
}

// DevToParams holds adapter construction parameters
type DevToParams struct {
	BaseURL      string // defaults to the public Dev.to API
	Timeout      time.Duration
	MinReactions int    // minimum positive reactions for an article to be kept
	Token        string // optional API key, reduces upstream throttling
}

// NewDevTo creates a Dev.to adapter
func NewDevTo(params DevToParams) *DevTo {
	if params.BaseURL == "" {
		params.BaseURL = "https://dev.to/api"
	}
	if params.Timeout == 0 {
		params.Timeout = 15 * time.Second
	}
	return &DevTo{
		client:       &http.Client{Timeout: params.Timeout},
		baseURL:      params.BaseURL,
		minReactions: params.MinReactions,
		token:        params.Token,
	}
}

// Name returns the provider identity
func (d *DevTo) Name() domain.Source { return domain.SourceDevTo }

// devToArticle is the raw article shape of the Dev.to listing API
type devToArticle struct {
	ID                    int64    `json:"id"`
	Title                 string   `json:"title"`
	URL                   string   `json:"url"`
	PositiveReactionCount int      `json:"positive_reactions_count"`
	CommentsCount         int      `json:"comments_count"`
	PublishedAt           string   `json:"published_at"`
	TagList               []string `json:"tag_list"`
	User                  struct {
		Name     string `json:"name"`
		Username string `json:"username"`
	} `json:"user"`
}

// Fetch returns up to min(limit, 25) normalized recent articles. Any
// batch-level failure is logged and yields an empty result, a malformed
// article is dropped without affecting the batch.
func (d *DevTo) Fetch(ctx context.Context, limit int) []domain.ExternalItem {
	n := capLimit(limit, devToMaxCap)

	articles, err := d.articles(ctx, n)
	if err != nil {
		lgr.Printf("[WARN] devto: fetch articles failed: %v", err)
		return []domain.ExternalItem{}
	}

	items := make([]domain.ExternalItem, 0, len(articles))
	for _, a := range articles {
		published, err := time.Parse(time.RFC3339, a.PublishedAt)
		if err != nil {
			lgr.Printf("[DEBUG] devto: skip article %d, bad published_at %q", a.ID, a.PublishedAt)
			continue
		}
		if a.URL == "" {
			// canonical provider URL built from the article ID
			a.URL = fmt.Sprintf("https://dev.to/articles/%d", a.ID)
		}
		if !acceptable(a.Title, a.PositiveReactionCount, d.minReactions) {
			continue
		}

		author := a.User.Name
		if author == "" {
			author = a.User.Username
		}

		items = append(items, domain.ExternalItem{
			SourceID:     fmt.Sprintf("%d", a.ID),
			Source:       domain.SourceDevTo,
			Title:        a.Title,
			URL:          a.URL,
			Points:       a.PositiveReactionCount,
			CommentCount: a.CommentsCount,
			Author:       author,
			Category:     classify(a.Title, a.TagList),
			PublishedAt:  published.UTC(),
		})
	}

	lgr.Printf("[DEBUG] devto: fetched %d articles, %d passed filters", len(articles), len(items))
	return items
}

// articles retrieves the recent article listing with retries
func (d *DevTo) articles(ctx context.Context, limit int) ([]devToArticle, error) {
	var articles []devToArticle
	retrier := repeater.NewBackoff(3, 200*time.Millisecond, repeater.WithMaxDelay(2*time.Second))
	err := retrier.Do(ctx, func() error {
		url := fmt.Sprintf("%s/articles?per_page=%d", d.baseURL, limit)
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, http.NoBody)
		if err != nil {
			return fmt.Errorf("make request: %w", err)
		}
		if d.token != "" {
			req.Header.Set("api-key", d.token)
		}

		resp, err := d.client.Do(req)
		if err != nil {
			return fmt.Errorf("get articles: %w", err)
		}
		defer resp.Body.Close() //nolint:errcheck // nothing to do with close error

		if resp.StatusCode != http.StatusOK {
			return fmt.Errorf("unexpected status %d", resp.StatusCode)
		}
		if err := json.NewDecoder(resp.Body).Decode(&articles); err != nil {
			return fmt.Errorf("decode articles: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return articles, nil
}
