package domain

import "time"

// Source identifies an external content provider
type Source string

const (
	SourceHackerNews Source = "hackernews"
	SourceDevTo      Source = "devto"
)

// String returns the source as a string
func (s Source) String() string { return string(s) }

// DisplayName returns the human-readable provider name, used as the
// synthesized author identity when the provider gives none
func (s Source) DisplayName() string {
	switch s {
	case SourceHackerNews:
		return "Hacker News"
	case SourceDevTo:
		return "Dev.to"
	}
	return string(s)
}

// ParseSource converts a string to a Source, false if unknown
func ParseSource(s string) (Source, bool) {
	switch Source(s) {
	case SourceHackerNews, SourceDevTo:
		return Source(s), true
	}
	return "", false
}

// Category is the classification assigned to external content
type Category string

const (
	CategoryArticle    Category = "article"
	CategoryTutorial   Category = "tutorial"
	CategoryDiscussion Category = "discussion"
	CategoryNews       Category = "news"
)

// ExternalItem represents one normalized piece of third-party content.
// Items are immutable once stored: there is no update path, only
// insert-if-absent and retention-based deletion.
type ExternalItem struct {
	ID           int64
	SourceID     string // provider-specific identifier
	Source       Source
	Title        string
	URL          string
	Points       int
	CommentCount int
	Author       string
	Category     Category
	PublishedAt  time.Time
	IngestedAt   time.Time
}
