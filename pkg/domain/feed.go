package domain

import "time"

// RecordType identifies the kind of content behind a feed record
type RecordType string

const (
	RecordProject  RecordType = "project"
	RecordBlogPost RecordType = "blogpost"
	// external items carry their classified category as the record type,
	// e.g. "article", "tutorial", "discussion", "news"
)

// Project represents a first-party project eligible for the feed
type Project struct {
	ID           int64
	Title        string
	Description  string
	AuthorName   string
	AuthorHandle string
	AvatarURL    string
	Stars        int
	Forks        int
	LikeCount    int
	CommentCount int
	Tags         []string
	Featured     bool
	CreatedAt    time.Time
}

// BlogPost represents a first-party blog post; only published posts
// are eligible for the feed
type BlogPost struct {
	ID           int64
	Title        string
	Excerpt      string
	Content      string
	AuthorName   string
	AuthorHandle string
	AvatarURL    string
	LikeCount    int
	CommentCount int
	ReadTime     int // minutes, 0 means derive from content length
	Tags         []string
	Published    bool
	CreatedAt    time.Time
}

// FeedAuthor is the uniform author shape exposed to feed consumers
type FeedAuthor struct {
	Name      string `json:"name"`
	Handle    string `json:"handle"`
	AvatarURL string `json:"avatarUrl,omitempty"`
}

// FeedStats carries per-record engagement counters; zero-valued fields
// are omitted so each record type exposes only its own counters
type FeedStats struct {
	Stars    int `json:"stars,omitempty"`
	Forks    int `json:"forks,omitempty"`
	Likes    int `json:"likes,omitempty"`
	Comments int `json:"comments"`
	Points   int `json:"points,omitempty"`
	ReadTime int `json:"readTime,omitempty"`
}

// FeedRecord is the uniform shape exposed to feed consumers. It is
// assembled on read and never persisted.
type FeedRecord struct {
	ID          string     `json:"id"`
	Type        string     `json:"type"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Author      FeedAuthor `json:"author"`
	Stats       FeedStats  `json:"stats"`
	Tags        []string   `json:"tags"`
	CreatedAt   time.Time  `json:"createdAt"`
	RelativeAge string     `json:"relativeAge"`
	Featured    bool       `json:"featured"`
}

// TagCount is one entry of the trending tags aggregation
type TagCount struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}
