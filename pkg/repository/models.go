package repository

import (
	"database/sql/driver"
	"encoding/json"
	"time"
)

// externalItemSQL is the database representation of an external item
type externalItemSQL struct {
	ID           int64     `db:"id"`
	SourceID     string    `db:"source_id"`
	Source       string    `db:"source"`
	Title        string    `db:"title"`
	URL          string    `db:"url"`
	Points       int       `db:"points"`
	CommentCount int       `db:"comment_count"`
	Author       string    `db:"author"`
	Category     string    `db:"category"`
	PublishedAt  time.Time `db:"published_at"`
	IngestedAt   time.Time `db:"ingested_at"`
}

// projectSQL is the database representation of a project
type projectSQL struct {
	ID           int64     `db:"id"`
	Title        string    `db:"title"`
	Description  string    `db:"description"`
	AuthorName   string    `db:"author_name"`
	AuthorHandle string    `db:"author_handle"`
	AvatarURL    string    `db:"avatar_url"`
	Stars        int       `db:"stars"`
	Forks        int       `db:"forks"`
	LikeCount    int       `db:"like_count"`
	CommentCount int       `db:"comment_count"`
	Tags         tagsSQL   `db:"tags"`
	Featured     bool      `db:"featured"`
	CreatedAt    time.Time `db:"created_at"`
}

// postSQL is the database representation of a blog post
type postSQL struct {
	ID           int64     `db:"id"`
	Title        string    `db:"title"`
	Excerpt      string    `db:"excerpt"`
	Content      string    `db:"content"`
	AuthorName   string    `db:"author_name"`
	AuthorHandle string    `db:"author_handle"`
	AvatarURL    string    `db:"avatar_url"`
	LikeCount    int       `db:"like_count"`
	CommentCount int       `db:"comment_count"`
	ReadTime     int       `db:"read_time"`
	Tags         tagsSQL   `db:"tags"`
	Published    bool      `db:"published"`
	CreatedAt    time.Time `db:"created_at"`
}

// tagsSQL is a JSON array of tag strings for SQL operations
type tagsSQL []string

// Value implements driver.Valuer for database storage
func (t tagsSQL) Value() (driver.Value, error) {
	if t == nil {
		return "[]", nil
	}
	return json.Marshal(t)
}

// Scan implements sql.Scanner for database retrieval
func (t *tagsSQL) Scan(value interface{}) error {
	if value == nil {
		*t = tagsSQL{}
		return nil
	}

	var data []byte
	switch v := value.(type) {
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return json.Unmarshal([]byte("[]"), t)
	}

	return json.Unmarshal(data, t)
}
