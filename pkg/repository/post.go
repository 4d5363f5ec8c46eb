package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/umputun/devpulse/pkg/domain"
)

// PostRepository handles first-party blog post records
type PostRepository struct {
	db *sqlx.DB
}

// NewPostRepository creates a new post repository
func NewPostRepository(database *sqlx.DB) *PostRepository {
	return &PostRepository{db: database}
}

// CreatePost inserts a new blog post
func (r *PostRepository) CreatePost(ctx context.Context, post *domain.BlogPost) error {
	if post.CreatedAt.IsZero() {
		post.CreatedAt = time.Now().UTC()
	}

	sqlPost := &postSQL{
		Title:        post.Title,
		Excerpt:      post.Excerpt,
		Content:      post.Content,
		AuthorName:   post.AuthorName,
		AuthorHandle: post.AuthorHandle,
		AvatarURL:    post.AvatarURL,
		LikeCount:    post.LikeCount,
		CommentCount: post.CommentCount,
		ReadTime:     post.ReadTime,
		Tags:         tagsSQL(post.Tags),
		Published:    post.Published,
		CreatedAt:    post.CreatedAt,
	}

	query := `
		INSERT INTO posts (
			title, excerpt, content, author_name, author_handle, avatar_url,
			like_count, comment_count, read_time, tags, published, created_at
		) VALUES (
			:title, :excerpt, :content, :author_name, :author_handle, :avatar_url,
			:like_count, :comment_count, :read_time, :tags, :published, :created_at
		)
	`
	result, err := r.db.NamedExecContext(ctx, query, sqlPost)
	if err != nil {
		return fmt.Errorf("insert post: %w", err)
	}

	if id, err := result.LastInsertId(); err == nil {
		post.ID = id
	}
	return nil
}

// ListPublishedPosts returns published posts ordered by creation time,
// newest first. A negative limit returns all published posts.
func (r *PostRepository) ListPublishedPosts(ctx context.Context, limit, offset int) ([]domain.BlogPost, error) {
	query := "SELECT * FROM posts WHERE published = 1 ORDER BY created_at DESC, id"
	args := []interface{}{}
	if limit >= 0 {
		query += " LIMIT ? OFFSET ?"
		args = append(args, limit, offset)
	}

	var rows []postSQL
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list published posts: %w", err)
	}

	posts := make([]domain.BlogPost, 0, len(rows))
	for _, row := range rows {
		posts = append(posts, domain.BlogPost{
			ID:           row.ID,
			Title:        row.Title,
			Excerpt:      row.Excerpt,
			Content:      row.Content,
			AuthorName:   row.AuthorName,
			AuthorHandle: row.AuthorHandle,
			AvatarURL:    row.AvatarURL,
			LikeCount:    row.LikeCount,
			CommentCount: row.CommentCount,
			ReadTime:     row.ReadTime,
			Tags:         row.Tags,
			Published:    row.Published,
			CreatedAt:    row.CreatedAt,
		})
	}
	return posts, nil
}

// CountPublishedPosts returns the number of published posts
func (r *PostRepository) CountPublishedPosts(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.GetContext(ctx, &count, "SELECT COUNT(*) FROM posts WHERE published = 1"); err != nil {
		return 0, fmt.Errorf("count published posts: %w", err)
	}
	return count, nil
}

// TagsSince returns the tag lists of published posts created after the cutoff
func (r *PostRepository) TagsSince(ctx context.Context, since time.Time) ([][]string, error) {
	var rows []tagsSQL
	err := r.db.SelectContext(ctx, &rows,
		"SELECT tags FROM posts WHERE published = 1 AND created_at >= ?", since)
	if err != nil {
		return nil, fmt.Errorf("post tags since: %w", err)
	}

	result := make([][]string, 0, len(rows))
	for _, row := range rows {
		result = append(result, row)
	}
	return result, nil
}
