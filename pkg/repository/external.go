package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/go-pkgz/repeater/v2"
	"github.com/jmoiron/sqlx"

	"github.com/umputun/devpulse/pkg/domain"
)

// ExternalRepository handles aggregated third-party content.
// Stored items are immutable: the only write paths are insert-if-absent
// and retention-based deletion.
type ExternalRepository struct {
	db *sqlx.DB
}

// NewExternalRepository creates a new external item repository
func NewExternalRepository(database *sqlx.DB) *ExternalRepository {
	return &ExternalRepository{db: database}
}

// CreateItem inserts an external item unless one with the same (title, source)
// already exists. Returns true when a row was actually inserted.
func (r *ExternalRepository) CreateItem(ctx context.Context, item *domain.ExternalItem) (bool, error) {
	if item.IngestedAt.IsZero() {
		item.IngestedAt = time.Now().UTC()
	}

	sqlItem := &externalItemSQL{
		SourceID:     item.SourceID,
		Source:       item.Source.String(),
		Title:        item.Title,
		URL:          item.URL,
		Points:       item.Points,
		CommentCount: item.CommentCount,
		Author:       item.Author,
		Category:     string(item.Category),
		PublishedAt:  item.PublishedAt,
		IngestedAt:   item.IngestedAt,
	}

	query := `
		INSERT INTO external_items (
			source_id, source, title, url, points, comment_count, author, category, published_at, ingested_at
		) VALUES (
			:source_id, :source, :title, :url, :points, :comment_count, :author, :category, :published_at, :ingested_at
		)
		ON CONFLICT(title, source) DO NOTHING
	`

	inserted := false
	retrier := repeater.NewBackoff(5, 50*time.Millisecond, repeater.WithMaxDelay(2*time.Second))
	err := retrier.Do(ctx, func() error {
		result, err := r.db.NamedExecContext(ctx, query, sqlItem)
		if err != nil {
			if isLockError(err) {
				return err // repeater will retry this
			}
			return &criticalError{err: fmt.Errorf("insert external item: %w", err)}
		}

		rowsAffected, err := result.RowsAffected()
		if err != nil {
			return &criticalError{err: fmt.Errorf("get rows affected: %w", err)}
		}
		if rowsAffected > 0 {
			inserted = true
			if id, err := result.LastInsertId(); err == nil {
				item.ID = id
			}
		}
		return nil
	})
	if err != nil {
		return false, err
	}

	return inserted, nil
}

// ItemExists checks whether an item with this (title, source) is already stored
func (r *ExternalRepository) ItemExists(ctx context.Context, title string, source domain.Source) (bool, error) {
	var exists bool
	err := r.db.GetContext(ctx, &exists,
		"SELECT EXISTS(SELECT 1 FROM external_items WHERE title = ? AND source = ?)",
		title, source.String())
	if err != nil {
		return false, fmt.Errorf("check external item exists: %w", err)
	}
	return exists, nil
}

// ListItems returns external items ordered by publication time, newest first.
// A negative limit returns all items.
func (r *ExternalRepository) ListItems(ctx context.Context, limit, offset int) ([]domain.ExternalItem, error) {
	query := "SELECT * FROM external_items ORDER BY published_at DESC, id"
	args := []interface{}{}
	if limit >= 0 {
		query += " LIMIT ? OFFSET ?"
		args = append(args, limit, offset)
	}

	var rows []externalItemSQL
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list external items: %w", err)
	}
	return toDomainItems(rows), nil
}

// ListItemsByCategory returns external items of one classified category,
// newest first
func (r *ExternalRepository) ListItemsByCategory(ctx context.Context, category domain.Category, limit, offset int) ([]domain.ExternalItem, error) {
	var rows []externalItemSQL
	err := r.db.SelectContext(ctx, &rows,
		"SELECT * FROM external_items WHERE category = ? ORDER BY published_at DESC, id LIMIT ? OFFSET ?",
		string(category), limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list external items by category: %w", err)
	}
	return toDomainItems(rows), nil
}

// ListItemsBySource returns external items of one provider, most recently
// ingested first. Used by the debug listing endpoints.
func (r *ExternalRepository) ListItemsBySource(ctx context.Context, source domain.Source, limit int) ([]domain.ExternalItem, error) {
	var rows []externalItemSQL
	err := r.db.SelectContext(ctx, &rows,
		"SELECT * FROM external_items WHERE source = ? ORDER BY ingested_at DESC, id LIMIT ?",
		source.String(), limit)
	if err != nil {
		return nil, fmt.Errorf("list external items by source: %w", err)
	}
	return toDomainItems(rows), nil
}

// CountItems returns the number of stored external items, optionally
// restricted to one category (empty category counts everything)
func (r *ExternalRepository) CountItems(ctx context.Context, category domain.Category) (int64, error) {
	var count int64
	var err error
	if category == "" {
		err = r.db.GetContext(ctx, &count, "SELECT COUNT(*) FROM external_items")
	} else {
		err = r.db.GetContext(ctx, &count, "SELECT COUNT(*) FROM external_items WHERE category = ?", string(category))
	}
	if err != nil {
		return 0, fmt.Errorf("count external items: %w", err)
	}
	return count, nil
}

// DeleteOlderThan removes items of one source ingested before the cutoff,
// bounding storage growth independent of fetch cadence
func (r *ExternalRepository) DeleteOlderThan(ctx context.Context, source domain.Source, cutoff time.Time) (int64, error) {
	result, err := r.db.ExecContext(ctx,
		"DELETE FROM external_items WHERE source = ? AND ingested_at < ?",
		source.String(), cutoff)
	if err != nil {
		return 0, fmt.Errorf("delete old external items: %w", err)
	}

	deleted, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("get rows affected: %w", err)
	}
	return deleted, nil
}

func toDomainItems(rows []externalItemSQL) []domain.ExternalItem {
	items := make([]domain.ExternalItem, 0, len(rows))
	for _, row := range rows {
		items = append(items, domain.ExternalItem{
			ID:           row.ID,
			SourceID:     row.SourceID,
			Source:       domain.Source(row.Source),
			Title:        row.Title,
			URL:          row.URL,
			Points:       row.Points,
			CommentCount: row.CommentCount,
			Author:       row.Author,
			Category:     domain.Category(row.Category),
			PublishedAt:  row.PublishedAt,
			IngestedAt:   row.IngestedAt,
		})
	}
	return items
}
