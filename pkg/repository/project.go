package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/umputun/devpulse/pkg/domain"
)

// ProjectRepository handles first-party project records
type ProjectRepository struct {
	db *sqlx.DB
}

// NewProjectRepository creates a new project repository
func NewProjectRepository(database *sqlx.DB) *ProjectRepository {
	return &ProjectRepository{db: database}
}

// CreateProject inserts a new project
func (r *ProjectRepository) CreateProject(ctx context.Context, project *domain.Project) error {
	if project.CreatedAt.IsZero() {
		project.CreatedAt = time.Now().UTC()
	}

	sqlProject := &projectSQL{
		Title:        project.Title,
		Description:  project.Description,
		AuthorName:   project.AuthorName,
		AuthorHandle: project.AuthorHandle,
		AvatarURL:    project.AvatarURL,
		Stars:        project.Stars,
		Forks:        project.Forks,
		LikeCount:    project.LikeCount,
		CommentCount: project.CommentCount,
		Tags:         tagsSQL(project.Tags),
		Featured:     project.Featured,
		CreatedAt:    project.CreatedAt,
	}

	query := `
		INSERT INTO projects (
			title, description, author_name, author_handle, avatar_url,
			stars, forks, like_count, comment_count, tags, featured, created_at
		) VALUES (
			:title, :description, :author_name, :author_handle, :avatar_url,
			:stars, :forks, :like_count, :comment_count, :tags, :featured, :created_at
		)
	`
	result, err := r.db.NamedExecContext(ctx, query, sqlProject)
	if err != nil {
		return fmt.Errorf("insert project: %w", err)
	}

	if id, err := result.LastInsertId(); err == nil {
		project.ID = id
	}
	return nil
}

// ListProjects returns projects ordered by creation time, newest first.
// A negative limit returns all projects.
func (r *ProjectRepository) ListProjects(ctx context.Context, limit, offset int) ([]domain.Project, error) {
	query := "SELECT * FROM projects ORDER BY created_at DESC, id"
	args := []interface{}{}
	if limit >= 0 {
		query += " LIMIT ? OFFSET ?"
		args = append(args, limit, offset)
	}

	var rows []projectSQL
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list projects: %w", err)
	}

	projects := make([]domain.Project, 0, len(rows))
	for _, row := range rows {
		projects = append(projects, domain.Project{
			ID:           row.ID,
			Title:        row.Title,
			Description:  row.Description,
			AuthorName:   row.AuthorName,
			AuthorHandle: row.AuthorHandle,
			AvatarURL:    row.AvatarURL,
			Stars:        row.Stars,
			Forks:        row.Forks,
			LikeCount:    row.LikeCount,
			CommentCount: row.CommentCount,
			Tags:         row.Tags,
			Featured:     row.Featured,
			CreatedAt:    row.CreatedAt,
		})
	}
	return projects, nil
}

// CountProjects returns the total number of projects
func (r *ProjectRepository) CountProjects(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.GetContext(ctx, &count, "SELECT COUNT(*) FROM projects"); err != nil {
		return 0, fmt.Errorf("count projects: %w", err)
	}
	return count, nil
}

// TagsSince returns the tag lists of projects created after the cutoff
func (r *ProjectRepository) TagsSince(ctx context.Context, since time.Time) ([][]string, error) {
	var rows []tagsSQL
	err := r.db.SelectContext(ctx, &rows,
		"SELECT tags FROM projects WHERE created_at >= ?", since)
	if err != nil {
		return nil, fmt.Errorf("project tags since: %w", err)
	}

	result := make([][]string, 0, len(rows))
	for _, row := range rows {
		result = append(result, row)
	}
	return result, nil
}
