package server

import (
	"context"
	"time"

	"github.com/umputun/devpulse/pkg/domain"
	"github.com/umputun/devpulse/pkg/repository"
)

// RepositoryAdapter adapts the repository layer to the read interfaces
// consumed by the feed assembler and the server handlers
type RepositoryAdapter struct {
	repos *repository.Repositories
}

// NewRepositoryAdapter creates an adapter over the shared repositories
func NewRepositoryAdapter(repos *repository.Repositories) *RepositoryAdapter {
	return &RepositoryAdapter{repos: repos}
}

// ListProjects returns projects, newest first
func (a *RepositoryAdapter) ListProjects(ctx context.Context, limit, offset int) ([]domain.Project, error) {
	return a.repos.Project.ListProjects(ctx, limit, offset)
}

// CountProjects returns the total number of projects
func (a *RepositoryAdapter) CountProjects(ctx context.Context) (int64, error) {
	return a.repos.Project.CountProjects(ctx)
}

// ListPublishedPosts returns published posts, newest first
func (a *RepositoryAdapter) ListPublishedPosts(ctx context.Context, limit, offset int) ([]domain.BlogPost, error) {
	return a.repos.Post.ListPublishedPosts(ctx, limit, offset)
}

// CountPublishedPosts returns the number of published posts
func (a *RepositoryAdapter) CountPublishedPosts(ctx context.Context) (int64, error) {
	return a.repos.Post.CountPublishedPosts(ctx)
}

// ListExternalItems returns external items, newest first
func (a *RepositoryAdapter) ListExternalItems(ctx context.Context, limit, offset int) ([]domain.ExternalItem, error) {
	return a.repos.External.ListItems(ctx, limit, offset)
}

// ListExternalItemsByCategory returns external items of one category
func (a *RepositoryAdapter) ListExternalItemsByCategory(ctx context.Context, category domain.Category, limit, offset int) ([]domain.ExternalItem, error) {
	return a.repos.External.ListItemsByCategory(ctx, category, limit, offset)
}

// CountExternalItems counts external items, optionally by category
func (a *RepositoryAdapter) CountExternalItems(ctx context.Context, category domain.Category) (int64, error) {
	return a.repos.External.CountItems(ctx, category)
}

// ProjectTagsSince returns tag lists of recent projects
func (a *RepositoryAdapter) ProjectTagsSince(ctx context.Context, since time.Time) ([][]string, error) {
	return a.repos.Project.TagsSince(ctx, since)
}

// PostTagsSince returns tag lists of recent published posts
func (a *RepositoryAdapter) PostTagsSince(ctx context.Context, since time.Time) ([][]string, error) {
	return a.repos.Post.TagsSince(ctx, since)
}

// ListSourceItems returns stored items of one source, most recently
// ingested first
func (a *RepositoryAdapter) ListSourceItems(ctx context.Context, source domain.Source, limit int) ([]domain.ExternalItem, error) {
	return a.repos.External.ListItemsBySource(ctx, source, limit)
}

// CreateProject stores a new project
func (a *RepositoryAdapter) CreateProject(ctx context.Context, project *domain.Project) error {
	return a.repos.Project.CreateProject(ctx, project)
}

// CreatePost stores a new blog post
func (a *RepositoryAdapter) CreatePost(ctx context.Context, post *domain.BlogPost) error {
	return a.repos.Post.CreatePost(ctx, post)
}
