package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umputun/devpulse/pkg/domain"
)

func setupTestRepos(t *testing.T) *Repositories {
	t.Helper()

	cfg := Config{
		DSN:             ":memory:",
		MaxOpenConns:    1,
		MaxIdleConns:    1,
		ConnMaxLifetime: 30 * time.Second,
	}

	repos, err := NewRepositories(context.Background(), cfg)
	require.NoError(t, err)
	t.Cleanup(func() {
		assert.NoError(t, repos.Close())
	})
	return repos
}

func TestRepositories_Integration(t *testing.T) {
	repos := setupTestRepos(t)

	// test ping
	require.NoError(t, repos.Ping(context.Background()))

	t.Run("external item lifecycle", func(t *testing.T) {
		item := &domain.ExternalItem{
			SourceID:    "100",
			Source:      domain.SourceHackerNews,
			Title:       "Integration Article",
			URL:         "https://example.com/100",
			Points:      42,
			Category:    domain.CategoryArticle,
			PublishedAt: time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC),
		}

		inserted, err := repos.External.CreateItem(context.Background(), item)
		require.NoError(t, err)
		assert.True(t, inserted)
		assert.NotZero(t, item.ID)

		exists, err := repos.External.ItemExists(context.Background(), "Integration Article", domain.SourceHackerNews)
		require.NoError(t, err)
		assert.True(t, exists)

		count, err := repos.External.CountItems(context.Background(), "")
		require.NoError(t, err)
		assert.Equal(t, int64(1), count)
	})

	t.Run("project lifecycle", func(t *testing.T) {
		project := &domain.Project{
			Title:      "Integration Project",
			AuthorName: "Alice",
			Tags:       []string{"go", "sqlite"},
		}
		require.NoError(t, repos.Project.CreateProject(context.Background(), project))
		assert.NotZero(t, project.ID)
		assert.False(t, project.CreatedAt.IsZero())

		projects, err := repos.Project.ListProjects(context.Background(), 10, 0)
		require.NoError(t, err)
		require.Len(t, projects, 1)
		assert.Equal(t, []string{"go", "sqlite"}, projects[0].Tags)
	})

	t.Run("post lifecycle", func(t *testing.T) {
		post := &domain.BlogPost{
			Title:     "Integration Post",
			Content:   "some content",
			Published: true,
		}
		require.NoError(t, repos.Post.CreatePost(context.Background(), post))
		assert.NotZero(t, post.ID)

		count, err := repos.Post.CountPublishedPosts(context.Background())
		require.NoError(t, err)
		assert.Equal(t, int64(1), count)
	})
}

func TestNewRepositories_DefaultDSN(t *testing.T) {
	// empty DSN falls back to the default file database, use a temp dir
	// to avoid polluting the working directory
	t.Chdir(t.TempDir())

	repos, err := NewRepositories(context.Background(), Config{})
	require.NoError(t, err)
	defer func() {
		assert.NoError(t, repos.Close())
	}()

	require.NoError(t, repos.Ping(context.Background()))
}

func TestTagsSQL_RoundTrip(t *testing.T) {
	t.Run("value of nil tags", func(t *testing.T) {
		var tags tagsSQL
		v, err := tags.Value()
		require.NoError(t, err)
		assert.Equal(t, "[]", v)
	})

	t.Run("value of tags", func(t *testing.T) {
		tags := tagsSQL{"go", "web"}
		v, err := tags.Value()
		require.NoError(t, err)
		assert.JSONEq(t, `["go","web"]`, string(v.([]byte)))
	})

	t.Run("scan from string", func(t *testing.T) {
		var tags tagsSQL
		require.NoError(t, tags.Scan(`["a","b"]`))
		assert.Equal(t, tagsSQL{"a", "b"}, tags)
	})

	t.Run("scan from bytes", func(t *testing.T) {
		var tags tagsSQL
		require.NoError(t, tags.Scan([]byte(`["x"]`)))
		assert.Equal(t, tagsSQL{"x"}, tags)
	})

	t.Run("scan nil", func(t *testing.T) {
		var tags tagsSQL
		require.NoError(t, tags.Scan(nil))
		assert.Empty(t, tags)
	})
}
