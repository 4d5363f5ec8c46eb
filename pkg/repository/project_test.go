package repository

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umputun/devpulse/pkg/domain"
)

func TestProjectRepository_CreateAndList(t *testing.T) {
	repos := setupTestRepos(t)
	ctx := context.Background()

	base := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	for i := 1; i <= 3; i++ {
		project := &domain.Project{
			Title:        fmt.Sprintf("Project %d", i),
			Description:  "a project",
			AuthorName:   "Alice",
			AuthorHandle: "alice",
			Stars:        i * 10,
			Forks:        i,
			Tags:         []string{"go", fmt.Sprintf("tag%d", i)},
			Featured:     i == 1,
			CreatedAt:    base.Add(time.Duration(i) * time.Hour),
		}
		require.NoError(t, repos.Project.CreateProject(ctx, project))
		assert.NotZero(t, project.ID)
	}

	t.Run("ordered newest first", func(t *testing.T) {
		projects, err := repos.Project.ListProjects(ctx, 10, 0)
		require.NoError(t, err)
		require.Len(t, projects, 3)
		assert.Equal(t, "Project 3", projects[0].Title)
		assert.Equal(t, "Project 1", projects[2].Title)
		assert.True(t, projects[2].Featured)
		assert.Equal(t, []string{"go", "tag3"}, projects[0].Tags)
	})

	t.Run("pagination", func(t *testing.T) {
		projects, err := repos.Project.ListProjects(ctx, 1, 1)
		require.NoError(t, err)
		require.Len(t, projects, 1)
		assert.Equal(t, "Project 2", projects[0].Title)
	})

	t.Run("negative limit returns all", func(t *testing.T) {
		projects, err := repos.Project.ListProjects(ctx, -1, 0)
		require.NoError(t, err)
		assert.Len(t, projects, 3)
	})

	t.Run("count", func(t *testing.T) {
		count, err := repos.Project.CountProjects(ctx)
		require.NoError(t, err)
		assert.Equal(t, int64(3), count)
	})
}

func TestProjectRepository_TagsSince(t *testing.T) {
	repos := setupTestRepos(t)
	ctx := context.Background()

	base := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)

	oldProject := &domain.Project{Title: "Old", Tags: []string{"legacy"}, CreatedAt: base.AddDate(0, -1, 0)}
	require.NoError(t, repos.Project.CreateProject(ctx, oldProject))

	newProject := &domain.Project{Title: "New", Tags: []string{"go", "web"}, CreatedAt: base}
	require.NoError(t, repos.Project.CreateProject(ctx, newProject))

	tags, err := repos.Project.TagsSince(ctx, base.AddDate(0, 0, -7))
	require.NoError(t, err)
	require.Len(t, tags, 1)
	assert.Equal(t, []string{"go", "web"}, tags[0])
}
