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

func TestPostRepository_CreateAndList(t *testing.T) {
	repos := setupTestRepos(t)
	ctx := context.Background()

	base := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	for i := 1; i <= 4; i++ {
		post := &domain.BlogPost{
			Title:        fmt.Sprintf("Post %d", i),
			Excerpt:      "short version",
			Content:      "long version of the post",
			AuthorName:   "Bob",
			AuthorHandle: "bob",
			ReadTime:     i,
			Tags:         []string{"writing"},
			Published:    i != 3, // post 3 stays a draft
			CreatedAt:    base.Add(time.Duration(i) * time.Hour),
		}
		require.NoError(t, repos.Post.CreatePost(ctx, post))
		assert.NotZero(t, post.ID)
	}

	t.Run("only published posts listed", func(t *testing.T) {
		posts, err := repos.Post.ListPublishedPosts(ctx, 10, 0)
		require.NoError(t, err)
		require.Len(t, posts, 3)
		assert.Equal(t, "Post 4", posts[0].Title)
		assert.Equal(t, "Post 2", posts[1].Title)
		assert.Equal(t, "Post 1", posts[2].Title)
	})

	t.Run("pagination", func(t *testing.T) {
		posts, err := repos.Post.ListPublishedPosts(ctx, 1, 1)
		require.NoError(t, err)
		require.Len(t, posts, 1)
		assert.Equal(t, "Post 2", posts[0].Title)
	})

	t.Run("negative limit returns all published", func(t *testing.T) {
		posts, err := repos.Post.ListPublishedPosts(ctx, -1, 0)
		require.NoError(t, err)
		assert.Len(t, posts, 3)
	})

	t.Run("count excludes drafts", func(t *testing.T) {
		count, err := repos.Post.CountPublishedPosts(ctx)
		require.NoError(t, err)
		assert.Equal(t, int64(3), count)
	})
}

func TestPostRepository_TagsSince(t *testing.T) {
	repos := setupTestRepos(t)
	ctx := context.Background()

	base := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)

	recent := &domain.BlogPost{Title: "Recent", Tags: []string{"go"}, Published: true, CreatedAt: base}
	require.NoError(t, repos.Post.CreatePost(ctx, recent))

	draft := &domain.BlogPost{Title: "Draft", Tags: []string{"hidden"}, Published: false, CreatedAt: base}
	require.NoError(t, repos.Post.CreatePost(ctx, draft))

	old := &domain.BlogPost{Title: "Old", Tags: []string{"legacy"}, Published: true, CreatedAt: base.AddDate(0, -1, 0)}
	require.NoError(t, repos.Post.CreatePost(ctx, old))

	tags, err := repos.Post.TagsSince(ctx, base.AddDate(0, 0, -7))
	require.NoError(t, err)
	require.Len(t, tags, 1, "drafts and old posts are excluded")
	assert.Equal(t, []string{"go"}, tags[0])
}
