package feed

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umputun/devpulse/pkg/domain"
	"github.com/umputun/devpulse/pkg/feed/mocks"
)

var testNow = time.Date(2024, 6, 10, 12, 0, 0, 0, time.UTC)

func fixedNow() time.Time { return testNow }

// emptyStore returns a mock with every read returning no records
func emptyStore() *mocks.StoreMock {
	return &mocks.StoreMock{
		ListProjectsFunc: func(ctx context.Context, limit, offset int) ([]domain.Project, error) {
			return []domain.Project{}, nil
		},
		CountProjectsFunc: func(ctx context.Context) (int64, error) { return 0, nil },
		ListPublishedPostsFunc: func(ctx context.Context, limit, offset int) ([]domain.BlogPost, error) {
			return []domain.BlogPost{}, nil
		},
		CountPublishedPostsFunc: func(ctx context.Context) (int64, error) { return 0, nil },
		ListExternalItemsFunc: func(ctx context.Context, limit, offset int) ([]domain.ExternalItem, error) {
			return []domain.ExternalItem{}, nil
		},
		ListExternalItemsByCategoryFunc: func(ctx context.Context, category domain.Category, limit, offset int) ([]domain.ExternalItem, error) {
			return []domain.ExternalItem{}, nil
		},
		CountExternalItemsFunc: func(ctx context.Context, category domain.Category) (int64, error) { return 0, nil },
		ProjectTagsSinceFunc:   func(ctx context.Context, since time.Time) ([][]string, error) { return nil, nil },
		PostTagsSinceFunc:      func(ctx context.Context, since time.Time) ([][]string, error) { return nil, nil },
	}
}

func TestAssembler_AssembleMixed(t *testing.T) {
	store := emptyStore()
	store.ListProjectsFunc = func(ctx context.Context, limit, offset int) ([]domain.Project, error) {
		assert.Equal(t, -1, limit, "mixed assembly fetches everything")
		return []domain.Project{
			{ID: 1, Title: "Project A", CreatedAt: testNow.Add(-2 * time.Hour)},
			{ID: 2, Title: "Project B", CreatedAt: testNow.Add(-30 * time.Minute)},
		}, nil
	}
	store.ListPublishedPostsFunc = func(ctx context.Context, limit, offset int) ([]domain.BlogPost, error) {
		return []domain.BlogPost{
			{ID: 1, Title: "Post A", Content: "hello", CreatedAt: testNow.Add(-1 * time.Hour)},
		}, nil
	}
	store.ListExternalItemsFunc = func(ctx context.Context, limit, offset int) ([]domain.ExternalItem, error) {
		return []domain.ExternalItem{
			{ID: 1, Title: "HN Item", Source: domain.SourceHackerNews, Category: domain.CategoryArticle,
				Points: 100, CommentCount: 20, PublishedAt: testNow.Add(-3 * time.Hour)},
		}, nil
	}

	assembler := NewAssembler(store, fixedNow)
	page, err := assembler.Assemble(context.Background(), 1, 10, "")
	require.NoError(t, err)

	require.Len(t, page.Records, 4)
	assert.Equal(t, int64(4), page.Total)
	assert.False(t, page.HasMore)

	// merged, newest first across all three record families
	assert.Equal(t, "Project B", page.Records[0].Title)
	assert.Equal(t, "Post A", page.Records[1].Title)
	assert.Equal(t, "Project A", page.Records[2].Title)
	assert.Equal(t, "HN Item", page.Records[3].Title)
}

func TestAssembler_AssembleMixedPagination(t *testing.T) {
	projects := make([]domain.Project, 5)
	for i := range projects {
		projects[i] = domain.Project{
			ID:        int64(i + 1),
			Title:     fmt.Sprintf("Project %d", i+1),
			CreatedAt: testNow.Add(-time.Duration(i) * time.Hour),
		}
	}
	store := emptyStore()
	store.ListProjectsFunc = func(ctx context.Context, limit, offset int) ([]domain.Project, error) {
		return projects, nil
	}

	assembler := NewAssembler(store, fixedNow)

	t.Run("first page has more", func(t *testing.T) {
		page, err := assembler.Assemble(context.Background(), 1, 2, "")
		require.NoError(t, err)
		require.Len(t, page.Records, 2)
		assert.True(t, page.HasMore)
		assert.Equal(t, int64(5), page.Total)
	})

	t.Run("final partial page", func(t *testing.T) {
		page, err := assembler.Assemble(context.Background(), 3, 2, "")
		require.NoError(t, err)
		require.Len(t, page.Records, 1)
		assert.False(t, page.HasMore)
	})

	t.Run("final exact page reports no more", func(t *testing.T) {
		// 5 records with pageSize 5: the page is full but nothing follows
		page, err := assembler.Assemble(context.Background(), 1, 5, "")
		require.NoError(t, err)
		require.Len(t, page.Records, 5)
		assert.False(t, page.HasMore, "mixed pagination computes an exact HasMore")
	})

	t.Run("page past the end is empty", func(t *testing.T) {
		page, err := assembler.Assemble(context.Background(), 10, 2, "")
		require.NoError(t, err)
		assert.Empty(t, page.Records)
		assert.NotNil(t, page.Records)
		assert.False(t, page.HasMore)
		assert.Equal(t, int64(5), page.Total)
	})

	t.Run("page below one treated as first", func(t *testing.T) {
		page, err := assembler.Assemble(context.Background(), 0, 2, "")
		require.NoError(t, err)
		require.Len(t, page.Records, 2)
		assert.Equal(t, "Project 1", page.Records[0].Title)
	})
}

func TestAssembler_AssembleTyped(t *testing.T) {
	store := emptyStore()
	store.ListProjectsFunc = func(ctx context.Context, limit, offset int) ([]domain.Project, error) {
		assert.Equal(t, 2, limit)
		assert.Equal(t, 2, offset)
		return []domain.Project{
			{ID: 3, Title: "Project C", CreatedAt: testNow},
			{ID: 4, Title: "Project D", CreatedAt: testNow},
		}, nil
	}
	store.CountProjectsFunc = func(ctx context.Context) (int64, error) { return 10, nil }

	assembler := NewAssembler(store, fixedNow)
	page, err := assembler.Assemble(context.Background(), 2, 2, "project")
	require.NoError(t, err)

	require.Len(t, page.Records, 2)
	assert.Equal(t, int64(10), page.Total)
	assert.True(t, page.HasMore, "a full page is assumed to have a successor")
	assert.Equal(t, "project", page.Records[0].Type)
}

func TestAssembler_AssembleTypedHasMoreApproximation(t *testing.T) {
	// exactly pageSize records remain: the approximation still reports more
	store := emptyStore()
	store.ListPublishedPostsFunc = func(ctx context.Context, limit, offset int) ([]domain.BlogPost, error) {
		return []domain.BlogPost{
			{ID: 1, Title: "Last A", Content: "x", CreatedAt: testNow},
			{ID: 2, Title: "Last B", Content: "y", CreatedAt: testNow},
		}, nil
	}
	store.CountPublishedPostsFunc = func(ctx context.Context) (int64, error) { return 2, nil }

	assembler := NewAssembler(store, fixedNow)
	page, err := assembler.Assemble(context.Background(), 1, 2, "blogpost")
	require.NoError(t, err)

	require.Len(t, page.Records, 2)
	assert.True(t, page.HasMore, "typed pagination approximates HasMore from page fullness")

	t.Run("partial page reports no more", func(t *testing.T) {
		page, err := assembler.Assemble(context.Background(), 1, 5, "blogpost")
		require.NoError(t, err)
		require.Len(t, page.Records, 2)
		assert.False(t, page.HasMore)
	})
}

func TestAssembler_AssembleByCategory(t *testing.T) {
	store := emptyStore()
	store.ListExternalItemsByCategoryFunc = func(ctx context.Context, category domain.Category, limit, offset int) ([]domain.ExternalItem, error) {
		assert.Equal(t, domain.CategoryTutorial, category)
		return []domain.ExternalItem{
			{ID: 7, Title: "How to", Source: domain.SourceDevTo, Category: domain.CategoryTutorial,
				Points: 12, CommentCount: 4, PublishedAt: testNow.Add(-time.Hour)},
		}, nil
	}
	store.CountExternalItemsFunc = func(ctx context.Context, category domain.Category) (int64, error) { return 1, nil }

	assembler := NewAssembler(store, fixedNow)
	page, err := assembler.Assemble(context.Background(), 1, 10, "tutorial")
	require.NoError(t, err)

	require.Len(t, page.Records, 1)
	assert.Equal(t, "tutorial", page.Records[0].Type)
	assert.Equal(t, "external-7", page.Records[0].ID)
}

func TestAssembler_AssembleUnknownType(t *testing.T) {
	assembler := NewAssembler(emptyStore(), fixedNow)
	_, err := assembler.Assemble(context.Background(), 1, 10, "bogus")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown feed type")
}

func TestAssembler_AssembleStoreError(t *testing.T) {
	store := emptyStore()
	store.ListProjectsFunc = func(ctx context.Context, limit, offset int) ([]domain.Project, error) {
		return nil, errors.New("database gone")
	}

	assembler := NewAssembler(store, fixedNow)

	_, err := assembler.Assemble(context.Background(), 1, 10, "")
	require.Error(t, err, "store failure during assembly is fatal")

	_, err = assembler.Assemble(context.Background(), 1, 10, "project")
	require.Error(t, err)
}

func TestAssembler_MapProject(t *testing.T) {
	assembler := NewAssembler(emptyStore(), fixedNow)

	record := assembler.mapProject(domain.Project{
		ID:           42,
		Title:        "My Project",
		Description:  "does things",
		AuthorName:   "Alice",
		AuthorHandle: "alice",
		AvatarURL:    "https://example.com/a.png",
		Stars:        100,
		Forks:        10,
		LikeCount:    5,
		CommentCount: 3,
		Tags:         []string{"go"},
		Featured:     true,
		CreatedAt:    testNow.Add(-2 * time.Hour),
	})

	assert.Equal(t, "project-42", record.ID)
	assert.Equal(t, "project", record.Type)
	assert.Equal(t, domain.FeedAuthor{Name: "Alice", Handle: "alice", AvatarURL: "https://example.com/a.png"}, record.Author)
	assert.Equal(t, 100, record.Stats.Stars)
	assert.Equal(t, 10, record.Stats.Forks)
	assert.Equal(t, 5, record.Stats.Likes)
	assert.Equal(t, 3, record.Stats.Comments)
	assert.True(t, record.Featured)
	assert.Equal(t, "2 hours ago", record.RelativeAge)
}

func TestAssembler_MapPost(t *testing.T) {
	assembler := NewAssembler(emptyStore(), fixedNow)

	t.Run("excerpt preferred", func(t *testing.T) {
		record := assembler.mapPost(domain.BlogPost{
			ID: 1, Title: "Post", Excerpt: "short", Content: "very long content", ReadTime: 4, CreatedAt: testNow,
		})
		assert.Equal(t, "blogpost-1", record.ID)
		assert.Equal(t, "short", record.Description)
		assert.Equal(t, 4, record.Stats.ReadTime)
	})

	t.Run("missing excerpt truncates content", func(t *testing.T) {
		long := make([]byte, 300)
		for i := range long {
			long[i] = 'x'
		}
		record := assembler.mapPost(domain.BlogPost{ID: 2, Title: "Post", Content: string(long), CreatedAt: testNow})
		assert.Len(t, record.Description, 203) // 200 chars plus ellipsis
		assert.Equal(t, "...", record.Description[200:])
	})

	t.Run("read time derived from content length", func(t *testing.T) {
		record := assembler.mapPost(domain.BlogPost{ID: 3, Title: "Post", Content: "tiny", CreatedAt: testNow})
		assert.Equal(t, 1, record.Stats.ReadTime, "minimum one minute")

		long := make([]byte, 2500)
		record = assembler.mapPost(domain.BlogPost{ID: 4, Title: "Post", Content: string(long), CreatedAt: testNow})
		assert.Equal(t, 3, record.Stats.ReadTime)
	})
}

func TestAssembler_MapExternal(t *testing.T) {
	assembler := NewAssembler(emptyStore(), fixedNow)

	t.Run("provider author kept", func(t *testing.T) {
		record := assembler.mapExternal(domain.ExternalItem{
			ID: 9, Title: "Item", Source: domain.SourceHackerNews, Category: domain.CategoryDiscussion,
			Points: 120, CommentCount: 45, Author: "pg", PublishedAt: testNow.Add(-10 * time.Minute),
		})
		assert.Equal(t, "external-9", record.ID)
		assert.Equal(t, "discussion", record.Type)
		assert.Equal(t, "120 points • 45 comments", record.Description)
		assert.Equal(t, domain.FeedAuthor{Name: "pg", Handle: "pg"}, record.Author)
		assert.Equal(t, 120, record.Stats.Points)
		assert.Equal(t, 45, record.Stats.Comments)
		assert.Equal(t, []string{}, record.Tags)
		assert.Equal(t, "10 minutes ago", record.RelativeAge)
	})

	t.Run("missing author synthesized from source", func(t *testing.T) {
		record := assembler.mapExternal(domain.ExternalItem{
			ID: 10, Title: "Item", Source: domain.SourceDevTo, Category: domain.CategoryArticle,
			PublishedAt: testNow,
		})
		assert.Equal(t, domain.FeedAuthor{Name: "Dev.to", Handle: "devto"}, record.Author)
	})
}

func TestRelativeAge(t *testing.T) {
	tests := []struct {
		name     string
		age      time.Duration
		expected string
	}{
		{"seconds", 30 * time.Second, "just now"},
		{"minutes", 5 * time.Minute, "5 minutes ago"},
		{"hours", 3 * time.Hour, "3 hours ago"},
		{"days", 2 * 24 * time.Hour, "2 days ago"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, relativeAge(testNow.Add(-tt.age), testNow))
		})
	}

	t.Run("older than a week shows the date", func(t *testing.T) {
		createdAt := time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)
		assert.Equal(t, "May 1, 2024", relativeAge(createdAt, testNow))
	})
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", truncate("short", 10))
	assert.Equal(t, "abc...", truncate("abcdef", 3))
	assert.Equal(t, "héllo...", truncate("héllo wörld", 5), "runes counted, not bytes")
}
