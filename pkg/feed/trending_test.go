package feed

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umputun/devpulse/pkg/domain"
)

func TestAssembler_Trending(t *testing.T) {
	store := emptyStore()
	store.ProjectTagsSinceFunc = func(ctx context.Context, since time.Time) ([][]string, error) {
		assert.Equal(t, testNow.Add(-7*24*time.Hour), since)
		return [][]string{
			{"Go", "web"},
			{"go", "cli"},
		}, nil
	}
	store.PostTagsSinceFunc = func(ctx context.Context, since time.Time) ([][]string, error) {
		return [][]string{
			{"go", "testing"},
			{"web"},
		}, nil
	}

	assembler := NewAssembler(store, fixedNow)
	tags, err := assembler.Trending(context.Background(), 7*24*time.Hour, 10)
	require.NoError(t, err)

	require.Len(t, tags, 4)
	assert.Equal(t, domain.TagCount{Name: "go", Count: 3}, tags[0], "tags counted case-insensitively")
	assert.Equal(t, domain.TagCount{Name: "web", Count: 2}, tags[1])
	// equal counts ordered by name
	assert.Equal(t, domain.TagCount{Name: "cli", Count: 1}, tags[2])
	assert.Equal(t, domain.TagCount{Name: "testing", Count: 1}, tags[3])
}

func TestAssembler_TrendingLimit(t *testing.T) {
	store := emptyStore()
	store.ProjectTagsSinceFunc = func(ctx context.Context, since time.Time) ([][]string, error) {
		return [][]string{{"a", "b", "c", "d"}}, nil
	}

	assembler := NewAssembler(store, fixedNow)
	tags, err := assembler.Trending(context.Background(), time.Hour, 2)
	require.NoError(t, err)
	assert.Len(t, tags, 2)
}

func TestAssembler_TrendingEmpty(t *testing.T) {
	assembler := NewAssembler(emptyStore(), fixedNow)
	tags, err := assembler.Trending(context.Background(), time.Hour, 10)
	require.NoError(t, err)
	assert.Empty(t, tags)
	assert.NotNil(t, tags)
}

func TestAssembler_TrendingStoreError(t *testing.T) {
	store := emptyStore()
	store.PostTagsSinceFunc = func(ctx context.Context, since time.Time) ([][]string, error) {
		return nil, errors.New("database gone")
	}

	assembler := NewAssembler(store, fixedNow)
	_, err := assembler.Trending(context.Background(), time.Hour, 10)
	require.Error(t, err)
}
