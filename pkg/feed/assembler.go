// Package feed assembles the unified, chronologically ordered feed from
// first-party content (projects, published blog posts) and aggregated
// external items. Records are merged into one uniform shape on read and
// never persisted.
package feed

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/umputun/devpulse/pkg/domain"
)

//go:generate moq -out mocks/store.go -pkg mocks -skip-ensure -fmt goimports . Store

// Store provides read access to the backing record families
type Store interface {
	ListProjects(ctx context.Context, limit, offset int) ([]domain.Project, error)
	CountProjects(ctx context.Context) (int64, error)
	ListPublishedPosts(ctx context.Context, limit, offset int) ([]domain.BlogPost, error)
	CountPublishedPosts(ctx context.Context) (int64, error)
	ListExternalItems(ctx context.Context, limit, offset int) ([]domain.ExternalItem, error)
	ListExternalItemsByCategory(ctx context.Context, category domain.Category, limit, offset int) ([]domain.ExternalItem, error)
	CountExternalItems(ctx context.Context, category domain.Category) (int64, error)
	ProjectTagsSince(ctx context.Context, since time.Time) ([][]string, error)
	PostTagsSince(ctx context.Context, since time.Time) ([][]string, error)
}

// Assembler builds feed pages from the store
type Assembler struct {
	store Store
	now   func() time.Time
}

// NewAssembler creates a feed assembler; nowFn may be nil to use wall clock
func NewAssembler(store Store, nowFn func() time.Time) *Assembler {
	if nowFn == nil {
		nowFn = time.Now
	}
	return &Assembler{store: store, now: nowFn}
}

// Page holds one assembled feed page
type Page struct {
	Records []domain.FeedRecord
	HasMore bool
	Total   int64
}

// Assemble returns one feed page. With a type filter the matching backing
// store is queried with store-level pagination and HasMore approximated as
// "returned a full page" (a final page of exactly pageSize reports more).
// Without a filter all candidate records are fetched, merged, globally
// sorted by creation time descending and paginated in memory, with an
// exact HasMore.
func (a *Assembler) Assemble(ctx context.Context, page, pageSize int, typeFilter string) (*Page, error) {
	if page < 1 {
		page = 1
	}
	skip := (page - 1) * pageSize

	if typeFilter != "" {
		return a.assembleTyped(ctx, skip, pageSize, typeFilter)
	}
	return a.assembleMixed(ctx, skip, pageSize)
}

func (a *Assembler) assembleTyped(ctx context.Context, skip, pageSize int, typeFilter string) (*Page, error) {
	var records []domain.FeedRecord
	var total int64

	switch typeFilter {
	case string(domain.RecordProject):
		projects, err := a.store.ListProjects(ctx, pageSize, skip)
		if err != nil {
			return nil, fmt.Errorf("list projects: %w", err)
		}
		for _, p := range projects {
			records = append(records, a.mapProject(p))
		}
		if total, err = a.store.CountProjects(ctx); err != nil {
			return nil, fmt.Errorf("count projects: %w", err)
		}

	case string(domain.RecordBlogPost):
		posts, err := a.store.ListPublishedPosts(ctx, pageSize, skip)
		if err != nil {
			return nil, fmt.Errorf("list posts: %w", err)
		}
		for _, p := range posts {
			records = append(records, a.mapPost(p))
		}
		if total, err = a.store.CountPublishedPosts(ctx); err != nil {
			return nil, fmt.Errorf("count posts: %w", err)
		}

	case string(domain.CategoryArticle), string(domain.CategoryTutorial),
		string(domain.CategoryDiscussion), string(domain.CategoryNews):
		category := domain.Category(typeFilter)
		items, err := a.store.ListExternalItemsByCategory(ctx, category, pageSize, skip)
		if err != nil {
			return nil, fmt.Errorf("list external items: %w", err)
		}
		for _, item := range items {
			records = append(records, a.mapExternal(item))
		}
		if total, err = a.store.CountExternalItems(ctx, category); err != nil {
			return nil, fmt.Errorf("count external items: %w", err)
		}

	default:
		return nil, fmt.Errorf("unknown feed type %q", typeFilter)
	}

	if records == nil {
		records = []domain.FeedRecord{}
	}

	// approximation: a full page is assumed to have a successor, a final
	// page that exactly fills pageSize still reports more
	return &Page{Records: records, HasMore: len(records) == pageSize, Total: total}, nil
}

func (a *Assembler) assembleMixed(ctx context.Context, skip, pageSize int) (*Page, error) {
	projects, err := a.store.ListProjects(ctx, -1, 0)
	if err != nil {
		return nil, fmt.Errorf("list projects: %w", err)
	}
	posts, err := a.store.ListPublishedPosts(ctx, -1, 0)
	if err != nil {
		return nil, fmt.Errorf("list posts: %w", err)
	}
	items, err := a.store.ListExternalItems(ctx, -1, 0)
	if err != nil {
		return nil, fmt.Errorf("list external items: %w", err)
	}

	records := make([]domain.FeedRecord, 0, len(projects)+len(posts)+len(items))
	for _, p := range projects {
		records = append(records, a.mapProject(p))
	}
	for _, p := range posts {
		records = append(records, a.mapPost(p))
	}
	for _, item := range items {
		records = append(records, a.mapExternal(item))
	}

	// global sort: createdAt descending, ties broken deterministically by ID
	sort.Slice(records, func(i, j int) bool {
		if !records[i].CreatedAt.Equal(records[j].CreatedAt) {
			return records[i].CreatedAt.After(records[j].CreatedAt)
		}
		return records[i].ID < records[j].ID
	})

	total := len(records)
	if skip >= total {
		return &Page{Records: []domain.FeedRecord{}, HasMore: false, Total: int64(total)}, nil
	}
	end := skip + pageSize
	if end > total {
		end = total
	}

	return &Page{
		Records: records[skip:end],
		HasMore: skip+pageSize < total,
		Total:   int64(total),
	}, nil
}

// mapProject converts a project into the uniform feed shape
func (a *Assembler) mapProject(p domain.Project) domain.FeedRecord {
	return domain.FeedRecord{
		ID:          fmt.Sprintf("project-%d", p.ID),
		Type:        string(domain.RecordProject),
		Title:       p.Title,
		Description: p.Description,
		Author: domain.FeedAuthor{
			Name:      p.AuthorName,
			Handle:    p.AuthorHandle,
			AvatarURL: p.AvatarURL,
		},
		Stats: domain.FeedStats{
			Stars:    p.Stars,
			Forks:    p.Forks,
			Likes:    p.LikeCount,
			Comments: p.CommentCount,
		},
		Tags:        emptyIfNil(p.Tags),
		CreatedAt:   p.CreatedAt,
		RelativeAge: relativeAge(p.CreatedAt, a.now()),
		Featured:    p.Featured,
	}
}

// mapPost converts a published blog post into the uniform feed shape
func (a *Assembler) mapPost(p domain.BlogPost) domain.FeedRecord {
	description := p.Excerpt
	if description == "" {
		description = truncate(p.Content, 200)
	}

	readTime := p.ReadTime
	if readTime == 0 {
		// rough reading speed estimate over raw content length
		readTime = (len(p.Content) + 999) / 1000
		if readTime == 0 {
			readTime = 1
		}
	}

	return domain.FeedRecord{
		ID:          fmt.Sprintf("blogpost-%d", p.ID),
		Type:        string(domain.RecordBlogPost),
		Title:       p.Title,
		Description: description,
		Author: domain.FeedAuthor{
			Name:      p.AuthorName,
			Handle:    p.AuthorHandle,
			AvatarURL: p.AvatarURL,
		},
		Stats: domain.FeedStats{
			Likes:    p.LikeCount,
			Comments: p.CommentCount,
			ReadTime: readTime,
		},
		Tags:        emptyIfNil(p.Tags),
		CreatedAt:   p.CreatedAt,
		RelativeAge: relativeAge(p.CreatedAt, a.now()),
	}
}

// mapExternal converts an external item into the uniform feed shape with a
// synthesized engagement summary and, when the provider gave no author, a
// placeholder identity derived from the source
func (a *Assembler) mapExternal(item domain.ExternalItem) domain.FeedRecord {
	author := item.Author
	handle := item.Author
	if author == "" {
		author = item.Source.DisplayName()
		handle = item.Source.String()
	}

	return domain.FeedRecord{
		ID:          fmt.Sprintf("external-%d", item.ID),
		Type:        string(item.Category),
		Title:       item.Title,
		Description: fmt.Sprintf("%d points • %d comments", item.Points, item.CommentCount),
		Author: domain.FeedAuthor{
			Name:   author,
			Handle: handle,
		},
		Stats: domain.FeedStats{
			Points:   item.Points,
			Comments: item.CommentCount,
		},
		Tags:        []string{},
		CreatedAt:   item.PublishedAt,
		RelativeAge: relativeAge(item.PublishedAt, a.now()),
	}
}

// truncate shortens s to max characters, appending an ellipsis when cut
func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max]) + "..."
}

func emptyIfNil(tags []string) []string {
	if tags == nil {
		return []string{}
	}
	return tags
}

// relativeAge renders the age of a record in fixed display buckets
func relativeAge(createdAt, now time.Time) string {
	age := now.Sub(createdAt)
	switch {
	case age < time.Minute:
		return "just now"
	case age < time.Hour:
		return fmt.Sprintf("%d minutes ago", int(age.Minutes()))
	case age < 24*time.Hour:
		return fmt.Sprintf("%d hours ago", int(age.Hours()))
	case age < 7*24*time.Hour:
		return fmt.Sprintf("%d days ago", int(age.Hours()/24))
	}
	return createdAt.Format("Jan 2, 2006")
}
