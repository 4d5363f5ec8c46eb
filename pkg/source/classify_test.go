package source

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/umputun/devpulse/pkg/domain"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name     string
		title    string
		tags     []string
		expected domain.Category
	}{
		{"tutorial keyword", "How to build a chat app", nil, domain.CategoryTutorial},
		{"tutorial guide keyword", "The complete guide to generics", nil, domain.CategoryTutorial},
		{"getting started", "Getting started with Kubernetes", nil, domain.CategoryTutorial},
		{"discussion ask hn", "Ask HN: Is remote work dying?", nil, domain.CategoryDiscussion},
		{"discussion show hn", "Show HN: My weekend project", nil, domain.CategoryDiscussion},
		{"discussion thoughts", "Thoughts on microservices in 2024", nil, domain.CategoryDiscussion},
		{"news release", "Framework X announces v2 release", nil, domain.CategoryNews},
		{"news launch", "Acme launches new developer platform", nil, domain.CategoryNews},
		{"news deprecation", "Widget API deprecated in next version", nil, domain.CategoryNews},
		{"plain article", "Postgres performance from first principles", nil, domain.CategoryArticle},
		{"default article", "Musings about databases", nil, domain.CategoryArticle},
		{"empty title", "", nil, domain.CategoryArticle},

		// provider tags win over title keywords
		{"tag tutorial", "Random title", []string{"tutorial"}, domain.CategoryTutorial},
		{"tag beginners", "Random title", []string{"beginners"}, domain.CategoryTutorial},
		{"tag discuss", "How to do things", []string{"discuss"}, domain.CategoryDiscussion},
		{"tag news mixed case", "Random title", []string{"News"}, domain.CategoryNews},
		{"tag changelog", "Random title", []string{"changelog"}, domain.CategoryNews},
		{"unrecognized tag falls back to title", "How to test", []string{"golang"}, domain.CategoryTutorial},

		// priority: tutorial beats discussion beats news
		{"tutorial beats news", "How to use the new release", nil, domain.CategoryTutorial},
		{"discussion beats news", "Ask HN: thoughts on the new release?", nil, domain.CategoryDiscussion},

		// matching is case-insensitive
		{"uppercase title", "HOW TO SCALE POSTGRES", nil, domain.CategoryTutorial},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, classify(tt.title, tt.tags))
		})
	}
}
