package source

import (
	"strings"

	"github.com/umputun/devpulse/pkg/domain"
)

// keyword groups checked against the title in a fixed priority order:
// tutorial indicators win over discussion indicators, discussion over news
var (
	tutorialKeywords = []string{
		"how to", "tutorial", "guide", "step by step", "getting started",
		"learn", "building a", "build a", "introduction to", "beginner",
	}
	discussionKeywords = []string{
		"ask hn", "show hn", "what do you think", "thoughts on", "discussion",
		"why i", "do you", "am i the only",
	}
	newsKeywords = []string{
		"release", "announc", "launch", "now available", "introducing",
		"acquire", "shuts down", "deprecat", "is out",
	}
)

// recognized provider-supplied tags mapped to categories
var tagCategories = map[string]domain.Category{
	"tutorial":    domain.CategoryTutorial,
	"beginners":   domain.CategoryTutorial,
	"howto":       domain.CategoryTutorial,
	"discuss":     domain.CategoryDiscussion,
	"watercooler": domain.CategoryDiscussion,
	"news":        domain.CategoryNews,
	"changelog":   domain.CategoryNews,
}

// classify assigns a category using provider tags when recognized, falling
// back to keyword matching on the title, and to Article when nothing matches
func classify(title string, tags []string) domain.Category {
	for _, tag := range tags {
		if cat, ok := tagCategories[strings.ToLower(tag)]; ok {
			return cat
		}
	}

	lower := strings.ToLower(title)
	for _, kw := range tutorialKeywords {
		if strings.Contains(lower, kw) {
			return domain.CategoryTutorial
		}
	}
	for _, kw := range discussionKeywords {
		if strings.Contains(lower, kw) {
			return domain.CategoryDiscussion
		}
	}
	for _, kw := range newsKeywords {
		if strings.Contains(lower, kw) {
			return domain.CategoryNews
		}
	}

	return domain.CategoryArticle
}
