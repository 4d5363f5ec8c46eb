package source

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAcceptable(t *testing.T) {
	tests := []struct {
		name          string
		title         string
		engagement    int
		minEngagement int
		expected      bool
	}{
		{"valid item", "A solid article", 15, 10, true},
		{"exactly at threshold", "A solid article", 10, 10, true},
		{"below threshold", "A solid article", 9, 10, false},
		{"empty title", "", 100, 0, false},
		{"whitespace title", "   ", 100, 0, false},
		{"denylisted spam", "Great spam recipes", 100, 0, false},
		{"denylisted test", "Load testing with k6", 100, 0, false},
		{"denylist is case-insensitive", "SPAM everywhere", 100, 0, false},
		{"denylist matches substring", "The latest greatest", 100, 0, false},
		{"zero threshold accepts zero engagement", "Quiet article", 0, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, acceptable(tt.title, tt.engagement, tt.minEngagement))
		})
	}
}

func TestCapLimit(t *testing.T) {
	assert.Equal(t, 30, capLimit(0, 30), "zero limit falls back to cap")
	assert.Equal(t, 30, capLimit(-5, 30), "negative limit falls back to cap")
	assert.Equal(t, 30, capLimit(100, 30), "oversized limit is capped")
	assert.Equal(t, 10, capLimit(10, 30), "in-range limit kept")
	assert.Equal(t, 30, capLimit(30, 30), "cap itself kept")
}
