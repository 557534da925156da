package logic

import (
	"net/url"
	"strings"

	"storygrip/internal/domain"
)

// StoryFilter narrows the visible story list without touching the
// underlying results.
type StoryFilter struct{}

// NewStoryFilter creates a new story filter
func NewStoryFilter() *StoryFilter {
	return &StoryFilter{}
}

// MatchesFilter checks if a story matches the given filter query
func (sf *StoryFilter) MatchesFilter(story domain.Story, filterQuery string) bool {
	if filterQuery == "" {
		return true
	}

	query := strings.ToLower(strings.TrimSpace(filterQuery))

	// Check if it's an author filter
	if strings.HasPrefix(query, "by:") {
		authorFilter := strings.TrimPrefix(query, "by:")
		return strings.Contains(strings.ToLower(story.Author), authorFilter)
	}

	// Regular filter - check title, author, site host
	return strings.Contains(strings.ToLower(story.Title), query) ||
		strings.Contains(strings.ToLower(story.Author), query) ||
		strings.Contains(SiteHost(story.URL), query)
}

// VisibleIndexes returns the indexes of stories matching the filter,
// in their original order.
func (sf *StoryFilter) VisibleIndexes(stories []domain.Story, filterQuery string) []int {
	indexes := make([]int, 0, len(stories))
	for i, story := range stories {
		if sf.MatchesFilter(story, filterQuery) {
			indexes = append(indexes, i)
		}
	}
	return indexes
}

// SiteHost extracts the lowercased host from a story URL, without a
// leading "www.". Self posts with no URL yield an empty string.
func SiteHost(rawURL string) string {
	if rawURL == "" {
		return ""
	}
	u, err := url.Parse(rawURL)
	if err != nil || u.Host == "" {
		return ""
	}
	host := strings.ToLower(u.Host)
	return strings.TrimPrefix(host, "www.")
}
