package domain

import "time"

// Story represents one search result returned by the Hacker News API
type Story struct {
	ID           string // Algolia objectID, also the HN item id
	Title        string
	URL          string // empty for self posts (Ask HN, polls)
	Author       string
	Points       int
	CommentCount int
	CreatedAt    time.Time
}

// SearchResult represents one page of search results
type SearchResult struct {
	Query      string
	Stories    []Story
	Page       int // zero-based
	TotalPages int
	TotalHits  int
	ElapsedMS  int // server-side processing time reported by the API
}

// Article represents readable text extracted from a story's link
type Article struct {
	StoryID  string
	Title    string
	Byline   string
	SiteName string
	Text     string
}
