package input

import (
	"storygrip/internal/ui/state"
)

// ModelContext implements the Context interface for the input handler
type ModelContext struct {
	State        *state.AppState
	VisibleOrder []int // display rows mapped to indexes into State.Stories
}

// CurrentIndex returns the current selected row
func (c *ModelContext) CurrentIndex() int {
	return c.State.SelectedIndex
}

// TotalItems returns the number of displayed rows
func (c *ModelContext) TotalItems() int {
	return len(c.VisibleOrder)
}

// CurrentStoryID returns the id of the story on the selected row
func (c *ModelContext) CurrentStoryID() string {
	idx := c.State.SelectedIndex
	if idx < 0 || idx >= len(c.VisibleOrder) {
		return ""
	}
	storyIdx := c.VisibleOrder[idx]
	if storyIdx < 0 || storyIdx >= len(c.State.Stories) {
		return ""
	}
	return c.State.Stories[storyIdx].ID
}

// CurrentPage returns the zero-based page of the committed query
func (c *ModelContext) CurrentPage() int {
	return c.State.CommittedPage
}

// TotalPages returns the page count reported by the last fetch
func (c *ModelContext) TotalPages() int {
	return c.State.TotalPages
}

// CurrentSort returns the active sort key
func (c *ModelContext) CurrentSort() string {
	return c.State.SortKey
}

// IsFiltered returns true when a filter narrows the list
func (c *ModelContext) IsFiltered() bool {
	return c.State.IsFiltered
}

// FilterQuery returns the active filter text
func (c *ModelContext) FilterQuery() string {
	return c.State.FilterQuery
}

// RecentSearches returns past search terms, most recent first
func (c *ModelContext) RecentSearches() []string {
	return c.State.RecentSearches
}
