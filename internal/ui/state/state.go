package state

import (
	"storygrip/internal/domain"
)

// AppState contains all the application state
type AppState struct {
	// Story data; always the most recent successful fetch minus local removals
	Stories []domain.Story
	Loading bool
	Failed  bool

	// Committed query (what was submitted, not what is being typed)
	SearchTerm    string // last committed search term
	CommittedPage int    // zero-based page of the committed query URL
	TotalPages    int
	TotalHits     int
	FetchToken    uint64 // sequence number of the latest commit; stale responses carry older tokens

	// Article reading state
	ArticleLoading bool
	ArticleTitle   string // title of the article being loaded

	// Selection state
	SelectedIndex int // index into the displayed (filtered/sorted) rows

	// UI state
	ViewportOffset int // offset for scrolling
	ViewportHeight int // available height for the story list
	ShowInfo       bool
	InfoContent    string
	StatusMessage  string // status bar message

	// Display-order state; never touches Stories itself
	FilterQuery        string
	IsFiltered         bool
	SortKey            string // "" means API relevance order
	SortOptionIndex    int    // highlighted option in the sort picker
	HistoryOptionIndex int    // highlighted option in the history picker
	RecentSearches     []string
}

// NewAppState creates a new application state
func NewAppState() *AppState {
	return &AppState{
		Stories:        make([]domain.Story, 0),
		ViewportHeight: 20, // Default
	}
}

// NextToken advances the commit sequence and returns the new token
func (s *AppState) NextToken() uint64 {
	s.FetchToken++
	return s.FetchToken
}

// SetCommitted records the committed query URL parts
func (s *AppState) SetCommitted(term string, page int) {
	s.SearchTerm = term
	s.CommittedPage = page
}

// StoryByID retrieves a story from the collection
func (s *AppState) StoryByID(id string) (domain.Story, bool) {
	for _, story := range s.Stories {
		if story.ID == id {
			return story, true
		}
	}
	return domain.Story{}, false
}

// ClampSelection keeps the selection inside the displayed row count
func (s *AppState) ClampSelection(visibleCount int) {
	if visibleCount == 0 {
		s.SelectedIndex = 0
		s.ViewportOffset = 0
		return
	}
	if s.SelectedIndex >= visibleCount {
		s.SelectedIndex = visibleCount - 1
	}
	if s.SelectedIndex < 0 {
		s.SelectedIndex = 0
	}
}
