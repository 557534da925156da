package state

import (
	"fmt"

	"storygrip/internal/domain"
)

// StoriesAction is the closed set of story-state transitions.
// The unexported marker keeps outside packages from adding variants,
// so the switch in ApplyStories is exhaustive.
type StoriesAction interface {
	storiesAction()
}

// FetchStart marks the beginning of a fetch for a committed query
type FetchStart struct{}

// FetchSuccess replaces the collection with one fetched page
type FetchSuccess struct {
	Stories    []domain.Story
	Page       int
	TotalPages int
	TotalHits  int
}

// FetchFailure records a failed fetch, keeping the previous collection
type FetchFailure struct{}

// Remove drops the story with the given id from the collection
type Remove struct {
	ID string
}

func (FetchStart) storiesAction()   {}
func (FetchSuccess) storiesAction() {}
func (FetchFailure) storiesAction() {}
func (Remove) storiesAction()       {}

// ApplyStories applies one transition to the story state.
// Anything outside the four variants is a programming error.
func (s *AppState) ApplyStories(action StoriesAction) {
	switch a := action.(type) {
	case FetchStart:
		s.Loading = true
		s.Failed = false
	case FetchSuccess:
		s.Loading = false
		s.Failed = false
		s.Stories = a.Stories
		s.CommittedPage = a.Page
		s.TotalPages = a.TotalPages
		s.TotalHits = a.TotalHits
	case FetchFailure:
		s.Loading = false
		s.Failed = true
	case Remove:
		next := make([]domain.Story, 0, len(s.Stories))
		for _, story := range s.Stories {
			if story.ID != a.ID {
				next = append(next, story)
			}
		}
		s.Stories = next
	default:
		panic(fmt.Sprintf("unhandled stories action %T", action))
	}
}
