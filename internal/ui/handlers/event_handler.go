package handlers

import (
	"fmt"
	"log"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	humanize "github.com/dustin/go-humanize"

	"storygrip/internal/domain"
	"storygrip/internal/eventbus"
	"storygrip/internal/ui/state"
)

// TickMsg is a tick message for animations
type TickMsg time.Time

// EventHandler applies domain events to UI state. Results carry the
// token of the commit that requested them; anything older than the
// latest commit is dropped.
type EventHandler struct {
	state            *state.AppState
	onStoriesChanged func()
	showArticle      func(domain.Article) tea.Cmd
}

// NewEventHandler creates a new event handler
func NewEventHandler(appState *state.AppState, onStoriesChanged func(), showArticle func(domain.Article) tea.Cmd) *EventHandler {
	return &EventHandler{
		state:            appState,
		onStoriesChanged: onStoriesChanged,
		showArticle:      showArticle,
	}
}

// HandleEvent processes domain events and returns any necessary commands
func (h *EventHandler) HandleEvent(event eventbus.DomainEvent) tea.Cmd {
	switch e := event.(type) {
	case eventbus.SearchStartedEvent:
		if e.Token != h.state.FetchToken {
			return nil
		}
		h.state.StatusMessage = fmt.Sprintf("Searching for %q...", e.Query)
		// Keep the spinner moving while the fetch runs
		return tea.Tick(time.Millisecond*80, func(t time.Time) tea.Msg {
			return TickMsg(t)
		})

	case eventbus.SearchCompletedEvent:
		if e.Token != h.state.FetchToken {
			log.Printf("Dropping stale search result (token %d, latest %d)", e.Token, h.state.FetchToken)
			return nil
		}
		h.state.ApplyStories(state.FetchSuccess{
			Stories:    e.Result.Stories,
			Page:       e.Result.Page,
			TotalPages: e.Result.TotalPages,
			TotalHits:  e.Result.TotalHits,
		})
		h.state.StatusMessage = fmt.Sprintf("%s hits in %d ms",
			humanize.Comma(int64(e.Result.TotalHits)), e.Result.ElapsedMS)
		if h.onStoriesChanged != nil {
			h.onStoriesChanged()
		}

	case eventbus.SearchFailedEvent:
		if e.Token != h.state.FetchToken {
			log.Printf("Dropping stale search failure (token %d, latest %d)", e.Token, h.state.FetchToken)
			return nil
		}
		h.state.ApplyStories(state.FetchFailure{})
		h.state.StatusMessage = ""

	case eventbus.ArticleLoadedEvent:
		h.state.ArticleLoading = false
		h.state.ArticleTitle = ""
		if h.showArticle != nil {
			return h.showArticle(e.Article)
		}

	case eventbus.ArticleFailedEvent:
		h.state.ArticleLoading = false
		h.state.ArticleTitle = ""
		h.state.StatusMessage = fmt.Sprintf("Could not load %q: %v", e.Title, e.Err)

	case eventbus.HistoryChangedEvent:
		h.state.RecentSearches = e.Terms

	case eventbus.ErrorEvent:
		h.state.StatusMessage = fmt.Sprintf("Error: %s", e.Message)
	}

	return nil
}
