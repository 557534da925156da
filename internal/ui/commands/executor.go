package commands

import (
	tea "github.com/charmbracelet/bubbletea"

	"storygrip/internal/eventbus"
	"storygrip/internal/store"
	"storygrip/internal/ui/state"
)

// Executor handles command execution
type Executor struct {
	ctx *CommandContext
}

// NewExecutor creates a new command executor
func NewExecutor(appState *state.AppState, bus eventbus.EventBus, kv store.Store) *Executor {
	return &Executor{
		ctx: &CommandContext{
			State: appState,
			Bus:   bus,
			Store: kv,
		},
	}
}

// ExecuteSearch creates and executes a search command
func (e *Executor) ExecuteSearch(term string, page int) tea.Cmd {
	cmd := NewSearchCommand(e.ctx, term, page)
	return cmd.Execute()
}

// ExecutePage creates and executes a page command
func (e *Executor) ExecutePage(page int) tea.Cmd {
	cmd := NewPageCommand(e.ctx, page)
	return cmd.Execute()
}

// ExecuteRefresh creates and executes a refresh command
func (e *Executor) ExecuteRefresh() tea.Cmd {
	cmd := NewRefreshCommand(e.ctx)
	return cmd.Execute()
}

// ExecuteDismissStory creates and executes a dismiss command
func (e *Executor) ExecuteDismissStory(storyID string) tea.Cmd {
	cmd := NewDismissStoryCommand(e.ctx, storyID)
	return cmd.Execute()
}

// ExecuteOpenArticle creates and executes an open article command
func (e *Executor) ExecuteOpenArticle(storyID string) tea.Cmd {
	cmd := NewOpenArticleCommand(e.ctx, storyID)
	return cmd.Execute()
}
