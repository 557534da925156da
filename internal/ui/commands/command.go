package commands

import (
	"fmt"
	"log"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"storygrip/internal/eventbus"
	"storygrip/internal/store"
	"storygrip/internal/ui/state"
)

// Command represents an executable action
type Command interface {
	Execute() tea.Cmd
}

// CommandContext provides context for command execution
type CommandContext struct {
	State *state.AppState
	Bus   eventbus.EventBus
	Store store.Store
}

// SearchCommand commits a search. It is the only place a fetch starts:
// the term is persisted, the loading transition is applied and the
// request event carries a fresh token so stale responses can be dropped.
type SearchCommand struct {
	ctx  *CommandContext
	term string
	page int
}

// NewSearchCommand creates a new search command
func NewSearchCommand(ctx *CommandContext, term string, page int) *SearchCommand {
	return &SearchCommand{
		ctx:  ctx,
		term: term,
		page: page,
	}
}

// Execute commits the search
func (c *SearchCommand) Execute() tea.Cmd {
	term := strings.TrimSpace(c.term)
	if term == "" {
		return nil
	}
	if c.page < 0 {
		c.page = 0
	}

	c.ctx.State.ApplyStories(state.FetchStart{})
	token := c.ctx.State.NextToken()
	c.ctx.State.SetCommitted(term, c.page)

	if c.ctx.Store != nil {
		if err := c.ctx.Store.Set(store.KeyLastSearch, term); err != nil {
			log.Printf("Failed to persist search term: %v", err)
		}
	}

	if c.ctx.Bus != nil {
		c.ctx.Bus.Publish(eventbus.SearchRequestedEvent{
			Query: term,
			Page:  c.page,
			Token: token,
		})
	}
	return nil
}

// PageCommand moves to another page of the committed search
type PageCommand struct {
	ctx  *CommandContext
	page int
}

// NewPageCommand creates a new page command
func NewPageCommand(ctx *CommandContext, page int) *PageCommand {
	return &PageCommand{
		ctx:  ctx,
		page: page,
	}
}

// Execute re-commits the current term on the target page
func (c *PageCommand) Execute() tea.Cmd {
	if c.ctx.State.SearchTerm == "" {
		return nil
	}

	page := c.page
	if page < 0 {
		page = 0
	}
	if c.ctx.State.TotalPages > 0 && page >= c.ctx.State.TotalPages {
		page = c.ctx.State.TotalPages - 1
	}
	if page == c.ctx.State.CommittedPage {
		return nil
	}

	search := NewSearchCommand(c.ctx, c.ctx.State.SearchTerm, page)
	return search.Execute()
}

// RefreshCommand re-runs the committed search on its current page
type RefreshCommand struct {
	ctx *CommandContext
}

// NewRefreshCommand creates a new refresh command
func NewRefreshCommand(ctx *CommandContext) *RefreshCommand {
	return &RefreshCommand{
		ctx: ctx,
	}
}

// Execute re-commits the current term and page
func (c *RefreshCommand) Execute() tea.Cmd {
	if c.ctx.State.SearchTerm == "" {
		return nil
	}
	search := NewSearchCommand(c.ctx, c.ctx.State.SearchTerm, c.ctx.State.CommittedPage)
	return search.Execute()
}

// DismissStoryCommand removes a story from the current result list
type DismissStoryCommand struct {
	ctx     *CommandContext
	storyID string
}

// NewDismissStoryCommand creates a new dismiss command
func NewDismissStoryCommand(ctx *CommandContext, storyID string) *DismissStoryCommand {
	return &DismissStoryCommand{
		ctx:     ctx,
		storyID: storyID,
	}
}

// Execute removes the story
func (c *DismissStoryCommand) Execute() tea.Cmd {
	if c.storyID == "" {
		return nil
	}
	story, ok := c.ctx.State.StoryByID(c.storyID)
	if !ok {
		return nil
	}

	c.ctx.State.ApplyStories(state.Remove{ID: c.storyID})
	c.ctx.State.StatusMessage = fmt.Sprintf("Dismissed %q", story.Title)
	return nil
}

// OpenArticleCommand asks the reader service for a story's text
type OpenArticleCommand struct {
	ctx     *CommandContext
	storyID string
}

// NewOpenArticleCommand creates a new open article command
func NewOpenArticleCommand(ctx *CommandContext, storyID string) *OpenArticleCommand {
	return &OpenArticleCommand{
		ctx:     ctx,
		storyID: storyID,
	}
}

// Execute requests the article. Self posts have no URL of their own, so
// their discussion page is fetched instead.
func (c *OpenArticleCommand) Execute() tea.Cmd {
	story, ok := c.ctx.State.StoryByID(c.storyID)
	if !ok {
		return nil
	}
	if c.ctx.State.ArticleLoading {
		return nil // one article fetch at a time
	}

	pageURL := story.URL
	if pageURL == "" {
		pageURL = fmt.Sprintf("https://news.ycombinator.com/item?id=%s", story.ID)
	}

	c.ctx.State.ArticleLoading = true
	c.ctx.State.ArticleTitle = story.Title

	if c.ctx.Bus != nil {
		c.ctx.Bus.Publish(eventbus.ArticleRequestedEvent{
			StoryID: story.ID,
			Title:   story.Title,
			URL:     pageURL,
		})
	}
	return nil
}
