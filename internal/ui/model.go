package ui

import (
	"fmt"
	"log"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	humanize "github.com/dustin/go-humanize"

	"storygrip/internal/config"
	"storygrip/internal/domain"
	"storygrip/internal/eventbus"
	"storygrip/internal/store"
	"storygrip/internal/ui/commands"
	"storygrip/internal/ui/handlers"
	"storygrip/internal/ui/input"
	inputtypes "storygrip/internal/ui/input/types"
	"storygrip/internal/ui/logic"
	"storygrip/internal/ui/state"
	"storygrip/internal/ui/viewmodels"
	"storygrip/internal/ui/views"
)

// Model represents the UI state
type Model struct {
	bus           eventbus.EventBus
	config        *config.Config
	configService config.ConfigService
	state         *state.AppState // centralized state

	// UI-specific state not in AppState
	width        int
	height       int
	inPagerMode  bool  // tracks if we're currently in pager mode
	visibleOrder []int // display rows mapped to indexes into state.Stories

	// Committed on startup so the last session's search comes right back
	initialQuery string

	// Handlers
	filter       *logic.StoryFilter     // display filter
	navigator    *logic.Navigator       // navigation and viewport handler
	renderer     *views.Renderer        // view renderer
	eventHandler *handlers.EventHandler // event processing handler
	viewModel    *viewmodels.ViewModel  // view model for rendering
	cmdExecutor  *commands.Executor     // command executor
	inputHandler *input.Handler         // input handling
	helpRenderer *HelpRenderer          // help content for the pager
	pagerOps     *PagerOps              // pager operations handler

	// Program reference for terminal management
	program *tea.Program
}

// NewModel creates a new UI model
func NewModel(bus eventbus.EventBus, cfg *config.Config, configService config.ConfigService, kv store.Store, initialQuery string) *Model {
	appState := state.NewAppState()

	m := &Model{
		bus:           bus,
		config:        cfg,
		configService: configService,
		state:         appState,
		initialQuery:  initialQuery,
		filter:        logic.NewStoryFilter(),
		navigator:     logic.NewNavigator(),
		renderer:      views.NewRenderer(cfg.UISettings.ShowPoints, cfg.UISettings.ShowComments),
		inputHandler:  input.New(),
		helpRenderer:  NewHelpRenderer(),
		pagerOps:      NewPagerOps(),
	}

	// Create event handler; it resets the selection whenever a fetch
	// replaces the collection and launches the pager for loaded articles
	m.eventHandler = handlers.NewEventHandler(appState, m.resetAfterFetch, m.fetchArticlePager)

	// Create command executor
	m.cmdExecutor = commands.NewExecutor(appState, bus, kv)

	// Create view model with a placeholder text input (actual one is in input handler)
	placeholderTextInput := textinput.New()
	m.viewModel = viewmodels.NewViewModel(appState, placeholderTextInput)

	return m
}

// SetProgram sets the program reference for terminal management
func (m *Model) SetProgram(p *tea.Program) {
	m.program = p
	if m.pagerOps != nil {
		m.pagerOps.SetProgram(p)
	}
}

// Init returns an initial command
func (m *Model) Init() tea.Cmd {
	m.state.ViewportHeight = 20 // Will be updated on first WindowSizeMsg

	cmds := []tea.Cmd{tick()}

	if m.initialQuery != "" {
		if cmd := m.cmdExecutor.ExecuteSearch(m.initialQuery, 0); cmd != nil {
			cmds = append(cmds, cmd)
		}
	}

	if m.config.UISettings.AutoFocusSearch {
		// Open the search prompt right away, as if "/" had been pressed
		actions, cmd := m.inputHandler.HandleKey(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'/'}}, m.inputContext())
		if cmd != nil {
			cmds = append(cmds, cmd)
		}
		for _, action := range actions {
			if actionCmd := m.processAction(action); actionCmd != nil {
				cmds = append(cmds, actionCmd)
			}
		}
	}

	return tea.Batch(cmds...)
}

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.updateViewportHeight()

	case tea.KeyMsg:
		// Handle the info popup first
		if m.state.ShowInfo {
			switch msg.String() {
			case "esc", "i", "q":
				m.state.ShowInfo = false
				m.state.InfoContent = ""
				return m, nil
			}
		}

		// Handle input through the handler
		actions, cmd := m.inputHandler.HandleKey(msg, m.inputContext())

		// Process actions
		cmds := []tea.Cmd{}
		if cmd != nil {
			cmds = append(cmds, cmd)
		}

		for _, action := range actions {
			if actionCmd := m.processAction(action); actionCmd != nil {
				cmds = append(cmds, actionCmd)
			}
		}

		// Update text input in view model if in text mode
		if m.inputHandler.TextInput() != nil {
			m.viewModel.UpdateTextInput(*m.inputHandler.TextInput())
		}

		return m, tea.Batch(cmds...)

	default:
		// Handle non-keyboard messages
		if cmd := m.inputHandler.Update(msg); cmd != nil {
			// Update text input in view model if in text mode
			if m.inputHandler.TextInput() != nil {
				m.viewModel.UpdateTextInput(*m.inputHandler.TextInput())
			}
			return m, cmd
		}
		return m.handleNonKeyboardMsg(msg)
	}

	return m, nil
}

// View renders the UI
func (m *Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	// Update view model with current UI state
	m.viewModel.SetDimensions(m.width, m.height)

	// Convert input.Mode to viewmodels.InputMode
	var viewModelMode viewmodels.InputMode
	switch m.inputHandler.CurrentMode() {
	case inputtypes.ModeNormal:
		viewModelMode = viewmodels.InputModeNormal
	case inputtypes.ModeSearch:
		viewModelMode = viewmodels.InputModeSearch
	case inputtypes.ModeFilter:
		viewModelMode = viewmodels.InputModeFilter
	case inputtypes.ModePageJump:
		viewModelMode = viewmodels.InputModePageJump
	case inputtypes.ModeSort:
		viewModelMode = viewmodels.InputModeSort
	case inputtypes.ModeHistory:
		viewModelMode = viewmodels.InputModeHistory
	}
	m.viewModel.SetInputMode(viewModelMode)

	// Use input handler's text input if available
	if ti := m.inputHandler.TextInput(); ti != nil {
		m.viewModel.UpdateTextInput(*ti)
	}

	m.viewModel.SetVisibleOrder(m.visibleOrder)

	// Build view state and render
	viewState := m.viewModel.BuildViewState()
	return m.renderer.Render(viewState)
}

// handleNonKeyboardMsg handles non-keyboard messages
func (m *Model) handleNonKeyboardMsg(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case EventMsg:
		// Process domain events
		cmd := m.eventHandler.HandleEvent(msg.Event)
		return m, cmd

	case tickMsg:
		// Don't continue the tick loop while a pager owns the terminal
		if m.inPagerMode {
			return m, nil
		}
		return m, tick()

	case handlers.TickMsg:
		// One-shot repaint nudge from the event handler, the main tick
		// loop keeps running on tickMsg
		return m, nil

	case helpPagerMsg:
		if msg.err != nil {
			// Pager failed: log only; do not surface in status bar
			log.Printf("Help pager failed: %v", msg.err)
		}
		// Pager succeeded, RestoreTerminal() should have restored the screen
		return m, nil

	case articlePagerMsg:
		if msg.err != nil {
			log.Printf("Article pager failed for story %s: %v", msg.storyID, msg.err)
			m.state.StatusMessage = fmt.Sprintf("Pager failed: %v", msg.err)
			return m, tea.Tick(3*time.Second, func(t time.Time) tea.Msg { return clearStatusMsg{} })
		}
		return m, nil

	case pauseRenderingMsg:
		// Signal that rendering should be paused for external pager
		m.inPagerMode = true
		return m, nil

	case resumeRenderingMsg:
		// Rendering resumes and the tick loop restarts after the pager
		m.inPagerMode = false
		return m, tick()

	case clearStatusMsg:
		// Clear the status message
		m.state.StatusMessage = ""
		return m, nil

	case quitMsg:
		if msg.saveConfig {
			m.saveConfig()
		}
		return m, tea.Quit

	default:
		// Other messages are handled elsewhere
		return m, nil
	}
}

// processAction processes an action from the input handler
func (m *Model) processAction(action inputtypes.Action) tea.Cmd {
	log.Printf("processAction: %T", action)
	switch a := action.(type) {
	case inputtypes.NavigateAction:
		switch a.Direction {
		case "up":
			m.moveSelection(-1)
		case "down":
			m.moveSelection(1)
		case "home":
			m.setSelection(0)
		case "end":
			m.setSelection(len(m.visibleOrder) - 1)
		case "pageup":
			m.pageUp()
		case "pagedown":
			m.pageDown()
		}

	case inputtypes.DismissStoryAction:
		cmd := m.cmdExecutor.ExecuteDismissStory(a.ID)
		m.refreshVisibleOrder()
		return tea.Batch(cmd, tea.Tick(3*time.Second, func(t time.Time) tea.Msg {
			return clearStatusMsg{}
		}))

	case inputtypes.OpenArticleAction:
		return m.cmdExecutor.ExecuteOpenArticle(a.ID)

	case inputtypes.ToggleInfoAction:
		m.state.ShowInfo = !m.state.ShowInfo
		if m.state.ShowInfo {
			if story, ok := m.selectedStory(); ok {
				m.state.InfoContent = m.buildStoryInfo(story)
			} else {
				m.state.ShowInfo = false
			}
		} else {
			m.state.InfoContent = ""
		}

	case inputtypes.ShowHelpAction:
		// Generate plain text help content for pager
		helpContent := m.helpRenderer.RenderHelpContentPlain()
		return m.fetchHelpPager(helpContent)

	case inputtypes.NextPageAction:
		return m.cmdExecutor.ExecutePage(m.state.CommittedPage + 1)

	case inputtypes.PrevPageAction:
		return m.cmdExecutor.ExecutePage(m.state.CommittedPage - 1)

	case inputtypes.JumpToPageAction:
		return m.cmdExecutor.ExecutePage(a.Page)

	case inputtypes.RefreshAction:
		return m.cmdExecutor.ExecuteRefresh()

	case inputtypes.ClearFilterAction:
		m.state.FilterQuery = ""
		m.state.IsFiltered = false
		m.refreshVisibleOrder()

	case inputtypes.SortByAction:
		m.state.SortKey = a.Criteria
		m.refreshVisibleOrder()

	case inputtypes.UpdateSortIndexAction:
		m.state.SortOptionIndex = a.Index

	case inputtypes.UpdateHistoryIndexAction:
		m.state.HistoryOptionIndex = a.Index

	case inputtypes.SearchFromHistoryAction:
		return m.cmdExecutor.ExecuteSearch(a.Term, 0)

	case inputtypes.SubmitTextAction:
		// Handle text submission based on mode
		switch a.Mode {
		case inputtypes.ModeSearch:
			return m.cmdExecutor.ExecuteSearch(a.Text, 0)

		case inputtypes.ModeFilter:
			m.state.FilterQuery = strings.TrimSpace(a.Text)
			m.state.IsFiltered = m.state.FilterQuery != ""
			m.refreshVisibleOrder()

		case inputtypes.ModePageJump:
			return m.jumpToPage(a.Text)
		}

	case inputtypes.CancelTextAction:
		// Typed text is discarded; whatever was committed stays as it was

	case inputtypes.UpdateTextAction:
		// Text input display is synced in the main Update method

	case inputtypes.QuitAction:
		if !a.Force && m.config.UISettings.AutosaveOnExit {
			m.saveConfig()
		}
		return tea.Quit
	}

	return nil
}

// inputContext builds the context the input handler reads state through
func (m *Model) inputContext() *input.ModelContext {
	return &input.ModelContext{
		State:        m.state,
		VisibleOrder: m.visibleOrder,
	}
}

// refreshVisibleOrder recomputes the display order after the
// collection, the filter, or the sort changed
func (m *Model) refreshVisibleOrder() {
	query := ""
	if m.state.IsFiltered {
		query = m.state.FilterQuery
	}
	order := m.filter.VisibleIndexes(m.state.Stories, query)
	logic.NewStorySorter(m.state.Stories).Sort(order, m.state.SortKey)
	m.visibleOrder = order

	m.state.ClampSelection(len(order))
	m.ensureSelectedVisible()
}

// resetAfterFetch puts the selection back at the top of fresh results
func (m *Model) resetAfterFetch() {
	m.state.SelectedIndex = 0
	m.state.ViewportOffset = 0
	m.refreshVisibleOrder()
}

// selectedStory returns the story on the selected row
func (m *Model) selectedStory() (domain.Story, bool) {
	idx := m.state.SelectedIndex
	if idx < 0 || idx >= len(m.visibleOrder) {
		return domain.Story{}, false
	}
	return m.state.Stories[m.visibleOrder[idx]], true
}

// buildStoryInfo builds the detail popup content for a story
func (m *Model) buildStoryInfo(story domain.Story) string {
	var b strings.Builder

	b.WriteString(story.Title)
	b.WriteString("\n\n")

	if story.URL != "" {
		b.WriteString(fmt.Sprintf("Link:     %s\n", story.URL))
	} else {
		b.WriteString("Link:     (self post)\n")
	}
	b.WriteString(fmt.Sprintf("Author:   %s\n", story.Author))
	b.WriteString(fmt.Sprintf("Posted:   %s (%s)\n",
		story.CreatedAt.Format("2006-01-02 15:04"), humanize.Time(story.CreatedAt)))
	b.WriteString(fmt.Sprintf("Points:   %s\n", humanize.Comma(int64(story.Points))))
	b.WriteString(fmt.Sprintf("Comments: %s\n", humanize.Comma(int64(story.CommentCount))))
	b.WriteString(fmt.Sprintf("Thread:   https://news.ycombinator.com/item?id=%s", story.ID))

	return b.String()
}

// jumpToPage parses a 1-based page number and moves there
func (m *Model) jumpToPage(text string) tea.Cmd {
	text = strings.TrimSpace(text)
	page, err := strconv.Atoi(text)
	if err != nil || page < 1 {
		m.state.StatusMessage = fmt.Sprintf("Not a page number: %q", text)
		return tea.Tick(3*time.Second, func(t time.Time) tea.Msg {
			return clearStatusMsg{}
		})
	}
	return m.cmdExecutor.ExecutePage(page - 1)
}

// saveConfig writes the config file back out
func (m *Model) saveConfig() {
	if m.configService == nil {
		return
	}
	if err := m.configService.Save(m.config); err != nil {
		log.Printf("Failed to save config on exit: %v", err)
	}
}

// syncNavigatorState updates the navigator with current model state
func (m *Model) syncNavigatorState() {
	m.navigator.UpdateState(
		m.state.SelectedIndex,
		m.state.ViewportOffset,
		m.state.ViewportHeight,
		len(m.visibleOrder),
	)
}

// ensureSelectedVisible ensures the selected item is visible in the viewport
func (m *Model) ensureSelectedVisible() {
	m.syncNavigatorState()
	m.state.SelectedIndex, m.state.ViewportOffset = m.navigator.SetSelectedIndex(m.state.SelectedIndex)
}

// moveSelection moves the selection by delta rows
func (m *Model) moveSelection(delta int) {
	m.syncNavigatorState()
	m.state.SelectedIndex, m.state.ViewportOffset = m.navigator.Move(delta)
}

// setSelection moves the selection to an absolute row
func (m *Model) setSelection(index int) {
	m.syncNavigatorState()
	m.state.SelectedIndex, m.state.ViewportOffset = m.navigator.SetSelectedIndex(index)
}

// pageUp moves the selection up by one page
func (m *Model) pageUp() {
	m.syncNavigatorState()
	m.state.SelectedIndex, m.state.ViewportOffset = m.navigator.Move(-m.navigator.PageSize())
}

// pageDown moves the selection down by one page
func (m *Model) pageDown() {
	m.syncNavigatorState()
	m.state.SelectedIndex, m.state.ViewportOffset = m.navigator.Move(m.navigator.PageSize())
}

// updateViewportHeight calculates the available height for the story list
func (m *Model) updateViewportHeight() {
	// Account for padding (2), logo and margin (2), context line (1),
	// input line (1), status and help footer (2)
	reservedLines := 8

	m.state.ViewportHeight = m.height - reservedLines
	if m.state.ViewportHeight < 1 {
		m.state.ViewportHeight = 1
	}

	// Ensure viewport offset is still valid
	m.ensureSelectedVisible()
}

// fetchHelpPager returns a command that shows help using the ov pager
func (m *Model) fetchHelpPager(helpContent string) tea.Cmd {
	return func() tea.Msg {
		if m.program == nil {
			return helpPagerMsg{err: fmt.Errorf("program not set")}
		}

		// Send pause message to stop rendering
		m.program.Send(pauseRenderingMsg{})

		err := m.pagerOps.ShowInPager(helpContent)

		// Send resume message to restart rendering
		m.program.Send(resumeRenderingMsg{})

		return helpPagerMsg{err: err}
	}
}

// fetchArticlePager returns a command that shows an article using the ov pager
func (m *Model) fetchArticlePager(article domain.Article) tea.Cmd {
	content := FormatArticle(article)
	return func() tea.Msg {
		if m.program == nil {
			return articlePagerMsg{storyID: article.StoryID, err: fmt.Errorf("program not set")}
		}

		// Send pause message to stop rendering
		m.program.Send(pauseRenderingMsg{})

		err := m.pagerOps.ShowInPager(content)

		// Send resume message to restart rendering
		m.program.Send(resumeRenderingMsg{})

		return articlePagerMsg{storyID: article.StoryID, err: err}
	}
}

// tick returns a command that sends a tick message after a delay
func tick() tea.Cmd {
	return tea.Tick(time.Millisecond*100, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}
