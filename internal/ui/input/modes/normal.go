package modes

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"storygrip/internal/ui/input/types"
)

type NormalMode struct {
	lastKeyWasG bool
	lastGTime   time.Time
}

func NewNormalMode() *NormalMode {
	return &NormalMode{}
}

func (m *NormalMode) Name() string {
	return "normal"
}

func (m *NormalMode) Enter(ctx types.Context) []types.Action {
	return nil // No special actions on enter
}

func (m *NormalMode) Exit(ctx types.Context) []types.Action {
	return nil // No special actions on exit
}

func (m *NormalMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	switch msg.Type {
	case tea.KeyCtrlC:
		return []types.Action{types.QuitAction{Force: true}}, true

	case tea.KeyUp:
		return []types.Action{types.NavigateAction{Direction: "up"}}, true

	case tea.KeyDown:
		return []types.Action{types.NavigateAction{Direction: "down"}}, true

	case tea.KeyLeft:
		// Previous result page
		if ctx.CurrentPage() > 0 {
			return []types.Action{types.PrevPageAction{}}, true
		}
		return nil, true // Consume the key even if already on the first page

	case tea.KeyRight:
		// Next result page
		if ctx.CurrentPage()+1 < ctx.TotalPages() {
			return []types.Action{types.NextPageAction{}}, true
		}
		return nil, true // Consume the key even if already on the last page

	case tea.KeyPgUp:
		return []types.Action{types.NavigateAction{Direction: "pageup"}}, true

	case tea.KeyPgDown:
		return []types.Action{types.NavigateAction{Direction: "pagedown"}}, true

	case tea.KeyHome:
		return []types.Action{types.NavigateAction{Direction: "home"}}, true

	case tea.KeyEnd:
		return []types.Action{types.NavigateAction{Direction: "end"}}, true

	case tea.KeyEnter:
		// Enter opens the selected story in the reader
		if ctx.CurrentStoryID() != "" {
			return []types.Action{types.OpenArticleAction{ID: ctx.CurrentStoryID()}}, true
		}
		return nil, false
	}

	// Handle string keys
	switch msg.String() {
	case "j":
		return []types.Action{types.NavigateAction{Direction: "down"}}, true

	case "k":
		return []types.Action{types.NavigateAction{Direction: "up"}}, true

	case "ctrl+d":
		return []types.Action{types.NavigateAction{Direction: "pagedown"}}, true

	case "ctrl+u":
		return []types.Action{types.NavigateAction{Direction: "pageup"}}, true

	case "h", "p":
		// Previous result page
		if ctx.CurrentPage() > 0 {
			return []types.Action{types.PrevPageAction{}}, true
		}
		return nil, true // Consume the key even if already on the first page

	case "l", "n":
		// Next result page
		if ctx.CurrentPage()+1 < ctx.TotalPages() {
			return []types.Action{types.NextPageAction{}}, true
		}
		return nil, true // Consume the key even if already on the last page

	case "o":
		// Open the selected story in the reader
		if ctx.CurrentStoryID() != "" {
			return []types.Action{types.OpenArticleAction{ID: ctx.CurrentStoryID()}}, true
		}
		return nil, false

	case "d", "x":
		// Dismiss the selected story from the list
		if ctx.CurrentStoryID() != "" {
			return []types.Action{types.DismissStoryAction{ID: ctx.CurrentStoryID()}}, true
		}
		return nil, false

	case "/":
		// Enter search mode
		return []types.Action{types.ChangeModeAction{Mode: types.ModeSearch}}, true

	case "f", "ctrl+f":
		// Enter filter mode, pre-filled with the active filter so it can be edited
		return []types.Action{types.ChangeModeAction{
			Mode: types.ModeFilter,
			Data: ctx.FilterQuery(),
		}}, true

	case "F":
		// Clear the active filter
		if ctx.IsFiltered() {
			return []types.Action{types.ClearFilterAction{}}, true
		}
		return nil, true // Consume the key even if no filter is active

	case ":":
		// Jump to a specific result page
		if ctx.TotalPages() > 1 {
			return []types.Action{types.ChangeModeAction{Mode: types.ModePageJump}}, true
		}
		return nil, true // Consume the key when there is nothing to jump to

	case "s":
		// Sort mode
		return []types.Action{types.ChangeModeAction{Mode: types.ModeSort}}, true

	case "H":
		// Pick a recent search term
		if len(ctx.RecentSearches()) > 0 {
			return []types.Action{types.ChangeModeAction{Mode: types.ModeHistory}}, true
		}
		return nil, true // Consume the key when there is no history yet

	case "r":
		// Re-run the committed search
		return []types.Action{types.RefreshAction{}}, true

	case "i", "I":
		// Toggle story details
		if ctx.CurrentStoryID() != "" {
			return []types.Action{types.ToggleInfoAction{}}, true
		}
		return nil, false

	case "?":
		// Show help
		return []types.Action{types.ShowHelpAction{}}, true

	case "esc":
		// Clear the filter if one is active, otherwise do nothing
		if ctx.IsFiltered() {
			return []types.Action{types.ClearFilterAction{}}, true
		}
		return nil, true // Consume the key even if no action

	case "q":
		// Quit
		return []types.Action{types.QuitAction{Force: false}}, true

	case "g":
		if m.lastKeyWasG && time.Since(m.lastGTime) < 500*time.Millisecond {
			// gg - go to top (within timeout)
			m.lastKeyWasG = false
			return []types.Action{types.NavigateAction{Direction: "home"}}, true
		} else {
			// First g, wait for next key
			m.lastKeyWasG = true
			m.lastGTime = time.Now()
			return nil, true // consume the key but don't do anything
		}

	case "G":
		// G - go to bottom
		m.lastKeyWasG = false
		return []types.Action{types.NavigateAction{Direction: "end"}}, true

	default:
		// Any other key cancels the 'g' prefix
		if m.lastKeyWasG && msg.String() != "g" {
			m.lastKeyWasG = false
		}
		// Also cancel if too much time has passed since first 'g'
		if m.lastKeyWasG && time.Since(m.lastGTime) >= 500*time.Millisecond {
			m.lastKeyWasG = false
		}
	}

	return nil, false
}
