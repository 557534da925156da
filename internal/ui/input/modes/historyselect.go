package modes

import (
	tea "github.com/charmbracelet/bubbletea"

	"storygrip/internal/ui/input/types"
)

// HistorySelectMode lets the user re-run one of their recent searches.
type HistorySelectMode struct {
	historyIndex int
	terms        []string
}

func NewHistorySelectMode() *HistorySelectMode {
	return &HistorySelectMode{}
}

func (m *HistorySelectMode) Name() string {
	return "history"
}

func (m *HistorySelectMode) Enter(ctx types.Context) []types.Action {
	// Snapshot the terms so the picker stays stable while open
	m.terms = ctx.RecentSearches()
	m.historyIndex = 0
	return []types.Action{types.UpdateHistoryIndexAction{Index: 0}}
}

func (m *HistorySelectMode) Exit(ctx types.Context) []types.Action {
	return nil // No special actions on exit
}

// HandleKey processes key messages for history selection
func (m *HistorySelectMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	switch msg.String() {
	case "ctrl+c":
		return []types.Action{types.QuitAction{Force: true}}, true

	case "esc", "q":
		return []types.Action{types.ChangeModeAction{Mode: types.ModeNormal}}, true

	case "enter":
		if m.historyIndex >= 0 && m.historyIndex < len(m.terms) {
			return []types.Action{
				types.SearchFromHistoryAction{Term: m.terms[m.historyIndex]},
				types.ChangeModeAction{Mode: types.ModeNormal},
			}, true
		}
		return []types.Action{types.ChangeModeAction{Mode: types.ModeNormal}}, true

	case "down", "j":
		if len(m.terms) == 0 {
			return nil, true
		}
		m.historyIndex++
		if m.historyIndex >= len(m.terms) {
			m.historyIndex = 0
		}
		return []types.Action{types.UpdateHistoryIndexAction{Index: m.historyIndex}}, true

	case "up", "k":
		if len(m.terms) == 0 {
			return nil, true
		}
		m.historyIndex--
		if m.historyIndex < 0 {
			m.historyIndex = len(m.terms) - 1
		}
		return []types.Action{types.UpdateHistoryIndexAction{Index: m.historyIndex}}, true
	}

	return nil, false
}

// CurrentIndex returns the highlighted history entry index
func (m *HistorySelectMode) CurrentIndex() int {
	return m.historyIndex
}
