package modes

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"storygrip/internal/ui/input/types"
)

type SearchMode struct {
	TextInputMode
}

func NewSearchMode(ti *textinput.Model) *SearchMode {
	return &SearchMode{
		TextInputMode: NewTextInputMode(types.ModeSearch, "search", "Search: ", ti),
	}
}

// HandleKey overrides the base so a blank term cannot be submitted.
func (m *SearchMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	if msg.String() == "enter" {
		text := ""
		if m.textInput != nil {
			text = m.textInput.Value()
		}
		if strings.TrimSpace(text) == "" {
			// Stay in search mode until there is something to search for
			return nil, true
		}
	}
	return m.TextInputMode.HandleKey(msg, ctx)
}
