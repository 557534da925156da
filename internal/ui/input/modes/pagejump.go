package modes

import (
	"github.com/charmbracelet/bubbles/textinput"

	"storygrip/internal/ui/input/types"
)

type PageJumpMode struct {
	TextInputMode
}

func NewPageJumpMode(ti *textinput.Model) *PageJumpMode {
	return &PageJumpMode{
		TextInputMode: NewTextInputMode(types.ModePageJump, "page-jump", "Page: ", ti),
	}
}
