package viewmodels

import (
	"github.com/charmbracelet/bubbles/textinput"
)

// InputMode represents the different input modes
type InputMode int

const (
	InputModeNormal InputMode = iota
	InputModeSearch
	InputModeFilter
	InputModePageJump
	InputModeSort
	InputModeHistory
)

// InputTransformer handles input mode transformations
type InputTransformer struct {
	mode      InputMode
	textInput textinput.Model
}

// NewInputTransformer creates a new input transformer
func NewInputTransformer(textInput textinput.Model) *InputTransformer {
	return &InputTransformer{
		mode:      InputModeNormal,
		textInput: textInput,
	}
}

// SetMode sets the current input mode
func (it *InputTransformer) SetMode(mode InputMode) {
	it.mode = mode
}

// GetInputText returns the current text input string for the view
func (it *InputTransformer) GetInputText() string {
	switch it.mode {
	case InputModeSearch:
		return "Search: " + it.textInput.View()
	case InputModeFilter:
		return "Filter: " + it.textInput.View()
	case InputModePageJump:
		return "Page: " + it.textInput.View()
	case InputModeSort, InputModeHistory:
		// Interactive selection, not text input
		return ""
	default:
		return ""
	}
}

// GetInputModeString returns the string representation of the input mode
func (it *InputTransformer) GetInputModeString() string {
	switch it.mode {
	case InputModeSearch:
		return "search"
	case InputModeFilter:
		return "filter"
	case InputModePageJump:
		return "page-jump"
	case InputModeSort:
		return "sort"
	case InputModeHistory:
		return "history"
	default:
		return ""
	}
}
