package viewmodels

import (
	"github.com/charmbracelet/bubbles/textinput"

	"storygrip/internal/ui/state"
	"storygrip/internal/ui/views"
)

// ViewModel transforms application state into view-ready data
type ViewModel struct {
	state            *state.AppState
	width            int
	height           int
	visibleOrder     []int
	inputTransformer *InputTransformer
}

// NewViewModel creates a new view model
func NewViewModel(appState *state.AppState, textInput textinput.Model) *ViewModel {
	return &ViewModel{
		state:            appState,
		inputTransformer: NewInputTransformer(textInput),
	}
}

// SetDimensions sets the current terminal dimensions
func (vm *ViewModel) SetDimensions(width, height int) {
	vm.width = width
	vm.height = height
}

// SetInputMode sets the current input mode
func (vm *ViewModel) SetInputMode(mode InputMode) {
	vm.inputTransformer.SetMode(mode)
}

// UpdateTextInput updates the text input model
func (vm *ViewModel) UpdateTextInput(textInput textinput.Model) {
	vm.inputTransformer.textInput = textInput
}

// SetVisibleOrder sets the display order computed from filter and sort
func (vm *ViewModel) SetVisibleOrder(order []int) {
	vm.visibleOrder = order
}

// BuildViewState creates a ViewState for rendering
func (vm *ViewModel) BuildViewState() views.ViewState {
	return views.ViewState{
		Width:              vm.width,
		Height:             vm.height,
		Stories:            vm.state.Stories,
		VisibleOrder:       vm.visibleOrder,
		SelectedIndex:      vm.state.SelectedIndex,
		Loading:            vm.state.Loading,
		Failed:             vm.state.Failed,
		ArticleLoading:     vm.state.ArticleLoading,
		ArticleTitle:       vm.state.ArticleTitle,
		SearchTerm:         vm.state.SearchTerm,
		CommittedPage:      vm.state.CommittedPage,
		TotalPages:         vm.state.TotalPages,
		TotalHits:          vm.state.TotalHits,
		ViewportOffset:     vm.state.ViewportOffset,
		ViewportHeight:     vm.state.ViewportHeight,
		StatusMessage:      vm.state.StatusMessage,
		ShowInfo:           vm.state.ShowInfo,
		InfoContent:        vm.state.InfoContent,
		FilterQuery:        vm.state.FilterQuery,
		IsFiltered:         vm.state.IsFiltered,
		SortKey:            vm.state.SortKey,
		SortOptionIndex:    vm.state.SortOptionIndex,
		HistoryOptionIndex: vm.state.HistoryOptionIndex,
		RecentSearches:     vm.state.RecentSearches,
		TextInput:          vm.inputTransformer.GetInputText(),
		InputMode:          vm.inputTransformer.GetInputModeString(),
	}
}
