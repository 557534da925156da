package types

// Navigation actions
type NavigateAction struct {
	Direction string // "up", "down", "pageup", "pagedown", "home", "end"
}

func (a NavigateAction) Type() string { return "navigate" }

// Mode transition actions
type ChangeModeAction struct {
	Mode Mode
	Data interface{} // Optional data for the mode
}

func (a ChangeModeAction) Type() string { return "change_mode" }

// Text input actions
type UpdateTextAction struct {
	Text string
}

func (a UpdateTextAction) Type() string { return "update_text" }

type SubmitTextAction struct {
	Text string
	Mode Mode // Which mode submitted the text
}

func (a SubmitTextAction) Type() string { return "submit_text" }

type CancelTextAction struct{}

func (a CancelTextAction) Type() string { return "cancel_text" }

// Story actions
type DismissStoryAction struct {
	ID string
}

func (a DismissStoryAction) Type() string { return "dismiss_story" }

type OpenArticleAction struct {
	ID string
}

func (a OpenArticleAction) Type() string { return "open_article" }

type ToggleInfoAction struct{}

func (a ToggleInfoAction) Type() string { return "toggle_info" }

type ShowHelpAction struct{}

func (a ShowHelpAction) Type() string { return "show_help" }

// Result paging actions
type NextPageAction struct{}

func (a NextPageAction) Type() string { return "next_page" }

type PrevPageAction struct{}

func (a PrevPageAction) Type() string { return "prev_page" }

type JumpToPageAction struct {
	Page int // zero-based
}

func (a JumpToPageAction) Type() string { return "jump_to_page" }

type RefreshAction struct{}

func (a RefreshAction) Type() string { return "refresh" }

// Filter actions
type ClearFilterAction struct{}

func (a ClearFilterAction) Type() string { return "clear_filter" }

// Sort actions
type SortByAction struct {
	Criteria string
}

func (a SortByAction) Type() string { return "sort_by" }

type UpdateSortIndexAction struct {
	Index int
}

func (a UpdateSortIndexAction) Type() string { return "update_sort_index" }

// History actions
type UpdateHistoryIndexAction struct {
	Index int
}

func (a UpdateHistoryIndexAction) Type() string { return "update_history_index" }

type SearchFromHistoryAction struct {
	Term string
}

func (a SearchFromHistoryAction) Type() string { return "search_from_history" }

type QuitAction struct {
	Force bool // true for Ctrl+C, false for 'q'
}

func (a QuitAction) Type() string { return "quit" }
