package views

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	humanize "github.com/dustin/go-humanize"

	"storygrip/internal/domain"
	"storygrip/internal/ui/input/modes"
)

// ViewState contains all the state needed for rendering
type ViewState struct {
	Width              int
	Height             int
	Stories            []domain.Story
	VisibleOrder       []int // indexes into Stories, after filter and sort
	SelectedIndex      int   // position within VisibleOrder
	Loading            bool
	Failed             bool
	ArticleLoading     bool
	ArticleTitle       string
	SearchTerm         string
	CommittedPage      int
	TotalPages         int
	TotalHits          int
	ViewportOffset     int
	ViewportHeight     int
	StatusMessage      string
	ShowInfo           bool
	InfoContent        string
	FilterQuery        string
	IsFiltered         bool
	SortKey            string
	SortOptionIndex    int
	HistoryOptionIndex int
	RecentSearches     []string
	TextInput          string
	InputMode          string
}

// Renderer handles all view rendering
type Renderer struct {
	styles      *Styles
	storyRender *StoryRenderer
	popupRender *PopupRenderer
}

// NewRenderer creates a new renderer
func NewRenderer(showPoints, showComments bool) *Renderer {
	styles := NewStyles()
	return &Renderer{
		styles:      styles,
		storyRender: NewStoryRenderer(styles, showPoints, showComments),
		popupRender: NewPopupRenderer(styles),
	}
}

// Render produces the complete view
func (r *Renderer) Render(state ViewState) string {
	content := &strings.Builder{}

	// Title with loading indicator
	logo := r.styles.Title.Render("storygrip")

	loadingIndicators := []string{}

	if state.Loading {
		loadingIndicators = append(loadingIndicators, fmt.Sprintf("%s Searching", spinnerFrame()))
	}
	if state.ArticleLoading {
		loadingIndicators = append(loadingIndicators, fmt.Sprintf("%s Opening article", spinnerFrame()))
	}

	// Build the title line with right-aligned indicators
	var titleLine string
	if len(loadingIndicators) > 0 || state.FilterQuery != "" || state.SortKey != "" {
		logoWidth := lipgloss.Width(logo)

		rightContent := ""
		if len(loadingIndicators) > 0 {
			rightContent = r.styles.Loading.Render(strings.Join(loadingIndicators, " | "))
		}
		if state.FilterQuery != "" {
			filterText := r.styles.Filter.Render(fmt.Sprintf("[Filter: %s]", state.FilterQuery))
			if rightContent != "" {
				rightContent = fmt.Sprintf("%s  %s", rightContent, filterText)
			} else {
				rightContent = filterText
			}
		}
		if state.SortKey != "" {
			sortText := r.styles.Sort.Render(fmt.Sprintf("[Sort: %s]", sortName(state.SortKey)))
			if rightContent != "" {
				rightContent = fmt.Sprintf("%s  %s", rightContent, sortText)
			} else {
				rightContent = sortText
			}
		}

		rightWidth := lipgloss.Width(rightContent)
		termWidth := state.Width
		if termWidth <= 0 {
			termWidth = 80 // Default terminal width
		}
		availableWidth := termWidth - 4 // Account for main container padding
		paddingWidth := availableWidth - logoWidth - rightWidth

		if paddingWidth > 0 {
			padding := strings.Repeat(" ", paddingWidth)
			titleLine = fmt.Sprintf("%s%s%s", logo, padding, rightContent)
		} else {
			titleLine = fmt.Sprintf("%s  %s", logo, rightContent)
		}
	} else {
		titleLine = logo
	}

	content.WriteString(titleLine)
	content.WriteString("\n")

	// Committed search context
	if state.SearchTerm != "" {
		context := fmt.Sprintf("%q — %s hits — page %d/%d",
			state.SearchTerm,
			humanize.Comma(int64(state.TotalHits)),
			state.CommittedPage+1,
			max(state.TotalPages, 1))
		content.WriteString(r.styles.Dim.Render(context))
		content.WriteString("\n")
	}

	// Input line or picker
	if state.InputMode != "" {
		switch state.InputMode {
		case "sort":
			content.WriteString(r.renderSortOptions(state))
		case "history":
			content.WriteString(r.renderHistoryOptions(state))
		default:
			content.WriteString(state.TextInput)
		}
		content.WriteString("\n")
		content.WriteString("\n")
	}

	// Failure banner; the previous results stay on screen below it
	if state.Failed {
		content.WriteString(r.styles.ErrorBanner.Render("Something went wrong."))
		content.WriteString(" ")
		content.WriteString(r.styles.Dim.Render("Press r to retry."))
		content.WriteString("\n")
	}

	// Main content
	mainContent := ""
	if state.Loading {
		mainContent = r.styles.Dim.Render("Searching...")
	} else if len(state.Stories) == 0 {
		if state.Failed {
			mainContent = ""
		} else if state.SearchTerm == "" {
			mainContent = r.styles.Dim.Render("Press / to search Hacker News.")
		} else {
			mainContent = r.styles.Dim.Render(fmt.Sprintf("No results for %q.", state.SearchTerm))
		}
	} else if len(state.VisibleOrder) == 0 {
		mainContent = r.styles.Dim.Render("No stories match the filter. Press F to clear it.")
	} else {
		mainContent = r.renderStoryList(state)
	}

	content.WriteString(mainContent)

	// Status message and help hint at the bottom
	bottom := &strings.Builder{}
	if state.StatusMessage != "" {
		bottom.WriteString(r.styles.Status.Render(state.StatusMessage))
		bottom.WriteString("\n")
	}
	if !state.ShowInfo {
		bottom.WriteString(r.styles.Help.Render("Press ? for help"))
	}

	if bottom.Len() > 0 {
		currentLines := strings.Count(content.String(), "\n") + 1
		bottomLines := strings.Count(bottom.String(), "\n") + 1

		// Account for container padding (1 top, 1 bottom from Padding(1, 2))
		availableLines := state.Height - 2
		if availableLines <= 0 {
			availableLines = 22 // Default terminal height minus padding
		}

		paddingNeeded := availableLines - currentLines - bottomLines
		if paddingNeeded > 0 {
			content.WriteString(strings.Repeat("\n", paddingNeeded))
		}

		content.WriteString("\n")
		content.WriteString(bottom.String())
	}

	// Apply main container style
	mainStyle := r.styles.Main.MaxHeight(state.Height)
	finalContent := mainStyle.Render(content.String())

	// Overlay the info popup on top of the main content
	if state.ShowInfo && state.InfoContent != "" {
		return r.popupRender.RenderPopupOverlay(finalContent, state.InfoContent, state.Height, state.Width, r.styles.InfoBox)
	}

	return finalContent
}

// spinnerFrame picks the braille spinner frame for the current time
func spinnerFrame() string {
	spinner := []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}
	frame := int(time.Now().UnixMilli()/80) % len(spinner)
	return spinner[frame]
}

// renderStoryList renders the visible slice of the story list
func (r *Renderer) renderStoryList(state ViewState) string {
	var lines []string

	visibleLines := make([]string, 0, len(state.VisibleOrder))
	for pos, storyIndex := range state.VisibleOrder {
		if pos < state.ViewportOffset {
			continue
		}
		line := r.storyRender.RenderStory(
			state.Stories[storyIndex],
			pos+1,
			pos == state.SelectedIndex,
			state.FilterQuery,
			state.Width,
		)
		visibleLines = append(visibleLines, line)
	}

	totalItems := len(state.VisibleOrder)

	// Calculate effective height
	effectiveHeight := state.ViewportHeight
	needsTopIndicator := state.ViewportOffset > 0
	needsBottomIndicator := len(visibleLines) > effectiveHeight ||
		totalItems > state.ViewportOffset+state.ViewportHeight

	if needsTopIndicator {
		effectiveHeight--
	}
	if needsBottomIndicator {
		effectiveHeight--
	}
	if effectiveHeight < 1 {
		effectiveHeight = 1
	}

	if needsTopIndicator {
		lines = append(lines, r.styles.Scroll.Render(fmt.Sprintf("↑ %d more above ↑", state.ViewportOffset)))
	}

	for i := 0; i < effectiveHeight && i < len(visibleLines); i++ {
		lines = append(lines, visibleLines[i])
	}

	if needsBottomIndicator {
		itemsBelow := totalItems - (state.ViewportOffset + effectiveHeight)
		if itemsBelow < 0 {
			itemsBelow = 0
		}
		lines = append(lines, r.styles.Scroll.Render(fmt.Sprintf("↓ %d more below ↓", itemsBelow)))
	}

	return strings.Join(lines, "\n")
}

// renderSortOptions renders the sort mode selection interface
func (r *Renderer) renderSortOptions(state ViewState) string {
	if state.SortOptionIndex >= 0 && state.SortOptionIndex < len(modes.SortOptions) {
		option := modes.SortOptions[state.SortOptionIndex]
		sortLine := fmt.Sprintf("Sort by: %s - %s", option.Name, option.Description)
		helpLine := r.styles.Dim.Render("↑/↓ or j/k to change • Enter to accept • Esc to cancel")
		return sortLine + "\n" + helpLine
	}
	return ""
}

// renderHistoryOptions renders the recent search picker
func (r *Renderer) renderHistoryOptions(state ViewState) string {
	if len(state.RecentSearches) == 0 {
		return r.styles.Dim.Render("No recent searches yet")
	}
	idx := state.HistoryOptionIndex
	if idx < 0 || idx >= len(state.RecentSearches) {
		idx = 0
	}
	pickLine := fmt.Sprintf("Recent search (%d/%d): %s", idx+1, len(state.RecentSearches), state.RecentSearches[idx])
	helpLine := r.styles.Dim.Render("↑/↓ or j/k to change • Enter to search • Esc to cancel")
	return pickLine + "\n" + helpLine
}

// sortName maps a sort key to its display name
func sortName(key string) string {
	for _, option := range modes.SortOptions {
		if option.Key == key {
			return option.Name
		}
	}
	return key
}
