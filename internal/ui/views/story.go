package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	humanize "github.com/dustin/go-humanize"

	"storygrip/internal/domain"
	uilogic "storygrip/internal/ui/logic"
)

// StoryRenderer handles rendering of story rows
type StoryRenderer struct {
	styles       *Styles
	showPoints   bool
	showComments bool
}

// NewStoryRenderer creates a new story renderer
func NewStoryRenderer(styles *Styles, showPoints, showComments bool) *StoryRenderer {
	return &StoryRenderer{
		styles:       styles,
		showPoints:   showPoints,
		showComments: showComments,
	}
}

// RenderStory renders one story row. rank is the 1-based position in the
// visible list.
func (r *StoryRenderer) RenderStory(story domain.Story, rank int, isSelected bool, filterQuery string, width int) string {
	// Background color for selection
	bgColor := ""
	if isSelected {
		bgColor = "238"
	}

	withBg := func(s lipgloss.Style) lipgloss.Style {
		if bgColor != "" {
			return s.Background(lipgloss.Color(bgColor))
		}
		return s
	}

	var parts []string

	rankText := fmt.Sprintf("%2d.", rank)
	parts = append(parts, withBg(r.styles.Rank).Render(rankText))
	parts = append(parts, withBg(lipgloss.NewStyle()).Render(" "))

	if r.showPoints {
		pointsText := fmt.Sprintf("▲%-4d", story.Points)
		parts = append(parts, withBg(r.styles.Points).Render(pointsText))
		parts = append(parts, withBg(lipgloss.NewStyle()).Render(" "))
	}

	// Title, highlighting the filter match if there is one
	title := truncate(story.Title, titleWidth(width))
	titleStyle := withBg(r.styles.StoryTitle)
	if filterQuery != "" && !strings.HasPrefix(strings.ToLower(filterQuery), "by:") {
		parts = append(parts, r.highlightMatch(title, strings.TrimSpace(filterQuery),
			withBg(r.styles.Highlight), titleStyle))
	} else {
		parts = append(parts, titleStyle.Render(title))
	}

	// Site host, empty for self posts
	if host := uilogic.SiteHost(story.URL); host != "" {
		parts = append(parts, withBg(r.styles.Host).Render(fmt.Sprintf(" (%s)", host)))
	}

	meta := fmt.Sprintf("  by %s %s", story.Author, humanize.Time(story.CreatedAt))
	if r.showComments {
		meta += fmt.Sprintf(" | %d comments", story.CommentCount)
	}
	parts = append(parts, withBg(r.styles.Meta).Render(meta))

	return strings.Join(parts, "")
}

// titleWidth reserves room for rank, points and trailing metadata
func titleWidth(width int) int {
	if width <= 0 {
		width = 80
	}
	w := width / 2
	if w < 20 {
		w = 20
	}
	return w
}

// truncate shortens a string to max runes with an ellipsis
func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	if max <= 3 {
		return string(runes[:max])
	}
	return string(runes[:max-3]) + "..."
}

// highlightMatch highlights matching text within a string
func (r *StoryRenderer) highlightMatch(text, query string, highlightStyle, normalStyle lipgloss.Style) string {
	lowerText := strings.ToLower(text)
	lowerQuery := strings.ToLower(query)

	index := strings.Index(lowerText, lowerQuery)
	if index == -1 {
		return normalStyle.Render(text)
	}

	before := text[:index]
	match := text[index : index+len(query)]
	after := text[index+len(query):]

	var result []string
	if before != "" {
		result = append(result, normalStyle.Render(before))
	}
	result = append(result, highlightStyle.Render(match))
	if after != "" {
		result = append(result, normalStyle.Render(after))
	}

	return strings.Join(result, "")
}
