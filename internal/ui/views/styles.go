package views

import (
	"github.com/charmbracelet/lipgloss"
)

// Styles contains all the style definitions for the UI
type Styles struct {
	Title       lipgloss.Style
	Dim         lipgloss.Style
	Status      lipgloss.Style
	Filter      lipgloss.Style
	Sort        lipgloss.Style
	ErrorBanner lipgloss.Style
	InfoBox     lipgloss.Style
	Help        lipgloss.Style
	Main        lipgloss.Style
	Scroll      lipgloss.Style
	Highlight   lipgloss.Style
	SelectionBg lipgloss.Style
	Rank        lipgloss.Style
	Points      lipgloss.Style
	StoryTitle  lipgloss.Style
	Host        lipgloss.Style
	Meta        lipgloss.Style
	Loading     lipgloss.Style
}

// NewStyles creates a new Styles instance with default values
func NewStyles() *Styles {
	return &Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("99")).
			MarginBottom(1),
		Dim: lipgloss.NewStyle().Faint(true),
		Status: lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			MarginTop(1).
			MarginBottom(1),
		Filter: lipgloss.NewStyle().Foreground(lipgloss.Color("214")), // yellow
		Sort:   lipgloss.NewStyle().Foreground(lipgloss.Color("39")),  // blue
		ErrorBanner: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("203")), // red
		InfoBox: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			Padding(1).
			MarginBottom(1).
			Width(60).
			BorderForeground(lipgloss.Color("241")),
		Help: lipgloss.NewStyle().Faint(true),
		Main: lipgloss.NewStyle().
			Padding(1, 2).
			MaxHeight(100), // Will be dynamically adjusted
		Scroll:      lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Italic(true),
		Highlight:   lipgloss.NewStyle().Foreground(lipgloss.Color("226")).Bold(true),
		SelectionBg: lipgloss.NewStyle().Background(lipgloss.Color("238")),
		Rank:        lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		Points:      lipgloss.NewStyle().Foreground(lipgloss.Color("214")), // yellow
		StoryTitle:  lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		Host:        lipgloss.NewStyle().Foreground(lipgloss.Color("78")), // green
		Meta:        lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		Loading:     lipgloss.NewStyle().Foreground(lipgloss.Color("33")),
	}
}
