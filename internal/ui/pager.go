package ui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/noborus/ov/oviewer"

	"storygrip/internal/domain"
)

// PagerOps shows long-form content in the ov pager, handing the
// terminal over while it runs
type PagerOps struct {
	program *tea.Program // reference to Bubble Tea program for terminal management
}

// NewPagerOps creates a new pager operations instance
func NewPagerOps() *PagerOps {
	return &PagerOps{}
}

// SetProgram sets the program reference for terminal management
func (p *PagerOps) SetProgram(prog *tea.Program) {
	p.program = prog
}

// ShowInPager displays the given content in ov
func (p *PagerOps) ShowInPager(content string) error {
	if p.program == nil {
		return fmt.Errorf("program not set")
	}

	// Release terminal control to run ov
	if err := p.program.ReleaseTerminal(); err != nil {
		return err
	}

	// Ensure terminal is restored even if ov fails
	defer func() {
		// Small delay to ensure ov has fully exited before restoring terminal
		time.Sleep(100 * time.Millisecond)
		_ = p.program.RestoreTerminal() // Ignore error as we're in defer context
	}()

	reader := strings.NewReader(content)

	root, err := oviewer.NewRoot(reader)
	if err != nil {
		return err
	}

	// Configure ov to not write on exit (to avoid messing with our screen)
	config := oviewer.NewConfig()
	config.IsWriteOnExit = false
	config.IsWriteOriginal = false

	root.SetConfig(config)

	// Run the oviewer (this will take over the terminal)
	return root.Run()
}

// FormatArticle renders an article as a pager document
func FormatArticle(article domain.Article) string {
	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("99"))

	metaStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241"))

	ruleStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("60"))

	var doc strings.Builder

	doc.WriteString(titleStyle.Render(article.Title))
	doc.WriteString("\n")

	meta := make([]string, 0, 2)
	if article.Byline != "" {
		meta = append(meta, article.Byline)
	}
	if article.SiteName != "" {
		meta = append(meta, article.SiteName)
	}
	if len(meta) > 0 {
		doc.WriteString(metaStyle.Render(strings.Join(meta, " · ")))
		doc.WriteString("\n")
	}

	doc.WriteString(ruleStyle.Render(strings.Repeat("─", 72)))
	doc.WriteString("\n\n")

	doc.WriteString(strings.TrimSpace(article.Text))
	doc.WriteString("\n")

	return doc.String()
}
