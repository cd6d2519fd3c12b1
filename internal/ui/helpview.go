package ui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/vidyasagar/navtrail/internal/render"
	"github.com/vidyasagar/navtrail/internal/theme"
)

// HelpView shows markdown help in a scrollable viewport.
type HelpView struct {
	viewport viewport.Model
	markdown string
	ready    bool
	visible  bool
}

// NewHelpView creates a help view for the given markdown.
func NewHelpView(markdown string) HelpView {
	return HelpView{markdown: markdown}
}

// SetSize updates the viewport dimensions and re-renders the help text
// for the new width.
func (hv *HelpView) SetSize(width, height int) {
	if !hv.ready {
		hv.viewport = viewport.New(width, height)
		hv.viewport.MouseWheelEnabled = true
		hv.viewport.MouseWheelDelta = 3
		hv.ready = true
	} else {
		hv.viewport.Width = width
		hv.viewport.Height = height
	}

	content, err := render.Markdown(hv.markdown, width-2)
	if err != nil {
		content = hv.markdown
	}
	hv.viewport.SetContent(content)
}

// SetMarkdown replaces the page content.
func (hv *HelpView) SetMarkdown(markdown string) {
	hv.markdown = markdown
	if hv.ready {
		hv.SetSize(hv.viewport.Width, hv.viewport.Height)
	}
}

// Show makes the help visible, scrolled to the top.
func (hv *HelpView) Show() {
	hv.visible = true
	if hv.ready {
		hv.viewport.GotoTop()
	}
}

// Hide closes the help.
func (hv *HelpView) Hide() {
	hv.visible = false
}

// IsVisible reports whether the help is shown.
func (hv *HelpView) IsVisible() bool {
	return hv.visible
}

// Update forwards messages to the viewport.
func (hv *HelpView) Update(msg tea.Msg) (*HelpView, tea.Cmd) {
	if !hv.ready {
		return hv, nil
	}
	var cmd tea.Cmd
	hv.viewport, cmd = hv.viewport.Update(msg)
	return hv, cmd
}

// ScrollInfo returns a string like "42%" or "TOP" or "BOT".
func (hv *HelpView) ScrollInfo() string {
	if !hv.ready {
		return "TOP"
	}
	switch {
	case hv.viewport.AtTop():
		return "TOP"
	case hv.viewport.AtBottom():
		return "BOT"
	default:
		return fmt.Sprintf("%d%%", int(hv.viewport.ScrollPercent()*100))
	}
}

// GotoTop scrolls to the top.
func (hv *HelpView) GotoTop() {
	if hv.ready {
		hv.viewport.GotoTop()
	}
}

// GotoBottom scrolls to the bottom.
func (hv *HelpView) GotoBottom() {
	if hv.ready {
		hv.viewport.GotoBottom()
	}
}

// View renders the help.
func (hv *HelpView) View() string {
	if !hv.ready {
		return ""
	}
	return lipgloss.NewStyle().
		Foreground(theme.Current.Text).
		Render(hv.viewport.View())
}
