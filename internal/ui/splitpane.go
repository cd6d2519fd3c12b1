package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/vidyasagar/navtrail/internal/theme"
)

// SplitPane lays out the document view with an optional side panel on
// the right.
type SplitPane struct {
	ShowSide bool
	Ratio    float64 // 0.0-1.0, share of the width given to the side panel
	MinSide  int
	width    int
	height   int
}

// NewSplitPane creates a split pane with the side panel shown.
func NewSplitPane() SplitPane {
	return SplitPane{
		ShowSide: true,
		Ratio:    0.25,
		MinSide:  24,
	}
}

// SetSize updates the split pane dimensions.
func (sp *SplitPane) SetSize(w, h int) {
	sp.width = w
	sp.height = h
}

// IsSplit reports whether the side panel takes up space.
func (sp *SplitPane) IsSplit() bool {
	return sp.ShowSide && sp.width >= 2*sp.MinSide
}

// Toggle shows or hides the side panel.
func (sp *SplitPane) Toggle() {
	sp.ShowSide = !sp.ShowSide
}

// MainDimensions returns the width and height for the document view.
func (sp *SplitPane) MainDimensions() (int, int) {
	if !sp.IsSplit() {
		return sp.width, sp.height
	}
	w, _ := sp.SideDimensions()
	return sp.width - w - 1, sp.height // -1 for divider
}

// SideDimensions returns the width and height for the side panel.
func (sp *SplitPane) SideDimensions() (int, int) {
	if !sp.IsSplit() {
		return 0, 0
	}
	return max(int(float64(sp.width)*sp.Ratio), sp.MinSide), sp.height
}

// Render joins the two panes with a divider.
func (sp *SplitPane) Render(main, side string) string {
	if !sp.IsSplit() {
		return main
	}

	mw, _ := sp.MainDimensions()
	sw, _ := sp.SideDimensions()

	lines := make([]string, max(sp.height, 1))
	for i := range lines {
		lines[i] = "│"
	}
	divider := lipgloss.NewStyle().
		Foreground(theme.Current.Border).
		Render(strings.Join(lines, "\n"))

	return lipgloss.JoinHorizontal(
		lipgloss.Top,
		lipgloss.NewStyle().Width(mw).Height(sp.height).Render(main),
		divider,
		lipgloss.NewStyle().Width(sw).Height(sp.height).Render(side),
	)
}
