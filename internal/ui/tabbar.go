package ui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/vidyasagar/navtrail/internal/theme"
)

// Tab is one open document as shown in the tab bar.
type Tab struct {
	Title string
	Path  string
}

// TabBar renders the open documents in open order.
type TabBar struct {
	tabs       []Tab
	active     int
	width      int
	maxVisible int
}

// NewTabBar creates an empty tab bar.
func NewTabBar() TabBar {
	return TabBar{
		active:     -1,
		maxVisible: 8,
	}
}

// SetWidth sets the tab bar width.
func (tb *TabBar) SetWidth(w int) {
	tb.width = w
	// Adjust visible tabs based on width.
	tb.maxVisible = min(max(w/20, 2), 10)
}

// SetTabs replaces the tabs and the active index (-1 for none).
func (tb *TabBar) SetTabs(tabs []Tab, active int) {
	tb.tabs = tabs
	tb.active = active
}

// Active returns the active tab index.
func (tb *TabBar) Active() int {
	return tb.active
}

// Count returns the number of tabs.
func (tb *TabBar) Count() int {
	return len(tb.tabs)
}

// visibleRange returns the [start, end) window of tabs around the active one.
func (tb *TabBar) visibleRange() (int, int) {
	start, end := 0, len(tb.tabs)
	if end <= tb.maxVisible {
		return start, end
	}
	start = max(tb.active-tb.maxVisible/2, 0)
	end = start + tb.maxVisible
	if end > len(tb.tabs) {
		end = len(tb.tabs)
		start = max(end-tb.maxVisible, 0)
	}
	return start, end
}

// View renders the tab bar.
func (tb *TabBar) View() string {
	t := theme.Current

	activeStyle := lipgloss.NewStyle().
		Foreground(t.TextBright).
		Background(t.TabActive).
		Bold(true).
		Padding(0, 1)

	inactiveStyle := lipgloss.NewStyle().
		Foreground(t.TextDim).
		Background(t.TabInactive).
		Padding(0, 1)

	separatorStyle := lipgloss.NewStyle().
		Foreground(t.Border)

	overflowStyle := lipgloss.NewStyle().
		Foreground(t.TextDim)

	barStyle := lipgloss.NewStyle().
		Background(t.Surface).
		Width(tb.width)

	if len(tb.tabs) == 0 {
		return barStyle.Render(overflowStyle.Render(" no documents open"))
	}

	start, end := tb.visibleRange()
	maxTitleLen := max(tb.width/tb.maxVisible-4, 8)

	var result string

	if start > 0 {
		result += overflowStyle.Render(fmt.Sprintf(" +%d ", start))
	}

	for i := start; i < end; i++ {
		title := ansi.Truncate(tb.tabs[i].Title, maxTitleLen, "…")
		if i == tb.active {
			result += activeStyle.Render(title)
		} else {
			result += inactiveStyle.Render(title)
		}
		if i < end-1 {
			result += separatorStyle.Render("|")
		}
	}

	if end < len(tb.tabs) {
		result += overflowStyle.Render(fmt.Sprintf(" +%d ", len(tb.tabs)-end))
	}

	return barStyle.Render(result)
}
