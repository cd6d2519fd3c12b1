package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/vidyasagar/navtrail/internal/navigation"
	"github.com/vidyasagar/navtrail/internal/theme"
)

// PathPanel lists the navigation path with vim navigation. It receives
// the path through RefreshPath and keeps its own selection cursor, which
// the app turns into a select command on Enter.
type PathPanel struct {
	entries  []navigation.Location
	current  int // path cursor
	cursor   int // selection
	offset   int // scroll offset for visible window
	width    int
	height   int
	focused  bool
	lastGKey bool // for gg detection within the panel
}

// NewPathPanel creates an empty path panel.
func NewPathPanel() *PathPanel {
	return &PathPanel{current: -1}
}

// RefreshPath implements navigation.Presenter. The selection follows the
// path cursor.
func (pp *PathPanel) RefreshPath(entries []navigation.Location, cursor int) {
	pp.entries = entries
	pp.current = cursor
	pp.cursor = max(cursor, 0)
	if pp.cursor >= len(entries) {
		pp.cursor = max(len(entries)-1, 0)
	}
	pp.ensureVisible()
}

// SetSize updates the panel dimensions.
func (pp *PathPanel) SetSize(w, h int) {
	pp.width = w
	pp.height = h
	pp.ensureVisible()
}

// Focus gives the panel keyboard focus.
func (pp *PathPanel) Focus() {
	pp.focused = true
	pp.lastGKey = false
}

// Blur removes keyboard focus.
func (pp *PathPanel) Blur() {
	pp.focused = false
	pp.lastGKey = false
}

// IsFocused reports whether the panel has keyboard focus.
func (pp *PathPanel) IsFocused() bool {
	return pp.focused
}

// Len returns the number of entries shown.
func (pp *PathPanel) Len() int {
	return len(pp.entries)
}

// Current returns the path cursor as last refreshed, or -1.
func (pp *PathPanel) Current() int {
	return pp.current
}

// CursorUp moves the selection up one entry.
func (pp *PathPanel) CursorUp() {
	pp.lastGKey = false
	if pp.cursor > 0 {
		pp.cursor--
		pp.ensureVisible()
	}
}

// CursorDown moves the selection down one entry.
func (pp *PathPanel) CursorDown() {
	pp.lastGKey = false
	if pp.cursor < len(pp.entries)-1 {
		pp.cursor++
		pp.ensureVisible()
	}
}

// GotoTop selects the oldest entry.
func (pp *PathPanel) GotoTop() {
	pp.lastGKey = false
	pp.cursor = 0
	pp.offset = 0
}

// GotoBottom selects the newest entry.
func (pp *PathPanel) GotoBottom() {
	pp.lastGKey = false
	if len(pp.entries) > 0 {
		pp.cursor = len(pp.entries) - 1
		pp.ensureVisible()
	}
}

// HandleGKey handles the "g" key for gg detection.
// Returns true if "gg" was completed (go to top).
func (pp *PathPanel) HandleGKey() bool {
	if pp.lastGKey {
		pp.GotoTop()
		return true
	}
	pp.lastGKey = true
	return false
}

// ResetGKey resets the g key state (called on any non-g key press).
func (pp *PathPanel) ResetGKey() {
	pp.lastGKey = false
}

// SelectedIndex returns the selected entry index, or -1 when empty.
func (pp *PathPanel) SelectedIndex() int {
	if len(pp.entries) == 0 {
		return -1
	}
	return pp.cursor
}

func (pp *PathPanel) visibleCount() int {
	// 2 lines for header (title + separator), 1 for the footer hint.
	return max(pp.height-3, 1)
}

// ensureVisible adjusts offset so the selection is within the visible window.
func (pp *PathPanel) ensureVisible() {
	visible := pp.visibleCount()
	if pp.cursor < pp.offset {
		pp.offset = pp.cursor
	}
	if pp.cursor >= pp.offset+visible {
		pp.offset = pp.cursor - visible + 1
	}
	if pp.offset < 0 {
		pp.offset = 0
	}
}

// View renders the path panel.
func (pp *PathPanel) View() string {
	t := theme.Current

	panelStyle := lipgloss.NewStyle().
		Width(pp.width).
		Height(pp.height)

	titleColor := t.TextDim
	if pp.focused {
		titleColor = t.Primary
	}
	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(titleColor).
		Background(t.Surface).
		Width(pp.width).
		Padding(0, 1)

	separatorStyle := lipgloss.NewStyle().
		Foreground(t.Border)

	selectedStyle := lipgloss.NewStyle().
		Foreground(t.TextBright).
		Background(t.TabActive).
		Bold(true).
		Width(pp.width)

	currentStyle := lipgloss.NewStyle().
		Foreground(t.PathCurrent).
		Bold(true).
		Width(pp.width)

	normalStyle := lipgloss.NewStyle().
		Foreground(t.PathEntry).
		Width(pp.width)

	dimStyle := lipgloss.NewStyle().
		Foreground(t.TextDim).
		Padding(0, 1)

	var sb strings.Builder

	title := "Path"
	if len(pp.entries) > 0 {
		title = fmt.Sprintf("Path %d/%d", pp.current+1, len(pp.entries))
	}
	sb.WriteString(titleStyle.Render(title))
	sb.WriteString("\n")
	sb.WriteString(separatorStyle.Render(strings.Repeat("─", max(pp.width, 1))))
	sb.WriteString("\n")

	if len(pp.entries) == 0 {
		sb.WriteString(dimStyle.Render("No jumps yet."))
		return panelStyle.Render(sb.String())
	}

	end := min(pp.offset+pp.visibleCount(), len(pp.entries))
	for i := pp.offset; i < end; i++ {
		marker := "  "
		if i == pp.current {
			marker = "● "
		}
		label := ansi.Truncate(marker+pp.entries[i].Short(), max(pp.width-1, 1), "…")

		switch {
		case pp.focused && i == pp.cursor:
			sb.WriteString(selectedStyle.Render(label))
		case i == pp.current:
			sb.WriteString(currentStyle.Render(label))
		default:
			sb.WriteString(normalStyle.Render(label))
		}
		sb.WriteString("\n")
	}

	if pp.focused {
		linesUsed := 2 + end - pp.offset
		for i := linesUsed; i < pp.height-1; i++ {
			sb.WriteString("\n")
		}
		hintStyle := lipgloss.NewStyle().
			Foreground(t.TextDim).
			Italic(true).
			Padding(0, 1)
		sb.WriteString(hintStyle.Render("j/k:move  Enter:go  Esc:back"))
	}

	return panelStyle.Render(sb.String())
}
