package ui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/vidyasagar/navtrail/internal/theme"
)

// DocView shows a window of a document's lines with a line-number gutter
// and the cursor line marked. Lines are expected to be already styled.
type DocView struct {
	lines  []string
	cursor int
	offset int
	width  int
	height int
}

// NewDocView creates an empty document view.
func NewDocView() DocView {
	return DocView{}
}

// SetSize updates the view dimensions.
func (dv *DocView) SetSize(width, height int) {
	dv.width = width
	dv.height = height
	dv.ensureVisible()
}

// SetDocument replaces the displayed lines. A nil slice shows the
// welcome screen.
func (dv *DocView) SetDocument(lines []string, cursor int) {
	dv.lines = lines
	dv.offset = 0
	dv.SetCursor(cursor)
}

// SetLines swaps the displayed lines of the same document, keeping the
// scroll position.
func (dv *DocView) SetLines(lines []string) {
	dv.lines = lines
	dv.SetCursor(dv.cursor)
}

// SetCursor moves the cursor line and scrolls it into view. A cursor that
// lands outside the window is centered.
func (dv *DocView) SetCursor(line int) {
	dv.cursor = max(min(line, len(dv.lines)-1), 0)
	if dv.cursor < dv.offset || dv.cursor >= dv.offset+dv.height {
		dv.offset = dv.cursor - dv.height/2
	}
	dv.ensureVisible()
}

// Cursor returns the cursor line.
func (dv *DocView) Cursor() int {
	return dv.cursor
}

// Offset returns the first visible line.
func (dv *DocView) Offset() int {
	return dv.offset
}

// Height returns the number of visible lines.
func (dv *DocView) Height() int {
	return dv.height
}

// ScrollInfo returns a string like "42%" or "TOP" or "BOT".
func (dv *DocView) ScrollInfo() string {
	last := len(dv.lines) - dv.height
	switch {
	case len(dv.lines) == 0 || dv.offset <= 0:
		return "TOP"
	case dv.offset >= last:
		return "BOT"
	default:
		return fmt.Sprintf("%d%%", dv.offset*100/last)
	}
}

// ensureVisible keeps the cursor inside the window with a little context.
func (dv *DocView) ensureVisible() {
	if dv.height <= 0 {
		return
	}
	margin := min(3, (dv.height-1)/2)
	if dv.cursor-margin < dv.offset {
		dv.offset = dv.cursor - margin
	}
	if dv.cursor+margin >= dv.offset+dv.height {
		dv.offset = dv.cursor + margin - dv.height + 1
	}
	dv.offset = max(min(dv.offset, len(dv.lines)-dv.height), 0)
}

// View renders the visible window.
func (dv *DocView) View() string {
	if dv.lines == nil {
		return dv.renderWelcome()
	}

	t := theme.Current

	numberStyle := lipgloss.NewStyle().
		Foreground(t.LineNumber)

	cursorNumberStyle := lipgloss.NewStyle().
		Foreground(t.Accent).
		Background(t.CursorLine).
		Bold(true)

	gutter := len(strconv.Itoa(len(dv.lines)))
	textWidth := max(dv.width-gutter-3, 1)

	var sb strings.Builder
	end := min(dv.offset+dv.height, len(dv.lines))
	for i := dv.offset; i < end; i++ {
		num := fmt.Sprintf("%*d", gutter, i+1)
		if i == dv.cursor {
			sb.WriteString(cursorNumberStyle.Render("▶" + num + " "))
		} else {
			sb.WriteString(numberStyle.Render(" " + num + " "))
		}
		sb.WriteString(" ")
		sb.WriteString(ansi.Truncate(dv.lines[i], textWidth, "…"))
		if i < end-1 {
			sb.WriteString("\n")
		}
	}

	return lipgloss.NewStyle().
		Width(dv.width).
		Height(dv.height).
		Render(sb.String())
}

func (dv *DocView) renderWelcome() string {
	t := theme.Current

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(t.Primary)

	subtitleStyle := lipgloss.NewStyle().
		Foreground(t.TextDim)

	accentStyle := lipgloss.NewStyle().
		Foreground(t.Accent).
		Bold(true)

	keyStyle := lipgloss.NewStyle().
		Foreground(t.Secondary)

	descStyle := lipgloss.NewStyle().
		Foreground(t.Text)

	var sb strings.Builder
	sb.WriteString("\n")
	sb.WriteString(titleStyle.Render("  navtrail"))
	sb.WriteString("\n")
	sb.WriteString(subtitleStyle.Render("  Walk back and forth along your jumps through code"))
	sb.WriteString("\n\n")
	sb.WriteString(accentStyle.Render("  Quick Start"))
	sb.WriteString("\n\n")

	shortcuts := []struct {
		key  string
		desc string
	}{
		{":e <file>", "Open a file (file:line jumps to a line)"},
		{"H / L", "Back / forward along the path"},
		{"gg / G  :<n>", "Jump to top / bottom / line"},
		{"gt / gT", "Next / previous document"},
		{"m<x> / '<x>", "Set / jump to a mark"},
		{"Ctrl+p", "Toggle the path panel"},
		{"Space", "Shortcut palette"},
		{"?", "Show all keybindings"},
		{"q", "Quit"},
	}

	for _, s := range shortcuts {
		sb.WriteString(keyStyle.Render(fmt.Sprintf("    %-16s", s.key)))
		sb.WriteString(descStyle.Render(s.desc))
		sb.WriteString("\n")
	}

	return lipgloss.NewStyle().
		Width(dv.width).
		Height(dv.height).
		Render(sb.String())
}
