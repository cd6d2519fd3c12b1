package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/vidyasagar/navtrail/internal/theme"
)

// LeaderBinding represents a single leader key shortcut.
type LeaderBinding struct {
	Key  string // the key to press after leader (e.g. "b", "o", "T")
	Desc string // short description
}

// LeaderGroup is a named group of leader shortcuts.
type LeaderGroup struct {
	Name     string
	Bindings []LeaderBinding
}

// LeaderPanel renders the popup shortcut palette shown after pressing the leader key.
type LeaderPanel struct {
	visible bool
	groups  []LeaderGroup
}

// NewLeaderPanel creates a leader panel with the default shortcut groups.
func NewLeaderPanel() LeaderPanel {
	return LeaderPanel{
		groups: DefaultLeaderGroups(),
	}
}

// DefaultLeaderGroups returns the built-in shortcut groups.
func DefaultLeaderGroups() []LeaderGroup {
	return []LeaderGroup{
		{
			Name: "Path",
			Bindings: []LeaderBinding{
				{Key: "b", Desc: "Back"},
				{Key: "f", Desc: "Forward"},
				{Key: "p", Desc: "Path panel"},
				{Key: "c", Desc: "Clear path"},
			},
		},
		{
			Name: "Documents",
			Bindings: []LeaderBinding{
				{Key: "o", Desc: "Open file"},
				{Key: "w", Desc: "Close"},
				{Key: "n", Desc: "Next"},
				{Key: "N", Desc: "Previous"},
				{Key: "r", Desc: "Reload"},
			},
		},
		{
			Name: "Marks",
			Bindings: []LeaderBinding{
				{Key: "m", Desc: "List marks"},
				{Key: "'", Desc: "Jump to mark"},
			},
		},
		{
			Name: "Views",
			Bindings: []LeaderBinding{
				{Key: "T", Desc: "Theme cycle"},
				{Key: ":", Desc: "Command"},
				{Key: "?", Desc: "Help"},
				{Key: "q", Desc: "Quit"},
			},
		},
	}
}

// Groups returns the shortcut groups shown.
func (lp *LeaderPanel) Groups() []LeaderGroup {
	return lp.groups
}

// Show makes the panel visible.
func (lp *LeaderPanel) Show() {
	lp.visible = true
}

// Hide closes the panel.
func (lp *LeaderPanel) Hide() {
	lp.visible = false
}

// IsVisible reports whether the panel is shown.
func (lp *LeaderPanel) IsVisible() bool {
	return lp.visible
}

// View renders the leader palette as a popup box.
func (lp *LeaderPanel) View() string {
	if !lp.visible {
		return ""
	}

	t := theme.Current

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(t.Primary)

	groupNameStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(t.Accent).
		Underline(true)

	keyBadgeStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(t.Background).
		Background(t.Secondary).
		Padding(0, 1)

	descStyle := lipgloss.NewStyle().
		Foreground(t.Text)

	dimStyle := lipgloss.NewStyle().
		Foreground(t.TextDim).
		Italic(true)

	separatorStyle := lipgloss.NewStyle().
		Foreground(t.Border)

	const colWidth = 16

	// Uniform column heights.
	maxRows := 0
	for _, g := range lp.groups {
		maxRows = max(maxRows, len(g.Bindings))
	}

	colStyle := lipgloss.NewStyle().Width(colWidth)

	var columns []string
	for i, group := range lp.groups {
		lines := []string{groupNameStyle.Render(group.Name), ""}
		for _, b := range group.Bindings {
			lines = append(lines, keyBadgeStyle.Render(b.Key)+descStyle.Render(" "+b.Desc))
		}
		for j := len(group.Bindings); j < maxRows; j++ {
			lines = append(lines, "")
		}

		col := colStyle.Render(strings.Join(lines, "\n"))
		columns = append(columns, col)

		if i < len(lp.groups)-1 {
			sep := strings.Repeat(separatorStyle.Render(" │ ")+"\n", lipgloss.Height(col))
			columns = append(columns, strings.TrimSuffix(sep, "\n"))
		}
	}

	body := lipgloss.JoinHorizontal(lipgloss.Top, columns...)
	bodyWidth := lipgloss.Width(body)
	rule := separatorStyle.Render(strings.Repeat("─", bodyWidth))

	footer := lipgloss.PlaceHorizontal(bodyWidth, lipgloss.Center,
		dimStyle.Render("press a key or Esc to dismiss"))

	content := lipgloss.JoinVertical(lipgloss.Left,
		titleStyle.Render("Leader"),
		rule,
		"",
		body,
		"",
		rule,
		footer,
	)

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.Primary).
		Padding(1, 2).
		Render(content)
}
