package ui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/vidyasagar/navtrail/internal/theme"
)

// Mode names shown in the status bar.
const (
	ModeNormal  = "NORMAL"
	ModeCommand = "COMMAND"
	ModePath    = "PATH"
	ModeLeader  = "LEADER"
	ModeHelp    = "HELP"
	ModeMark    = "MARK"
	ModeJump    = "JUMP"
)

// StatusBar shows the mode, the cursor location and the position along
// the navigation path.
type StatusBar struct {
	mode       string
	location   string
	pathPos    int // 0-based path cursor, -1 when empty
	pathLen    int
	scrollInfo string
	width      int
	message    string // temporary status message
	isError    bool
}

// NewStatusBar creates a new status bar.
func NewStatusBar() StatusBar {
	return StatusBar{
		mode:    ModeNormal,
		pathPos: -1,
	}
}

// SetWidth sets the status bar width.
func (s *StatusBar) SetWidth(w int) {
	s.width = w
}

// SetMode sets the current mode indicator.
func (s *StatusBar) SetMode(mode string) {
	s.mode = mode
}

// Mode returns the current mode indicator.
func (s *StatusBar) Mode() string {
	return s.mode
}

// SetLocation updates the displayed cursor location.
func (s *StatusBar) SetLocation(loc string) {
	s.location = loc
}

// SetPath sets the path position shown as "cursor/len".
func (s *StatusBar) SetPath(cursor, length int) {
	s.pathPos = cursor
	s.pathLen = length
}

// PathInfo returns the path position as rendered, e.g. "3/7" or "-".
func (s *StatusBar) PathInfo() string {
	if s.pathLen == 0 {
		return "-"
	}
	return fmt.Sprintf("%d/%d", s.pathPos+1, s.pathLen)
}

// SetScrollInfo sets the scroll position string (e.g. "42%", "TOP", "BOT").
func (s *StatusBar) SetScrollInfo(info string) {
	s.scrollInfo = info
}

// SetMessage sets a temporary status message.
func (s *StatusBar) SetMessage(msg string) {
	s.message = msg
	s.isError = false
}

// SetError sets a temporary error message.
func (s *StatusBar) SetError(msg string) {
	s.message = msg
	s.isError = true
}

// ClearMessage removes the temporary message.
func (s *StatusBar) ClearMessage() {
	s.message = ""
	s.isError = false
}

// Message returns the temporary message, if any.
func (s *StatusBar) Message() string {
	return s.message
}

// View renders the status bar.
func (s *StatusBar) View() string {
	t := theme.Current

	modeStyle := lipgloss.NewStyle().
		Bold(true).
		Padding(0, 1).
		Foreground(t.Background)

	switch s.mode {
	case ModeNormal:
		modeStyle = modeStyle.Background(t.Primary)
	case ModeCommand:
		modeStyle = modeStyle.Background(t.Accent)
	case ModePath:
		modeStyle = modeStyle.Background(t.PathCurrent)
	case ModeMark, ModeJump:
		modeStyle = modeStyle.Background(t.Warning)
	case ModeHelp:
		modeStyle = modeStyle.Background(t.Info)
	default:
		modeStyle = modeStyle.Background(t.Secondary)
	}
	mode := modeStyle.Render(s.mode)

	barStyle := lipgloss.NewStyle().
		Foreground(t.Text).
		Background(t.Surface)

	// Left side: message or location.
	var left string
	switch {
	case s.message != "":
		color := t.Info
		if s.isError {
			color = t.Error
		}
		left = lipgloss.NewStyle().
			Foreground(color).
			Background(t.Surface).
			Padding(0, 1).
			Render(s.message)
	case s.location != "":
		left = lipgloss.NewStyle().
			Foreground(t.Text).
			Background(t.Surface).
			Padding(0, 1).
			Render(s.location)
	}

	// Right side: path position + scroll position.
	pathStyle := lipgloss.NewStyle().
		Foreground(t.PathCurrent).
		Background(t.Surface).
		Padding(0, 1)
	right := pathStyle.Render("path " + s.PathInfo())

	if s.scrollInfo != "" {
		scrollStyle := lipgloss.NewStyle().
			Bold(true).
			Foreground(t.Secondary).
			Background(t.Surface).
			Padding(0, 1)
		right += scrollStyle.Render(s.scrollInfo)
	}

	spacerWidth := max(s.width-lipgloss.Width(mode)-lipgloss.Width(left)-lipgloss.Width(right), 0)
	spacer := lipgloss.NewStyle().
		Background(t.Surface).
		Render(fmt.Sprintf("%*s", spacerWidth, ""))

	return barStyle.Render(mode + left + spacer + right)
}
