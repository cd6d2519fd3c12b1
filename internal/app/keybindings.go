package app

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines all keybindings for navtrail.
type KeyMap struct {
	// Cursor
	LineDown     key.Binding
	LineUp       key.Binding
	HalfPageDown key.Binding
	HalfPageUp   key.Binding
	GotoTop      key.Binding
	GotoBottom   key.Binding

	// Path
	Back      key.Binding
	Forward   key.Binding
	PathPanel key.Binding
	PathFocus key.Binding

	// Documents
	OpenFile key.Binding
	CloseDoc key.Binding
	NextDoc  key.Binding
	PrevDoc  key.Binding
	Reload   key.Binding

	// Marks
	SetMark  key.Binding
	JumpMark key.Binding

	// Modes
	CommandMode key.Binding
	Leader      key.Binding
	Help        key.Binding
	Quit        key.Binding
}

// DefaultKeyMap returns the default vim-style keybindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		LineDown: key.NewBinding(
			key.WithKeys("j", "down"),
			key.WithHelp("j/down", "next line"),
		),
		LineUp: key.NewBinding(
			key.WithKeys("k", "up"),
			key.WithHelp("k/up", "previous line"),
		),
		HalfPageDown: key.NewBinding(
			key.WithKeys("ctrl+d"),
			key.WithHelp("Ctrl+d", "half page down"),
		),
		HalfPageUp: key.NewBinding(
			key.WithKeys("ctrl+u"),
			key.WithHelp("Ctrl+u", "half page up"),
		),
		GotoTop: key.NewBinding(
			key.WithKeys("g"),
			key.WithHelp("gg", "jump to first line"),
		),
		GotoBottom: key.NewBinding(
			key.WithKeys("G"),
			key.WithHelp("G", "jump to last line"),
		),
		Back: key.NewBinding(
			key.WithKeys("H", "["),
			key.WithHelp("H/[", "back along the path"),
		),
		Forward: key.NewBinding(
			key.WithKeys("L", "]"),
			key.WithHelp("L/]", "forward along the path"),
		),
		PathPanel: key.NewBinding(
			key.WithKeys("ctrl+p"),
			key.WithHelp("Ctrl+p", "toggle path panel"),
		),
		PathFocus: key.NewBinding(
			key.WithKeys("ctrl+h", "P"),
			key.WithHelp("Ctrl+h/P", "focus path panel"),
		),
		OpenFile: key.NewBinding(
			key.WithKeys("o"),
			key.WithHelp("o", "open file"),
		),
		CloseDoc: key.NewBinding(
			key.WithKeys("ctrl+w"),
			key.WithHelp("Ctrl+w", "close document"),
		),
		NextDoc: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("gt/Tab", "next document"),
		),
		PrevDoc: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("gT/S-Tab", "previous document"),
		),
		Reload: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "reload document"),
		),
		SetMark: key.NewBinding(
			key.WithKeys("m"),
			key.WithHelp("m<x>", "set mark"),
		),
		JumpMark: key.NewBinding(
			key.WithKeys("'"),
			key.WithHelp("'<x>", "jump to mark"),
		),
		CommandMode: key.NewBinding(
			key.WithKeys(":"),
			key.WithHelp(":", "command mode"),
		),
		Leader: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("Space", "shortcut palette"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

type keySection struct {
	name     string
	bindings []key.Binding
}

// sections groups the bindings for the help page.
func (k KeyMap) sections() []keySection {
	return []keySection{
		{"Path", []key.Binding{k.Back, k.Forward, k.PathPanel, k.PathFocus}},
		{"Cursor", []key.Binding{k.LineDown, k.LineUp, k.HalfPageDown, k.HalfPageUp, k.GotoTop, k.GotoBottom}},
		{"Documents", []key.Binding{k.OpenFile, k.CloseDoc, k.NextDoc, k.PrevDoc, k.Reload}},
		{"Marks", []key.Binding{k.SetMark, k.JumpMark}},
		{"Modes", []key.Binding{k.CommandMode, k.Leader, k.Help, k.Quit}},
	}
}
