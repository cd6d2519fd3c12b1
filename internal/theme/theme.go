package theme

import (
	"maps"
	"slices"

	"github.com/charmbracelet/lipgloss"
)

// Theme defines the color palette for the TUI.
type Theme struct {
	Name string

	// ChromaStyle names the syntax highlighting style used with this palette.
	ChromaStyle string

	// Core colors
	Primary   lipgloss.Color
	Secondary lipgloss.Color
	Accent    lipgloss.Color

	// Text colors
	Text       lipgloss.Color
	TextDim    lipgloss.Color
	TextBright lipgloss.Color

	// UI element colors
	Background  lipgloss.Color
	Surface     lipgloss.Color
	Border      lipgloss.Color
	BorderFocus lipgloss.Color

	// Document view
	LineNumber lipgloss.Color
	CursorLine lipgloss.Color

	// Path panel
	PathCurrent lipgloss.Color
	PathEntry   lipgloss.Color

	// Semantic colors
	Error   lipgloss.Color
	Success lipgloss.Color
	Warning lipgloss.Color
	Info    lipgloss.Color

	// Tab bar
	TabActive   lipgloss.Color
	TabInactive lipgloss.Color
}

// palette is the small set of base colors a theme is derived from.
type palette struct {
	bg, surface, overlay string // darkest to lightest backgrounds
	muted, fg, bright    string // text, dim to bright
	primary, secondary   string
	red, green, yellow   string
	blue                 string
}

// derive assigns UI roles to a palette. The path panel shows the current
// entry in yellow, like the cursor line's number in the gutter.
func derive(name, chroma string, p palette) Theme {
	c := func(s string) lipgloss.Color { return lipgloss.Color(s) }
	return Theme{
		Name:        name,
		ChromaStyle: chroma,
		Primary:     c(p.primary),
		Secondary:   c(p.secondary),
		Accent:      c(p.yellow),
		Text:        c(p.fg),
		TextDim:     c(p.muted),
		TextBright:  c(p.bright),
		Background:  c(p.bg),
		Surface:     c(p.surface),
		Border:      c(p.overlay),
		BorderFocus: c(p.primary),
		LineNumber:  c(p.muted),
		CursorLine:  c(p.surface),
		PathCurrent: c(p.yellow),
		PathEntry:   c(p.secondary),
		Error:       c(p.red),
		Success:     c(p.green),
		Warning:     c(p.yellow),
		Info:        c(p.blue),
		TabActive:   c(p.primary),
		TabInactive: c(p.overlay),
	}
}

var (
	Default = derive("default", "monokai", palette{
		bg: "#0F172A", surface: "#1E293B", overlay: "#334155",
		muted: "#64748B", fg: "#E2E8F0", bright: "#F8FAFC",
		primary: "#7C3AED", secondary: "#38BDF8",
		red: "#EF4444", green: "#22C55E", yellow: "#F59E0B", blue: "#3B82F6",
	})

	Gruvbox = derive("gruvbox", "gruvbox", palette{
		bg: "#282828", surface: "#3C3836", overlay: "#504945",
		muted: "#928374", fg: "#EBDBB2", bright: "#FBF1C7",
		primary: "#FE8019", secondary: "#83A598",
		red: "#FB4934", green: "#B8BB26", yellow: "#FABD2F", blue: "#458588",
	})

	Catppuccin = derive("catppuccin", "catppuccin-mocha", palette{
		bg: "#1E1E2E", surface: "#313244", overlay: "#45475A",
		muted: "#7F849C", fg: "#CDD6F4", bright: "#F5E0DC",
		primary: "#CBA6F7", secondary: "#94E2D5",
		red: "#F38BA8", green: "#A6E3A1", yellow: "#F9E2AF", blue: "#89B4FA",
	})

	Nord = derive("nord", "nord", palette{
		bg: "#2E3440", surface: "#3B4252", overlay: "#434C5E",
		muted: "#616E88", fg: "#D8DEE9", bright: "#ECEFF4",
		primary: "#88C0D0", secondary: "#8FBCBB",
		red: "#BF616A", green: "#A3BE8C", yellow: "#EBCB8B", blue: "#5E81AC",
	})

	Dracula = derive("dracula", "dracula", palette{
		bg: "#282A36", surface: "#44475A", overlay: "#6272A4",
		muted: "#6272A4", fg: "#F8F8F2", bright: "#FFFFFF",
		primary: "#BD93F9", secondary: "#8BE9FD",
		red: "#FF5555", green: "#50FA7B", yellow: "#F1FA8C", blue: "#6272A4",
	})

	Solarized = derive("solarized", "solarized-dark", palette{
		bg: "#002B36", surface: "#073642", overlay: "#586E75",
		muted: "#657B83", fg: "#93A1A1", bright: "#FDF6E3",
		primary: "#268BD2", secondary: "#2AA198",
		red: "#DC322F", green: "#859900", yellow: "#B58900", blue: "#6C71C4",
	})

	TokyoNight = derive("tokyonight", "tokyonight-night", palette{
		bg: "#1A1B26", surface: "#292E42", overlay: "#3B4261",
		muted: "#565F89", fg: "#C0CAF5", bright: "#E0E6FF",
		primary: "#7AA2F7", secondary: "#7DCFFF",
		red: "#F7768E", green: "#9ECE6A", yellow: "#E0AF68", blue: "#2AC3DE",
	})
)

var themes = map[string]Theme{
	"default":    Default,
	"gruvbox":    Gruvbox,
	"catppuccin": Catppuccin,
	"nord":       Nord,
	"dracula":    Dracula,
	"solarized":  Solarized,
	"tokyonight": TokyoNight,
}

// Current is the active theme.
var Current = Default

// Set changes the active theme by name.
func Set(name string) bool {
	if t, ok := themes[name]; ok {
		Current = t
		return true
	}
	return false
}

// Get returns the theme with the given name.
func Get(name string) (Theme, bool) {
	t, ok := themes[name]
	return t, ok
}

// List returns all available theme names, sorted.
func List() []string {
	return slices.Sorted(maps.Keys(themes))
}
