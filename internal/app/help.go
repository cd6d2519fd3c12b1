package app

import (
	"fmt"
	"strings"
)

var commandHelp = []struct{ cmd, desc string }{
	{":e <file>[:line]", "open a file, optionally at a line"},
	{":<n>", "jump to line n"},
	{":prev / :next", "move along the path"},
	{":path", "toggle the path panel"},
	{":clear", "forget the path"},
	{":close", "close the document"},
	{":reload", "re-read the document from disk"},
	{":marks", "list marks"},
	{":mark <x>", "set mark x at the cursor"},
	{":delmark <x>", "delete mark x"},
	{":theme [name]", "show or change the theme"},
	{":q", "quit"},
}

// helpMarkdown builds the help page from the key map.
func helpMarkdown(keys KeyMap) string {
	var sb strings.Builder
	sb.WriteString("# navtrail\n\n")
	sb.WriteString("Every jump between files or to a distant line is recorded on the *path*. ")
	sb.WriteString("Walk it with `H` and `L`. Jumping somewhere new from the middle of the path ")
	sb.WriteString("drops everything ahead of you. Jumping from a file that is not where the path ")
	sb.WriteString("expects you starts a fresh path.\n\n")

	for _, section := range keys.sections() {
		fmt.Fprintf(&sb, "## %s\n\n| Key | Action |\n|---|---|\n", section.name)
		for _, b := range section.bindings {
			h := b.Help()
			fmt.Fprintf(&sb, "| `%s` | %s |\n", h.Key, h.Desc)
		}
		sb.WriteString("\n")
	}

	sb.WriteString("## Commands\n\n| Command | Action |\n|---|---|\n")
	for _, c := range commandHelp {
		fmt.Fprintf(&sb, "| `%s` | %s |\n", c.cmd, c.desc)
	}
	sb.WriteString("\nPress `Esc`, `q` or `?` to close this page.\n")
	return sb.String()
}
