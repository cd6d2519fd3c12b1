// Package render turns document text into styled terminal output.
package render

import (
	"strings"
	"sync"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/formatters"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
	lru "github.com/hashicorp/golang-lru/v2"
)

const (
	tabWidth         = 4
	defaultCacheSize = 32
)

// Highlighter syntax-highlights whole files and hands back one styled
// string per source line. Results are cached by path until invalidated.
type Highlighter struct {
	mu        sync.Mutex
	style     *chroma.Style
	formatter chroma.Formatter
	cache     *lru.Cache[string, []string]
}

// NewHighlighter creates a highlighter using the named chroma style.
// Unknown styles fall back to chroma's default.
func NewHighlighter(style string) *Highlighter {
	cache, _ := lru.New[string, []string](defaultCacheSize)
	f := formatters.Get("terminal256")
	if f == nil {
		f = formatters.Fallback
	}
	return &Highlighter{
		style:     styles.Get(style),
		formatter: f,
		cache:     cache,
	}
}

// SetStyle switches the chroma style and drops cached output.
func (h *Highlighter) SetStyle(style string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.style = styles.Get(style)
	h.cache.Purge()
}

// Style returns the name of the style in use.
func (h *Highlighter) Style() string {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.style.Name
}

// Invalidate drops the cached output for path.
func (h *Highlighter) Invalidate(path string) {
	h.cache.Remove(path)
}

// Lines highlights lines as the contents of the file at path. The result
// always has one entry per input line; files chroma does not recognise
// come back as plain text.
func (h *Highlighter) Lines(path string, lines []string) []string {
	if out, ok := h.cache.Get(path); ok && len(out) == len(lines) {
		return out
	}

	plain := make([]string, len(lines))
	for i, l := range lines {
		plain[i] = ExpandTabs(l)
	}

	out := h.highlight(path, plain)
	h.cache.Add(path, out)
	return out
}

func (h *Highlighter) highlight(path string, plain []string) []string {
	lexer := lexers.Match(path)
	if lexer == nil {
		return plain
	}
	lexer = chroma.Coalesce(lexer)

	it, err := lexer.Tokenise(nil, strings.Join(plain, "\n"))
	if err != nil {
		return plain
	}
	tokenLines := chroma.SplitTokensIntoLines(it.Tokens())

	h.mu.Lock()
	style := h.style
	h.mu.Unlock()

	out := make([]string, len(plain))
	copy(out, plain)
	var sb strings.Builder
	for i, tokens := range tokenLines {
		if i >= len(out) {
			break
		}
		for j := range tokens {
			tokens[j].Value = strings.TrimSuffix(tokens[j].Value, "\n")
		}
		sb.Reset()
		if err := h.formatter.Format(&sb, style, chroma.Literator(tokens...)); err != nil {
			continue
		}
		out[i] = sb.String()
	}
	return out
}

// ExpandTabs replaces tabs with spaces up to the next tab stop.
func ExpandTabs(s string) string {
	if !strings.Contains(s, "\t") {
		return s
	}
	var sb strings.Builder
	col := 0
	for _, r := range s {
		if r == '\t' {
			n := tabWidth - col%tabWidth
			sb.WriteString(strings.Repeat(" ", n))
			col += n
			continue
		}
		sb.WriteRune(r)
		col++
	}
	return sb.String()
}
