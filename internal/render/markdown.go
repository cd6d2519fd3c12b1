package render

import (
	"sync"

	"github.com/charmbracelet/glamour"
)

// Cached glamour renderer to avoid recreation on every render call.
var (
	cachedRenderer      *glamour.TermRenderer
	cachedRendererWidth int
	rendererMu          sync.Mutex
)

// Markdown renders markdown into styled terminal output wrapped at width.
func Markdown(markdown string, width int) (string, error) {
	if width <= 0 {
		width = 80
	}

	rendererMu.Lock()
	defer rendererMu.Unlock()

	// Recreate renderer only if width changed or not initialized.
	if cachedRenderer == nil || cachedRendererWidth != width {
		renderer, err := glamour.NewTermRenderer(
			glamour.WithStandardStyle("dark"),
			glamour.WithWordWrap(width),
		)
		if err != nil {
			return "", err
		}
		cachedRenderer = renderer
		cachedRendererWidth = width
	}

	return cachedRenderer.Render(markdown)
}
