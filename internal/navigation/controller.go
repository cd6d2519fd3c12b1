package navigation

import "log/slog"

// Editor is the document model the controller drives.
type Editor interface {
	// OpenDocuments lists the documents open right now, in open order.
	OpenDocuments() []DocumentID
	// CurrentLocation reports where the cursor of doc is.
	CurrentLocation(doc DocumentID) (Location, bool)
	// FocusLocation brings a file to the front with its cursor on line.
	// It returns false when the location no longer resolves.
	FocusLocation(filePath string, line int) bool
}

// Presenter renders the path after every change.
type Presenter interface {
	RefreshPath(entries []Location, cursor int)
}

// Outcome describes what a movement command did.
type Outcome int

const (
	Stayed Outcome = iota // at a boundary, nothing happened
	Moved                 // the editor now shows the new location
	Stale                 // the location was gone and the path was cleared
)

func (o Outcome) String() string {
	switch o {
	case Moved:
		return "moved"
	case Stale:
		return "stale"
	default:
		return "stayed"
	}
}

// Options configures a Controller.
type Options struct {
	Logger *slog.Logger
	// DisableRank turns off activation ranking. Without it the first
	// back entry of an empty path cannot be guessed.
	DisableRank bool
}

// Controller turns editor events and user commands into path movement.
//
// It is not safe for concurrent use; every call is expected to come from
// the host's event loop.
type Controller struct {
	editor    Editor
	presenter Presenter
	path      *Path
	rank      *Rank
	logger    *slog.Logger

	// focusing is set while the controller itself moves the editor, so
	// the activation that move raises is not recorded again.
	focusing bool
}

// NewController creates a controller. The rank is seeded with the
// documents the editor already has open.
func NewController(editor Editor, presenter Presenter, opts Options) *Controller {
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	c := &Controller{
		editor:    editor,
		presenter: presenter,
		path:      NewPath(),
		logger:    logger.With("component", "navigation"),
	}
	if !opts.DisableRank {
		c.rank = NewRank(editor.OpenDocuments()...)
	}
	return c
}

// SetPresenter swaps the presenter. A nil presenter disables refreshes.
func (c *Controller) SetPresenter(p Presenter) {
	c.presenter = p
	c.refresh()
}

// DocumentAdded ranks a newly opened document behind the others.
func (c *Controller) DocumentAdded(doc DocumentID) {
	if c.rank != nil {
		c.rank.Add(doc)
	}
}

// DocumentActivated moves doc to the front of the rank.
func (c *Controller) DocumentActivated(doc DocumentID) {
	if c.focusing {
		return
	}
	if c.rank != nil {
		c.rank.Activate(doc)
	}
}

// DocumentClosed forgets everything recorded for doc.
func (c *Controller) DocumentClosed(doc DocumentID) {
	n := c.path.RemoveDocument(doc)
	if c.rank != nil {
		c.rank.Remove(doc)
	}
	c.logger.Debug("document closed", "document", string(doc), "removed", n)
	c.refresh()
}

// Navigated records a jump between two locations.
func (c *Controller) Navigated(from, to Location) {
	if c.focusing {
		return
	}
	c.path.Record(from, to)
	c.refresh()
}

// NavigatedTo records a jump whose origin the editor could not tell. With
// an empty path the origin is guessed from the previously active document,
// at its first line; otherwise the entry under the cursor is used.
func (c *Controller) NavigatedTo(to Location) {
	if c.focusing {
		return
	}
	if cur, ok := c.path.Current(); ok {
		c.Navigated(cur, to)
		return
	}

	from := to
	if c.rank != nil {
		if doc, ok := c.rank.Previous(); ok {
			if loc, ok := c.editor.CurrentLocation(doc); ok {
				loc.Line = 0
				from = loc
			}
		}
	}
	c.Navigated(from, to)
}

// Previous walks one step back.
func (c *Controller) Previous() Outcome {
	loc, ok := c.path.Previous()
	if !ok {
		return Stayed
	}
	return c.show(loc)
}

// Next walks one step forward.
func (c *Controller) Next() Outcome {
	loc, ok := c.path.Next()
	if !ok {
		return Stayed
	}
	return c.show(loc)
}

// Select jumps to the i-th path entry.
func (c *Controller) Select(i int) Outcome {
	loc, ok := c.path.Select(i)
	if !ok {
		c.logger.Debug("select out of range", "index", i, "len", c.path.Len())
		return Stayed
	}
	return c.show(loc)
}

// Clear empties the path.
func (c *Controller) Clear() {
	c.path.Clear()
	c.refresh()
}

// Entries returns a copy of the path.
func (c *Controller) Entries() []Location {
	return c.path.Entries()
}

// Cursor returns the path cursor.
func (c *Controller) Cursor() int {
	return c.path.Cursor()
}

// Len returns the number of path entries.
func (c *Controller) Len() int {
	return c.path.Len()
}

// Rank returns the activation order, most recent first. It is nil when
// ranking is disabled.
func (c *Controller) Rank() []DocumentID {
	if c.rank == nil {
		return nil
	}
	return c.rank.Order()
}

// show focuses loc in the editor. A location that no longer resolves
// invalidates the whole path.
func (c *Controller) show(loc Location) Outcome {
	if !c.focus(loc) {
		c.logger.Warn("stale location, clearing path", "location", loc.String())
		c.path.Clear()
		c.refresh()
		return Stale
	}
	c.refresh()
	return Moved
}

func (c *Controller) focus(loc Location) bool {
	c.focusing = true
	defer func() { c.focusing = false }()
	return c.editor.FocusLocation(loc.FilePath, loc.Line)
}

func (c *Controller) refresh() {
	c.logger.Debug("path", "len", c.path.Len(), "cursor", c.path.Cursor(), "path", c.path.String())
	if c.presenter != nil {
		c.presenter.RefreshPath(c.path.Entries(), c.path.Cursor())
	}
}
