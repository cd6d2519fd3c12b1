package workspace

import (
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"slices"

	"github.com/google/uuid"
	"github.com/vidyasagar/navtrail/internal/navigation"
)

// ErrNotOpen is returned for document handles the workspace does not know.
var ErrNotOpen = errors.New("document not open")

// Listener receives document and navigation events as they happen.
type Listener interface {
	DocumentAdded(doc navigation.DocumentID)
	DocumentActivated(doc navigation.DocumentID)
	DocumentClosed(doc navigation.DocumentID)
	Navigated(from, to navigation.Location)
	NavigatedTo(to navigation.Location)
}

// FileWatcher is told which files are open.
type FileWatcher interface {
	Add(path string) error
	Remove(path string) error
}

// Document is an open file with a cursor line.
type Document struct {
	ID    navigation.DocumentID
	Path  string
	Name  string
	Lines []string
	Line  int // 0-based cursor line
}

// Location returns where the document's cursor is.
func (d *Document) Location() navigation.Location {
	return navigation.Location{Document: d.ID, FilePath: d.Path, Line: d.Line}
}

// LineCount returns the number of lines in the document.
func (d *Document) LineCount() int {
	return len(d.Lines)
}

func (d *Document) clamp(line int) int {
	if line >= len(d.Lines) {
		line = len(d.Lines) - 1
	}
	if line < 0 {
		line = 0
	}
	return line
}

// Workspace is the set of open documents and the one in front. Opening,
// switching and jumping are reported to the listener synchronously.
type Workspace struct {
	docs     []*Document
	active   int // -1 when nothing is open
	loader   *Loader
	listener Listener
	watcher  FileWatcher
	logger   *slog.Logger
}

// New creates an empty workspace reading files through loader.
func New(loader *Loader, logger *slog.Logger) *Workspace {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Workspace{
		active: -1,
		loader: loader,
		logger: logger.With("component", "workspace"),
	}
}

// SetListener sets who receives events. Documents opened before a
// listener is set are not reported.
func (w *Workspace) SetListener(l Listener) {
	w.listener = l
}

// SetWatcher registers a watcher for open files. Files already open are
// added to it.
func (w *Workspace) SetWatcher(fw FileWatcher) {
	w.watcher = fw
	if fw == nil {
		return
	}
	for _, d := range w.docs {
		if err := fw.Add(d.Path); err != nil {
			w.logger.Warn("watching file", "path", d.Path, "error", err)
		}
	}
}

// Open brings a file to the front with the cursor on line, opening it if
// needed. A negative line keeps the cursor where it was. Moving from
// another document counts as a navigation.
func (w *Workspace) Open(path string, line int) (*Document, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolving %s: %w", path, err)
	}

	doc := w.Find(abs)
	if doc == nil {
		doc, err = w.add(abs)
		if err != nil {
			return nil, err
		}
	}

	from, hadFrom := w.activeLocation()
	if line >= 0 {
		doc.Line = doc.clamp(line)
	}
	w.activate(doc)
	w.navigated(from, hadFrom, doc.Location())
	return doc, nil
}

// GotoLine jumps within the active document. It reports false when there
// is nothing to jump to.
func (w *Workspace) GotoLine(line int) bool {
	doc := w.Active()
	if doc == nil {
		return false
	}
	line = doc.clamp(line)
	if line == doc.Line {
		return false
	}
	from := doc.Location()
	doc.Line = line
	w.emitNavigated(from, doc.Location())
	return true
}

// MoveCursor moves the active cursor by delta lines. Plain cursor motion
// is not a navigation.
func (w *Workspace) MoveCursor(delta int) {
	if doc := w.Active(); doc != nil {
		doc.Line = doc.clamp(doc.Line + delta)
	}
}

// Activate switches to an open document.
func (w *Workspace) Activate(id navigation.DocumentID) error {
	doc := w.Document(id)
	if doc == nil {
		return fmt.Errorf("%w: %s", ErrNotOpen, id)
	}
	if active := w.Active(); active != nil && active.ID == id {
		return nil
	}
	from, hadFrom := w.activeLocation()
	w.activate(doc)
	w.navigated(from, hadFrom, doc.Location())
	return nil
}

// Cycle switches to the document delta places away in open order,
// wrapping around.
func (w *Workspace) Cycle(delta int) {
	if len(w.docs) < 2 {
		return
	}
	i := ((w.active+delta)%len(w.docs) + len(w.docs)) % len(w.docs)
	_ = w.Activate(w.docs[i].ID)
}

// Close closes a document. The neighbour in open order becomes active.
func (w *Workspace) Close(id navigation.DocumentID) error {
	i := slices.IndexFunc(w.docs, func(d *Document) bool { return d.ID == id })
	if i < 0 {
		return fmt.Errorf("%w: %s", ErrNotOpen, id)
	}
	closed := w.docs[i]
	wasActive := i == w.active
	w.docs = slices.Delete(w.docs, i, i+1)

	if w.watcher != nil {
		if err := w.watcher.Remove(closed.Path); err != nil {
			w.logger.Debug("unwatching file", "path", closed.Path, "error", err)
		}
	}
	w.logger.Info("document closed", "path", closed.Path)
	if w.listener != nil {
		w.listener.DocumentClosed(closed.ID)
	}

	switch {
	case len(w.docs) == 0:
		w.active = -1
	case wasActive:
		w.active = -1
		w.activate(w.docs[min(i, len(w.docs)-1)])
	case w.active > i:
		w.active--
	}
	return nil
}

// Reload re-reads an open file after it changed on disk.
func (w *Workspace) Reload(path string) error {
	doc := w.Find(path)
	if doc == nil {
		return fmt.Errorf("%w: %s", ErrNotOpen, path)
	}
	w.loader.Invalidate(path)
	lines, err := w.loader.Load(path)
	if err != nil {
		return err
	}
	doc.Lines = lines
	doc.Line = doc.clamp(doc.Line)
	w.logger.Debug("document reloaded", "path", path, "lines", len(lines))
	return nil
}

// Active returns the document in front, or nil.
func (w *Workspace) Active() *Document {
	if w.active < 0 || w.active >= len(w.docs) {
		return nil
	}
	return w.docs[w.active]
}

// ActiveIndex returns the open-order index of the active document, or -1.
func (w *Workspace) ActiveIndex() int {
	return w.active
}

// Documents returns the open documents in open order.
func (w *Workspace) Documents() []*Document {
	return slices.Clone(w.docs)
}

// Document looks up an open document by handle.
func (w *Workspace) Document(id navigation.DocumentID) *Document {
	for _, d := range w.docs {
		if d.ID == id {
			return d
		}
	}
	return nil
}

// Find looks up an open document by path.
func (w *Workspace) Find(path string) *Document {
	for _, d := range w.docs {
		if d.Path == path {
			return d
		}
	}
	return nil
}

// OpenDocuments implements navigation.Editor.
func (w *Workspace) OpenDocuments() []navigation.DocumentID {
	ids := make([]navigation.DocumentID, len(w.docs))
	for i, d := range w.docs {
		ids[i] = d.ID
	}
	return ids
}

// CurrentLocation implements navigation.Editor.
func (w *Workspace) CurrentLocation(id navigation.DocumentID) (navigation.Location, bool) {
	doc := w.Document(id)
	if doc == nil {
		return navigation.Location{}, false
	}
	return doc.Location(), true
}

// FocusLocation implements navigation.Editor. Files that were closed are
// opened again; files gone from disk do not resolve.
func (w *Workspace) FocusLocation(path string, line int) bool {
	if !w.loader.Exists(path) {
		w.logger.Info("location no longer resolves", "path", path)
		return false
	}
	doc := w.Find(path)
	if doc == nil {
		var err error
		if doc, err = w.add(path); err != nil {
			w.logger.Warn("reopening file", "path", path, "error", err)
			return false
		}
	}
	doc.Line = doc.clamp(line)
	w.activate(doc)
	return true
}

func (w *Workspace) add(path string) (*Document, error) {
	lines, err := w.loader.Load(path)
	if err != nil {
		return nil, err
	}
	doc := &Document{
		ID:    navigation.DocumentID(uuid.NewString()),
		Path:  path,
		Name:  filepath.Base(path),
		Lines: lines,
	}
	w.docs = append(w.docs, doc)

	if w.watcher != nil {
		if err := w.watcher.Add(path); err != nil {
			w.logger.Warn("watching file", "path", path, "error", err)
		}
	}
	w.logger.Info("document opened", "path", path, "lines", len(lines))
	if w.listener != nil {
		w.listener.DocumentAdded(doc.ID)
	}
	return doc, nil
}

func (w *Workspace) activate(doc *Document) {
	i := slices.Index(w.docs, doc)
	if i == w.active {
		return
	}
	w.active = i
	if w.listener != nil {
		w.listener.DocumentActivated(doc.ID)
	}
}

func (w *Workspace) activeLocation() (navigation.Location, bool) {
	if doc := w.Active(); doc != nil {
		return doc.Location(), true
	}
	return navigation.Location{}, false
}

func (w *Workspace) navigated(from navigation.Location, hadFrom bool, to navigation.Location) {
	if w.listener == nil {
		return
	}
	if !hadFrom {
		w.listener.NavigatedTo(to)
		return
	}
	w.emitNavigated(from, to)
}

func (w *Workspace) emitNavigated(from, to navigation.Location) {
	if w.listener != nil && !from.Equal(to) {
		w.listener.Navigated(from, to)
	}
}
