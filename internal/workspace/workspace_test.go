package workspace

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vidyasagar/navtrail/internal/navigation"
)

// recorder captures listener events as readable strings.
type recorder struct {
	ws     *Workspace
	events []string
}

func (r *recorder) name(id navigation.DocumentID) string {
	if d := r.ws.Document(id); d != nil {
		return d.Name
	}
	return "?"
}

func (r *recorder) DocumentAdded(id navigation.DocumentID) {
	r.events = append(r.events, "added "+r.name(id))
}

func (r *recorder) DocumentActivated(id navigation.DocumentID) {
	r.events = append(r.events, "activated "+r.name(id))
}

func (r *recorder) DocumentClosed(id navigation.DocumentID) {
	r.events = append(r.events, "closed "+string(id))
}

func (r *recorder) Navigated(from, to navigation.Location) {
	r.events = append(r.events, fmt.Sprintf("navigated %s -> %s", from.Short(), to.Short()))
}

func (r *recorder) NavigatedTo(to navigation.Location) {
	r.events = append(r.events, "navigated to "+to.Short())
}

func (r *recorder) take() []string {
	ev := r.events
	r.events = nil
	return ev
}

type fixture struct {
	dir string
	ws  *Workspace
	rec *recorder
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	dir := t.TempDir()
	for _, name := range []string{"a.go", "b.go", "c.go"} {
		var sb strings.Builder
		for i := 0; i < 20; i++ {
			fmt.Fprintf(&sb, "%s line %d\n", name, i+1)
		}
		writeFile(t, dir, name, sb.String())
	}

	l, err := NewLoader(4)
	require.NoError(t, err)
	ws := New(l, nil)
	rec := &recorder{ws: ws}
	ws.SetListener(rec)
	return &fixture{dir: dir, ws: ws, rec: rec}
}

func (f *fixture) path(name string) string {
	return filepath.Join(f.dir, name)
}

func TestOpenFirstDocument(t *testing.T) {
	f := newFixture(t)

	doc, err := f.ws.Open(f.path("a.go"), 4)
	require.NoError(t, err)

	require.Equal(t, "a.go", doc.Name)
	require.Equal(t, 4, doc.Line)
	require.Equal(t, 20, doc.LineCount())
	require.Equal(t, []string{"added a.go", "activated a.go", "navigated to a.go:5"}, f.rec.take())
}

func TestOpenSecondDocumentIsNavigation(t *testing.T) {
	f := newFixture(t)
	_, err := f.ws.Open(f.path("a.go"), 2)
	require.NoError(t, err)
	f.rec.take()

	_, err = f.ws.Open(f.path("b.go"), 0)
	require.NoError(t, err)

	require.Equal(t, []string{"added b.go", "activated b.go", "navigated a.go:3 -> b.go:1"}, f.rec.take())
	require.Len(t, f.ws.Documents(), 2)
}

func TestOpenAlreadyOpenSwitches(t *testing.T) {
	f := newFixture(t)
	a, _ := f.ws.Open(f.path("a.go"), 0)
	_, _ = f.ws.Open(f.path("b.go"), 0)
	f.rec.take()

	again, err := f.ws.Open(f.path("a.go"), 9)
	require.NoError(t, err)

	require.Same(t, a, again)
	require.Equal(t, []string{"activated a.go", "navigated b.go:1 -> a.go:10"}, f.rec.take())
}

func TestOpenMissingFile(t *testing.T) {
	f := newFixture(t)
	_, err := f.ws.Open(f.path("nope.go"), 0)
	require.ErrorIs(t, err, ErrNotFound)
	require.Empty(t, f.rec.take())
	require.Nil(t, f.ws.Active())
}

func TestOpenClampsLine(t *testing.T) {
	f := newFixture(t)
	doc, err := f.ws.Open(f.path("a.go"), 500)
	require.NoError(t, err)
	require.Equal(t, 19, doc.Line)

	doc, err = f.ws.Open(f.path("b.go"), -3)
	require.NoError(t, err)
	require.Equal(t, 0, doc.Line)
}

func TestGotoLine(t *testing.T) {
	f := newFixture(t)
	require.False(t, f.ws.GotoLine(3), "nothing open")

	_, _ = f.ws.Open(f.path("a.go"), 0)
	f.rec.take()

	require.True(t, f.ws.GotoLine(10))
	require.Equal(t, []string{"navigated a.go:1 -> a.go:11"}, f.rec.take())

	require.False(t, f.ws.GotoLine(10), "already there")
	require.Empty(t, f.rec.take())
}

func TestMoveCursorIsNotNavigation(t *testing.T) {
	f := newFixture(t)
	doc, _ := f.ws.Open(f.path("a.go"), 0)
	f.rec.take()

	f.ws.MoveCursor(3)
	f.ws.MoveCursor(-1)
	f.ws.MoveCursor(-10)
	require.Equal(t, 0, doc.Line)
	f.ws.MoveCursor(100)
	require.Equal(t, 19, doc.Line)
	require.Empty(t, f.rec.take())
}

func TestActivateAndCycle(t *testing.T) {
	f := newFixture(t)
	a, _ := f.ws.Open(f.path("a.go"), 0)
	_, _ = f.ws.Open(f.path("b.go"), 0)
	_, _ = f.ws.Open(f.path("c.go"), 0)
	f.rec.take()

	require.NoError(t, f.ws.Activate(a.ID))
	require.Equal(t, []string{"activated a.go", "navigated c.go:1 -> a.go:1"}, f.rec.take())

	require.NoError(t, f.ws.Activate(a.ID))
	require.Empty(t, f.rec.take(), "already active")

	f.ws.Cycle(-1)
	require.Equal(t, "c.go", f.ws.Active().Name)
	f.ws.Cycle(1)
	require.Equal(t, "a.go", f.ws.Active().Name)

	require.ErrorIs(t, f.ws.Activate("unknown"), ErrNotOpen)
}

func TestClose(t *testing.T) {
	f := newFixture(t)
	a, _ := f.ws.Open(f.path("a.go"), 0)
	b, _ := f.ws.Open(f.path("b.go"), 0)
	c, _ := f.ws.Open(f.path("c.go"), 0)
	require.NoError(t, f.ws.Activate(b.ID))
	f.rec.take()

	require.NoError(t, f.ws.Close(b.ID))
	require.Equal(t, []string{"closed " + string(b.ID), "activated c.go"}, f.rec.take())
	require.Equal(t, 1, f.ws.ActiveIndex())

	require.NoError(t, f.ws.Close(a.ID))
	require.Equal(t, "c.go", f.ws.Active().Name)
	require.Equal(t, 0, f.ws.ActiveIndex())
	require.Equal(t, []string{"closed " + string(a.ID)}, f.rec.take())

	require.NoError(t, f.ws.Close(c.ID))
	require.Nil(t, f.ws.Active())
	require.Equal(t, -1, f.ws.ActiveIndex())

	require.ErrorIs(t, f.ws.Close(c.ID), ErrNotOpen)
}

func TestEditorContract(t *testing.T) {
	f := newFixture(t)
	a, _ := f.ws.Open(f.path("a.go"), 3)
	b, _ := f.ws.Open(f.path("b.go"), 0)
	f.rec.take()

	var ed navigation.Editor = f.ws
	require.Equal(t, []navigation.DocumentID{a.ID, b.ID}, ed.OpenDocuments())

	l, ok := ed.CurrentLocation(a.ID)
	require.True(t, ok)
	require.Equal(t, navigation.Location{Document: a.ID, FilePath: f.path("a.go"), Line: 3}, l)

	_, ok = ed.CurrentLocation("unknown")
	require.False(t, ok)

	require.True(t, ed.FocusLocation(f.path("a.go"), 7))
	require.Equal(t, a, f.ws.Active())
	require.Equal(t, 7, a.Line)
	require.Equal(t, []string{"activated a.go"}, f.rec.take(), "focus is not a navigation")
}

func TestFocusLocationReopensClosedFile(t *testing.T) {
	f := newFixture(t)
	a, _ := f.ws.Open(f.path("a.go"), 0)
	require.NoError(t, f.ws.Close(a.ID))
	f.rec.take()

	require.True(t, f.ws.FocusLocation(f.path("a.go"), 5))
	doc := f.ws.Active()
	require.NotNil(t, doc)
	require.NotEqual(t, a.ID, doc.ID, "a reopened file gets a new handle")
	require.Equal(t, 5, doc.Line)
	require.Equal(t, []string{"added a.go", "activated a.go"}, f.rec.take())
}

func TestFocusLocationMissingFile(t *testing.T) {
	f := newFixture(t)
	_, _ = f.ws.Open(f.path("a.go"), 0)
	require.NoError(t, os.Remove(f.path("a.go")))

	require.False(t, f.ws.FocusLocation(f.path("a.go"), 0))
	require.False(t, f.ws.FocusLocation(f.path("never.go"), 0))
}

func TestReload(t *testing.T) {
	f := newFixture(t)
	doc, _ := f.ws.Open(f.path("a.go"), 15)

	writeFile(t, f.dir, "a.go", "short\nfile\n")
	require.NoError(t, f.ws.Reload(f.path("a.go")))

	require.Equal(t, []string{"short", "file"}, doc.Lines)
	require.Equal(t, 1, doc.Line)

	require.ErrorIs(t, f.ws.Reload(f.path("b.go")), ErrNotOpen)
}

type fakeWatcher struct {
	watched map[string]bool
}

func (w *fakeWatcher) Add(path string) error {
	w.watched[path] = true
	return nil
}

func (w *fakeWatcher) Remove(path string) error {
	delete(w.watched, path)
	return nil
}

func TestWorkspaceTellsWatcher(t *testing.T) {
	f := newFixture(t)
	a, _ := f.ws.Open(f.path("a.go"), 0)

	fw := &fakeWatcher{watched: map[string]bool{}}
	f.ws.SetWatcher(fw)
	assert.True(t, fw.watched[f.path("a.go")], "already open files are watched")

	_, _ = f.ws.Open(f.path("b.go"), 0)
	assert.True(t, fw.watched[f.path("b.go")])

	require.NoError(t, f.ws.Close(a.ID))
	assert.False(t, fw.watched[f.path("a.go")])
}

// The workspace and the controller are meant to be wired to each other.
func TestWorkspaceDrivesController(t *testing.T) {
	f := newFixture(t)
	a, _ := f.ws.Open(f.path("a.go"), 0)
	_, _ = f.ws.Open(f.path("b.go"), 0)

	c := navigation.NewController(f.ws, nil, navigation.Options{})
	f.ws.SetListener(c)

	f.ws.GotoLine(12)
	_, _ = f.ws.Open(f.path("c.go"), 4)
	require.Equal(t, 3, c.Len())

	require.Equal(t, navigation.Moved, c.Previous())
	require.Equal(t, "b.go", f.ws.Active().Name)
	require.Equal(t, 12, f.ws.Active().Line)

	require.Equal(t, navigation.Moved, c.Previous())
	require.Equal(t, 0, f.ws.Active().Line)

	require.NoError(t, f.ws.Activate(a.ID))
	require.Equal(t, 2, c.Len(), "jumping away from the middle drops the forward branch")
	require.Equal(t, "a.go:1", c.Entries()[1].Short())
}

func TestOpenWithoutLineKeepsCursor(t *testing.T) {
	f := newFixture(t)
	a, _ := f.ws.Open(f.path("a.go"), 7)
	_, _ = f.ws.Open(f.path("b.go"), 0)

	again, err := f.ws.Open(f.path("a.go"), -1)
	require.NoError(t, err)
	require.Same(t, a, again)
	require.Equal(t, 7, again.Line)
}
