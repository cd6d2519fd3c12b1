package navigation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeEditor is an in-memory Editor. onFocus lets a test raise the events a
// real editor would emit while changing focus.
type fakeEditor struct {
	docs    []DocumentID
	current map[DocumentID]Location
	gone    map[string]bool
	focused []Location
	onFocus func(path string, line int)
}

func newFakeEditor(locs ...Location) *fakeEditor {
	e := &fakeEditor{
		current: make(map[DocumentID]Location),
		gone:    make(map[string]bool),
	}
	for _, l := range locs {
		e.docs = append(e.docs, l.Document)
		e.current[l.Document] = l
	}
	return e
}

func (e *fakeEditor) OpenDocuments() []DocumentID {
	return e.docs
}

func (e *fakeEditor) CurrentLocation(doc DocumentID) (Location, bool) {
	l, ok := e.current[doc]
	return l, ok
}

func (e *fakeEditor) FocusLocation(path string, line int) bool {
	if e.gone[path] {
		return false
	}
	e.focused = append(e.focused, Location{FilePath: path, Line: line})
	if e.onFocus != nil {
		e.onFocus(path, line)
	}
	return true
}

type fakePresenter struct {
	calls   int
	entries []Location
	cursor  int
}

func (p *fakePresenter) RefreshPath(entries []Location, cursor int) {
	p.calls++
	p.entries = entries
	p.cursor = cursor
}

func newTestController(locs ...Location) (*Controller, *fakeEditor, *fakePresenter) {
	ed := newFakeEditor(locs...)
	pr := &fakePresenter{}
	return NewController(ed, pr, Options{}), ed, pr
}

func TestControllerSeedsRankFromOpenDocuments(t *testing.T) {
	c, _, _ := newTestController(locA, locB, locC)
	require.Equal(t, []DocumentID{"a", "b", "c"}, c.Rank())
}

func TestControllerDisableRank(t *testing.T) {
	ed := newFakeEditor(locA, locB)
	c := NewController(ed, nil, Options{DisableRank: true})

	c.DocumentActivated("a")
	require.Nil(t, c.Rank())

	c.NavigatedTo(locC)
	require.Equal(t, []Location{locC}, c.Entries())
}

func TestControllerNavigatedRefreshesPresenter(t *testing.T) {
	c, _, pr := newTestController(locA, locB)

	c.Navigated(locA, locB)

	require.Equal(t, 1, pr.calls)
	require.Equal(t, []Location{locA, locB}, pr.entries)
	require.Equal(t, 1, pr.cursor)
}

func TestControllerPreviousNext(t *testing.T) {
	c, ed, pr := newTestController(locA, locB, locC)
	c.Navigated(locA, locB)
	c.Navigated(locB, locC)
	calls := pr.calls

	require.Equal(t, Moved, c.Previous())
	require.Equal(t, 1, c.Cursor())
	require.Equal(t, Moved, c.Previous())
	require.Equal(t, 0, c.Cursor())
	require.Equal(t, Stayed, c.Previous())

	require.Equal(t, Moved, c.Next())
	require.Equal(t, Moved, c.Next())
	require.Equal(t, Stayed, c.Next())

	require.Equal(t, []Location{
		{FilePath: locB.FilePath, Line: locB.Line},
		{FilePath: locA.FilePath, Line: locA.Line},
		{FilePath: locB.FilePath, Line: locB.Line},
		{FilePath: locC.FilePath, Line: locC.Line},
	}, ed.focused)
	// Boundary no-ops do not refresh.
	require.Equal(t, calls+4, pr.calls)
}

func TestControllerBoundaryOnEmptyPath(t *testing.T) {
	c, ed, pr := newTestController(locA)

	require.Equal(t, Stayed, c.Previous())
	require.Equal(t, Stayed, c.Next())
	require.Empty(t, ed.focused)
	require.Zero(t, pr.calls)
}

func TestControllerStaleFocusClearsPath(t *testing.T) {
	c, ed, pr := newTestController(locA, locB, locC)
	c.Navigated(locA, locB)
	c.Navigated(locB, locC)
	c.Previous()
	c.Previous()

	ed.gone[locB.FilePath] = true
	require.Equal(t, Stale, c.Next())

	require.Equal(t, 0, c.Len())
	require.Empty(t, pr.entries)
	require.Equal(t, 0, pr.cursor)
}

func TestControllerStaleFocusOnPrevious(t *testing.T) {
	c, ed, _ := newTestController(locA, locB)
	c.Navigated(locA, locB)

	ed.gone[locA.FilePath] = true
	require.Equal(t, Stale, c.Previous())
	require.Equal(t, 0, c.Len())
}

func TestControllerSelect(t *testing.T) {
	c, ed, pr := newTestController(locA, locB, locC)
	c.Navigated(locA, locB)
	c.Navigated(locB, locC)

	require.Equal(t, Moved, c.Select(0))
	require.Equal(t, 0, c.Cursor())
	require.Equal(t, 0, pr.cursor)
	require.Equal(t, locA.FilePath, ed.focused[len(ed.focused)-1].FilePath)

	calls := pr.calls
	require.Equal(t, Stayed, c.Select(7))
	require.Equal(t, 0, c.Cursor())
	require.Equal(t, calls, pr.calls)

	ed.gone[locC.FilePath] = true
	require.Equal(t, Stale, c.Select(2))
	require.Equal(t, 0, c.Len())
}

func TestControllerIgnoresFocusFeedback(t *testing.T) {
	c, ed, _ := newTestController(locA, locB, locC)
	c.DocumentActivated("c")
	c.Navigated(locA, locB)
	c.Navigated(locB, locC)

	// A real editor reports the focus change back as an activation and
	// sometimes as a navigation.
	ed.onFocus = func(path string, line int) {
		for doc, l := range ed.current {
			if l.FilePath == path {
				c.DocumentActivated(doc)
				c.Navigated(locC, l)
			}
		}
	}

	require.Equal(t, Moved, c.Previous())

	require.Equal(t, []Location{locA, locB, locC}, c.Entries())
	require.Equal(t, 1, c.Cursor())
	require.Equal(t, DocumentID("c"), c.Rank()[0])

	// The guard is released afterwards.
	c.DocumentActivated("b")
	require.Equal(t, DocumentID("b"), c.Rank()[0])
}

func TestControllerGuardReleasedOnPanic(t *testing.T) {
	c, ed, _ := newTestController(locA, locB)
	c.Navigated(locA, locB)
	ed.onFocus = func(string, int) { panic("focus failed") }

	require.Panics(t, func() { c.Previous() })

	c.DocumentActivated("b")
	require.Equal(t, DocumentID("b"), c.Rank()[0])
}

func TestControllerDocumentClosed(t *testing.T) {
	c, _, pr := newTestController(locA, locB, locC)
	c.Navigated(locA, locB)
	c.Navigated(locB, locC)
	c.Navigated(locC, locB)

	c.DocumentClosed("b")

	require.Equal(t, []Location{locA, locC}, c.Entries())
	require.Equal(t, 1, c.Cursor())
	require.Equal(t, []DocumentID{"a", "c"}, c.Rank())
	require.Equal(t, []Location{locA, locC}, pr.entries)
}

func TestControllerNavigatedToSeedsFromRank(t *testing.T) {
	b := loc("b", "/src/b.go", 33)
	c, _, _ := newTestController(locA, b)
	c.DocumentActivated("b")
	c.DocumentActivated("a")

	// a is in front, b was active before it.
	to := loc("a", "/src/a.go", 12)
	c.NavigatedTo(to)

	require.Equal(t, []Location{loc("b", "/src/b.go", 0), to}, c.Entries())
}

func TestControllerNavigatedToWithoutPreviousDocument(t *testing.T) {
	c, _, _ := newTestController(locA)
	c.DocumentActivated("a")

	c.NavigatedTo(locA)

	require.Equal(t, []Location{locA}, c.Entries())
}

func TestControllerNavigatedToContinuesFromCursor(t *testing.T) {
	c, _, _ := newTestController(locA, locB, locC)
	c.Navigated(locA, locB)

	c.NavigatedTo(locC)

	require.Equal(t, []Location{locA, locB, locC}, c.Entries())
}

func TestControllerClearAndSetPresenter(t *testing.T) {
	c, _, pr := newTestController(locA, locB)
	c.Navigated(locA, locB)

	c.Clear()
	require.Equal(t, 0, c.Len())
	require.Empty(t, pr.entries)

	other := &fakePresenter{}
	c.Navigated(locA, locB)
	c.SetPresenter(other)
	assert.Equal(t, 1, other.calls, "a new presenter is refreshed immediately")
	assert.Equal(t, []Location{locA, locB}, other.entries)

	c.SetPresenter(nil)
	c.Navigated(locB, locC)
	assert.Equal(t, 1, other.calls)
}

func TestOutcomeString(t *testing.T) {
	assert.Equal(t, "stayed", Stayed.String())
	assert.Equal(t, "moved", Moved.String())
	assert.Equal(t, "stale", Stale.String())
}
