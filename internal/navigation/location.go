package navigation

import (
	"fmt"
	"path/filepath"
)

// DocumentID is an opaque handle for an open document.
type DocumentID string

// Location is a navigable point: a file and a 0-based line in it.
// Locations are values; history keeps copies so a document closing never
// invalidates what was recorded.
type Location struct {
	Document DocumentID
	FilePath string
	Line     int
}

// Equal reports whether two locations point at the same file and line.
// The document handle is not compared.
func (l Location) Equal(o Location) bool {
	return l.FilePath == o.FilePath && l.Line == o.Line
}

// SameFile reports whether two locations are in the same file.
func (l Location) SameFile(o Location) bool {
	return l.FilePath == o.FilePath
}

// String renders the location as "path:line" with a 1-based line.
func (l Location) String() string {
	return fmt.Sprintf("%s:%d", l.FilePath, l.Line+1)
}

// Short is like String but uses only the file's base name.
func (l Location) Short() string {
	return fmt.Sprintf("%s:%d", filepath.Base(l.FilePath), l.Line+1)
}
