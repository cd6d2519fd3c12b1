package navigation

import "strings"

// Path is a back/forward navigation path over visited locations.
//
// Navigating from behind the tip starts a new branch: forward entries are
// dropped. Navigating from a file that does not match the entry under the
// cursor is a divergent jump and restarts the path. No two adjacent entries
// are ever equal.
type Path struct {
	entries []Location
	pos     int // cursor; 0 and unused when entries is empty
}

// NewPath creates an empty navigation path.
func NewPath() *Path {
	return &Path{}
}

// Record adds a navigation from one location to another.
func (p *Path) Record(from, to Location) {
	if len(p.entries) == 0 {
		// A self jump with nothing before it seeds no back entry.
		if !from.Equal(to) {
			p.entries = append(p.entries, from)
		}
	} else {
		p.entries = p.entries[:p.pos+1]
		if !p.entries[p.pos].SameFile(from) {
			p.entries = p.entries[:0]
			if !from.Equal(to) {
				p.entries = append(p.entries, from)
			}
		}
	}

	p.entries = append(p.entries, to)
	p.pos = len(p.entries) - 1
	p.collapse()
}

// Previous moves one step back. Returns the location and true if possible.
func (p *Path) Previous() (Location, bool) {
	if len(p.entries) == 0 || p.pos <= 0 {
		return Location{}, false
	}
	p.pos--
	return p.entries[p.pos], true
}

// Next moves one step forward. Returns the location and true if possible.
func (p *Path) Next() (Location, bool) {
	if p.pos >= len(p.entries)-1 {
		return Location{}, false
	}
	p.pos++
	return p.entries[p.pos], true
}

// Select moves the cursor straight to index i. An index outside the path
// leaves it untouched and returns false.
func (p *Path) Select(i int) (Location, bool) {
	if i < 0 || i >= len(p.entries) {
		return Location{}, false
	}
	p.pos = i
	return p.entries[p.pos], true
}

// RemoveDocument drops every entry that belongs to doc and returns how many
// were removed. The cursor keeps pointing at the same remaining entry where
// possible.
func (p *Path) RemoveDocument(doc DocumentID) int {
	removed := 0
	pos := p.pos
	kept := p.entries[:0]
	for i, e := range p.entries {
		if e.Document == doc {
			removed++
			if i <= p.pos {
				pos--
			}
			continue
		}
		kept = append(kept, e)
	}
	if removed == 0 {
		return 0
	}

	if len(kept) == 0 {
		p.Clear()
		return removed
	}
	p.entries = kept
	p.pos = clampIndex(pos, len(kept))
	p.collapse()
	return removed
}

// Clear resets the path.
func (p *Path) Clear() {
	p.entries = nil
	p.pos = 0
}

// Current returns the location under the cursor.
func (p *Path) Current() (Location, bool) {
	if len(p.entries) == 0 {
		return Location{}, false
	}
	return p.entries[p.pos], true
}

// CanGoBack reports whether there is a previous entry.
func (p *Path) CanGoBack() bool {
	return len(p.entries) > 0 && p.pos > 0
}

// CanGoForward reports whether there is a next entry.
func (p *Path) CanGoForward() bool {
	return p.pos < len(p.entries)-1
}

// Len returns the number of entries.
func (p *Path) Len() int {
	return len(p.entries)
}

// Cursor returns the cursor index. It is 0 for an empty path.
func (p *Path) Cursor() int {
	return p.pos
}

// Entries returns a copy of the path, oldest first.
func (p *Path) Entries() []Location {
	result := make([]Location, len(p.entries))
	copy(result, p.entries)
	return result
}

// String renders one entry per line, marking the cursor with " *".
func (p *Path) String() string {
	var sb strings.Builder
	for i, e := range p.entries {
		if i > 0 {
			sb.WriteString("\n")
		}
		sb.WriteString(e.String())
		if i == p.pos {
			sb.WriteString(" *")
		}
	}
	return sb.String()
}

// collapse removes adjacent duplicates, shifting the cursor for every
// entry dropped at or before it.
func (p *Path) collapse() {
	if len(p.entries) < 2 {
		return
	}
	pos := p.pos
	out := p.entries[:1]
	for i := 1; i < len(p.entries); i++ {
		if p.entries[i].Equal(out[len(out)-1]) {
			if i <= p.pos {
				pos--
			}
			continue
		}
		out = append(out, p.entries[i])
	}
	p.entries = out
	p.pos = clampIndex(pos, len(out))
}

func clampIndex(i, n int) int {
	if i >= n {
		i = n - 1
	}
	if i < 0 {
		i = 0
	}
	return i
}
