package navigation

import "slices"

// Rank orders documents by how recently they were activated, most recent
// first. Each document appears at most once.
type Rank struct {
	order []DocumentID
}

// NewRank creates a rank seeded with already open documents. Nothing has
// been activated yet, so they keep the order given.
func NewRank(docs ...DocumentID) *Rank {
	r := &Rank{}
	for _, doc := range docs {
		r.Add(doc)
	}
	return r
}

// Activate records that doc became active. A document seen for the first
// time goes to the back until it is activated again; a known one moves to
// the front.
func (r *Rank) Activate(doc DocumentID) {
	i := slices.Index(r.order, doc)
	if i < 0 {
		r.order = append(r.order, doc)
		return
	}
	if i == 0 {
		return
	}
	copy(r.order[1:i+1], r.order[:i])
	r.order[0] = doc
}

// Add appends doc if it is not ranked yet. It never promotes.
func (r *Rank) Add(doc DocumentID) {
	if !slices.Contains(r.order, doc) {
		r.order = append(r.order, doc)
	}
}

// Remove drops doc from the rank. Unknown documents are ignored.
func (r *Rank) Remove(doc DocumentID) {
	if i := slices.Index(r.order, doc); i >= 0 {
		r.order = slices.Delete(r.order, i, i+1)
	}
}

// Previous returns the most recently active document other than the front
// one.
func (r *Rank) Previous() (DocumentID, bool) {
	if len(r.order) < 2 {
		return "", false
	}
	return r.order[1], true
}

// Front returns the most recently active document.
func (r *Rank) Front() (DocumentID, bool) {
	if len(r.order) == 0 {
		return "", false
	}
	return r.order[0], true
}

// Order returns a copy of the rank, most recent first.
func (r *Rank) Order() []DocumentID {
	return slices.Clone(r.order)
}

// Len returns the number of ranked documents.
func (r *Rank) Len() int {
	return len(r.order)
}
