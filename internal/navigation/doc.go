// Package navigation records where the user has been and walks them back
// and forth through it.
//
// A Path holds visited locations with a cursor, a Rank orders documents by
// activation, and a Controller connects both to an Editor and a Presenter.
// Nothing here touches the disk or keeps state across restarts.
package navigation
