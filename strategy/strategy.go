// Package strategy implements the per-sheet placement strategies a sheet
// chooses between: binpack (delegating to rectpack), single, keep, rows,
// columns, layers and origin. Each strategy consumes a flat slice of
// Items (one per sprite already assigned to the sheet) and returns their
// Placements plus the resulting slice sizes; it never touches pixels.
package strategy

import "errors"

// ErrNotAllItemsPacked is returned when a strategy cannot fit every item
// within its constraints (e.g. a fixed-size sheet that ran out of room
// for the row/column strategies, or a single/grid strategy running past
// its output file name sequence).
var ErrNotAllItemsPacked = errors.New("strategy: not all items could be packed")

// Item is one sprite's packable footprint: the full cell size (content
// plus extrusion) the strategy must reserve room for.
type Item struct {
	Id            int
	Width, Height int
}

// Placement is where one item ended up.
type Placement struct {
	Id            int
	SliceIndex    int
	X, Y          int
	Width, Height int
	Rotated       bool
}

// SliceSize is the resulting size of one output slice.
type SliceSize struct {
	Width, Height int
}

// Padding groups the two padding knobs every strategy needs: space kept
// clear around the slice edge, and space kept clear between items.
type Padding struct {
	Border int
	Shape  int
}
