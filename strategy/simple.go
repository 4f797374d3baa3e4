package strategy

// Single places every item on its own slice, sized to that item plus
// border padding on all sides. maxSequenceCount bounds how many slices may
// be produced (an output filename sequence has finite length); 0 means
// unbounded.
func Single(padding Padding, maxSequenceCount int, items []Item) ([]Placement, []SliceSize, error) {
	placements := make([]Placement, len(items))
	sizes := make([]SliceSize, len(items))
	for i, it := range items {
		if maxSequenceCount > 0 && i >= maxSequenceCount {
			return nil, nil, ErrNotAllItemsPacked
		}
		placements[i] = Placement{
			Id: it.Id, SliceIndex: i,
			X: padding.Border, Y: padding.Border,
			Width: it.Width, Height: it.Height,
		}
		sizes[i] = SliceSize{Width: it.Width + padding.Border*2, Height: it.Height + padding.Border*2}
	}
	return placements, sizes, nil
}

// Keep places every item at (0, 0) and produces a single slice sized to
// the largest item. Items carry only a size, so a sprite's position within
// its source image is not reproduced.
func Keep(items []Item) ([]Placement, SliceSize) {
	placements := make([]Placement, len(items))
	maxW, maxH := 0, 0
	for i, it := range items {
		placements[i] = Placement{Id: it.Id, SliceIndex: 0, X: 0, Y: 0, Width: it.Width, Height: it.Height}
		maxW = max(maxW, it.Width)
		maxH = max(maxH, it.Height)
	}
	return placements, SliceSize{Width: maxW, Height: maxH}
}

// Origin places every item at the slice's border-padding origin, i.e. all
// items stack exactly on top of each other. It underlies Layers (layered
// output) and is also useful standalone for a single always-overlaid
// slice.
func Origin(padding Padding, items []Item) []Placement {
	placements := make([]Placement, len(items))
	for i, it := range items {
		placements[i] = Placement{
			Id: it.Id, SliceIndex: 0,
			X: padding.Border, Y: padding.Border,
			Width: it.Width, Height: it.Height,
		}
	}
	return placements
}

// Layers is Origin with the resulting slice sized to the largest item's
// footprint plus border padding; the orchestrator marks that slice as
// layered.
func Layers(padding Padding, items []Item) ([]Placement, SliceSize) {
	placements := Origin(padding, items)
	maxW, maxH := 0, 0
	for _, it := range items {
		maxW = max(maxW, it.Width)
		maxH = max(maxH, it.Height)
	}
	return placements, SliceSize{Width: maxW + padding.Border*2, Height: maxH + padding.Border*2}
}
