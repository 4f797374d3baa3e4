package geom

// SizeConstraints mirrors the shared shape/padding constraints applied to a
// candidate sheet or slice size by both the rect packer and the orchestrator.
type SizeConstraints struct {
	MinWidth, MinHeight int
	MaxWidth, MaxHeight int
	BorderPadding       int
	OverAllocate        int
	PowerOfTwo          bool
	Square              bool
	AlignWidth          int // 0 means "no alignment"
}

// applyPadding mirrors apply_padding: indent=true subtracts twice the
// border padding from width/height and adds OverAllocate, indent=false
// does the reverse.
func applyPadding(c SizeConstraints, w, h int, indent bool) (int, int) {
	dir := -1
	if indent {
		dir = 1
	}
	w -= dir * c.BorderPadding * 2
	h -= dir * c.BorderPadding * 2
	w += dir * c.OverAllocate
	h += dir * c.OverAllocate
	return w, h
}

// CorrectSize clamps (w, h) to the constraints and applies power-of-two,
// alignment and square rounding, first rounding up against the minimum then
// down against the maximum. Idempotent: CorrectSize(CorrectSize(w, h)) ==
// CorrectSize(w, h).
func CorrectSize(c SizeConstraints, w, h int) (int, int) {
	w = max(w, c.MinWidth)
	h = max(h, c.MinHeight)
	w, h = applyPadding(c, w, h, false)

	if c.PowerOfTwo {
		w = CeilToPOT(w)
		h = CeilToPOT(h)
	}
	if c.AlignWidth > 0 {
		w = Ceil(w, c.AlignWidth)
	}
	if c.Square {
		w = max(w, h)
		h = w
	}

	w, h = applyPadding(c, w, h, true)
	if c.MaxWidth > 0 {
		w = min(w, c.MaxWidth)
	}
	if c.MaxHeight > 0 {
		h = min(h, c.MaxHeight)
	}
	w, h = applyPadding(c, w, h, false)

	if c.PowerOfTwo {
		w = FloorToPOT(w)
		h = FloorToPOT(h)
	}
	if c.AlignWidth > 0 {
		w = Floor(w, c.AlignWidth)
	}
	if c.Square {
		w = min(w, h)
		h = w
	}

	w, h = applyPadding(c, w, h, true)
	return w, h
}
