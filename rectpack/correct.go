package rectpack

import (
	"math"

	"github.com/esimov/spright/geom"
)

const sizeLimit = 1_000_000_000

func applyPadding(s Settings, w, h int, indent bool) (int, int) {
	dir := -1
	if indent {
		dir = 1
	}
	w -= dir * s.BorderPadding * 2
	h -= dir * s.BorderPadding * 2
	w += dir * s.OverAllocate
	h += dir * s.OverAllocate
	return w, h
}

func canFit(s Settings, w, h int) bool {
	if w <= s.MaxWidth && h <= s.MaxHeight {
		return true
	}
	return s.AllowRotate && w <= s.MaxHeight && h <= s.MaxWidth
}

// correctSettings clamps min/max to sane bounds, drops sizes that cannot
// possibly fit even with rotation, and raises min_width/min_height to the
// largest surviving rect so the optimizer never searches sheet sizes too
// small to hold anything.
func correctSettings(s *Settings, sizes []Size) []Size {
	if s.MaxWidth <= 0 || s.MaxWidth > sizeLimit {
		s.MaxWidth = sizeLimit
	}
	if s.MaxHeight <= 0 || s.MaxHeight > sizeLimit {
		s.MaxHeight = sizeLimit
	}
	s.MinWidth = clamp(s.MinWidth, 0, s.MaxWidth)
	s.MinHeight = clamp(s.MinHeight, 0, s.MaxHeight)

	s.MinWidth, s.MinHeight = applyPadding(*s, s.MinWidth, s.MinHeight, true)
	s.MaxWidth, s.MaxHeight = applyPadding(*s, s.MaxWidth, s.MaxHeight, true)

	kept := sizes[:0:0]
	maxRectW, maxRectH := 0, 0
	for _, sz := range sizes {
		if !canFit(*s, sz.Width, sz.Height) {
			continue
		}
		kept = append(kept, sz)
		maxRectW = max(maxRectW, sz.Width)
		maxRectH = max(maxRectH, sz.Height)
	}

	if s.AllowRotate {
		maxRectW = min(maxRectW, maxRectH)
		maxRectH = maxRectW
	}
	s.MinWidth = max(s.MinWidth, maxRectW)
	s.MinHeight = max(s.MinHeight, maxRectH)
	return kept
}

// correctSize is the shared two-pass clamp/pad/pot/align/square correction,
// identical in shape to geom.CorrectSize but phrased against
// rectpack.Settings directly so callers in this package don't need to
// translate field names back and forth.
func correctSize(s Settings, w, h int) (int, int) {
	w = max(w, s.MinWidth)
	h = max(h, s.MinHeight)
	w, h = applyPadding(s, w, h, false)

	if s.PowerOfTwo {
		w = geom.CeilToPOT(w)
		h = geom.CeilToPOT(h)
	}
	if s.AlignWidth > 0 {
		w = geom.Ceil(w, s.AlignWidth)
	}
	if s.Square {
		w = max(w, h)
		h = w
	}

	w, h = applyPadding(s, w, h, true)
	w = min(w, s.MaxWidth)
	h = min(h, s.MaxHeight)
	w, h = applyPadding(s, w, h, false)

	if s.PowerOfTwo {
		w = geom.FloorToPOT(w)
		h = geom.FloorToPOT(h)
	}
	if s.AlignWidth > 0 {
		w = geom.Floor(w, s.AlignWidth)
	}
	if s.Square {
		w = min(w, h)
		h = w
	}

	w, h = applyPadding(s, w, h, true)
	return w, h
}

func getPerfectArea(sizes []Size) int {
	area := 0
	for _, s := range sizes {
		area += s.Width * s.Height
	}
	return area
}

func getRunSize(s Settings, area int) (int, int) {
	width := int(math.Sqrt(float64(area)))
	if width < 1 {
		width = 1
	}
	height := divCeil(area, width)
	if width < s.MinWidth || width > s.MaxWidth {
		width = clamp(width, s.MinWidth, s.MaxWidth)
		height = divCeil(area, width)
	} else if height < s.MinHeight || height > s.MaxHeight {
		height = clamp(height, s.MinHeight, s.MaxHeight)
		width = divCeil(area, height)
	}
	return correctSize(s, width, height)
}

func divCeil(a, b int) int {
	if b <= 0 {
		return -1
	}
	return (a + b - 1) / b
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
