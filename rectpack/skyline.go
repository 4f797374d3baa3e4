package rectpack

import "math"

// skylineSegment is one step of the bin's height profile, in x order.
type skylineSegment struct {
	x, y, w int
}

// skylineBin implements the Skyline packing algorithm: free space is
// tracked as a height profile along the bin's width, and each rect is
// placed atop the profile at the position the active heuristic prefers.
type skylineBin struct {
	width, height int
	allowRotate   bool
	skyline       []skylineSegment
}

func newSkylineBin(w, h int, allowRotate bool) *skylineBin {
	return &skylineBin{
		width: w, height: h, allowRotate: allowRotate,
		skyline: []skylineSegment{{0, 0, w}},
	}
}

func (b *skylineBin) insert(sizes []Size, heuristic Method) (placed []PlacedRect, unplaced []Size) {
	remaining := append([]Size(nil), sizes...)
	for len(remaining) > 0 {
		bestIdx := -1
		bestX, bestY := 0, 0
		bestW, bestH := 0, 0
		bestRotated := false
		bestScore1, bestScore2 := math.MaxInt64, math.MaxInt64

		for i, sz := range remaining {
			for _, orientation := range b.orientations(sz) {
				x, y, ok := b.fit(orientation.w, orientation.h)
				if !ok {
					continue
				}
				s1, s2 := b.score(x, y, orientation.w, orientation.h, heuristic)
				if s1 < bestScore1 || (s1 == bestScore1 && s2 < bestScore2) {
					bestScore1, bestScore2 = s1, s2
					bestIdx = i
					bestX, bestY = x, y
					bestW, bestH = orientation.w, orientation.h
					bestRotated = orientation.rotated
				}
			}
		}

		if bestIdx < 0 {
			unplaced = append(unplaced, remaining...)
			return placed, unplaced
		}

		sz := remaining[bestIdx]
		remaining = append(remaining[:bestIdx], remaining[bestIdx+1:]...)
		b.place(bestX, bestY, bestW, bestH)
		placed = append(placed, PlacedRect{
			Id: sz.Id, X: bestX, Y: bestY, Width: bestW, Height: bestH, Rotated: bestRotated,
		})
	}
	return placed, unplaced
}

type orientation struct {
	w, h    int
	rotated bool
}

func (b *skylineBin) orientations(sz Size) []orientation {
	out := []orientation{{sz.Width, sz.Height, false}}
	if b.allowRotate && sz.Width != sz.Height {
		out = append(out, orientation{sz.Height, sz.Width, true})
	}
	return out
}

// fit finds the skyline segment start at which a w*h rect rests lowest
// (smallest y, leftmost on ties) without exceeding the bin's width or
// height.
func (b *skylineBin) fit(w, h int) (int, int, bool) {
	bestY := math.MaxInt32
	bestX := -1
	for i := range b.skyline {
		x := b.skyline[i].x
		if x+w > b.width {
			continue
		}
		y, ok := b.restingHeight(i, w)
		if !ok {
			continue
		}
		if y+h > b.height {
			continue
		}
		if y < bestY {
			bestY = y
			bestX = x
		}
	}
	if bestX < 0 {
		return 0, 0, false
	}
	return bestX, bestY, true
}

// restingHeight returns the y a w-wide rect would rest at starting from
// skyline segment i, i.e. the max segment height it spans.
func (b *skylineBin) restingHeight(i, w int) (int, bool) {
	x := b.skyline[i].x
	right := x + w
	y := 0
	for j := i; j < len(b.skyline) && b.skyline[j].x < right; j++ {
		if b.skyline[j].y > y {
			y = b.skyline[j].y
		}
	}
	if right > b.width {
		return 0, false
	}
	return y, true
}

// score ranks a candidate placement; lower is better. BottomLeft favors
// lowest y then lowest x (already the placement fit() found); BestFit
// additionally favors minimizing the wasted area under the rect.
func (b *skylineBin) score(x, y, w, h int, heuristic Method) (int, int) {
	switch heuristic {
	case SkylineBestFit:
		return y, b.wastedArea(x, y, w)
	default: // SkylineBottomLeft
		return y, x
	}
}

func (b *skylineBin) wastedArea(x, y, w int) int {
	waste := 0
	for _, seg := range b.skyline {
		segEnd := seg.x + seg.w
		overlap := overlapLen(seg.x, segEnd, x, x+w)
		if overlap > 0 {
			waste += overlap * (y - seg.y)
		}
	}
	return waste
}

// place raises the skyline over [x, x+w) to y+h, merging adjacent equal
// segments.
func (b *skylineBin) place(x, y, w, h int) {
	var out []skylineSegment
	inserted := false
	right := x + w
	for _, seg := range b.skyline {
		segEnd := seg.x + seg.w
		if segEnd <= x || seg.x >= right {
			out = append(out, seg)
			continue
		}
		if seg.x < x {
			out = append(out, skylineSegment{seg.x, seg.y, x - seg.x})
		}
		if !inserted {
			out = append(out, skylineSegment{x, y + h, w})
			inserted = true
		}
		if segEnd > right {
			out = append(out, skylineSegment{right, seg.y, segEnd - right})
		}
	}
	if !inserted {
		out = append(out, skylineSegment{x, y + h, w})
	}
	b.skyline = mergeSkyline(out)
}

func mergeSkyline(segs []skylineSegment) []skylineSegment {
	if len(segs) == 0 {
		return segs
	}
	merged := []skylineSegment{segs[0]}
	for _, s := range segs[1:] {
		last := &merged[len(merged)-1]
		if last.y == s.y && last.x+last.w == s.x {
			last.w += s.w
		} else {
			merged = append(merged, s)
		}
	}
	return merged
}

func (b *skylineBin) bottomRight() (int, int) {
	w, h := 0, 0
	for _, seg := range b.skyline {
		if seg.w > 0 {
			w = max(w, seg.x+seg.w)
		}
		h = max(h, seg.y)
	}
	return w, h
}
