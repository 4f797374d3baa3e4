package rectpack

import "math"

// maxRectsBin implements Jukka Jylänki's MaxRects algorithm: free space is
// tracked as a set of (possibly overlapping) maximal free rectangles,
// updated by splitting every free rect that the newly placed rect
// intersects, then pruning rects contained in another.
type maxRectsBin struct {
	width, height int
	allowRotate   bool
	free          []rect
	used          []rect
}

type rect struct {
	x, y, w, h int
}

func newMaxRectsBin(w, h int, allowRotate bool) *maxRectsBin {
	return &maxRectsBin{
		width: w, height: h, allowRotate: allowRotate,
		free: []rect{{0, 0, w, h}},
	}
}

// insert places every size in sizes (which must carry stable Ids), in the
// given order, using heuristic. It returns the placed rects and the subset
// of sizes that did not fit.
func (b *maxRectsBin) insert(sizes []Size, heuristic Method) (placed []PlacedRect, unplaced []Size) {
	remaining := append([]Size(nil), sizes...)
	for len(remaining) > 0 {
		bestIdx := -1
		var bestNode rect
		bestRotated := false
		bestScore1, bestScore2 := math.MaxInt64, math.MaxInt64

		for i, sz := range remaining {
			node, rotated, ok := b.scoreRect(sz.Width, sz.Height, heuristic)
			if !ok {
				continue
			}
			s1, s2 := b.score(node, node.w, node.h, rotated, heuristic)
			if s1 < bestScore1 || (s1 == bestScore1 && s2 < bestScore2) {
				bestScore1, bestScore2 = s1, s2
				bestNode = node
				bestIdx = i
				bestRotated = rotated
			}
		}

		if bestIdx < 0 {
			unplaced = append(unplaced, remaining...)
			return placed, unplaced
		}

		sz := remaining[bestIdx]
		remaining = append(remaining[:bestIdx], remaining[bestIdx+1:]...)

		b.placeRect(bestNode)
		placed = append(placed, PlacedRect{
			Id: sz.Id, X: bestNode.x, Y: bestNode.y,
			Width: bestNode.w, Height: bestNode.h, Rotated: bestRotated,
		})
	}
	return placed, unplaced
}

// scoreRect finds the best free rect for a (w,h) candidate (and its
// rotated form if allowed), returning the placement and whether it fit.
func (b *maxRectsBin) scoreRect(w, h int, heuristic Method) (rect, bool, bool) {
	best := rect{}
	found := false
	rotated := false
	bestScore1, bestScore2 := math.MaxInt64, math.MaxInt64

	tryOrientation := func(w, h int, asRotated bool) {
		for _, f := range b.free {
			if f.w < w || f.h < h {
				continue
			}
			node := rect{f.x, f.y, w, h}
			s1, s2 := b.score(node, w, h, asRotated, heuristic)
			if s1 < bestScore1 || (s1 == bestScore1 && s2 < bestScore2) {
				bestScore1, bestScore2 = s1, s2
				best = node
				found = true
				rotated = asRotated
			}
		}
	}
	tryOrientation(w, h, false)
	if b.allowRotate && w != h {
		tryOrientation(h, w, true)
	}
	return best, rotated, found
}

// score computes the heuristic's ranking tuple for placing (w,h) at node
// (already guaranteed to fit some free rect); lower is better.
func (b *maxRectsBin) score(node rect, w, h int, rotated bool, heuristic Method) (int, int) {
	// find the free rect the node was carved from to compute leftover.
	var leftoverW, leftoverH = math.MaxInt32, math.MaxInt32
	for _, f := range b.free {
		if node.x >= f.x && node.y >= f.y &&
			node.x+w <= f.x+f.w && node.y+h <= f.y+f.h {
			lw := f.w - w
			lh := f.h - h
			if lw < leftoverW {
				leftoverW = lw
			}
			if lh < leftoverH {
				leftoverH = lh
			}
		}
	}
	switch heuristic {
	case MaxRectsBestShortSideFit:
		return min(leftoverW, leftoverH), max(leftoverW, leftoverH)
	case MaxRectsBestLongSideFit:
		return max(leftoverW, leftoverH), min(leftoverW, leftoverH)
	case MaxRectsBestAreaFit:
		return leftoverW*h + leftoverH*w - leftoverW*leftoverH, min(leftoverW, leftoverH)
	case MaxRectsBottomLeftRule:
		return node.y + h, node.x
	case MaxRectsContactPointRule:
		return -b.contactPointScore(node), 0
	default:
		return min(leftoverW, leftoverH), max(leftoverW, leftoverH)
	}
}

// contactPointScore favors placements touching more of the bin's existing
// edges/rects; higher is better (negated by callers that want "lower is
// better" ranking).
func (b *maxRectsBin) contactPointScore(node rect) int {
	score := 0
	if node.x == 0 || node.x+node.w == b.width {
		score += node.h
	}
	if node.y == 0 || node.y+node.h == b.height {
		score += node.w
	}
	for _, u := range b.used {
		if u.x == node.x+node.w || u.x+u.w == node.x {
			score += overlapLen(u.y, u.y+u.h, node.y, node.y+node.h)
		}
		if u.y == node.y+node.h || u.y+u.h == node.y {
			score += overlapLen(u.x, u.x+u.w, node.x, node.x+node.w)
		}
	}
	return score
}

func overlapLen(a0, a1, b0, b1 int) int {
	lo := max(a0, b0)
	hi := min(a1, b1)
	if hi <= lo {
		return 0
	}
	return hi - lo
}

func (b *maxRectsBin) placeRect(node rect) {
	i := 0
	for i < len(b.free) {
		if splitFreeRect(b.free[i], node, &b.free) {
			b.free = append(b.free[:i], b.free[i+1:]...)
			continue
		}
		i++
	}
	b.pruneFreeList()
	b.used = append(b.used, node)
}

// splitFreeRect replaces free (if it intersects used) with up to four
// leftover rects appended to out, and reports whether free was consumed.
func splitFreeRect(free, used rect, out *[]rect) bool {
	if used.x >= free.x+free.w || used.x+used.w <= free.x ||
		used.y >= free.y+free.h || used.y+used.h <= free.y {
		return false
	}
	if used.x < free.x+free.w && used.x+used.w > free.x {
		if used.y > free.y && used.y < free.y+free.h {
			*out = append(*out, rect{free.x, free.y, free.w, used.y - free.y})
		}
		if used.y+used.h < free.y+free.h {
			*out = append(*out, rect{free.x, used.y + used.h, free.w, free.y + free.h - (used.y + used.h)})
		}
	}
	if used.y < free.y+free.h && used.y+used.h > free.y {
		if used.x > free.x && used.x < free.x+free.w {
			*out = append(*out, rect{free.x, free.y, used.x - free.x, free.h})
		}
		if used.x+used.w < free.x+free.w {
			*out = append(*out, rect{used.x + used.w, free.y, free.x + free.w - (used.x + used.w), free.h})
		}
	}
	return true
}

func (b *maxRectsBin) pruneFreeList() {
	for i := 0; i < len(b.free); i++ {
		for j := i + 1; j < len(b.free); {
			if containsRect(b.free[i], b.free[j]) {
				b.free = append(b.free[:j], b.free[j+1:]...)
			} else if containsRect(b.free[j], b.free[i]) {
				b.free[i] = b.free[j]
				b.free = append(b.free[:j], b.free[j+1:]...)
			} else {
				j++
			}
		}
	}
}

func containsRect(a, b rect) bool {
	return a.x <= b.x && a.y <= b.y && a.x+a.w >= b.x+b.w && a.y+a.h >= b.y+b.h
}

// bottomRight returns the smallest rect covering every used placement,
// matching MaxRectsBinPack::BottomRight used to size a sheet after
// packing.
func (b *maxRectsBin) bottomRight() (int, int) {
	w, h := 0, 0
	for _, u := range b.used {
		w = max(w, u.x+u.w)
		h = max(h, u.y+u.h)
	}
	return w, h
}
