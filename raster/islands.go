package raster

import (
	"sort"

	"github.com/esimov/spright/geom"
)

// floodFill8 flood-fills the connected (8-directional) region of non-zero
// pixels in levels starting at (x, y), zeroing visited pixels and invoking
// visit for each one.
func floodFill8(levels *Mono, startX, startY int, visit func(x, y int)) {
	if levels.At(startX, startY) == 0 {
		return
	}
	type point struct{ x, y int }
	stack := []point{{startX, startY}}
	levels.Set(startX, startY, 0)

	push := func(x, y int) {
		if x < 0 || y < 0 || x >= levels.W || y >= levels.H {
			return
		}
		if levels.At(x, y) == 0 {
			return
		}
		levels.Set(x, y, 0)
		stack = append(stack, point{x, y})
	}

	for len(stack) > 0 {
		p := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		visit(p.x, p.y)
		push(p.x-1, p.y-1)
		push(p.x, p.y-1)
		push(p.x+1, p.y-1)
		push(p.x-1, p.y)
		push(p.x+1, p.y)
		push(p.x-1, p.y+1)
		push(p.x, p.y+1)
		push(p.x+1, p.y+1)
	}
}

// mergeAdjacentRects repeatedly combines rects that are within distance of
// each other and not separated only by background pixels, until no more
// merges are possible.
func mergeAdjacentRects(img *Image, rects []geom.Rect, distance int, grayLevels bool) []geom.Rect {
	adjacent := func(a, b geom.Rect) bool {
		intersection := geom.Intersect(a, geom.Expand(b, distance))
		if intersection.Empty() {
			return false
		}
		if grayLevels {
			return !IsFullyBlack(img, 1, intersection)
		}
		return !IsFullyTransparent(img, 1, intersection)
	}

	for {
		merged := false
		for i := 0; i < len(rects); i++ {
			for j := i + 1; j < len(rects); {
				if adjacent(rects[i], rects[j]) {
					rects[i] = geom.Combine(rects[i], rects[j])
					rects[j] = rects[len(rects)-1]
					rects = rects[:len(rects)-1]
					merged = true
				} else {
					j++
				}
			}
		}
		if !merged {
			return rects
		}
	}
}

// FindIslands locates the disjoint non-background regions of rect (or the
// whole image's used bounds when rect is empty), merges regions within
// mergeDistance of each other, and returns them sorted top-to-bottom,
// left-to-right with a fuzzy row tolerance so near-aligned sprites on the
// same visual row sort by column.
func FindIslands(img *Image, mergeDistance int, grayLevels bool, rect geom.Rect) []geom.Rect {
	if rect.Empty() {
		rect = GetUsedBounds(img, grayLevels, 1, geom.Rect{})
	}

	var levels *Mono
	if grayLevels {
		levels = GetGrayLevels(img, rect)
	} else {
		levels = GetAlphaLevels(img, rect)
	}

	var islands []geom.Rect
	for y := 0; y < rect.H; y++ {
		for x := 0; x < rect.W; x++ {
			if levels.At(x, y) == 0 {
				continue
			}
			minX, minY, maxX, maxY := x, y, x, y
			floodFill8(levels, x, y, func(fx, fy int) {
				if fx < minX {
					minX = fx
				}
				if fy < minY {
					minY = fy
				}
				if fx > maxX {
					maxX = fx
				}
				if fy > maxY {
					maxY = fy
				}
			})
			islands = append(islands, geom.Rect{
				X: rect.X + minX, Y: rect.Y + minY,
				W: maxX - minX + 1, H: maxY - minY + 1,
			})
		}
	}

	islands = mergeAdjacentRects(img, islands, mergeDistance, grayLevels)

	sort.SliceStable(islands, func(i, j int) bool {
		a, b := islands[i], islands[j]
		rowTolerance := min(a.H, b.H) / 4
		ca, cb := a.Center(), b.Center()
		if ca.Y < cb.Y-rowTolerance {
			return true
		}
		if cb.Y < ca.Y-rowTolerance {
			return false
		}
		if ca.X != cb.X {
			return ca.X < cb.X
		}
		return ca.Y < cb.Y
	})

	return islands
}
