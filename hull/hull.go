// Package hull builds a reduced convex hull around the above-threshold
// pixels of a sprite, used by trim mode "convex" and by the physics-based
// compactor (package compact) as the collision shape for each sprite.
package hull

import (
	"math"
	"sort"

	"github.com/esimov/spright/geom"
)

// Point is a sub-pixel-precision hull vertex.
type Point struct {
	X, Y float64
}

// Build returns a convex hull around the pixels of mono (width w, height h)
// whose value exceeds threshold, reduced to at most maxVertices points.
// subPixel controls how finely interior cell boundaries are sampled
// (0 disables interior sub-sampling beyond the cell corners).
//
// Candidate point generation walks tile corners, tile edges and interior
// cells, linearly interpolating sub-pixel crossing points at the
// threshold boundary. The hull itself is built in two passes rather than
// maintained incrementally: gather every candidate crossing point, compute
// their convex hull (monotone chain), then reduce vertices by repeatedly
// dropping whichever one costs the least enclosed area until the count
// fits maxVertices. Dropping a vertex cuts off the triangle it spanned, so
// a reduced hull can leave some above-threshold pixels outside it.
//
// Output vertices are in the tile-local frame translated so the tile's
// top-left corner is (0, 0), per the trimmed-rect-local coordinate
// contract.
func Build(w, h int, pixels []uint8, threshold uint8, maxVertices int, subPixel int) []Point {
	candidates := collectCandidates(w, h, pixels, threshold, subPixel)
	if len(candidates) == 0 {
		return nil
	}

	hull := convexHull(candidates)
	if maxVertices > 0 {
		for len(hull) > maxVertices {
			if !removeLeastRelevantEdge(hull) {
				break
			}
			hull = hull[:len(hull)-1]
		}
	}

	cornerOffX := 0.5 * float64(w)
	cornerOffY := 0.5 * float64(h)
	out := make([]Point, len(hull))
	for i, p := range hull {
		out[i] = Point{X: p.X + cornerOffX, Y: p.Y + cornerOffY}
	}
	return out
}

// collectCandidates enumerates corner, edge and interior sub-pixel
// crossing points of the tile, in a frame centered on the tile (offsets
// of +-w/2, +-h/2).
func collectCandidates(w, h int, pixels []uint8, threshold uint8, subPixel int) []Point {
	thresholdF := float64(threshold)
	startX, startY := 0, 0
	endX, endY := w-1, h-1
	offX := 0.5 * float64(w-1)
	offY := 0.5 * float64(h-1)
	cornerOffX := 0.5 * float64(w)
	cornerOffY := 0.5 * float64(h)

	at := func(x, y int) uint8 { return pixels[y*w+x] }
	var pts []Point
	add := func(x, y float64) { pts = append(pts, Point{x, y}) }

	if float64(at(startX, startY)) > thresholdF {
		add(-cornerOffX, -cornerOffY)
	}
	if float64(at(endX, startY)) > thresholdF {
		add(cornerOffX, -cornerOffY)
	}
	if float64(at(startX, endY)) > thresholdF {
		add(-cornerOffX, cornerOffY)
	}
	if float64(at(endX, endY)) > thresholdF {
		add(cornerOffX, cornerOffY)
	}

	lerpCross := func(c0, c1 uint8) (float64, bool) {
		above0 := float64(c0) > thresholdF
		above1 := float64(c1) > thresholdF
		if above0 == above1 {
			return 0, false
		}
		d0, d1 := float64(c0), float64(c1)
		return (thresholdF - d0) / (d1 - d0), true
	}

	for x := startX; x < endX; x++ {
		if sp, ok := lerpCross(at(x, startY), at(x+1, startY)); ok {
			add(float64(x-startX)-offX+sp, -cornerOffY)
		}
	}
	for x := startX; x < endX; x++ {
		if sp, ok := lerpCross(at(x, endY), at(x+1, endY)); ok {
			add(float64(x-startX)-offX+sp, cornerOffY)
		}
	}
	for y := startY; y < endY; y++ {
		if sp, ok := lerpCross(at(startX, y), at(startX, y+1)); ok {
			add(-cornerOffX, float64(y-startY)-offY+sp)
		}
	}
	for y := startY; y < endY; y++ {
		if sp, ok := lerpCross(at(endX, y), at(endX, y+1)); ok {
			add(cornerOffX, float64(y-startY)-offY+sp)
		}
	}

	if subPixel <= 0 {
		subPixel = 1
	}
	for y := startY; y < endY; y++ {
		for x := startX; x < endX; x++ {
			c00, c01 := at(x, y), at(x+1, y)
			c10, c11 := at(x, y+1), at(x+1, y+1)
			count := 0
			for _, c := range [4]uint8{c00, c01, c10, c11} {
				if float64(c) > thresholdF {
					count++
				}
			}
			if count == 0 || count == 4 {
				continue
			}
			d00, d01, d10, d11 := float64(c00), float64(c01), float64(c10), float64(c11)
			for n := 0; n <= subPixel; n++ {
				f0 := float64(n) / float64(subPixel)
				f1 := 1 - f0

				x0 := d00*f1 + d10*f0
				x1 := d01*f1 + d11*f0
				if (x0 > thresholdF) != (x1 > thresholdF) {
					sp := (thresholdF - x0) / (x1 - x0)
					add(float64(x-startX)-offX+sp, float64(y-startY)-offY+f0)
				}

				y0 := d00*f1 + d01*f0
				y1 := d10*f1 + d11*f0
				if (y0 > thresholdF) != (y1 > thresholdF) {
					sp := (thresholdF - y0) / (y1 - y0)
					add(float64(x-startX)-offX+f0, float64(y-startY)-offY+sp)
				}
			}
		}
	}

	return pts
}

// convexHull computes the convex hull of pts via the monotone chain
// (Andrew's) algorithm, returning vertices in counter-clockwise order with
// no duplicate endpoints.
func convexHull(pts []Point) []Point {
	if len(pts) < 3 {
		return append([]Point(nil), pts...)
	}
	sorted := append([]Point(nil), pts...)
	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].X != sorted[j].X {
			return sorted[i].X < sorted[j].X
		}
		return sorted[i].Y < sorted[j].Y
	})

	cross := func(o, a, b Point) float64 {
		return (a.X-o.X)*(b.Y-o.Y) - (a.Y-o.Y)*(b.X-o.X)
	}

	build := func(points []Point) []Point {
		var hull []Point
		for _, p := range points {
			for len(hull) >= 2 && cross(hull[len(hull)-2], hull[len(hull)-1], p) <= 0 {
				hull = hull[:len(hull)-1]
			}
			hull = append(hull, p)
		}
		return hull
	}

	lower := build(sorted)
	reversed := make([]Point, len(sorted))
	for i, p := range sorted {
		reversed[len(sorted)-1-i] = p
	}
	upper := build(reversed)

	hull := append(lower[:len(lower)-1], upper[:len(upper)-1]...)
	return hull
}

// removeLeastRelevantEdge drops the vertex of hull whose removal shrinks
// the enclosed area the least, mutating hull in place: the vertices after
// it shift down by one so the remaining order is kept, leaving a stale
// last slot the caller truncates away. Returns false when hull has too few
// vertices to reduce further.
func removeLeastRelevantEdge(hull []Point) bool {
	n := len(hull)
	if n <= 3 {
		return false
	}
	bestIdx := -1
	bestLoss := math.Inf(1)
	for i := 0; i < n; i++ {
		prev := hull[(i-1+n)%n]
		next := hull[(i+1)%n]
		cur := hull[i]
		loss := math.Abs((cur.X-prev.X)*(next.Y-prev.Y)-(cur.Y-prev.Y)*(next.X-prev.X)) / 2
		if loss < bestLoss {
			bestLoss = loss
			bestIdx = i
		}
	}
	if bestIdx < 0 {
		return false
	}
	copy(hull[bestIdx:], hull[bestIdx+1:])
	return true
}

// ContainsAllAbove reports whether every pixel of mono (w*h, row-major)
// strictly above threshold lies within the hull (by pixel center, in the
// top-left-origin frame Build returns).
func ContainsAllAbove(verts []Point, w, h int, pixels []uint8, threshold uint8) bool {
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if pixels[y*w+x] <= threshold {
				continue
			}
			if !pointInPolygon(verts, float64(x)+0.5, float64(y)+0.5) {
				return false
			}
		}
	}
	return true
}

// Contains reports whether (x, y) lies within poly, for callers (e.g. a
// compositor masking a sprite's pixels to its hull shape) that need the
// point-in-polygon test directly rather than through ContainsAllAbove.
func Contains(poly []Point, x, y float64) bool {
	return pointInPolygon(poly, x, y)
}

// pointInPolygon implements the standard even-odd ray casting test.
func pointInPolygon(poly []Point, x, y float64) bool {
	inside := false
	n := len(poly)
	for i, j := 0, n-1; i < n; j, i = i, i+1 {
		pi, pj := poly[i], poly[j]
		if (pi.Y > y) != (pj.Y > y) &&
			x < (pj.X-pi.X)*(y-pi.Y)/(pj.Y-pi.Y)+pi.X {
			inside = !inside
		}
	}
	return inside
}

// BoundingRect returns the integer rect tightly bounding verts, useful for
// clamping the hull back into its trimmed rect.
func BoundingRect(verts []Point) geom.Rect {
	if len(verts) == 0 {
		return geom.Rect{}
	}
	minX, minY := verts[0].X, verts[0].Y
	maxX, maxY := verts[0].X, verts[0].Y
	for _, p := range verts[1:] {
		minX = math.Min(minX, p.X)
		minY = math.Min(minY, p.Y)
		maxX = math.Max(maxX, p.X)
		maxY = math.Max(maxY, p.Y)
	}
	return geom.Rect{
		X: int(math.Floor(minX)), Y: int(math.Floor(minY)),
		W: int(math.Ceil(maxX)) - int(math.Floor(minX)),
		H: int(math.Ceil(maxY)) - int(math.Floor(minY)),
	}
}
