// Package geom implements the rectangle, point and size primitives used
// throughout the packing pipeline. Rectangles are half-open: a point (x, y)
// lies inside a Rect r iff x0 <= x < x1 and y0 <= y < y1.
package geom

// Point is a 2-D integer coordinate.
type Point struct {
	X, Y int
}

// Add returns a + b.
func (a Point) Add(b Point) Point {
	return Point{a.X + b.X, a.Y + b.Y}
}

// Sub returns a - b.
func (a Point) Sub(b Point) Point {
	return Point{a.X - b.X, a.Y - b.Y}
}

// PointF is a 2-D floating-point coordinate, used where sub-pixel
// precision matters (pivot points derived from odd-width rects).
type PointF struct {
	X, Y float64
}

// Add returns a + b.
func (a PointF) Add(b PointF) PointF {
	return PointF{a.X + b.X, a.Y + b.Y}
}

// Size is a 2-D integer extent.
type Size struct {
	W, H int
}

// Empty reports whether the size has zero area.
func (s Size) Empty() bool {
	return s.W == 0 || s.H == 0
}

// Rect is a half-open rectangle with its origin at (X, Y).
type Rect struct {
	X, Y, W, H int
}

// X0 returns the left edge.
func (r Rect) X0() int { return r.X }

// Y0 returns the top edge.
func (r Rect) Y0() int { return r.Y }

// X1 returns the right edge (exclusive).
func (r Rect) X1() int { return r.X + r.W }

// Y1 returns the bottom edge (exclusive).
func (r Rect) Y1() int { return r.Y + r.H }

// XY returns the rectangle's origin.
func (r Rect) XY() Point { return Point{r.X, r.Y} }

// Center returns the rectangle's center, rounded towards the origin.
func (r Rect) Center() Point { return Point{r.X + r.W/2, r.Y + r.H/2} }

// Size returns the rectangle's size.
func (r Rect) Size() Size { return Size{r.W, r.H} }

// Empty reports whether the rectangle has zero area.
func (r Rect) Empty() bool { return r.W == 0 || r.H == 0 }

// Area returns w*h.
func (r Rect) Area() int { return r.W * r.H }

// Expand grows (or shrinks, for negative v) a rectangle symmetrically by v
// pixels on every side.
func Expand(r Rect, v int) Rect {
	return Rect{r.X - v, r.Y - v, r.W + 2*v, r.H + 2*v}
}

// Intersect returns the overlapping region of a and b, or an empty rect
// (with valid x0/y0) when they do not overlap.
func Intersect(a, b Rect) Rect {
	x0 := max(a.X0(), b.X0())
	y0 := max(a.Y0(), b.Y0())
	x1 := min(a.X1(), b.X1())
	y1 := min(a.Y1(), b.Y1())
	return Rect{x0, y0, max(x1-x0, 0), max(y1-y0, 0)}
}

// Combine returns the smallest rectangle containing both a and b.
func Combine(a, b Rect) Rect {
	x0 := min(a.X0(), b.X0())
	y0 := min(a.Y0(), b.Y0())
	x1 := max(a.X1(), b.X1())
	y1 := max(a.Y1(), b.Y1())
	return Rect{x0, y0, x1 - x0, y1 - y0}
}

// Containing reports whether a fully contains b.
func Containing(a, b Rect) bool {
	return a.X <= b.X && a.Y <= b.Y &&
		a.X+a.W >= b.X+b.W && a.Y+a.H >= b.Y+b.H
}

// ContainingPoint reports whether a contains point p.
func ContainingPoint(a Rect, p Point) bool {
	return a.X <= p.X && a.Y <= p.Y &&
		a.X+a.W > p.X && a.Y+a.H > p.Y
}

// Overlapping reports whether a and b share any area.
func Overlapping(a, b Rect) bool {
	return !(a.X+a.W <= b.X ||
		b.X+b.W <= a.X ||
		a.Y+a.H <= b.Y ||
		b.Y+b.H <= a.Y)
}

// Floor rounds v down to the nearest multiple of q (q > 0).
func Floor(v, q int) int {
	return (v / q) * q
}

// Ceil rounds v up to the nearest multiple of q (q > 0).
func Ceil(v, q int) int {
	return ((v + q - 1) / q) * q
}

// CeilToPOT rounds v up to the nearest power of two; CeilToPOT(0) == 1.
func CeilToPOT(v int) int {
	for pot := 1; ; pot <<= 1 {
		if pot >= v {
			return pot
		}
	}
}

// FloorToPOT rounds v down to the nearest power of two; FloorToPOT(0) == 0.
func FloorToPOT(v int) int {
	for pot := 1; ; pot <<= 1 {
		if pot > v {
			return pot >> 1
		}
	}
}

// DivCeil divides a by b, rounding up. Returns -1 when b <= 0.
func DivCeil(a, b int) int {
	if b <= 0 {
		return -1
	}
	return (a + b - 1) / b
}
