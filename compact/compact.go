// Package compact rearranges already-packed sprites within a slice by
// letting them fall and jostle under a small rigid-body simulation,
// closing gaps a rectangle packer leaves behind. It trades the exact
// fit of a packer for a denser, more organic layout.
package compact

import "math"

const (
	steps       = 1000
	dt          = 1.0 / 60
	gravityFlip = 100
	gravityX    = 20.0
	gravityY    = -100.0
)

// Sprite is one shape to settle. TrimmedX/Y/W/H is its current placement
// within the slice; Vertices, when non-empty, is its collider polygon in
// the sprite's own local frame (origin at its top-left corner). An empty
// Vertices falls back to the sprite's bounding rectangle.
type Sprite struct {
	ID                             int
	TrimmedX, TrimmedY, TrimmedW, TrimmedH int
	Vertices                       []Vec2
}

// Placement is the position delta the simulation settled on for one
// sprite, to be added to both its trimmed and untrimmed rectangles.
type Placement struct {
	ID     int
	DX, DY int
}

// Settle runs the settling simulation for every shaped sprite inside a
// slice of the given size and returns the resulting position deltas. It
// also returns the slice height the sprites now require, which may be
// smaller than sliceHeight once sprites have fallen together.
func Settle(sliceWidth, sliceHeight, borderPadding, shapePadding int, sprites []Sprite) ([]Placement, int) {
	padding := float64(shapePadding) / 2
	border := float64(borderPadding) - padding

	w := &world{
		minX: border,
		minY: border,
		maxX: float64(sliceWidth) - border - 0.5,
		maxY: float64(sliceHeight) - border - 0.5,
	}

	bodies := make([]*Body, 0, len(sprites))
	origIndex := make([]int, 0, len(sprites))
	for i, s := range sprites {
		if s.TrimmedW == 0 && s.TrimmedH == 0 && len(s.Vertices) == 0 {
			continue
		}
		verts := s.Vertices
		if len(verts) == 0 {
			verts = []Vec2{
				{X: 0, Y: 0},
				{X: float64(s.TrimmedW), Y: 0},
				{X: float64(s.TrimmedW), Y: float64(s.TrimmedH)},
				{X: 0, Y: float64(s.TrimmedH)},
			}
		}
		b := &Body{
			Pos:   Vec2{X: float64(s.TrimmedX), Y: float64(s.TrimmedY)},
			Verts: inflatePolygon(verts, padding),
			id:    s.ID,
		}
		bodies = append(bodies, b)
		origIndex = append(origIndex, i)
		w.bodies = append(w.bodies, b)
	}

	for i := 0; i < steps; i++ {
		gx := gravityX
		if (i/gravityFlip)%2 != 0 {
			gx = -gravityX
		}
		w.step(dt, Vec2{X: gx, Y: gravityY})
	}

	placements := make([]Placement, 0, len(bodies))
	maxY := 0
	for bi, b := range bodies {
		s := sprites[origIndex[bi]]
		dx := int(math.Floor(b.Pos.X+0.5)) - s.TrimmedX
		dy := int(math.Floor(b.Pos.Y+0.5)) - s.TrimmedY
		placements = append(placements, Placement{ID: b.id, DX: dx, DY: dy})
		if y := s.TrimmedY + dy + s.TrimmedH; y > maxY {
			maxY = y
		}
	}

	return placements, maxY + borderPadding
}
