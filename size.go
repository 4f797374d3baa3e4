package spright

import "github.com/esimov/spright/geom"

// updateSpriteSize derives a sprite's cell size from its trimmed content
// plus extrusion, rounded up to its divisible-size grid and clamped to its
// minimum size.
func updateSpriteSize(s *Sprite) {
	divX, divY := s.DivisibleSize.W, s.DivisibleSize.H
	if divX <= 0 {
		divX = 1
	}
	if divY <= 0 {
		divY = 1
	}
	content := s.TrimmedSourceRect.Size()
	s.Size.W = max(s.MinSize.W, geom.Ceil(content.W+2*s.ExtrudeCount, divX))
	s.Size.H = max(s.MinSize.H, geom.Ceil(content.H+2*s.ExtrudeCount, divY))
}

// updateCommonSizes grows every sprite sharing a non-empty CommonSize key
// to the component-wise max size within that group, so grouped sprites
// (e.g. animation frames) all share one cell size.
func updateCommonSizes(sprites []*Sprite) {
	maxByKey := make(map[string]geom.Size)
	for _, s := range sprites {
		if s.CommonSize == "" {
			continue
		}
		m := maxByKey[s.CommonSize]
		m.W = max(m.W, s.Size.W)
		m.H = max(m.H, s.Size.H)
		maxByKey[s.CommonSize] = m
	}
	for _, s := range sprites {
		if s.CommonSize == "" {
			continue
		}
		m := maxByKey[s.CommonSize]
		s.Size.W = max(s.Size.W, m.W)
		s.Size.H = max(s.Size.H, m.H)
	}
}

// updateSpriteOffset positions the trimmed content within its (possibly
// larger) cell according to the sprite's alignment anchors.
func updateSpriteOffset(s *Sprite) {
	margin := geom.Size{W: s.Size.W - s.TrimmedSourceRect.W, H: s.Size.H - s.TrimmedSourceRect.H}
	switch s.AlignX {
	case AlignLeft:
		s.Offset.X = 0
	case AlignCenterX:
		s.Offset.X = margin.W / 2
	case AlignRight:
		s.Offset.X = margin.W
	}
	switch s.AlignY {
	case AlignTop:
		s.Offset.Y = 0
	case AlignMiddle:
		s.Offset.Y = margin.H / 2
	case AlignBottom:
		s.Offset.Y = margin.H
	}
}
