package compact

import "math"

// axesOf returns the outward edge normals of a convex polygon, one per
// edge, used as the candidate separating axes for SAT.
func axesOf(verts []Vec2) []Vec2 {
	n := len(verts)
	axes := make([]Vec2, n)
	for i := 0; i < n; i++ {
		edge := verts[(i+1)%n].Sub(verts[i])
		axes[i] = edge.Perp().Normalize()
	}
	return axes
}

func projectOntoAxis(verts []Vec2, axis Vec2) (min, max float64) {
	min = verts[0].Dot(axis)
	max = min
	for _, v := range verts[1:] {
		p := v.Dot(axis)
		if p < min {
			min = p
		}
		if p > max {
			max = p
		}
	}
	return min, max
}

// satOverlap runs the separating axis test over both polygons' edge
// normals. It returns the minimum translation vector needed to push a
// out of b (pointing away from b) and whether they overlap at all.
func satOverlap(a, b []Vec2) (mtv Vec2, overlap bool) {
	bestDepth := math.MaxFloat64
	var bestAxis Vec2

	check := func(axes []Vec2) bool {
		for _, axis := range axes {
			aMin, aMax := projectOntoAxis(a, axis)
			bMin, bMax := projectOntoAxis(b, axis)
			if aMax < bMin || bMax < aMin {
				return false
			}
			depth := math.Min(aMax, bMax) - math.Max(aMin, bMin)
			if depth < bestDepth {
				bestDepth = depth
				bestAxis = axis
				aCenter := (aMin + aMax) / 2
				bCenter := (bMin + bMax) / 2
				if aCenter < bCenter {
					bestAxis = axis.Scale(-1)
				}
			}
		}
		return true
	}

	if !check(axesOf(a)) {
		return Vec2{}, false
	}
	if !check(axesOf(b)) {
		return Vec2{}, false
	}
	return bestAxis.Scale(bestDepth), true
}
