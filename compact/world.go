package compact

// world is a minimal position-based dynamics simulation: bodies fall
// under gravity, then a handful of constraint-relaxation passes push
// overlapping colliders apart and clamp them against the rectangular
// boundary. There is no angular motion (moment of inertia is treated as
// infinite) and no restitution; the goal is a stable settle, not
// physically exact collision response.
type world struct {
	bodies []*Body
	// boundary rectangle, inclusive interior a body's polygon must stay within.
	minX, minY, maxX, maxY float64
}

const solverIterations = 4

func (w *world) step(dt float64, gravity Vec2) {
	for _, b := range w.bodies {
		b.Vel = b.Vel.Add(gravity.Scale(dt))
		b.Pos = b.Pos.Add(b.Vel.Scale(dt))
	}
	for iter := 0; iter < solverIterations; iter++ {
		w.resolveBoundary()
		w.resolveBodyPairs()
	}
}

func (w *world) resolveBoundary() {
	for _, b := range w.bodies {
		min, max := b.bounds()
		if min.X < w.minX {
			d := w.minX - min.X
			b.Pos.X += d
			if b.Vel.X < 0 {
				b.Vel.X = 0
			}
		}
		if max.X > w.maxX {
			d := max.X - w.maxX
			b.Pos.X -= d
			if b.Vel.X > 0 {
				b.Vel.X = 0
			}
		}
		if min.Y < w.minY {
			d := w.minY - min.Y
			b.Pos.Y += d
			if b.Vel.Y < 0 {
				b.Vel.Y = 0
			}
		}
		if max.Y > w.maxY {
			d := max.Y - w.maxY
			b.Pos.Y -= d
			if b.Vel.Y > 0 {
				b.Vel.Y = 0
			}
		}
	}
}

func (w *world) resolveBodyPairs() {
	for i := 0; i < len(w.bodies); i++ {
		for j := i + 1; j < len(w.bodies); j++ {
			a, b := w.bodies[i], w.bodies[j]
			mtv, overlap := satOverlap(a.worldVerts(), b.worldVerts())
			if !overlap {
				continue
			}
			half := mtv.Scale(0.5)
			a.Pos = a.Pos.Add(half)
			b.Pos = b.Pos.Sub(half)

			n := mtv.Normalize()
			if d := a.Vel.Dot(n); d < 0 {
				a.Vel = a.Vel.Sub(n.Scale(d))
			}
			if d := b.Vel.Dot(n); d > 0 {
				b.Vel = b.Vel.Sub(n.Scale(d))
			}
		}
	}
}
