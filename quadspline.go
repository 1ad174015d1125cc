package outline

import "iter"

// QuadBez is a single quadratic Bézier segment.
type QuadBez struct {
	P0 Vec2
	P1 Vec2
	P2 Vec2
}

// QuadBSpline is a quadratic B-spline. It is encoded as [P₁, C₁, C₂, C₃, C₄, ..., Pₙ],
// where Pᵢ are on-curve points and Cᵢ are off-curve control points. Only the first and
// last on-curve points are explicit. All other on-curve points are implicit and defined
// as Pᵢ = (Cᵢ₋₁ + Cᵢ) / 2. This is how runs of quadratic off-curve points in a
// [PackedPath] are interpreted.
type QuadBSpline []Vec2

// Quads returns an iterator over the implied sequence of quadratic Bézier segments.
func (q QuadBSpline) Quads() iter.Seq[QuadBez] {
	return func(yield func(QuadBez) bool) {
		var idx int
		for len(q[idx:]) >= 3 {
			p0, p1, p2 := q[idx], q[idx+1], q[idx+2]

			if idx != 0 {
				p0 = p0.Midpoint(p1)
			}
			if idx+2 < len(q)-1 {
				p2 = p1.Midpoint(p2)
			}

			idx++

			if !yield(QuadBez{p0, p1, p2}) {
				break
			}
		}
	}
}

// Draw sends the spline's segments to pen, starting from the pen's current
// point, which must be q[0].
func (q QuadBSpline) Draw(pen SegmentPen) {
	for seg := range q.Quads() {
		pen.QuadTo(seg.P1, seg.P2)
	}
}
