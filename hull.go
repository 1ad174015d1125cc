package outline

import (
	"cmp"
	"slices"
)

// ConvexHull returns the convex hull of all points of p, on- and off-curve,
// in counter-clockwise order starting with the leftmost, lowest point.
// Collinear points on the hull's edges are omitted. It returns nil for the
// empty path.
func (p *PackedPath) ConvexHull() []Vec2 {
	if len(p.PointTypes) == 0 {
		return nil
	}
	pts := make([]Vec2, len(p.PointTypes))
	for i := range pts {
		pts[i] = Vec(p.Coordinates[2*i], p.Coordinates[2*i+1])
	}
	return convexHull(pts)
}

// convexHull computes the hull with Andrew's monotone chain. It sorts pts
// in place.
func convexHull(pts []Vec2) []Vec2 {
	slices.SortFunc(pts, func(a, b Vec2) int {
		if c := cmp.Compare(a.X, b.X); c != 0 {
			return c
		}
		return cmp.Compare(a.Y, b.Y)
	})
	pts = slices.Compact(pts)
	if len(pts) < 3 {
		return pts
	}

	turn := func(o, a, b Vec2) float64 { return a.Sub(o).Cross(b.Sub(o)) }
	hull := make([]Vec2, 0, 2*len(pts))
	// Lower chain, then upper chain. The last point of each chain is the
	// first point of the other.
	for _, pt := range pts {
		for len(hull) >= 2 && turn(hull[len(hull)-2], hull[len(hull)-1], pt) <= 0 {
			hull = hull[:len(hull)-1]
		}
		hull = append(hull, pt)
	}
	lower := len(hull) + 1
	for i := len(pts) - 2; i >= 0; i-- {
		pt := pts[i]
		for len(hull) >= lower && turn(hull[len(hull)-2], hull[len(hull)-1], pt) <= 0 {
			hull = hull[:len(hull)-1]
		}
		hull = append(hull, pt)
	}
	return hull[:len(hull)-1]
}
