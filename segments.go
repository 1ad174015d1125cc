package outline

import (
	"fmt"
	"slices"
)

// SegmentKind classifies a [Segment] of a contour.
type SegmentKind int

const (
	SegmentLine SegmentKind = iota
	SegmentQuad
	SegmentCubic
	// SegmentQuadBlob is a closed contour made only of quadratic off-curve
	// points.
	SegmentQuadBlob
)

func (k SegmentKind) String() string {
	switch k {
	case SegmentLine:
		return "line"
	case SegmentQuad:
		return "quad"
	case SegmentCubic:
		return "cubic"
	case SegmentQuadBlob:
		return "quadBlob"
	default:
		return fmt.Sprintf("SegmentKind(%d)", int(k))
	}
}

// Segment is a run of points from one on-curve point to the next.
type Segment struct {
	Kind SegmentKind
	// PointIndices holds absolute point indices. Both end points are
	// included, so consecutive segments share a point. For a quad blob it
	// lists every point of the contour.
	PointIndices []int
}

// firstOnCurve returns the offset of the first on-curve point among types,
// or -1.
func firstOnCurve(types []PointType) int {
	return slices.IndexFunc(types, func(pt PointType) bool { return !pt.IsOffCurve() })
}

// ContourSegments splits a contour into segments. Off-curve points before
// the first or after the last on-curve point of an open contour belong to
// no segment.
func (p *PackedPath) ContourSegments(contourIndex int) ([]Segment, error) {
	ci, err := p.normalizeContourIndex(contourIndex, false)
	if err != nil {
		return nil, err
	}
	start, n := p.contourBounds(ci)
	closed := p.ContourInfo[ci].Closed
	first := firstOnCurve(p.PointTypes[start : start+n])
	if first < 0 {
		idx := make([]int, n)
		for i := range idx {
			idx[i] = start + i
		}
		return []Segment{{Kind: SegmentQuadBlob, PointIndices: idx}}, nil
	}

	var out []Segment
	last := n - 1 - first
	if closed {
		last = n
	}
	kind := SegmentLine
	var cur []int
	for i := 0; i <= last; i++ {
		j := start + (first+i)%n
		cur = append(cur, j)
		if i == 0 {
			continue
		}
		switch p.PointTypes[j].Kind() {
		case OnCurveKind:
			out = append(out, Segment{Kind: kind, PointIndices: cur})
			cur = []int{j}
			kind = SegmentLine
		case OffCurveQuadKind:
			kind = SegmentQuad
		case OffCurveCubicKind:
			kind = SegmentCubic
		}
	}
	return out, nil
}

// Draw sends the outline of p to pen, contour by contour.
//
// A run of quadratic off-curve points is a [QuadBSpline] with implied
// on-curve points between consecutive off-curves. A cubic run of one
// off-curve point is drawn as a quadratic segment; for runs of more than
// two, only the first and the last off-curve point are used. A closed
// contour without on-curve points is drawn as a quadratic spline starting
// at the midpoint between its last and first point.
func (p *PackedPath) Draw(pen SegmentPen) {
	for ci := range p.ContourInfo {
		p.drawContour(pen, ci)
	}
}

// DrawContour sends a single contour to pen.
func (p *PackedPath) DrawContour(pen SegmentPen, contourIndex int) error {
	ci, err := p.normalizeContourIndex(contourIndex, false)
	if err != nil {
		return err
	}
	p.drawContour(pen, ci)
	return nil
}

func (p *PackedPath) drawContour(pen SegmentPen, ci int) {
	start, n := p.contourBounds(ci)
	coords := p.Coordinates[2*start : 2*(start+n)]
	types := p.PointTypes[start : start+n]
	if first := firstOnCurve(types); first >= 0 {
		drawContourSegments(pen, coords, types, first, p.ContourInfo[ci].Closed)
		return
	}

	mid := Vec(coords[0], coords[1]).Midpoint(Vec(coords[2*n-2], coords[2*n-1]))
	blobCoords := make([]float64, 0, len(coords)+2)
	blobCoords = append(blobCoords, mid.X, mid.Y)
	blobCoords = append(blobCoords, coords...)
	blobTypes := make([]PointType, 0, n+1)
	blobTypes = append(blobTypes, OnCurve)
	blobTypes = append(blobTypes, types...)
	drawContourSegments(pen, blobCoords, blobTypes, 0, true)
}

func drawContourSegments(pen SegmentPen, coords []float64, types []PointType, first int, closed bool) {
	n := len(types)
	last := n - 1 - first
	if closed {
		last = n
	}
	kind := SegmentLine
	var seg []Vec2
	for i := 0; i <= last; i++ {
		j := (first + i) % n
		pt := Vec(coords[2*j], coords[2*j+1])
		if i == 0 {
			pen.MoveTo(pt)
			seg = append(seg, pt)
			continue
		}
		seg = append(seg, pt)
		switch types[j].Kind() {
		case OnCurveKind:
			drawSegment(pen, kind, seg)
			seg = append(seg[:0], pt)
			kind = SegmentLine
		case OffCurveQuadKind:
			kind = SegmentQuad
		case OffCurveCubicKind:
			kind = SegmentCubic
		}
	}
	if closed {
		pen.ClosePath()
	}
}

// drawSegment draws seg, whose first point is the pen's current point.
func drawSegment(pen SegmentPen, kind SegmentKind, seg []Vec2) {
	switch kind {
	case SegmentQuad:
		QuadBSpline(seg).Draw(pen)
	case SegmentCubic:
		switch n := len(seg); {
		case n == 3:
			pen.QuadTo(seg[1], seg[2])
		case n >= 4:
			pen.CubicTo(seg[1], seg[n-2], seg[n-1])
		default:
			pen.LineTo(seg[n-1])
		}
	default:
		pen.LineTo(seg[len(seg)-1])
	}
}

// BezPath draws p into a new [BezPath].
func (p *PackedPath) BezPath() BezPath {
	var bp BezPath
	p.Draw(&bp)
	return bp
}

var _ SegmentPen = (*PackedPath)(nil)

// MoveTo starts a new open contour at pt.
func (p *PackedPath) MoveTo(pt Vec2) {
	p.ContourInfo = append(p.ContourInfo, ContourInfo{EndPoint: len(p.PointTypes) - 1})
	p.appendPoint(pt, OnCurve)
}

// LineTo adds an on-curve point to the last contour. It panics if p has
// no contours.
func (p *PackedPath) LineTo(pt Vec2) {
	p.appendPoint(pt, OnCurve)
}

// QuadTo adds a quadratic segment to the last contour.
func (p *PackedPath) QuadTo(p1, p2 Vec2) {
	p.QuadSplineTo(p1, p2)
}

// QuadSplineTo adds a quadratic spline to the last contour: every point
// but the last is a quadratic off-curve point, the last one is on-curve.
func (p *PackedPath) QuadSplineTo(pts ...Vec2) {
	if len(pts) == 0 {
		panic("outline: QuadSplineTo called without points")
	}
	for _, pt := range pts[:len(pts)-1] {
		p.appendPoint(pt, OffCurveQuad)
	}
	p.appendPoint(pts[len(pts)-1], OnCurve)
}

// CubicTo adds a cubic segment to the last contour.
func (p *PackedPath) CubicTo(p1, p2, p3 Vec2) {
	p.appendPoint(p1, OffCurveCubic)
	p.appendPoint(p2, OffCurveCubic)
	p.appendPoint(p3, OnCurve)
}

// ClosePath marks the last contour as closed.
func (p *PackedPath) ClosePath() {
	if len(p.ContourInfo) == 0 {
		panic("outline: ClosePath called on a path without contours")
	}
	p.ContourInfo[len(p.ContourInfo)-1].Closed = true
}

func (p *PackedPath) appendPoint(pt Vec2, typ PointType) {
	if len(p.ContourInfo) == 0 {
		panic("outline: point added to a path without contours; call MoveTo first")
	}
	if p.PointAttributes.Materialized() {
		p.PointAttributes.entries = append(p.PointAttributes.entries, nil)
	}
	p.Coordinates = append(p.Coordinates, pt.X, pt.Y)
	p.PointTypes = append(p.PointTypes, typ)
	p.ContourInfo[len(p.ContourInfo)-1].EndPoint++
}

// SegmentToPointPen adapts a [PointPen] so that it can be driven through
// the [SegmentPen] interface. Contours are forwarded when they are closed,
// when the next contour starts, and on Flush.
//
// When a closed contour ends on its starting point, the duplicate is
// folded into the first point.
type SegmentToPointPen struct {
	pen     PointPen
	contour []segPoint
}

type segPoint struct {
	pt  Vec2
	seg SegmentType
}

var _ SegmentPen = (*SegmentToPointPen)(nil)

func NewSegmentToPointPen(pen PointPen) *SegmentToPointPen {
	return &SegmentToPointPen{pen: pen}
}

func (s *SegmentToPointPen) MoveTo(pt Vec2) {
	s.Flush()
	s.contour = append(s.contour, segPoint{pt, MoveSegment})
}

func (s *SegmentToPointPen) LineTo(pt Vec2) {
	s.add(segPoint{pt, LineSegment})
}

func (s *SegmentToPointPen) QuadTo(p1, p2 Vec2) {
	s.add(segPoint{p1, NoSegment}, segPoint{p2, QCurveSegment})
}

func (s *SegmentToPointPen) CubicTo(p1, p2, p3 Vec2) {
	s.add(segPoint{p1, NoSegment}, segPoint{p2, NoSegment}, segPoint{p3, CurveSegment})
}

func (s *SegmentToPointPen) add(pts ...segPoint) {
	if len(s.contour) == 0 {
		panic("outline: segment drawn without MoveTo")
	}
	s.contour = append(s.contour, pts...)
}

func (s *SegmentToPointPen) ClosePath() {
	if len(s.contour) == 0 {
		return
	}
	if n := len(s.contour); n > 1 && s.contour[0].pt == s.contour[n-1].pt {
		s.contour[0] = s.contour[n-1]
		s.contour = s.contour[:n-1]
	} else {
		s.contour[0].seg = LineSegment
	}
	s.flush()
}

// Flush forwards a pending open contour.
func (s *SegmentToPointPen) Flush() {
	if len(s.contour) > 0 {
		s.flush()
	}
}

func (s *SegmentToPointPen) flush() {
	s.pen.BeginContour()
	for _, p := range s.contour {
		s.pen.AddPoint(p.pt.X, p.pt.Y, p.seg, false, nil)
	}
	s.pen.EndContour()
	s.contour = s.contour[:0]
}
