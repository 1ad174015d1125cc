package outline

import (
	"fmt"
)

// SegmentType is the role a point plays in the [PointPen] protocol.
type SegmentType int

const (
	// NoSegment marks an off-curve point.
	NoSegment SegmentType = iota
	// MoveSegment marks the first point of an open contour.
	MoveSegment
	// LineSegment marks an on-curve point reached by a straight line.
	LineSegment
	// CurveSegment marks an on-curve point ending a cubic segment.
	CurveSegment
	// QCurveSegment marks an on-curve point ending a quadratic spline.
	QCurveSegment
)

func (s SegmentType) String() string {
	switch s {
	case NoSegment:
		return ""
	case MoveSegment:
		return "move"
	case LineSegment:
		return "line"
	case CurveSegment:
		return "curve"
	case QCurveSegment:
		return "qcurve"
	default:
		return fmt.Sprintf("SegmentType(%d)", int(s))
	}
}

// PointPen is the contour-construction protocol. A producer describes each
// contour as BeginContour, one AddPoint per point in contour order, and
// EndContour. A contour whose first point has segment type [MoveSegment]
// is open; all other contours are closed.
//
// Implementations may panic if the calls are not properly nested.
type PointPen interface {
	BeginContour()
	AddPoint(x, y float64, segment SegmentType, smooth bool, attrs Attrs)
	EndContour()
}

// segmentAfter returns the segment type of an on-curve point that follows
// a point of type pt.
func segmentAfter(pt PointType) SegmentType {
	switch pt.Kind() {
	case OffCurveCubicKind:
		return CurveSegment
	case OffCurveQuadKind:
		return QCurveSegment
	default:
		return LineSegment
	}
}

// drawContourPoints replays one contour of n points, fetched with get, into
// pen.
func drawContourPoints(pen PointPen, n int, closed bool, get func(i int) (x, y float64, pt PointType, attrs Attrs)) {
	pen.BeginContour()
	seg := MoveSegment
	if closed && n > 0 {
		_, _, last, _ := get(n - 1)
		seg = segmentAfter(last)
	}
	for i := range n {
		x, y, pt, attrs := get(i)
		if pt.IsOffCurve() {
			pen.AddPoint(x, y, NoSegment, false, attrs)
			seg = segmentAfter(pt)
			continue
		}
		pen.AddPoint(x, y, seg, pt.IsSmooth(), attrs)
		seg = LineSegment
	}
	pen.EndContour()
}

// DrawPoints replays p into pen, one BeginContour/EndContour pair per
// contour. The first point of an open contour is reported as
// [MoveSegment]; the first point of a closed contour gets the segment type
// implied by the contour's last point. Metadata is passed as a copy.
func (p *PackedPath) DrawPoints(pen PointPen) {
	for ci := range p.ContourInfo {
		start, n := p.contourBounds(ci)
		drawContourPoints(pen, n, p.ContourInfo[ci].Closed, func(i int) (float64, float64, PointType, Attrs) {
			j := start + i
			return p.Coordinates[2*j], p.Coordinates[2*j+1], p.PointTypes[j], p.PointAttributes.At(j).Clone()
		})
	}
}

type penPoint struct {
	x, y    float64
	segment SegmentType
	smooth  bool
	attrs   Attrs
}

// PackedPathPointPen is a [PointPen] that builds a [PackedPath].
//
// The curve type of an off-curve point is taken from the on-curve point
// ending its run, wrapping around for closed contours. A closed contour
// without on-curve points is a quadratic blob. Off-curve points at the end
// of an open contour do not belong to any segment and are dropped, as are
// contours without points.
type PackedPathPointPen struct {
	path      *PackedPath
	current   []penPoint
	inContour bool
}

var _ PointPen = (*PackedPathPointPen)(nil)

func NewPackedPathPointPen() *PackedPathPointPen {
	return &PackedPathPointPen{path: &PackedPath{}}
}

func (pen *PackedPathPointPen) BeginContour() {
	if pen.inContour {
		panic("outline: BeginContour called inside a contour")
	}
	if pen.path == nil {
		pen.path = &PackedPath{}
	}
	pen.inContour = true
	pen.current = pen.current[:0]
}

func (pen *PackedPathPointPen) AddPoint(x, y float64, segment SegmentType, smooth bool, attrs Attrs) {
	if !pen.inContour {
		panic("outline: AddPoint called outside a contour")
	}
	pen.current = append(pen.current, penPoint{x, y, segment, smooth, attrs.Clone()})
}

func (pen *PackedPathPointPen) EndContour() {
	if !pen.inContour {
		panic("outline: EndContour called outside a contour")
	}
	pen.inContour = false
	pts := pen.current
	if len(pts) == 0 {
		return
	}
	closed := pts[0].segment != MoveSegment
	if !closed {
		for pts[len(pts)-1].segment == NoSegment {
			pts = pts[:len(pts)-1]
		}
	}

	c := PackedContour{
		Coordinates: make([]float64, 2*len(pts)),
		PointTypes:  make([]PointType, len(pts)),
		Closed:      closed,
	}
	// Walking backwards, every off-curve point takes the curve type of the
	// next on-curve point. The walk starts with the type of the first
	// on-curve point, which is where trailing off-curves of a closed
	// contour lead.
	offKind := OffCurveQuadKind
	for _, pt := range pts {
		if pt.segment != NoSegment {
			offKind = offCurveKindFor(pt.segment)
			break
		}
	}
	for i := len(pts) - 1; i >= 0; i-- {
		pt := pts[i]
		c.Coordinates[2*i] = pt.x
		c.Coordinates[2*i+1] = pt.y
		if pt.segment == NoSegment {
			c.PointTypes[i] = MakePointType(offKind, false)
		} else {
			c.PointTypes[i] = MakePointType(OnCurveKind, pt.smooth)
			offKind = offCurveKindFor(pt.segment)
		}
		if pt.attrs != nil {
			if c.PointAttributes == nil {
				c.PointAttributes = make([]Attrs, len(pts))
			}
			c.PointAttributes[i] = pt.attrs
		}
	}
	if err := pen.path.AppendContour(c); err != nil {
		panic(err)
	}
}

func offCurveKindFor(segment SegmentType) PointKind {
	if segment == QCurveSegment {
		return OffCurveQuadKind
	}
	return OffCurveCubicKind
}

// Path returns the path built so far and resets the pen.
func (pen *PackedPathPointPen) Path() *PackedPath {
	if pen.inContour {
		panic("outline: Path called inside a contour")
	}
	p := pen.path
	if p == nil {
		p = &PackedPath{}
	}
	pen.path = &PackedPath{}
	return p
}

// PathPointPen is a [PointPen] that builds an unpacked [Path].
type PathPointPen struct {
	PackedPathPointPen
}

func NewPathPointPen() *PathPointPen {
	return &PathPointPen{PackedPathPointPen: PackedPathPointPen{path: &PackedPath{}}}
}

// Path returns the path built so far and resets the pen.
func (pen *PathPointPen) Path() Path {
	return pen.PackedPathPointPen.Path().AsPath()
}

// PenCall is one recorded [PointPen] call.
type PenCall struct {
	// Method is "BeginContour", "AddPoint" or "EndContour". The other
	// fields are only set for AddPoint.
	Method  string
	X, Y    float64
	Segment SegmentType
	Smooth  bool
	Attrs   Attrs
}

func (c PenCall) String() string {
	if c.Method != "AddPoint" {
		return c.Method + "()"
	}
	return fmt.Sprintf("AddPoint(%g, %g, %q, %t, %v)", c.X, c.Y, c.Segment, c.Smooth, map[string]any(c.Attrs))
}

// RecordingPointPen is a [PointPen] that records the calls it receives.
type RecordingPointPen struct {
	Calls []PenCall
}

var _ PointPen = (*RecordingPointPen)(nil)

func (r *RecordingPointPen) BeginContour() {
	r.Calls = append(r.Calls, PenCall{Method: "BeginContour"})
}

func (r *RecordingPointPen) AddPoint(x, y float64, segment SegmentType, smooth bool, attrs Attrs) {
	r.Calls = append(r.Calls, PenCall{Method: "AddPoint", X: x, Y: y, Segment: segment, Smooth: smooth, Attrs: attrs.Clone()})
}

func (r *RecordingPointPen) EndContour() {
	r.Calls = append(r.Calls, PenCall{Method: "EndContour"})
}

// Replay sends the recorded calls to pen.
func (r *RecordingPointPen) Replay(pen PointPen) {
	for _, c := range r.Calls {
		switch c.Method {
		case "BeginContour":
			pen.BeginContour()
		case "AddPoint":
			pen.AddPoint(c.X, c.Y, c.Segment, c.Smooth, c.Attrs)
		case "EndContour":
			pen.EndContour()
		}
	}
}
