package outline

import (
	"fmt"
	"iter"
	"slices"
	"sort"
	"strings"
)

// ContourInfo describes one contour of a [PackedPath].
type ContourInfo struct {
	// EndPoint is the index of the contour's last point, counted over the
	// whole path. A contour spans from the previous contour's EndPoint + 1
	// (or 0) to EndPoint, inclusive.
	EndPoint int
	Closed   bool
}

// PackedPath is the flat, canonical representation of a glyph outline:
// parallel arrays of coordinates and point types, plus a contour table.
//
// The zero value is the empty path. A PackedPath owns its slices; every
// method that returns a new path returns one that shares no storage with
// the receiver. PackedPath is not safe for concurrent mutation.
type PackedPath struct {
	// Coordinates holds x, y pairs, two entries per point, ordered contour
	// by contour.
	Coordinates []float64
	// PointTypes holds one code per point.
	PointTypes []PointType
	// ContourInfo holds one entry per contour, with strictly increasing
	// end points.
	ContourInfo []ContourInfo
	// PointAttributes is either absent or parallel to PointTypes.
	PointAttributes PointAttributes
}

// NewPackedPath returns a path made of copies of the given arrays, without
// point metadata. It fails with a [StructureError] if the arrays do not
// describe a valid path.
func NewPackedPath(coordinates []float64, pointTypes []PointType, contourInfo []ContourInfo) (*PackedPath, error) {
	p := &PackedPath{
		Coordinates: slices.Clone(coordinates),
		PointTypes:  slices.Clone(pointTypes),
		ContourInfo: slices.Clone(contourInfo),
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return p, nil
}

// Validate checks the structural invariants of p: two coordinates per
// point, known point type codes, strictly increasing contour end points
// that cover every point, and a metadata column that is either absent or
// parallel to the points.
func (p *PackedPath) Validate() error {
	if len(p.Coordinates) != 2*len(p.PointTypes) {
		return structErrorf("%d coordinates for %d points", len(p.Coordinates), len(p.PointTypes))
	}
	for i, pt := range p.PointTypes {
		if !pt.valid() {
			return structErrorf("point %d has invalid point type %#x", i, uint8(pt))
		}
	}
	prev := -1
	for ci, info := range p.ContourInfo {
		if info.EndPoint <= prev {
			return structErrorf("end point %d of contour %d does not follow end point %d", info.EndPoint, ci, prev)
		}
		prev = info.EndPoint
	}
	if prev != len(p.PointTypes)-1 {
		return structErrorf("last end point is %d, but there are %d points", prev, len(p.PointTypes))
	}
	if p.PointAttributes.Materialized() && p.PointAttributes.Len() != len(p.PointTypes) {
		return structErrorf("%d point attribute entries for %d points", p.PointAttributes.Len(), len(p.PointTypes))
	}
	return nil
}

func (p *PackedPath) NumContours() int { return len(p.ContourInfo) }

func (p *PackedPath) NumPoints() int { return len(p.PointTypes) }

func (p *PackedPath) contourStart(ci int) int {
	if ci == 0 {
		return 0
	}
	return p.ContourInfo[ci-1].EndPoint + 1
}

// contourBounds returns the absolute index of the first point of contour
// ci and its number of points.
func (p *PackedPath) contourBounds(ci int) (start, n int) {
	start = p.contourStart(ci)
	return start, p.ContourInfo[ci].EndPoint + 1 - start
}

// normalizeContourIndex resolves negative indices, which count from the
// end. With forInsert, the position one past the last contour is valid.
func (p *PackedPath) normalizeContourIndex(ci int, forInsert bool) (int, error) {
	orig := ci
	n := len(p.ContourInfo)
	if ci < 0 {
		ci += n
	}
	limit := n
	if forInsert {
		limit++
	}
	if ci < 0 || ci >= limit {
		return 0, &IndexError{What: "contourIndex", Index: orig, Len: limit}
	}
	return ci, nil
}

func (p *PackedPath) absolutePointIndex(ci, cpi int, forInsert bool) (int, error) {
	start, n := p.contourBounds(ci)
	orig := cpi
	if cpi < 0 {
		cpi += n
	}
	limit := n
	if forInsert {
		limit++
	}
	if cpi < 0 || cpi >= limit {
		return 0, &IndexError{What: "contourPointIndex", Index: orig, Len: limit}
	}
	return start + cpi, nil
}

// AbsolutePointIndex converts a contour index and a point index within
// that contour to an index over all points. Negative indices count from
// the end.
func (p *PackedPath) AbsolutePointIndex(contourIndex, contourPointIndex int) (int, error) {
	ci, err := p.normalizeContourIndex(contourIndex, false)
	if err != nil {
		return 0, err
	}
	return p.absolutePointIndex(ci, contourPointIndex, false)
}

// NumPointsOfContour returns the number of points of a contour.
func (p *PackedPath) NumPointsOfContour(contourIndex int) (int, error) {
	ci, err := p.normalizeContourIndex(contourIndex, false)
	if err != nil {
		return 0, err
	}
	_, n := p.contourBounds(ci)
	return n, nil
}

// ContourIndex returns the index of the contour containing the point with
// the absolute index pointIndex.
func (p *PackedPath) ContourIndex(pointIndex int) (int, bool) {
	if pointIndex < 0 {
		return 0, false
	}
	ci := sort.Search(len(p.ContourInfo), func(i int) bool {
		return pointIndex <= p.ContourInfo[i].EndPoint
	})
	if ci >= len(p.ContourInfo) {
		return 0, false
	}
	return ci, true
}

// ContourAndPointIndex splits an absolute point index into a contour index
// and the index of the point within that contour.
func (p *PackedPath) ContourAndPointIndex(pointIndex int) (contourIndex, contourPointIndex int, err error) {
	ci, ok := p.ContourIndex(pointIndex)
	if !ok {
		return 0, 0, &IndexError{What: "pointIndex", Index: pointIndex, Len: len(p.PointTypes)}
	}
	return ci, pointIndex - p.contourStart(ci), nil
}

func (p *PackedPath) checkPointIndex(pointIndex int) error {
	if pointIndex < 0 || pointIndex >= len(p.PointTypes) {
		return &IndexError{What: "pointIndex", Index: pointIndex, Len: len(p.PointTypes)}
	}
	return nil
}

// point unpacks point i, which must be in range.
func (p *PackedPath) point(i int) Point {
	pt := p.PointTypes[i]
	return Point{
		X:      p.Coordinates[2*i],
		Y:      p.Coordinates[2*i+1],
		Kind:   pt.Kind(),
		Smooth: pt.IsSmooth(),
		Attrs:  p.PointAttributes.At(i).Clone(),
	}
}

// Point returns the point with the absolute index pointIndex.
func (p *PackedPath) Point(pointIndex int) (Point, error) {
	if err := p.checkPointIndex(pointIndex); err != nil {
		return Point{}, err
	}
	return p.point(pointIndex), nil
}

// PointPosition returns the position of the point with the absolute index
// pointIndex.
func (p *PackedPath) PointPosition(pointIndex int) (Vec2, error) {
	if err := p.checkPointIndex(pointIndex); err != nil {
		return Vec2{}, err
	}
	return Vec2{p.Coordinates[2*pointIndex], p.Coordinates[2*pointIndex+1]}, nil
}

// ContourPoint returns point contourPointIndex of contour contourIndex.
func (p *PackedPath) ContourPoint(contourIndex, contourPointIndex int) (Point, error) {
	i, err := p.AbsolutePointIndex(contourIndex, contourPointIndex)
	if err != nil {
		return Point{}, err
	}
	return p.point(i), nil
}

// Points returns an iterator over all points, keyed by absolute index.
func (p *PackedPath) Points() iter.Seq2[int, Point] {
	return func(yield func(int, Point) bool) {
		for i := range p.PointTypes {
			if !yield(i, p.point(i)) {
				return
			}
		}
	}
}

// IsStartOrEndPoint returns -1 if pointIndex is the first point of an open
// contour, 1 if it is the last point of an open contour, and 0 otherwise.
func (p *PackedPath) IsStartOrEndPoint(pointIndex int) (int, error) {
	ci, cpi, err := p.ContourAndPointIndex(pointIndex)
	if err != nil {
		return 0, err
	}
	info := p.ContourInfo[ci]
	if !info.Closed {
		if cpi == 0 {
			return -1, nil
		} else if pointIndex == info.EndPoint {
			return 1, nil
		}
	}
	return 0, nil
}

func (p *PackedPath) controlBounds(start, end int) (Rect, bool) {
	if end < start {
		return Rect{}, false
	}
	r := NewRectFromPoints(Vec(p.Coordinates[2*start], p.Coordinates[2*start+1]), Vec(p.Coordinates[2*start], p.Coordinates[2*start+1]))
	for i := start + 1; i <= end; i++ {
		r = r.UnionPoint(Vec(p.Coordinates[2*i], p.Coordinates[2*i+1]))
	}
	return r, true
}

// ControlBounds returns the rectangle enclosing all points, on- and
// off-curve. It returns false for the empty path.
func (p *PackedPath) ControlBounds() (Rect, bool) {
	return p.controlBounds(0, len(p.PointTypes)-1)
}

// ControlBoundsForContour is like [PackedPath.ControlBounds] but only
// considers one contour.
func (p *PackedPath) ControlBoundsForContour(contourIndex int) (Rect, bool, error) {
	ci, err := p.normalizeContourIndex(contourIndex, false)
	if err != nil {
		return Rect{}, false, err
	}
	r, ok := p.controlBounds(p.contourStart(ci), p.ContourInfo[ci].EndPoint)
	return r, ok, nil
}

// Handles returns an iterator over the line segments connecting off-curve
// points with their neighbouring on-curve points, as drawn by editors.
func (p *PackedPath) Handles() iter.Seq[[2]Vec2] {
	return func(yield func([2]Vec2) bool) {
		pos := func(i int) Vec2 { return Vec(p.Coordinates[2*i], p.Coordinates[2*i+1]) }
		start := 0
		for _, info := range p.ContourInfo {
			end := info.EndPoint
			prev := start
			next := start + 1
			if info.Closed {
				prev = end
				next = start
			}
			for ; next <= end; next++ {
				if p.PointTypes[prev].Kind() != p.PointTypes[next].Kind() {
					if !yield([2]Vec2{pos(prev), pos(next)}) {
						return
					}
				}
				prev = next
			}
			start = end + 1
		}
	}
}

// PointsInRect returns an iterator over the points inside r, keyed by
// absolute index.
func (p *PackedPath) PointsInRect(r Rect) iter.Seq2[int, Point] {
	return func(yield func(int, Point) bool) {
		for i := range p.PointTypes {
			if !r.Contains(Vec(p.Coordinates[2*i], p.Coordinates[2*i+1])) {
				continue
			}
			if !yield(i, p.point(i)) {
				return
			}
		}
	}
}

// FirstPointIndexNearPoint returns the index of the first point within
// margin of pt, ignoring the point with index skip. Pass -1 to skip
// nothing.
func (p *PackedPath) FirstPointIndexNearPoint(pt Vec2, margin float64, skip int) (int, bool) {
	for i := range p.PointsInRect(NewRectFromCenter(pt, margin)) {
		if i != skip {
			return i, true
		}
	}
	return 0, false
}

// Transform returns a copy of p with aff applied to every point.
func (p *PackedPath) Transform(aff Affine) *PackedPath {
	out := p.Copy()
	for i := 0; i < len(out.Coordinates); i += 2 {
		v := Vec(out.Coordinates[i], out.Coordinates[i+1]).Transform(aff)
		out.Coordinates[i], out.Coordinates[i+1] = v.X, v.Y
	}
	return out
}

// Copy returns a deep copy of p.
func (p *PackedPath) Copy() *PackedPath {
	return &PackedPath{
		Coordinates:     slices.Clone(p.Coordinates),
		PointTypes:      slices.Clone(p.PointTypes),
		ContourInfo:     slices.Clone(p.ContourInfo),
		PointAttributes: p.PointAttributes.clone(),
	}
}

// Equal reports whether p and o are structurally equal. A metadata column
// with no entries set equals an absent one.
func (p *PackedPath) Equal(o *PackedPath) bool {
	return slices.Equal(p.Coordinates, o.Coordinates) &&
		slices.Equal(p.PointTypes, o.PointTypes) &&
		slices.Equal(p.ContourInfo, o.ContourInfo) &&
		p.PointAttributes.Equal(o.PointAttributes)
}

func (p *PackedPath) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "PackedPath{Coordinates: %v, PointTypes: %v, ContourInfo: [", p.Coordinates, p.PointTypes)
	for i, info := range p.ContourInfo {
		if i > 0 {
			sb.WriteString(" ")
		}
		fmt.Fprintf(&sb, "{EndPoint: %d, Closed: %t}", info.EndPoint, info.Closed)
	}
	sb.WriteString("], PointAttributes: ")
	if p.PointAttributes.Materialized() {
		fmt.Fprintf(&sb, "%v", p.PointAttributes.entries)
	} else {
		sb.WriteString("<absent>")
	}
	sb.WriteString("}")
	return sb.String()
}
