package outline

import (
	"fmt"
	"slices"
	"strings"
)

// Contour is an unpacked contour: an ordered sequence of points. A closed
// contour implicitly connects its last point back to the first.
type Contour struct {
	Points []Point
	Closed bool
}

func (c Contour) Equal(o Contour) bool {
	return c.Closed == o.Closed && slices.EqualFunc(c.Points, o.Points, Point.Equal)
}

// Copy returns a deep copy of c.
func (c Contour) Copy() Contour {
	pts := make([]Point, len(c.Points))
	for i, pt := range c.Points {
		pt.Attrs = pt.Attrs.Clone()
		pts[i] = pt
	}
	return Contour{Points: pts, Closed: c.Closed}
}

func (c Contour) String() string {
	var sb strings.Builder
	sb.WriteString("Contour{Points: [")
	for i, pt := range c.Points {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(pt.String())
	}
	fmt.Fprintf(&sb, "], Closed: %t}", c.Closed)
	return sb.String()
}

// Path is the unpacked, editor-facing representation of an outline.
type Path struct {
	Contours []Contour
}

func (p Path) NumContours() int { return len(p.Contours) }

func (p Path) NumPoints() int {
	n := 0
	for _, c := range p.Contours {
		n += len(c.Points)
	}
	return n
}

func (p Path) Equal(o Path) bool {
	return slices.EqualFunc(p.Contours, o.Contours, Contour.Equal)
}

// Copy returns a deep copy of p.
func (p Path) Copy() Path {
	cs := make([]Contour, len(p.Contours))
	for i, c := range p.Contours {
		cs[i] = c.Copy()
	}
	return Path{Contours: cs}
}

func (p Path) String() string {
	var sb strings.Builder
	sb.WriteString("Path{Contours: [")
	for i, c := range p.Contours {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(c.String())
	}
	sb.WriteString("]}")
	return sb.String()
}

// AsPackedPath packs p. It fails only if p contains an empty contour.
func (p Path) AsPackedPath() (*PackedPath, error) {
	return FromUnpackedContours(p.Contours)
}

// DrawPoints replays p into pen.
func (p Path) DrawPoints(pen PointPen) {
	for _, c := range p.Contours {
		drawContourPoints(pen, len(c.Points), c.Closed, func(i int) (float64, float64, PointType, Attrs) {
			pt := c.Points[i]
			return pt.X, pt.Y, pt.Type(), pt.Attrs.Clone()
		})
	}
}

// PackedContour is one contour in packed form, the unit of
// [PackedPath.InsertContour] and friends.
type PackedContour struct {
	Coordinates []float64
	PointTypes  []PointType
	// PointAttributes is nil if no point of the contour carries metadata,
	// and parallel to PointTypes otherwise.
	PointAttributes []Attrs
	Closed          bool
}

func (c PackedContour) validate() error {
	if len(c.PointTypes) == 0 {
		return structErrorf("empty contour")
	}
	if len(c.Coordinates) != 2*len(c.PointTypes) {
		return structErrorf("%d coordinates for %d points", len(c.Coordinates), len(c.PointTypes))
	}
	for i, pt := range c.PointTypes {
		if !pt.valid() {
			return structErrorf("point %d has invalid point type %#x", i, uint8(pt))
		}
	}
	if c.PointAttributes != nil && len(c.PointAttributes) != len(c.PointTypes) {
		return structErrorf("%d point attribute entries for %d points", len(c.PointAttributes), len(c.PointTypes))
	}
	return nil
}

// PackContour converts an unpacked contour to packed form.
func PackContour(c Contour) PackedContour {
	pc := PackedContour{
		Coordinates: make([]float64, 2*len(c.Points)),
		PointTypes:  make([]PointType, len(c.Points)),
		Closed:      c.Closed,
	}
	for i, pt := range c.Points {
		pc.Coordinates[2*i] = pt.X
		pc.Coordinates[2*i+1] = pt.Y
		pc.PointTypes[i] = pt.Type()
		if pt.Attrs != nil {
			if pc.PointAttributes == nil {
				pc.PointAttributes = make([]Attrs, len(c.Points))
			}
			pc.PointAttributes[i] = pt.Attrs.Clone()
		}
	}
	return pc
}

// FromUnpackedContours packs a sequence of contours. The metadata column of
// the result is absent unless at least one point of any contour carries
// metadata. It fails with a [StructureError] if a contour is empty.
func FromUnpackedContours(contours []Contour) (*PackedPath, error) {
	p := &PackedPath{}
	for _, c := range contours {
		if err := p.AppendContour(PackContour(c)); err != nil {
			return nil, err
		}
	}
	return p, nil
}

// UnpackedContour returns contour contourIndex in unpacked form.
func (p *PackedPath) UnpackedContour(contourIndex int) (Contour, error) {
	ci, err := p.normalizeContourIndex(contourIndex, false)
	if err != nil {
		return Contour{}, err
	}
	return p.unpackedContour(ci), nil
}

func (p *PackedPath) unpackedContour(ci int) Contour {
	start, n := p.contourBounds(ci)
	pts := make([]Point, n)
	for i := range pts {
		pts[i] = p.point(start + i)
	}
	return Contour{Points: pts, Closed: p.ContourInfo[ci].Closed}
}

// UnpackedContours unpacks all contours.
func (p *PackedPath) UnpackedContours() []Contour {
	cs := make([]Contour, len(p.ContourInfo))
	for ci := range cs {
		cs[ci] = p.unpackedContour(ci)
	}
	return cs
}

// AsPath unpacks p.
func (p *PackedPath) AsPath() Path {
	return Path{Contours: p.UnpackedContours()}
}

// Contour returns a copy of contour contourIndex in packed form.
func (p *PackedPath) Contour(contourIndex int) (PackedContour, error) {
	ci, err := p.normalizeContourIndex(contourIndex, false)
	if err != nil {
		return PackedContour{}, err
	}
	start, n := p.contourBounds(ci)
	pc := PackedContour{
		Coordinates: slices.Clone(p.Coordinates[2*start : 2*(start+n)]),
		PointTypes:  slices.Clone(p.PointTypes[start : start+n]),
		Closed:      p.ContourInfo[ci].Closed,
	}
	if p.PointAttributes.Materialized() {
		pc.PointAttributes = make([]Attrs, n)
		for i := range n {
			pc.PointAttributes[i] = p.PointAttributes.At(start + i).Clone()
		}
	}
	return pc, nil
}
