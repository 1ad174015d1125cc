package outline

import "slices"

// replacePoints replaces n points starting at absolute index start with the
// points of c. It does not touch ContourInfo.
func (p *PackedPath) replacePoints(start, n int, c PackedContour) {
	numPoints := len(p.PointTypes)
	p.Coordinates = slices.Replace(p.Coordinates, 2*start, 2*(start+n), c.Coordinates...)
	p.PointTypes = slices.Replace(p.PointTypes, start, start+n, c.PointTypes...)
	p.PointAttributes.splice(numPoints, start, n, c.PointAttributes, len(c.PointTypes))
}

// moveEndPoints shifts the end points of contour ci and all following
// contours by offset.
func (p *PackedPath) moveEndPoints(ci, offset int) {
	for i := ci; i < len(p.ContourInfo); i++ {
		p.ContourInfo[i].EndPoint += offset
	}
}

// InsertContour inserts c before contour contourIndex. contourIndex may be
// NumContours() to append. If c carries metadata and p's metadata column
// is absent, the column is materialized for the whole path.
func (p *PackedPath) InsertContour(contourIndex int, c PackedContour) error {
	ci, err := p.normalizeContourIndex(contourIndex, true)
	if err != nil {
		return err
	}
	if err := c.validate(); err != nil {
		return err
	}
	start := p.contourStart(ci)
	p.replacePoints(start, 0, c)
	p.ContourInfo = slices.Insert(p.ContourInfo, ci, ContourInfo{EndPoint: start - 1, Closed: c.Closed})
	p.moveEndPoints(ci, len(c.PointTypes))
	return nil
}

// AppendContour adds c after the last contour.
func (p *PackedPath) AppendContour(c PackedContour) error {
	return p.InsertContour(len(p.ContourInfo), c)
}

// SetContour replaces contour contourIndex with c.
func (p *PackedPath) SetContour(contourIndex int, c PackedContour) error {
	ci, err := p.normalizeContourIndex(contourIndex, false)
	if err != nil {
		return err
	}
	if err := c.validate(); err != nil {
		return err
	}
	start, n := p.contourBounds(ci)
	p.replacePoints(start, n, c)
	p.moveEndPoints(ci, len(c.PointTypes)-n)
	p.ContourInfo[ci].Closed = c.Closed
	return nil
}

// DeleteContour removes contour contourIndex and its points.
func (p *PackedPath) DeleteContour(contourIndex int) error {
	ci, err := p.normalizeContourIndex(contourIndex, false)
	if err != nil {
		return err
	}
	start, n := p.contourBounds(ci)
	p.replacePoints(start, n, PackedContour{})
	p.ContourInfo = slices.Delete(p.ContourInfo, ci, ci+1)
	p.moveEndPoints(ci, -n)
	return nil
}

// InsertUnpackedContour packs c and inserts it before contour contourIndex.
func (p *PackedPath) InsertUnpackedContour(contourIndex int, c Contour) error {
	return p.InsertContour(contourIndex, PackContour(c))
}

// AppendUnpackedContour packs c and adds it after the last contour.
func (p *PackedPath) AppendUnpackedContour(c Contour) error {
	return p.AppendContour(PackContour(c))
}

// SetUnpackedContour packs c and replaces contour contourIndex with it.
func (p *PackedPath) SetUnpackedContour(contourIndex int, c Contour) error {
	return p.SetContour(contourIndex, PackContour(c))
}

// DeleteNTrailingContours removes the last n contours. Removing more
// contours than p has leaves the empty path; n <= 0 is a no-op. A
// materialized metadata column stays materialized.
func (p *PackedPath) DeleteNTrailingContours(n int) {
	if n <= 0 {
		return
	}
	n = min(n, len(p.ContourInfo))
	ci := len(p.ContourInfo) - n
	start := p.contourStart(ci)
	p.replacePoints(start, len(p.PointTypes)-start, PackedContour{})
	p.ContourInfo = p.ContourInfo[:ci]
}

// InsertPoint inserts pt before point contourPointIndex of contour
// contourIndex. contourPointIndex may equal the contour's point count to
// append. If pt carries metadata and p's metadata column is absent, the
// column is materialized for the whole path.
func (p *PackedPath) InsertPoint(contourIndex, contourPointIndex int, pt Point) error {
	ci, err := p.normalizeContourIndex(contourIndex, false)
	if err != nil {
		return err
	}
	i, err := p.absolutePointIndex(ci, contourPointIndex, true)
	if err != nil {
		return err
	}
	p.insertPoint(ci, i, pt)
	return nil
}

// AppendPoint adds pt after the last point of contour contourIndex.
func (p *PackedPath) AppendPoint(contourIndex int, pt Point) error {
	ci, err := p.normalizeContourIndex(contourIndex, false)
	if err != nil {
		return err
	}
	p.insertPoint(ci, p.ContourInfo[ci].EndPoint+1, pt)
	return nil
}

func (p *PackedPath) insertPoint(ci, i int, pt Point) {
	c := PackedContour{
		Coordinates: []float64{pt.X, pt.Y},
		PointTypes:  []PointType{pt.Type()},
	}
	if pt.Attrs != nil {
		c.PointAttributes = []Attrs{pt.Attrs}
	}
	p.replacePoints(i, 0, c)
	p.moveEndPoints(ci, 1)
}

// DeletePoint removes point contourPointIndex of contour contourIndex.
// Removing the only point of a contour is an error; delete the contour
// instead.
func (p *PackedPath) DeletePoint(contourIndex, contourPointIndex int) error {
	ci, err := p.normalizeContourIndex(contourIndex, false)
	if err != nil {
		return err
	}
	i, err := p.absolutePointIndex(ci, contourPointIndex, false)
	if err != nil {
		return err
	}
	if _, n := p.contourBounds(ci); n == 1 {
		return structErrorf("deleting the only point of contour %d would leave it empty", ci)
	}
	p.replacePoints(i, 1, PackedContour{})
	p.moveEndPoints(ci, -1)
	return nil
}

// SetPoint replaces the point with the absolute index pointIndex.
func (p *PackedPath) SetPoint(pointIndex int, pt Point) error {
	if err := p.checkPointIndex(pointIndex); err != nil {
		return err
	}
	p.Coordinates[2*pointIndex] = pt.X
	p.Coordinates[2*pointIndex+1] = pt.Y
	p.PointTypes[pointIndex] = pt.Type()
	p.PointAttributes.set(len(p.PointTypes), pointIndex, pt.Attrs)
	return nil
}

// SetContourPoint replaces point contourPointIndex of contour contourIndex.
func (p *PackedPath) SetContourPoint(contourIndex, contourPointIndex int, pt Point) error {
	i, err := p.AbsolutePointIndex(contourIndex, contourPointIndex)
	if err != nil {
		return err
	}
	return p.SetPoint(i, pt)
}

// SetPointPosition moves the point with the absolute index pointIndex.
func (p *PackedPath) SetPointPosition(pointIndex int, x, y float64) error {
	if err := p.checkPointIndex(pointIndex); err != nil {
		return err
	}
	p.Coordinates[2*pointIndex] = x
	p.Coordinates[2*pointIndex+1] = y
	return nil
}

// SetPointType changes the role and smoothness of the point with the
// absolute index pointIndex.
func (p *PackedPath) SetPointType(pointIndex int, kind PointKind, smooth bool) error {
	if err := p.checkPointIndex(pointIndex); err != nil {
		return err
	}
	p.PointTypes[pointIndex] = MakePointType(kind, smooth)
	return nil
}
