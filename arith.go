package outline

// CheckCompatible reports whether p and o can be combined arithmetically:
// they must have the same number of contours, and corresponding contours
// must have the same number of points. Point types and closed flags are
// not compared.
func (p *PackedPath) CheckCompatible(o *PackedPath) error {
	if len(p.ContourInfo) != len(o.ContourInfo) {
		return &InterpolationError{Reason: "contour count", Contour: -1, Left: len(p.ContourInfo), Right: len(o.ContourInfo)}
	}
	for ci := range p.ContourInfo {
		_, ln := p.contourBounds(ci)
		_, rn := o.contourBounds(ci)
		if ln != rn {
			return &InterpolationError{Reason: "point count", Contour: ci, Left: ln, Right: rn}
		}
	}
	return nil
}

// Add returns the sum of p and o, coordinate by coordinate. Point types,
// smoothness and closed flags come from p. A point's metadata comes from p
// if it has any, and from o otherwise, so (p+o)-o gives back p's
// coordinates but keeps the metadata o filled in.
func (p *PackedPath) Add(o *PackedPath) (*PackedPath, error) {
	return p.combine(o, func(a, b float64) float64 { return a + b })
}

// Sub returns the difference of p and o. See [PackedPath.Add].
func (p *PackedPath) Sub(o *PackedPath) (*PackedPath, error) {
	return p.combine(o, func(a, b float64) float64 { return a - b })
}

func (p *PackedPath) combine(o *PackedPath, op func(a, b float64) float64) (*PackedPath, error) {
	if err := p.CheckCompatible(o); err != nil {
		return nil, err
	}
	out := p.Copy()
	for i := range out.Coordinates {
		out.Coordinates[i] = op(p.Coordinates[i], o.Coordinates[i])
	}
	if o.PointAttributes.Materialized() {
		out.PointAttributes.materialize(len(out.PointTypes))
		for i := range out.PointTypes {
			if out.PointAttributes.entries[i] == nil {
				out.PointAttributes.entries[i] = o.PointAttributes.entries[i].Clone()
			}
		}
	}
	return out, nil
}

// AddCoordinates returns a copy of p with coords added to its coordinates.
// coords must hold exactly two entries per point.
func (p *PackedPath) AddCoordinates(coords []float64) (*PackedPath, error) {
	return p.combineCoordinates(coords, func(a, b float64) float64 { return a + b })
}

// SubCoordinates returns a copy of p with coords subtracted from its
// coordinates.
func (p *PackedPath) SubCoordinates(coords []float64) (*PackedPath, error) {
	return p.combineCoordinates(coords, func(a, b float64) float64 { return a - b })
}

func (p *PackedPath) combineCoordinates(coords []float64, op func(a, b float64) float64) (*PackedPath, error) {
	if len(coords) != len(p.Coordinates) {
		return nil, &InterpolationError{Reason: "coordinate count", Contour: -1, Left: len(p.Coordinates), Right: len(coords)}
	}
	out := p.Copy()
	for i := range out.Coordinates {
		out.Coordinates[i] = op(p.Coordinates[i], coords[i])
	}
	return out, nil
}

// MulScalar returns a copy of p with every coordinate multiplied by s.
func (p *PackedPath) MulScalar(s float64) *PackedPath {
	out := p.Copy()
	for i := range out.Coordinates {
		out.Coordinates[i] *= s
	}
	return out
}

// AppendPath adds the contours of o after the contours of p. If either
// path has a materialized metadata column, so does the result.
func (p *PackedPath) AppendPath(o *PackedPath) {
	offset := len(p.PointTypes)
	coords, types, infos := o.Coordinates, o.PointTypes, o.ContourInfo
	attrs, materialized := o.PointAttributes.entries, o.PointAttributes.Materialized()

	p.Coordinates = append(p.Coordinates, coords...)
	p.PointTypes = append(p.PointTypes, types...)
	for _, info := range infos {
		info.EndPoint += offset
		p.ContourInfo = append(p.ContourInfo, info)
	}
	if materialized || p.PointAttributes.Materialized() {
		p.PointAttributes.materialize(offset)
		p.PointAttributes.splice(offset, offset, 0, attrs, len(types))
	}
}

// Concat returns a new path holding the contours of p followed by those
// of o.
func (p *PackedPath) Concat(o *PackedPath) *PackedPath {
	out := p.Copy()
	out.AppendPath(o)
	return out
}
