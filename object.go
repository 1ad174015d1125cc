package outline

import (
	"encoding/json"
	"fmt"
	"math"
)

// Object returns p as a tree of plain values (maps, slices, numbers,
// booleans and strings), the shape used by every serialization format:
//
//	{
//		"coordinates": [x0, y0, x1, y1, ...],
//		"pointTypes": [t0, t1, ...],
//		"contourInfo": [{"endPoint": e, "isClosed": c}, ...],
//		"pointAttributes": null | [null | {...}, ...]
//	}
func (p *PackedPath) Object() map[string]any {
	coords := make([]any, len(p.Coordinates))
	for i, c := range p.Coordinates {
		coords[i] = c
	}
	types := make([]any, len(p.PointTypes))
	for i, pt := range p.PointTypes {
		types[i] = int(pt)
	}
	infos := make([]any, len(p.ContourInfo))
	for i, info := range p.ContourInfo {
		infos[i] = map[string]any{"endPoint": info.EndPoint, "isClosed": info.Closed}
	}
	var attrs any
	if p.PointAttributes.Materialized() {
		entries := make([]any, len(p.PointAttributes.entries))
		for i, a := range p.PointAttributes.entries {
			if a != nil {
				entries[i] = map[string]any(a.Clone())
			}
		}
		attrs = entries
	}
	return map[string]any{
		"coordinates":     coords,
		"pointTypes":      types,
		"contourInfo":     infos,
		"pointAttributes": attrs,
	}
}

// PackedPathFromObject is the inverse of [PackedPath.Object]. Numbers may
// be of any Go numeric type. A missing "pointAttributes" key means the
// metadata column is absent. The result is validated.
func PackedPathFromObject(obj map[string]any) (*PackedPath, error) {
	p := &PackedPath{}
	coords, err := objList(obj, "coordinates")
	if err != nil {
		return nil, err
	}
	p.Coordinates = make([]float64, len(coords))
	for i, v := range coords {
		if p.Coordinates[i], err = objFloat(v, "coordinates"); err != nil {
			return nil, err
		}
	}

	types, err := objList(obj, "pointTypes")
	if err != nil {
		return nil, err
	}
	p.PointTypes = make([]PointType, len(types))
	for i, v := range types {
		n, err := objInt(v, "pointTypes")
		if err != nil {
			return nil, err
		}
		if n < 0 || n > math.MaxUint8 {
			return nil, structErrorf("point type %d out of range", n)
		}
		p.PointTypes[i] = PointType(n)
	}

	infos, err := objList(obj, "contourInfo")
	if err != nil {
		return nil, err
	}
	p.ContourInfo = make([]ContourInfo, len(infos))
	for i, v := range infos {
		m, ok := v.(map[string]any)
		if !ok {
			return nil, structErrorf("contourInfo[%d] is %T, not an object", i, v)
		}
		if p.ContourInfo[i].EndPoint, err = objInt(m["endPoint"], "endPoint"); err != nil {
			return nil, err
		}
		if c, ok := m["isClosed"]; ok && c != nil {
			b, ok := c.(bool)
			if !ok {
				return nil, structErrorf("isClosed is %T, not a boolean", c)
			}
			p.ContourInfo[i].Closed = b
		}
	}

	if raw := obj["pointAttributes"]; raw != nil {
		list, ok := raw.([]any)
		if !ok {
			return nil, structErrorf("pointAttributes is %T, not a list", raw)
		}
		entries := make([]Attrs, len(list))
		for i, v := range list {
			if entries[i], err = objAttrs(v); err != nil {
				return nil, err
			}
		}
		p.PointAttributes = PointAttributes{materialized: true, entries: entries}
	}

	if err := p.Validate(); err != nil {
		return nil, err
	}
	return p, nil
}

// Object returns p as a tree of plain values:
//
//	{"contours": [{"points": [{"x": x, "y": y, "type": "cubic", "smooth": true, "attrs": {...}}, ...], "isClosed": c}, ...]}
//
// The "type", "smooth" and "attrs" keys are omitted when they hold their
// default.
func (p Path) Object() map[string]any {
	contours := make([]any, len(p.Contours))
	for ci, c := range p.Contours {
		pts := make([]any, len(c.Points))
		for i, pt := range c.Points {
			m := map[string]any{"x": pt.X, "y": pt.Y}
			if pt.Kind != OnCurveKind {
				m["type"] = pt.Kind.String()
			}
			if pt.Smooth {
				m["smooth"] = true
			}
			if pt.Attrs != nil {
				m["attrs"] = map[string]any(pt.Attrs.Clone())
			}
			pts[i] = m
		}
		contours[ci] = map[string]any{"points": pts, "isClosed": c.Closed}
	}
	return map[string]any{"contours": contours}
}

// PathFromObject is the inverse of [Path.Object].
func PathFromObject(obj map[string]any) (Path, error) {
	list, err := objList(obj, "contours")
	if err != nil {
		return Path{}, err
	}
	p := Path{Contours: make([]Contour, len(list))}
	for ci, v := range list {
		cm, ok := v.(map[string]any)
		if !ok {
			return Path{}, structErrorf("contour %d is %T, not an object", ci, v)
		}
		pts, err := objList(cm, "points")
		if err != nil {
			return Path{}, err
		}
		c := Contour{Points: make([]Point, len(pts))}
		if closed, ok := cm["isClosed"].(bool); ok {
			c.Closed = closed
		}
		for i, v := range pts {
			if c.Points[i], err = objPoint(v); err != nil {
				return Path{}, fmt.Errorf("contour %d, point %d: %w", ci, i, err)
			}
		}
		p.Contours[ci] = c
	}
	return p, nil
}

func objPoint(v any) (Point, error) {
	m, ok := v.(map[string]any)
	if !ok {
		return Point{}, structErrorf("point is %T, not an object", v)
	}
	var pt Point
	var err error
	if pt.X, err = objFloat(m["x"], "x"); err != nil {
		return Point{}, err
	}
	if pt.Y, err = objFloat(m["y"], "y"); err != nil {
		return Point{}, err
	}
	if t, ok := m["type"]; ok && t != nil {
		s, ok := t.(string)
		if !ok {
			return Point{}, structErrorf("type is %T, not a string", t)
		}
		if pt.Kind, err = ParsePointKind(s); err != nil {
			return Point{}, err
		}
	}
	if s, ok := m["smooth"]; ok && s != nil {
		b, ok := s.(bool)
		if !ok {
			return Point{}, structErrorf("smooth is %T, not a boolean", s)
		}
		pt.Smooth = b
	}
	if pt.Attrs, err = objAttrs(m["attrs"]); err != nil {
		return Point{}, err
	}
	return pt, nil
}

func objList(obj map[string]any, key string) ([]any, error) {
	v, ok := obj[key]
	if !ok || v == nil {
		return nil, nil
	}
	list, ok := v.([]any)
	if !ok {
		return nil, structErrorf("%s is %T, not a list", key, v)
	}
	return list, nil
}

func objAttrs(v any) (Attrs, error) {
	switch v := v.(type) {
	case nil:
		return nil, nil
	case map[string]any:
		return Attrs(v).Clone(), nil
	case Attrs:
		return v.Clone(), nil
	default:
		return nil, structErrorf("attrs is %T, not an object", v)
	}
}

func objFloat(v any, what string) (float64, error) {
	switch v := v.(type) {
	case float64:
		return v, nil
	case float32:
		return float64(v), nil
	case int:
		return float64(v), nil
	case int8:
		return float64(v), nil
	case int16:
		return float64(v), nil
	case int32:
		return float64(v), nil
	case int64:
		return float64(v), nil
	case uint:
		return float64(v), nil
	case uint8:
		return float64(v), nil
	case uint16:
		return float64(v), nil
	case uint32:
		return float64(v), nil
	case uint64:
		return float64(v), nil
	case json.Number:
		f, err := v.Float64()
		if err != nil {
			return 0, structErrorf("%s: %s", what, err)
		}
		return f, nil
	default:
		return 0, structErrorf("%s is %T, not a number", what, v)
	}
}

func objInt(v any, what string) (int, error) {
	f, err := objFloat(v, what)
	if err != nil {
		return 0, err
	}
	if f != math.Trunc(f) || math.Abs(f) > math.MaxInt32 {
		return 0, structErrorf("%s is %g, not an integer", what, f)
	}
	return int(f), nil
}

func (p *PackedPath) MarshalJSON() ([]byte, error) {
	return json.Marshal(p.Object())
}

func (p *PackedPath) UnmarshalJSON(data []byte) error {
	var obj map[string]any
	if err := json.Unmarshal(data, &obj); err != nil {
		return err
	}
	q, err := PackedPathFromObject(obj)
	if err != nil {
		return err
	}
	*p = *q
	return nil
}

func (p Path) MarshalJSON() ([]byte, error) {
	return json.Marshal(p.Object())
}

func (p *Path) UnmarshalJSON(data []byte) error {
	var obj map[string]any
	if err := json.Unmarshal(data, &obj); err != nil {
		return err
	}
	q, err := PathFromObject(obj)
	if err != nil {
		return err
	}
	*p = q
	return nil
}
