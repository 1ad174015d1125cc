package outline

import (
	"fmt"
	"maps"
	"reflect"
	"strings"
)

// PointKind is the curve role of an unpacked [Point].
type PointKind int

const (
	// OnCurveKind is the zero value: a point on the outline.
	OnCurveKind PointKind = iota
	// OffCurveCubicKind is a control point of a cubic segment.
	OffCurveCubicKind
	// OffCurveQuadKind is a control point of a quadratic segment.
	OffCurveQuadKind
)

func (k PointKind) String() string {
	switch k {
	case OnCurveKind:
		return ""
	case OffCurveCubicKind:
		return "cubic"
	case OffCurveQuadKind:
		return "quad"
	default:
		return fmt.Sprintf("PointKind(%d)", int(k))
	}
}

// ParsePointKind is the inverse of [PointKind.String].
func ParsePointKind(s string) (PointKind, error) {
	switch s {
	case "":
		return OnCurveKind, nil
	case "cubic":
		return OffCurveCubicKind, nil
	case "quad":
		return OffCurveQuadKind, nil
	default:
		return 0, structErrorf("unknown point type %q", s)
	}
}

// PointType is the packed code of a point's role and smoothness, as stored
// in [PackedPath.PointTypes].
//
// The low three bits select on-curve, off-curve quadratic or off-curve
// cubic; bit 3 marks a smooth on-curve point. Only the four named values
// are valid.
type PointType uint8

const (
	OnCurve       PointType = 0x00
	OffCurveQuad  PointType = 0x01
	OffCurveCubic PointType = 0x02
	OnCurveSmooth PointType = 0x08

	smoothFlag    PointType = 0x08
	pointTypeMask PointType = 0x07
)

// MakePointType packs a role and smoothness. Smoothness of off-curve
// points is not representable and is dropped.
func MakePointType(kind PointKind, smooth bool) PointType {
	switch kind {
	case OffCurveCubicKind:
		return OffCurveCubic
	case OffCurveQuadKind:
		return OffCurveQuad
	}
	if smooth {
		return OnCurveSmooth
	}
	return OnCurve
}

func (pt PointType) Kind() PointKind {
	switch pt & pointTypeMask {
	case OffCurveCubic:
		return OffCurveCubicKind
	case OffCurveQuad:
		return OffCurveQuadKind
	default:
		return OnCurveKind
	}
}

func (pt PointType) IsOffCurve() bool { return pt&pointTypeMask != OnCurve }

// IsSmooth reports whether pt is a smooth on-curve point.
func (pt PointType) IsSmooth() bool { return !pt.IsOffCurve() && pt&smoothFlag != 0 }

func (pt PointType) valid() bool {
	switch pt {
	case OnCurve, OnCurveSmooth, OffCurveQuad, OffCurveCubic:
		return true
	default:
		return false
	}
}

func (pt PointType) String() string {
	switch pt {
	case OnCurve:
		return "OnCurve"
	case OnCurveSmooth:
		return "OnCurveSmooth"
	case OffCurveQuad:
		return "OffCurveQuad"
	case OffCurveCubic:
		return "OffCurveCubic"
	default:
		return fmt.Sprintf("PointType(%#x)", uint8(pt))
	}
}

// Attrs is the open-ended metadata of a single point, for example
// interpolation-compatibility tags.
type Attrs map[string]any

// Clone returns a deep copy of a. Nested maps and slices of the kinds
// produced by plain value decoding are copied too.
func (a Attrs) Clone() Attrs {
	if a == nil {
		return nil
	}
	out := make(Attrs, len(a))
	for k, v := range a {
		out[k] = cloneValue(v)
	}
	return out
}

func cloneValue(v any) any {
	switch v := v.(type) {
	case map[string]any:
		return map[string]any(Attrs(v).Clone())
	case Attrs:
		return v.Clone()
	case []any:
		out := make([]any, len(v))
		for i, e := range v {
			out[i] = cloneValue(e)
		}
		return out
	default:
		return v
	}
}

// Equal reports whether a and o hold deeply equal values. A nil and an
// empty Attrs are not equal: the former means "no metadata".
func (a Attrs) Equal(o Attrs) bool {
	if (a == nil) != (o == nil) {
		return false
	}
	return maps.EqualFunc(a, o, func(x, y any) bool { return reflect.DeepEqual(x, y) })
}

// Point is a point of an unpacked [Contour].
type Point struct {
	X, Y float64
	Kind PointKind
	// Smooth is only meaningful for on-curve points.
	Smooth bool
	// Attrs is nil for points without metadata.
	Attrs Attrs
}

// Pos returns the point's position.
func (p Point) Pos() Vec2 { return Vec2{p.X, p.Y} }

func (p Point) IsOnCurve() bool { return p.Kind == OnCurveKind }

// Type returns the packed code of the point.
func (p Point) Type() PointType { return MakePointType(p.Kind, p.Smooth) }

// Equal reports whether p and o are structurally equal.
func (p Point) Equal(o Point) bool {
	return p.X == o.X &&
		p.Y == o.Y &&
		p.Kind == o.Kind &&
		p.Smooth == o.Smooth &&
		p.Attrs.Equal(o.Attrs)
}

func (p Point) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "{x: %g, y: %g", p.X, p.Y)
	if p.Kind != OnCurveKind {
		fmt.Fprintf(&sb, ", type: %s", p.Kind)
	}
	if p.Smooth {
		sb.WriteString(", smooth")
	}
	if p.Attrs != nil {
		fmt.Fprintf(&sb, ", attrs: %v", map[string]any(p.Attrs))
	}
	sb.WriteString("}")
	return sb.String()
}
