package outline

import (
	"errors"
	"testing"
)

func square(types ...PointType) *PackedPath {
	return &PackedPath{
		Coordinates: []float64{0, 0, 0, 100, 100, 100, 100, 0},
		PointTypes:  types,
		ContourInfo: []ContourInfo{{EndPoint: len(types) - 1, Closed: true}},
	}
}

func TestDraw(t *testing.T) {
	tests := []struct {
		name string
		in   *PackedPath
		want BezPath
	}{
		{
			"quad",
			square(OnCurve, OffCurveQuad, OffCurveQuad, OffCurveQuad),
			BezPath{
				MoveTo(Vec(0, 0)),
				QuadTo(Vec(0, 100), Vec(50, 100)),
				QuadTo(Vec(100, 100), Vec(100, 50)),
				QuadTo(Vec(100, 0), Vec(0, 0)),
				ClosePath(),
			},
		},
		{
			"quad blob",
			square(OffCurveQuad, OffCurveQuad, OffCurveQuad, OffCurveQuad),
			BezPath{
				MoveTo(Vec(50, 0)),
				QuadTo(Vec(0, 0), Vec(0, 50)),
				QuadTo(Vec(0, 100), Vec(50, 100)),
				QuadTo(Vec(100, 100), Vec(100, 50)),
				QuadTo(Vec(100, 0), Vec(50, 0)),
				ClosePath(),
			},
		},
		{
			"cubic",
			square(OnCurve, OffCurveCubic, OffCurveCubic, OnCurve),
			BezPath{
				MoveTo(Vec(0, 0)),
				CubicTo(Vec(0, 100), Vec(100, 100), Vec(100, 0)),
				LineTo(Vec(0, 0)),
				ClosePath(),
			},
		},
		{
			"cubic with one off-curve point",
			&PackedPath{
				Coordinates: []float64{0, 0, 0, 100, 100, 0},
				PointTypes:  []PointType{OnCurve, OffCurveCubic, OnCurve},
				ContourInfo: []ContourInfo{{EndPoint: 2, Closed: true}},
			},
			BezPath{
				MoveTo(Vec(0, 0)),
				QuadTo(Vec(0, 100), Vec(100, 0)),
				LineTo(Vec(0, 0)),
				ClosePath(),
			},
		},
		{
			"cubic with three off-curve points",
			&PackedPath{
				Coordinates: []float64{0, 0, 0, 100, 55, 55, 100, 100, 100, 0},
				PointTypes:  []PointType{OnCurve, OffCurveCubic, OffCurveCubic, OffCurveCubic, OnCurve},
				ContourInfo: []ContourInfo{{EndPoint: 4, Closed: true}},
			},
			BezPath{
				MoveTo(Vec(0, 0)),
				CubicTo(Vec(0, 100), Vec(100, 100), Vec(100, 0)),
				LineTo(Vec(0, 0)),
				ClosePath(),
			},
		},
		{
			"contours starting with off-curve points",
			&PackedPath{
				Coordinates: []float64{
					0, 0, 0, 100, 100, 100, 100, 0,
					0, 0, 0, 100, 100, 100, 100, 0,
				},
				PointTypes: []PointType{
					OffCurveCubic, OffCurveCubic, OnCurve, OnCurve,
					OnCurve, OffCurveCubic, OffCurveCubic, OnCurve,
				},
				ContourInfo: []ContourInfo{{EndPoint: 3, Closed: true}, {EndPoint: 7, Closed: true}},
			},
			BezPath{
				MoveTo(Vec(100, 100)),
				LineTo(Vec(100, 0)),
				CubicTo(Vec(0, 0), Vec(0, 100), Vec(100, 100)),
				ClosePath(),
				MoveTo(Vec(0, 0)),
				CubicTo(Vec(0, 100), Vec(100, 100), Vec(100, 0)),
				LineTo(Vec(0, 0)),
				ClosePath(),
			},
		},
		{
			"open contour",
			&PackedPath{
				Coordinates: []float64{0, 0, 0, 100, 50, 150, 100, 100, 150, 50},
				PointTypes:  []PointType{OnCurve, OnCurve, OffCurveQuad, OnCurve, OffCurveQuad},
				ContourInfo: []ContourInfo{{EndPoint: 4}},
			},
			BezPath{
				MoveTo(Vec(0, 0)),
				LineTo(Vec(0, 100)),
				QuadTo(Vec(50, 150), Vec(100, 100)),
			},
		},
		{"empty", &PackedPath{}, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			diff(t, tt.want, tt.in.BezPath())
		})
	}
}

func TestPackedPathSegmentPen(t *testing.T) {
	p := &PackedPath{}
	p.MoveTo(Vec(0, 0))
	p.LineTo(Vec(0, 100))
	p.CubicTo(Vec(30, 130), Vec(70, 130), Vec(100, 100))
	p.QuadSplineTo(Vec(130, 70), Vec(130, 30), Vec(100, 0))
	p.ClosePath()
	p.MoveTo(Vec(200, 0))
	p.QuadTo(Vec(250, 50), Vec(300, 0))

	if err := p.Validate(); err != nil {
		t.Fatal(err)
	}
	diff(t, []ContourInfo{{EndPoint: 7, Closed: true}, {EndPoint: 10}}, p.ContourInfo)

	want := BezPath{
		MoveTo(Vec(0, 0)),
		LineTo(Vec(0, 100)),
		CubicTo(Vec(30, 130), Vec(70, 130), Vec(100, 100)),
		QuadTo(Vec(130, 70), Vec(130, 50)),
		QuadTo(Vec(130, 30), Vec(100, 0)),
		LineTo(Vec(0, 0)),
		ClosePath(),
		MoveTo(Vec(200, 0)),
		QuadTo(Vec(250, 50), Vec(300, 0)),
	}
	diff(t, want, p.BezPath())
}

func TestSegmentPenKeepsMetadataColumn(t *testing.T) {
	p := &PackedPath{PointAttributes: MaterializedAttributes()}
	p.MoveTo(Vec(0, 0))
	p.LineTo(Vec(1, 1))
	if err := p.Validate(); err != nil {
		t.Fatal(err)
	}
	diff(t, MaterializedAttributes(nil, nil), p.PointAttributes)
}

func TestSegmentPenWithoutContour(t *testing.T) {
	for name, f := range map[string]func(p *PackedPath){
		"LineTo":    func(p *PackedPath) { p.LineTo(Vec(0, 0)) },
		"ClosePath": func(p *PackedPath) { p.ClosePath() },
	} {
		func() {
			defer func() {
				if recover() == nil {
					t.Errorf("%s did not panic", name)
				}
			}()
			f(&PackedPath{})
		}()
	}
}

func TestContourSegments(t *testing.T) {
	p := complexTestPath()
	tests := []struct {
		contour int
		want    []Segment
	}{
		{0, []Segment{
			{Kind: SegmentQuad, PointIndices: []int{0, 1, 2}},
			{Kind: SegmentLine, PointIndices: []int{2, 0}},
		}},
		{1, []Segment{
			{Kind: SegmentLine, PointIndices: []int{3, 4}},
			{Kind: SegmentLine, PointIndices: []int{4, 5}},
			{Kind: SegmentLine, PointIndices: []int{5, 3}},
		}},
		{-1, []Segment{
			{Kind: SegmentQuad, PointIndices: []int{6, 7, 8, 9}},
			{Kind: SegmentLine, PointIndices: []int{9, 6}},
		}},
	}
	for _, tt := range tests {
		got, err := p.ContourSegments(tt.contour)
		if err != nil {
			t.Fatal(err)
		}
		diff(t, tt.want, got)
	}

	open := simpleTestPath(false)
	got, err := open.ContourSegments(0)
	if err != nil {
		t.Fatal(err)
	}
	diff(t, []Segment{
		{Kind: SegmentLine, PointIndices: []int{0, 1}},
		{Kind: SegmentLine, PointIndices: []int{1, 2}},
		{Kind: SegmentLine, PointIndices: []int{2, 3}},
	}, got)

	dangling := &PackedPath{
		Coordinates: []float64{0, 0, 1, 1, 2, 2, 3, 3},
		PointTypes:  []PointType{OffCurveCubic, OnCurve, OnCurve, OffCurveCubic},
		ContourInfo: []ContourInfo{{EndPoint: 3}},
	}
	got, err = dangling.ContourSegments(0)
	if err != nil {
		t.Fatal(err)
	}
	diff(t, []Segment{{Kind: SegmentLine, PointIndices: []int{1, 2}}}, got)

	got, err = packedTestData[4].ContourSegments(0)
	if err != nil {
		t.Fatal(err)
	}
	diff(t, []Segment{{Kind: SegmentQuadBlob, PointIndices: []int{0, 1, 2, 3}}}, got)
}

func TestDrawContour(t *testing.T) {
	p := complexTestPath()
	var bp BezPath
	if err := p.DrawContour(&bp, 1); err != nil {
		t.Fatal(err)
	}
	want := BezPath{
		MoveTo(Vec(6, 7)),
		LineTo(Vec(8, 9)),
		LineTo(Vec(10, 11)),
		LineTo(Vec(6, 7)),
		ClosePath(),
	}
	diff(t, want, bp)

	err := p.DrawContour(&bp, 3)
	if !errors.Is(err, ErrIndexOutOfRange) {
		t.Errorf("got error %v, want ErrIndexOutOfRange", err)
	}
	diff(t, &IndexError{What: "contourIndex", Index: 3, Len: 3}, err)
}

func TestSegmentKindString(t *testing.T) {
	for k, want := range map[SegmentKind]string{
		SegmentLine:     "line",
		SegmentQuad:     "quad",
		SegmentCubic:    "cubic",
		SegmentQuadBlob: "quadBlob",
	} {
		if got := k.String(); got != want {
			t.Errorf("got %q, want %q", got, want)
		}
	}
}
