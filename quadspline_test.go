package outline

import (
	"slices"
	"testing"

	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestQuadSpline(t *testing.T) {
	p1 := Vec(1, 1)
	p2 := Vec(2, 2)
	p3 := Vec(3, 3)
	p5 := Vec(5, 5)
	p8 := Vec(8, 8)
	tests := []struct {
		in  QuadBSpline
		out []QuadBez
	}{
		{make(QuadBSpline, 0), nil},
		{make(QuadBSpline, 1), nil},
		{make(QuadBSpline, 2), nil},
		{QuadBSpline{p1, p2, p3}, []QuadBez{{p1, p2, p3}}},
		{QuadBSpline{p1, p3, p5, p8}, []QuadBez{
			{p1, p3, p3.Midpoint(p5)},
			{p3.Midpoint(p5), p5, p8},
		}},
	}

	for _, tt := range tests {
		got := slices.Collect(tt.in.Quads())
		diff(t, tt.out, got, cmpopts.EquateEmpty())
	}
}

func TestQuadSplineDraw(t *testing.T) {
	var bp BezPath
	bp.MoveTo(Vec(0, 0))
	QuadBSpline{Vec(0, 0), Vec(0, 100), Vec(100, 100), Vec(100, 0)}.Draw(&bp)
	want := BezPath{
		MoveTo(Vec(0, 0)),
		QuadTo(Vec(0, 100), Vec(50, 100)),
		QuadTo(Vec(100, 100), Vec(100, 0)),
	}
	diff(t, want, bp)
}
