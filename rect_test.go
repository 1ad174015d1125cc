package outline

import (
	"testing"
)

func TestRectFromPoints(t *testing.T) {
	got := NewRectFromPoints(Vec(10, 0), Vec(0, 20))
	diff(t, Rect{0, 0, 10, 20}, got)
	if w, h := got.Width(), got.Height(); w != 10 || h != 20 {
		t.Errorf("got size %vx%v, want 10x20", w, h)
	}
	diff(t, Vec(5, 10), got.Center())
}

func TestRectContains(t *testing.T) {
	r := NewRectFromCenter(Vec(100, 100), 5)
	tests := []struct {
		pt   Vec2
		want bool
	}{
		{Vec(100, 100), true},
		{Vec(95, 100), true},
		{Vec(105, 105), true},
		{Vec(105.5, 100), false},
		{Vec(100, 94), false},
	}
	for _, tt := range tests {
		if got := r.Contains(tt.pt); got != tt.want {
			t.Errorf("%s.Contains(%s) = %t, want %t", r, tt.pt, got, tt.want)
		}
	}
}

func TestRectUnion(t *testing.T) {
	r := Rect{0, 0, 10, 10}
	diff(t, Rect{-5, 0, 10, 30}, r.Union(Rect{-5, 5, 0, 30}))
	diff(t, Rect{0, -3, 12, 10}, r.UnionPoint(Vec(12, -3)))
	diff(t, Rect{-1, -2, 11, 12}, r.Inflate(1, 2))
}
