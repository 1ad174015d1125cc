package outline

import (
	"math"
	"testing"
)

func assertNear(t *testing.T, p0 Vec2, p1 Vec2, epsilon float64) {
	t.Helper()
	if d := p1.Sub(p0).Hypot(); d > epsilon {
		t.Fatalf("got %s, expected %s", p0, p1)
	}
}

func TestAffineBasic(t *testing.T) {
	const epsilon = 1e-9
	p := Vec(3, 4)

	assertNear(t, p.Transform(Identity), p, epsilon)
	assertNear(t, p.Transform(Scale(2, 2)), Vec(6, 8), epsilon)
	assertNear(t, p.Transform(Rotate(0)), p, epsilon)
	assertNear(t, p.Transform(Rotate(math.Pi/2)), Vec(-4, 3), epsilon)
	assertNear(t, p.Transform(Translate(Vec(5, 6))), Vec(8, 10), epsilon)
	assertNear(t, p.Transform(Skew(0, 0)), p, epsilon)
	assertNear(t, p.Transform(Skew(2, 4)), Vec(11, 16), epsilon)
	assertNear(t, p.Transform(FlipY), Vec(3, -4), epsilon)
	assertNear(t, p.Transform(FlipX), Vec(-3, 4), epsilon)
}

func TestAffineMul(t *testing.T) {
	const epsilon = 1e-9
	a1 := Affine{1, 2, 3, 4, 5, 6}
	a2 := Affine{0.1, 1.2, 2.3, 3.4, 4.5, 5.6}

	for _, p := range []Vec2{Vec(1, 0), Vec(0, 1), Vec(1, 1)} {
		assertNear(t, p.Transform(a2).Transform(a1), p.Transform(a1.Mul(a2)), epsilon)
	}
}

func TestAffineInvert(t *testing.T) {
	const epsilon = 1e-9
	a := Affine{0.1, 1.2, 2.3, 3.4, 4.5, 5.6}
	aInv := a.Invert()

	for _, p := range []Vec2{Vec(1, 0), Vec(0, 1), Vec(1, 1)} {
		assertNear(t, p.Transform(aInv).Transform(a), p, epsilon)
		assertNear(t, p.Transform(a).Transform(aInv), p, epsilon)
	}
}

func TestAffineThen(t *testing.T) {
	const epsilon = 1e-9
	aff := Identity.ThenScale(2, 3).ThenTranslate(Vec(10, 20))
	assertNear(t, Vec(1, 1).Transform(aff), Vec(12, 23), epsilon)
	assertNear(t, aff.Translation(), Vec(10, 20), epsilon)
	if d := aff.Determinant(); math.Abs(d-6) > epsilon {
		t.Errorf("got determinant %v, want 6", d)
	}
}

func TestTransformRectBoundingBox(t *testing.T) {
	r := Rect{0, 0, 10, 20}
	got := Rotate(math.Pi / 2).TransformRectBoundingBox(r)
	want := Rect{-20, 0, 0, 10}
	for i, pair := range [][2]float64{{got.X0, want.X0}, {got.Y0, want.Y0}, {got.X1, want.X1}, {got.Y1, want.Y1}} {
		if math.Abs(pair[0]-pair[1]) > 1e-9 {
			t.Errorf("coordinate %d: got %v, want %v", i, pair[0], pair[1])
		}
	}
}
