package geovolmath

import "testing"

func TestVec3Add(t *testing.T) {
	v := V3(1.0, 2.0, 3.0)
	w := V3(4.0, 5.0, 6.0)
	got := v.Add(w)
	want := V3(5.0, 7.0, 9.0)
	if got != want {
		t.Errorf("Add() = %v, want %v", got, want)
	}
}

func TestVec3Cross(t *testing.T) {
	x := V3(1.0, 0.0, 0.0)
	y := V3(0.0, 1.0, 0.0)
	got := x.Cross(y)
	want := V3(0.0, 0.0, 1.0)
	if !got.Approx(want, 1e-12) {
		t.Errorf("Cross() = %v, want %v", got, want)
	}
}

func TestVec3NormalizeZero(t *testing.T) {
	v := V3(0.0, 0.0, 0.0)
	got := v.Normalize()
	if !got.IsZero() {
		t.Errorf("Normalize() of zero vector = %v, want zero", got)
	}
}

func TestVec3Normalize(t *testing.T) {
	v := V3(3.0, 4.0, 0.0)
	got := v.Normalize()
	if !got.Approx(V3(0.6, 0.8, 0.0), 1e-9) {
		t.Errorf("Normalize() = %v, want (0.6, 0.8, 0)", got)
	}
	if want := 1.0; absT(got.Length()-want) > 1e-9 {
		t.Errorf("Normalize() length = %v, want %v", got.Length(), want)
	}
}

func TestVec3Lerp(t *testing.T) {
	a := V3(0.0, 0.0, 0.0)
	b := V3(10.0, 10.0, 10.0)
	got := a.Lerp(b, 0.5)
	want := V3(5.0, 5.0, 5.0)
	if got != want {
		t.Errorf("Lerp(0.5) = %v, want %v", got, want)
	}
}

func TestVec3Generic32(t *testing.T) {
	v := V3[float32](1, 2, 2)
	if got, want := v.Length(), float32(3); absT(got-want) > 1e-6 {
		t.Errorf("Length() = %v, want %v", got, want)
	}
}

func TestVec2Cross(t *testing.T) {
	v := V2(1.0, 0.0)
	w := V2(0.0, 1.0)
	if got := v.Cross(w); got != 1.0 {
		t.Errorf("Cross() = %v, want 1", got)
	}
}

func TestClamp(t *testing.T) {
	cases := []struct{ v, lo, hi, want float64 }{
		{-1, 0, 1, 0},
		{2, 0, 1, 1},
		{0.5, 0, 1, 0.5},
	}
	for _, c := range cases {
		if got := Clamp(c.v, c.lo, c.hi); got != c.want {
			t.Errorf("Clamp(%v, %v, %v) = %v, want %v", c.v, c.lo, c.hi, got, c.want)
		}
	}
}
