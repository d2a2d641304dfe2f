package types

import (
	"math"
	"math/rand"
	"testing"
)

func TestNormalize(t *testing.T) {
	n, err := XYZ(3, 0, 4).Normalize()
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(n.Len()-1) > Epsilon {
		t.Fatalf("expected unit vector; got length %f", n.Len())
	}
	if !n.ApproxEqual(XYZ(0.6, 0, 0.8)) {
		t.Fatalf("expected (0.6, 0, 0.8); got %s", n)
	}

	if _, err = (Vec3{}).Normalize(); err != ErrZeroVector {
		t.Fatalf("expected ErrZeroVector; got %v", err)
	}
}

func TestCross(t *testing.T) {
	type spec struct {
		a, b, exp Vec3
	}
	specs := []spec{
		{XYZ(1, 0, 0), XYZ(0, 1, 0), XYZ(0, 0, 1)},
		{XYZ(0, 1, 0), XYZ(1, 0, 0), XYZ(0, 0, -1)},
		{XYZ(1, 2, 3), XYZ(2, 4, 6), XYZ(0, 0, 0)},
	}

	for index, s := range specs {
		if got := s.a.Cross(s.b); !got.ApproxEqual(s.exp) {
			t.Fatalf("[spec %d] expected %s; got %s", index, s.exp, got)
		}
	}
}

func TestReflectIsInvolution(t *testing.T) {
	rnd := rand.New(rand.NewSource(7))
	randomUnit := func() Vec3 {
		for {
			v := XYZ(rnd.Float64()*2-1, rnd.Float64()*2-1, rnd.Float64()*2-1)
			if n, err := v.Normalize(); err == nil {
				return n
			}
		}
	}

	for i := 0; i < 1000; i++ {
		d, n := randomUnit(), randomUnit()
		if IsZero(d.Dot(n)) {
			continue
		}
		r, ok := Reflect(d, n)
		if !ok {
			t.Fatalf("[iter %d] expected reflection to be defined", i)
		}
		rr, ok := Reflect(r, n)
		if !ok {
			t.Fatalf("[iter %d] expected second reflection to be defined", i)
		}
		if rr.Sub(d).Len() > 1e-9 {
			t.Fatalf("[iter %d] expected reflect(reflect(d)) = %s; got %s", i, d, rr)
		}
	}
}

func TestReflectPerpendicular(t *testing.T) {
	if _, ok := Reflect(XYZ(1, 0, 0), XYZ(0, 1, 0)); ok {
		t.Fatal("expected reflection of a perpendicular direction to be undefined")
	}
}

func TestOrthogonalTo(t *testing.T) {
	for _, v := range []Vec3{XYZ(1, 0, 0), XYZ(0, 1, 0), XYZ(0, 0, 1), XYZ(1, 1, 1).MustNormalize(), XYZ(-3, 2, 0.5).MustNormalize()} {
		o := OrthogonalTo(v)
		if !IsZero(AlignZero(o.Dot(v))) {
			t.Fatalf("expected %s to be orthogonal to %s", o, v)
		}
		if math.Abs(o.Len()-1) > 1e-12 {
			t.Fatalf("expected unit vector; got length %f", o.Len())
		}
	}
}

func TestOffsetRay(t *testing.T) {
	n := XYZ(0, 0, 1)

	r, err := NewOffsetRay(XYZ(0, 0, 0), XYZ(0, 0, 2), n)
	if err != nil {
		t.Fatal(err)
	}
	if !r.Origin.ApproxEqual(XYZ(0, 0, RayOffset)) {
		t.Fatalf("expected origin to move along the normal; got %s", r.Origin)
	}
	if !r.Direction.ApproxEqual(XYZ(0, 0, 1)) {
		t.Fatalf("expected normalized direction; got %s", r.Direction)
	}

	r, _ = NewOffsetRay(XYZ(0, 0, 0), XYZ(1, 0, -1), n)
	if !r.Origin.ApproxEqual(XYZ(0, 0, -RayOffset)) {
		t.Fatalf("expected origin to move against the normal; got %s", r.Origin)
	}

	if _, err = NewRay(XYZ(1, 1, 1), Vec3{}); err != ErrZeroVector {
		t.Fatalf("expected ErrZeroVector; got %v", err)
	}
}

func TestColorClamp(t *testing.T) {
	c := RGB(-10, 127.5, 900).RGBA()
	if c.R != 0 || c.G != 127 || c.B != 255 || c.A != 255 {
		t.Fatalf("expected (0, 127, 255, 255); got %v", c)
	}

	avg := Average([]Color{RGB(10, 20, 30), RGB(30, 40, 50)})
	if avg != RGB(20, 30, 40) {
		t.Fatalf("expected %s; got %s", RGB(20, 30, 40), avg)
	}
	if Average(nil) != Black {
		t.Fatal("expected average of empty list to be black")
	}
}
