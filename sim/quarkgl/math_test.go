package quarkgl

import (
	"math"
	"testing"
)

func TestMat4MulIdentity(t *testing.T) {
	a := Mat4Identity()
	b := Mat4Translate(V3(1, 2, 3))
	if got := Mat4Mul(a, b); got != b {
		t.Fatalf("identity*a mismatch")
	}
	if got := Mat4Mul(b, a); got != b {
		t.Fatalf("a*identity mismatch")
	}
}

func TestLookAtNotIdentity(t *testing.T) {
	m := Mat4LookAt(V3(0, 0, 3), V3(0, 0, 0), V3(0, 1, 0))
	if m == Mat4Identity() {
		t.Fatalf("lookAt unexpectedly identity")
	}
	// The target sits on the -Z axis of the view space.
	p := TransformPoint(m, V3(0, 0, 0))
	if math.Abs(float64(p.X)) > 1e-6 || math.Abs(float64(p.Y)) > 1e-6 || math.Abs(float64(p.Z+3)) > 1e-6 {
		t.Fatalf("target in view space = %+v, want (0, 0, -3)", p)
	}
}

func TestRotateXCarriesYOntoZ(t *testing.T) {
	p := TransformPoint(Mat4RotateX(Deg(90)), V3(0, 1, 0))
	if math.Abs(float64(p.Y)) > 1e-6 || math.Abs(float64(p.Z-1)) > 1e-6 {
		t.Fatalf("RotateX(90)*Y = %+v, want (0, 0, 1)", p)
	}
}

func TestMat4From64(t *testing.T) {
	var m [16]float64
	for i := range m {
		m[i] = float64(i) + 0.5
	}
	got := Mat4From64(m)
	for i := range got {
		if got[i] != Scalar(m[i]) {
			t.Fatalf("element %d = %v, want %v", i, got[i], m[i])
		}
	}
}
