package chain

import (
	"math"
	"testing"

	"armsim/sim/joint"

	"github.com/go-gl/mathgl/mgl64"
)

func origin(m mgl64.Mat4) mgl64.Vec3 { return m.Col(3).Vec3() }

func TestFingersClosedLayout(t *testing.T) {
	g := Fingers(mgl64.Ident4(), 0)
	left := origin(g.Fingers[0].Segment)
	right := origin(g.Fingers[1].Segment)
	if !near(left, mgl64.Vec3{-FingerOffsetX, PalmHeight + FingerOffsetY, 0}) {
		t.Fatalf("left finger at %v", left)
	}
	if !near(right, mgl64.Vec3{FingerOffsetX, PalmHeight + FingerOffsetY, 0}) {
		t.Fatalf("right finger at %v", right)
	}
}

func TestFingersAreMirrored(t *testing.T) {
	for _, open := range []float64{0, 12.5, 30} {
		g := Fingers(mgl64.Ident4(), open)
		for _, pair := range [][2]mgl64.Vec3{
			{origin(g.Fingers[0].Segment), origin(g.Fingers[1].Segment)},
			{origin(g.Fingers[0].Tip), origin(g.Fingers[1].Tip)},
		} {
			l, r := pair[0], pair[1]
			if math.Abs(l.X()+r.X()) > eps || math.Abs(l.Y()-r.Y()) > eps {
				t.Fatalf("open %v: %v and %v not mirrored", open, l, r)
			}
		}
	}
}

func TestOpeningTurnsFingersTogether(t *testing.T) {
	closed := Fingers(mgl64.Ident4(), 0)
	open := Fingers(mgl64.Ident4(), 30)
	gapClosed := origin(closed.Fingers[1].Segment).X() - origin(closed.Fingers[0].Segment).X()
	gapOpen := origin(open.Fingers[1].Segment).X() - origin(open.Fingers[0].Segment).X()
	if gapOpen >= gapClosed {
		t.Fatalf("open gap %v not narrower than closed gap %v", gapOpen, gapClosed)
	}

	// Left finger: Rz(-30) carries its root offset (-0.1, 0.2) to x = -0.1cos30 + 0.2sin30.
	left := origin(open.Fingers[0].Segment)
	wantX := -FingerOffsetX*math.Cos(math.Pi/6) + FingerOffsetY*math.Sin(math.Pi/6)
	if math.Abs(left.X()-wantX) > eps {
		t.Fatalf("left finger x = %v, want %v", left.X(), wantX)
	}
}

func TestFingersFollowTool(t *testing.T) {
	p := Evaluate(joint.State{Shoulder: 90}, DefaultLinks())
	g := Fingers(p.Tool(), 10)
	if g.Palm != p.Tool() {
		t.Fatal("palm is not on the tool frame")
	}
	// Arm horizontal along +Z: fingers extend further along +Z than the wrist.
	if origin(g.Fingers[0].Segment).Z() <= p.EndEffector.Z() {
		t.Fatalf("finger %v not beyond wrist %v", origin(g.Fingers[0].Segment), p.EndEffector)
	}
}
