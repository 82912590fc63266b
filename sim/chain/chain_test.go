package chain

import (
	"errors"
	"math"
	"testing"

	"armsim/sim/joint"

	"github.com/go-gl/mathgl/mgl64"
)

const eps = 1e-9

func near(a, b mgl64.Vec3) bool {
	return a.ApproxEqualThreshold(b, eps)
}

func TestEvaluateStraightUp(t *testing.T) {
	p := Evaluate(joint.State{}, DefaultLinks())
	if !near(p.EndEffector, mgl64.Vec3{0, 4.5, 0}) {
		t.Fatalf("end effector = %v, want (0, 4.5, 0)", p.EndEffector)
	}
	if math.Abs(p.Reach-4.5) > eps {
		t.Fatalf("reach = %v, want 4.5", p.Reach)
	}
}

func TestEvaluateShoulderHorizontal(t *testing.T) {
	p := Evaluate(joint.State{Shoulder: 90}, DefaultLinks())
	if !near(p.EndEffector, mgl64.Vec3{0, 2, 2.5}) {
		t.Fatalf("end effector = %v, want (0, 2, 2.5)", p.EndEffector)
	}
	want := math.Sqrt(4 + 6.25)
	if math.Abs(p.Reach-want) > eps {
		t.Fatalf("reach = %v, want %v", p.Reach, want)
	}
	if math.Abs(p.Reach-3.2016) > 1e-4 {
		t.Fatalf("reach = %v, want ~3.2016", p.Reach)
	}
}

func TestEvaluateIsDeterministic(t *testing.T) {
	j := joint.State{Base: 33.3, Shoulder: -41, Elbow: 72.5, WristRoll: 190}
	a := Evaluate(j, DefaultLinks())
	b := Evaluate(j, DefaultLinks())
	if a != b {
		t.Fatalf("pose differs between calls:\n%+v\n%+v", a, b)
	}
}

func TestBaseCarriesTheWholeArm(t *testing.T) {
	p := Evaluate(joint.State{Base: 90, Shoulder: 90}, DefaultLinks())
	if !near(p.EndEffector, mgl64.Vec3{2.5, 2, 0}) {
		t.Fatalf("end effector = %v, want (2.5, 2, 0)", p.EndEffector)
	}
	if !near(p.Anchors[AnchorElbow].Position(), mgl64.Vec3{1.5, 2, 0}) {
		t.Fatalf("elbow = %v, want (1.5, 2, 0)", p.Anchors[AnchorElbow].Position())
	}
}

func TestElbowBendsInShoulderFrame(t *testing.T) {
	p := Evaluate(joint.State{Shoulder: 90, Elbow: 90}, DefaultLinks())
	// Link 3 points straight down once both pitch joints are at 90.
	if !near(p.Anchors[AnchorElbow].Position(), mgl64.Vec3{0, 2, 1.5}) {
		t.Fatalf("elbow = %v", p.Anchors[AnchorElbow].Position())
	}
	if !near(p.EndEffector, mgl64.Vec3{0, 1, 1.5}) {
		t.Fatalf("end effector = %v, want (0, 1, 1.5)", p.EndEffector)
	}

	q := Evaluate(joint.State{Elbow: 90}, DefaultLinks())
	if !near(q.EndEffector, mgl64.Vec3{0, 3.5, 1}) {
		t.Fatalf("end effector = %v, want (0, 3.5, 1)", q.EndEffector)
	}
}

func TestWristRollKeepsEndEffector(t *testing.T) {
	j := joint.State{Base: 20, Shoulder: 30, Elbow: -45}
	a := Evaluate(j, DefaultLinks())
	j.WristRoll = 123
	b := Evaluate(j, DefaultLinks())
	if !near(a.EndEffector, b.EndEffector) {
		t.Fatalf("wrist roll moved the end effector: %v -> %v", a.EndEffector, b.EndEffector)
	}
	if a.Tool() == b.Tool() {
		t.Fatal("wrist roll did not change the tool orientation")
	}
}

func TestReachIsMeasuredFromWorldOrigin(t *testing.T) {
	links := DefaultLinks()
	for _, base := range []float64{0, 45, 137, 270, 720} {
		p := Evaluate(joint.State{Base: base, Shoulder: 35, Elbow: -60}, links)
		if math.Abs(p.Reach-p.EndEffector.Len()) > eps {
			t.Fatalf("base %v: reach %v != |p| %v", base, p.Reach, p.EndEffector.Len())
		}
		ref := Evaluate(joint.State{Shoulder: 35, Elbow: -60}, links)
		if math.Abs(p.Reach-ref.Reach) > eps {
			t.Fatalf("base %v changed reach: %v vs %v", base, p.Reach, ref.Reach)
		}
		if p.Reach > links.Total()+eps {
			t.Fatalf("reach %v exceeds total length %v", p.Reach, links.Total())
		}
	}
}

func TestPeriodicAnglesGiveSamePose(t *testing.T) {
	a := Evaluate(joint.State{Base: 30, WristRoll: -10}, DefaultLinks())
	b := Evaluate(joint.State{Base: 30 + 360, WristRoll: 350}, DefaultLinks())
	if !near(a.EndEffector, b.EndEffector) {
		t.Fatalf("%v != %v", a.EndEffector, b.EndEffector)
	}
	if !a.Tool().ApproxEqualThreshold(b.Tool(), eps) {
		t.Fatal("tool frames differ")
	}
}

func TestAnchorsInCompositionOrder(t *testing.T) {
	links := DefaultLinks()
	p := Evaluate(joint.State{}, links)
	wantY := [AnchorCount]float64{0, 0, 2, 2, 3.5, 3.5, 4.5, 4.5}
	for k, a := range p.Anchors {
		if a.Kind != AnchorKind(k) {
			t.Fatalf("anchor %d has kind %s", k, a.Kind)
		}
		if math.Abs(a.Position().Y()-wantY[k]) > eps {
			t.Fatalf("%s at y=%v, want %v", a.Kind, a.Position().Y(), wantY[k])
		}
	}
	if p.Anchors[AnchorLink2].Length != links.L2 || p.Anchors[AnchorElbow].Length != 0 {
		t.Fatal("link lengths not recorded on link anchors only")
	}
}

func TestPoseFinite(t *testing.T) {
	if !Evaluate(joint.State{Shoulder: 10}, DefaultLinks()).Finite() {
		t.Fatal("expected finite pose")
	}
	if Evaluate(joint.State{Base: math.NaN()}, DefaultLinks()).Finite() {
		t.Fatal("expected NaN to be detected")
	}
}

func TestLinkSpecValidate(t *testing.T) {
	if err := DefaultLinks().Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}
	err := LinkSpec{L1: 1, L2: 0, L3: 1}.Validate()
	if !errors.Is(err, ErrInvalidLink) {
		t.Fatalf("expected ErrInvalidLink, got %v", err)
	}
}
