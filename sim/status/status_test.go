package status

import (
	"fmt"
	"strings"
	"testing"

	"armsim/sim/chain"
	"armsim/sim/joint"
)

func TestLineMatchesPose(t *testing.T) {
	j := joint.State{Shoulder: 90, WristRoll: 12.34}
	p := chain.Evaluate(j, chain.DefaultLinks())
	v := FromPose(p, joint.Gripper{Open: true, Angle: 3}, j)

	line := Line(v)
	want := "4 DOF Robot Arm | X: 0.00 Y: 2.00 Z: 2.50 | Reach: 3.20 | Gripper: Open | Wrist: 12.3° | Controls: "
	if !strings.HasPrefix(line, want) {
		t.Fatalf("line = %q\nwant prefix %q", line, want)
	}
	if v.Reach != p.Reach || v.X != p.EndEffector.X() {
		t.Fatalf("values %+v do not match pose", v)
	}
}

func TestGripperLabel(t *testing.T) {
	if got := (Values{}).GripperLabel(); got != "Closed" {
		t.Fatalf("label = %q", got)
	}
	if got := (Values{GripperOpen: true}).GripperLabel(); got != "Open" {
		t.Fatalf("label = %q", got)
	}
}

func TestLinesCarrySameNumbers(t *testing.T) {
	v := Values{X: 1.005, Y: -2, Z: 0.333, Reach: 2.25}
	lines := Lines(v)
	if len(lines) != 4 || lines[0] != Title {
		t.Fatalf("lines = %q", lines)
	}
	if !strings.Contains(Line(v), lines[1]) {
		t.Fatalf("overlay %q not in title %q", lines[1], Line(v))
	}
	if lines[2] != fmt.Sprintf("Reach: %.2f", v.Reach) {
		t.Fatalf("reach line = %q", lines[2])
	}
}
