// Package status formats the arm readout shown in the title bar and overlay.
package status

import (
	"fmt"

	"armsim/sim/chain"
	"armsim/sim/input"
	"armsim/sim/joint"
)

const Title = "4 DOF Robot Arm"

// Values is the data behind one readout. It is copied verbatim from the
// evaluated pose so the text never disagrees with the rendered arm.
type Values struct {
	X, Y, Z     float64
	Reach       float64
	GripperOpen bool
	WristRoll   float64
}

// FromPose collects the readout for the current tick.
func FromPose(p chain.Pose, g joint.Gripper, j joint.State) Values {
	return Values{
		X:           p.EndEffector.X(),
		Y:           p.EndEffector.Y(),
		Z:           p.EndEffector.Z(),
		Reach:       p.Reach,
		GripperOpen: g.Open,
		WristRoll:   j.WristRoll,
	}
}

func (v Values) GripperLabel() string {
	if v.GripperOpen {
		return "Open"
	}
	return "Closed"
}

// Line returns the single-line status used for the window title.
func Line(v Values) string {
	return fmt.Sprintf("%s | X: %.2f Y: %.2f Z: %.2f | Reach: %.2f | Gripper: %s | Wrist: %.1f° | Controls: %s",
		Title, v.X, v.Y, v.Z, v.Reach, v.GripperLabel(), v.WristRoll, input.Legend)
}

// Lines splits the readout for the on-screen overlay.
func Lines(v Values) []string {
	return []string{
		Title,
		fmt.Sprintf("X: %.2f Y: %.2f Z: %.2f", v.X, v.Y, v.Z),
		fmt.Sprintf("Reach: %.2f", v.Reach),
		fmt.Sprintf("Gripper: %s  Wrist: %.1f", v.GripperLabel(), v.WristRoll),
	}
}
