package chain

import "github.com/go-gl/mathgl/mgl64"

// Gripper geometry, in tool-frame units.
const (
	PalmRadius = 0.15
	PalmHeight = 0.2

	FingerOffsetX = 0.1
	FingerOffsetY = 0.2
	FingerWidth   = 0.08
	FingerLength  = 0.4

	TipBendDeg = 30
	TipOffsetX = 0.05
	TipOffsetY = 0.1
	TipWidth   = 0.08
	TipLength  = 0.2
	TipDepth   = 0.06
)

// Finger holds the frames of one finger. Both frames are box centers.
type Finger struct {
	Segment mgl64.Mat4
	Tip     mgl64.Mat4
}

// GripperFrames is the gripper geometry placed on a tool frame.
type GripperFrames struct {
	Palm    mgl64.Mat4 // palm cylinder origin (the tool frame)
	Fingers [2]Finger  // left, right
}

// Fingers places the palm and both fingers for an opening angle in degrees.
// Each finger turns by the opening about the palm's Z axis toward the other
// finger (left by -opening, right by +opening); the tips bend by TipBendDeg.
func Fingers(tool mgl64.Mat4, openingDeg float64) GripperFrames {
	g := GripperFrames{Palm: tool}
	top := tool.Mul4(mgl64.Translate3D(0, PalmHeight, 0))
	for i, side := range [2]float64{-1, 1} {
		seg := top.
			Mul4(mgl64.HomogRotate3DZ(mgl64.DegToRad(side * openingDeg))).
			Mul4(mgl64.Translate3D(side*FingerOffsetX, FingerOffsetY, 0))
		tip := seg.
			Mul4(mgl64.Translate3D(0, FingerLength/2, 0)).
			Mul4(mgl64.HomogRotate3DZ(mgl64.DegToRad(side * TipBendDeg))).
			Mul4(mgl64.Translate3D(side*TipOffsetX, TipOffsetY, 0))
		g.Fingers[i] = Finger{Segment: seg, Tip: tip}
	}
	return g
}
