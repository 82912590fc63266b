// Package chain composes joint angles and link lengths into the arm's pose.
//
// Frames are built parent to child: every rotation is about the running
// frame's own axis and every translation moves along the running frame's Y
// axis, so turning an earlier joint carries every later link with it.
//
// Axes: Y is vertical, X is the lateral axis the shoulder and elbow bend
// about. The wrist rolls about its local Y axis.
package chain

import (
	"errors"
	"fmt"
	"math"

	"armsim/sim/joint"

	"github.com/go-gl/mathgl/mgl64"
)

var ErrInvalidLink = errors.New("invalid link length")

// LinkSpec holds the three fixed link lengths.
type LinkSpec struct {
	L1 float64 // base to shoulder
	L2 float64 // shoulder to elbow
	L3 float64 // elbow to wrist
}

// DefaultLinks returns the reference arm.
func DefaultLinks() LinkSpec {
	return LinkSpec{L1: 2.0, L2: 1.5, L3: 1.0}
}

func (l LinkSpec) Validate() error {
	for i, v := range [...]float64{l.L1, l.L2, l.L3} {
		if math.IsNaN(v) || math.IsInf(v, 0) || v <= 0 {
			return fmt.Errorf("%w: L%d = %v", ErrInvalidLink, i+1, v)
		}
	}
	return nil
}

// Total is the reach of the fully extended arm.
func (l LinkSpec) Total() float64 { return l.L1 + l.L2 + l.L3 }

// AnchorKind names a frame recorded while composing the chain.
type AnchorKind uint8

const (
	AnchorBase     AnchorKind = iota // world origin, base platform
	AnchorLink1                      // after base yaw; origin of link 1
	AnchorShoulder                   // top of link 1, shoulder joint
	AnchorLink2                      // after shoulder pitch; origin of link 2
	AnchorElbow                      // top of link 2, elbow joint
	AnchorLink3                      // after elbow pitch; origin of link 3
	AnchorWrist                      // top of link 3, before wrist roll
	AnchorTool                       // after wrist roll; gripper mount

	AnchorCount
)

var anchorNames = [AnchorCount]string{
	"base", "link1", "shoulder", "link2", "elbow", "link3", "wrist", "tool",
}

func (k AnchorKind) String() string {
	if k >= AnchorCount {
		return fmt.Sprintf("anchor(%d)", uint8(k))
	}
	return anchorNames[k]
}

// Anchor is one frame of the chain in world coordinates.
//
// Length is the link length drawn from this frame along +Y; it is zero for
// joint and mount anchors.
type Anchor struct {
	Kind      AnchorKind
	Transform mgl64.Mat4
	Length    float64
}

// Position is the anchor origin in world coordinates.
func (a Anchor) Position() mgl64.Vec3 { return a.Transform.Col(3).Vec3() }

// Pose is the derived state of the arm for one tick.
type Pose struct {
	Anchors     [AnchorCount]Anchor
	EndEffector mgl64.Vec3
	Reach       float64
}

// Tool returns the end-effector frame.
func (p Pose) Tool() mgl64.Mat4 { return p.Anchors[AnchorTool].Transform }

// Finite reports whether every component of the pose is a finite number.
func (p Pose) Finite() bool {
	for _, a := range p.Anchors {
		for _, v := range a.Transform {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return false
			}
		}
	}
	for _, v := range p.EndEffector {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return !math.IsNaN(p.Reach) && !math.IsInf(p.Reach, 0)
}

// Evaluate composes the chain for the given joint angles.
func Evaluate(j joint.State, links LinkSpec) Pose {
	var p Pose
	m := mgl64.Ident4()
	mark := func(k AnchorKind, length float64) {
		p.Anchors[k] = Anchor{Kind: k, Transform: m, Length: length}
	}

	mark(AnchorBase, 0)

	m = m.Mul4(mgl64.HomogRotate3DY(mgl64.DegToRad(j.Base)))
	mark(AnchorLink1, links.L1)
	m = m.Mul4(mgl64.Translate3D(0, links.L1, 0))
	mark(AnchorShoulder, 0)

	m = m.Mul4(mgl64.HomogRotate3DX(mgl64.DegToRad(j.Shoulder)))
	mark(AnchorLink2, links.L2)
	m = m.Mul4(mgl64.Translate3D(0, links.L2, 0))
	mark(AnchorElbow, 0)

	m = m.Mul4(mgl64.HomogRotate3DX(mgl64.DegToRad(j.Elbow)))
	mark(AnchorLink3, links.L3)
	m = m.Mul4(mgl64.Translate3D(0, links.L3, 0))
	mark(AnchorWrist, 0)

	m = m.Mul4(mgl64.HomogRotate3DY(mgl64.DegToRad(j.WristRoll)))
	mark(AnchorTool, 0)

	p.EndEffector = m.Col(3).Vec3()
	p.Reach = p.EndEffector.Len()
	return p
}
