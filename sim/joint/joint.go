// Package joint owns the arm's joint angles and gripper state and advances them
// once per simulation tick.
//
// All angles are in degrees. The controller is not safe for concurrent use; the
// host calls Tick, then evaluates the chain, then renders, from one goroutine.
package joint

import (
	"errors"
	"fmt"
	"math"
)

const (
	BaseRateDegPerSec = 60
	GripperLerpRate   = 5
	GripperOpenDeg    = 30

	ShoulderMin = -90
	ShoulderMax = 90
	ElbowMin    = -90
	ElbowMax    = 90
)

var ErrInvalidDelta = errors.New("invalid tick delta")

// State holds the four joint angles.
//
// Shoulder and Elbow are bounded by the controller's limits. Base and WristRoll
// are free-spinning; compare them with SameAngle.
type State struct {
	Base      float64
	Shoulder  float64
	Elbow     float64
	WristRoll float64
}

// Gripper is the two-finger end-effector.
type Gripper struct {
	Open  bool
	Angle float64 // current finger opening, 0..GripperOpenDeg
}

// Target returns the opening the fingers are moving towards.
func (g Gripper) Target(openDeg float64) float64 {
	if g.Open {
		return openDeg
	}
	return 0
}

// Input is the per-tick view of the controls the controller reads.
//
// Every field is the held level of its control. Toggle is edge-detected by the
// controller, so a host may pass either the held level or a one-tick pulse.
type Input struct {
	BaseInc, BaseDec         bool
	ShoulderInc, ShoulderDec bool
	ElbowInc, ElbowDec       bool
	WristInc, WristDec       bool

	Toggle bool
	Quit   bool
}

// Config holds the controller's rates and limits.
type Config struct {
	RateDegPerSec   float64
	GripperLerpRate float64
	GripperOpenDeg  float64

	ShoulderMin, ShoulderMax float64
	ElbowMin, ElbowMax       float64
}

// DefaultConfig returns the reference arm's rates and limits.
func DefaultConfig() Config {
	return Config{
		RateDegPerSec:   BaseRateDegPerSec,
		GripperLerpRate: GripperLerpRate,
		GripperOpenDeg:  GripperOpenDeg,
		ShoulderMin:     ShoulderMin,
		ShoulderMax:     ShoulderMax,
		ElbowMin:        ElbowMin,
		ElbowMax:        ElbowMax,
	}
}

// Validate reports whether the config can drive a controller.
func (c Config) Validate() error {
	switch {
	case !finite(c.RateDegPerSec) || c.RateDegPerSec <= 0:
		return fmt.Errorf("joint rate %v: must be positive", c.RateDegPerSec)
	case !finite(c.GripperLerpRate) || c.GripperLerpRate <= 0:
		return fmt.Errorf("gripper lerp rate %v: must be positive", c.GripperLerpRate)
	case !finite(c.GripperOpenDeg) || c.GripperOpenDeg <= 0:
		return fmt.Errorf("gripper opening %v: must be positive", c.GripperOpenDeg)
	case !(c.ShoulderMin < c.ShoulderMax):
		return fmt.Errorf("shoulder limits [%v, %v]: min must be below max", c.ShoulderMin, c.ShoulderMax)
	case !(c.ElbowMin < c.ElbowMax):
		return fmt.Errorf("elbow limits [%v, %v]: min must be below max", c.ElbowMin, c.ElbowMax)
	}
	return nil
}

// CheckDelta returns ErrInvalidDelta if dt cannot advance the simulation.
func CheckDelta(dt float64) error {
	if !finite(dt) || dt < 0 {
		return fmt.Errorf("%w: %v", ErrInvalidDelta, dt)
	}
	return nil
}

func finite(v float64) bool { return !math.IsNaN(v) && !math.IsInf(v, 0) }
