package joint

import "math"

// Controller mutates a State and Gripper in response to per-tick input.
type Controller struct {
	cfg Config

	joints  State
	gripper Gripper

	prevToggle bool
	quit       bool
	rejected   uint64
}

// NewController returns a controller with all joints at zero and the gripper
// closed. An invalid cfg falls back to DefaultConfig.
func NewController(cfg Config) *Controller {
	if cfg.Validate() != nil {
		cfg = DefaultConfig()
	}
	return &Controller{cfg: cfg}
}

func (c *Controller) Config() Config      { return c.cfg }
func (c *Controller) Joints() State       { return c.joints }
func (c *Controller) Gripper() Gripper    { return c.gripper }
func (c *Controller) QuitRequested() bool { return c.quit }

// RejectedDeltas counts ticks whose dt was negative or non-finite.
func (c *Controller) RejectedDeltas() uint64 { return c.rejected }

// Tick advances the controller by dt seconds.
//
// A negative or non-finite dt is treated as zero. Any other dt moves a held
// joint by exactly rate*dt.
func (c *Controller) Tick(in Input, dt float64) {
	if CheckDelta(dt) != nil {
		c.rejected++
		dt = 0
	}

	step := c.cfg.RateDegPerSec * dt
	c.joints.Base += signed(in.BaseInc, in.BaseDec) * step
	c.joints.Shoulder += signed(in.ShoulderInc, in.ShoulderDec) * step
	c.joints.Elbow += signed(in.ElbowInc, in.ElbowDec) * step
	c.joints.WristRoll += signed(in.WristInc, in.WristDec) * step

	c.joints.Shoulder = clamp(c.joints.Shoulder, c.cfg.ShoulderMin, c.cfg.ShoulderMax)
	c.joints.Elbow = clamp(c.joints.Elbow, c.cfg.ElbowMin, c.cfg.ElbowMax)

	if in.Toggle && !c.prevToggle {
		c.gripper.Open = !c.gripper.Open
	}
	c.prevToggle = in.Toggle

	c.animateGripper(dt)

	if in.Quit {
		c.quit = true
	}
}

func (c *Controller) animateGripper(dt float64) {
	k := c.cfg.GripperLerpRate * dt
	// k >= 1 would land on or past the target in one step.
	if k >= 1 {
		k = math.Nextafter(1, 0)
	}
	target := c.gripper.Target(c.cfg.GripperOpenDeg)
	c.gripper.Angle += (target - c.gripper.Angle) * k
	c.gripper.Angle = clamp(c.gripper.Angle, 0, c.cfg.GripperOpenDeg)
}

func signed(inc, dec bool) float64 {
	var d float64
	if inc {
		d++
	}
	if dec {
		d--
	}
	return d
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
