// Package camera implements the orbit rig the arm is viewed through.
package camera

import (
	"math"

	"armsim/sim/quarkgl"
)

const (
	DefaultPitchDeg = 20
	DefaultYawDeg   = 45
	DefaultDistance = 10

	MinDistance = 5
	MaxDistance = 20

	OrbitDegPerSec = 30
	ZoomPerSec     = 5

	// PitchLimitDeg keeps the eye off the poles where the look-at basis degenerates.
	PitchLimitDeg = 89
)

// Target is the point the rig orbits, roughly the middle of the arm.
var Target = quarkgl.V3(0, 1.5, 0)

// Input holds the held camera controls for one tick.
type Input struct {
	Up, Down    bool
	Left, Right bool
	ZoomIn      bool
	ZoomOut     bool
}

// Config carries the rig defaults and rates.
type Config struct {
	PitchDeg       float64
	YawDeg         float64
	Distance       float64
	MinDistance    float64
	MaxDistance    float64
	OrbitDegPerSec float64
	ZoomPerSec     float64
}

func DefaultConfig() Config {
	return Config{
		PitchDeg:       DefaultPitchDeg,
		YawDeg:         DefaultYawDeg,
		Distance:       DefaultDistance,
		MinDistance:    MinDistance,
		MaxDistance:    MaxDistance,
		OrbitDegPerSec: OrbitDegPerSec,
		ZoomPerSec:     ZoomPerSec,
	}
}

// Rig is the orbit camera state. It never affects the arm.
type Rig struct {
	orbit quarkgl.OrbitController
	cfg   Config
}

// NewRig returns a rig at the configured starting orbit.
func NewRig(cfg Config) *Rig {
	if cfg.MinDistance <= 0 || cfg.MaxDistance < cfg.MinDistance {
		d := DefaultConfig()
		cfg.MinDistance, cfg.MaxDistance = d.MinDistance, d.MaxDistance
	}
	r := &Rig{
		orbit: quarkgl.OrbitController{
			Target:     Target,
			Yaw:        quarkgl.Deg(cfg.YawDeg),
			Pitch:      -quarkgl.Deg(cfg.PitchDeg),
			Radius:     quarkgl.Scalar(cfg.Distance),
			MinRadius:  quarkgl.Scalar(cfg.MinDistance),
			MaxRadius:  quarkgl.Scalar(cfg.MaxDistance),
			PitchLimit: quarkgl.Deg(PitchLimitDeg),
		},
		cfg: cfg,
	}
	r.orbit.Rotate(0, 0)
	r.orbit.Zoom(0)
	return r
}

// PitchDeg is the elevation of the eye above the target plane.
func (r *Rig) PitchDeg() float64 { return -toDeg(r.orbit.Pitch) }

func (r *Rig) YawDeg() float64 { return toDeg(r.orbit.Yaw) }

func (r *Rig) Distance() float64 { return float64(r.orbit.Radius) }

// Tick moves the rig for the held controls. Invalid dt leaves the rig unchanged.
func (r *Rig) Tick(in Input, dt float64) {
	if math.IsNaN(dt) || math.IsInf(dt, 0) || dt <= 0 {
		return
	}
	orbit := r.cfg.OrbitDegPerSec * dt
	zoom := r.cfg.ZoomPerSec * dt

	var pitch, yaw, dist float64
	if in.Up {
		pitch += orbit
	}
	if in.Down {
		pitch -= orbit
	}
	if in.Left {
		yaw += orbit
	}
	if in.Right {
		yaw -= orbit
	}
	if in.ZoomIn {
		dist -= zoom
	}
	if in.ZoomOut {
		dist += zoom
	}
	r.orbit.Rotate(quarkgl.Deg(yaw), -quarkgl.Deg(pitch))
	r.orbit.Zoom(quarkgl.Scalar(dist))
}

// Apply points cam at the orbit target from the current eye position.
func (r *Rig) Apply(cam *quarkgl.Camera) {
	cam.Up = quarkgl.V3(0, 1, 0)
	r.orbit.Apply(cam)
}

func toDeg(rad quarkgl.Scalar) float64 { return float64(rad) * 180 / math.Pi }
