// Package app wires the arm simulation into a HAL step function.
package app

import (
	"errors"
	"fmt"
	"log/slog"

	"armsim/hal"
	"armsim/internal/buildinfo"
	"armsim/internal/logging"
	"armsim/internal/profile"
	"armsim/sim/camera"
	"armsim/sim/chain"
	"armsim/sim/input"
	"armsim/sim/joint"
	"armsim/sim/status"
	"armsim/sim/tasks/armview"
	"armsim/sim/telemetry"
)

// ErrQuit is returned by Step once the user asked to quit or the input
// source ran out. Hosts treat it as a clean exit.
var ErrQuit = hal.ErrQuit

type Config struct {
	Profile profile.Profile

	// Source overrides the keyboard, e.g. with a replay script.
	Source   input.Source
	Bindings input.Bindings

	Metrics *telemetry.Metrics
	Logger  *slog.Logger
}

// Sim is one running arm. Step must be called from a single goroutine.
type Sim struct {
	h   hal.HAL
	log *slog.Logger

	links chain.LinkSpec
	ctrl  *joint.Controller
	rig   *camera.Rig
	src   input.Source
	view  *armview.View

	metrics *telemetry.Metrics

	pose     chain.Pose
	values   status.Values
	line     string
	ticks    uint64
	lastOpen bool
}

// New builds a simulation on h. A zero Config.Profile means the reference arm.
func New(h hal.HAL, cfg Config) (*Sim, error) {
	if h == nil {
		return nil, errors.New("app: nil HAL")
	}
	p := cfg.Profile
	if p == (profile.Profile{}) {
		p = profile.Default()
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}

	log := cfg.Logger
	if log == nil {
		log = logging.New(h.Logger(), slog.LevelInfo)
	}

	s := &Sim{
		h:       h,
		log:     log,
		links:   p.LinkSpec(),
		ctrl:    joint.NewController(p.JointConfig()),
		rig:     camera.NewRig(p.CameraConfig()),
		src:     cfg.Source,
		metrics: cfg.Metrics,
	}

	if s.src == nil {
		var kbd hal.Keyboard
		if in := h.Input(); in != nil {
			kbd = in.Keyboard()
		}
		s.src = input.NewKeyboardSource(kbd, cfg.Bindings)
	}

	if d := h.Display(); d != nil {
		if fb := d.Framebuffer(); fb != nil {
			view, err := armview.New(fb, s.links)
			if err != nil {
				return nil, fmt.Errorf("app: %w", err)
			}
			s.view = view
			log.Info("renderer ready", "width", fb.Width(), "height", fb.Height())
		}
	}

	s.evaluate()
	log.Info("armsim starting",
		"build", buildinfo.Long(),
		"profile", p.Name,
		"l1", s.links.L1, "l2", s.links.L2, "l3", s.links.L3,
	)
	return s, nil
}

// Step advances the simulation by dt seconds and redraws.
func (s *Sim) Step(dt float64) (err error) {
	defer s.recoverStep(&err)

	snap, ok := s.src.Next()
	if !ok {
		s.log.Info("input finished", "ticks", s.ticks)
		return ErrQuit
	}

	if derr := joint.CheckDelta(dt); derr != nil {
		s.log.Warn("tick delta rejected", "error", derr)
	}
	s.ctrl.Tick(snap.Joints, dt)
	s.rig.Tick(snap.Camera, dt)
	s.ticks++

	if s.ctrl.QuitRequested() {
		s.log.Info("quit requested", "ticks", s.ticks)
		return ErrQuit
	}

	s.evaluate()

	g := s.ctrl.Gripper()
	if g.Open != s.lastOpen {
		s.lastOpen = g.Open
		s.log.Info("gripper toggled", "state", s.values.GripperLabel())
	}

	if d := s.h.Display(); d != nil {
		d.SetTitle(s.line)
	}

	if s.view != nil {
		rerr := s.view.Render(armview.Frame{
			Pose:       s.pose,
			GripperDeg: g.Angle,
			Rig:        s.rig,
			Status:     s.values,
		})
		switch {
		case errors.Is(rerr, armview.ErrNonFinitePose):
			s.log.Error("skipping frame", "error", rerr, "joints", fmt.Sprintf("%+v", s.ctrl.Joints()))
		case rerr != nil:
			return rerr
		}
	}

	s.metrics.Observe(telemetry.Sample{
		Joints:   s.ctrl.Joints(),
		Gripper:  g,
		Pose:     s.pose,
		Rejected: s.ctrl.RejectedDeltas(),
	})
	return nil
}

func (s *Sim) evaluate() {
	j := s.ctrl.Joints()
	s.pose = chain.Evaluate(j, s.links)
	s.values = status.FromPose(s.pose, s.ctrl.Gripper(), j)
	s.line = status.Line(s.values)
}

func (s *Sim) Pose() chain.Pose       { return s.pose }
func (s *Sim) Joints() joint.State    { return s.ctrl.Joints() }
func (s *Sim) Gripper() joint.Gripper { return s.ctrl.Gripper() }
func (s *Sim) Rig() camera.Rig        { return *s.rig }
func (s *Sim) Status() string         { return s.line }
func (s *Sim) Ticks() uint64          { return s.ticks }

// NewStepFunc adapts New to the host runners. A construction error is
// returned from the first step.
func NewStepFunc(cfg Config) func(hal.HAL) hal.StepFunc {
	return func(h hal.HAL) hal.StepFunc {
		s, err := New(h, cfg)
		if err != nil {
			return func(float64) error { return err }
		}
		return s.Step
	}
}
