// Package profile loads the optional YAML arm profile.
//
// Every field is optional; anything left out keeps the reference arm's value.
//
//	links:   {l1: 2.0, l2: 1.5, l3: 1.0}
//	joints:  {rate_deg_per_sec: 60, shoulder_min: -90, shoulder_max: 90, elbow_min: -90, elbow_max: 90}
//	gripper: {open_deg: 30, lerp_rate: 5}
//	camera:  {pitch_deg: 20, yaw_deg: 45, distance: 10, min_distance: 5, max_distance: 20}
package profile

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"armsim/sim/camera"
	"armsim/sim/chain"
	"armsim/sim/joint"

	"gopkg.in/yaml.v3"
)

var ErrInvalid = errors.New("invalid profile")

type Links struct {
	L1 float64 `yaml:"l1"`
	L2 float64 `yaml:"l2"`
	L3 float64 `yaml:"l3"`
}

type Joints struct {
	RateDegPerSec float64 `yaml:"rate_deg_per_sec"`
	ShoulderMin   float64 `yaml:"shoulder_min"`
	ShoulderMax   float64 `yaml:"shoulder_max"`
	ElbowMin      float64 `yaml:"elbow_min"`
	ElbowMax      float64 `yaml:"elbow_max"`
}

type Gripper struct {
	OpenDeg  float64 `yaml:"open_deg"`
	LerpRate float64 `yaml:"lerp_rate"`
}

type Camera struct {
	PitchDeg       float64 `yaml:"pitch_deg"`
	YawDeg         float64 `yaml:"yaw_deg"`
	Distance       float64 `yaml:"distance"`
	MinDistance    float64 `yaml:"min_distance"`
	MaxDistance    float64 `yaml:"max_distance"`
	OrbitDegPerSec float64 `yaml:"orbit_deg_per_sec"`
	ZoomPerSec     float64 `yaml:"zoom_per_sec"`
}

// Profile is the arm description the simulator starts from.
type Profile struct {
	Name    string  `yaml:"name"`
	Links   Links   `yaml:"links"`
	Joints  Joints  `yaml:"joints"`
	Gripper Gripper `yaml:"gripper"`
	Camera  Camera  `yaml:"camera"`
}

// Default returns the reference arm.
func Default() Profile {
	l := chain.DefaultLinks()
	j := joint.DefaultConfig()
	c := camera.DefaultConfig()
	return Profile{
		Name:  "reference",
		Links: Links{L1: l.L1, L2: l.L2, L3: l.L3},
		Joints: Joints{
			RateDegPerSec: j.RateDegPerSec,
			ShoulderMin:   j.ShoulderMin,
			ShoulderMax:   j.ShoulderMax,
			ElbowMin:      j.ElbowMin,
			ElbowMax:      j.ElbowMax,
		},
		Gripper: Gripper{OpenDeg: j.GripperOpenDeg, LerpRate: j.GripperLerpRate},
		Camera: Camera{
			PitchDeg:       c.PitchDeg,
			YawDeg:         c.YawDeg,
			Distance:       c.Distance,
			MinDistance:    c.MinDistance,
			MaxDistance:    c.MaxDistance,
			OrbitDegPerSec: c.OrbitDegPerSec,
			ZoomPerSec:     c.ZoomPerSec,
		},
	}
}

// Parse decodes a profile on top of Default and validates the result.
func Parse(data []byte) (Profile, error) {
	p := Default()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&p); err != nil && !errors.Is(err, io.EOF) {
		return Profile{}, fmt.Errorf("parse profile: %w", err)
	}
	if err := p.Validate(); err != nil {
		return Profile{}, err
	}
	return p, nil
}

// Load reads a profile file. An empty path yields Default.
func Load(path string) (Profile, error) {
	if path == "" {
		return Default(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Profile{}, fmt.Errorf("failed to read profile: %w", err)
	}
	p, err := Parse(data)
	if err != nil {
		return Profile{}, fmt.Errorf("%s: %w", path, err)
	}
	return p, nil
}

// Validate checks every section. Link errors wrap chain.ErrInvalidLink, the
// rest wrap ErrInvalid.
func (p Profile) Validate() error {
	if err := p.LinkSpec().Validate(); err != nil {
		return err
	}
	if err := p.JointConfig().Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	c := p.CameraConfig()
	switch {
	case c.MinDistance <= 0 || c.MaxDistance < c.MinDistance:
		return fmt.Errorf("%w: camera distance range [%v, %v]", ErrInvalid, c.MinDistance, c.MaxDistance)
	case c.OrbitDegPerSec < 0 || c.ZoomPerSec < 0:
		return fmt.Errorf("%w: camera rates must not be negative", ErrInvalid)
	}
	return nil
}

func (p Profile) LinkSpec() chain.LinkSpec {
	return chain.LinkSpec{L1: p.Links.L1, L2: p.Links.L2, L3: p.Links.L3}
}

func (p Profile) JointConfig() joint.Config {
	return joint.Config{
		RateDegPerSec:   p.Joints.RateDegPerSec,
		GripperLerpRate: p.Gripper.LerpRate,
		GripperOpenDeg:  p.Gripper.OpenDeg,
		ShoulderMin:     p.Joints.ShoulderMin,
		ShoulderMax:     p.Joints.ShoulderMax,
		ElbowMin:        p.Joints.ElbowMin,
		ElbowMax:        p.Joints.ElbowMax,
	}
}

func (p Profile) CameraConfig() camera.Config {
	return camera.Config{
		PitchDeg:       p.Camera.PitchDeg,
		YawDeg:         p.Camera.YawDeg,
		Distance:       p.Camera.Distance,
		MinDistance:    p.Camera.MinDistance,
		MaxDistance:    p.Camera.MaxDistance,
		OrbitDegPerSec: p.Camera.OrbitDegPerSec,
		ZoomPerSec:     p.Camera.ZoomPerSec,
	}
}
