// Package armview draws the arm, its gripper and the status overlay into a
// HAL framebuffer.
package armview

import (
	"errors"
	"image/color"

	"armsim/hal"
	"armsim/sim/camera"
	"armsim/sim/chain"
	"armsim/sim/mesh"
	"armsim/sim/quarkgl"
	"armsim/sim/status"

	"github.com/go-gl/mathgl/mgl64"
	"tinygo.org/x/tinyfont"
	"tinygo.org/x/tinyfont/proggy"
)

var (
	ErrNoFramebuffer = errors.New("armview: RGB565 framebuffer required")
	ErrNonFinitePose = errors.New("armview: pose is not finite")
)

const (
	gridHalf   = 10
	axisLength = 2

	platformRadius = 0.5
	platformHeight = 0.3

	shoulderRadius = 0.25
	elbowRadius    = 0.2

	cylinderSegments = 16
	sphereSlices     = 12
	sphereStacks     = 8
)

var linkRadius = [3]float32{0.15, 0.12, 0.1}

var (
	colorBackground = quarkgl.RGBf(0.1, 0.1, 0.15)
	colorGrid       = quarkgl.RGBf(0.3, 0.3, 0.3)
	colorPlatform   = quarkgl.RGBf(0.5, 0.5, 0.5)
	colorJoint      = quarkgl.RGBf(0.6, 0.6, 0.6)
	colorPalm       = quarkgl.RGBf(0.9, 0.9, 0.1)
	colorFinger     = quarkgl.RGBf(0.8, 0.8, 0.1)

	colorLinks = [3]quarkgl.Color{
		quarkgl.RGBf(0.8, 0.2, 0.2),
		quarkgl.RGBf(0.2, 0.8, 0.2),
		quarkgl.RGBf(0.2, 0.2, 0.8),
	}

	colorText = color.RGBA{R: 0xE0, G: 0xE8, B: 0xFF, A: 0xFF}
	colorHint = color.RGBA{R: 0x90, G: 0xA0, B: 0xB8, A: 0xFF}
)

// Frame is everything one render needs.
type Frame struct {
	Pose       chain.Pose
	GripperDeg float64
	Rig        *camera.Rig
	Status     status.Values
}

// View owns the scene for one arm. Create it once; Render is called per tick
// from the step goroutine.
type View struct {
	fb     hal.Framebuffer
	target *quarkgl.RGB565Target

	r *quarkgl.Renderer
	s *quarkgl.Scene

	platform int
	links    [3]int
	joints   [2]int
	palm     int
	segments [2]int
	tips     [2]int

	font       tinyfont.Fonter
	fontHeight int16
}

// New builds the scene for an arm with the given link lengths.
func New(fb hal.Framebuffer, links chain.LinkSpec) (*View, error) {
	if fb == nil || fb.Format() != hal.PixelFormatRGB565 {
		return nil, ErrNoFramebuffer
	}
	if err := links.Validate(); err != nil {
		return nil, err
	}
	w, h := fb.Width(), fb.Height()

	v := &View{
		fb:         fb,
		target:     &quarkgl.RGB565Target{Buf: fb.Buffer(), Stride: fb.StrideBytes(), W: w, H: h},
		r:          quarkgl.NewRenderer(w, h, true),
		s:          quarkgl.CreateScene(16),
		font:       &proggy.TinySZ8pt7b,
		fontHeight: 10,
	}
	v.r.ClearColor = colorBackground

	v.s.Light.Mode = quarkgl.LightAmbientDirectional
	v.s.Light.Ambient = 0.3
	v.s.Light.Dir = quarkgl.Normalize(quarkgl.V3(-0.4, -0.9, -0.3))
	v.s.Light.DirAmount = 0.7

	v.s.AddLines(mesh.Grid(gridHalf, colorGrid))
	v.s.AddLines(mesh.Axes(axisLength))

	add := func(m quarkgl.Mesh, c quarkgl.Color) int {
		m.Material.BaseColor = c
		return v.s.AddMesh(m)
	}

	v.platform = add(mesh.Cylinder(platformRadius, platformHeight, cylinderSegments), colorPlatform)
	for i, l := range [3]float64{links.L1, links.L2, links.L3} {
		v.links[i] = add(mesh.Cylinder(linkRadius[i], float32(l), cylinderSegments), colorLinks[i])
	}
	v.joints[0] = add(mesh.Sphere(shoulderRadius, sphereSlices, sphereStacks), colorJoint)
	v.joints[1] = add(mesh.Sphere(elbowRadius, sphereSlices, sphereStacks), colorJoint)
	v.palm = add(mesh.Cylinder(chain.PalmRadius, chain.PalmHeight, cylinderSegments), colorPalm)
	for i := range v.segments {
		v.segments[i] = add(mesh.Box(chain.FingerWidth, chain.FingerLength, chain.FingerWidth), colorFinger)
		v.tips[i] = add(mesh.Box(chain.TipWidth, chain.TipLength, chain.TipDepth), colorFinger)
	}

	return v, nil
}

// Scene exposes the underlying scene, mainly for tests.
func (v *View) Scene() *quarkgl.Scene { return v.s }

// Render draws f and presents the framebuffer.
func (v *View) Render(f Frame) error {
	if !f.Pose.Finite() {
		return ErrNonFinitePose
	}
	if f.Rig != nil {
		f.Rig.Apply(&v.s.Camera)
	}
	v.place(f.Pose, f.GripperDeg)

	v.r.Render(v.target, v.s)
	v.drawOverlay(f.Status)
	return v.fb.Present()
}

func (v *View) place(p chain.Pose, gripperDeg float64) {
	set := func(id int, m mgl64.Mat4) {
		v.s.UpdateMeshTransform(id, quarkgl.Mat4From64(m))
	}

	set(v.platform, p.Anchors[chain.AnchorBase].Transform)
	set(v.links[0], p.Anchors[chain.AnchorLink1].Transform)
	set(v.links[1], p.Anchors[chain.AnchorLink2].Transform)
	set(v.links[2], p.Anchors[chain.AnchorLink3].Transform)
	set(v.joints[0], p.Anchors[chain.AnchorShoulder].Transform)
	set(v.joints[1], p.Anchors[chain.AnchorElbow].Transform)

	g := chain.Fingers(p.Tool(), gripperDeg)
	set(v.palm, g.Palm)
	for i, f := range g.Fingers {
		set(v.segments[i], f.Segment)
		set(v.tips[i], f.Tip)
	}
}

func (v *View) drawOverlay(s status.Values) {
	d := quarkgl.FontTarget{T: v.target}
	y := int16(4)
	for i, line := range status.Lines(s) {
		c := colorText
		if i == 0 {
			c = colorHint
		}
		tinyfont.WriteLine(d, v.font, 6, y+v.fontHeight, line, c)
		y += v.fontHeight
	}
}
