package quarkgl

// Renderer is a fixed-pipeline software renderer.
//
// Create it once and reuse it to avoid allocations.
type Renderer struct {
	Depth      bool
	ClearColor Color

	depthBuf []float32
}

// NewRenderer creates a renderer for a given maximum target size.
//
// If enableDepth is true, a depth buffer of size w*h is allocated.
func NewRenderer(w, h int, enableDepth bool) *Renderer {
	r := &Renderer{
		ClearColor: RGB(0, 0, 0),
	}
	r.EnableDepth(enableDepth, w, h)
	return r
}

func (r *Renderer) EnableDepth(on bool, w, h int) {
	r.Depth = on
	if !on || w <= 0 || h <= 0 {
		r.depthBuf = nil
		return
	}
	if cap(r.depthBuf) < w*h {
		r.depthBuf = make([]float32, w*h)
	} else {
		r.depthBuf = r.depthBuf[:w*h]
	}
}

func (r *Renderer) clearDepth() {
	for i := range r.depthBuf {
		r.depthBuf[i] = 1e9
	}
}

// Render clears the target and draws the scene's line sets, then its meshes.
func (r *Renderer) Render(t Target, s *Scene) {
	if r == nil || t == nil || s == nil {
		return
	}
	w, h := t.Size()
	if w <= 0 || h <= 0 {
		return
	}
	t.Clear(r.ClearColor)

	if r.Depth {
		if len(r.depthBuf) != w*h {
			r.EnableDepth(true, w, h)
		}
		r.clearDepth()
	}

	aspect := Scalar(w) / Scalar(h)
	vp := Mat4Mul(s.Camera.Projection(aspect), s.Camera.View())

	for _, set := range s.lines {
		for _, l := range set {
			r.renderLine(t, w, h, vp, l)
		}
	}
	s.eachMesh(func(m *Mesh) {
		if !m.Enabled {
			return
		}
		r.renderMesh(t, w, h, vp, m, s.Light)
	})
}

func (r *Renderer) renderLine(t Target, w, h int, vp Mat4, l Line) {
	pa := Mat4MulV4(vp, Vec4{X: l.A.X, Y: l.A.Y, Z: l.A.Z, W: 1})
	pb := Mat4MulV4(vp, Vec4{X: l.B.X, Y: l.B.Y, Z: l.B.Z, W: 1})
	// Pull an endpoint behind the eye forward so ground lines passing under
	// the camera still draw their visible part.
	switch {
	case pa.W < minClipW && pb.W < minClipW:
		return
	case pa.W < minClipW:
		pa = lerpToW(pb, pa, minClipW)
	case pb.W < minClipW:
		pb = lerpToW(pa, pb, minClipW)
	}
	a, okA := clipToNDC(pa)
	b, okB := clipToNDC(pb)
	if !okA || !okB {
		return
	}
	a, b, ok := clipSegment(a, b)
	if !ok {
		return
	}
	x0, y0 := ndcToScreen(a, w, h)
	x1, y1 := ndcToScreen(b, w, h)
	r.drawLine(t, w, h, x0, y0, x1, y1, l.Color)
}

func (r *Renderer) renderMesh(t Target, w, h int, vp Mat4, m *Mesh, light Light) {
	if len(m.Vertices) == 0 || len(m.Indices) < 3 {
		return
	}
	model := m.Transform
	if model == (Mat4{}) {
		model = Mat4Identity()
	}
	mvp := Mat4Mul(vp, model)

	for i := 0; i+2 < len(m.Indices); i += 3 {
		i0 := int(m.Indices[i+0])
		i1 := int(m.Indices[i+1])
		i2 := int(m.Indices[i+2])
		if i0 >= len(m.Vertices) || i1 >= len(m.Vertices) || i2 >= len(m.Vertices) {
			continue
		}

		v0 := m.Vertices[i0].Pos
		v1 := m.Vertices[i1].Pos
		v2 := m.Vertices[i2].Pos

		ndc0, ok0 := clipToNDC(Mat4MulV4(mvp, Vec4{X: v0.X, Y: v0.Y, Z: v0.Z, W: 1}))
		ndc1, ok1 := clipToNDC(Mat4MulV4(mvp, Vec4{X: v1.X, Y: v1.Y, Z: v1.Z, W: 1}))
		ndc2, ok2 := clipToNDC(Mat4MulV4(mvp, Vec4{X: v2.X, Y: v2.Y, Z: v2.Z, W: 1}))
		if !ok0 || !ok1 || !ok2 {
			continue
		}

		x0, y0 := ndcToScreen(ndc0, w, h)
		x1, y1 := ndcToScreen(ndc1, w, h)
		x2, y2 := ndcToScreen(ndc2, w, h)

		base := m.Material.BaseColor
		if light.Mode == LightAmbientDirectional {
			// Shade with the world-space face normal so lighting follows the
			// object's rotation.
			n := triangleNormal(TransformPoint(model, v0), TransformPoint(model, v1), TransformPoint(model, v2))
			base = base.MulScalar(lightIntensity(light, n))
		}

		r.fillTriangle(t, w, h, x0, y0, ndc0.Z, x1, y1, ndc1.Z, x2, y2, ndc2.Z, base)
	}
}

const minClipW = 1e-3

// lerpToW moves from in towards out until w reaches the given value.
func lerpToW(in, out Vec4, w Scalar) Vec4 {
	t := (in.W - w) / (in.W - out.W)
	return Vec4{
		X: in.X + t*(out.X-in.X),
		Y: in.Y + t*(out.Y-in.Y),
		Z: in.Z + t*(out.Z-in.Z),
		W: w,
	}
}

type ndcPoint struct {
	X, Y, Z float32
}

// clipToNDC divides by w. Points on or behind the eye plane are rejected.
func clipToNDC(p Vec4) (ndcPoint, bool) {
	if p.W <= 0 {
		return ndcPoint{}, false
	}
	invW := 1 / p.W
	return ndcPoint{X: p.X * invW, Y: p.Y * invW, Z: p.Z * invW}, true
}

// clipSegment trims a segment to the NDC square (Liang-Barsky).
func clipSegment(a, b ndcPoint) (ndcPoint, ndcPoint, bool) {
	t0, t1 := float32(0), float32(1)
	dx, dy := b.X-a.X, b.Y-a.Y
	for _, e := range [4][2]float32{
		{-dx, a.X + 1},
		{dx, 1 - a.X},
		{-dy, a.Y + 1},
		{dy, 1 - a.Y},
	} {
		p, q := e[0], e[1]
		if p == 0 {
			if q < 0 {
				return a, b, false
			}
			continue
		}
		r := q / p
		if p < 0 {
			if r > t1 {
				return a, b, false
			}
			if r > t0 {
				t0 = r
			}
		} else {
			if r < t0 {
				return a, b, false
			}
			if r < t1 {
				t1 = r
			}
		}
	}
	lerp := func(t float32) ndcPoint {
		return ndcPoint{X: a.X + t*dx, Y: a.Y + t*dy, Z: a.Z + t*(b.Z-a.Z)}
	}
	return lerp(t0), lerp(t1), true
}

func ndcToScreen(p ndcPoint, w, h int) (x, y int) {
	sx := (p.X*0.5 + 0.5) * float32(w-1)
	sy := (1 - (p.Y*0.5 + 0.5)) * float32(h-1)
	return int(sx + 0.5), int(sy + 0.5)
}

func triangleNormal(a, b, c Vec3) Vec3 {
	return Normalize(Cross(b.Sub(a), c.Sub(a)))
}

// lightIntensity is two-sided: meshes are not culled, so the back of a face
// is lit like its front.
func lightIntensity(l Light, n Vec3) Scalar {
	amb := Clamp01(l.Ambient)
	ld := Normalize(l.Dir)
	if ld == (Vec3{}) {
		return amb
	}
	d := Dot(n, ld.Mul(-1))
	if d < 0 {
		d = -d
	}
	return Clamp01(amb + d*Clamp01(l.DirAmount))
}

func (r *Renderer) depthTest(w int, x, y int, z float32) bool {
	if !r.Depth || r.depthBuf == nil {
		return true
	}
	idx := y*w + x
	if x < 0 || x >= w || idx < 0 || idx >= len(r.depthBuf) {
		return false
	}
	// NDC z is in [-1,1]. Map to [0,1].
	d := clampF32(z*0.5+0.5, 0, 1)
	if d >= r.depthBuf[idx] {
		return false
	}
	r.depthBuf[idx] = d
	return true
}

// drawLine rasterizes with Bresenham. The step budget bounds the walk when a
// wireframe triangle has vertices far outside the target.
func (r *Renderer) drawLine(t Target, w, h int, x0, y0, x1, y1 int, c Color) {
	dx := absInt(x1 - x0)
	sx := -1
	if x0 < x1 {
		sx = 1
	}
	dy := -absInt(y1 - y0)
	sy := -1
	if y0 < y1 {
		sy = 1
	}
	err := dx + dy
	budget := 4 * (w + h)
	for ; budget > 0; budget-- {
		t.SetPixel(x0, y0, c)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

func (r *Renderer) fillTriangle(t Target, w, h int, x0, y0 int, z0 float32, x1, y1 int, z1 float32, x2, y2 int, z2 float32, c Color) {
	minX, maxX := max(min(x0, x1, x2), 0), min(max(x0, x1, x2), w-1)
	minY, maxY := max(min(y0, y1, y2), 0), min(max(y0, y1, y2), h-1)
	if minX > maxX || minY > maxY {
		return
	}

	area := edgeFn(x0, y0, x1, y1, x2, y2)
	if area == 0 {
		return
	}
	invArea := 1.0 / float32(area)

	for y := minY; y <= maxY; y++ {
		for x := minX; x <= maxX; x++ {
			w0 := edgeFn(x1, y1, x2, y2, x, y)
			w1 := edgeFn(x2, y2, x0, y0, x, y)
			w2 := edgeFn(x0, y0, x1, y1, x, y)
			// Accept both windings; faces are not culled.
			if area > 0 && (w0|w1|w2) < 0 {
				continue
			}
			if area < 0 && (w0 > 0 || w1 > 0 || w2 > 0) {
				continue
			}
			a0 := float32(w0) * invArea
			a1 := float32(w1) * invArea
			a2 := float32(w2) * invArea
			z := a0*z0 + a1*z1 + a2*z2
			if !r.depthTest(w, x, y, z) {
				continue
			}
			t.SetPixel(x, y, c)
		}
	}
}

func edgeFn(x0, y0, x1, y1, x, y int) int {
	return (x-x0)*(y1-y0) - (y-y0)*(x1-x0)
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func clampF32(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
