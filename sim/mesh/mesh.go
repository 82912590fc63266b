// Package mesh emits the procedural geometry the arm view is built from.
//
// Emitters are stateless. Cylinders start at the origin and extend along +Y,
// the way links hang off their anchor; spheres and boxes are centered.
package mesh

import (
	"math"

	"armsim/sim/quarkgl"
)

// Cylinder returns a capped cylinder of the given radius and height.
func Cylinder(radius, height float32, segments int) quarkgl.Mesh {
	if segments < 3 {
		segments = 3
	}

	verts := make([]quarkgl.Vertex, 0, 2*segments+2)
	indices := make([]uint16, 0, segments*12)

	verts = append(verts,
		quarkgl.Vertex{Pos: quarkgl.V3(0, 0, 0), Normal: quarkgl.V3(0, -1, 0)},
		quarkgl.Vertex{Pos: quarkgl.V3(0, height, 0), Normal: quarkgl.V3(0, 1, 0)},
	)
	for i := 0; i < segments; i++ {
		x, z := ring(radius, i, segments)
		n := quarkgl.Normalize(quarkgl.V3(x, 0, z))
		verts = append(verts,
			quarkgl.Vertex{Pos: quarkgl.V3(x, 0, z), Normal: n},
			quarkgl.Vertex{Pos: quarkgl.V3(x, height, z), Normal: n},
		)
	}

	for i := 0; i < segments; i++ {
		b0 := uint16(2 + 2*i)
		t0 := b0 + 1
		b1 := uint16(2 + 2*((i+1)%segments))
		t1 := b1 + 1

		indices = append(indices, 0, b1, b0) // bottom cap
		indices = append(indices, 1, t0, t1) // top cap
		indices = append(indices, b0, b1, t1, b0, t1, t0)
	}

	return quarkgl.Mesh{Vertices: verts, Indices: indices}
}

// Sphere returns a UV sphere centered on the origin.
func Sphere(radius float32, slices, stacks int) quarkgl.Mesh {
	if slices < 3 {
		slices = 3
	}
	if stacks < 2 {
		stacks = 2
	}

	verts := make([]quarkgl.Vertex, 0, (slices+1)*(stacks+1))
	indices := make([]uint16, 0, slices*stacks*6)

	for st := 0; st <= stacks; st++ {
		phi := math.Pi * float64(st) / float64(stacks)
		y := float32(math.Cos(phi))
		r := float32(math.Sin(phi))
		for sl := 0; sl <= slices; sl++ {
			x, z := ring(r, sl, slices)
			n := quarkgl.V3(x, y, z)
			verts = append(verts, quarkgl.Vertex{Pos: n.Mul(radius), Normal: n})
		}
	}

	row := slices + 1
	for st := 0; st < stacks; st++ {
		for sl := 0; sl < slices; sl++ {
			i0 := uint16(st*row + sl)
			i1 := i0 + 1
			i2 := uint16((st+1)*row + sl)
			i3 := i2 + 1
			indices = append(indices, i0, i2, i1, i1, i2, i3)
		}
	}

	return quarkgl.Mesh{Vertices: verts, Indices: indices}
}

// Box returns an axis-aligned box centered on the origin.
func Box(width, height, depth float32) quarkgl.Mesh {
	w, h, d := width/2, height/2, depth/2

	faces := [6]struct {
		n       quarkgl.Vec3
		corners [4]quarkgl.Vec3
	}{
		{quarkgl.V3(0, 0, 1), [4]quarkgl.Vec3{{X: -w, Y: -h, Z: d}, {X: w, Y: -h, Z: d}, {X: w, Y: h, Z: d}, {X: -w, Y: h, Z: d}}},
		{quarkgl.V3(0, 0, -1), [4]quarkgl.Vec3{{X: -w, Y: -h, Z: -d}, {X: -w, Y: h, Z: -d}, {X: w, Y: h, Z: -d}, {X: w, Y: -h, Z: -d}}},
		{quarkgl.V3(0, 1, 0), [4]quarkgl.Vec3{{X: -w, Y: h, Z: -d}, {X: -w, Y: h, Z: d}, {X: w, Y: h, Z: d}, {X: w, Y: h, Z: -d}}},
		{quarkgl.V3(0, -1, 0), [4]quarkgl.Vec3{{X: -w, Y: -h, Z: -d}, {X: w, Y: -h, Z: -d}, {X: w, Y: -h, Z: d}, {X: -w, Y: -h, Z: d}}},
		{quarkgl.V3(1, 0, 0), [4]quarkgl.Vec3{{X: w, Y: -h, Z: -d}, {X: w, Y: h, Z: -d}, {X: w, Y: h, Z: d}, {X: w, Y: -h, Z: d}}},
		{quarkgl.V3(-1, 0, 0), [4]quarkgl.Vec3{{X: -w, Y: -h, Z: -d}, {X: -w, Y: -h, Z: d}, {X: -w, Y: h, Z: d}, {X: -w, Y: h, Z: -d}}},
	}

	verts := make([]quarkgl.Vertex, 0, 24)
	indices := make([]uint16, 0, 36)
	for _, f := range faces {
		base := uint16(len(verts))
		for _, c := range f.corners {
			verts = append(verts, quarkgl.Vertex{Pos: c, Normal: f.n})
		}
		indices = append(indices, base, base+1, base+2, base, base+2, base+3)
	}
	return quarkgl.Mesh{Vertices: verts, Indices: indices}
}

func ring(radius float32, i, n int) (x, z float32) {
	a := 2 * math.Pi * float64(i) / float64(n)
	return radius * float32(math.Cos(a)), radius * float32(math.Sin(a))
}
