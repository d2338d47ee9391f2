// Package geom holds vertex buffers and the parametric shapes the cactus is
// built from. Shapes follow the usual Y-up conventions: cylinders and tubes
// have their radial angle measured from +Z towards +X.
package geom

import "github.com/chewxy/math32"

// Buffer is an index-aligned set of vertex positions and normals, 3 floats per
// vertex, with optional triangle indices. Line buffers carry no normals and
// store one segment per consecutive pair of positions.
type Buffer struct {
	Positions []float32
	Normals   []float32
	Indices   []uint32

	released bool
}

// NewBuffer returns a buffer sized for n vertices.
func NewBuffer(n int) *Buffer {
	return &Buffer{
		Positions: make([]float32, 0, n*3),
		Normals:   make([]float32, 0, n*3),
	}
}

// VertexCount returns the number of vertices.
func (b *Buffer) VertexCount() int {
	if b == nil {
		return 0
	}
	return len(b.Positions) / 3
}

// TriangleCount returns the number of triangles, indexed or not.
func (b *Buffer) TriangleCount() int {
	if b == nil {
		return 0
	}
	if b.Indices != nil {
		return len(b.Indices) / 3
	}
	return b.VertexCount() / 3
}

// Position returns vertex i.
func (b *Buffer) Position(i int) Vec3 {
	return Vec3{b.Positions[i*3], b.Positions[i*3+1], b.Positions[i*3+2]}
}

// SetPosition overwrites vertex i.
func (b *Buffer) SetPosition(i int, v Vec3) {
	b.Positions[i*3], b.Positions[i*3+1], b.Positions[i*3+2] = v.X, v.Y, v.Z
}

// Normal returns the normal of vertex i.
func (b *Buffer) Normal(i int) Vec3 {
	return Vec3{b.Normals[i*3], b.Normals[i*3+1], b.Normals[i*3+2]}
}

func (b *Buffer) addVertex(p, n Vec3) uint32 {
	idx := uint32(len(b.Positions) / 3)
	b.Positions = append(b.Positions, p.X, p.Y, p.Z)
	b.Normals = append(b.Normals, n.X, n.Y, n.Z)
	return idx
}

func (b *Buffer) addTriangle(a, c, d uint32) {
	b.Indices = append(b.Indices, a, c, d)
}

// AddSegment appends one line segment. Used for line buffers only.
func (b *Buffer) AddSegment(start, end Vec3) {
	b.Positions = append(b.Positions, start.X, start.Y, start.Z, end.X, end.Y, end.Z)
}

// ComputeNormals recomputes vertex normals from the current positions. For
// indexed buffers each vertex gets the normalized sum of the area-weighted
// normals of the faces that use it; unindexed buffers get flat face normals.
func (b *Buffer) ComputeNormals() {
	n := b.VertexCount()
	if cap(b.Normals) >= n*3 {
		b.Normals = b.Normals[:n*3]
	} else {
		b.Normals = make([]float32, n*3)
	}
	clear(b.Normals)

	face := func(ia, ib, ic int) Vec3 {
		pa, pb, pc := b.Position(ia), b.Position(ib), b.Position(ic)
		return pc.Sub(pb).Cross(pa.Sub(pb))
	}
	add := func(i int, v Vec3) {
		b.Normals[i*3] += v.X
		b.Normals[i*3+1] += v.Y
		b.Normals[i*3+2] += v.Z
	}

	if b.Indices != nil {
		for t := 0; t+2 < len(b.Indices); t += 3 {
			ia, ib, ic := int(b.Indices[t]), int(b.Indices[t+1]), int(b.Indices[t+2])
			fn := face(ia, ib, ic)
			add(ia, fn)
			add(ib, fn)
			add(ic, fn)
		}
	} else {
		for i := 0; i+2 < n; i += 3 {
			fn := face(i, i+1, i+2)
			add(i, fn)
			add(i+1, fn)
			add(i+2, fn)
		}
	}

	for i := 0; i < n; i++ {
		v := b.Normal(i).Normalize()
		b.Normals[i*3], b.Normals[i*3+1], b.Normals[i*3+2] = v.X, v.Y, v.Z
	}
}

// Bounds returns the AABB of the positions after applying place to each one.
func (b *Buffer) Bounds(place func(Vec3) Vec3) Box3 {
	box := EmptyBox()
	for i := 0; i < b.VertexCount(); i++ {
		p := b.Position(i)
		if place != nil {
			p = place(p)
		}
		box.ExpandByPoint(p)
	}
	return box
}

// Sanitize replaces any non-finite component with zero.
func (b *Buffer) Sanitize() {
	for _, s := range [][]float32{b.Positions, b.Normals} {
		for i, f := range s {
			if !isFinite(f) {
				s[i] = 0
			}
		}
	}
}

// Release drops the backing arrays. A released buffer is empty and releasing
// it again does nothing.
func (b *Buffer) Release() {
	if b == nil || b.released {
		return
	}
	b.Positions = nil
	b.Normals = nil
	b.Indices = nil
	b.released = true
}

// Released reports whether Release has been called.
func (b *Buffer) Released() bool {
	return b != nil && b.released
}

// Box3 is an axis-aligned bounding box.
type Box3 struct {
	Min, Max Vec3
}

// EmptyBox returns a box that any point expands.
func EmptyBox() Box3 {
	inf := math32.Inf(1)
	return Box3{Min: Vec3{inf, inf, inf}, Max: Vec3{-inf, -inf, -inf}}
}

// IsEmpty reports whether the box contains no point.
func (b Box3) IsEmpty() bool {
	return b.Max.X < b.Min.X || b.Max.Y < b.Min.Y || b.Max.Z < b.Min.Z
}

func (b *Box3) ExpandByPoint(p Vec3) {
	b.Min = Vec3{min(b.Min.X, p.X), min(b.Min.Y, p.Y), min(b.Min.Z, p.Z)}
	b.Max = Vec3{max(b.Max.X, p.X), max(b.Max.Y, p.Y), max(b.Max.Z, p.Z)}
}

func (b *Box3) ExpandByBox(o Box3) {
	if o.IsEmpty() {
		return
	}
	b.ExpandByPoint(o.Min)
	b.ExpandByPoint(o.Max)
}

// Center returns the box midpoint; an empty box is centred at the origin.
func (b Box3) Center() Vec3 {
	if b.IsEmpty() {
		return Vec3{}
	}
	return b.Min.Add(b.Max).Scale(0.5)
}
