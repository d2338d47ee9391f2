package cactus

import (
	"cactus-gen/internal/geom"
)

// Kind tags the two primitive variants.
type Kind uint8

const (
	SolidMesh Kind = iota
	LineSegments
)

func (k Kind) String() string {
	switch k {
	case SolidMesh:
		return "mesh"
	case LineSegments:
		return "lines"
	}
	return "unknown"
}

// Transform places a primitive inside its group. Rotation is an XYZ Euler
// triple in radians.
type Transform struct {
	Position geom.Vec3
	Rotation geom.Vec3
}

// Apply maps a local point into the parent space: rotate, then translate.
func (t Transform) Apply(p geom.Vec3) geom.Vec3 {
	return p.RotateEuler(t.Rotation).Add(t.Position)
}

// Primitive is one drawable leaf. It owns its buffer exclusively.
type Primitive struct {
	Kind      Kind
	Name      string
	Buffer    *geom.Buffer
	Material  Material
	Transform Transform
}

// Release frees the primitive's buffer.
func (p *Primitive) Release() {
	switch p.Kind {
	case SolidMesh, LineSegments:
		p.Buffer.Release()
	}
}

// Group is an ordered set of primitives followed by ordered sub-groups, all
// offset by Position.
type Group struct {
	Name       string
	Position   geom.Vec3
	Primitives []*Primitive
	Groups     []*Group

	// Focus is the suggested orbit target, set on the root group only.
	Focus geom.Vec3
}

// NewGroup returns an empty group at the given offset.
func NewGroup(name string, position geom.Vec3) *Group {
	return &Group{Name: name, Position: position}
}

// AddMesh appends a solid mesh at the given placement.
func (g *Group) AddMesh(name string, buf *geom.Buffer, m Material, t Transform) *Primitive {
	return g.add(&Primitive{Kind: SolidMesh, Name: name, Buffer: buf, Material: m, Transform: t})
}

// AddLines appends a line-segment primitive. Nil buffers are skipped.
func (g *Group) AddLines(name string, buf *geom.Buffer, t Transform) *Primitive {
	if buf == nil {
		return nil
	}
	return g.add(&Primitive{Kind: LineSegments, Name: name, Buffer: buf, Material: MaterialSpine, Transform: t})
}

func (g *Group) add(p *Primitive) *Primitive {
	g.Primitives = append(g.Primitives, p)
	return p
}

// AddGroup appends a sub-group.
func (g *Group) AddGroup(sub *Group) {
	g.Groups = append(g.Groups, sub)
}

// Placed is a primitive with its placement resolved against every ancestor.
type Placed struct {
	*Primitive
	// Offset is the summed position of all enclosing groups.
	Offset geom.Vec3
}

// World maps a vertex of the primitive's buffer into world space.
func (p Placed) World(v geom.Vec3) geom.Vec3 {
	return p.Transform.Apply(v).Add(p.Offset)
}

// Walk visits every primitive depth first in draw order.
func (g *Group) Walk(fn func(Placed)) {
	g.walk(geom.Vec3{}, fn)
}

func (g *Group) walk(parent geom.Vec3, fn func(Placed)) {
	offset := parent.Add(g.Position)
	for _, p := range g.Primitives {
		fn(Placed{Primitive: p, Offset: offset})
	}
	for _, sub := range g.Groups {
		sub.walk(offset, fn)
	}
}

// SolidMeshes returns the solid meshes in draw order.
func (g *Group) SolidMeshes() []Placed {
	return g.collect(SolidMesh)
}

// LineSegments returns the spine sets in draw order.
func (g *Group) LineSegments() []Placed {
	return g.collect(LineSegments)
}

func (g *Group) collect(k Kind) []Placed {
	var out []Placed
	g.Walk(func(p Placed) {
		if p.Kind == k {
			out = append(out, p)
		}
	})
	return out
}

// Bounds returns the world-space AABB of every vertex in the group.
func (g *Group) Bounds() geom.Box3 {
	box := geom.EmptyBox()
	g.Walk(func(p Placed) {
		box.ExpandByBox(p.Buffer.Bounds(p.World))
	})
	return box
}

// Release frees every buffer in the group. Safe to call more than once.
func (g *Group) Release() {
	if g == nil {
		return
	}
	g.Walk(func(p Placed) {
		p.Release()
	})
}

// Find returns the first sub-group with the given name, searching depth first.
func (g *Group) Find(name string) *Group {
	for _, sub := range g.Groups {
		if sub.Name == name {
			return sub
		}
		if found := sub.Find(name); found != nil {
			return found
		}
	}
	return nil
}
