package geom

import (
	"math"

	"github.com/chewxy/math32"
)

// Path is a polyline sampled by arc length.
type Path struct {
	Points []Vec3
}

// NewPath returns a path through the given points in order.
func NewPath(points ...Vec3) Path {
	return Path{Points: points}
}

// Length returns the total length of the polyline.
func (p Path) Length() float32 {
	var l float32
	for i := 1; i < len(p.Points); i++ {
		l += p.Points[i].Sub(p.Points[i-1]).Length()
	}
	return l
}

// PointAt returns the point u of the way along the path by arc length,
// u in [0,1]. Zero-length paths return their first point.
func (p Path) PointAt(u float32) Vec3 {
	switch len(p.Points) {
	case 0:
		return Vec3{}
	case 1:
		return p.Points[0]
	}
	total := p.Length()
	if total == 0 {
		return p.Points[0]
	}
	d := min(max(u, 0), 1) * total
	for i := 1; i < len(p.Points); i++ {
		a, b := p.Points[i-1], p.Points[i]
		seg := b.Sub(a).Length()
		if d <= seg || i == len(p.Points)-1 {
			if seg == 0 {
				return b
			}
			return a.Lerp(b, min(d/seg, 1))
		}
		d -= seg
	}
	return p.Points[len(p.Points)-1]
}

// tangentDelta is the parameter step used for finite-difference tangents.
const tangentDelta = 0.0001

// TangentAt returns the unit tangent at u by central differences. At a
// corner the tangent is the bisector of the two legs.
func (p Path) TangentAt(u float32) Vec3 {
	u1 := max(u-tangentDelta, 0)
	u2 := min(u+tangentDelta, 1)
	return p.PointAt(u2).Sub(p.PointAt(u1)).Normalize()
}

// Frames holds a tangent, normal and binormal per path sample.
type Frames struct {
	Tangents, Normals, Binormals []Vec3
}

// frameEpsilon is the smallest tangent change treated as a rotation.
const frameEpsilon = 1e-6

// FrenetFrames samples segments+1 frames along the path. The first normal is
// taken from the world axis least aligned with the first tangent; each
// following frame parallel-transports the previous one by the rotation
// between consecutive tangents, so the tube does not twist.
func (p Path) FrenetFrames(segments int) Frames {
	f := Frames{
		Tangents:  make([]Vec3, segments+1),
		Normals:   make([]Vec3, segments+1),
		Binormals: make([]Vec3, segments+1),
	}
	for i := 0; i <= segments; i++ {
		f.Tangents[i] = p.TangentAt(float32(i) / float32(segments))
	}

	t0 := f.Tangents[0]
	tx, ty, tz := math32.Abs(t0.X), math32.Abs(t0.Y), math32.Abs(t0.Z)
	least := float32(math.MaxFloat32)
	var axis Vec3
	if tx <= least {
		least = tx
		axis = V3(1, 0, 0)
	}
	if ty <= least {
		least = ty
		axis = V3(0, 1, 0)
	}
	if tz <= least {
		axis = V3(0, 0, 1)
	}
	vec := t0.Cross(axis).Normalize()
	f.Normals[0] = t0.Cross(vec)
	f.Binormals[0] = t0.Cross(f.Normals[0])

	for i := 1; i <= segments; i++ {
		n := f.Normals[i-1]
		vec := f.Tangents[i-1].Cross(f.Tangents[i])
		if vec.Length() > frameEpsilon {
			vec = vec.Normalize()
			theta := math32.Acos(clamp(f.Tangents[i-1].Dot(f.Tangents[i]), -1, 1))
			n = n.RotateAxis(vec, theta)
		}
		f.Normals[i] = n
		f.Binormals[i] = f.Tangents[i].Cross(n)
	}
	return f
}

// Tube sweeps a circle of the given radius along path. The result has
// (tubular+1)*(radial+1) vertices; the ends are left open. tubular is
// raised to 1 and radial to 3.
func Tube(path Path, tubular int, radius float32, radial int) *Buffer {
	tubular = max(tubular, 1)
	radial = max(radial, 3)

	frames := path.FrenetFrames(tubular)
	b := NewBuffer((tubular + 1) * (radial + 1))
	for i := 0; i <= tubular; i++ {
		centre := path.PointAt(float32(i) / float32(tubular))
		nrm, bin := frames.Normals[i], frames.Binormals[i]
		for j := 0; j <= radial; j++ {
			v := float32(j) / float32(radial) * 2 * math32.Pi
			s, c := math32.Sincos(v)
			c = -c
			n := nrm.Scale(c).Add(bin.Scale(s)).Normalize()
			b.addVertex(centre.Add(n.Scale(radius)), n)
		}
	}

	stride := uint32(radial + 1)
	for j := uint32(1); j <= uint32(tubular); j++ {
		for i := uint32(1); i <= uint32(radial); i++ {
			a := stride*(j-1) + (i - 1)
			bb := stride*j + (i - 1)
			c := stride*j + i
			d := stride*(j-1) + i
			b.addTriangle(a, bb, d)
			b.addTriangle(bb, c, d)
		}
	}
	return b
}

func clamp(v, lo, hi float32) float32 {
	return min(max(v, lo), hi)
}
