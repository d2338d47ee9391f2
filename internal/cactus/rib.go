package cactus

import (
	"github.com/chewxy/math32"

	"cactus-gen/internal/geom"
)

// ribDepth is the fraction of the radius a rib valley cuts in.
const ribDepth = 0.1

// RibFactor returns the radial scale 1 − 0.1·cos(θ·ribs) for a vertex at
// angle theta. ribs ≤ 0 means no ribbing and yields 1.
func RibFactor(theta float32, ribs int) float32 {
	if ribs <= 0 {
		return 1
	}
	return 1 - ribDepth*math32.Cos(theta*float32(ribs))
}

// DeformRibs scales every vertex of buf horizontally around the vertical
// axis through (cx, cz), with θ = atan2(x−cx, z−cz), then recomputes
// normals from the deformed positions.
func DeformRibs(buf *geom.Buffer, ribs int, cx, cz float32) {
	for i := 0; i < buf.VertexCount(); i++ {
		p := buf.Position(i)
		dx, dz := p.X-cx, p.Z-cz
		f := RibFactor(math32.Atan2(dx, dz), ribs)
		buf.SetPosition(i, geom.V3(cx+dx*f, p.Y, cz+dz*f))
	}
	buf.ComputeNormals()
}
