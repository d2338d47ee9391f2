package geom

import "github.com/chewxy/math32"

// Cylinder builds a capped frustum centred at the origin along Y. The side
// is a (radial+1) x (heightSegs+1) grid whose first and last columns share a
// position but not a vertex; each cap adds radial centre vertices and a rim
// of radial+1 vertices. radial is raised to 3 and heightSegs to 1.
func Cylinder(radiusTop, radiusBottom, height float32, radial, heightSegs int) *Buffer {
	radial = max(radial, 3)
	heightSegs = max(heightSegs, 1)

	b := NewBuffer((radial+1)*(heightSegs+1) + 2*(2*radial+1))
	half := height / 2
	var slope float32
	if height != 0 {
		slope = (radiusBottom - radiusTop) / height
	}

	grid := make([][]uint32, heightSegs+1)
	for y := 0; y <= heightSegs; y++ {
		v := float32(y) / float32(heightSegs)
		r := v*(radiusBottom-radiusTop) + radiusTop
		row := make([]uint32, radial+1)
		for x := 0; x <= radial; x++ {
			theta := float32(x) / float32(radial) * 2 * math32.Pi
			s, c := math32.Sincos(theta)
			p := V3(r*s, -v*height+half, r*c)
			n := V3(s, slope, c).Normalize()
			row[x] = b.addVertex(p, n)
		}
		grid[y] = row
	}
	for x := 0; x < radial; x++ {
		for y := 0; y < heightSegs; y++ {
			a, bb := grid[y][x], grid[y+1][x]
			c, d := grid[y+1][x+1], grid[y][x+1]
			b.addTriangle(a, bb, d)
			b.addTriangle(bb, c, d)
		}
	}

	cylinderCap(b, radiusTop, half, radial, true)
	cylinderCap(b, radiusBottom, half, radial, false)
	return b
}

func cylinderCap(b *Buffer, radius, half float32, radial int, top bool) {
	sign := float32(-1)
	if top {
		sign = 1
	}
	n := V3(0, sign, 0)
	centre := uint32(b.VertexCount())
	for x := 1; x <= radial; x++ {
		b.addVertex(V3(0, half*sign, 0), n)
	}
	rim := uint32(b.VertexCount())
	for x := 0; x <= radial; x++ {
		theta := float32(x) / float32(radial) * 2 * math32.Pi
		s, c := math32.Sincos(theta)
		b.addVertex(V3(radius*s, half*sign, radius*c), n)
	}
	for x := uint32(0); x < uint32(radial); x++ {
		c, i := centre+x, rim+x
		if top {
			b.addTriangle(i, i+1, c)
		} else {
			b.addTriangle(i+1, i, c)
		}
	}
}
