package geom

import "github.com/chewxy/math32"

// Sphere builds a UV sphere of the given radius centred at the origin.
// widthSegs is raised to 3 and heightSegs to 2. The pole rows keep their
// full set of vertices but only emit one triangle per quad.
func Sphere(radius float32, widthSegs, heightSegs int) *Buffer {
	widthSegs = max(widthSegs, 3)
	heightSegs = max(heightSegs, 2)

	b := NewBuffer((widthSegs + 1) * (heightSegs + 1))
	grid := make([][]uint32, heightSegs+1)
	for iy := 0; iy <= heightSegs; iy++ {
		theta := float32(iy) / float32(heightSegs) * math32.Pi
		st, ct := math32.Sincos(theta)
		row := make([]uint32, widthSegs+1)
		for ix := 0; ix <= widthSegs; ix++ {
			phi := float32(ix) / float32(widthSegs) * 2 * math32.Pi
			sp, cp := math32.Sincos(phi)
			p := V3(-radius*cp*st, radius*ct, radius*sp*st)
			row[ix] = b.addVertex(p, p.Normalize())
		}
		grid[iy] = row
	}
	for iy := 0; iy < heightSegs; iy++ {
		for ix := 0; ix < widthSegs; ix++ {
			a, bb := grid[iy][ix+1], grid[iy][ix]
			c, d := grid[iy+1][ix], grid[iy+1][ix+1]
			if iy != 0 {
				b.addTriangle(a, bb, d)
			}
			if iy != heightSegs-1 {
				b.addTriangle(bb, c, d)
			}
		}
	}
	return b
}
