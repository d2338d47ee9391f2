package geom

import "github.com/chewxy/math32"

var icoIndices = [60]int{
	0, 11, 5, 0, 5, 1, 0, 1, 7, 0, 7, 10, 0, 10, 11,
	1, 5, 9, 5, 11, 4, 11, 10, 2, 10, 7, 6, 7, 1, 8,
	3, 9, 4, 3, 4, 2, 3, 2, 6, 3, 6, 8, 3, 8, 9,
	4, 9, 5, 2, 4, 11, 6, 2, 10, 8, 6, 7, 9, 8, 1,
}

func icoVertices() [12]Vec3 {
	t := (1 + math32.Sqrt(5)) / 2
	return [12]Vec3{
		{-1, t, 0}, {1, t, 0}, {-1, -t, 0}, {1, -t, 0},
		{0, -1, t}, {0, 1, t}, {0, -1, -t}, {0, 1, -t},
		{t, 0, -1}, {t, 0, 1}, {-t, 0, -1}, {-t, 0, 1},
	}
}

// Icosphere builds an unindexed subdivided icosahedron: every one of the 20
// faces is split into (detail+1)^2 triangles, then every vertex is pushed
// out to the radius. Shared corners are duplicated per triangle, so detail 2
// yields 540 vertices. Normals point away from the centre.
func Icosphere(radius float32, detail int) *Buffer {
	detail = max(detail, 0)
	cols := detail + 1
	verts := icoVertices()

	b := NewBuffer(20 * cols * cols * 3)
	emit := func(p Vec3) {
		n := p.Normalize()
		b.addVertex(n.Scale(radius), n)
	}
	for f := 0; f < len(icoIndices); f += 3 {
		a, bb, c := verts[icoIndices[f]], verts[icoIndices[f+1]], verts[icoIndices[f+2]]

		grid := make([][]Vec3, cols+1)
		for i := 0; i <= cols; i++ {
			aj := a.Lerp(c, float32(i)/float32(cols))
			bj := bb.Lerp(c, float32(i)/float32(cols))
			rows := cols - i
			grid[i] = make([]Vec3, rows+1)
			for j := 0; j <= rows; j++ {
				if j == 0 && i == cols {
					grid[i][j] = aj
				} else {
					grid[i][j] = aj.Lerp(bj, float32(j)/float32(rows))
				}
			}
		}
		for i := 0; i < cols; i++ {
			for j := 0; j < 2*(cols-i)-1; j++ {
				k := j / 2
				if j%2 == 0 {
					emit(grid[i][k+1])
					emit(grid[i+1][k])
					emit(grid[i][k])
				} else {
					emit(grid[i][k+1])
					emit(grid[i+1][k+1])
					emit(grid[i+1][k])
				}
			}
		}
	}
	return b
}
