package cactus

import (
	"math"

	"cactus-gen/internal/config"
	"cactus-gen/internal/geom"
	"cactus-gen/internal/rng"
)

const (
	// spinesPerVertex scales density into spines per surface vertex.
	spinesPerVertex = 50
	// spineLengthDivisor turns the length slider into scene units.
	spineLengthDivisor = 400
	// spineSpread is how far a spine may lean away from the surface normal.
	spineSpread = 0.4
)

// SpineCount returns floor((density/100)·vertices·50).
func SpineCount(density float64, vertices int) int {
	if density <= 0 || vertices <= 0 {
		return 0
	}
	return int(math.Floor(density / 100 * float64(vertices) * spinesPerVertex))
}

// Spines samples random vertices of src and grows one needle from each along
// its jittered normal. Every spine takes five draws in a fixed order: vertex
// index, length jitter, then the x, y and z lean. It returns nil when density
// is zero or src is empty.
func Spines(src *geom.Buffer, cfg config.Spines, stream *rng.Stream) *geom.Buffer {
	n := src.VertexCount()
	count := SpineCount(cfg.Density, n)
	if count == 0 {
		return nil
	}
	base := float32(cfg.Length) / spineLengthDivisor

	out := &geom.Buffer{Positions: make([]float32, 0, count*6)}
	for i := 0; i < count; i++ {
		idx := stream.IntN(n)
		start, normal := src.Position(idx), src.Normal(idx)

		length := base * (0.5 + stream.Float32())
		lean := geom.V3(
			stream.Float32()-0.5,
			stream.Float32()-0.5,
			stream.Float32()-0.5,
		).Scale(spineSpread)
		dir := normal.Add(lean).Normalize()

		out.AddSegment(start, start.Add(dir.Scale(length)))
	}
	return out
}
