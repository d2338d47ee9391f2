package cactus

import (
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.English)

// Stats summarizes a generated group.
type Stats struct {
	Meshes    int
	Lines     int
	Vertices  int
	Triangles int
	Spines    int
	Arms      int
	Flowers   int
}

// Summarize counts the primitives and vertices in g.
func Summarize(g *Group) Stats {
	var s Stats
	if g == nil {
		return s
	}
	g.Walk(func(p Placed) {
		switch p.Kind {
		case SolidMesh:
			s.Meshes++
			s.Vertices += p.Buffer.VertexCount()
			s.Triangles += p.Buffer.TriangleCount()
		case LineSegments:
			s.Lines++
			s.Spines += p.Buffer.VertexCount() / 2
		}
	})
	for _, sub := range g.Groups {
		switch {
		case sub.Name == "flowers":
			s.Flowers = len(sub.Primitives)
		case strings.HasPrefix(sub.Name, "arm-"):
			s.Arms++
		}
	}
	return s
}

// String formats s for the log line, with thousands separators in counts.
func (s Stats) String() string {
	return printer.Sprintf("%d meshes, %d spine sets, %d vertices, %d triangles, %d spines, %d arms, %d flowers",
		s.Meshes, s.Lines, s.Vertices, s.Triangles, s.Spines, s.Arms, s.Flowers)
}
