// Package cactus turns a shape config into a scene-ready group of meshes and
// spine lines. Generation is a pure function of the config: the same input
// always produces the same buffers.
package cactus

import (
	"cactus-gen/internal/config"
	"cactus-gen/internal/geom"
)

// Generate builds the full cactus for cfg with the default palette.
func Generate(cfg config.Cactus) *Group {
	return GenerateWithPalette(cfg, DefaultPalette())
}

// GenerateWithPalette builds the full cactus for cfg. The root group holds,
// in order, the pot, the body with its spines, one group per arm and the
// flowers. The root is shifted vertically so the bounding box is centred on
// y = 0, and Focus is set to the box centre at that height.
func GenerateWithPalette(cfg config.Cactus, palette Palette) *Group {
	ctx := newBuildContext(cfg, palette)
	root := NewGroup("cactus", geom.Vec3{})

	buildPot(ctx, root)
	buildBody(ctx, root)
	buildArms(ctx, root)
	buildFlowers(ctx, root)

	recenter(root)
	return root
}

// recenter moves root so its bounding box is vertically centred on the origin.
func recenter(root *Group) {
	box := root.Bounds()
	centre := box.Center()
	root.Position.Y -= centre.Y
	root.Focus = geom.V3(centre.X, 0, centre.Z)
}
