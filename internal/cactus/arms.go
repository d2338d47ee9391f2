package cactus

import (
	"fmt"

	"github.com/chewxy/math32"

	"cactus-gen/internal/geom"
)

const (
	// armReach scales the length slider against body height.
	armReach = 0.7
	// armGirth scales the thickness slider against body width.
	armGirth = 0.8
	// armElbow is the share of the arm that runs outward before turning up.
	armElbow = 0.4
)

// armPath returns the elbow path for an arm leaving the body at angle. The
// start sits on the ribbed surface rather than the ideal cylinder.
func armPath(ctx *buildContext, angle float32) geom.Path {
	length := float32(ctx.cfg.Arms.Length) / 100 * ctx.height * armReach
	y := float32(ctx.cfg.Arms.Position)/100*ctx.height - ctx.height/2

	s, c := math32.Sincos(angle)
	r := ctx.width * RibFactor(angle, ctx.ribs)
	start := geom.V3(c*r, y, s*r)
	out := length * armElbow
	corner := start.Add(geom.V3(c*out, 0, s*out))
	end := corner.Add(geom.V3(0, length*(1-armElbow), 0))
	return geom.NewPath(start, corner, end)
}

// armCap returns a ribbed sphere that closes one end of an arm tube.
func armCap(ctx *buildContext, radius float32) *geom.Buffer {
	sphere := geom.Sphere(radius, ctx.radial, max(4, ctx.ribs/2))
	DeformRibs(sphere, ctx.ribs, 0, 0)
	sphere.Sanitize()
	return sphere
}

// buildArms adds one sub-group per arm at the body offset. Each holds the
// tube, a cap at either end and, when enabled, the tube's spines.
func buildArms(ctx *buildContext, root *Group) {
	count := ctx.cfg.Arms.Count
	if count <= 0 {
		return
	}
	thickness := float32(ctx.cfg.Arms.Thickness) / 100 * ctx.width * armGirth
	for i := 0; i < count; i++ {
		angle := ctx.streams.ArmPlacement.Float32() * 2 * math32.Pi
		path := armPath(ctx, angle)
		start, end := path.Points[0], path.Points[len(path.Points)-1]

		tube := geom.Tube(path, ctx.segments, thickness, ctx.radial)
		DeformRibs(tube, ctx.ribs, start.X, start.Z)
		tube.Sanitize()

		arm := NewGroup(fmt.Sprintf("arm-%d", i), geom.V3(0, ctx.bodyY, 0))
		arm.AddMesh("arm-tube", tube, MaterialBody, Transform{})
		arm.AddMesh("arm-cap-start", armCap(ctx, thickness), MaterialBody, Transform{Position: start})
		arm.AddMesh("arm-cap-end", armCap(ctx, thickness), MaterialBody, Transform{Position: end})
		arm.AddLines("arm-spines", Spines(tube, ctx.cfg.Spines, ctx.streams.ArmSpines), Transform{})
		root.AddGroup(arm)
	}
}
