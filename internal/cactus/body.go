package cactus

import (
	"cactus-gen/internal/geom"
)

const (
	potRadialSegments = 32

	potBodyTop    = 0.9
	potBodyBottom = 0.7
	potBodyHeight = 0.9
	potRimTop     = 1.0
	potRimBottom  = 0.95
	potRimHeight  = 0.2

	// potRimLift raises the rim slightly so it never z-fights the pot body.
	potRimLift = 0.01
	// bodySink lowers the column into the pot mouth.
	bodySink = 0.1
)

// buildPot adds the pot sub-group: a tapered body and a wider rim on top,
// positioned so the pot sits under the column's base.
func buildPot(ctx *buildContext, root *Group) {
	size := ctx.potSize()
	bodyH := size * potBodyHeight
	rimH := size * potRimHeight

	pot := NewGroup("pot", geom.V3(0, -ctx.height/2, 0))
	pot.AddMesh("pot-body",
		geom.Cylinder(size*potBodyTop, size*potBodyBottom, bodyH, potRadialSegments, 1),
		MaterialPot, Transform{})
	pot.AddMesh("pot-rim",
		geom.Cylinder(size*potRimTop, size*potRimBottom, rimH, potRadialSegments, 1),
		MaterialPot, Transform{Position: geom.V3(0, bodyH/2-rimH/2+potRimLift, 0)})
	root.AddGroup(pot)

	ctx.bodyY = bodyH/2 - bodySink
}

// buildBody adds the ribbed column and, when enabled, its spines. It returns
// the column buffer so callers can sample it.
func buildBody(ctx *buildContext, root *Group) *geom.Buffer {
	shell := geom.Cylinder(ctx.width, ctx.width, ctx.height, ctx.radial, ctx.segments)
	DeformRibs(shell, ctx.ribs, 0, 0)
	shell.Sanitize()

	body := NewGroup("body", geom.V3(0, ctx.bodyY, 0))
	body.AddMesh("body", shell, MaterialBody, Transform{})
	body.AddLines("body-spines", Spines(shell, ctx.cfg.Spines, ctx.streams.BodySpines), Transform{})
	root.AddGroup(body)
	return shell
}
