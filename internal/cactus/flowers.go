package cactus

import (
	"fmt"

	"github.com/chewxy/math32"

	"cactus-gen/internal/geom"
)

const (
	flowerSizeDivisor = 500
	// flowerDetail is the icosphere subdivision level of a bloom.
	flowerDetail = 2
	// petalPush is how far the equator bulges out relative to the poles.
	petalPush = 0.5
	// petalNoise is the per-axis jitter as a fraction of the radius.
	petalNoise = 0.15
	// crownDepth places a bloom this many radii below the top of the body.
	crownDepth = 1.5
	// crownJitter is the spread of the vertical placement.
	crownJitter = 0.2
	// crownInset pulls blooms slightly inside the body radius.
	crownInset = 0.9
)

// bloom returns the displaced sphere for one flower of the given radius.
// Every vertex takes three draws, one per axis.
func bloom(ctx *buildContext, radius float32) *geom.Buffer {
	buf := geom.Icosphere(radius, flowerDetail)
	noise := radius * petalNoise
	r := ctx.streams.Flowers
	for i := 0; i < buf.VertexCount(); i++ {
		p := buf.Position(i)
		var ratio float32
		if radius > 0 {
			ratio = min(max(p.Y/radius, -1), 1)
		}
		p = p.Scale(1 + math32.Sin(math32.Acos(ratio))*petalPush)
		p.X += (r.Float32() - 0.5) * noise
		p.Y += (r.Float32() - 0.5) * noise
		p.Z += (r.Float32() - 0.5) * noise
		buf.SetPosition(i, p)
	}
	buf.ComputeNormals()
	buf.Sanitize()
	return buf
}

// buildFlowers adds the "flowers" sub-group with one bloom per flower,
// clustered around the crown.
func buildFlowers(ctx *buildContext, root *Group) {
	count := ctx.cfg.Addons.Flowers
	if count <= 0 {
		return
	}
	base := float32(ctx.cfg.Addons.FlowerSize) / flowerSizeDivisor
	variation := float32(ctx.cfg.Addons.FlowerSizeVariation) / 100
	r := ctx.streams.Flowers

	flowers := NewGroup("flowers", geom.Vec3{})
	for i := 0; i < count; i++ {
		radius := base * (1 + (r.Float32()-0.5)*2*variation)
		buf := bloom(ctx, radius)
		material := FlowerMaterials[r.IntN(len(FlowerMaterials))]

		phi := r.Float32() * 2 * math32.Pi
		y := ctx.height/2 - radius*crownDepth + (r.Float32()-0.5)*crownJitter
		radiusAtY := ctx.width
		if ctx.height > 0 {
			radiusAtY = ctx.width * (1 - (y-ctx.height/2)/ctx.height)
		}
		s, c := math32.Sincos(phi)
		pos := geom.V3(c*radiusAtY*crownInset, y+ctx.bodyY, s*radiusAtY*crownInset)

		rot := geom.V3(
			r.Float32()*math32.Pi,
			r.Float32()*2*math32.Pi,
			r.Float32()*math32.Pi,
		)
		flowers.AddMesh(fmt.Sprintf("flower-%d", i), buf, material, Transform{Position: pos, Rotation: rot})
	}
	root.AddGroup(flowers)
}
