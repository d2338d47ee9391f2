package cactus

import (
	"math"
	"strings"
	"testing"

	"github.com/chewxy/math32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cactus-gen/internal/config"
	"cactus-gen/internal/geom"
	"cactus-gen/internal/rng"
)

// bareConfig is the stock body with every optional feature switched off.
func bareConfig() config.Cactus {
	c := config.Default()
	c.Body = config.Body{Height: 80, Width: 40, Ribs: 8, Segmentation: 20}
	c.Spines.Density = 0
	c.Addons.Flowers = 0
	c.Arms.Count = 0
	return c
}

func names(ps []Placed) []string {
	out := make([]string, len(ps))
	for i, p := range ps {
		out[i] = p.Name
	}
	return out
}

func requireFiniteGroup(t *testing.T, g *Group) {
	t.Helper()
	g.Walk(func(p Placed) {
		for i, f := range p.Buffer.Positions {
			require.False(t, math.IsNaN(float64(f)) || math.IsInf(float64(f), 0), "%s position[%d]", p.Name, i)
		}
		for i, f := range p.Buffer.Normals {
			require.False(t, math.IsNaN(float64(f)) || math.IsInf(float64(f), 0), "%s normal[%d]", p.Name, i)
		}
	})
}

func TestBareBodyScenario(t *testing.T) {
	g := Generate(bareConfig())

	assert.Equal(t, []string{"pot-body", "pot-rim", "body"}, names(g.SolidMeshes()))
	assert.Empty(t, g.LineSegments())
	for _, p := range g.SolidMeshes() {
		assert.Len(t, p.Buffer.Normals, len(p.Buffer.Positions), p.Name)
	}
}

func TestBodySpineScenario(t *testing.T) {
	c := bareConfig()
	c.Spines.Density = 50
	g := Generate(c)

	body := g.Find("body").Primitives[0]
	// ribs=8, segmentation=max(3, round(20/5))=4: 9*5 side + 2*(8+9) cap vertices.
	require.Equal(t, 79, body.Buffer.VertexCount())

	lines := g.LineSegments()
	require.Len(t, lines, 1)
	assert.Equal(t, "body-spines", lines[0].Name)
	assert.Equal(t, int(math.Floor(0.5*79*50)), lines[0].Buffer.VertexCount()/2)
	assert.Equal(t, 1975, lines[0].Buffer.VertexCount()/2)
}

func TestArmScenario(t *testing.T) {
	c := bareConfig()
	c.Spines.Density = 20
	c.Arms.Count = 2
	c.Arms.PlacementSeed = 1
	g := Generate(c)

	var tubes, caps int
	for _, p := range g.SolidMeshes() {
		switch {
		case p.Name == "arm-tube":
			tubes++
		case strings.HasPrefix(p.Name, "arm-cap"):
			caps++
		}
	}
	assert.Equal(t, 2, tubes)
	assert.Equal(t, 4, caps)
	assert.Equal(t, []string{"body-spines", "arm-spines", "arm-spines"}, names(g.LineSegments()))

	// Placement angles come straight off the placement stream.
	placement := rng.New(1)
	for i, name := range []string{"arm-0", "arm-1"} {
		arm := g.Find(name)
		require.NotNil(t, arm, name)
		start := arm.Primitives[1].Transform.Position
		angle := placement.Float32() * 2 * math32.Pi
		dir := geom.V3(start.X, 0, start.Z).Normalize()
		assert.InDelta(t, math32.Cos(angle), dir.X, 1e-4, "arm %d", i)
		assert.InDelta(t, math32.Sin(angle), dir.Z, 1e-4, "arm %d", i)
	}

	again := Generate(c)
	for _, name := range []string{"arm-0", "arm-1"} {
		assert.Equal(t, g.Find(name).Primitives[1].Transform, again.Find(name).Primitives[1].Transform)
	}
}

func TestArmCapsAtPathEnds(t *testing.T) {
	c := bareConfig()
	c.Arms.Count = 1
	g := Generate(c)

	arm := g.Find("arm-0")
	require.NotNil(t, arm)
	require.Len(t, arm.Primitives, 3)
	tube, start, end := arm.Primitives[0], arm.Primitives[1], arm.Primitives[2]

	// The end cap sits straight above the elbow, higher than the start cap.
	assert.Greater(t, end.Transform.Position.Y, start.Transform.Position.Y)
	assert.InDelta(t, 0, geom.V3(end.Transform.Position.X, 0, end.Transform.Position.Z).Length()-
		geom.V3(start.Transform.Position.X, 0, start.Transform.Position.Z).Length()-
		float32(armElbow*0.5*2*armReach), 1e-4)

	// Tube vertices stay near the path.
	box := tube.Buffer.Bounds(nil)
	assert.LessOrEqual(t, box.Min.Y, start.Transform.Position.Y)
	assert.GreaterOrEqual(t, box.Max.Y, end.Transform.Position.Y)
}

func TestFlowers(t *testing.T) {
	c := bareConfig()
	c.Addons.Flowers = 4
	g := Generate(c)

	flowers := g.Find("flowers")
	require.NotNil(t, flowers)
	require.Len(t, flowers.Primitives, 4)
	palette := DefaultPalette()
	for _, f := range flowers.Primitives {
		assert.Equal(t, SolidMesh, f.Kind)
		assert.Equal(t, 540, f.Buffer.VertexCount())
		assert.GreaterOrEqual(t, int(f.Material), int(MaterialFlower0))
		assert.LessOrEqual(t, int(f.Material), int(MaterialFlower4))
		assert.Contains(t, palette, f.Material)
	}
}

func TestFlowerSeedOnlyMovesFlowers(t *testing.T) {
	c := bareConfig()
	c.Spines.Density = 10
	c.Addons.Flowers = 2
	a := Generate(c)
	c.Addons.Seed = 77
	b := Generate(c)

	assert.Equal(t, a.Find("body").Primitives[1].Buffer.Positions, b.Find("body").Primitives[1].Buffer.Positions)
	assert.NotEqual(t, a.Find("flowers").Primitives[0].Transform, b.Find("flowers").Primitives[0].Transform)
}

func TestArmsDoNotDisturbBodySpines(t *testing.T) {
	c := bareConfig()
	c.Spines.Density = 10
	a := Generate(c)
	c.Arms.Count = 3
	b := Generate(c)

	assert.Equal(t, a.Find("body").Primitives[1].Buffer.Positions, b.Find("body").Primitives[1].Buffer.Positions)
}

func TestFeatureGating(t *testing.T) {
	g := Generate(bareConfig())
	assert.Nil(t, g.Find("flowers"))
	assert.Nil(t, g.Find("arm-0"))
	for _, p := range g.SolidMeshes() {
		assert.False(t, strings.HasPrefix(p.Name, "arm") || strings.HasPrefix(p.Name, "flower"), p.Name)
	}
	s := Summarize(g)
	assert.Zero(t, s.Arms)
	assert.Zero(t, s.Flowers)
	assert.Zero(t, s.Lines)
}

func TestDeterminism(t *testing.T) {
	c := config.Default()
	c.Arms.Count = 3
	c.Addons.Flowers = 5

	a, b := Generate(c), Generate(c)
	pa, pb := a.SolidMeshes(), b.SolidMeshes()
	require.Equal(t, len(pa), len(pb))
	for i := range pa {
		assert.Equal(t, pa[i].Buffer.Positions, pb[i].Buffer.Positions, pa[i].Name)
		assert.Equal(t, pa[i].Buffer.Normals, pb[i].Buffer.Normals, pa[i].Name)
		assert.Equal(t, pa[i].Transform, pb[i].Transform, pa[i].Name)
	}
	la, lb := a.LineSegments(), b.LineSegments()
	require.Equal(t, len(la), len(lb))
	for i := range la {
		assert.Equal(t, la[i].Buffer.Positions, lb[i].Buffer.Positions)
	}
	assert.Equal(t, a.Position, b.Position)
	assert.Equal(t, a.Focus, b.Focus)
}

func TestRecentering(t *testing.T) {
	for _, c := range []config.Cactus{bareConfig(), config.Default()} {
		c.Arms.Count = 2
		g := Generate(c)
		box := g.Bounds()
		require.False(t, box.IsEmpty())
		assert.InDelta(t, 0, box.Center().Y, 1e-4)
		assert.Zero(t, g.Focus.Y)
	}
}

func TestDegenerateInputsStayFinite(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*config.Cactus)
	}{
		{"zero ribs", func(c *config.Cactus) { c.Body.Ribs = 0 }},
		{"one rib", func(c *config.Cactus) { c.Body.Ribs = 1 }},
		{"zero segmentation", func(c *config.Cactus) { c.Body.Segmentation = 0 }},
		{"zero height", func(c *config.Cactus) { c.Body.Height = 0 }},
		{"negative width", func(c *config.Cactus) { c.Body.Width = -10 }},
		{"zero flower size", func(c *config.Cactus) { c.Addons.FlowerSize = 0 }},
		{"full variation", func(c *config.Cactus) { c.Addons.FlowerSizeVariation = 100 }},
		{"zero arm length", func(c *config.Cactus) { c.Arms.Length = 0 }},
		{"zero thickness", func(c *config.Cactus) { c.Arms.Thickness = 0 }},
		{"nan pot", func(c *config.Cactus) { c.Addons.PotSize = math.NaN() }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := config.Default()
			c.Arms.Count = 2
			tt.mutate(&c)
			g := Generate(c)
			requireFiniteGroup(t, g)
			assert.False(t, math.IsNaN(float64(g.Position.Y)))
		})
	}
}

func TestZeroRibsUsesThreeRadialSegments(t *testing.T) {
	c := bareConfig()
	c.Body.Ribs = 0
	g := Generate(c)
	body := g.Find("body").Primitives[0]
	assert.Equal(t, 4*5+2*(3+4), body.Buffer.VertexCount())
}

func TestGroupOrder(t *testing.T) {
	c := config.Default()
	c.Arms.Count = 1
	g := Generate(c)

	var order []string
	for _, sub := range g.Groups {
		order = append(order, sub.Name)
	}
	assert.Equal(t, []string{"pot", "body", "arm-0", "flowers"}, order)
}

func TestSpineLengths(t *testing.T) {
	c := bareConfig()
	c.Spines.Density = 5
	c.Spines.Length = 40
	g := Generate(c)

	spines := g.Find("body").Primitives[1].Buffer
	base := float32(40) / spineLengthDivisor
	for i := 0; i < spines.VertexCount(); i += 2 {
		l := spines.Position(i + 1).Sub(spines.Position(i)).Length()
		assert.GreaterOrEqual(t, l, base*0.5-1e-5)
		assert.LessOrEqual(t, l, base*1.5+1e-5)
	}
}

func TestSpineDrawOrder(t *testing.T) {
	c := bareConfig()
	c.Spines.Density = 5
	c.Spines.Length = 30
	g := Generate(c)

	body := g.Find("body")
	shell, spines := body.Primitives[0].Buffer, body.Primitives[1].Buffer
	base := float32(30) / spineLengthDivisor

	// index, length, then x, y and z lean for every spine.
	r := rng.New(rng.BodySpineSeed)
	for i := 0; i < 5; i++ {
		idx := r.IntN(shell.VertexCount())
		length := base * (0.5 + r.Float32())
		lean := geom.V3(r.Float32()-0.5, r.Float32()-0.5, r.Float32()-0.5).Scale(spineSpread)
		dir := shell.Normal(idx).Add(lean).Normalize()

		start, end := spines.Position(2*i), spines.Position(2*i+1)
		assert.Equal(t, shell.Position(idx), start, "spine %d start", i)
		assert.InDelta(t, length, end.Sub(start).Length(), 1e-5, "spine %d length", i)
		want := start.Add(dir.Scale(length))
		assert.InDelta(t, want.X, end.X, 1e-5)
		assert.InDelta(t, want.Y, end.Y, 1e-5)
		assert.InDelta(t, want.Z, end.Z, 1e-5)
	}
}

func TestFlowerPlacement(t *testing.T) {
	c := bareConfig()
	c.Addons.Flowers = 3
	c.Addons.FlowerSize = 30
	c.Addons.FlowerSizeVariation = 40
	c.Addons.Seed = 5
	g := Generate(c)

	ctx := newBuildContext(c, DefaultPalette())
	bodyY := g.Find("body").Position.Y
	base := float32(30) / flowerSizeDivisor
	variation := float32(40) / 100
	flowers := g.Find("flowers").Primitives
	require.Len(t, flowers, 3)

	r := rng.New(c.Addons.Seed)
	for i, f := range flowers {
		mult := 1 + (r.Float32()-0.5)*2*variation
		assert.GreaterOrEqual(t, mult, float32(0.6))
		assert.LessOrEqual(t, mult, float32(1.4))
		radius := base * mult
		for j, n := 0, 3*f.Buffer.VertexCount(); j < n; j++ {
			r.Float32()
		}
		assert.Equal(t, FlowerMaterials[r.IntN(len(FlowerMaterials))], f.Material, "flower %d", i)

		phi := r.Float32() * 2 * math32.Pi
		y := ctx.height/2 - radius*crownDepth + (r.Float32()-0.5)*crownJitter
		radiusAtY := ctx.width * (1 - (y-ctx.height/2)/ctx.height)
		rot := geom.V3(r.Float32()*math32.Pi, r.Float32()*2*math32.Pi, r.Float32()*math32.Pi)

		pos := f.Transform.Position
		assert.InDelta(t, y+bodyY, pos.Y, 1e-5, "flower %d height", i)
		assert.InDelta(t, ctx.height/2-radius*crownDepth, pos.Y-bodyY, 0.1+1e-5)
		assert.InDelta(t, radiusAtY*crownInset, math32.Sqrt(pos.X*pos.X+pos.Z*pos.Z), 1e-4)
		assert.InDelta(t, math32.Cos(phi)*radiusAtY*crownInset, pos.X, 1e-5)
		assert.InDelta(t, math32.Sin(phi)*radiusAtY*crownInset, pos.Z, 1e-5)

		assert.Equal(t, rot, f.Transform.Rotation, "flower %d rotation", i)
		assert.GreaterOrEqual(t, rot.X, float32(0))
		assert.Less(t, rot.X, float32(math32.Pi))
		assert.Less(t, rot.Y, float32(2*math32.Pi))
		assert.Less(t, rot.Z, float32(math32.Pi))
	}
}
