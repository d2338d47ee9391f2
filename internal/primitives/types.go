package primitives

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"cactus-gen/internal/cactus"
)

// fallbackColor tints any material missing from the palette.
var fallbackColor = rl.NewColor(128, 128, 128, 255)

// maxSpecular is the highlight strength of a perfectly smooth surface.
const maxSpecular = float32(0.6)

// surface is a palette entry resolved for the lit shader.
type surface struct {
	color    rl.Color
	specular float32
}

func resolve(p cactus.Palette, m cactus.Material) surface {
	s, ok := p[m]
	if !ok {
		return surface{color: fallbackColor, specular: maxSpecular / 2}
	}
	rough := min(max(s.Roughness, 0), 1)
	return surface{
		color:    rl.NewColor(s.Color.R, s.Color.G, s.Color.B, 255),
		specular: (1 - rough) * maxSpecular,
	}
}
