package cactus

// Material identifies the surface a primitive is drawn with.
type Material uint8

const (
	MaterialPot Material = iota
	MaterialBody
	MaterialSpine
	MaterialFlower0
	MaterialFlower1
	MaterialFlower2
	MaterialFlower3
	MaterialFlower4
)

// FlowerMaterials is the petal palette, picked uniformly per flower.
var FlowerMaterials = [...]Material{
	MaterialFlower0, MaterialFlower1, MaterialFlower2, MaterialFlower3, MaterialFlower4,
}

func (m Material) String() string {
	switch m {
	case MaterialPot:
		return "pot"
	case MaterialBody:
		return "body"
	case MaterialSpine:
		return "spine"
	case MaterialFlower0, MaterialFlower1, MaterialFlower2, MaterialFlower3, MaterialFlower4:
		return "flower" + string(rune('0'+m-MaterialFlower0))
	}
	return "unknown"
}

// RGB is an 8-bit colour.
type RGB struct {
	R, G, B uint8
}

// Surface is the look of one material: base colour and roughness.
type Surface struct {
	Color     RGB
	Roughness float32
}

// Palette maps every material to its surface.
type Palette map[Material]Surface

// DefaultPalette returns the stock colours: terracotta pot, dark green body,
// cream spines and five pink-to-purple petals.
func DefaultPalette() Palette {
	return Palette{
		MaterialPot:     {Color: RGB{0xBC, 0x6C, 0x25}, Roughness: 0.8},
		MaterialBody:    {Color: RGB{0x36, 0x53, 0x14}, Roughness: 0.8},
		MaterialSpine:   {Color: RGB{0xFF, 0xFB, 0xEB}},
		MaterialFlower0: {Color: RGB{0xE6, 0x00, 0x73}, Roughness: 0.6},
		MaterialFlower1: {Color: RGB{0x9C, 0x27, 0xB0}, Roughness: 0.6},
		MaterialFlower2: {Color: RGB{0xF4, 0x43, 0x36}, Roughness: 0.6},
		MaterialFlower3: {Color: RGB{0xAD, 0x14, 0x57}, Roughness: 0.6},
		MaterialFlower4: {Color: RGB{0xFF, 0x40, 0x81}, Roughness: 0.6},
	}
}
