// Package config holds the cactus shape parameters: one immutable snapshot is
// handed to every generation pass.
package config

import (
	"errors"
	"fmt"
	"math"

	"golang.org/x/exp/constraints"
)

// Cactus is the root shape configuration. Field names match the slider names
// so files written by older viewers still load.
type Cactus struct {
	Body   Body   `yaml:"body" json:"body" toml:"body"`
	Spines Spines `yaml:"spines" json:"spines" toml:"spines"`
	Addons Addons `yaml:"addons" json:"addons" toml:"addons"`
	Arms   Arms   `yaml:"arms" json:"arms" toml:"arms"`
}

// Body controls the main column. Height and width are slider units; the
// generator divides them down to scene units.
type Body struct {
	Height       float64 `yaml:"height" json:"height" toml:"height"`
	Width        float64 `yaml:"width" json:"width" toml:"width"`
	Ribs         int     `yaml:"ribs" json:"ribs" toml:"ribs"`
	Segmentation int     `yaml:"segmentation" json:"segmentation" toml:"segmentation"`
}

// Spines controls needle density (0–100) and length.
type Spines struct {
	Density float64 `yaml:"density" json:"density" toml:"density"`
	Length  float64 `yaml:"length" json:"length" toml:"length"`
}

// Addons groups flowers and the pot. Seed drives flower placement only.
type Addons struct {
	Flowers             int     `yaml:"flowers" json:"flowers" toml:"flowers"`
	FlowerSize          float64 `yaml:"flowerSize" json:"flowerSize" toml:"flowerSize"`
	FlowerSizeVariation float64 `yaml:"flowerSizeVariation" json:"flowerSizeVariation" toml:"flowerSizeVariation"`
	PotSize             float64 `yaml:"potSize" json:"potSize" toml:"potSize"`
	Seed                int32   `yaml:"seed" json:"seed" toml:"seed"`
}

// Arms controls side arms. Position, Length and Thickness are 0–100.
type Arms struct {
	Count         int     `yaml:"count" json:"count" toml:"count"`
	Position      float64 `yaml:"position" json:"position" toml:"position"`
	Length        float64 `yaml:"length" json:"length" toml:"length"`
	Thickness     float64 `yaml:"thickness" json:"thickness" toml:"thickness"`
	PlacementSeed int32   `yaml:"placementSeed" json:"placementSeed" toml:"placementSeed"`
}

// Slider limits.
const (
	MaxPercent = 100
	MaxHeight  = 200
	MaxWidth   = 100
	MaxRibs    = 40
	MaxSegment = 100
	MaxLength  = 100
	MaxFlowers = 30
	MaxArms    = 8
	MaxPotSize = 150
)

// Default returns the configuration the viewer starts with.
func Default() Cactus {
	return Cactus{
		Body:   Body{Height: 80, Width: 40, Ribs: 8, Segmentation: 20},
		Spines: Spines{Density: 50, Length: 15},
		Addons: Addons{Flowers: 3, FlowerSize: 25, FlowerSizeVariation: 50, PotSize: 60, Seed: 1},
		Arms:   Arms{Count: 0, Position: 50, Length: 50, Thickness: 50, PlacementSeed: 1},
	}
}

// Clamp forces every field into its documented domain. Non-finite values
// become zero and negatives are raised to zero. Upper limits are left to
// Validate so large but finite inputs still generate.
func (c *Cactus) Clamp() {
	c.Body.Height = nonNegative(c.Body.Height)
	c.Body.Width = nonNegative(c.Body.Width)
	c.Body.Ribs = max(c.Body.Ribs, 0)
	c.Body.Segmentation = max(c.Body.Segmentation, 0)

	c.Spines.Density = clamp(finite(c.Spines.Density), 0, MaxPercent)
	c.Spines.Length = nonNegative(c.Spines.Length)

	c.Addons.Flowers = max(c.Addons.Flowers, 0)
	c.Addons.FlowerSize = nonNegative(c.Addons.FlowerSize)
	c.Addons.FlowerSizeVariation = clamp(finite(c.Addons.FlowerSizeVariation), 0, MaxPercent)
	c.Addons.PotSize = nonNegative(c.Addons.PotSize)

	c.Arms.Count = max(c.Arms.Count, 0)
	c.Arms.Position = clamp(finite(c.Arms.Position), 0, MaxPercent)
	c.Arms.Length = clamp(finite(c.Arms.Length), 0, MaxPercent)
	c.Arms.Thickness = clamp(finite(c.Arms.Thickness), 0, MaxPercent)
}

// Validate reports every field outside its slider range.
func (c Cactus) Validate() error {
	var errs []error
	check := func(name string, v, lo, hi float64) {
		if math.IsNaN(v) || v < lo || v > hi {
			errs = append(errs, fmt.Errorf("%s must be within [%g, %g], got %g", name, lo, hi, v))
		}
	}
	check("body.height", c.Body.Height, 0, MaxHeight)
	check("body.width", c.Body.Width, 0, MaxWidth)
	check("body.ribs", float64(c.Body.Ribs), 0, MaxRibs)
	check("body.segmentation", float64(c.Body.Segmentation), 0, MaxSegment)
	check("spines.density", c.Spines.Density, 0, MaxPercent)
	check("spines.length", c.Spines.Length, 0, MaxLength)
	check("addons.flowers", float64(c.Addons.Flowers), 0, MaxFlowers)
	check("addons.flowerSize", c.Addons.FlowerSize, 0, MaxPercent)
	check("addons.flowerSizeVariation", c.Addons.FlowerSizeVariation, 0, MaxPercent)
	check("addons.potSize", c.Addons.PotSize, 0, MaxPotSize)
	check("arms.count", float64(c.Arms.Count), 0, MaxArms)
	check("arms.position", c.Arms.Position, 0, MaxPercent)
	check("arms.length", c.Arms.Length, 0, MaxPercent)
	check("arms.thickness", c.Arms.Thickness, 0, MaxPercent)
	return errors.Join(errs...)
}

// Segments returns the height subdivision count: segmentation/5 rounded,
// never fewer than 3.
func (b Body) Segments() int {
	return max(3, int(math.Round(float64(b.Segmentation)/5)))
}

// RadialSegments returns the number of radial subdivisions for ribbed
// shapes: one per rib, never fewer than 3.
func (b Body) RadialSegments() int {
	return max(3, b.Ribs)
}

func clamp[T constraints.Ordered](v, lo, hi T) T {
	return min(max(v, lo), hi)
}

func finite(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}

func nonNegative(v float64) float64 {
	return max(finite(v), 0)
}
