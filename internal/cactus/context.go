package cactus

import (
	"cactus-gen/internal/config"
	"cactus-gen/internal/rng"
)

// buildContext is everything a builder may read during one pass. It is
// created by Generate and passed down explicitly; builders hold no state of
// their own.
type buildContext struct {
	cfg     config.Cactus
	streams *rng.Streams
	palette Palette

	// Derived body dimensions in scene units.
	height   float32
	width    float32
	ribs     int
	radial   int
	segments int

	// bodyY is the vertical offset of the body column inside the root group.
	bodyY float32
}

// Scene-unit divisors applied to slider values.
const (
	heightDivisor = 40
	widthDivisor  = 100
	widthTaper    = 2.5
	potDivisor    = 60
)

func newBuildContext(cfg config.Cactus, palette Palette) *buildContext {
	cfg.Clamp()
	height := float32(cfg.Body.Height) / heightDivisor
	return &buildContext{
		cfg:      cfg,
		streams:  rng.NewStreams(cfg.Addons.Seed, cfg.Arms.PlacementSeed),
		palette:  palette,
		height:   height,
		width:    float32(cfg.Body.Width) / widthDivisor * (height / widthTaper),
		ribs:     cfg.Body.Ribs,
		radial:   cfg.Body.RadialSegments(),
		segments: cfg.Body.Segments(),
	}
}

func (c *buildContext) potSize() float32 {
	return float32(c.cfg.Addons.PotSize) / potDivisor
}
