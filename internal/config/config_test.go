package config

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultIsValid(t *testing.T) {
	require.NoError(t, Default().Validate())
}

func TestValidateDetectsInvalidConfigurations(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Cactus)
		wantErr string
	}{
		{
			name:    "negative height",
			mutate:  func(c *Cactus) { c.Body.Height = -1 },
			wantErr: "body.height",
		},
		{
			name:    "density above range",
			mutate:  func(c *Cactus) { c.Spines.Density = 101 },
			wantErr: "spines.density",
		},
		{
			name:    "nan flower size",
			mutate:  func(c *Cactus) { c.Addons.FlowerSize = math.NaN() },
			wantErr: "addons.flowerSize",
		},
		{
			name:    "too many arms",
			mutate:  func(c *Cactus) { c.Arms.Count = MaxArms + 1 },
			wantErr: "arms.count",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := Default()
			tt.mutate(&c)
			err := c.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestValidateReportsEveryProblem(t *testing.T) {
	c := Default()
	c.Body.Ribs = -2
	c.Arms.Thickness = 500
	err := c.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "body.ribs")
	assert.Contains(t, err.Error(), "arms.thickness")
}

func TestClamp(t *testing.T) {
	c := Cactus{
		Body:   Body{Height: -5, Width: math.Inf(1), Ribs: -3, Segmentation: -1},
		Spines: Spines{Density: 250, Length: math.NaN()},
		Addons: Addons{Flowers: -1, FlowerSizeVariation: -10},
		Arms:   Arms{Count: -2, Position: 130},
	}
	c.Clamp()
	assert.Zero(t, c.Body.Height)
	assert.Zero(t, c.Body.Width)
	assert.Zero(t, c.Body.Ribs)
	assert.Zero(t, c.Body.Segmentation)
	assert.Equal(t, 100.0, c.Spines.Density)
	assert.Zero(t, c.Spines.Length)
	assert.Zero(t, c.Addons.Flowers)
	assert.Zero(t, c.Addons.FlowerSizeVariation)
	assert.Zero(t, c.Arms.Count)
	assert.Equal(t, 100.0, c.Arms.Position)
}

func TestSegments(t *testing.T) {
	tests := []struct {
		segmentation, want int
	}{
		{20, 4},
		{0, 3},
		{-5, 3},
		{12, 3},
		{13, 3},
		{18, 4},
		{100, 20},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Body{Segmentation: tt.segmentation}.Segments(), "segmentation %d", tt.segmentation)
	}
	assert.Equal(t, 3, Body{Ribs: 0}.RadialSegments())
	assert.Equal(t, 8, Body{Ribs: 8}.RadialSegments())
}

func TestLoadMissingFileReturnsDefault(t *testing.T) {
	c, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), c)
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "cactus.yaml")
	want := Default()
	want.Arms.Count = 2
	want.Addons.Seed = -7
	require.NoError(t, Save(path, want))

	got, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestLoadPartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cactus.yaml")
	require.NoError(t, os.WriteFile(path, []byte("body:\n  ribs: 12\narms:\n  count: 3\n"), 0644))

	got, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 12, got.Body.Ribs)
	assert.Equal(t, 3, got.Arms.Count)
	assert.Equal(t, Default().Body.Height, got.Body.Height)
	assert.Equal(t, Default().Addons, got.Addons)
}

func TestLoadMalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cactus.yaml")
	require.NoError(t, os.WriteFile(path, []byte("body: [unclosed"), 0644))

	c, err := Load(path)
	require.Error(t, err)
	assert.Equal(t, Default(), c)
}

func TestSaveLoadOtherFormats(t *testing.T) {
	want := Default()
	want.Body.Ribs = 11
	want.Spines.Density = 12.5
	want.Arms.PlacementSeed = 42

	for _, name := range []string{"cactus.toml", "cactus.json", "cactus.yml"} {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), name)
			require.NoError(t, Save(path, want))
			got, err := Load(path)
			require.NoError(t, err)
			assert.Equal(t, want, got)
		})
	}
}

func TestLoadTOMLKeys(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cactus.toml")
	require.NoError(t, os.WriteFile(path, []byte("[body]\nribs = 6\n\n[addons]\nflowerSize = 40.0\n"), 0644))

	got, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 6, got.Body.Ribs)
	assert.Equal(t, 40.0, got.Addons.FlowerSize)
	assert.Equal(t, Default().Arms, got.Arms)
}

func TestExpandHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	got, err := Expand("~/shapes/cactus.yaml")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, "shapes", "cactus.yaml"), got)

	got, err = Expand("relative.yaml")
	require.NoError(t, err)
	assert.Equal(t, "relative.yaml", got)
}
