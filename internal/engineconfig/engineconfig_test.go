package engineconfig

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cactus-gen/internal/config"
)

func TestLoadMissingReturnsDefault(t *testing.T) {
	p := Load(filepath.Join(t.TempDir(), "engine.json"))
	assert.Equal(t, Default(), p)
	assert.Equal(t, config.DefaultPath, p.CactusConfig)
}

func TestLoadInvalidReturnsDefault(t *testing.T) {
	path := filepath.Join(t.TempDir(), "engine.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0644))
	assert.Equal(t, Default(), Load(path))
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "engine.json")
	want := Prefs{ShowFPS: true, GridVisible: false, AutoRotate: false, ShowPanel: true, CactusConfig: "shapes/tall.yaml", Stylesheet: "config/panel.css"}
	require.NoError(t, Save(path, want))
	assert.Equal(t, want, Load(path))
}

func TestPartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "engine.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"show_fps": true}`), 0644))

	p := Load(path)
	assert.True(t, p.ShowFPS)
	assert.True(t, p.GridVisible)
	assert.True(t, p.AutoRotate)
	assert.True(t, p.ShowPanel)
	assert.Empty(t, p.Stylesheet)
	assert.Equal(t, config.DefaultPath, p.CactusConfig)
}
