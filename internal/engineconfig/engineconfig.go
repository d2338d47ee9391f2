package engineconfig

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"cactus-gen/internal/config"
)

// DefaultPath is the viewer preferences file, relative to the process working directory.
const DefaultPath = "config/engine.json"

// Prefs holds viewer-only preferences (overlays, grid, camera). Persisted across runs.
// The cactus shape itself lives in the file named by CactusConfig.
type Prefs struct {
	ShowFPS      bool   `json:"show_fps"`
	ShowStats    bool   `json:"show_stats"`
	GridVisible  bool   `json:"grid_visible"`
	AutoRotate   bool   `json:"auto_rotate"`
	ShowPanel    bool   `json:"show_panel"`
	CactusConfig string `json:"cactus_config,omitempty"`
	// Stylesheet optionally restyles the parameter panel.
	Stylesheet string `json:"stylesheet,omitempty"`
}

// Default returns default preferences: overlays off, panel and grid on,
// camera rotating.
func Default() Prefs {
	return Prefs{
		GridVisible:  true,
		AutoRotate:   true,
		ShowPanel:    true,
		CactusConfig: config.DefaultPath,
	}
}

// Load reads preferences from path. If the file is missing or invalid it
// returns Default() and does not create a file. Fields absent from the file
// keep their defaults.
func Load(path string) Prefs {
	data, err := os.ReadFile(path)
	if err != nil {
		return Default()
	}
	p := Default()
	if err := json.Unmarshal(data, &p); err != nil {
		return Default()
	}
	if p.CactusConfig == "" {
		p.CactusConfig = config.DefaultPath
	}
	return p
}

// Save writes preferences to path, creating the directory if needed.
func Save(path string, p Prefs) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}
	data, err := json.MarshalIndent(p, "", "\t")
	if err != nil {
		return fmt.Errorf("encode engine prefs: %w", err)
	}
	return os.WriteFile(path, data, 0644)
}
