package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"

	"cactus-gen/internal/cactus"
	"cactus-gen/internal/commands"
	"cactus-gen/internal/config"
	"cactus-gen/internal/debug"
	"cactus-gen/internal/engineconfig"
	"cactus-gen/internal/graphics"
	"cactus-gen/internal/logger"
	"cactus-gen/internal/primitives"
	"cactus-gen/internal/scene"
	"cactus-gen/internal/snapshot"
	"cactus-gen/internal/terminal"
	"cactus-gen/internal/ui"
)

// shot is a snapshot requested by a command, taken at the end of the next draw.
type shot struct {
	path  string
	width int
}

// viewer ties the live config store to the generator and the window.
type viewer struct {
	log       *logger.Logger
	store     *config.Store
	prefs     engineconfig.Prefs
	prefsPath string

	gen    *cactus.Generator
	meshes *primitives.Registry
	scn    *scene.Scene
	term   *terminal.Terminal
	dbg    *debug.Debug
	ui     *ui.Engine
	panel  *ui.Panel

	pending *shot
	stop    context.CancelFunc
}

func newViewer(log *logger.Logger, store *config.Store, prefs engineconfig.Prefs, prefsPath string) *viewer {
	gen := cactus.NewGenerator(nil)
	meshes := primitives.NewRegistry(gen.Palette())
	v := &viewer{
		log:       log,
		store:     store,
		prefs:     prefs,
		prefsPath: prefsPath,
		gen:       gen,
		meshes:    meshes,
		scn:       scene.New(meshes),
		dbg:       debug.New(),
		ui:        ui.New(),
		panel:     ui.NewPanel(),
		stop:      func() {},
	}
	v.scn.SetGridVisible(prefs.GridVisible)
	v.scn.SetAutoRotate(prefs.AutoRotate)
	v.dbg.SetShowFPS(prefs.ShowFPS)
	v.dbg.SetShowStats(prefs.ShowStats)
	if prefs.Stylesheet != "" {
		if err := v.ui.LoadCSS(prefs.Stylesheet); err != nil {
			log.Log(err.Error())
		}
	}
	v.showPanel(prefs.ShowPanel)

	reg := commands.NewRegistry()
	commands.RegisterCactus(reg, commands.Env{
		Store:      store,
		ConfigPath: prefs.CactusConfig,
		Log:        log.Log,
		Stats:      func() string { return cactus.Summarize(gen.Current()).String() },
	})
	reg.RegisterToggle("grid", "show", "hide", func(on bool) error {
		v.scn.SetGridVisible(on)
		v.prefs.GridVisible = on
		return v.savePrefs()
	})
	reg.RegisterToggle("fps", "show", "hide", func(on bool) error {
		v.dbg.SetShowFPS(on)
		v.prefs.ShowFPS = on
		return v.savePrefs()
	})
	reg.RegisterToggle("overlay", "show", "hide", func(on bool) error {
		v.dbg.SetShowStats(on)
		v.prefs.ShowStats = on
		return v.savePrefs()
	})
	reg.RegisterToggle("panel", "show", "hide", func(on bool) error {
		v.showPanel(on)
		v.prefs.ShowPanel = on
		return v.savePrefs()
	})
	reg.RegisterToggle("rotate", "on", "off", func(on bool) error {
		v.scn.SetAutoRotate(on)
		v.prefs.AutoRotate = on
		return v.savePrefs()
	})
	reg.Register("snapshot", "snapshot [--out file] [--width N]", func(fs *flag.FlagSet) func() error {
		out := fs.String("out", "", "image file (.png or .jpg)")
		width := fs.Int("width", 0, "scale to this width, 0 keeps the window size")
		return func() error {
			if *width < 0 {
				return fmt.Errorf("snapshot: width must not be negative")
			}
			path := *out
			if path == "" {
				path = snapshot.DefaultPath(time.Now())
			}
			v.pending = &shot{path: path, width: *width}
			return nil
		}
	})
	v.term = terminal.New(log, reg)
	return v
}

func (v *viewer) savePrefs() error {
	return engineconfig.Save(v.prefsPath, v.prefs)
}

func (v *viewer) showPanel(on bool) {
	if on {
		v.ui.SetNodes(v.panel.Nodes())
		return
	}
	v.ui.SetNodes(nil)
}

// watch follows edits to the cactus config file until close.
func (v *viewer) watch() {
	path, err := config.Expand(v.prefs.CactusConfig)
	if err == nil {
		err = os.MkdirAll(filepath.Dir(path), 0755)
	}
	if err != nil {
		v.log.Log(err.Error())
		return
	}
	ctx, cancel := context.WithCancel(context.Background())
	report := func(err error) { v.log.Logf("config watch: %v", err) }
	if err := config.Watch(ctx, path, v.store, report); err != nil {
		cancel()
		v.log.Log(err.Error())
		return
	}
	v.stop = cancel
}

func (v *viewer) run() {
	v.watch()
	graphics.Run(graphics.Window{
		Title:      "Cactus",
		Width:      1280,
		Height:     800,
		Background: scene.Background,
	}, v.update, v.draw, v.close)
}

func (v *viewer) update() {
	v.term.Update()
	if g, built := v.gen.Refresh(v.store); built {
		stats := cactus.Summarize(g)
		v.log.Logf("generated: %s", stats)
		v.dbg.SetStats(
			fmt.Sprintf("meshes %d  spine sets %d", stats.Meshes, stats.Lines),
			fmt.Sprintf("vertices %d  spines %d", stats.Vertices, stats.Spines),
		)
		cfg, _ := v.store.Snapshot()
		v.panel.Update(cfg)
	}
	v.scn.Show(v.gen.Current())
	v.scn.Update(!v.term.IsOpen())
}

func (v *viewer) draw() {
	v.scn.Draw()
	if v.pending != nil {
		v.capture(*v.pending)
		v.pending = nil
	}
	v.ui.Draw()
	v.term.Draw()
	v.dbg.Draw()
}

// capture saves the 3D view drawn so far, before any overlay.
func (v *viewer) capture(s shot) {
	img := rl.LoadImageFromScreen()
	defer rl.UnloadImage(img)
	if err := snapshot.Save(s.path, img.ToImage(), s.width); err != nil {
		v.log.Log(err.Error())
		return
	}
	v.log.Logf("snapshot %s", s.path)
}

// close stops the watcher and releases GPU meshes before the CPU buffers
// they were built from.
func (v *viewer) close() {
	v.stop()
	v.meshes.Close()
	v.gen.Close()
}
