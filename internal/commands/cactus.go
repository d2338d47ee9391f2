package commands

import (
	"flag"
	"fmt"

	"cactus-gen/internal/config"
)

// Env is what the cactus editing commands act on.
type Env struct {
	Store *config.Store
	// ConfigPath is where save and load read and write the YAML file.
	ConfigPath string
	// Log receives one line per command result.
	Log func(string)
	// Stats describes the current cactus; nil disables "cmd stats".
	Stats func() string
}

func (e Env) log(format string, args ...any) {
	if e.Log != nil {
		e.Log(fmt.Sprintf(format, args...))
	}
}

// RegisterCactus adds the shape editing commands. Flags default to the
// current value, so only the flags given on the line change anything.
func RegisterCactus(r *Registry, env Env) {
	r.Register("body", "body [--height N] [--width N] [--ribs N] [--segmentation N]", func(fs *flag.FlagSet) func() error {
		c, _ := env.Store.Snapshot()
		b := c.Body
		fs.Float64Var(&b.Height, "height", b.Height, "body height")
		fs.Float64Var(&b.Width, "width", b.Width, "body width")
		fs.IntVar(&b.Ribs, "ribs", b.Ribs, "rib count")
		fs.IntVar(&b.Segmentation, "segmentation", b.Segmentation, "vertical detail")
		return env.apply("body", func(c *config.Cactus) { c.Body = b })
	})

	r.Register("spines", "spines [--density N] [--length N]", func(fs *flag.FlagSet) func() error {
		c, _ := env.Store.Snapshot()
		s := c.Spines
		fs.Float64Var(&s.Density, "density", s.Density, "spine density 0-100")
		fs.Float64Var(&s.Length, "length", s.Length, "spine length")
		return env.apply("spines", func(c *config.Cactus) { c.Spines = s })
	})

	r.Register("flowers", "flowers [--count N] [--size N] [--variation N] [--seed N]", func(fs *flag.FlagSet) func() error {
		c, _ := env.Store.Snapshot()
		a := c.Addons
		seed := int(a.Seed)
		fs.IntVar(&a.Flowers, "count", a.Flowers, "flower count")
		fs.Float64Var(&a.FlowerSize, "size", a.FlowerSize, "flower size")
		fs.Float64Var(&a.FlowerSizeVariation, "variation", a.FlowerSizeVariation, "size variation 0-100")
		fs.IntVar(&seed, "seed", seed, "flower seed")
		return env.apply("flowers", func(c *config.Cactus) {
			a.Seed = int32(seed)
			a.PotSize = c.Addons.PotSize
			c.Addons = a
		})
	})

	r.Register("arms", "arms [--count N] [--position N] [--length N] [--thickness N] [--seed N]", func(fs *flag.FlagSet) func() error {
		c, _ := env.Store.Snapshot()
		a := c.Arms
		seed := int(a.PlacementSeed)
		fs.IntVar(&a.Count, "count", a.Count, "arm count")
		fs.Float64Var(&a.Position, "position", a.Position, "height on the body 0-100")
		fs.Float64Var(&a.Length, "length", a.Length, "arm length 0-100")
		fs.Float64Var(&a.Thickness, "thickness", a.Thickness, "arm thickness 0-100")
		fs.IntVar(&seed, "seed", seed, "placement seed")
		return env.apply("arms", func(c *config.Cactus) {
			a.PlacementSeed = int32(seed)
			c.Arms = a
		})
	})

	r.Register("pot", "pot [--size N]", func(fs *flag.FlagSet) func() error {
		c, _ := env.Store.Snapshot()
		size := c.Addons.PotSize
		fs.Float64Var(&size, "size", size, "pot size")
		return env.apply("pot", func(c *config.Cactus) { c.Addons.PotSize = size })
	})

	r.Register("reset", "reset", func(*flag.FlagSet) func() error {
		return func() error {
			env.Store.Replace(config.Default())
			env.log("reset to defaults")
			return nil
		}
	})

	r.Register("save", "save [--path file]", func(fs *flag.FlagSet) func() error {
		path := fs.String("path", env.ConfigPath, "config file (.yaml, .toml or .json)")
		return func() error {
			c, _ := env.Store.Snapshot()
			if err := config.Save(*path, c); err != nil {
				return fmt.Errorf("save: %w", err)
			}
			env.log("saved %s", *path)
			return nil
		}
	})

	r.Register("load", "load [--path file]", func(fs *flag.FlagSet) func() error {
		path := fs.String("path", env.ConfigPath, "config file (.yaml, .toml or .json)")
		return func() error {
			c, err := config.Load(*path)
			if err != nil {
				return fmt.Errorf("load: %w", err)
			}
			env.Store.Replace(c)
			env.log("loaded %s", *path)
			return nil
		}
	})

	if env.Stats != nil {
		r.Register("stats", "stats", func(*flag.FlagSet) func() error {
			return func() error {
				env.log("%s", env.Stats())
				return nil
			}
		})
	}

	r.Register("help", "help", func(*flag.FlagSet) func() error {
		return func() error {
			for _, name := range r.Names() {
				usage, _ := r.Usage(name)
				env.log("cmd %s", usage)
			}
			return nil
		}
	})
}

func (e Env) apply(name string, fn func(*config.Cactus)) func() error {
	return func() error {
		if err := e.Store.Update(fn); err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
		return nil
	}
}
