package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/muesli/termenv"

	"cactus-gen/internal/cactus"
	"cactus-gen/internal/config"
	"cactus-gen/internal/engineconfig"
	"cactus-gen/internal/logger"
)

func main() {
	prefsPath := flag.String("prefs", engineconfig.DefaultPath, "viewer preferences file")
	cfgPath := flag.String("config", "", "cactus config file, .yaml .toml or .json (default from preferences)")
	headless := flag.Bool("headless", false, "generate once, print a summary and exit")
	flag.Parse()

	out := termenv.NewOutput(os.Stdout)
	log := logger.New(logger.DefaultPath)
	prefs := engineconfig.Load(*prefsPath)
	if *cfgPath != "" {
		prefs.CactusConfig = *cfgPath
	}
	if p, err := config.Expand(prefs.CactusConfig); err == nil {
		prefs.CactusConfig = p
	}

	cfg, err := config.Load(prefs.CactusConfig)
	if err != nil {
		log.Log(err.Error())
		errOut := termenv.NewOutput(os.Stderr)
		fmt.Fprintln(errOut, errOut.String(err.Error()).Foreground(errOut.Color("#b91c1c")))
	}

	if *headless {
		gen := cactus.NewGenerator(nil)
		defer gen.Close()
		stats := cactus.Summarize(gen.Regenerate(cfg))
		log.Logf("generated: %s", stats)
		fmt.Fprintf(out, "%s %s\n",
			out.String(prefs.CactusConfig).Bold().Foreground(out.Color("#4d7c0f")),
			stats)
		return
	}

	v := newViewer(log, config.NewStore(cfg), prefs, *prefsPath)
	v.run()
}
