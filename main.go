package main

import (
	"flag"
	"os"
	"runtime/pprof"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/domino14/huarongdao/config"
	"github.com/domino14/huarongdao/shell"
)

var (
	configPath  = flag.String("config", "", "path to an optional hrd.yml")
	profilePath = flag.String("profilepath", "", "path for profile")
)

func main() {
	flag.Parse()

	cfg := &config.Config{}
	if err := cfg.Load(*configPath); err != nil {
		log.Fatal().Err(err).Msg("could not load config")
	}
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		log.Fatal().Err(err).Str("level", cfg.LogLevel).Msg("bad log level")
	}
	zerolog.SetGlobalLevel(level)

	if *profilePath != "" {
		f, err := os.Create(*profilePath)
		if err != nil {
			log.Fatal().Err(err).Msg("")
		}
		pprof.StartCPUProfile(f)
		defer pprof.StopCPUProfile()
	}

	sc := shell.NewShellController(cfg)
	sc.Loop()
}
