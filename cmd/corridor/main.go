package main

import (
	"flag"
	"fmt"
	"os"

	"corridor/internal/config"
	"corridor/internal/game"
	"corridor/internal/logger"
)

func main() {
	if err := config.LoadEnv(); err != nil {
		fmt.Fprintf(os.Stderr, "env: %v\n", err)
		os.Exit(1)
	}

	var (
		cfgPath = flag.String("config", config.GetEnv(config.EnvConfigPath, ""), "path to YAML config (optional)")
		speed   = flag.Float64("speed", 0, "hallway speed override in units/s (0 keeps config)")
	)
	flag.Parse()

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}
	cfg.Hallway.Speed = config.GetEnvFloat(config.EnvSpeed, cfg.Hallway.Speed)
	if *speed > 0 {
		cfg.Hallway.Speed = *speed
	}

	log := logger.New(
		config.GetEnv(config.EnvLogLevel, cfg.Log.Level),
		config.GetEnv(config.EnvLogFormat, cfg.Log.Format),
		os.Stderr,
	)
	log.Info("starting", "config", *cfgPath, "speed", cfg.Hallway.Speed)

	if err := game.Run(cfg, log); err != nil {
		log.Error("exit", "err", err)
		os.Exit(1)
	}
}
