// naja is a terminal snake game. Run it locally with:
//
//	go run . [-config path/to/naja.toml] [-seed text]
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"naja/internal/audio"
	"naja/internal/config"
	"naja/internal/game"
	"naja/internal/logging"
	"naja/internal/store"

	"go.uber.org/zap"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfgPath := flag.String("config", defaultConfigPath(), "Path to the TOML config (defaults when absent)")
	seed := flag.String("seed", "", "Seed text for a reproducible board")
	flag.Parse()

	cfg, err := config.LoadOrDefault(*cfgPath)
	if err != nil {
		return err
	}
	if *seed != "" {
		cfg.Rules.Seed = *seed
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	st, err := store.Open(cfg.Storage.Dir)
	if err != nil {
		return err
	}
	logPath := cfg.Logging.File
	if logPath == "" {
		logPath = st.LogPath()
	}
	log, err := logging.New(cfg.Logging, logPath)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer log.Sync()

	var sound audio.Player = audio.Nop{}
	if cfg.Audio.Enabled {
		b, err := audio.NewBeep()
		if err != nil {
			log.Warn("audio unavailable", zap.Error(err))
		} else {
			sound = b
		}
	}

	g, err := game.New(cfg, log, game.WithStore(st), game.WithAudio(sound))
	if err != nil {
		sound.Close()
		return err
	}
	log.Info("game started", zap.String("config", *cfgPath), zap.String("data_dir", st.Dir()))
	return g.Run()
}

// defaultConfigPath is <user config dir>/naja/config.toml, or empty when the
// config dir cannot be determined.
func defaultConfigPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "naja", "config.toml")
}
