// Command phalanx runs the hex tactics engine: an interactive terminal
// game, a self-playing simulation, or an observable server session.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/spf13/cobra"
)

// Config is the environment-driven application configuration.
type Config struct {
	Addr     string `env:"PHALANX_ADDR" envDefault:":8080"`
	DBPath   string `env:"PHALANX_DB" envDefault:"phalanx.db"`
	Seed     int64  `env:"PHALANX_SEED" envDefault:"0"`
	Radius   int    `env:"PHALANX_RADIUS" envDefault:"5"`
	Enemies  int    `env:"PHALANX_ENEMIES" envDefault:"4"`
	LogLevel string `env:"PHALANX_LOG_LEVEL" envDefault:"info"`
}

func loadConfig() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return cfg, fmt.Errorf("parse config: %w", err)
	}
	return cfg, nil
}

func setupLogging(level string) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		lvl = slog.LevelInfo
	}
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: lvl}))
	slog.SetDefault(logger)
}

func main() {
	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	setupLogging(cfg.LogLevel)

	root := &cobra.Command{
		Use:   "phalanx",
		Short: "Hex-grid tactics engine",
		Long:  "Phalanx is a deterministic turn-resolution engine for hex-grid tactics, with reactive combat, abilities, and turn rewind.",
	}
	root.AddCommand(newPlayCmd(cfg), newSimCmd(cfg), newServeCmd(cfg))

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}
