package main

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/phalanxdev/phalanx/internal/api"
	"github.com/phalanxdev/phalanx/internal/game"
	"github.com/phalanxdev/phalanx/internal/levelgen"
)

func newServeCmd(cfg Config) *cobra.Command {
	var pace time.Duration
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run a paced self-playing session behind the observation API",
		RunE: func(cmd *cobra.Command, args []string) error {
			level := levelgen.Generate(levelgen.Config{
				Radius:        cfg.Radius,
				Seed:          cfg.Seed,
				WallThreshold: levelgen.DefaultConfig().WallThreshold,
				Enemies:       cfg.Enemies,
			})
			session := game.NewSession(level.Tiles, level.PlayerSpawn, level.EnemySpawns, game.SessionConfig{})
			server := api.NewServer(cfg.Addr, session)
			server.Start()

			// The bot drives the same session the API observes; every
			// command goes through the server's lock.
			return runSimSession(cfg, level, session, server.Do, pace)
		},
	}
	cmd.Flags().DurationVar(&pace, "pace", 2*time.Second, "delay between bot turns")
	return cmd
}
