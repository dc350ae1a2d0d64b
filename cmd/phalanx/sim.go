package main

import (
	"log/slog"
	"math"
	"time"

	"github.com/spf13/cobra"

	"github.com/phalanxdev/phalanx/internal/game"
	"github.com/phalanxdev/phalanx/internal/hexgrid"
	"github.com/phalanxdev/phalanx/internal/levelgen"
	"github.com/phalanxdev/phalanx/internal/persistence"
)

// maxSimTurns bounds a self-playing session so a stuck bot cannot loop
// forever.
const maxSimTurns = 300

func newSimCmd(cfg Config) *cobra.Command {
	return &cobra.Command{
		Use:   "sim",
		Short: "Run a self-playing session and record the match",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSim(cfg)
		},
	}
}

func runSim(cfg Config) error {
	level := levelgen.Generate(levelgen.Config{
		Radius:        cfg.Radius,
		Seed:          cfg.Seed,
		WallThreshold: levelgen.DefaultConfig().WallThreshold,
		Enemies:       cfg.Enemies,
	})
	session := game.NewSession(level.Tiles, level.PlayerSpawn, level.EnemySpawns, game.SessionConfig{})
	return runSimSession(cfg, level, session, nil, 0)
}

// runSimSession drives a bot-controlled session to completion and saves
// the match record. When do is non-nil every command runs through it
// (the serve command passes the API server's lock); pace inserts a
// delay between turns for observers.
func runSimSession(cfg Config, level *levelgen.Level, session *game.Session, do func(func(*game.Session)), pace time.Duration) error {
	if do == nil {
		do = func(fn func(*game.Session)) { fn(session) }
	}

	var events []game.Event
	session.Subscribe(func(e game.Event) { events = append(events, e) })
	session.Subscribe(logEvent)

	slog.Info("session started",
		"session", session.ID,
		"seed", level.Seed,
		"tiles", len(level.Tiles),
		"enemies", len(level.EnemySpawns),
	)

	outcome := "abandoned"
	for turn := 0; turn < maxSimTurns; turn++ {
		var done bool
		do(func(s *game.Session) { done = playBotTurn(s) })
		if done {
			outcome = game.OutcomeName(session.State().Turn.Outcome)
			break
		}
		if pace > 0 {
			time.Sleep(pace)
		}
	}

	defeated := 0
	for _, e := range events {
		if e.Type == game.EventDefeat && e.Unit != session.State().Player.ID {
			defeated++
		}
	}

	db, err := persistence.Open(cfg.DBPath)
	if err != nil {
		return err
	}
	defer db.Close()

	rec := persistence.MatchRecord{
		ID:              session.ID,
		Seed:            level.Seed,
		Outcome:         outcome,
		Turns:           session.State().Turn.TurnIndex,
		EnemiesStart:    len(level.EnemySpawns),
		EnemiesDefeated: defeated,
	}
	if err := db.SaveMatch(rec, events); err != nil {
		return err
	}
	slog.Info("match recorded",
		"outcome", rec.Outcome,
		"turns", rec.Turns,
		"defeated", rec.EnemiesDefeated,
	)
	return nil
}

// playBotTurn takes one greedy action for the player. Returns true when
// the session ended or no legal move remains.
func playBotTurn(s *game.Session) bool {
	if s.State().Turn.GameOver {
		return true
	}

	dest, ok := pickBotMove(s.State())
	if !ok {
		slog.Warn("bot has no legal move, abandoning", "session", s.ID)
		return true
	}

	// Raise the block when walking into a threatened tile.
	for _, e := range s.State().LivingEnemies() {
		if s.State().CanAttack(e, dest) {
			s.ToggleBlock()
			break
		}
	}

	if err := s.SubmitMove(dest); err != nil {
		slog.Warn("bot move rejected", "dest", dest, "error", err)
		return true
	}
	return s.State().Turn.GameOver
}

// pickBotMove chooses the legal neighbor step that closes the most
// distance to the nearest living enemy.
func pickBotMove(state *game.State) (hexgrid.Hex, bool) {
	player := state.Player
	enemies := state.LivingEnemies()
	if len(enemies) == 0 {
		return hexgrid.Hex{}, false
	}

	var best hexgrid.Hex
	bestDist := math.MaxInt
	found := false
	for _, n := range player.Position.Neighbors() {
		if !state.Walkable(n) || state.Occupied(n) {
			continue
		}
		d := math.MaxInt
		for _, e := range enemies {
			if ed := hexgrid.Distance(n, e.Position); ed < d {
				d = ed
			}
		}
		if d < bestDist {
			best = n
			bestDist = d
			found = true
		}
	}
	return best, found
}

// logEvent mirrors the event stream to the structured log.
func logEvent(e game.Event) {
	switch e.Type {
	case game.EventAttack:
		slog.Debug("attack", "turn", e.Turn, "attacker", e.Unit, "target", e.Target, "damage", e.Damage, "blocked", e.Blocked)
	case game.EventDefeat:
		slog.Info("unit defeated", "turn", e.Turn, "unit", e.Unit)
	case game.EventGameOver:
		slog.Info("game over", "turn", e.Turn, "outcome", game.OutcomeName(e.Outcome))
	}
}
