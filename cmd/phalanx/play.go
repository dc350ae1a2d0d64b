package main

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/phalanxdev/phalanx/internal/game"
	"github.com/phalanxdev/phalanx/internal/hexgrid"
	"github.com/phalanxdev/phalanx/internal/levelgen"
)

func newPlayCmd(cfg Config) *cobra.Command {
	return &cobra.Command{
		Use:   "play",
		Short: "Play an interactive session in the terminal",
		RunE: func(cmd *cobra.Command, args []string) error {
			level := levelgen.Generate(levelgen.Config{
				Radius:        cfg.Radius,
				Seed:          cfg.Seed,
				WallThreshold: levelgen.DefaultConfig().WallThreshold,
				Enemies:       cfg.Enemies,
			})
			session := game.NewSession(level.Tiles, level.PlayerSpawn, level.EnemySpawns, game.SessionConfig{})
			session.Subscribe(printEvent)
			return playLoop(session)
		},
	}
}

// playLoop reads one command per line until the player quits or the
// input closes. Commands: move <q> <r>, dash, block, rewind, status,
// quit.
func playLoop(session *game.Session) error {
	fmt.Println("commands: move <q> <r> | dash | block | rewind | status | quit")
	render(session)

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			return scanner.Err()
		}
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}

		switch fields[0] {
		case "move", "m":
			if len(fields) != 3 {
				fmt.Println("usage: move <q> <r>")
				continue
			}
			q, err1 := strconv.Atoi(fields[1])
			r, err2 := strconv.Atoi(fields[2])
			if err1 != nil || err2 != nil {
				fmt.Println("usage: move <q> <r>")
				continue
			}
			if err := session.SubmitMove(hexgrid.New(q, r)); err != nil {
				fmt.Println("rejected:", err)
				continue
			}
			render(session)
		case "dash", "d":
			if session.ToggleDash() {
				fmt.Println("dash mode:", session.State().Player.DashModeActive)
			} else {
				fmt.Println("dash unavailable, cooldown", session.State().Player.DashCooldown)
			}
		case "block", "b":
			if session.ToggleBlock() {
				fmt.Println("block raised:", session.State().Player.BlockActive)
			} else {
				fmt.Println("block unavailable, cooldown", session.State().Player.BlockCooldown)
			}
		case "rewind":
			res := session.Rewind()
			if !res.Success {
				fmt.Println("rewind refused:", res.Reason)
				continue
			}
			fmt.Printf("rewound to turn %d (%d respawned)\n", res.RestoredTurn, len(res.Respawned))
			render(session)
		case "status":
			printStatus(session.Status())
		case "quit", "q", "exit":
			return nil
		default:
			fmt.Println("unknown command:", fields[0])
		}

		if session.State().Turn.GameOver {
			st := session.Status()
			fmt.Printf("game over: %s (rewind still available: %v)\n", st.Outcome, st.CanRewind)
		}
	}
}

// render draws the board as offset rows, one glyph per tile.
func render(session *game.Session) {
	state := session.State()

	minQ, maxQ, minR, maxR := 0, 0, 0, 0
	for h := range state.Tiles {
		minQ, maxQ = min(minQ, h.Q), max(maxQ, h.Q)
		minR, maxR = min(minR, h.R), max(maxR, h.R)
	}

	threat := make(map[hexgrid.Hex]bool)
	for _, e := range state.LivingEnemies() {
		for _, h := range state.ThreatZone(e) {
			threat[h] = true
		}
	}

	for r := minR; r <= maxR; r++ {
		fmt.Print(strings.Repeat(" ", r-minR))
		for q := minQ; q <= maxQ; q++ {
			fmt.Printf("%c ", glyphAt(state, threat, hexgrid.New(q, r)))
		}
		fmt.Println()
	}
	printStatus(session.Status())
}

func glyphAt(state *game.State, threat map[hexgrid.Hex]bool, h hexgrid.Hex) rune {
	tile := state.TileAt(h)
	switch {
	case tile == nil:
		return ' '
	case !tile.Walkable:
		return '#'
	}
	if state.Player.Alive() && state.Player.Position == h {
		return '@'
	}
	if e := state.EnemyAt(h); e != nil {
		switch e.Kind {
		case game.KindWizard:
			return 'W'
		case game.KindSniperAxisQ, game.KindSniperAxisR, game.KindSniperAxisS:
			return 'S'
		default:
			return 'G'
		}
	}
	if threat[h] {
		return '!'
	}
	return '.'
}

func printStatus(st game.Status) {
	fmt.Printf("turn %d  hp %d/%d  enemies %d  dash cd %d  block cd %d  rewind %v\n",
		st.TurnIndex, st.PlayerHealth, st.PlayerMaxHealth, st.EnemiesRemaining,
		st.DashCooldown, st.BlockCooldown, st.CanRewind)
}

// printEvent narrates the resolution stream for the terminal player.
func printEvent(e game.Event) {
	switch e.Type {
	case game.EventAttack:
		if e.Blocked {
			fmt.Printf("  unit %d strikes unit %d, blocked\n", e.Unit, e.Target)
		} else {
			fmt.Printf("  unit %d hits unit %d for %d\n", e.Unit, e.Target, e.Damage)
		}
	case game.EventDefeat:
		fmt.Printf("  unit %d falls\n", e.Unit)
	case game.EventRewound:
		fmt.Printf("  time rewinds to turn %d\n", e.Turn)
	}
}
