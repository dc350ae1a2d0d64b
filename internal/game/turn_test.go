package game

import (
	"errors"
	"testing"

	"github.com/phalanxdev/phalanx/internal/hexgrid"
)

func TestSubmitMoveRejectsIllegalDestinations(t *testing.T) {
	cases := []struct {
		name string
		dest hexgrid.Hex
	}{
		{"own tile", hexgrid.New(0, 0)},
		{"out of range", hexgrid.New(2, 0)},
		{"occupied", hexgrid.New(1, 0)},
		{"wall", hexgrid.New(0, 1)},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			tiles := openArena(4)
			tiles[hexgrid.New(0, 1)] = false
			s := NewSession(tiles, hexgrid.New(0, 0),
				[]Spawn{{Kind: KindGrunt, Coord: hexgrid.New(1, 0)}}, SessionConfig{})
			before := s.State().Player.Position
			err := s.SubmitMove(tc.dest)
			if !errors.Is(err, ErrInvalidMove) {
				t.Fatalf("expected ErrInvalidMove, got %v", err)
			}
			if s.State().Player.Position != before {
				t.Error("rejected move must not change state")
			}
			if s.State().Turn.TurnIndex != 1 {
				t.Error("rejected move must not advance the turn")
			}
		})
	}
}

func TestSubmitMoveRejectedAfterGameOver(t *testing.T) {
	s := newTestSession(6, Spawn{Kind: KindWizard, Coord: hexgrid.New(2, 0)})
	if err := s.SubmitMove(hexgrid.New(1, 0)); err != nil {
		t.Fatalf("winning move rejected: %v", err)
	}
	if err := s.SubmitMove(hexgrid.New(0, 1)); !errors.Is(err, ErrGameOver) {
		t.Fatalf("expected ErrGameOver, got %v", err)
	}
}

// A distant enemy takes the greedy step toward the player; one already
// in threat range holds position and does not attack on its own
// initiative.
func TestEnemyPhaseGreedyAdvance(t *testing.T) {
	far := hexgrid.New(4, 0)
	near := hexgrid.New(0, 2) // distance 3 from the move destination below
	s := newTestSession(6,
		Spawn{Kind: KindGrunt, Coord: far},
		Spawn{Kind: KindGrunt, Coord: near},
	)
	farGrunt := s.State().Enemies[2]
	nearGrunt := s.State().Enemies[3]
	playerBefore := s.State().Player.Health

	if err := s.SubmitMove(hexgrid.New(-1, 0)); err != nil {
		t.Fatalf("move rejected: %v", err)
	}

	dest := hexgrid.New(-1, 0)
	if got := hexgrid.Distance(farGrunt.Position, dest); got != 4 {
		t.Errorf("far grunt at distance %d after its step, want 4 (was 5)", got)
	}
	if got := hexgrid.Distance(nearGrunt.Position, dest); got != 2 {
		t.Errorf("near grunt at distance %d, want 2 (one step closer)", got)
	}
	if playerBefore != s.State().Player.Health {
		t.Error("enemy movement must not trigger combat")
	}
}

func TestEnemyHoldsWhenThreatening(t *testing.T) {
	sniperPos := hexgrid.New(0, -4)
	s := newTestSession(6, Spawn{Kind: KindSniperAxisQ, Coord: sniperPos})
	sniper := enemyByKind(s, KindSniperAxisQ)

	// Move along the sniper's axis: it takes its reactive shot at the
	// destination, then holds during the enemy phase instead of moving
	// or firing again.
	if err := s.SubmitMove(hexgrid.New(0, 1)); err != nil {
		t.Fatalf("move rejected: %v", err)
	}
	if sniper.Position != sniperPos {
		t.Error("threatening enemy must hold position")
	}
	player := s.State().Player
	if player.Health != player.MaxHealth-1 {
		t.Errorf("player health %d, want %d: one reactive shot, no enemy-phase attack",
			player.Health, player.MaxHealth-1)
	}
}

func TestCooldownsTickAtTurnStart(t *testing.T) {
	s := newTestSession(6, Spawn{Kind: KindGrunt, Coord: hexgrid.New(4, 0)})
	if !s.ToggleDash() {
		t.Fatal("dash toggle refused")
	}
	if err := s.SubmitMove(hexgrid.New(-2, 0)); err != nil {
		t.Fatalf("dash rejected: %v", err)
	}
	player := s.State().Player
	if player.DashCooldown != DashCooldownTurns-1 {
		t.Fatalf("dash cooldown %d after one turn, want %d", player.DashCooldown, DashCooldownTurns-1)
	}

	// Dash stays refused until the cooldown expires.
	if s.ToggleDash() {
		t.Error("dash toggle must be refused while on cooldown")
	}

	// Shuffle between two tiles until the cooldown runs out.
	for i := 0; i < DashCooldownTurns-1; i++ {
		dest := hexgrid.New(-1, 0)
		if i%2 == 1 {
			dest = hexgrid.New(-2, 0)
		}
		if err := s.SubmitMove(dest); err != nil {
			t.Fatalf("move %d rejected: %v", i, err)
		}
	}
	if player.DashCooldown != 0 {
		t.Fatalf("dash cooldown %d after waiting, want 0", player.DashCooldown)
	}
	if !s.ToggleDash() {
		t.Error("dash toggle must succeed once the cooldown expires")
	}
}

func TestToggleBlockDeactivateWithoutPenalty(t *testing.T) {
	s := newTestSession(4)
	if !s.ToggleBlock() {
		t.Fatal("block toggle refused")
	}
	if !s.ToggleBlock() {
		t.Fatal("deactivating an armed block must succeed")
	}
	player := s.State().Player
	if player.BlockActive || player.BlockCooldown != 0 {
		t.Errorf("expected inactive block with no cooldown, got active=%v cooldown=%d",
			player.BlockActive, player.BlockCooldown)
	}
}

func TestTurnAdvancesAndSnapshots(t *testing.T) {
	s := newTestSession(6, Spawn{Kind: KindGrunt, Coord: hexgrid.New(4, 0)})
	if s.History().Len() != 1 {
		t.Fatalf("expected the initial snapshot, history len %d", s.History().Len())
	}
	if err := s.SubmitMove(hexgrid.New(-1, 0)); err != nil {
		t.Fatalf("move rejected: %v", err)
	}
	if s.State().Turn.TurnIndex != 2 {
		t.Errorf("turn index %d, want 2", s.State().Turn.TurnIndex)
	}
	if !s.State().Turn.IsPlayerTurn {
		t.Error("control must return to the player")
	}
	if s.History().Len() != 2 {
		t.Errorf("history len %d, want 2 (snapshot per player turn)", s.History().Len())
	}
}
