package levelgen

import (
	"testing"

	"github.com/phalanxdev/phalanx/internal/hexgrid"
)

func TestGenerateDeterministic(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Seed = 1234

	a := Generate(cfg)
	b := Generate(cfg)

	if a.PlayerSpawn != b.PlayerSpawn {
		t.Fatal("player spawn differs between runs of the same seed")
	}
	if len(a.Tiles) != len(b.Tiles) {
		t.Fatalf("tile counts differ: %d vs %d", len(a.Tiles), len(b.Tiles))
	}
	for coord, walkable := range a.Tiles {
		if b.Tiles[coord] != walkable {
			t.Fatalf("tile %v differs between runs", coord)
		}
	}
	if len(a.EnemySpawns) != len(b.EnemySpawns) {
		t.Fatalf("spawn counts differ: %d vs %d", len(a.EnemySpawns), len(b.EnemySpawns))
	}
	for i := range a.EnemySpawns {
		if a.EnemySpawns[i] != b.EnemySpawns[i] {
			t.Fatalf("spawn %d differs between runs", i)
		}
	}
}

func TestGenerateSpawnsAreValid(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Seed = 77
	cfg.Enemies = 6

	level := Generate(cfg)

	if !level.Tiles[level.PlayerSpawn] {
		t.Fatal("player spawn must be walkable")
	}
	if len(level.EnemySpawns) == 0 {
		t.Fatal("expected at least one enemy spawn")
	}

	seen := make(map[hexgrid.Hex]bool)
	reachable := floodFill(level.Tiles, level.PlayerSpawn)
	for _, spawn := range level.EnemySpawns {
		if !level.Tiles[spawn.Coord] {
			t.Errorf("enemy spawn %v is not walkable", spawn.Coord)
		}
		if !reachable[spawn.Coord] {
			t.Errorf("enemy spawn %v cannot reach the player", spawn.Coord)
		}
		if spawn.Coord == level.PlayerSpawn {
			t.Error("enemy spawned on the player")
		}
		if seen[spawn.Coord] {
			t.Errorf("duplicate enemy spawn at %v", spawn.Coord)
		}
		seen[spawn.Coord] = true
	}
}

func TestGenerateSealsUnreachablePockets(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Seed = 9001
	cfg.Radius = 7

	level := Generate(cfg)
	reachable := floodFill(level.Tiles, level.PlayerSpawn)
	for coord, walkable := range level.Tiles {
		if walkable && !reachable[coord] {
			t.Errorf("walkable tile %v is unreachable from the player spawn", coord)
		}
	}
}
