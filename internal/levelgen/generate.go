// Package levelgen produces playable arenas using layered simplex
// noise: a hex disk with noise-carved walls, a central player spawn,
// and enemy spawns in the outer ring. Generation is deterministic per
// seed.
package levelgen

import (
	"math"
	"math/rand"

	opensimplex "github.com/ojrac/opensimplex-go"

	"github.com/phalanxdev/phalanx/internal/game"
	"github.com/phalanxdev/phalanx/internal/hexgrid"
)

// Config holds arena generation parameters.
type Config struct {
	Radius        int     // Hex disk radius
	Seed          int64   // Random seed (0 = random)
	WallThreshold float64 // Noise values above this become walls (0.0-1.0)
	Enemies       int     // Number of enemies to place
}

// DefaultConfig returns a small, fair arena.
func DefaultConfig() Config {
	return Config{
		Radius:        5,
		Seed:          0,
		WallThreshold: 0.72,
		Enemies:       4,
	}
}

// Level is a generated arena ready to hand to a game session.
type Level struct {
	Seed        int64
	Tiles       map[hexgrid.Hex]bool
	PlayerSpawn hexgrid.Hex
	EnemySpawns []game.Spawn
}

// enemyMix cycles through the variant roster as enemies are placed.
var enemyMix = []game.Kind{
	game.KindGrunt,
	game.KindGrunt,
	game.KindWizard,
	game.KindSniperAxisQ,
	game.KindSniperAxisR,
	game.KindSniperAxisS,
}

// Generate builds an arena. Walls come from simplex noise; tiles the
// player cannot reach are sealed off so every placed enemy can path to
// the player.
func Generate(cfg Config) *Level {
	seed := cfg.Seed
	if seed == 0 {
		seed = rand.Int63()
	}
	noise := opensimplex.NewNormalized(seed)
	center := hexgrid.New(0, 0)

	tiles := make(map[hexgrid.Hex]bool)
	for _, coord := range hexgrid.HexesInRange(center, cfg.Radius) {
		// Hex axial to cartesian for noise sampling.
		x := float64(coord.Q) + float64(coord.R)*0.5
		y := float64(coord.R) * math.Sqrt(3.0) / 2.0
		tiles[coord] = noise.Eval2(x*0.35, y*0.35) < cfg.WallThreshold
	}
	tiles[center] = true

	// Seal off pockets the player cannot reach.
	reachable := floodFill(tiles, center)
	for coord, walkable := range tiles {
		if walkable && !reachable[coord] {
			tiles[coord] = false
		}
	}

	level := &Level{
		Seed:        seed,
		Tiles:       tiles,
		PlayerSpawn: center,
	}

	// Candidate spawn tiles: reachable, away from the player. Collect
	// from the outermost rings inward so enemies start at a distance.
	rng := rand.New(rand.NewSource(seed + 1))
	used := map[hexgrid.Hex]bool{center: true}
	for ring := cfg.Radius; ring >= 2 && len(level.EnemySpawns) < cfg.Enemies; ring-- {
		var candidates []hexgrid.Hex
		for _, coord := range hexgrid.Ring(center, ring) {
			if reachable[coord] && !used[coord] {
				candidates = append(candidates, coord)
			}
		}
		rng.Shuffle(len(candidates), func(i, j int) {
			candidates[i], candidates[j] = candidates[j], candidates[i]
		})
		for _, coord := range candidates {
			if len(level.EnemySpawns) >= cfg.Enemies {
				break
			}
			kind := enemyMix[len(level.EnemySpawns)%len(enemyMix)]
			level.EnemySpawns = append(level.EnemySpawns, game.Spawn{Kind: kind, Coord: coord})
			used[coord] = true
		}
	}

	return level
}

// floodFill returns the set of walkable tiles connected to start.
func floodFill(tiles map[hexgrid.Hex]bool, start hexgrid.Hex) map[hexgrid.Hex]bool {
	reachable := map[hexgrid.Hex]bool{start: true}
	frontier := []hexgrid.Hex{start}
	for len(frontier) > 0 {
		cur := frontier[len(frontier)-1]
		frontier = frontier[:len(frontier)-1]
		for _, n := range cur.Neighbors() {
			if tiles[n] && !reachable[n] {
				reachable[n] = true
				frontier = append(frontier, n)
			}
		}
	}
	return reachable
}
