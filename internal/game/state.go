package game

import (
	"sort"

	"github.com/phalanxdev/phalanx/internal/hexgrid"
)

// Tile is a single cell of the battle grid. Walkability is fixed at
// generation time; gameplay never toggles it.
type Tile struct {
	Coord    hexgrid.Hex `json:"coord"`
	Walkable bool        `json:"walkable"`
}

// Outcome is the terminal result of a session.
type Outcome uint8

const (
	OutcomeNone Outcome = iota
	OutcomeVictory
	OutcomeDefeat
)

// OutcomeName returns a human-readable outcome label.
func OutcomeName(o Outcome) string {
	switch o {
	case OutcomeVictory:
		return "victory"
	case OutcomeDefeat:
		return "defeat"
	}
	return "none"
}

// TurnState tracks whose turn it is and whether the session has ended.
// Mutated only by the turn orchestrator.
type TurnState struct {
	IsPlayerTurn bool    `json:"is_player_turn"`
	TurnIndex    int     `json:"turn_index"`
	GameOver     bool    `json:"game_over"`
	Outcome      Outcome `json:"outcome"`
}

// Spawn pairs a unit variant with its starting coordinate, as provided
// by the level generator.
type Spawn struct {
	Kind  Kind        `json:"kind"`
	Coord hexgrid.Hex `json:"coord"`
}

// State is the authoritative mutable world model: the tile grid, the
// player, and the enemy roster.
type State struct {
	Tiles   map[hexgrid.Hex]*Tile `json:"-"`
	Player  *Unit                 `json:"player"`
	Enemies map[UnitID]*Unit      `json:"enemies"`
	Turn    TurnState             `json:"turn"`

	// nextID is the entity-id counter, captured in snapshots so unit
	// identity survives rewinds.
	nextID UnitID
}

// NewState builds a world from a generated tile set and spawn list.
// The player always receives the first ID.
func NewState(tiles map[hexgrid.Hex]bool, playerSpawn hexgrid.Hex, enemySpawns []Spawn) *State {
	s := &State{
		Tiles:   make(map[hexgrid.Hex]*Tile, len(tiles)),
		Enemies: make(map[UnitID]*Unit, len(enemySpawns)),
		nextID:  1,
	}
	for coord, walkable := range tiles {
		s.Tiles[coord] = &Tile{Coord: coord, Walkable: walkable}
	}
	s.Player = NewUnit(s.allocID(), KindPlayer, playerSpawn)
	for _, spawn := range enemySpawns {
		e := NewUnit(s.allocID(), spawn.Kind, spawn.Coord)
		s.Enemies[e.ID] = e
	}
	return s
}

func (s *State) allocID() UnitID {
	id := s.nextID
	s.nextID++
	return id
}

// TileAt returns the tile at coord, or nil when coord is off the map.
func (s *State) TileAt(coord hexgrid.Hex) *Tile {
	return s.Tiles[coord]
}

// Walkable reports whether coord is on the map and passable.
func (s *State) Walkable(coord hexgrid.Hex) bool {
	tile := s.Tiles[coord]
	return tile != nil && tile.Walkable
}

// EnemyAt returns the living enemy occupying coord, or nil.
func (s *State) EnemyAt(coord hexgrid.Hex) *Unit {
	for _, e := range s.Enemies {
		if e.Alive() && e.Position == coord {
			return e
		}
	}
	return nil
}

// Occupied reports whether any living unit (player included) stands on coord.
func (s *State) Occupied(coord hexgrid.Hex) bool {
	if s.Player != nil && s.Player.Alive() && s.Player.Position == coord {
		return true
	}
	return s.EnemyAt(coord) != nil
}

// LivingEnemies returns the living roster in ascending ID order. Combat
// and the enemy phase both iterate this order, keeping resolution
// deterministic.
func (s *State) LivingEnemies() []*Unit {
	result := make([]*Unit, 0, len(s.Enemies))
	for _, e := range s.Enemies {
		if e.Alive() {
			result = append(result, e)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result
}

// RemoveEnemy drops a defeated enemy from the active roster.
func (s *State) RemoveEnemy(id UnitID) {
	delete(s.Enemies, id)
}
