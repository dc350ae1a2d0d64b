// Package game implements the turn-resolution rules engine: world state,
// threat evaluation, combat resolution, turn sequencing, abilities, and
// the snapshot/rewind history.
package game

import (
	"github.com/phalanxdev/phalanx/internal/hexgrid"
)

// UnitID is a unique identifier for a unit within a session.
// IDs are stable across a turn and across rewinds to the same snapshot.
type UnitID uint64

// Kind discriminates the closed set of unit variants.
type Kind uint8

const (
	KindPlayer Kind = iota
	KindGrunt
	KindWizard
	KindSniperAxisQ
	KindSniperAxisR
	KindSniperAxisS
)

// KindName returns a human-readable variant name.
func KindName(k Kind) string {
	switch k {
	case KindPlayer:
		return "player"
	case KindGrunt:
		return "grunt"
	case KindWizard:
		return "wizard"
	case KindSniperAxisQ:
		return "sniper-q"
	case KindSniperAxisR:
		return "sniper-r"
	case KindSniperAxisS:
		return "sniper-s"
	}
	return "unknown"
}

// RangePattern describes the shape of a unit's threat zone.
type RangePattern uint8

const (
	PatternCircle   RangePattern = iota // The six adjacent tiles (melee)
	PatternDiagonal                     // All six rays, distance 2..5
	PatternAxisQ                        // The two q-axis rays, distance 2..5
	PatternAxisR                        // The two r-axis rays, distance 2..5
	PatternAxisS                        // The two s-axis rays, distance 2..5
)

// Range limits per pattern class.
const (
	MeleeRange     = 1
	RangedMinRange = 2
	RangedMaxRange = 5
)

// Ability tuning constants.
const (
	DashCooldownTurns  = 4
	BlockCooldownTurns = 3
	DashRange          = 2
)

// Unit is a combatant on the grid. Player-only ability fields stay zero
// for enemy variants.
type Unit struct {
	ID        UnitID       `json:"id"`
	Kind      Kind         `json:"kind"`
	Position  hexgrid.Hex  `json:"position"`
	Health    int          `json:"health"`
	MaxHealth int          `json:"max_health"`
	Damage    int          `json:"damage"`
	MoveRange int          `json:"move_range"`
	Pattern   RangePattern `json:"pattern"`

	// Player abilities.
	DashCooldown   int  `json:"dash_cooldown,omitempty"`
	DashModeActive bool `json:"dash_mode_active,omitempty"`
	BlockCooldown  int  `json:"block_cooldown,omitempty"`
	BlockActive    bool `json:"block_active,omitempty"`
}

// Alive reports whether the unit is still in the fight.
func (u *Unit) Alive() bool {
	return u.Health > 0
}

// Melee reports whether the unit attacks at distance 1 only.
func (u *Unit) Melee() bool {
	return u.Pattern == PatternCircle
}

// MinRange returns the closest distance the unit can attack.
func (u *Unit) MinRange() int {
	if u.Melee() {
		return MeleeRange
	}
	return RangedMinRange
}

// MaxRange returns the farthest distance the unit can attack.
func (u *Unit) MaxRange() int {
	if u.Melee() {
		return MeleeRange
	}
	return RangedMaxRange
}

// variantStats holds the base attribute block for each unit variant.
type variantStats struct {
	maxHealth int
	damage    int
	moveRange int
	pattern   RangePattern
}

var statsByKind = map[Kind]variantStats{
	KindPlayer:      {maxHealth: 3, damage: 1, moveRange: 1, pattern: PatternCircle},
	KindGrunt:       {maxHealth: 2, damage: 1, moveRange: 1, pattern: PatternCircle},
	KindWizard:      {maxHealth: 1, damage: 1, moveRange: 1, pattern: PatternDiagonal},
	KindSniperAxisQ: {maxHealth: 1, damage: 1, moveRange: 1, pattern: PatternAxisQ},
	KindSniperAxisR: {maxHealth: 1, damage: 1, moveRange: 1, pattern: PatternAxisR},
	KindSniperAxisS: {maxHealth: 1, damage: 1, moveRange: 1, pattern: PatternAxisS},
}

// NewUnit builds a unit of the given variant at full health.
func NewUnit(id UnitID, kind Kind, pos hexgrid.Hex) *Unit {
	stats := statsByKind[kind]
	return &Unit{
		ID:        id,
		Kind:      kind,
		Position:  pos,
		Health:    stats.maxHealth,
		MaxHealth: stats.maxHealth,
		Damage:    stats.damage,
		MoveRange: stats.moveRange,
		Pattern:   stats.pattern,
	}
}
