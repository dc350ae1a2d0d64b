package game

import (
	"github.com/phalanxdev/phalanx/internal/hexgrid"
)

// EventType enumerates the notifications emitted during resolution.
type EventType uint8

const (
	EventMoveStarted EventType = iota
	EventMoveCompleted
	EventAttack
	EventDefeat
	EventTurnChanged
	EventGameOver
	EventRewound
)

// EventTypeName returns a human-readable event label.
func EventTypeName(t EventType) string {
	switch t {
	case EventMoveStarted:
		return "move-started"
	case EventMoveCompleted:
		return "move-completed"
	case EventAttack:
		return "attack"
	case EventDefeat:
		return "defeat"
	case EventTurnChanged:
		return "turn-changed"
	case EventGameOver:
		return "game-over"
	case EventRewound:
		return "rewound"
	}
	return "unknown"
}

// Event is a single ordered effect produced by turn resolution. The
// core never blocks on animation: it emits the ordered effect stream
// and the presentation layer owns timing.
type Event struct {
	Type EventType `json:"type"`
	Turn int       `json:"turn"`

	// Acting unit (mover, attacker, defeated unit, or whose turn began).
	Unit UnitID `json:"unit,omitempty"`

	// Attack fields.
	Target  UnitID `json:"target,omitempty"`
	Damage  int    `json:"damage,omitempty"`
	Blocked bool   `json:"blocked,omitempty"`

	// Movement fields.
	From *hexgrid.Hex `json:"from,omitempty"`
	To   *hexgrid.Hex `json:"to,omitempty"`

	// Turn-changed / game-over fields.
	PlayerTurn bool    `json:"player_turn,omitempty"`
	Outcome    Outcome `json:"outcome,omitempty"`
}

// Listener receives events as they are emitted. Listeners observe state
// but must never mutate it.
type Listener func(Event)
