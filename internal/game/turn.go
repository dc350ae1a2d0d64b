package game

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/phalanxdev/phalanx/internal/hexgrid"
)

// Rule failures surfaced to callers. Illegal-but-expected input is
// rejected without state change; none of these are fatal.
var (
	ErrInvalidMove   = errors.New("invalid move")
	ErrNotPlayerTurn = errors.New("not the player's turn")
	ErrGameOver      = errors.New("game over")
)

// Session owns a single playthrough: the world state, the snapshot
// history, and the turn sequencing. All mutation happens synchronously
// within one logical thread of control; input arriving outside the
// player's turn is refused.
type Session struct {
	ID uuid.UUID

	state     *State
	history   *History
	listeners []Listener
	resolving bool
}

// SessionConfig tunes session construction.
type SessionConfig struct {
	HistoryDepth int // 0 means DefaultHistoryDepth
}

// NewSession builds a session from a generated level: the tile set, the
// player spawn, and the enemy spawn list. The first player turn begins
// immediately and its pre-action snapshot is captured.
func NewSession(tiles map[hexgrid.Hex]bool, playerSpawn hexgrid.Hex, enemySpawns []Spawn, cfg SessionConfig) *Session {
	s := &Session{
		ID:      uuid.New(),
		state:   NewState(tiles, playerSpawn, enemySpawns),
		history: NewHistory(cfg.HistoryDepth),
	}
	s.state.Turn = TurnState{IsPlayerTurn: true, TurnIndex: 1}
	s.history.Capture(s.state)
	s.emit(Event{Type: EventTurnChanged, Turn: 1, Unit: s.state.Player.ID, PlayerTurn: true})
	return s
}

// Subscribe registers a listener for the session's event stream.
// Listeners run synchronously on the resolving goroutine and must not
// mutate world state.
func (s *Session) Subscribe(l Listener) {
	s.listeners = append(s.listeners, l)
}

func (s *Session) emit(e Event) {
	for _, l := range s.listeners {
		l(e)
	}
}

// State exposes the world model for read-only observation.
func (s *Session) State() *State {
	return s.state
}

// History exposes the snapshot history for read-only observation.
func (s *Session) History() *History {
	return s.history
}

// acceptingInput gates stray commands: nothing is consumed while the
// game is over, during the enemy phase, or mid-resolution.
func (s *Session) acceptingInput() error {
	if s.state.Turn.GameOver {
		return ErrGameOver
	}
	if !s.state.Turn.IsPlayerTurn || s.resolving {
		return ErrNotPlayerTurn
	}
	return nil
}

// SubmitMove resolves one player move to destination: legality check,
// stab/lunge strikes, reactive attacks (unless dashing), then the enemy
// phase and the next turn's snapshot. Returns ErrInvalidMove (wrapped
// with a reason) when the destination is not currently legal.
func (s *Session) SubmitMove(destination hexgrid.Hex) error {
	if err := s.acceptingInput(); err != nil {
		return err
	}
	player := s.state.Player

	reach := player.MoveRange
	if player.DashModeActive {
		reach = DashRange
	}
	d := hexgrid.Distance(player.Position, destination)
	switch {
	case d == 0:
		return fmt.Errorf("%w: already on %v", ErrInvalidMove, destination)
	case d > reach:
		return fmt.Errorf("%w: %v is out of range (distance %d, reach %d)", ErrInvalidMove, destination, d, reach)
	case !s.state.Walkable(destination):
		return fmt.Errorf("%w: %v is not walkable", ErrInvalidMove, destination)
	case s.state.Occupied(destination):
		return fmt.Errorf("%w: %v is occupied", ErrInvalidMove, destination)
	}

	s.resolving = true
	defer func() { s.resolving = false }()

	turn := s.state.Turn.TurnIndex
	oldPos := player.Position
	dash := player.DashModeActive
	if dash {
		player.DashModeActive = false
		player.DashCooldown = DashCooldownTurns
	}

	s.emit(Event{Type: EventMoveStarted, Turn: turn, Unit: player.ID, From: &oldPos, To: &destination})
	player.Position = destination
	s.emit(Event{Type: EventMoveCompleted, Turn: turn, Unit: player.ID, From: &oldPos, To: &destination})

	for _, e := range resolveCombat(s.state, oldPos, destination, dash) {
		s.emit(e)
	}

	if !player.Alive() {
		s.finish(OutcomeDefeat)
		return nil
	}
	s.endPlayerTurn()
	return nil
}

// endPlayerTurn checks victory, runs the enemy phase, and opens the
// next player turn.
func (s *Session) endPlayerTurn() {
	if len(s.state.LivingEnemies()) == 0 {
		s.finish(OutcomeVictory)
		return
	}

	s.state.Turn.IsPlayerTurn = false
	s.emit(Event{Type: EventTurnChanged, Turn: s.state.Turn.TurnIndex, PlayerTurn: false})
	s.enemyPhase()

	s.state.Turn.TurnIndex++
	s.startPlayerTurn()
}

// enemyPhase moves each living enemy, in roster order. An enemy that
// already threatens the player holds position and never attacks on its
// own initiative; otherwise it takes the greedy step toward the player,
// or stands still when no step gets strictly closer. Enemy movement
// triggers no combat.
func (s *Session) enemyPhase() {
	turn := s.state.Turn.TurnIndex
	playerPos := s.state.Player.Position

	for _, e := range s.state.LivingEnemies() {
		if s.state.CanAttack(e, playerPos) {
			continue
		}

		best := e.Position
		bestDist := hexgrid.Distance(e.Position, playerPos)
		for _, coord := range hexgrid.HexesInRange(e.Position, e.MoveRange) {
			if coord == e.Position || !s.state.Walkable(coord) || s.state.Occupied(coord) {
				continue
			}
			if d := hexgrid.Distance(coord, playerPos); d < bestDist {
				best = coord
				bestDist = d
			}
		}
		if best == e.Position {
			continue
		}

		from := e.Position
		to := best
		s.emit(Event{Type: EventMoveStarted, Turn: turn, Unit: e.ID, From: &from, To: &to})
		e.Position = best
		s.emit(Event{Type: EventMoveCompleted, Turn: turn, Unit: e.ID, From: &from, To: &to})
	}
}

// startPlayerTurn ticks ability cooldowns, captures the pre-action
// snapshot, and hands control back to the player.
func (s *Session) startPlayerTurn() {
	player := s.state.Player
	if player.DashCooldown > 0 {
		player.DashCooldown--
	}
	if player.BlockCooldown > 0 {
		player.BlockCooldown--
	}
	player.DashModeActive = false
	s.state.Turn.IsPlayerTurn = true

	s.history.Capture(s.state)
	s.emit(Event{Type: EventTurnChanged, Turn: s.state.Turn.TurnIndex, Unit: player.ID, PlayerTurn: true})
}

// finish marks the session terminal and emits the outcome.
func (s *Session) finish(outcome Outcome) {
	s.state.Turn.GameOver = true
	s.state.Turn.Outcome = outcome
	slog.Info("session finished",
		"session", s.ID,
		"outcome", OutcomeName(outcome),
		"turn", s.state.Turn.TurnIndex,
	)
	s.emit(Event{Type: EventGameOver, Turn: s.state.Turn.TurnIndex, Outcome: outcome})
}

// CanRewind reports whether a rewind request would succeed right now.
func (s *Session) CanRewind() bool {
	return s.history.CanRewind() && s.state.Turn.IsPlayerTurn && !s.resolving
}

// Rewind undoes the most recently completed turn. Requests arriving
// mid-resolution or during the enemy phase are refused; rewinding out
// of a defeat is allowed.
func (s *Session) Rewind() RewindResult {
	// A terminal session is still rewindable, but an in-flight
	// resolution is not.
	if s.resolving || (!s.state.Turn.IsPlayerTurn && !s.state.Turn.GameOver) {
		return RewindResult{Reason: "turn resolution in progress"}
	}
	result := s.history.Rewind(s.state)
	if result.Success {
		s.emit(Event{Type: EventRewound, Turn: result.RestoredTurn, Unit: s.state.Player.ID, PlayerTurn: true})
	}
	return result
}
