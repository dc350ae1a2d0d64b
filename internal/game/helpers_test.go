package game

import (
	"github.com/phalanxdev/phalanx/internal/hexgrid"
)

// openArena builds a fully walkable disk of the given radius.
func openArena(radius int) map[hexgrid.Hex]bool {
	tiles := make(map[hexgrid.Hex]bool)
	for _, h := range hexgrid.HexesInRange(hexgrid.New(0, 0), radius) {
		tiles[h] = true
	}
	return tiles
}

// newTestSession builds a session on an open arena with the player at
// the origin.
func newTestSession(radius int, spawns ...Spawn) *Session {
	return NewSession(openArena(radius), hexgrid.New(0, 0), spawns, SessionConfig{})
}

// enemyByKind returns the first living enemy of the given variant.
func enemyByKind(s *Session, kind Kind) *Unit {
	for _, e := range s.State().LivingEnemies() {
		if e.Kind == kind {
			return e
		}
	}
	return nil
}

// record subscribes a capture buffer to the session's event stream.
func record(s *Session) *[]Event {
	var events []Event
	s.Subscribe(func(e Event) { events = append(events, e) })
	return &events
}

// eventsOfType filters a recorded stream by type.
func eventsOfType(events []Event, t EventType) []Event {
	var result []Event
	for _, e := range events {
		if e.Type == t {
			result = append(result, e)
		}
	}
	return result
}
