package game

import (
	"github.com/phalanxdev/phalanx/internal/hexgrid"
)

// Combat resolution follows the stab-and-lunge ruleset:
//
//  1. Stab targets: melee enemies adjacent to both the pre- and
//     post-move tile (the move passed alongside them).
//  2. Lunge targets: enemies the mover advanced straight toward and
//     ended adjacent to.
//  3. The mover strikes stab then lunge targets, each enemy at most
//     once.
//  4. Every enemy that threatens the destination then strikes back, in
//     roster order, aborting the moment the mover falls. Enemies that
//     already threatened the pre-move tile are not exempt.
//
// A dash runs steps 1-3 and skips step 4 entirely.

// stabTargets returns melee enemies at distance exactly 1 from both
// oldPos and newPos, in roster order.
func stabTargets(s *State, oldPos, newPos hexgrid.Hex) []*Unit {
	var targets []*Unit
	for _, e := range s.LivingEnemies() {
		if !e.Melee() {
			continue
		}
		if hexgrid.Distance(e.Position, oldPos) == MeleeRange &&
			hexgrid.Distance(e.Position, newPos) == MeleeRange {
			targets = append(targets, e)
		}
	}
	return targets
}

// lungeTargets returns enemies on the movement ray that the mover
// closed with and ended adjacent to. Empty when the move was not a
// straight line.
func lungeTargets(s *State, oldPos, newPos hexgrid.Hex) []*Unit {
	dir, _, ok := hexgrid.DirectionOf(newPos.Sub(oldPos))
	if !ok {
		return nil
	}
	var targets []*Unit
	for _, e := range s.LivingEnemies() {
		if !hexgrid.OnRay(oldPos, dir, e.Position) {
			continue
		}
		if hexgrid.Distance(newPos, e.Position) >= hexgrid.Distance(oldPos, e.Position) {
			continue
		}
		if hexgrid.Distance(newPos, e.Position) != MeleeRange {
			continue
		}
		targets = append(targets, e)
	}
	return targets
}

// resolveCombat applies the full engagement sequence for a move the
// player has already made (player position == newPos). It returns the
// ordered effect stream. Reactive attacks are suppressed when the move
// was a dash.
func resolveCombat(s *State, oldPos, newPos hexgrid.Hex, dash bool) []Event {
	var events []Event
	player := s.Player

	// Player strikes: stab then lunge, no double hits.
	struck := make(map[UnitID]bool)
	targets := stabTargets(s, oldPos, newPos)
	targets = append(targets, lungeTargets(s, oldPos, newPos)...)
	for _, target := range targets {
		if struck[target.ID] || !target.Alive() {
			continue
		}
		struck[target.ID] = true
		events = append(events, applyDamage(s, player, target)...)
	}

	if dash {
		return events
	}

	// Reactive attacks against the destination, roster order, stopping
	// the moment the player falls.
	for _, e := range s.LivingEnemies() {
		if !s.CanAttack(e, newPos) {
			continue
		}
		events = append(events, applyDamage(s, e, player)...)
		if !player.Alive() {
			break
		}
	}
	return events
}

// applyDamage resolves a single attack. A player with an active block
// negates the hit entirely, consuming the block and starting its
// cooldown. A defeated enemy leaves the roster; a defeated player is
// kept in state so the terminal outcome can be reported.
func applyDamage(s *State, attacker, defender *Unit) []Event {
	turn := s.Turn.TurnIndex

	if defender.Kind == KindPlayer && defender.BlockActive {
		defender.BlockActive = false
		defender.BlockCooldown = BlockCooldownTurns
		return []Event{{
			Type:    EventAttack,
			Turn:    turn,
			Unit:    attacker.ID,
			Target:  defender.ID,
			Damage:  attacker.Damage,
			Blocked: true,
		}}
	}

	defender.Health -= attacker.Damage
	if defender.Health < 0 {
		defender.Health = 0
	}
	events := []Event{{
		Type:   EventAttack,
		Turn:   turn,
		Unit:   attacker.ID,
		Target: defender.ID,
		Damage: attacker.Damage,
	}}

	if !defender.Alive() {
		events = append(events, Event{Type: EventDefeat, Turn: turn, Unit: defender.ID})
		if defender.Kind != KindPlayer {
			s.RemoveEnemy(defender.ID)
		}
	}
	return events
}
