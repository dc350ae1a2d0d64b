package game

import (
	"github.com/phalanxdev/phalanx/internal/hexgrid"
)

// patternDirections returns the ray directions a ranged pattern fires
// along. The snipers fire along the two opposite directions of their
// chosen axis (the axis whose cube component stays zero).
func patternDirections(p RangePattern) []hexgrid.Hex {
	switch p {
	case PatternDiagonal:
		return hexgrid.Directions[:]
	case PatternAxisQ:
		return []hexgrid.Hex{{Q: 0, R: 1, S: -1}, {Q: 0, R: -1, S: 1}}
	case PatternAxisR:
		return []hexgrid.Hex{{Q: 1, R: 0, S: -1}, {Q: -1, R: 0, S: 1}}
	case PatternAxisS:
		return []hexgrid.Hex{{Q: 1, R: -1, S: 0}, {Q: -1, R: 1, S: 0}}
	}
	return nil
}

// RawThreat enumerates the tiles a unit's pattern covers from its
// current position, ignoring line-of-sight. Melee covers the six
// neighbors; ranged patterns cover their rays at distance 2..5.
func RawThreat(u *Unit) []hexgrid.Hex {
	if u.Melee() {
		n := u.Position.Neighbors()
		return n[:]
	}
	dirs := patternDirections(u.Pattern)
	result := make([]hexgrid.Hex, 0, len(dirs)*(RangedMaxRange-RangedMinRange+1))
	for _, dir := range dirs {
		for k := RangedMinRange; k <= RangedMaxRange; k++ {
			result = append(result, u.Position.Add(dir.Scale(k)))
		}
	}
	return result
}

// ThreatZone enumerates the tiles a unit can currently attack: the raw
// pattern filtered by line-of-sight for ranged units.
func (s *State) ThreatZone(u *Unit) []hexgrid.Hex {
	raw := RawThreat(u)
	if u.Melee() {
		return raw
	}
	result := raw[:0]
	for _, coord := range raw {
		if s.lineOfSightClear(u, coord) {
			result = append(result, coord)
		}
	}
	return result
}

// lineOfSightClear walks the straight line from the attacker to target
// and reports whether no other living enemy blocks an intermediate tile.
func (s *State) lineOfSightClear(attacker *Unit, target hexgrid.Hex) bool {
	between, ok := hexgrid.Between(attacker.Position, target)
	if !ok {
		return false
	}
	for _, coord := range between {
		if blocker := s.EnemyAt(coord); blocker != nil && blocker.ID != attacker.ID {
			return false
		}
	}
	return true
}

// CanAttack reports whether the unit threatens target from its current
// position. Melee requires exact adjacency; ranged requires the target
// to sit on one of the pattern's rays within [2, 5] with clear
// line-of-sight.
func (s *State) CanAttack(u *Unit, target hexgrid.Hex) bool {
	d := hexgrid.Distance(u.Position, target)
	if d < u.MinRange() || d > u.MaxRange() {
		return false
	}
	if u.Melee() {
		return true
	}
	onRay := false
	for _, dir := range patternDirections(u.Pattern) {
		if hexgrid.OnRay(u.Position, dir, target) {
			onRay = true
			break
		}
	}
	if !onRay {
		return false
	}
	return s.lineOfSightClear(u, target)
}
