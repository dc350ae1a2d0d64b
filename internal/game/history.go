package game

// Snapshot is an immutable record of everything gameplay-relevant at
// the start of a player turn. Derived or presentation state (threat
// caches, highlights) is never captured; consumers recompute it after a
// restore.
type Snapshot struct {
	TurnIndex int    `json:"turn_index"`
	Player    Unit   `json:"player"`
	Enemies   []Unit `json:"enemies"`
	NextID    UnitID `json:"next_id"`
}

// DefaultHistoryDepth bounds the rewind history.
const DefaultHistoryDepth = 50

// History is the bounded FIFO list of snapshots. The most recent entry
// is the pre-action state of the turn about to be undone; the entry
// before it is the rewind target.
type History struct {
	depth int
	snaps []Snapshot
}

// NewHistory creates a history bounded to depth entries. Depth values
// below 2 fall back to the default, since rewinding needs two entries.
func NewHistory(depth int) *History {
	if depth < 2 {
		depth = DefaultHistoryDepth
	}
	return &History{depth: depth}
}

// Len returns the number of snapshots currently held.
func (h *History) Len() int {
	return len(h.snaps)
}

// Depth returns the maximum number of snapshots retained.
func (h *History) Depth() int {
	return h.depth
}

// Capture records a deep copy of the world state, evicting the oldest
// snapshot beyond the depth bound.
func (h *History) Capture(s *State) {
	snap := Snapshot{
		TurnIndex: s.Turn.TurnIndex,
		Player:    *s.Player,
		NextID:    s.nextID,
	}
	for _, e := range s.LivingEnemies() {
		snap.Enemies = append(snap.Enemies, *e)
	}
	h.snaps = append(h.snaps, snap)
	if len(h.snaps) > h.depth {
		h.snaps = h.snaps[len(h.snaps)-h.depth:]
	}
}

// CanRewind reports whether a rewind target exists. The newest snapshot
// only re-describes the current turn; undoing it needs the one before.
func (h *History) CanRewind() bool {
	return len(h.snaps) >= 2
}

// Latest returns the most recent snapshot, or nil when none exist.
func (h *History) Latest() *Snapshot {
	if len(h.snaps) == 0 {
		return nil
	}
	return &h.snaps[len(h.snaps)-1]
}

// TurnIndexes returns the turn index of every held snapshot, oldest
// first. Read-only observation data.
func (h *History) TurnIndexes() []int {
	result := make([]int, len(h.snaps))
	for i, snap := range h.snaps {
		result[i] = snap.TurnIndex
	}
	return result
}

// RewindResult reports the outcome of a rewind request.
type RewindResult struct {
	Success      bool     `json:"success"`
	Reason       string   `json:"reason,omitempty"`
	RestoredTurn int      `json:"restored_turn,omitempty"`
	Respawned    []UnitID `json:"respawned,omitempty"`
}

// Rewind pops the newest snapshot and restores the state from the one
// now on top. Enemies alive in the target but missing from the roster
// are respawned; enemies alive now but absent from the target are
// removed. Terminal flags are cleared, so rewinding out of a defeat is
// allowed.
func (h *History) Rewind(s *State) RewindResult {
	if !h.CanRewind() {
		return RewindResult{Reason: "insufficient history"}
	}

	h.snaps = h.snaps[:len(h.snaps)-1]
	target := h.snaps[len(h.snaps)-1]
	respawned := restore(s, target)

	return RewindResult{
		Success:      true,
		RestoredTurn: target.TurnIndex,
		Respawned:    respawned,
	}
}

// restore replaces the world state's contents wholesale from a
// snapshot, returning the IDs of enemies brought back from removal.
func restore(s *State, target Snapshot) []UnitID {
	player := target.Player
	s.Player = &player

	var respawned []UnitID
	restored := make(map[UnitID]*Unit, len(target.Enemies))
	for _, snap := range target.Enemies {
		e := snap
		restored[e.ID] = &e
		if _, present := s.Enemies[e.ID]; !present {
			respawned = append(respawned, e.ID)
		}
	}
	s.Enemies = restored
	s.nextID = target.NextID

	s.Turn = TurnState{
		IsPlayerTurn: true,
		TurnIndex:    target.TurnIndex,
		GameOver:     false,
		Outcome:      OutcomeNone,
	}
	return respawned
}
