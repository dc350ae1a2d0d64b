package game

// ToggleDash arms or disarms dash mode. A dash that actually executes
// charges the cooldown (see SubmitMove); arming costs nothing. The
// toggle is refused while the cooldown runs, but an already-armed dash
// can always be disarmed. Returns whether the flag changed.
func (s *Session) ToggleDash() bool {
	if err := s.acceptingInput(); err != nil {
		return false
	}
	player := s.state.Player
	if player.DashModeActive {
		player.DashModeActive = false
		return true
	}
	if player.DashCooldown > 0 {
		return false
	}
	player.DashModeActive = true
	return true
}

// ToggleBlock raises or lowers the block. Lowering an unused block
// costs nothing; the cooldown only starts when a block absorbs a hit.
// Returns whether the flag changed.
func (s *Session) ToggleBlock() bool {
	if err := s.acceptingInput(); err != nil {
		return false
	}
	player := s.state.Player
	if player.BlockActive {
		player.BlockActive = false
		return true
	}
	if player.BlockCooldown > 0 {
		return false
	}
	player.BlockActive = true
	return true
}
