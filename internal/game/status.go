package game

import "github.com/google/uuid"

// Status is the read-only query surface exposed to UI layers.
type Status struct {
	SessionID    uuid.UUID `json:"session_id"`
	TurnIndex    int       `json:"turn_index"`
	IsPlayerTurn bool      `json:"is_player_turn"`
	GameOver     bool      `json:"game_over"`
	Outcome      string    `json:"outcome"`

	PlayerHealth    int  `json:"player_health"`
	PlayerMaxHealth int  `json:"player_max_health"`
	DashCooldown    int  `json:"dash_cooldown"`
	DashModeActive  bool `json:"dash_mode_active"`
	BlockCooldown   int  `json:"block_cooldown"`
	BlockActive     bool `json:"block_active"`

	EnemiesRemaining int  `json:"enemies_remaining"`
	HistoryLen       int  `json:"history_len"`
	CanRewind        bool `json:"can_rewind"`
}

// Status reports the current session state for observers.
func (s *Session) Status() Status {
	player := s.state.Player
	return Status{
		SessionID:        s.ID,
		TurnIndex:        s.state.Turn.TurnIndex,
		IsPlayerTurn:     s.state.Turn.IsPlayerTurn,
		GameOver:         s.state.Turn.GameOver,
		Outcome:          OutcomeName(s.state.Turn.Outcome),
		PlayerHealth:     player.Health,
		PlayerMaxHealth:  player.MaxHealth,
		DashCooldown:     player.DashCooldown,
		DashModeActive:   player.DashModeActive,
		BlockCooldown:    player.BlockCooldown,
		BlockActive:      player.BlockActive,
		EnemiesRemaining: len(s.state.LivingEnemies()),
		HistoryLen:       s.history.Len(),
		CanRewind:        s.CanRewind(),
	}
}
