package models

import "time"

const (
	StatusLobby      = "lobby"
	StatusInProgress = "in_progress"
	StatusCompleted  = "completed"
)

// Game is the singleton session row (id 1). Reset puts it back to
// lobby and wipes players and ownership.
type Game struct {
	tableName struct{} `pg:"game"`

	Id                int        `pg:",pk,use_zero" json:"id"`
	Status            string     `json:"status"`
	CurrentTurnUserId *string    `json:"current_turn_user_id"`
	TurnDeadline      *time.Time `json:"turn_deadline"`
	StartedAt         *time.Time `json:"started_at"`
	CompletedAt       *time.Time `json:"completed_at"`
}

// GamePatch is a partial update of the session row. ClearTurn and
// ClearDeadline null their columns.
type GamePatch struct {
	Status            *string
	CurrentTurnUserId *string
	ClearTurn         bool
	TurnDeadline      *time.Time
	ClearDeadline     bool
	StartedAt         *time.Time
	CompletedAt       *time.Time
}
