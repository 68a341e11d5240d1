package models

import "time"

// GameAction is an append-only audit record. Nothing in the rules path
// reads it back.
type GameAction struct {
	tableName struct{} `pg:"game_actions"`

	Id         int       `pg:",pk" json:"id"`
	PlayerId   *string   `json:"player_id"`
	ActionType string    `json:"action_type"`
	ActionData string    `json:"action_data"`
	Timestamp  time.Time `pg:",default:now()" json:"timestamp"`
}
