package models

// Player is one seat in the single game session. TurnOrder is assigned
// at join time and never changes; bankrupt players keep their slot and
// are skipped during rotation.
type Player struct {
	tableName struct{} `pg:"players"`

	Id                string `pg:",pk" json:"id"`
	UserId            string `pg:",unique" json:"user_id"`
	Username          string `json:"username"`
	TokenType         string `json:"token_type"`
	TurnOrder         int    `pg:",use_zero" json:"turn_order"`
	Money             int    `pg:",use_zero" json:"money"`
	Position          int    `pg:",use_zero" json:"position"`
	IsInJail          bool   `pg:",use_zero" json:"is_in_jail"`
	JailTurns         int    `pg:",use_zero" json:"jail_turns"`
	GetOutOfJailCards int    `pg:",use_zero" json:"get_out_of_jail_cards"`
	IsBankrupt        bool   `pg:",use_zero" json:"is_bankrupt"`
}

// PlayerPatch is a partial update. Nil fields keep their stored value,
// matching the COALESCE update the store issues.
type PlayerPatch struct {
	Money             *int
	Position          *int
	IsInJail          *bool
	JailTurns         *int
	GetOutOfJailCards *int
	IsBankrupt        *bool
}
