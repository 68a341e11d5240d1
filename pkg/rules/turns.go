package rules

import "github.com/maxwharris/monop/app/models"

// TurnOutcome is what ending a turn decided: either the game is over
// (Winner may still be nil if nobody is left) or Next takes the turn.
type TurnOutcome struct {
	GameOver bool           `json:"game_over"`
	Winner   *models.Player `json:"winner,omitempty"`
	Next     *models.Player `json:"next,omitempty"`
}

// NextTurn picks who plays after currentUserId. players must be in
// turn order; bankrupt entries keep their slot but are skipped. When
// the current player is not in the active list (just went bankrupt,
// or left), rotation restarts at the first active player.
func NextTurn(players []*models.Player, currentUserId string) TurnOutcome {
	active := ActivePlayers(players)

	if len(active) == 1 {
		return TurnOutcome{GameOver: true, Winner: active[0]}
	}
	if len(active) == 0 {
		return TurnOutcome{GameOver: true}
	}

	currentIdx := -1
	for i, p := range active {
		if p.UserId == currentUserId {
			currentIdx = i
			break
		}
	}
	next := active[(currentIdx+1)%len(active)]
	return TurnOutcome{Next: next}
}

// ActivePlayers filters out bankrupt players, preserving turn order.
func ActivePlayers(players []*models.Player) []*models.Player {
	out := make([]*models.Player, 0, len(players))
	for _, p := range players {
		if !p.IsBankrupt {
			out = append(out, p)
		}
	}
	return out
}
