package session

import (
	"time"

	"github.com/maxwharris/monop/app/models"
	"github.com/maxwharris/monop/pkg/rules"
)

// StateSnapshot is the full authoritative game state, sent on connect
// and whenever a client should re-sync.
type StateSnapshot struct {
	Game       *models.Game       `json:"game"`
	Players    []*models.Player   `json:"players"`
	Properties []*models.Property `json:"properties"`
}

// RollResult is everything one dice roll did, shaped for both the
// HTTP/socket responder and the broadcast payload.
type RollResult struct {
	Roll         rules.DiceRoll     `json:"roll"`
	Player       *models.Player     `json:"player"`
	Move         *rules.MoveResult  `json:"move,omitempty"`
	SpaceName    string             `json:"space_name,omitempty"`
	JailStay     *rules.JailStay    `json:"jail_stay,omitempty"`
	JailRelease  *rules.JailRelease `json:"jail_release,omitempty"`
	Card         *rules.CardResult  `json:"card,omitempty"`
	CardDeck     rules.DeckType     `json:"card_deck,omitempty"`
	RentPaid     int                `json:"rent_paid,omitempty"`
	RentTo       string             `json:"rent_to,omitempty"`
	TaxPaid      int                `json:"tax_paid,omitempty"`
	SentToJail   bool               `json:"sent_to_jail,omitempty"`
	WentBankrupt bool               `json:"went_bankrupt,omitempty"`
}

type PurchaseResult struct {
	Player   *models.Player   `json:"player"`
	Property *models.Property `json:"property"`
}

type JailResult struct {
	Player  *models.Player     `json:"player"`
	Release *rules.JailRelease `json:"release"`
}

type EndTurnResult struct {
	GameOver   bool           `json:"game_over"`
	Winner     *models.Player `json:"winner,omitempty"`
	NextUserId string         `json:"next_user_id,omitempty"`
	Deadline   *time.Time     `json:"deadline,omitempty"`
}
