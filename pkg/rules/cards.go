package rules

import (
	"math/rand"

	"github.com/maxwharris/monop/app/models"
	"github.com/maxwharris/monop/platform/board"
)

type DeckType string

const (
	DeckChance DeckType = "chance"
	DeckChest  DeckType = "community_chest"
)

// CardKind tags the effect a card carries, one variant per effect so a
// switch over it is exhaustive.
type CardKind string

const (
	CardMoney        CardKind = "money"
	CardMoneyToAll   CardKind = "money_to_all"
	CardMoneyFromAll CardKind = "money_from_all"
	CardJail         CardKind = "jail"
	CardJailFree     CardKind = "jail_free"
	CardMoveTo       CardKind = "move"
	CardMoveNearest  CardKind = "move_nearest"
	CardMoveBack     CardKind = "move_back"
	CardRepairs      CardKind = "repairs"
)

type Card struct {
	Text    string   `json:"text"`
	Kind    CardKind `json:"kind"`
	Amount  int      `json:"amount,omitempty"`   // money variants; negative = pay
	Target  int      `json:"target,omitempty"`   // move: absolute position
	Nearest string   `json:"nearest,omitempty"`  // move_nearest: "railroad" | "utility"
	Spaces  int      `json:"spaces,omitempty"`   // move_back
	HouseFee int     `json:"house_fee,omitempty"`
	HotelFee int     `json:"hotel_fee,omitempty"`
}

// ChanceCards and CommunityChestCards are the fixed decks. A draw picks
// uniformly with replacement; there is no discard pile.
var ChanceCards = []Card{
	{Text: "Advance to GO (Collect $200)", Kind: CardMoveTo, Target: board.GoPosition},
	{Text: "Advance to Illinois Ave", Kind: CardMoveTo, Target: 24},
	{Text: "Advance to St. Charles Place", Kind: CardMoveTo, Target: 11},
	{Text: "Advance token to nearest Utility", Kind: CardMoveNearest, Nearest: "utility"},
	{Text: "Advance token to nearest Railroad", Kind: CardMoveNearest, Nearest: "railroad"},
	{Text: "Go Back 3 Spaces", Kind: CardMoveBack, Spaces: 3},
	{Text: "Go to Jail", Kind: CardJail},
	{Text: "Get Out of Jail Free", Kind: CardJailFree},
	{Text: "Bank pays you dividend of $50", Kind: CardMoney, Amount: 50},
	{Text: "Pay poor tax of $15", Kind: CardMoney, Amount: -15},
	{Text: "Take a trip to Reading Railroad", Kind: CardMoveTo, Target: 5},
	{Text: "You have been elected Chairman of the Board. Pay each player $50", Kind: CardMoneyToAll, Amount: 50},
	{Text: "Your building loan matures. Collect $150", Kind: CardMoney, Amount: 150},
	{Text: "You have won a crossword competition. Collect $100", Kind: CardMoney, Amount: 100},
	{Text: "Make general repairs on all your property. $25 per house, $100 per hotel", Kind: CardRepairs, HouseFee: 25, HotelFee: 100},
	{Text: "Advance to Boardwalk", Kind: CardMoveTo, Target: 39},
}

var CommunityChestCards = []Card{
	{Text: "Advance to GO (Collect $200)", Kind: CardMoney, Amount: 200},
	{Text: "Bank error in your favor. Collect $200", Kind: CardMoney, Amount: 200},
	{Text: "Doctor's fees. Pay $50", Kind: CardMoney, Amount: -50},
	{Text: "From sale of stock you get $50", Kind: CardMoney, Amount: 50},
	{Text: "Get Out of Jail Free", Kind: CardJailFree},
	{Text: "Go to Jail", Kind: CardJail},
	{Text: "Grand Opera Night. Collect $50 from every player", Kind: CardMoneyFromAll, Amount: 50},
	{Text: "Holiday Fund matures. Receive $100", Kind: CardMoney, Amount: 100},
	{Text: "Income tax refund. Collect $20", Kind: CardMoney, Amount: 20},
	{Text: "It is your birthday. Collect $10 from each player", Kind: CardMoneyFromAll, Amount: 10},
	{Text: "Life insurance matures. Collect $100", Kind: CardMoney, Amount: 100},
	{Text: "Hospital fees. Pay $100", Kind: CardMoney, Amount: -100},
	{Text: "School fees. Pay $150", Kind: CardMoney, Amount: -150},
	{Text: "Receive $25 consultancy fee", Kind: CardMoney, Amount: 25},
	{Text: "You are assessed for street repairs. $40 per house, $115 per hotel", Kind: CardRepairs, HouseFee: 40, HotelFee: 115},
	{Text: "You have won second prize in a beauty contest. Collect $10", Kind: CardMoney, Amount: 10},
}

// Deck returns the deck for a card space. Chance positions draw
// chance, everything else draws community chest.
func Deck(deckType DeckType) []Card {
	if deckType == DeckChance {
		return ChanceCards
	}
	return CommunityChestCards
}

// DrawCard picks uniformly from the deck with the injected source.
func DrawCard(deckType DeckType, rng *rand.Rand) Card {
	deck := Deck(deckType)
	return deck[rng.Intn(len(deck))]
}

// CardResult describes what a card did. The drawer, any other players
// touched and (never for cards) properties are mutated in memory; the
// caller persists them.
type CardResult struct {
	Card       Card         `json:"card"`
	MoneyDelta int          `json:"money_delta"`
	OthersPaid int          `json:"others_paid"`   // count of other players touched
	Move       *MoveResult  `json:"move,omitempty"`
	SentToJail bool         `json:"sent_to_jail"`
	JailCards  int          `json:"jail_cards,omitempty"`
	Repairs    *RepairsBill `json:"repairs,omitempty"`
}

type RepairsBill struct {
	Houses int `json:"houses"`
	Hotels int `json:"hotels"`
	Cost   int `json:"cost"`
}

// ApplyCard runs the card effect against the drawer. allPlayers is the
// full roster; bankrupt players never pay or collect. Repairs can push
// the drawer's balance negative — the caller decides what bankruptcy
// means.
func ApplyCard(card Card, player *models.Player, allPlayers []*models.Player, allProps []*models.Property) CardResult {
	result := CardResult{Card: card}

	switch card.Kind {
	case CardMoney:
		player.Money += card.Amount
		result.MoneyDelta = card.Amount

	case CardMoneyToAll:
		amount := abs(card.Amount)
		others := activeOthers(player, allPlayers)
		for _, other := range others {
			other.Money += amount
		}
		total := amount * len(others)
		player.Money -= total
		result.MoneyDelta = -total
		result.OthersPaid = len(others)

	case CardMoneyFromAll:
		// Each payer is capped at their balance; nobody goes negative
		// paying a birthday card.
		total := 0
		others := activeOthers(player, allPlayers)
		for _, other := range others {
			payment := card.Amount
			if other.Money < payment {
				payment = other.Money
			}
			other.Money -= payment
			total += payment
		}
		player.Money += total
		result.MoneyDelta = total
		result.OthersPaid = len(others)

	case CardJail:
		SendToJail(player)
		result.SentToJail = true

	case CardJailFree:
		player.GetOutOfJailCards++
		result.JailCards = player.GetOutOfJailCards

	case CardMoveTo:
		result.Move = applyMove(player, DistanceTo(player.Position, card.Target))

	case CardMoveNearest:
		targets := board.RailroadPositions
		if card.Nearest == "utility" {
			targets = board.UtilityPositions
		}
		dest := NearestAhead(player.Position, targets)
		result.Move = applyMove(player, DistanceTo(player.Position, dest))

	case CardMoveBack:
		result.Move = applyMove(player, -card.Spaces)

	case CardRepairs:
		houses, hotels := 0, 0
		for _, prop := range allProps {
			if !prop.OwnedBy(player.Id) {
				continue
			}
			if prop.HouseCount > 0 && prop.HouseCount < 5 {
				houses += prop.HouseCount
			} else if prop.HouseCount == 5 {
				hotels++
			}
		}
		cost := houses*card.HouseFee + hotels*card.HotelFee
		player.Money -= cost
		result.MoneyDelta = -cost
		result.Repairs = &RepairsBill{Houses: houses, Hotels: hotels, Cost: cost}
	}

	return result
}

func applyMove(player *models.Player, spaces int) *MoveResult {
	mv := Move(player.Position, spaces)
	player.Position = mv.NewPosition
	player.Money += mv.Salary
	return &mv
}

func activeOthers(player *models.Player, allPlayers []*models.Player) []*models.Player {
	out := make([]*models.Player, 0, len(allPlayers))
	for _, p := range allPlayers {
		if p.Id != player.Id && !p.IsBankrupt {
			out = append(out, p)
		}
	}
	return out
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
