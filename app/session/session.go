package session

import (
	"math/rand"
	"time"

	"github.com/gomodule/redigo/redis"
	uuid "github.com/satori/go.uuid"
	"github.com/sirupsen/logrus"

	"github.com/maxwharris/monop/app/models"
	"github.com/maxwharris/monop/pkg/rules"
	"github.com/maxwharris/monop/platform/board"
	"github.com/maxwharris/monop/platform/queries"
)

const (
	TurnTimeout   = 24 * time.Hour
	StartingMoney = 1500
	MaxPlayers    = 8
)

// Broadcaster fans an event out to every connected client. Delivery is
// fire and forget; clients that miss one re-sync from game:state.
type Broadcaster interface {
	Broadcast(event string, payload interface{})
}

// Store is the persistence surface the facade drives. *queries.Store
// is the production implementation.
type Store interface {
	GetGame() (*models.Game, error)
	UpdateGame(patch models.GamePatch) (*models.Game, error)
	ResetGame() error
	GetAllPlayers() ([]*models.Player, error)
	GetPlayerByUserId(userId string) (*models.Player, error)
	CreatePlayer(player *models.Player) error
	NextTurnOrder() (int, error)
	UpdatePlayer(playerId string, patch models.PlayerPatch) (*models.Player, error)
	SavePlayerState(player *models.Player) error
	SavePlayers(players []*models.Player) error
	GetAllProperties() ([]*models.Property, error)
	GetPropertyByPosition(pos int) (*models.Property, error)
	ClaimProperty(playerId, propertyId string, price int) error
	SettleRent(payerId, ownerId string, amount int) error
	ReleaseProperties(ownerId string) error
	GetUserById(userId string) (*models.User, error)
	LogAction(playerId *string, actionType string, data interface{}) error
}

// Facade runs every rules action against persistent state: load,
// validate, apply pkg/rules, persist, log, broadcast. One instance
// serves the single game session.
type Facade struct {
	store Store
	pool  *redis.Pool
	emit  Broadcaster
	rng   *rand.Rand
}

func New(store Store, pool *redis.Pool, emitter Broadcaster, rng *rand.Rand) *Facade {
	return &Facade{store: store, pool: pool, emit: emitter, rng: rng}
}

func (f *Facade) FullState() (*StateSnapshot, error) {
	game, err := f.store.GetGame()
	if err != nil {
		return nil, err
	}
	players, err := f.store.GetAllPlayers()
	if err != nil {
		return nil, err
	}
	props, err := f.store.GetAllProperties()
	if err != nil {
		return nil, err
	}
	return &StateSnapshot{Game: game, Players: players, Properties: props}, nil
}

// Join seats a user in the lobby. Joining twice returns the existing
// seat. Turn order, and with it token color, is fixed here forever.
func (f *Facade) Join(userId string) (*models.Player, error) {
	game, err := f.store.GetGame()
	if err != nil {
		return nil, err
	}
	if game.Status != models.StatusLobby {
		return nil, rules.NewError(rules.CodeInvalidState, "Game has already started")
	}

	if existing, err := f.store.GetPlayerByUserId(userId); err == nil {
		return existing, nil
	}

	user, err := f.store.GetUserById(userId)
	if err != nil {
		return nil, rules.NewError(rules.CodeInvalidState, "Unknown user")
	}

	order, err := f.store.NextTurnOrder()
	if err != nil {
		return nil, err
	}
	if order > MaxPlayers {
		return nil, rules.NewError(rules.CodeInvalidState, "Game is full")
	}

	player := &models.Player{
		Id:        uuid.NewV4().String(),
		UserId:    user.Id,
		Username:  user.Username,
		TokenType: user.TokenType,
		TurnOrder: order,
		Money:     StartingMoney,
	}
	if err := f.store.CreatePlayer(player); err != nil {
		return nil, err
	}

	f.logAction(&player.Id, "player_join", player)
	f.emit.Broadcast("player:joined", player)
	return player, nil
}

// Start flips the lobby into a running game and hands the first turn
// to the lowest seat.
func (f *Facade) Start() (*StateSnapshot, error) {
	game, err := f.store.GetGame()
	if err != nil {
		return nil, err
	}
	if game.Status != models.StatusLobby {
		return nil, rules.NewError(rules.CodeInvalidState, "Game has already started")
	}

	players, err := f.store.GetAllPlayers()
	if err != nil {
		return nil, err
	}
	if len(players) < 2 {
		return nil, rules.NewError(rules.CodeInvalidState, "Need at least 2 players to start")
	}

	started := time.Now().UTC()
	status := models.StatusInProgress
	if _, err := f.store.UpdateGame(models.GamePatch{Status: &status, StartedAt: &started}); err != nil {
		return nil, err
	}

	f.logAction(nil, "game_start", map[string]interface{}{"players": len(players)})

	if _, err := f.startTurn(players[0].UserId); err != nil {
		return nil, err
	}

	snapshot, err := f.FullState()
	if err != nil {
		return nil, err
	}
	f.emit.Broadcast("game:state", snapshot)
	return snapshot, nil
}

// RollDice resolves one throw for the acting player: jail handling,
// movement, then whatever the landing space demands.
func (f *Facade) RollDice(userId string) (*RollResult, error) {
	if _, err := f.checkTurn(userId); err != nil {
		return nil, err
	}

	conn := f.pool.Get()
	defer conn.Close()

	if queries.HasRolledDice(userId, &conn) {
		return nil, rules.NewError(rules.CodeInvalidState, "You have already rolled the dice")
	}

	players, err := f.store.GetAllPlayers()
	if err != nil {
		return nil, err
	}
	player := findByUserId(players, userId)
	if player == nil {
		return nil, rules.NewError(rules.CodeInvalidState, "You are not in this game")
	}
	if player.IsBankrupt {
		return nil, rules.NewError(rules.CodeInvalidState, "Bankrupt players cannot act")
	}

	props, err := f.store.GetAllProperties()
	if err != nil {
		return nil, err
	}

	roll := rules.RollDice(f.rng)
	result := &RollResult{Roll: roll, Player: player}

	if player.IsInJail {
		if roll.IsDoubles {
			rel, err := rules.Release(player, rules.ReleaseDoubles)
			if err != nil {
				return nil, err
			}
			result.JailRelease = rel
		} else {
			stay, err := rules.IncrementJailTurns(player)
			if err != nil {
				// Cannot afford the forced fine: the roll is spent and
				// the player stays put until something else frees them.
				queries.SetRolledDice(userId, &conn)
				return nil, err
			}
			result.JailStay = stay
			if stay.Released == nil {
				queries.SetRolledDice(userId, &conn)
				if err := f.store.SavePlayerState(player); err != nil {
					return nil, err
				}
				f.logAction(&player.Id, "roll_dice", result)
				f.emit.Broadcast("game:dice_rolled", result)
				return result, nil
			}
		}
	}

	move := rules.Move(player.Position, roll.Total)
	player.Position = move.NewPosition
	player.Money += move.Salary
	result.Move = &move

	space := board.Spaces[move.NewPosition]
	result.SpaceName = space.Name

	touched := []*models.Player{player}

	switch {
	case move.NewPosition == board.GoToJailPosition:
		rules.SendToJail(player)
		result.SentToJail = true

	case move.NewPosition == board.IncomeTaxPos:
		player.Money -= board.IncomeTaxCost
		result.TaxPaid = board.IncomeTaxCost

	case move.NewPosition == board.LuxuryTaxPos:
		player.Money -= board.LuxuryTaxCost
		result.TaxPaid = board.LuxuryTaxCost

	case board.IsChance(move.NewPosition) || board.IsChest(move.NewPosition):
		deck := rules.DeckChest
		if board.IsChance(move.NewPosition) {
			deck = rules.DeckChance
		}
		card := rules.DrawCard(deck, f.rng)
		cardResult := rules.ApplyCard(card, player, players, props)
		result.Card = &cardResult
		result.CardDeck = deck
		// All-pay and all-collect cards touch the whole roster.
		touched = players

	case space.Purchasable():
		if prop := findByPosition(props, move.NewPosition); prop != nil &&
			prop.OwnerId != nil && !prop.OwnedBy(player.Id) && !prop.IsMortgaged {
			if owner := findById(players, *prop.OwnerId); owner != nil && !owner.IsBankrupt {
				rent := rules.Rent(prop, space, props, roll.Total)
				// Both balances move in one transaction; the owner's row
				// is not part of the batch save below.
				if err := f.store.SettleRent(player.Id, owner.Id, rent); err != nil {
					return nil, err
				}
				player.Money -= rent
				owner.Money += rent
				result.RentPaid = rent
				result.RentTo = owner.Username
			}
		}
	}

	// Doubles roll again; a third consecutive doubles goes to jail
	// instead.
	if roll.IsDoubles && !player.IsInJail {
		streak, err := queries.IncrDoublesStreak(userId, &conn)
		if err == nil && streak >= 3 {
			rules.SendToJail(player)
			result.SentToJail = true
			queries.SetRolledDice(userId, &conn)
		}
	} else {
		queries.SetRolledDice(userId, &conn)
	}

	if player.Money < 0 && !player.IsBankrupt {
		player.IsBankrupt = true
		result.WentBankrupt = true
	}

	if err := f.store.SavePlayers(touched); err != nil {
		return nil, err
	}
	if result.WentBankrupt {
		if err := f.store.ReleaseProperties(player.Id); err != nil {
			return nil, err
		}
		f.emit.Broadcast("player:bankrupt", player)
	}

	f.logAction(&player.Id, "roll_dice", result)
	f.emit.Broadcast("game:dice_rolled", result)
	return result, nil
}

// BuyProperty purchases the space the acting player stands on. Only
// the turn gates it: a doubles roll leaves the roll flag unset so the
// player can throw again, and the buy has to land in between.
func (f *Facade) BuyProperty(userId string) (*PurchaseResult, error) {
	if _, err := f.checkTurn(userId); err != nil {
		return nil, err
	}

	player, err := f.store.GetPlayerByUserId(userId)
	if err != nil {
		return nil, rules.NewError(rules.CodeInvalidState, "You are not in this game")
	}

	prop, err := f.store.GetPropertyByPosition(player.Position)
	if err != nil {
		return nil, rules.NewError(rules.CodeInvalidState, "Nothing to buy on this space")
	}

	if err := rules.CanPurchase(player, prop); err != nil {
		return nil, err
	}

	if err := f.store.ClaimProperty(player.Id, prop.Id, prop.Price); err != nil {
		if err == queries.ErrPropertyTaken {
			return nil, rules.NewError(rules.CodeAlreadyOwned, "Property is already owned")
		}
		return nil, err
	}

	player.Money -= prop.Price
	prop.OwnerId = &player.Id

	result := &PurchaseResult{Player: player, Property: prop}
	f.logAction(&player.Id, "buy_property", result)
	f.emit.Broadcast("game:property_purchased", result)
	return result, nil
}

// JailAction is a voluntary release before rolling: pay the fine or
// spend a card. Doubles go through RollDice.
func (f *Facade) JailAction(userId, method string) (*JailResult, error) {
	if _, err := f.checkTurn(userId); err != nil {
		return nil, err
	}

	conn := f.pool.Get()
	defer conn.Close()
	if queries.HasRolledDice(userId, &conn) {
		return nil, rules.NewError(rules.CodeInvalidState, "Jail must be resolved before rolling")
	}

	m := rules.ReleaseMethod(method)
	if m != rules.ReleasePay && m != rules.ReleaseCard {
		return nil, rules.NewError(rules.CodeInvalidMethod, "Invalid jail escape method")
	}

	player, err := f.store.GetPlayerByUserId(userId)
	if err != nil {
		return nil, rules.NewError(rules.CodeInvalidState, "You are not in this game")
	}

	release, err := rules.Release(player, m)
	if err != nil {
		return nil, err
	}
	patch := models.PlayerPatch{
		Money:             &player.Money,
		IsInJail:          &player.IsInJail,
		JailTurns:         &player.JailTurns,
		GetOutOfJailCards: &player.GetOutOfJailCards,
	}
	if _, err := f.store.UpdatePlayer(player.Id, patch); err != nil {
		return nil, err
	}

	result := &JailResult{Player: player, Release: release}
	f.logAction(&player.Id, "jail_release", result)

	if snapshot, err := f.FullState(); err == nil {
		f.emit.Broadcast("game:state", snapshot)
	}
	return result, nil
}

// EndTurn passes play to the next active seat, or completes the game
// when at most one remains.
func (f *Facade) EndTurn(userId string) (*EndTurnResult, error) {
	if _, err := f.checkTurn(userId); err != nil {
		return nil, err
	}

	conn := f.pool.Get()
	defer conn.Close()
	if !queries.HasRolledDice(userId, &conn) {
		return nil, rules.NewError(rules.CodeInvalidState, "You must roll the dice first")
	}

	return f.advanceTurn(userId, &conn)
}

// HandleTimeout force-ends the current turn once its deadline lapses.
// No-op while the deadline holds.
func (f *Facade) HandleTimeout() (*EndTurnResult, error) {
	game, err := f.store.GetGame()
	if err != nil {
		return nil, err
	}
	if game.Status != models.StatusInProgress || game.CurrentTurnUserId == nil ||
		game.TurnDeadline == nil || time.Now().UTC().Before(*game.TurnDeadline) {
		return nil, nil
	}

	userId := *game.CurrentTurnUserId
	logrus.WithField("user_id", userId).Warn("turn deadline lapsed, forcing end of turn")
	f.logAction(nil, "turn_timeout", map[string]string{"user_id": userId})

	conn := f.pool.Get()
	defer conn.Close()
	return f.advanceTurn(userId, &conn)
}

// Reset wipes the session back to an empty lobby.
func (f *Facade) Reset() error {
	players, err := f.store.GetAllPlayers()
	if err != nil {
		return err
	}

	if err := f.store.ResetGame(); err != nil {
		return err
	}

	conn := f.pool.Get()
	defer conn.Close()
	for _, p := range players {
		queries.ResetTurnFlags(p.UserId, &conn)
	}

	f.logAction(nil, "game_reset", nil)
	if snapshot, err := f.FullState(); err == nil {
		f.emit.Broadcast("game:state", snapshot)
	}
	return nil
}

func (f *Facade) advanceTurn(userId string, conn *redis.Conn) (*EndTurnResult, error) {
	players, err := f.store.GetAllPlayers()
	if err != nil {
		return nil, err
	}

	queries.ResetTurnFlags(userId, conn)
	outcome := rules.NextTurn(players, userId)

	if outcome.GameOver {
		status := models.StatusCompleted
		completed := time.Now().UTC()
		patch := models.GamePatch{Status: &status, ClearTurn: true, ClearDeadline: true, CompletedAt: &completed}
		if _, err := f.store.UpdateGame(patch); err != nil {
			return nil, err
		}

		result := &EndTurnResult{GameOver: true, Winner: outcome.Winner}
		f.logAction(nil, "game_over", result)
		f.emit.Broadcast("game:over", result)
		return result, nil
	}

	deadline, err := f.startTurn(outcome.Next.UserId)
	if err != nil {
		return nil, err
	}
	return &EndTurnResult{NextUserId: outcome.Next.UserId, Deadline: &deadline}, nil
}

// startTurn hands the turn to userId and returns the deadline it
// persisted, so callers report the same timestamp the row holds.
func (f *Facade) startTurn(userId string) (time.Time, error) {
	deadline := time.Now().UTC().Add(TurnTimeout)
	if _, err := f.store.UpdateGame(models.GamePatch{CurrentTurnUserId: &userId, TurnDeadline: &deadline}); err != nil {
		return time.Time{}, err
	}

	conn := f.pool.Get()
	defer conn.Close()
	queries.ResetTurnFlags(userId, &conn)

	f.logAction(nil, "turn_start", map[string]interface{}{"user_id": userId, "deadline": deadline})
	f.emit.Broadcast("game:turn_change", map[string]interface{}{"user_id": userId, "deadline": deadline})
	return deadline, nil
}

func (f *Facade) checkTurn(userId string) (*models.Game, error) {
	game, err := f.store.GetGame()
	if err != nil {
		return nil, err
	}
	if game.Status != models.StatusInProgress {
		return nil, rules.NewError(rules.CodeInvalidState, "Game is not in progress")
	}
	if game.CurrentTurnUserId == nil || *game.CurrentTurnUserId != userId {
		return nil, rules.NewError(rules.CodeInvalidState, "Not your turn")
	}
	return game, nil
}

func (f *Facade) logAction(playerId *string, actionType string, data interface{}) {
	if err := f.store.LogAction(playerId, actionType, data); err != nil {
		logrus.WithError(err).WithField("action", actionType).Error("failed to append game action")
	}
}

func findByUserId(players []*models.Player, userId string) *models.Player {
	for _, p := range players {
		if p.UserId == userId {
			return p
		}
	}
	return nil
}

func findById(players []*models.Player, id string) *models.Player {
	for _, p := range players {
		if p.Id == id {
			return p
		}
	}
	return nil
}

func findByPosition(props []*models.Property, pos int) *models.Property {
	for _, p := range props {
		if p.Position == pos {
			return p
		}
	}
	return nil
}
