package queries

import (
	"context"

	"github.com/go-pg/pg/v10"

	"github.com/maxwharris/monop/app/models"
)

func (s *Store) GetAllPlayers() ([]*models.Player, error) {
	var players []*models.Player
	err := s.DB.Model(&players).Order("turn_order ASC").Select()
	return players, err
}

func (s *Store) GetPlayerByUserId(userId string) (*models.Player, error) {
	player := new(models.Player)
	err := s.DB.Model(player).Where("user_id = ?", userId).Select()
	if err != nil {
		return nil, err
	}
	return player, nil
}

func (s *Store) CreatePlayer(player *models.Player) error {
	_, err := s.DB.Model(player).Insert()
	return err
}

// NextTurnOrder is one past the highest seat taken so far.
func (s *Store) NextTurnOrder() (int, error) {
	var max int
	_, err := s.DB.QueryOne(pg.Scan(&max), "SELECT COALESCE(MAX(turn_order), 0) FROM players")
	if err != nil {
		return 0, err
	}
	return max + 1, nil
}

// UpdatePlayer applies the non-nil patch fields.
func (s *Store) UpdatePlayer(playerId string, patch models.PlayerPatch) (*models.Player, error) {
	player := new(models.Player)
	q := s.DB.Model(player).Where("id = ?", playerId)

	if patch.Money != nil {
		q = q.Set("money = ?", *patch.Money)
	}
	if patch.Position != nil {
		q = q.Set("position = ?", *patch.Position)
	}
	if patch.IsInJail != nil {
		q = q.Set("is_in_jail = ?", *patch.IsInJail)
	}
	if patch.JailTurns != nil {
		q = q.Set("jail_turns = ?", *patch.JailTurns)
	}
	if patch.GetOutOfJailCards != nil {
		q = q.Set("get_out_of_jail_cards = ?", *patch.GetOutOfJailCards)
	}
	if patch.IsBankrupt != nil {
		q = q.Set("is_bankrupt = ?", *patch.IsBankrupt)
	}

	if _, err := q.Returning("*").Update(); err != nil {
		return nil, err
	}
	return player, nil
}

// SavePlayerState writes back every mutable rules field in one shot.
// Used after the rules engine has mutated a player in memory.
func (s *Store) SavePlayerState(player *models.Player) error {
	_, err := s.DB.Model(player).WherePK().
		Set("money = ?, position = ?, is_in_jail = ?, jail_turns = ?, get_out_of_jail_cards = ?, is_bankrupt = ?",
			player.Money, player.Position, player.IsInJail, player.JailTurns,
			player.GetOutOfJailCards, player.IsBankrupt).
		Update()
	return err
}

// SavePlayers persists a batch of mutated players in one transaction,
// so an all-pay card settles completely or not at all.
func (s *Store) SavePlayers(players []*models.Player) error {
	return s.DB.RunInTransaction(context.Background(), func(tx *pg.Tx) error {
		for _, p := range players {
			if _, err := tx.Model(p).WherePK().
				Set("money = ?, position = ?, is_in_jail = ?, jail_turns = ?, get_out_of_jail_cards = ?, is_bankrupt = ?",
					p.Money, p.Position, p.IsInJail, p.JailTurns,
					p.GetOutOfJailCards, p.IsBankrupt).
				Update(); err != nil {
				return err
			}
		}
		return nil
	})
}
