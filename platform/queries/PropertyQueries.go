package queries

import (
	"context"
	"errors"

	"github.com/go-pg/pg/v10"

	"github.com/maxwharris/monop/app/models"
)

// ErrPropertyTaken is the conditional-update miss: someone else's
// purchase landed first.
var ErrPropertyTaken = errors.New("property already owned")

func (s *Store) GetAllProperties() ([]*models.Property, error) {
	var props []*models.Property
	err := s.DB.Model(&props).Order("position_on_board ASC").Select()
	return props, err
}

func (s *Store) GetPropertyByPosition(pos int) (*models.Property, error) {
	prop := new(models.Property)
	err := s.DB.Model(prop).Where("position_on_board = ?", pos).Select()
	if err != nil {
		return nil, err
	}
	return prop, nil
}

// ClaimProperty debits the buyer and takes ownership in a single
// transaction. The ownership write is conditional on owner_id still
// being NULL, so two racing buyers cannot both win.
func (s *Store) ClaimProperty(playerId, propertyId string, price int) error {
	return s.DB.RunInTransaction(context.Background(), func(tx *pg.Tx) error {
		res, err := tx.Model((*models.Property)(nil)).
			Set("owner_id = ?", playerId).
			Where("id = ? AND owner_id IS NULL", propertyId).
			Update()
		if err != nil {
			return err
		}
		if res.RowsAffected() == 0 {
			return ErrPropertyTaken
		}
		_, err = tx.Model((*models.Player)(nil)).
			Set("money = money - ?", price).
			Where("id = ?", playerId).
			Update()
		return err
	})
}

// SettleRent moves money from payer to owner atomically. The payer may
// go negative; bankruptcy is the caller's call.
func (s *Store) SettleRent(payerId, ownerId string, amount int) error {
	return s.DB.RunInTransaction(context.Background(), func(tx *pg.Tx) error {
		if _, err := tx.Model((*models.Player)(nil)).
			Set("money = money - ?", amount).
			Where("id = ?", payerId).
			Update(); err != nil {
			return err
		}
		_, err := tx.Model((*models.Player)(nil)).
			Set("money = money + ?", amount).
			Where("id = ?", ownerId).
			Update()
		return err
	})
}

// ReleaseProperties returns every holding of a bankrupt player to the
// bank, improvements included.
func (s *Store) ReleaseProperties(ownerId string) error {
	_, err := s.DB.Model((*models.Property)(nil)).
		Set("owner_id = NULL, is_mortgaged = FALSE, house_count = 0").
		Where("owner_id = ?", ownerId).
		Update()
	return err
}
