package queries

import (
	"context"
	"time"

	"github.com/go-pg/pg/v10"

	"github.com/maxwharris/monop/app/models"
)

// GameId is the singleton session row. One table, one game.
const GameId = 1

type Store struct {
	DB *pg.DB
}

func NewStore(db *pg.DB) *Store {
	return &Store{DB: db}
}

func (s *Store) GetGame() (*models.Game, error) {
	game := &models.Game{Id: GameId}
	if err := s.DB.Model(game).WherePK().Select(); err != nil {
		return nil, err
	}
	return game, nil
}

// UpdateGame applies only the fields set on the patch, leaving the
// rest untouched.
func (s *Store) UpdateGame(patch models.GamePatch) (*models.Game, error) {
	game := &models.Game{Id: GameId}
	q := s.DB.Model(game).WherePK()

	if patch.Status != nil {
		q = q.Set("status = ?", *patch.Status)
	}
	if patch.ClearTurn {
		q = q.Set("current_turn_user_id = NULL")
	} else if patch.CurrentTurnUserId != nil {
		q = q.Set("current_turn_user_id = ?", *patch.CurrentTurnUserId)
	}
	if patch.ClearDeadline {
		q = q.Set("turn_deadline = NULL")
	} else if patch.TurnDeadline != nil {
		q = q.Set("turn_deadline = ?", *patch.TurnDeadline)
	}
	if patch.StartedAt != nil {
		q = q.Set("started_at = ?", *patch.StartedAt)
	}
	if patch.CompletedAt != nil {
		q = q.Set("completed_at = ?", *patch.CompletedAt)
	}

	if _, err := q.Returning("*").Update(); err != nil {
		return nil, err
	}
	return game, nil
}

// ResetGame wipes the session back to a fresh lobby: chat and audit
// log cleared, ownership released, players removed, game row reset.
// Order matters for the owner_id foreign key.
func (s *Store) ResetGame() error {
	return s.DB.RunInTransaction(context.Background(), func(tx *pg.Tx) error {
		if _, err := tx.Model((*models.ChatMessage)(nil)).Where("TRUE").Delete(); err != nil {
			return err
		}
		if _, err := tx.Model((*models.GameAction)(nil)).Where("TRUE").Delete(); err != nil {
			return err
		}
		if _, err := tx.Model((*models.Property)(nil)).
			Set("owner_id = NULL, is_mortgaged = FALSE, house_count = 0").
			Where("TRUE").Update(); err != nil {
			return err
		}
		if _, err := tx.Model((*models.Player)(nil)).Where("TRUE").Delete(); err != nil {
			return err
		}
		_, err := tx.Model((*models.Game)(nil)).
			Set("status = ?, current_turn_user_id = NULL, turn_deadline = NULL, started_at = NULL, completed_at = NULL",
				models.StatusLobby).
			Where("id = ?", GameId).Update()
		return err
	})
}

func now() time.Time { return time.Now().UTC() }
