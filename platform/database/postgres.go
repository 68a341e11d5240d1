package database

import (
	"os"

	"github.com/go-pg/pg/v10"
	"github.com/go-pg/pg/v10/orm"
	_ "github.com/joho/godotenv/autoload"
	uuid "github.com/satori/go.uuid"

	"github.com/maxwharris/monop/app/models"
	"github.com/maxwharris/monop/platform/board"
)

func PostgreSQLConnection() *pg.DB {
	return pg.Connect(&pg.Options{
		User:     os.Getenv("DB_USER"),
		Addr:     os.Getenv("DB_ADDR"),
		Password: os.Getenv("DB_PASSWORD"),
		Database: os.Getenv("DB_NAME"),
	})
}

// EnsureSchema creates any missing tables, the singleton game row and
// the 28 purchasable property rows. Safe to run on every boot.
func EnsureSchema(db *pg.DB) error {
	tables := []interface{}{
		(*models.User)(nil),
		(*models.Game)(nil),
		(*models.Player)(nil),
		(*models.Property)(nil),
		(*models.GameAction)(nil),
		(*models.ChatMessage)(nil),
	}
	for _, table := range tables {
		err := db.Model(table).CreateTable(&orm.CreateTableOptions{IfNotExists: true})
		if err != nil {
			return err
		}
	}

	game := &models.Game{Id: 1, Status: models.StatusLobby}
	if _, err := db.Model(game).OnConflict("(id) DO NOTHING").Insert(); err != nil {
		return err
	}

	for _, sp := range board.Purchasables() {
		prop := &models.Property{
			Id:            uuid.NewV4().String(),
			Name:          sp.Name,
			Type:          string(sp.Kind),
			ColorGroup:    sp.ColorGroup,
			Position:      sp.Position,
			Price:         sp.Price,
			MortgageValue: sp.MortgageValue,
		}
		_, err := db.Model(prop).OnConflict("(position_on_board) DO NOTHING").Insert()
		if err != nil {
			return err
		}
	}
	return nil
}
