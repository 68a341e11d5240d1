package controllers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"

	"github.com/maxwharris/monop/platform/board"
	"github.com/maxwharris/monop/platform/cache"
	"github.com/maxwharris/monop/platform/database"
	"github.com/maxwharris/monop/platform/queries"
)

// GameState is the authoritative snapshot clients re-sync from.
func GameState(c *fiber.Ctx) error {
	db := database.PostgreSQLConnection()
	defer db.Close()
	store := queries.NewStore(db)

	game, err := store.GetGame()
	if err != nil {
		return c.SendStatus(fiber.StatusInternalServerError)
	}
	players, err := store.GetAllPlayers()
	if err != nil {
		return c.SendStatus(fiber.StatusInternalServerError)
	}
	props, err := store.GetAllProperties()
	if err != nil {
		return c.SendStatus(fiber.StatusInternalServerError)
	}

	return c.JSON(fiber.Map{
		"game":       game,
		"players":    players,
		"properties": props,
	})
}

// Board serves the static catalog so clients never hardcode it.
func Board(c *fiber.Ctx) error {
	return c.JSON(board.Spaces)
}

// ResetGame wipes everything back to an empty lobby. Clients learn
// about it by refetching state.
func ResetGame(c *fiber.Ctx) error {
	db := database.PostgreSQLConnection()
	defer db.Close()
	store := queries.NewStore(db)

	players, err := store.GetAllPlayers()
	if err != nil {
		return c.SendStatus(fiber.StatusInternalServerError)
	}
	if err := store.ResetGame(); err != nil {
		logrus.WithError(err).Error("game reset failed")
		return c.SendStatus(fiber.StatusInternalServerError)
	}

	conn, err := cache.CreateRedisConnection()
	if err == nil {
		defer conn.Close()
		for _, p := range players {
			queries.ResetTurnFlags(p.UserId, &conn)
		}
	}

	logrus.Warn("game state reset to lobby")
	return c.JSON(fiber.Map{"status": "lobby"})
}
