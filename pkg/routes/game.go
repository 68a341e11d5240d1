package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/maxwharris/monop/app/controllers"
)

// GameRoutes are registered behind the JWT middleware.
func GameRoutes(a *fiber.App) {
	route := a.Group("/api/game")

	route.Get("/state", controllers.GameState)
	route.Get("/board", controllers.Board)
	route.Post("/reset", controllers.ResetGame)
}
