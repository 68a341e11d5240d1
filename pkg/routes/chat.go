package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/maxwharris/monop/app/controllers"
)

// ChatRoutes are registered behind the JWT middleware.
func ChatRoutes(a *fiber.App) {
	route := a.Group("/api/chat")

	route.Get("/messages", controllers.ChatMessages)
	route.Post("/send", controllers.SendChatMessage)
}
