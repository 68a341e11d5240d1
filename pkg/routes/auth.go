package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/maxwharris/monop/app/controllers"
)

func AuthRoutes(a *fiber.App) {
	route := a.Group("/api/auth")

	route.Post("/register", controllers.CreateUser)
	route.Post("/login", controllers.Login)
	route.Post("/spectate", controllers.Spectate)
	route.Get("/verify", controllers.Verify)
}
