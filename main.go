package main

import (
	"os"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	jwtware "github.com/gofiber/jwt/v2"
	_ "github.com/joho/godotenv/autoload"
	"github.com/sirupsen/logrus"

	"github.com/maxwharris/monop/app/controllers"
	"github.com/maxwharris/monop/pkg/routes"
	"github.com/maxwharris/monop/platform/database"
	"github.com/maxwharris/monop/platform/logging"
	socket "github.com/maxwharris/monop/platform/sockets"
)

func main() {
	logging.Init()

	db := database.PostgreSQLConnection()
	if err := database.EnsureSchema(db); err != nil {
		logrus.WithError(err).Fatal("schema bootstrap failed")
	}
	db.Close()

	app := fiber.New()
	app.Use(cors.New())

	routes.AuthRoutes(app)

	app.Use(jwtware.New(jwtware.Config{
		SigningKey: []byte(os.Getenv("JWT_SECRET")),
	}))

	app.Get("/user/cur", controllers.Cur)
	routes.GameRoutes(app)
	routes.ChatRoutes(app)

	go socket.CreateSocketIOServer()

	port := os.Getenv("PORT")
	if port == "" {
		port = "3001"
	}
	logrus.WithField("port", port).Info("http server listening")
	if err := app.Listen(":" + port); err != nil {
		logrus.WithError(err).Fatal("http server stopped")
	}
}
