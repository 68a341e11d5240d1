package controllers

import (
	"strconv"
	"strings"

	jwt "github.com/form3tech-oss/jwt-go"
	"github.com/gofiber/fiber/v2"

	"github.com/maxwharris/monop/app/models"
	"github.com/maxwharris/monop/platform/database"
	"github.com/maxwharris/monop/platform/queries"
	socket "github.com/maxwharris/monop/platform/sockets"
)

func ChatMessages(c *fiber.Ctx) error {
	db := database.PostgreSQLConnection()
	defer db.Close()
	store := queries.NewStore(db)

	limit, err := strconv.Atoi(c.Query("limit"))
	if err != nil || limit <= 0 {
		limit = 100
	}

	messages, err := store.GetChatMessages(limit)
	if err != nil {
		return c.SendStatus(fiber.StatusInternalServerError)
	}
	return c.JSON(messages)
}

func SendChatMessage(c *fiber.Ctx) error {
	db := database.PostgreSQLConnection()
	defer db.Close()
	store := queries.NewStore(db)

	dto := new(models.ChatSendDto)
	if err := c.BodyParser(dto); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid request body"})
	}
	if strings.TrimSpace(dto.Message) == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Message cannot be empty"})
	}

	token := c.Locals("user").(*jwt.Token)
	claims := token.Claims.(jwt.MapClaims)
	userId, _ := claims["user_id"].(string)
	username, _ := claims["username"].(string)

	msg, err := store.CreateChatMessage(userId, username, dto.Message)
	if err != nil {
		return c.SendStatus(fiber.StatusInternalServerError)
	}

	socket.Broadcast("chat:message", msg)
	return c.JSON(msg)
}
