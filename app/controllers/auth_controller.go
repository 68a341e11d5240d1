package controllers

import (
	"os"
	"strings"
	"time"

	jwt "github.com/form3tech-oss/jwt-go"
	"github.com/gofiber/fiber/v2"
	uuid "github.com/satori/go.uuid"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"

	"github.com/maxwharris/monop/app/models"
	"github.com/maxwharris/monop/platform/database"
	"github.com/maxwharris/monop/platform/queries"
)

func signToken(userId, username string) (string, error) {
	token := jwt.New(jwt.SigningMethodHS256)
	claims := token.Claims.(jwt.MapClaims)
	claims["user_id"] = userId
	claims["username"] = username
	claims["exp"] = time.Now().Add(24 * time.Hour).Unix()
	return token.SignedString([]byte(os.Getenv("JWT_SECRET")))
}

func CreateUser(c *fiber.Ctx) error {
	db := database.PostgreSQLConnection()
	defer db.Close()
	store := queries.NewStore(db)

	userDto := new(models.UserDto)
	if err := c.BodyParser(userDto); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid request body"})
	}
	if userDto.Username == "" || userDto.Password == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Username and password required"})
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(userDto.Password), bcrypt.DefaultCost)
	if err != nil {
		return c.SendStatus(fiber.StatusInternalServerError)
	}

	user := &models.User{
		Id:           uuid.NewV4().String(),
		Username:     userDto.Username,
		PasswordHash: string(hash),
	}
	if err := store.CreateUser(user); err != nil {
		logrus.WithError(err).Warn("user creation failed")
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"message": "Username already taken"})
	}
	return c.SendStatus(fiber.StatusCreated)
}

func Login(c *fiber.Ctx) error {
	db := database.PostgreSQLConnection()
	defer db.Close()
	store := queries.NewStore(db)

	userDto := new(models.UserDto)
	if err := c.BodyParser(userDto); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid request body"})
	}

	user, err := store.GetUserByUsername(userDto.Username)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "Invalid credentials"})
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(userDto.Password)) != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "Invalid credentials"})
	}

	token, err := signToken(user.Id, user.Username)
	if err != nil {
		return c.SendStatus(fiber.StatusInternalServerError)
	}
	return c.JSON(fiber.Map{
		"token": token,
		"user": fiber.Map{
			"id":         user.Id,
			"username":   user.Username,
			"token_type": user.TokenType,
		},
	})
}

// Spectate hands out a read-only identity; it can watch and chat but
// never holds a seat.
func Spectate(c *fiber.Ctx) error {
	token, err := signToken("0", "Spectator")
	if err != nil {
		return c.SendStatus(fiber.StatusInternalServerError)
	}
	return c.JSON(fiber.Map{
		"token": token,
		"user": fiber.Map{
			"id":         "0",
			"username":   "Spectator",
			"token_type": "spectator",
		},
	})
}

func Verify(c *fiber.Ctx) error {
	header := c.Get("Authorization")
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "No token provided"})
	}

	parsed, err := jwt.Parse(parts[1], func(t *jwt.Token) (interface{}, error) {
		return []byte(os.Getenv("JWT_SECRET")), nil
	})
	if err != nil || !parsed.Valid {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "Invalid token"})
	}
	return c.JSON(fiber.Map{"valid": true, "user": parsed.Claims})
}

// Cur returns the authenticated user id, mostly a middleware smoke
// check.
func Cur(c *fiber.Ctx) error {
	user := c.Locals("user").(*jwt.Token)
	claims := user.Claims.(jwt.MapClaims)
	return c.SendString(claims["user_id"].(string))
}
