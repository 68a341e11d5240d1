package socket

import (
	"encoding/json"
	"errors"
	"math/rand"
	"net/http"
	"os"
	"time"

	jwt "github.com/form3tech-oss/jwt-go"
	socketio "github.com/googollee/go-socket.io"
	"github.com/rs/cors"
	"github.com/sirupsen/logrus"

	"github.com/maxwharris/monop/app/session"
	"github.com/maxwharris/monop/pkg/rules"
	"github.com/maxwharris/monop/platform/cache"
	"github.com/maxwharris/monop/platform/database"
	"github.com/maxwharris/monop/platform/queries"
)

// All connections share one room; there is only one game.
const gameRoom = "game"

type client struct {
	UserId   string `json:"user_id"`
	Username string `json:"username"`
}

// Emitter adapts the socket.io server to session.Broadcaster. Payloads
// go over the wire as JSON strings.
type Emitter struct {
	server *socketio.Server
}

func (e *Emitter) Broadcast(event string, payload interface{}) {
	data, err := json.Marshal(payload)
	if err != nil {
		logrus.WithError(err).WithField("event", event).Error("failed to marshal broadcast payload")
		return
	}
	e.server.BroadcastToRoom("/", gameRoom, event, string(data))
}

// Default is set once the socket server is up; HTTP handlers use it to
// broadcast chat messages. Nil until then, in which case events are
// dropped and clients catch up from state fetches.
var Default *Emitter

func Broadcast(event string, payload interface{}) {
	if Default != nil {
		Default.Broadcast(event, payload)
	}
}

// CreateSocketIOServer runs the realtime side: authenticated clients
// join the shared room, game actions go through the session facade,
// and every mutation is broadcast back out.
func CreateSocketIOServer() {
	server, err := socketio.NewServer(nil)
	if err != nil {
		logrus.WithError(err).Fatal("failed to create socket.io server")
	}

	db := database.PostgreSQLConnection()
	defer db.Close()
	store := queries.NewStore(db)

	pool := cache.CreateRedisPool()
	defer pool.Close()

	emitter := &Emitter{server: server}
	Default = emitter
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	facade := session.New(store, pool, emitter, rng)

	server.OnConnect("/", func(s socketio.Conn) error {
		s.SetContext(nil)
		s.Join(gameRoom)
		return nil
	})

	server.OnEvent("/", "user:authenticate", func(s socketio.Conn, jsonStr string) {
		var payload map[string]string
		json.Unmarshal([]byte(jsonStr), &payload)

		c, err := verifyToken(payload["token"])
		if err != nil {
			s.Emit("error-message", "User not authenticated")
			return
		}
		s.SetContext(c)
		logrus.WithFields(logrus.Fields{"user_id": c.UserId, "username": c.Username}).Info("socket authenticated")

		emitter.Broadcast("player:connected", c)
		if snapshot, err := facade.FullState(); err == nil {
			emitJSON(s, "game:state", snapshot)
		}
	})

	server.OnEvent("/", "game:join", func(s socketio.Conn, jsonStr string) {
		c, ok := ident(s)
		if !ok {
			s.Emit("error-message", "User not authenticated")
			return
		}
		if _, err := facade.Join(c.UserId); err != nil {
			emitError(s, err)
		}
	})

	server.OnEvent("/", "game:start", func(s socketio.Conn, jsonStr string) {
		if _, ok := ident(s); !ok {
			s.Emit("error-message", "User not authenticated")
			return
		}
		if _, err := facade.Start(); err != nil {
			emitError(s, err)
		}
	})

	server.OnEvent("/", "game:roll_dice", func(s socketio.Conn, jsonStr string) {
		c, ok := ident(s)
		if !ok {
			s.Emit("error-message", "User not authenticated")
			return
		}
		if _, err := facade.RollDice(c.UserId); err != nil {
			emitError(s, err)
		}
	})

	server.OnEvent("/", "game:buy_property", func(s socketio.Conn, jsonStr string) {
		c, ok := ident(s)
		if !ok {
			s.Emit("error-message", "User not authenticated")
			return
		}
		if _, err := facade.BuyProperty(c.UserId); err != nil {
			emitError(s, err)
		}
	})

	server.OnEvent("/", "game:jail_action", func(s socketio.Conn, jsonStr string) {
		c, ok := ident(s)
		if !ok {
			s.Emit("error-message", "User not authenticated")
			return
		}
		var payload map[string]string
		json.Unmarshal([]byte(jsonStr), &payload)
		if _, err := facade.JailAction(c.UserId, payload["method"]); err != nil {
			emitError(s, err)
		}
	})

	server.OnEvent("/", "game:end_turn", func(s socketio.Conn, jsonStr string) {
		c, ok := ident(s)
		if !ok {
			s.Emit("error-message", "User not authenticated")
			return
		}
		if _, err := facade.EndTurn(c.UserId); err != nil {
			emitError(s, err)
		}
	})

	server.OnError("/", func(s socketio.Conn, e error) {
		logrus.WithError(e).Error("socket error")
	})

	server.OnDisconnect("/", func(s socketio.Conn, reason string) {
		if c, ok := ident(s); ok {
			emitter.Broadcast("player:disconnected", c)
		}
		s.LeaveAll()
	})

	// Lapsed turn deadlines are force-ended in the background.
	go func() {
		ticker := time.NewTicker(time.Minute)
		defer ticker.Stop()
		for range ticker.C {
			if _, err := facade.HandleTimeout(); err != nil {
				logrus.WithError(err).Error("turn timeout handling failed")
			}
		}
	}()

	go server.Serve()
	defer server.Close()

	origin := os.Getenv("FRONTEND_URL")
	if origin == "" {
		origin = "http://localhost:5173"
	}
	c := cors.New(cors.Options{
		AllowedOrigins:   []string{origin},
		AllowCredentials: true,
	})

	port := os.Getenv("SOCKET_PORT")
	if port == "" {
		port = "8000"
	}

	mux := http.NewServeMux()
	mux.Handle("/socket.io/", server)
	logrus.WithField("port", port).Info("socket.io server listening")
	http.ListenAndServe(":"+port, c.Handler(mux))
}

func ident(s socketio.Conn) (client, bool) {
	c, ok := s.Context().(client)
	return c, ok
}

func emitError(s socketio.Conn, err error) {
	if re := rules.AsRuleError(err); re != nil {
		s.Emit("error-message", re.Message)
		return
	}
	logrus.WithError(err).Error("game action failed")
	s.Emit("error-message", "Something went wrong, please retry")
}

func emitJSON(s socketio.Conn, event string, payload interface{}) {
	data, err := json.Marshal(payload)
	if err != nil {
		logrus.WithError(err).WithField("event", event).Error("failed to marshal payload")
		return
	}
	s.Emit(event, string(data))
}

func verifyToken(token string) (client, error) {
	parsed, err := jwt.Parse(token, func(t *jwt.Token) (interface{}, error) {
		return []byte(os.Getenv("JWT_SECRET")), nil
	})
	if err != nil || !parsed.Valid {
		return client{}, errors.New("invalid token")
	}
	claims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok {
		return client{}, errors.New("invalid claims")
	}
	userId, _ := claims["user_id"].(string)
	username, _ := claims["username"].(string)
	if userId == "" {
		return client{}, errors.New("token missing user id")
	}
	return client{UserId: userId, Username: username}, nil
}
