package socket

import (
	"encoding/json"
	"net/http"
	"os"
	"strconv"
	"time"

	socketio "github.com/googollee/go-socket.io"
	"github.com/rs/cors"
	"github.com/sirupsen/logrus"

	"github.com/poblenou/monopoly-backend/app/models"
	"github.com/poblenou/monopoly-backend/platform/cache"
	"github.com/poblenou/monopoly-backend/platform/game"
)

// broadcaster adapts the socket.io server to game.Publisher. Payloads are
// marshalled once and broadcast as JSON strings.
type broadcaster struct {
	server *socketio.Server
}

func (b *broadcaster) ToRoom(roomID, event string, payload interface{}) {
	data, err := json.Marshal(payload)
	if err != nil {
		logrus.WithError(err).WithField("event", event).Error("marshal broadcast")
		return
	}
	b.server.BroadcastToRoom("/", roomID, event, string(data))
}

func emitMessage(s socketio.Conn, text, typ string) {
	data, err := json.Marshal(models.Message{Text: text, Type: typ})
	if err != nil {
		return
	}
	s.Emit("message", string(data))
}

func emitError(s socketio.Conn, err error) {
	if err != nil {
		emitMessage(s, err.Error(), "error")
	}
}

func decode(jsonStr string) map[string]string {
	var result map[string]string
	json.Unmarshal([]byte(jsonStr), &result)
	return result
}

func tileIndex(result map[string]string) (int, bool) {
	idx, err := strconv.Atoi(result["card_pos"])
	return idx, err == nil
}

// CreateSocketIOServer wires the realtime intent surface: rate limiting,
// registry dispatch and snapshot broadcasting.
func CreateSocketIOServer() {
	server, err := socketio.NewServer(nil)
	if err != nil {
		panic(err)
	}

	pool := cache.CreateRedisPool()
	defer pool.Close()

	limiter := game.NewRateLimiter()
	defer limiter.Close()

	registry := game.NewRegistry(game.FromEnv(), &broadcaster{server: server}, cache.NewDirectory(pool))

	server.OnConnect("/", func(s socketio.Conn) error {
		s.SetContext("")
		logrus.WithField("conn", s.ID()).Debug("connected")
		return nil
	})

	server.OnEvent("/", "create-room", func(s socketio.Conn, jsonStr string) {
		if !limiter.Allow(s.ID(), "create-room", 3, 10*time.Second) {
			emitMessage(s, "Too many requests. Wait a moment.", "error")
			return
		}
		result := decode(jsonStr)
		room, err := registry.CreateRoom(s.ID(), result["name"])
		if err != nil {
			emitError(s, err)
			return
		}
		s.Join(room.ID)
		s.Emit("room-created", room.ID)
		room.PublishState()
	})

	server.OnEvent("/", "join-game", func(s socketio.Conn, jsonStr string) {
		if !limiter.Allow(s.ID(), "join-game", 5, 5*time.Second) {
			emitMessage(s, "Too many requests", "error")
			return
		}
		result := decode(jsonStr)
		room, err := registry.Join(result["room_id"], s.ID(), result["name"])
		if err != nil {
			emitError(s, err)
			return
		}
		s.Join(room.ID)
		s.Emit("room-joined", room.ID)
		room.PublishState()
	})

	server.OnEvent("/", "start-game", func(s socketio.Conn, roomID string) {
		if room, ok := registry.Get(roomID); ok {
			emitError(s, room.Start(s.ID()))
		}
	})

	server.OnEvent("/", "roll-dice", func(s socketio.Conn, jsonStr string) {
		if !limiter.Allow(s.ID(), "roll-dice", 5, 2*time.Second) {
			emitMessage(s, "Wait before rolling again", "error")
			return
		}
		result := decode(jsonStr)
		if room, ok := registry.Get(result["room_id"]); ok {
			emitError(s, room.RollDice(s.ID()))
		}
	})

	server.OnEvent("/", "request-buy", func(s socketio.Conn, jsonStr string) {
		if !limiter.Allow(s.ID(), "request-buy", 3, time.Second) {
			return
		}
		result := decode(jsonStr)
		idx, ok := tileIndex(result)
		if !ok {
			return
		}
		if room, found := registry.Get(result["room_id"]); found {
			if err := room.BuyProperty(s.ID(), idx); err != nil {
				emitError(s, err)
			} else {
				emitMessage(s, "Property purchased!", "success")
			}
		}
	})

	server.OnEvent("/", "buy-house", func(s socketio.Conn, jsonStr string) {
		if !limiter.Allow(s.ID(), "buy-house", 3, time.Second) {
			return
		}
		result := decode(jsonStr)
		idx, ok := tileIndex(result)
		if !ok {
			return
		}
		if room, found := registry.Get(result["room_id"]); found {
			if err := room.BuildHouse(s.ID(), idx); err != nil {
				emitError(s, err)
			} else {
				emitMessage(s, "House built!", "success")
			}
		}
	})

	server.OnEvent("/", "mortgage-property", func(s socketio.Conn, jsonStr string) {
		if !limiter.Allow(s.ID(), "mortgage-property", 3, time.Second) {
			return
		}
		result := decode(jsonStr)
		idx, ok := tileIndex(result)
		if !ok {
			return
		}
		if room, found := registry.Get(result["room_id"]); found {
			if err := room.MortgageProperty(s.ID(), idx); err != nil {
				emitError(s, err)
			} else {
				emitMessage(s, "Property mortgaged", "success")
			}
		}
	})

	server.OnEvent("/", "end-turn", func(s socketio.Conn, jsonStr string) {
		result := decode(jsonStr)
		if room, ok := registry.Get(result["room_id"]); ok {
			emitError(s, room.EndTurn(s.ID()))
		}
	})

	server.OnError("/", func(s socketio.Conn, e error) {
		logrus.WithError(e).Warn("socket error")
	})

	server.OnDisconnect("/", func(s socketio.Conn, reason string) {
		for _, roomID := range s.Rooms() {
			if room, ok := registry.Get(roomID); ok {
				room.Disconnect(s.ID())
			}
		}
		limiter.Forget(s.ID())
		s.LeaveAll()
	})

	go server.Serve()
	defer server.Close()

	c := cors.New(cors.Options{
		AllowedOrigins:   []string{corsOrigin()},
		AllowCredentials: true,
	})

	mux := http.NewServeMux()
	mux.Handle("/socket.io/", server)
	http.ListenAndServe(":8000", c.Handler(mux))
}

func corsOrigin() string {
	if origin := os.Getenv("CORS_ORIGIN"); origin != "" {
		return origin
	}
	return "http://localhost:3000"
}
