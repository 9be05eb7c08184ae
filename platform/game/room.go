package game

import (
	"errors"
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/poblenou/monopoly-backend/app/models"
	"github.com/poblenou/monopoly-backend/platform/board"
)

// Room is one isolated game session. All mutation goes through exported
// methods that take mu, so every multi-step resolution is atomic from the
// outside; intents for different rooms proceed in parallel.
type Room struct {
	ID        string
	CreatedAt time.Time

	mu        sync.Mutex
	Players   []*Player
	Board     []*board.Tile
	Chance    *board.Deck
	Community *board.Deck
	TurnIndex int
	Started   bool
	Log       []string

	cfg    Config
	pub    Publisher
	reg    *Registry
	rng    *rand.Rand
	roll   func() int // die source, replaced in tests
	idle   *time.Timer
	closed bool
}

func newRoom(id string, cfg Config, pub Publisher, reg *Registry) *Room {
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	rm := &Room{
		ID:        id,
		CreatedAt: time.Now(),
		Board:     board.New(),
		Chance:    board.NewChanceDeck(),
		Community: board.NewCommunityDeck(),
		cfg:       cfg,
		pub:       pub,
		reg:       reg,
		rng:       rng,
	}
	rm.roll = func() int { return rm.rng.Intn(6) + 1 }
	return rm
}

// logf prepends a line to the room log, trimming to the configured cap.
func (rm *Room) logf(format string, args ...interface{}) {
	line := fmt.Sprintf(format, args...)
	rm.Log = append([]string{line}, rm.Log...)
	if len(rm.Log) > rm.cfg.LogCap {
		rm.Log = rm.Log[:rm.cfg.LogCap]
	}
}

func (rm *Room) playerIndex(id string) int {
	for i, p := range rm.Players {
		if p.ID == id {
			return i
		}
	}
	return -1
}

func (rm *Room) playerByID(id string) *Player {
	if i := rm.playerIndex(id); i != -1 {
		return rm.Players[i]
	}
	return nil
}

func (rm *Room) alive() []*Player {
	var out []*Player
	for _, p := range rm.Players {
		if !p.Bankrupt {
			out = append(out, p)
		}
	}
	return out
}

// snapshot builds the public room state. Caller holds mu. Slices and maps
// are copied so the payload stays valid after the lock is released.
func (rm *Room) snapshot() models.RoomState {
	st := models.RoomState{
		TurnIndex: rm.TurnIndex,
		Started:   rm.Started,
		Players:   make([]models.PlayerState, 0, len(rm.Players)),
		Board:     make([]models.TileState, 0, len(rm.Board)),
		Log:       append([]string(nil), rm.Log...),
	}
	for _, p := range rm.Players {
		houses := make(map[int]int, len(p.Houses))
		for k, v := range p.Houses {
			houses[k] = v
		}
		st.Players = append(st.Players, models.PlayerState{
			ID:             p.ID,
			Name:           p.Name,
			Position:       p.Position,
			Money:          p.Money,
			Properties:     append([]int(nil), p.Properties...),
			InJail:         p.InJail,
			Houses:         houses,
			Mortgaged:      append([]int(nil), p.Mortgaged...),
			Bankrupt:       p.Bankrupt,
			Disconnected:   p.Disconnected,
			RolledThisTurn: p.RolledThisTurn,
			IsHost:         p.IsHost,
		})
	}
	for _, t := range rm.Board {
		st.Board = append(st.Board, models.TileState{
			Idx:       t.Idx,
			Name:      t.Name,
			Type:      t.Kind.String(),
			Color:     t.Color,
			Price:     t.Price,
			Rent:      append([]int(nil), t.Rent...),
			Owner:     t.Owner,
			HouseCost: t.HouseCost,
			Mortgaged: t.Mortgaged,
		})
	}
	return st
}

// publishState broadcasts the current snapshot. Caller holds mu.
func (rm *Room) publishState() {
	rm.pub.ToRoom(rm.ID, EventRoomState, rm.snapshot())
}

func (rm *Room) message(text, typ string) {
	rm.pub.ToRoom(rm.ID, EventMessage, models.Message{Text: text, Type: typ})
}

// PublishState broadcasts the current snapshot. Used by the transport
// layer after seating a connection into the broadcast channel.
func (rm *Room) PublishState() {
	rm.mu.Lock()
	defer rm.mu.Unlock()
	rm.publishState()
}

// Start begins the game: at least two seated players, not already
// started. Both decks are shuffled and the idle-cleanup timer cancelled.
func (rm *Room) Start(connID string) error {
	rm.mu.Lock()
	defer rm.mu.Unlock()
	if rm.closed {
		return errors.New("Room not found")
	}
	if rm.Started {
		return errors.New("The game has already started")
	}
	if len(rm.Players) < 2 {
		return errors.New("At least 2 players are needed")
	}
	if rm.playerByID(connID) == nil {
		return nil
	}
	rm.Started = true
	rm.TurnIndex = 0
	rm.Chance.Shuffle(rm.rng)
	rm.Community.Shuffle(rm.rng)
	if rm.idle != nil {
		rm.idle.Stop()
		rm.idle = nil
	}
	rm.logf("The game has started!")
	rm.updateDirectory()
	logrus.WithField("room", rm.ID).Info("game started")
	rm.message("Game started!", "success")
	rm.publishState()
	return nil
}

// EndTurn passes the turn. Valid only for the current turn-holder.
func (rm *Room) EndTurn(connID string) error {
	rm.mu.Lock()
	defer rm.mu.Unlock()
	if !rm.Started {
		return nil
	}
	idx := rm.playerIndex(connID)
	if idx == -1 || idx != rm.TurnIndex {
		return errors.New("Not your turn")
	}
	rm.advanceTurn()
	rm.publishState()
	return nil
}

// Disconnect marks the player disconnected and schedules the single
// grace-period removal timer. The seat stays reclaimable until it fires.
func (rm *Room) Disconnect(connID string) {
	rm.mu.Lock()
	defer rm.mu.Unlock()
	p := rm.playerByID(connID)
	if p == nil || p.Disconnected {
		return
	}
	p.Disconnected = true
	rm.logf("%s disconnected", p.Name)
	p.removal = time.AfterFunc(rm.cfg.ReconnectGrace, func() { rm.expireSeat(connID) })
	logrus.WithFields(logrus.Fields{"room": rm.ID, "player": p.Name}).Info("player disconnected")
	rm.updateDirectory()
	rm.publishState()
}

// expireSeat is the grace-timer callback. It re-checks the live
// disconnected state under the lock, so a reclaim that races the timer
// always wins.
func (rm *Room) expireSeat(connID string) {
	rm.mu.Lock()
	p := rm.playerByID(connID)
	if p == nil || !p.Disconnected {
		rm.mu.Unlock()
		return
	}
	rm.removeSeat(connID)
	rm.logf("%s was removed after timing out", p.Name)
	if len(rm.Players) == 0 {
		rm.closed = true
		rm.mu.Unlock()
		rm.reg.remove(rm.ID)
		return
	}
	rm.updateDirectory()
	rm.publishState()
	rm.mu.Unlock()
}

// removeSeat drops a player from the room, releasing their tiles and
// keeping the turn pointer on the same logical seat. Caller holds mu.
func (rm *Room) removeSeat(connID string) {
	i := rm.playerIndex(connID)
	if i == -1 {
		return
	}
	p := rm.Players[i]
	rm.releaseTiles(p)
	rm.Players = append(rm.Players[:i], rm.Players[i+1:]...)
	n := len(rm.Players)
	if n == 0 {
		rm.TurnIndex = 0
		return
	}
	switch {
	case i < rm.TurnIndex:
		rm.TurnIndex--
	case i == rm.TurnIndex:
		if rm.Started {
			rm.TurnIndex = (i - 1 + n) % n
			rm.advanceTurn()
		} else if rm.TurnIndex >= n {
			rm.TurnIndex = 0
		}
	}
	if rm.Started && len(rm.alive()) <= 1 {
		rm.endGame()
	}
}

// reclaim reseats a disconnected identity. Caller holds mu.
func (rm *Room) reclaim(p *Player) {
	p.cancelRemoval()
	if p.Disconnected {
		p.Disconnected = false
		rm.logf("%s reconnected", p.Name)
		rm.updateDirectory()
	}
}

// expireIdle is the idle-cleanup callback: rooms that never started are
// torn down after the idle threshold regardless of occupancy.
func (rm *Room) expireIdle() {
	rm.mu.Lock()
	if rm.Started || rm.closed {
		rm.mu.Unlock()
		return
	}
	rm.closed = true
	rm.mu.Unlock()
	logrus.WithField("room", rm.ID).Info("idle room removed")
	rm.reg.remove(rm.ID)
}

func (rm *Room) hostName() string {
	for _, p := range rm.Players {
		if p.IsHost {
			return p.Name
		}
	}
	if len(rm.Players) > 0 {
		return rm.Players[0].Name
	}
	return ""
}

func (rm *Room) updateDirectory() {
	rm.reg.dir.Upsert(RoomInfo{
		ID:      rm.ID,
		Host:    rm.hostName(),
		Players: len(rm.Players),
		Started: rm.Started,
	})
}
