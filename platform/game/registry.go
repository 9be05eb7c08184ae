package game

import (
	"errors"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/poblenou/monopoly-backend/pkg"
)

// Registry owns the process-wide room map. The map is the only state
// shared across rooms and is guarded here; everything inside a room is
// guarded by that room's lock.
type Registry struct {
	mu    sync.RWMutex
	rooms map[string]*Room
	cfg   Config
	pub   Publisher
	dir   Directory
}

func NewRegistry(cfg Config, pub Publisher, dir Directory) *Registry {
	if dir == nil {
		dir = NopDirectory{}
	}
	return &Registry{
		rooms: make(map[string]*Room),
		cfg:   cfg,
		pub:   pub,
		dir:   dir,
	}
}

// Get returns the room for an id, if it exists.
func (g *Registry) Get(id string) (*Room, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	rm, ok := g.rooms[id]
	return rm, ok
}

// CreateRoom generates a collision-free room code, binds a new room and
// seats the creator as host. The idle timer tears the room down if the
// game never starts.
func (g *Registry) CreateRoom(connID, name string) (*Room, error) {
	safeName := pkg.Sanitize(name)
	if len(safeName) < 2 {
		return nil, errors.New("Name must be at least 2 characters")
	}

	g.mu.Lock()
	id := pkg.RandString(g.cfg.RoomCodeLen)
	for {
		if _, taken := g.rooms[id]; !taken {
			break
		}
		id = pkg.RandString(g.cfg.RoomCodeLen)
	}
	rm := newRoom(id, g.cfg, g.pub, g)
	g.rooms[id] = rm
	g.mu.Unlock()

	rm.mu.Lock()
	host := newPlayer(connID, safeName, g.cfg.StartingMoney)
	host.IsHost = true
	rm.Players = append(rm.Players, host)
	rm.logf("%s created the room", safeName)
	rm.idle = time.AfterFunc(g.cfg.IdleTTL, rm.expireIdle)
	rm.updateDirectory()
	rm.mu.Unlock()

	logrus.WithFields(logrus.Fields{"room": id, "player": safeName}).Info("room created")
	return rm, nil
}

// Join seats an identity in a room. Joining with an identity that is
// already seated (including a disconnected one) reclaims the seat and
// returns current state instead of erroring.
func (g *Registry) Join(roomID, connID, name string) (*Room, error) {
	safeName := pkg.Sanitize(name)
	rm, ok := g.Get(pkg.Sanitize(roomID))
	if !ok {
		return nil, errors.New("Room not found")
	}

	rm.mu.Lock()
	defer rm.mu.Unlock()
	if rm.closed {
		return nil, errors.New("Room not found")
	}
	if p := rm.playerByID(connID); p != nil {
		rm.reclaim(p)
		return rm, nil
	}
	if rm.Started {
		return nil, errors.New("The game has already started")
	}
	if len(rm.Players) >= g.cfg.MaxPlayers {
		return nil, errors.New("Room is full")
	}
	if len(safeName) < 2 {
		return nil, errors.New("Name must be at least 2 characters")
	}
	rm.Players = append(rm.Players, newPlayer(connID, safeName, g.cfg.StartingMoney))
	rm.logf("%s joined the room", safeName)
	rm.updateDirectory()
	logrus.WithFields(logrus.Fields{"room": rm.ID, "player": safeName}).Info("player joined")
	return rm, nil
}

// remove deletes a room from the registry and the lobby directory.
func (g *Registry) remove(id string) {
	g.mu.Lock()
	delete(g.rooms, id)
	g.mu.Unlock()
	g.dir.Remove(id)
	logrus.WithField("room", id).Info("room removed")
}

// Len reports the number of live rooms.
func (g *Registry) Len() int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return len(g.rooms)
}
