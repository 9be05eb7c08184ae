package game

import (
	"fmt"
	"sync"
	"testing"

	"github.com/poblenou/monopoly-backend/app/models"
	"github.com/poblenou/monopoly-backend/platform/board"
)

type pubEvent struct {
	room    string
	event   string
	payload interface{}
}

// recordingPub captures everything the engine publishes.
type recordingPub struct {
	mu     sync.Mutex
	events []pubEvent
}

func (r *recordingPub) ToRoom(room, event string, payload interface{}) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, pubEvent{room, event, payload})
}

func (r *recordingPub) count(event string) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	n := 0
	for _, e := range r.events {
		if e.event == event {
			n++
		}
	}
	return n
}

func (r *recordingPub) lastState() (models.RoomState, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := len(r.events) - 1; i >= 0; i-- {
		if r.events[i].event == EventRoomState {
			return r.events[i].payload.(models.RoomState), true
		}
	}
	return models.RoomState{}, false
}

func newTestRegistry(cfg Config) (*Registry, *recordingPub) {
	pub := &recordingPub{}
	return NewRegistry(cfg, pub, nil), pub
}

func connID(i int) string { return fmt.Sprintf("conn-%d", i) }

// seatPlayers creates a room hosted by names[0] and joins the rest, each
// under connID(i).
func seatPlayers(t *testing.T, g *Registry, names ...string) *Room {
	t.Helper()
	rm, err := g.CreateRoom(connID(0), names[0])
	if err != nil {
		t.Fatalf("create room: %v", err)
	}
	for i, name := range names[1:] {
		if _, err := g.Join(rm.ID, connID(i+1), name); err != nil {
			t.Fatalf("join %s: %v", name, err)
		}
	}
	return rm
}

// startedRoom seats and starts a game, then resets both decks to their
// canonical order so card tests are deterministic.
func startedRoom(t *testing.T, names ...string) (*Room, *recordingPub) {
	t.Helper()
	g, pub := newTestRegistry(DefaultConfig())
	rm := seatPlayers(t, g, names...)
	if err := rm.Start(connID(0)); err != nil {
		t.Fatalf("start: %v", err)
	}
	rm.Chance = board.NewChanceDeck()
	rm.Community = board.NewCommunityDeck()
	return rm, pub
}

// diceSeq replaces the room's die source with a fixed sequence.
func diceSeq(rolls ...int) func() int {
	i := 0
	return func() int {
		v := rolls[i%len(rolls)]
		i++
		return v
	}
}
