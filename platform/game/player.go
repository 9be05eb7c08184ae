package game

import "time"

// Player is one seat in a room. The id is connection-derived and stable
// for the session. All fields are guarded by the owning room's lock.
type Player struct {
	ID             string
	Name           string
	Position       int
	Money          int
	Properties     []int
	Houses         map[int]int // tile index -> house count, 5 is a hotel
	Mortgaged      []int
	InJail         bool
	JailTurns      int
	Doubles        int // consecutive doubles this turn-cycle
	Bankrupt       bool
	Disconnected   bool
	RolledThisTurn bool
	IsHost         bool

	// removal is the pending reconnect-grace timer, nil while connected.
	removal *time.Timer
}

func newPlayer(id, name string, money int) *Player {
	return &Player{
		ID:     id,
		Name:   name,
		Money:  money,
		Houses: make(map[int]int),
	}
}

func (p *Player) eligible() bool {
	return !p.Bankrupt && !p.Disconnected
}

// cancelRemoval stops a pending grace timer, if any. The timer callback
// re-checks Disconnected under the room lock, so a too-late Stop is safe.
func (p *Player) cancelRemoval() {
	if p.removal != nil {
		p.removal.Stop()
		p.removal = nil
	}
}
