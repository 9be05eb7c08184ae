package game

// Publisher delivers room-scoped events to every connected member of a
// room. The transport is external; the engine only decides what to
// publish and when.
type Publisher interface {
	ToRoom(roomID, event string, payload interface{})
}

// Event names published by the engine.
const (
	EventRoomState  = "room-state"
	EventDiceRolled = "dice-rolled"
	EventMessage    = "message"
)

// RoomInfo is the lobby directory entry for a room.
type RoomInfo struct {
	ID      string `json:"id"`
	Host    string `json:"host"`
	Players int    `json:"players"`
	Started bool   `json:"started"`
}

// Directory is the advisory open-room index behind the lobby HTTP
// endpoints. Implementations must tolerate being called from multiple
// rooms concurrently. Failures are the implementation's problem; the
// engine never depends on directory state.
type Directory interface {
	Upsert(info RoomInfo)
	Remove(id string)
}

// NopDirectory satisfies Directory and records nothing.
type NopDirectory struct{}

func (NopDirectory) Upsert(RoomInfo) {}
func (NopDirectory) Remove(string)   {}
