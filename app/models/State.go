package models

// PlayerState is the public view of a seated player.
type PlayerState struct {
	ID             string      `json:"id"`
	Name           string      `json:"name"`
	Position       int         `json:"position"`
	Money          int         `json:"money"`
	Properties     []int       `json:"properties"`
	InJail         bool        `json:"inJail"`
	Houses         map[int]int `json:"houses"`
	Mortgaged      []int       `json:"mortgaged"`
	Bankrupt       bool        `json:"bankrupt"`
	Disconnected   bool        `json:"disconnected"`
	RolledThisTurn bool        `json:"rolledThisTurn"`
	IsHost         bool        `json:"isHost"`
}

// TileState is the public view of a board tile.
type TileState struct {
	Idx       int    `json:"idx"`
	Name      string `json:"name"`
	Type      string `json:"type"`
	Color     string `json:"color,omitempty"`
	Price     int    `json:"price,omitempty"`
	Rent      []int  `json:"rent,omitempty"`
	Owner     string `json:"owner,omitempty"`
	HouseCost int    `json:"houseCost,omitempty"`
	Mortgaged bool   `json:"mortgaged"`
}

// RoomState is the full authoritative snapshot broadcast after every
// accepted intent. Clients treat it as current truth, not a delta.
type RoomState struct {
	Players   []PlayerState `json:"players"`
	Board     []TileState   `json:"board"`
	TurnIndex int           `json:"turnIndex"`
	Started   bool          `json:"started"`
	Log       []string      `json:"log"`
}

// DiceRoll is broadcast before the snapshot that carries its effects.
type DiceRoll struct {
	Die1       int    `json:"die1"`
	Die2       int    `json:"die2"`
	PlayerID   string `json:"playerId"`
	PlayerName string `json:"playerName"`
}

// Message is a user-facing notice sent to a single connection.
type Message struct {
	Text string `json:"text"`
	Type string `json:"type"` // "error", "success" or "info"
}
