package game

import (
	"strings"
	"testing"
)

func TestCreateRoomValidatesName(t *testing.T) {
	g, _ := newTestRegistry(DefaultConfig())
	if _, err := g.CreateRoom(connID(0), "x"); err == nil {
		t.Fatalf("expected error for a one-character name")
	}
	if _, err := g.CreateRoom(connID(0), "<>a<>"); err == nil {
		t.Fatalf("expected error when sanitization empties the name")
	}
	rm, err := g.CreateRoom(connID(0), "  <b>Alice</b>  ")
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	got := rm.Players[0].Name
	if !strings.Contains(got, "Alice") || strings.ContainsAny(got, "<> ") {
		t.Fatalf("name not sanitized: %q", got)
	}
}

func TestRoomCodeFormat(t *testing.T) {
	g, _ := newTestRegistry(DefaultConfig())
	rm, err := g.CreateRoom(connID(0), "Alice")
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if len(rm.ID) != 8 {
		t.Fatalf("room code %q has length %d, want 8", rm.ID, len(rm.ID))
	}
	for _, r := range rm.ID {
		if !(r >= 'A' && r <= 'Z' || r >= '0' && r <= '9') {
			t.Fatalf("room code %q contains %q", rm.ID, r)
		}
	}
}

func TestCreatorIsHostWithStartingMoney(t *testing.T) {
	g, _ := newTestRegistry(DefaultConfig())
	rm, _ := g.CreateRoom(connID(0), "Alice")
	host := rm.Players[0]
	if !host.IsHost {
		t.Fatalf("creator not flagged host")
	}
	if host.Money != 1500 || host.Position != 0 {
		t.Fatalf("host seeded with money=%d pos=%d", host.Money, host.Position)
	}
}

func TestJoinMissingRoom(t *testing.T) {
	g, _ := newTestRegistry(DefaultConfig())
	if _, err := g.Join("NOPE1234", connID(1), "Bob"); err == nil {
		t.Fatalf("expected error joining a missing room")
	}
}

func TestJoinStartedRoom(t *testing.T) {
	g, _ := newTestRegistry(DefaultConfig())
	rm := seatPlayers(t, g, "Alice", "Bob")
	if err := rm.Start(connID(0)); err != nil {
		t.Fatalf("start: %v", err)
	}
	if _, err := g.Join(rm.ID, connID(9), "Carol"); err == nil {
		t.Fatalf("expected error joining a started game")
	}
}

func TestJoinFullRoom(t *testing.T) {
	cfg := DefaultConfig()
	cfg.MaxPlayers = 2
	g, _ := newTestRegistry(cfg)
	rm := seatPlayers(t, g, "Alice", "Bob")
	if _, err := g.Join(rm.ID, connID(2), "Carol"); err == nil {
		t.Fatalf("expected error joining a full room")
	}
}

func TestJoinIsIdempotentForSeatedIdentity(t *testing.T) {
	g, _ := newTestRegistry(DefaultConfig())
	rm := seatPlayers(t, g, "Alice", "Bob")
	again, err := g.Join(rm.ID, connID(1), "Bob")
	if err != nil {
		t.Fatalf("re-join errored: %v", err)
	}
	if again != rm {
		t.Fatalf("re-join returned a different room")
	}
	if len(rm.Players) != 2 {
		t.Fatalf("re-join duplicated the seat: %d players", len(rm.Players))
	}
}

func TestStartNeedsTwoPlayers(t *testing.T) {
	g, _ := newTestRegistry(DefaultConfig())
	rm, _ := g.CreateRoom(connID(0), "Alice")
	if err := rm.Start(connID(0)); err == nil {
		t.Fatalf("expected error starting with one player")
	}
	if rm.Started {
		t.Fatalf("room started with one player")
	}
}

func TestStartTwiceRejected(t *testing.T) {
	g, _ := newTestRegistry(DefaultConfig())
	rm := seatPlayers(t, g, "Alice", "Bob")
	if err := rm.Start(connID(0)); err != nil {
		t.Fatalf("start: %v", err)
	}
	if err := rm.Start(connID(0)); err == nil {
		t.Fatalf("expected error starting twice")
	}
}

func TestDisconnectAndReclaim(t *testing.T) {
	g, _ := newTestRegistry(DefaultConfig())
	rm := seatPlayers(t, g, "Alice", "Bob")
	rm.Disconnect(connID(1))
	b := rm.Players[1]
	if !b.Disconnected {
		t.Fatalf("player not marked disconnected")
	}
	if b.removal == nil {
		t.Fatalf("no grace timer scheduled")
	}
	if _, err := g.Join(rm.ID, connID(1), "Bob"); err != nil {
		t.Fatalf("reclaim: %v", err)
	}
	if b.Disconnected {
		t.Fatalf("seat not reclaimed")
	}
	if b.removal != nil {
		t.Fatalf("grace timer still pending after reclaim")
	}
}

func TestExpireSeatAfterReclaimIsNoop(t *testing.T) {
	g, _ := newTestRegistry(DefaultConfig())
	rm := seatPlayers(t, g, "Alice", "Bob")
	rm.Disconnect(connID(1))
	if _, err := g.Join(rm.ID, connID(1), "Bob"); err != nil {
		t.Fatalf("reclaim: %v", err)
	}
	rm.expireSeat(connID(1)) // simulate a grace timer losing the race
	if len(rm.Players) != 2 {
		t.Fatalf("reclaimed seat removed anyway: %d players", len(rm.Players))
	}
}

func TestExpireSeatRemovesPlayer(t *testing.T) {
	g, _ := newTestRegistry(DefaultConfig())
	rm := seatPlayers(t, g, "Alice", "Bob", "Carol")
	rm.Disconnect(connID(2))
	rm.expireSeat(connID(2))
	if len(rm.Players) != 2 {
		t.Fatalf("player not removed: %d seats", len(rm.Players))
	}
	if rm.playerByID(connID(2)) != nil {
		t.Fatalf("removed player still seated")
	}
}

func TestRemovalReleasesTilesAndFixesTurnPointer(t *testing.T) {
	g, _ := newTestRegistry(DefaultConfig())
	rm := seatPlayers(t, g, "Alice", "Bob", "Carol")
	if err := rm.Start(connID(0)); err != nil {
		t.Fatalf("start: %v", err)
	}
	own(rm, rm.Players[0], 1)
	rm.TurnIndex = 2
	rm.Disconnect(connID(0))
	rm.expireSeat(connID(0))
	if rm.Board[1].Owner != "" {
		t.Fatalf("removed player's tile not released")
	}
	if rm.TurnIndex != 1 {
		t.Fatalf("turn index = %d, want 1 after removing an earlier seat", rm.TurnIndex)
	}
}

func TestRemovingTurnHolderAdvances(t *testing.T) {
	g, _ := newTestRegistry(DefaultConfig())
	rm := seatPlayers(t, g, "Alice", "Bob", "Carol")
	if err := rm.Start(connID(0)); err != nil {
		t.Fatalf("start: %v", err)
	}
	rm.Disconnect(connID(0))
	rm.expireSeat(connID(0))
	if got := rm.Players[rm.TurnIndex].ID; got != connID(1) {
		t.Fatalf("turn holder = %s, want %s", got, connID(1))
	}
}

func TestEmptyRoomIsRemoved(t *testing.T) {
	g, _ := newTestRegistry(DefaultConfig())
	rm, _ := g.CreateRoom(connID(0), "Alice")
	rm.Disconnect(connID(0))
	rm.expireSeat(connID(0))
	if g.Len() != 0 {
		t.Fatalf("registry still holds %d rooms", g.Len())
	}
	if _, ok := g.Get(rm.ID); ok {
		t.Fatalf("empty room still resolvable")
	}
}

func TestIdleRoomIsRemoved(t *testing.T) {
	g, _ := newTestRegistry(DefaultConfig())
	rm, _ := g.CreateRoom(connID(0), "Alice")
	rm.expireIdle()
	if g.Len() != 0 {
		t.Fatalf("idle room not removed")
	}
}

func TestIdleExpiryIgnoresStartedRooms(t *testing.T) {
	g, _ := newTestRegistry(DefaultConfig())
	rm := seatPlayers(t, g, "Alice", "Bob")
	if err := rm.Start(connID(0)); err != nil {
		t.Fatalf("start: %v", err)
	}
	rm.expireIdle()
	if g.Len() != 1 {
		t.Fatalf("started room removed by idle cleanup")
	}
}

func TestTileOwnedByAtMostOnePlayer(t *testing.T) {
	rm, _ := startedRoom(t, "Alice", "Bob")
	rm.Players[0].Position = 1
	rm.Players[1].Position = 1
	if err := rm.BuyProperty(connID(0), 1); err != nil {
		t.Fatalf("buy: %v", err)
	}
	if err := rm.BuyProperty(connID(1), 1); err == nil {
		t.Fatalf("second buyer accepted for an owned tile")
	}
	owners := 0
	for _, p := range rm.Players {
		for _, idx := range p.Properties {
			if idx == 1 {
				owners++
			}
		}
	}
	if owners != 1 {
		t.Fatalf("tile claimed by %d players", owners)
	}
}
