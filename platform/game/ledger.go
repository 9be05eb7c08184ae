package game

import (
	"github.com/sirupsen/logrus"

	"github.com/poblenou/monopoly-backend/platform/board"
)

// transfer debits from and credits to unconditionally; the payer's
// balance may go negative, which the bankruptcy check then resolves.
// Non-positive amounts are a no-op.
func (rm *Room) transfer(from, to *Player, amount int) {
	if amount <= 0 {
		return
	}
	from.Money -= amount
	to.Money += amount
	rm.checkBankruptcy(from)
}

// checkBankruptcy marks a player with negative money bankrupt, releases
// every tile they own back to the bank and re-evaluates game end.
// Bankruptcy is terminal, so a second check on the same player is a
// no-op.
func (rm *Room) checkBankruptcy(p *Player) {
	if p.Money >= 0 || p.Bankrupt {
		return
	}
	p.Bankrupt = true
	rm.releaseTiles(p)
	rm.logf("%s is bankrupt", p.Name)
	logrus.WithFields(logrus.Fields{"room": rm.ID, "player": p.Name}).Info("player bankrupt")
	if len(rm.alive()) <= 1 {
		rm.endGame()
	}
}

// releaseTiles returns all of a player's tiles to the bank and clears
// their holdings, houses and mortgage list.
func (rm *Room) releaseTiles(p *Player) {
	for _, pi := range p.Properties {
		if pi >= 0 && pi < len(rm.Board) {
			rm.Board[pi].Owner = ""
			rm.Board[pi].Mortgaged = false
		}
	}
	p.Properties = nil
	p.Houses = make(map[int]int)
	p.Mortgaged = nil
}

// endGame stops the game once at most one non-bankrupt player remains,
// logging the winner when there is one. Caller holds mu.
func (rm *Room) endGame() {
	rm.Started = false
	if alive := rm.alive(); len(alive) == 1 {
		rm.logf("%s wins the game!", alive[0].Name)
		logrus.WithFields(logrus.Fields{"room": rm.ID, "player": alive[0].Name}).Info("game over")
	}
}

// calculateRent computes rent for a property or utility tile owned by
// owner. lastRoll is the dice total that caused the landing, used only
// for utilities.
func (rm *Room) calculateRent(tile *board.Tile, owner *Player, lastRoll int) int {
	if tile.Kind == board.KindUtility {
		if rm.countOwned(owner.ID, func(t *board.Tile) bool { return t.Kind == board.KindUtility }) == 2 {
			return lastRoll * 10
		}
		return lastRoll * 4
	}
	if tile.IsRail() {
		rails := rm.countOwned(owner.ID, func(t *board.Tile) bool { return t.IsRail() })
		return 25 << uint(rails-1)
	}
	if houses := owner.Houses[tile.Idx]; houses > 0 {
		return tile.Rent[houses]
	}
	if tile.Color == "" {
		return tile.Rent[0]
	}
	if rm.ownsColorGroup(owner.ID, tile.Color) {
		return tile.Rent[0] * 2
	}
	return tile.Rent[0]
}

func (rm *Room) countOwned(ownerID string, match func(*board.Tile) bool) int {
	n := 0
	for _, t := range rm.Board {
		if t.Owner == ownerID && match(t) {
			n++
		}
	}
	return n
}

func (rm *Room) ownsColorGroup(ownerID, color string) bool {
	for _, t := range rm.Board {
		if t.Kind == board.KindProperty && t.Color == color && t.Owner != ownerID {
			return false
		}
	}
	return true
}
