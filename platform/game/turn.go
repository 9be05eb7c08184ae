package game

import (
	"errors"

	"github.com/poblenou/monopoly-backend/app/models"
	"github.com/poblenou/monopoly-backend/platform/board"
)

const maxConsecutiveDoubles = 3

// RollDice validates and performs the turn-holder's roll. Movement,
// landing effects, bankruptcy checks and turn advancement all happen
// under the room lock, so the whole resolution is one atomic step.
func (rm *Room) RollDice(connID string) error {
	rm.mu.Lock()
	defer rm.mu.Unlock()
	if !rm.Started {
		return nil
	}
	idx := rm.playerIndex(connID)
	if idx == -1 {
		return nil
	}
	if idx != rm.TurnIndex {
		return errors.New("Not your turn")
	}
	p := rm.Players[idx]
	if p.Bankrupt || p.Disconnected {
		return nil
	}
	if p.RolledThisTurn {
		return errors.New("You already rolled the dice this turn")
	}

	die1, die2 := rm.roll(), rm.roll()
	steps := die1 + die2
	p.RolledThisTurn = true

	rm.pub.ToRoom(rm.ID, EventDiceRolled, models.DiceRoll{
		Die1:       die1,
		Die2:       die2,
		PlayerID:   p.ID,
		PlayerName: p.Name,
	})
	rm.logf("%s rolled %d + %d = %d", p.Name, die1, die2, steps)

	if p.InJail {
		rm.resolveJailRoll(idx, die1, die2)
		rm.publishState()
		return nil
	}

	rm.movePlayer(idx, steps)
	rm.resolveLanding(idx, steps)

	if die1 == die2 {
		p.Doubles++
		if p.Doubles >= maxConsecutiveDoubles {
			rm.sendToJail(idx)
			p.Doubles = 0
			rm.advanceTurn()
		} else {
			rm.logf("%s rolled doubles and rolls again", p.Name)
			p.RolledThisTurn = false
		}
	} else {
		p.Doubles = 0
		rm.advanceTurn()
	}
	rm.publishState()
	return nil
}

// resolveJailRoll runs the in-jail state machine: a double exits free, a
// third failed roll pays the fine and moves, anything else stays jailed
// and passes the turn.
func (rm *Room) resolveJailRoll(idx, die1, die2 int) {
	p := rm.Players[idx]
	steps := die1 + die2
	if die1 == die2 {
		p.InJail = false
		p.JailTurns = 0
		rm.logf("%s rolls doubles and leaves jail!", p.Name)
		rm.movePlayer(idx, steps)
		rm.resolveLanding(idx, steps)
		return
	}
	p.JailTurns++
	if p.JailTurns >= 3 {
		p.Money -= rm.cfg.JailFine
		p.InJail = false
		p.JailTurns = 0
		rm.logf("%s pays the $%d fine and leaves jail", p.Name, rm.cfg.JailFine)
		rm.movePlayer(idx, steps)
		rm.resolveLanding(idx, steps)
		return
	}
	rm.logf("%s stays in jail", p.Name)
	rm.advanceTurn()
}

// movePlayer advances the player by steps around the ring, paying the
// pass-start bonus on wrap.
func (rm *Room) movePlayer(idx, steps int) {
	p := rm.Players[idx]
	prev := p.Position
	p.Position = (p.Position + steps) % len(rm.Board)
	if p.Position < prev {
		p.Money += rm.cfg.PassGoBonus
		rm.logf("%s passes Go and collects $%d", p.Name, rm.cfg.PassGoBonus)
	}
}

// sendToJail forces the player onto the jail tile. The jail tile itself
// is never resolved.
func (rm *Room) sendToJail(idx int) {
	p := rm.Players[idx]
	p.Position = board.JailPos
	p.InJail = true
	p.JailTurns = 0
	rm.logf("%s goes to jail", p.Name)
}

// advanceTurn moves the pointer to the next player who is neither
// bankrupt nor disconnected, wrapping, and resets every rolledThisTurn
// flag. With no eligible player the pointer is retained and the room
// waits; rolls revalidate eligibility so nothing can act meanwhile.
func (rm *Room) advanceTurn() {
	n := len(rm.Players)
	if n == 0 {
		return
	}
	for _, p := range rm.Players {
		p.RolledThisTurn = false
	}
	for i := 1; i <= n; i++ {
		idx := (rm.TurnIndex + i) % n
		if rm.Players[idx].eligible() {
			rm.TurnIndex = idx
			rm.logf("It is %s's turn", rm.Players[idx].Name)
			return
		}
	}
}

// resolveLanding dispatches on the tile the player now occupies. Steps
// is the total just rolled, used only for utility rent. Every path ends
// in a bankruptcy check on the occupant.
func (rm *Room) resolveLanding(idx, steps int) {
	p := rm.Players[idx]
	tile := rm.Board[p.Position]

	switch tile.Kind {
	case board.KindChance:
		card := rm.Chance.Draw()
		rm.logf("%s draws Chance: %q", p.Name, card.Text)
		rm.applyCard(idx, card)
		return
	case board.KindCommunity:
		card := rm.Community.Draw()
		rm.logf("%s draws Community: %q", p.Name, card.Text)
		rm.applyCard(idx, card)
		return
	case board.KindProperty:
		if tile.Owner == "" {
			rm.logf("%s can buy %s for $%d", p.Name, tile.Name, tile.Price)
		} else if tile.Owner != p.ID && !tile.Mortgaged {
			owner := rm.playerByID(tile.Owner)
			if owner != nil && !owner.Bankrupt {
				rent := rm.calculateRent(tile, owner, steps)
				rm.transfer(p, owner, rent)
				rm.logf("%s pays $%d rent to %s", p.Name, rent, owner.Name)
			}
		}
	case board.KindTax:
		p.Money -= tile.Amount
		rm.logf("%s pays $%d in tax", p.Name, tile.Amount)
	case board.KindGoToJail:
		rm.sendToJail(idx)
	case board.KindUtility:
		if tile.Owner == "" {
			rm.logf("%s can buy %s for $%d", p.Name, tile.Name, tile.Price)
		} else if tile.Owner != p.ID && !tile.Mortgaged {
			owner := rm.playerByID(tile.Owner)
			if owner != nil && !owner.Bankrupt {
				rent := rm.calculateRent(tile, owner, steps)
				rm.transfer(p, owner, rent)
				rm.logf("%s pays $%d to %s", p.Name, rent, owner.Name)
			}
		}
	case board.KindGo, board.KindJail, board.KindFree:
		// nothing to resolve
	}
	rm.checkBankruptcy(p)
}

// applyCard applies a drawn card's effect. An absolute move feeds back
// into landing resolution at the new tile.
func (rm *Room) applyCard(idx int, card board.Card) {
	p := rm.Players[idx]
	switch card.Effect {
	case board.EffectMove:
		prev := p.Position
		p.Position = card.To
		if p.Position < prev {
			p.Money += rm.cfg.PassGoBonus
			rm.logf("%s collects $%d for passing Go", p.Name, rm.cfg.PassGoBonus)
		}
		rm.resolveLanding(idx, 0)
	case board.EffectMoney:
		p.Money += card.Amount
		if card.Amount < 0 {
			rm.checkBankruptcy(p)
		}
	case board.EffectJail:
		rm.sendToJail(idx)
	}
}
