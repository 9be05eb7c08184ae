package game

import "errors"

const maxHouses = 5

// BuyProperty buys the tile the player currently occupies.
func (rm *Room) BuyProperty(connID string, idx int) error {
	rm.mu.Lock()
	defer rm.mu.Unlock()
	p := rm.playerByID(connID)
	if p == nil || p.Bankrupt || idx < 0 || idx >= len(rm.Board) {
		return nil
	}
	tile := rm.Board[idx]
	if !tile.Ownable() || tile.Owner != "" {
		return errors.New("This property cannot be bought")
	}
	if p.Position != idx {
		return errors.New("You are not on that tile")
	}
	if p.Money < tile.Price {
		return errors.New("You do not have enough money")
	}
	p.Money -= tile.Price
	tile.Owner = p.ID
	p.Properties = append(p.Properties, idx)
	rm.logf("%s buys %s for $%d", p.Name, tile.Name, tile.Price)
	rm.publishState()
	return nil
}

// BuildHouse adds one house to an owned tile, up to the hotel at 5. The
// cost is the tile's house cost, or half the price when it has none.
func (rm *Room) BuildHouse(connID string, idx int) error {
	rm.mu.Lock()
	defer rm.mu.Unlock()
	p := rm.playerByID(connID)
	if p == nil || idx < 0 || idx >= len(rm.Board) {
		return nil
	}
	tile := rm.Board[idx]
	if tile.Owner != p.ID {
		return errors.New("It must be your property to build on it")
	}
	houses := p.Houses[idx]
	if houses >= maxHouses {
		return errors.New("Maximum houses reached")
	}
	cost := tile.HouseCost
	if cost == 0 {
		cost = tile.Price / 2
	}
	if p.Money < cost {
		return errors.New("You do not have enough money")
	}
	p.Money -= cost
	p.Houses[idx] = houses + 1
	rm.logf("%s builds on %s (%d houses)", p.Name, tile.Name, houses+1)
	rm.publishState()
	return nil
}

// MortgageProperty mortgages an owned, house-free tile for half its
// price. There is no unmortgage path; the flag only comes off when the
// tile returns to the bank.
func (rm *Room) MortgageProperty(connID string, idx int) error {
	rm.mu.Lock()
	defer rm.mu.Unlock()
	p := rm.playerByID(connID)
	if p == nil || idx < 0 || idx >= len(rm.Board) {
		return nil
	}
	tile := rm.Board[idx]
	if tile.Owner != p.ID {
		return errors.New("It must be your property to mortgage it")
	}
	if p.Houses[idx] > 0 {
		return errors.New("Cannot mortgage a tile with houses")
	}
	if tile.Mortgaged {
		return errors.New("Already mortgaged")
	}
	tile.Mortgaged = true
	p.Mortgaged = append(p.Mortgaged, idx)
	p.Money += tile.Price / 2
	rm.logf("%s mortgages %s", p.Name, tile.Name)
	rm.publishState()
	return nil
}
