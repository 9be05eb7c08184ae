package board

import "math/rand"

// EffectKind is the closed set of card effects.
type EffectKind int

const (
	// EffectMove moves the player to an absolute tile index, paying the
	// pass-start bonus when the move wraps past it.
	EffectMove EffectKind = iota
	// EffectJail sends the player to jail.
	EffectJail
	// EffectMoney credits or debits the player.
	EffectMoney
)

// Card is one chance or community card.
type Card struct {
	Text   string
	Effect EffectKind
	To     int // EffectMove target index
	Amount int // EffectMoney delta, may be negative
}

// Deck is a cyclic card deck: drawing pops the front card and pushes it to
// the back, so the deck never depletes and cards recur in fixed relative
// order after the initial shuffle.
type Deck struct {
	cards []Card
}

func (d *Deck) Len() int { return len(d.cards) }

// Draw returns the front card and rotates it to the back.
func (d *Deck) Draw() Card {
	c := d.cards[0]
	d.cards = append(d.cards[1:], c)
	return c
}

// Shuffle randomizes card order in place.
func (d *Deck) Shuffle(rng *rand.Rand) {
	rng.Shuffle(len(d.cards), func(i, j int) {
		d.cards[i], d.cards[j] = d.cards[j], d.cards[i]
	})
}

// NewChanceDeck returns the chance deck in its canonical order.
func NewChanceDeck() *Deck {
	return &Deck{cards: []Card{
		{Text: "Advance to Go (collect $200)", Effect: EffectMove, To: 0},
		{Text: "Go to jail", Effect: EffectJail},
		{Text: "The bank pays you $50", Effect: EffectMoney, Amount: 50},
		{Text: "Advance to Port Olimpic", Effect: EffectMove, To: 39},
		{Text: "Pay $50 for repairs", Effect: EffectMoney, Amount: -50},
	}}
}

// NewCommunityDeck returns the community deck in its canonical order.
func NewCommunityDeck() *Deck {
	return &Deck{cards: []Card{
		{Text: "You receive $200", Effect: EffectMoney, Amount: 200},
		{Text: "Pay $100 in medical expenses", Effect: EffectMoney, Amount: -100},
		{Text: "Go to jail", Effect: EffectJail},
		{Text: "Collect $50 from a stock sale", Effect: EffectMoney, Amount: 50},
	}}
}
