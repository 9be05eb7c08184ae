package board

import (
	"math/rand"
	"testing"
)

func TestDrawCycles(t *testing.T) {
	d := NewChanceDeck()
	n := d.Len()
	first := d.Draw()
	if d.Len() != n {
		t.Fatalf("deck length changed on draw: %d -> %d", n, d.Len())
	}
	for i := 0; i < n-1; i++ {
		d.Draw()
	}
	if again := d.Draw(); again.Text != first.Text {
		t.Fatalf("after a full cycle the front card is %q, want %q", again.Text, first.Text)
	}
}

func TestDrawFairness(t *testing.T) {
	d := NewCommunityDeck()
	n := d.Len()
	draws := 3*n + 2
	seen := make(map[string]int)
	for i := 0; i < draws; i++ {
		seen[d.Draw().Text]++
	}
	lo, hi := draws/n, (draws+n-1)/n
	for text, count := range seen {
		if count != lo && count != hi {
			t.Fatalf("card %q drawn %d times, want %d or %d", text, count, lo, hi)
		}
	}
	if len(seen) != n {
		t.Fatalf("saw %d distinct cards, want %d", len(seen), n)
	}
}

func TestShufflePreservesCards(t *testing.T) {
	d := NewChanceDeck()
	before := make(map[string]int)
	for i := 0; i < d.Len(); i++ {
		before[d.Draw().Text]++
	}
	d.Shuffle(rand.New(rand.NewSource(7)))
	after := make(map[string]int)
	for i := 0; i < d.Len(); i++ {
		after[d.Draw().Text]++
	}
	for text, count := range before {
		if after[text] != count {
			t.Fatalf("card %q count changed after shuffle: %d -> %d", text, count, after[text])
		}
	}
}
