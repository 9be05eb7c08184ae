package board

import "testing"

func TestBoardLayout(t *testing.T) {
	b := New()
	if len(b) != Size {
		t.Fatalf("board has %d tiles, want %d", len(b), Size)
	}
	for i, tile := range b {
		if tile.Idx != i {
			t.Fatalf("tile at slice index %d has Idx %d", i, tile.Idx)
		}
	}
	kinds := map[int]TileKind{0: KindGo, 10: KindJail, 20: KindFree, 30: KindGoToJail}
	for idx, want := range kinds {
		if b[idx].Kind != want {
			t.Fatalf("tile %d kind = %s, want %s", idx, b[idx].Kind, want)
		}
	}
}

func TestBoardGroups(t *testing.T) {
	b := New()
	rails, utilities := 0, 0
	for _, tile := range b {
		if tile.IsRail() {
			rails++
		}
		if tile.Kind == KindUtility {
			utilities++
		}
	}
	if rails != 4 {
		t.Fatalf("board has %d rails, want 4", rails)
	}
	if utilities != 2 {
		t.Fatalf("board has %d utilities, want 2", utilities)
	}
}

func TestRentTableShapes(t *testing.T) {
	for _, tile := range New() {
		switch {
		case tile.IsRail():
			if len(tile.Rent) != 4 {
				t.Fatalf("rail %q has %d rent entries, want 4", tile.Name, len(tile.Rent))
			}
		case tile.Kind == KindProperty:
			if len(tile.Rent) != 6 {
				t.Fatalf("property %q has %d rent entries, want 6", tile.Name, len(tile.Rent))
			}
			if tile.HouseCost == 0 {
				t.Fatalf("property %q has no house cost", tile.Name)
			}
		}
		if tile.Ownable() && tile.Price <= 0 {
			t.Fatalf("ownable tile %q has no price", tile.Name)
		}
	}
}

func TestBoardCopiesAreIndependent(t *testing.T) {
	a, b := New(), New()
	a[1].Owner = "someone"
	a[1].Mortgaged = true
	a[5].Rent[0] = 999
	if b[1].Owner != "" || b[1].Mortgaged {
		t.Fatalf("ownership leaked between board copies")
	}
	if b[5].Rent[0] != 25 {
		t.Fatalf("rent table shared between board copies")
	}
}
