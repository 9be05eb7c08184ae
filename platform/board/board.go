package board

// TileKind is the closed set of tile types on the board. Landing
// resolution switches exhaustively on it.
type TileKind int

const (
	KindGo TileKind = iota
	KindProperty
	KindTax
	KindChance
	KindCommunity
	KindJail
	KindFree
	KindGoToJail
	KindUtility
)

func (k TileKind) String() string {
	switch k {
	case KindGo:
		return "go"
	case KindProperty:
		return "property"
	case KindTax:
		return "tax"
	case KindChance:
		return "chance"
	case KindCommunity:
		return "community"
	case KindJail:
		return "jail"
	case KindFree:
		return "free"
	case KindGoToJail:
		return "gotojail"
	case KindUtility:
		return "utility"
	}
	return "unknown"
}

const (
	// Size is the number of tiles on the ring.
	Size = 40
	// JailPos is the index of the jail tile.
	JailPos = 10
)

// Tile is one board position. Idx, Name, Kind, Color, Price, Rent, Amount
// and HouseCost are fixed at construction; Owner and Mortgaged are the
// per-room mutable ownership fields.
type Tile struct {
	Idx       int
	Name      string
	Kind      TileKind
	Color     string
	Price     int
	Rent      []int
	HouseCost int
	Amount    int // tax tiles only

	Owner     string // player id, empty when unowned
	Mortgaged bool
}

// Ownable reports whether the tile can be bought.
func (t *Tile) Ownable() bool {
	return (t.Kind == KindProperty || t.Kind == KindUtility) && t.Price > 0
}

// IsRail reports whether the tile is a transport property, which rents by
// count owned instead of by houses.
func (t *Tile) IsRail() bool {
	return t.Kind == KindProperty && t.Color == "rail"
}

// New returns a fresh copy of the board. Every room gets its own copy so
// ownership, houses and mortgages never leak between rooms.
func New() []*Tile {
	rail := []int{25, 50, 100, 200}
	tiles := []*Tile{
		{Name: "Rambla Poblenou", Kind: KindGo},
		{Name: "C/ Pallars", Kind: KindProperty, Color: "brown", Price: 60, Rent: []int{2, 10, 30, 90, 160, 250}, HouseCost: 50},
		{Name: "Caja Comun", Kind: KindCommunity},
		{Name: "C/ Tanger", Kind: KindProperty, Color: "brown", Price: 60, Rent: []int{4, 20, 60, 180, 320, 450}, HouseCost: 50},
		{Name: "Impuesto", Kind: KindTax, Amount: 200},
		{Name: "Metro Poblenou", Kind: KindProperty, Color: "rail", Price: 200, Rent: rail},
		{Name: "C/ Pujades", Kind: KindProperty, Color: "lightblue", Price: 100, Rent: []int{6, 30, 90, 270, 400, 550}, HouseCost: 50},
		{Name: "Suerte", Kind: KindChance},
		{Name: "C/ Llull", Kind: KindProperty, Color: "lightblue", Price: 100, Rent: []int{6, 30, 90, 270, 400, 550}, HouseCost: 50},
		{Name: "Av. Diagonal", Kind: KindProperty, Color: "lightblue", Price: 120, Rent: []int{8, 40, 100, 300, 450, 600}, HouseCost: 50},
		{Name: "4 Cantons", Kind: KindJail},
		{Name: "Parc del Centre", Kind: KindProperty, Color: "pink", Price: 140, Rent: []int{10, 50, 150, 450, 625, 750}, HouseCost: 100},
		{Name: "Can Framis", Kind: KindUtility, Price: 150},
		{Name: "C/ Zamora", Kind: KindProperty, Color: "pink", Price: 140, Rent: []int{10, 50, 150, 450, 625, 750}, HouseCost: 100},
		{Name: "C/ Pere IV", Kind: KindProperty, Color: "pink", Price: 160, Rent: []int{12, 60, 180, 500, 700, 900}, HouseCost: 100},
		{Name: "Tram Glories", Kind: KindProperty, Color: "rail", Price: 200, Rent: rail},
		{Name: "Rambla Prim", Kind: KindProperty, Color: "orange", Price: 180, Rent: []int{14, 70, 200, 550, 750, 950}, HouseCost: 100},
		{Name: "Caja Comun", Kind: KindCommunity},
		{Name: "Palo Alto", Kind: KindProperty, Color: "orange", Price: 180, Rent: []int{14, 70, 200, 550, 750, 950}, HouseCost: 100},
		{Name: "C/ Bilbao", Kind: KindProperty, Color: "orange", Price: 200, Rent: []int{16, 80, 220, 600, 800, 1000}, HouseCost: 100},
		{Name: "Parking Gratis", Kind: KindFree},
		{Name: "Parc Central", Kind: KindProperty, Color: "red", Price: 220, Rent: []int{18, 90, 250, 700, 875, 1050}, HouseCost: 150},
		{Name: "Suerte", Kind: KindChance},
		{Name: "Ca l'Alier", Kind: KindProperty, Color: "red", Price: 220, Rent: []int{18, 90, 250, 700, 875, 1050}, HouseCost: 150},
		{Name: "Teatre Nacional", Kind: KindProperty, Color: "red", Price: 240, Rent: []int{20, 100, 300, 750, 925, 1100}, HouseCost: 150},
		{Name: "Bicing Llacuna", Kind: KindProperty, Color: "rail", Price: 200, Rent: rail},
		{Name: "Av. Icaria", Kind: KindProperty, Color: "yellow", Price: 260, Rent: []int{22, 110, 330, 800, 975, 1150}, HouseCost: 150},
		{Name: "Zoo Barcelona", Kind: KindProperty, Color: "yellow", Price: 260, Rent: []int{22, 110, 330, 800, 975, 1150}, HouseCost: 150},
		{Name: "Disseny Hub", Kind: KindUtility, Price: 150},
		{Name: "Placa Glories", Kind: KindProperty, Color: "yellow", Price: 280, Rent: []int{24, 120, 360, 850, 1025, 1200}, HouseCost: 150},
		{Name: "Ve a Carcel", Kind: KindGoToJail},
		{Name: "Torre Agbar", Kind: KindProperty, Color: "green", Price: 300, Rent: []int{26, 130, 390, 900, 1100, 1275}, HouseCost: 200},
		{Name: "22@ District", Kind: KindProperty, Color: "green", Price: 300, Rent: []int{26, 130, 390, 900, 1100, 1275}, HouseCost: 200},
		{Name: "Caja Comun", Kind: KindCommunity},
		{Name: "Centre Cult. Poblenou", Kind: KindProperty, Color: "green", Price: 320, Rent: []int{28, 150, 450, 1000, 1200, 1400}, HouseCost: 200},
		{Name: "Metro Llacuna", Kind: KindProperty, Color: "rail", Price: 200, Rent: rail},
		{Name: "Suerte", Kind: KindChance},
		{Name: "Platja Bogatell", Kind: KindProperty, Color: "darkblue", Price: 350, Rent: []int{35, 175, 500, 1100, 1300, 1500}, HouseCost: 200},
		{Name: "Impuesto Lujo", Kind: KindTax, Amount: 100},
		{Name: "Port Olimpic", Kind: KindProperty, Color: "darkblue", Price: 400, Rent: []int{50, 200, 600, 1400, 1700, 2000}, HouseCost: 200},
	}
	for i, t := range tiles {
		t.Idx = i
		if t.IsRail() {
			// rail tiles share a rent table; give each its own copy
			t.Rent = append([]int(nil), rail...)
		}
	}
	return tiles
}
