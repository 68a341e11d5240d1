package board

import "errors"

type SpaceKind string

const (
	KindSpecial  SpaceKind = "special"
	KindProperty SpaceKind = "property"
	KindRailroad SpaceKind = "railroad"
	KindUtility  SpaceKind = "utility"
)

// Well-known positions.
const (
	GoPosition       = 0
	IncomeTaxPos     = 4
	JailPosition     = 10
	FreeParkingPos   = 20
	GoToJailPosition = 30
	LuxuryTaxPos     = 38

	GoSalary      = 200
	IncomeTaxCost = 200
	LuxuryTaxCost = 75
)

var (
	RailroadPositions = []int{5, 15, 25, 35}
	UtilityPositions  = []int{12, 28}
	ChancePositions   = []int{7, 22, 36}
	ChestPositions    = []int{2, 17, 33}
)

// Space is one static board position. Rent semantics differ by kind:
// property rents index by house count (0..4 houses, 5 = hotel, with
// index 1 being the full-set rent), railroad rents index by railroads
// owned minus one, utility rents are the one/both dice multipliers.
type Space struct {
	Position      int
	Name          string
	Kind          SpaceKind
	ColorGroup    string
	Price         int
	Rent          []int
	HouseCost     int
	MortgageValue int
}

// Purchasable reports whether the space can be bought at all.
func (s Space) Purchasable() bool {
	return s.Kind == KindProperty || s.Kind == KindRailroad || s.Kind == KindUtility
}

// Spaces is the full board, indexed by position. Values follow the
// official US edition.
var Spaces = [40]Space{
	{Position: 0, Name: "GO", Kind: KindSpecial},
	{Position: 1, Name: "Mediterranean Avenue", Kind: KindProperty, ColorGroup: "brown", Price: 60, Rent: []int{2, 4, 10, 30, 90, 160, 250}, HouseCost: 50, MortgageValue: 30},
	{Position: 2, Name: "Community Chest", Kind: KindSpecial},
	{Position: 3, Name: "Baltic Avenue", Kind: KindProperty, ColorGroup: "brown", Price: 60, Rent: []int{4, 8, 20, 60, 180, 320, 450}, HouseCost: 50, MortgageValue: 30},
	{Position: 4, Name: "Income Tax", Kind: KindSpecial},
	{Position: 5, Name: "Reading Railroad", Kind: KindRailroad, ColorGroup: "railroad", Price: 200, Rent: []int{25, 50, 100, 200}, MortgageValue: 100},
	{Position: 6, Name: "Oriental Avenue", Kind: KindProperty, ColorGroup: "lightblue", Price: 100, Rent: []int{6, 12, 30, 90, 270, 400, 550}, HouseCost: 50, MortgageValue: 50},
	{Position: 7, Name: "Chance", Kind: KindSpecial},
	{Position: 8, Name: "Vermont Avenue", Kind: KindProperty, ColorGroup: "lightblue", Price: 100, Rent: []int{6, 12, 30, 90, 270, 400, 550}, HouseCost: 50, MortgageValue: 50},
	{Position: 9, Name: "Connecticut Avenue", Kind: KindProperty, ColorGroup: "lightblue", Price: 120, Rent: []int{8, 16, 40, 100, 300, 450, 600}, HouseCost: 50, MortgageValue: 60},
	{Position: 10, Name: "Jail / Just Visiting", Kind: KindSpecial},
	{Position: 11, Name: "St. Charles Place", Kind: KindProperty, ColorGroup: "pink", Price: 140, Rent: []int{10, 20, 50, 150, 450, 625, 750}, HouseCost: 100, MortgageValue: 70},
	{Position: 12, Name: "Electric Company", Kind: KindUtility, ColorGroup: "utility", Price: 150, Rent: []int{4, 10}, MortgageValue: 75},
	{Position: 13, Name: "States Avenue", Kind: KindProperty, ColorGroup: "pink", Price: 140, Rent: []int{10, 20, 50, 150, 450, 625, 750}, HouseCost: 100, MortgageValue: 70},
	{Position: 14, Name: "Virginia Avenue", Kind: KindProperty, ColorGroup: "pink", Price: 160, Rent: []int{12, 24, 60, 180, 500, 700, 900}, HouseCost: 100, MortgageValue: 80},
	{Position: 15, Name: "Pennsylvania Railroad", Kind: KindRailroad, ColorGroup: "railroad", Price: 200, Rent: []int{25, 50, 100, 200}, MortgageValue: 100},
	{Position: 16, Name: "St. James Place", Kind: KindProperty, ColorGroup: "orange", Price: 180, Rent: []int{14, 28, 70, 200, 550, 750, 950}, HouseCost: 100, MortgageValue: 90},
	{Position: 17, Name: "Community Chest", Kind: KindSpecial},
	{Position: 18, Name: "Tennessee Avenue", Kind: KindProperty, ColorGroup: "orange", Price: 180, Rent: []int{14, 28, 70, 200, 550, 750, 950}, HouseCost: 100, MortgageValue: 90},
	{Position: 19, Name: "New York Avenue", Kind: KindProperty, ColorGroup: "orange", Price: 200, Rent: []int{16, 32, 80, 220, 600, 800, 1000}, HouseCost: 100, MortgageValue: 100},
	{Position: 20, Name: "Free Parking", Kind: KindSpecial},
	{Position: 21, Name: "Kentucky Avenue", Kind: KindProperty, ColorGroup: "red", Price: 220, Rent: []int{18, 36, 90, 250, 700, 875, 1050}, HouseCost: 150, MortgageValue: 110},
	{Position: 22, Name: "Chance", Kind: KindSpecial},
	{Position: 23, Name: "Indiana Avenue", Kind: KindProperty, ColorGroup: "red", Price: 220, Rent: []int{18, 36, 90, 250, 700, 875, 1050}, HouseCost: 150, MortgageValue: 110},
	{Position: 24, Name: "Illinois Avenue", Kind: KindProperty, ColorGroup: "red", Price: 240, Rent: []int{20, 40, 100, 300, 750, 925, 1100}, HouseCost: 150, MortgageValue: 120},
	{Position: 25, Name: "B. & O. Railroad", Kind: KindRailroad, ColorGroup: "railroad", Price: 200, Rent: []int{25, 50, 100, 200}, MortgageValue: 100},
	{Position: 26, Name: "Atlantic Avenue", Kind: KindProperty, ColorGroup: "yellow", Price: 260, Rent: []int{22, 44, 110, 330, 800, 975, 1150}, HouseCost: 150, MortgageValue: 130},
	{Position: 27, Name: "Ventnor Avenue", Kind: KindProperty, ColorGroup: "yellow", Price: 260, Rent: []int{22, 44, 110, 330, 800, 975, 1150}, HouseCost: 150, MortgageValue: 130},
	{Position: 28, Name: "Water Works", Kind: KindUtility, ColorGroup: "utility", Price: 150, Rent: []int{4, 10}, MortgageValue: 75},
	{Position: 29, Name: "Marvin Gardens", Kind: KindProperty, ColorGroup: "yellow", Price: 280, Rent: []int{24, 48, 120, 360, 850, 1025, 1200}, HouseCost: 150, MortgageValue: 140},
	{Position: 30, Name: "Go to Jail", Kind: KindSpecial},
	{Position: 31, Name: "Pacific Avenue", Kind: KindProperty, ColorGroup: "green", Price: 300, Rent: []int{26, 52, 130, 390, 900, 1100, 1275}, HouseCost: 200, MortgageValue: 150},
	{Position: 32, Name: "North Carolina Avenue", Kind: KindProperty, ColorGroup: "green", Price: 300, Rent: []int{26, 52, 130, 390, 900, 1100, 1275}, HouseCost: 200, MortgageValue: 150},
	{Position: 33, Name: "Community Chest", Kind: KindSpecial},
	{Position: 34, Name: "Pennsylvania Avenue", Kind: KindProperty, ColorGroup: "green", Price: 320, Rent: []int{28, 56, 150, 450, 1000, 1200, 1400}, HouseCost: 200, MortgageValue: 160},
	{Position: 35, Name: "Short Line", Kind: KindRailroad, ColorGroup: "railroad", Price: 200, Rent: []int{25, 50, 100, 200}, MortgageValue: 100},
	{Position: 36, Name: "Chance", Kind: KindSpecial},
	{Position: 37, Name: "Park Place", Kind: KindProperty, ColorGroup: "darkblue", Price: 350, Rent: []int{35, 70, 175, 500, 1100, 1300, 1500}, HouseCost: 200, MortgageValue: 175},
	{Position: 38, Name: "Luxury Tax", Kind: KindSpecial},
	{Position: 39, Name: "Boardwalk", Kind: KindProperty, ColorGroup: "darkblue", Price: 400, Rent: []int{50, 100, 200, 600, 1400, 1700, 2000}, HouseCost: 200, MortgageValue: 200},
}

func GetByPos(pos int) (Space, error) {
	if pos < 0 || pos >= len(Spaces) {
		return Space{}, errors.New("position off the board")
	}
	return Spaces[pos], nil
}

// Purchasables returns the 28 spaces that can be owned, in board order.
func Purchasables() []Space {
	out := make([]Space, 0, 28)
	for _, s := range Spaces {
		if s.Purchasable() {
			out = append(out, s)
		}
	}
	return out
}

// IsChance and IsChest classify the card-draw spaces.
func IsChance(pos int) bool { return contains(ChancePositions, pos) }
func IsChest(pos int) bool  { return contains(ChestPositions, pos) }

func contains(xs []int, x int) bool {
	for _, v := range xs {
		if v == x {
			return true
		}
	}
	return false
}
