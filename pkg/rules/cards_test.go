package rules

import (
	"math/rand"
	"testing"

	"github.com/maxwharris/monop/app/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecksAreSixteenCards(t *testing.T) {
	assert.Len(t, ChanceCards, 16)
	assert.Len(t, CommunityChestCards, 16)
}

func TestDrawCardIsDeterministicWithSeed(t *testing.T) {
	a := DrawCard(DeckChance, rand.New(rand.NewSource(42)))
	b := DrawCard(DeckChance, rand.New(rand.NewSource(42)))
	assert.Equal(t, a, b)
}

func TestApplyMoneyCard(t *testing.T) {
	p := &models.Player{Id: "p1", Money: 100}
	res := ApplyCard(Card{Kind: CardMoney, Amount: -50}, p, []*models.Player{p}, nil)
	assert.Equal(t, 50, p.Money)
	assert.Equal(t, -50, res.MoneyDelta)
}

func TestApplyPayAllCard(t *testing.T) {
	drawer := &models.Player{Id: "p1", Money: 200}
	alice := &models.Player{Id: "p2", Money: 100}
	bob := &models.Player{Id: "p3", Money: 100}
	broke := &models.Player{Id: "p4", IsBankrupt: true}
	all := []*models.Player{drawer, alice, bob, broke}

	res := ApplyCard(Card{Kind: CardMoneyToAll, Amount: 50}, drawer, all, nil)

	assert.Equal(t, 100, drawer.Money) // paid 2 x 50, bankrupt skipped
	assert.Equal(t, 150, alice.Money)
	assert.Equal(t, 150, bob.Money)
	assert.Equal(t, 0, broke.Money)
	assert.Equal(t, -100, res.MoneyDelta)
	assert.Equal(t, 2, res.OthersPaid)
}

func TestApplyCollectFromAllCapsAtBalance(t *testing.T) {
	drawer := &models.Player{Id: "p1", Money: 0}
	poor := &models.Player{Id: "p2", Money: 30}
	rich := &models.Player{Id: "p3", Money: 500}
	all := []*models.Player{drawer, poor, rich}

	res := ApplyCard(Card{Kind: CardMoneyFromAll, Amount: 50}, drawer, all, nil)

	assert.Equal(t, 0, poor.Money) // pays 30, not 50
	assert.Equal(t, 450, rich.Money)
	assert.Equal(t, 80, drawer.Money)
	assert.Equal(t, 80, res.MoneyDelta)
}

func TestApplyJailCard(t *testing.T) {
	p := &models.Player{Id: "p1", Position: 22}
	res := ApplyCard(Card{Kind: CardJail}, p, []*models.Player{p}, nil)
	assert.True(t, res.SentToJail)
	assert.True(t, p.IsInJail)
	assert.Equal(t, 10, p.Position)
}

func TestApplyJailFreeCard(t *testing.T) {
	p := &models.Player{Id: "p1"}
	res := ApplyCard(Card{Kind: CardJailFree}, p, []*models.Player{p}, nil)
	assert.Equal(t, 1, p.GetOutOfJailCards)
	assert.Equal(t, 1, res.JailCards)
}

func TestApplyAdvanceCardPaysSalaryOnWrap(t *testing.T) {
	// Advance to St. Charles Place (11) from position 36 wraps past GO.
	p := &models.Player{Id: "p1", Position: 36, Money: 0}
	res := ApplyCard(Card{Kind: CardMoveTo, Target: 11}, p, []*models.Player{p}, nil)
	require.NotNil(t, res.Move)
	assert.Equal(t, 11, p.Position)
	assert.True(t, res.Move.PassedGo)
	assert.Equal(t, 200, p.Money)
}

func TestApplyNearestRailroadCard(t *testing.T) {
	p := &models.Player{Id: "p1", Position: 22}
	res := ApplyCard(Card{Kind: CardMoveNearest, Nearest: "railroad"}, p, []*models.Player{p}, nil)
	require.NotNil(t, res.Move)
	assert.Equal(t, 25, p.Position)

	// Past the last railroad it wraps to Reading and pays salary.
	p = &models.Player{Id: "p1", Position: 36, Money: 0}
	res = ApplyCard(Card{Kind: CardMoveNearest, Nearest: "railroad"}, p, []*models.Player{p}, nil)
	assert.Equal(t, 5, p.Position)
	assert.Equal(t, 200, p.Money)
}

func TestApplyNearestUtilityCard(t *testing.T) {
	p := &models.Player{Id: "p1", Position: 7}
	ApplyCard(Card{Kind: CardMoveNearest, Nearest: "utility"}, p, []*models.Player{p}, nil)
	assert.Equal(t, 12, p.Position)
}

func TestApplyGoBackCardNeverPaysSalary(t *testing.T) {
	p := &models.Player{Id: "p1", Position: 1, Money: 0}
	res := ApplyCard(Card{Kind: CardMoveBack, Spaces: 3}, p, []*models.Player{p}, nil)
	require.NotNil(t, res.Move)
	assert.Equal(t, 38, p.Position)
	assert.Equal(t, 0, p.Money)
	assert.False(t, res.Move.PassedGo)
}

func TestApplyRepairsCard(t *testing.T) {
	p := &models.Player{Id: "p1", Money: 100}

	withHouses := prop(1, "p1")
	withHouses.HouseCount = 3
	withHotel := prop(3, "p1")
	withHotel.HouseCount = 5
	someoneElses := prop(6, "p2")
	someoneElses.HouseCount = 4
	props := []*models.Property{withHouses, withHotel, someoneElses}

	res := ApplyCard(Card{Kind: CardRepairs, HouseFee: 25, HotelFee: 100}, p, []*models.Player{p}, props)

	require.NotNil(t, res.Repairs)
	assert.Equal(t, 3, res.Repairs.Houses)
	assert.Equal(t, 1, res.Repairs.Hotels)
	assert.Equal(t, 175, res.Repairs.Cost)
	// Repairs have no floor; the balance can go negative.
	assert.Equal(t, -75, p.Money)
}
