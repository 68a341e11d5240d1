package rules

import (
	"testing"

	"github.com/maxwharris/monop/app/models"
	"github.com/maxwharris/monop/platform/board"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func prop(pos int, ownerId string) *models.Property {
	sp := board.Spaces[pos]
	p := &models.Property{
		Id:         sp.Name,
		Name:       sp.Name,
		Type:       string(sp.Kind),
		ColorGroup: sp.ColorGroup,
		Position:   pos,
		Price:      sp.Price,
	}
	if ownerId != "" {
		p.OwnerId = &ownerId
	}
	return p
}

func TestRentUnownedOrMortgagedIsZero(t *testing.T) {
	sp := board.Spaces[1]
	unowned := prop(1, "")
	assert.Equal(t, 0, Rent(unowned, sp, []*models.Property{unowned}, 0))

	mortgaged := prop(1, "alice")
	mortgaged.IsMortgaged = true
	assert.Equal(t, 0, Rent(mortgaged, sp, []*models.Property{mortgaged}, 0))
}

func TestRentBaseAndHouses(t *testing.T) {
	// Boardwalk, owner holds only half the set.
	boardwalk := prop(39, "alice")
	parkPlace := prop(37, "bob")
	all := []*models.Property{boardwalk, parkPlace}

	assert.Equal(t, 50, Rent(boardwalk, board.Spaces[39], all, 0))

	boardwalk.HouseCount = 3
	assert.Equal(t, 600, Rent(boardwalk, board.Spaces[39], all, 0))

	boardwalk.HouseCount = 5 // hotel
	assert.Equal(t, 2000, Rent(boardwalk, board.Spaces[39], all, 0))
}

func TestRentMonopolyDoubling(t *testing.T) {
	// Full lightblue set, no houses anywhere: every rent doubles.
	oriental := prop(6, "alice")
	vermont := prop(8, "alice")
	connecticut := prop(9, "alice")
	all := []*models.Property{oriental, vermont, connecticut}

	assert.Equal(t, 12, Rent(oriental, board.Spaces[6], all, 0))
	assert.Equal(t, 12, Rent(vermont, board.Spaces[8], all, 0))
	assert.Equal(t, 16, Rent(connecticut, board.Spaces[9], all, 0))

	// The bonus applies only at zero improvement.
	oriental.HouseCount = 1
	assert.Equal(t, 30, Rent(oriental, board.Spaces[6], all, 0))

	// Losing one of the set drops the others back to base.
	oriental.HouseCount = 0
	vermont.OwnerId = nil
	assert.Equal(t, 6, Rent(oriental, board.Spaces[6], all, 0))
}

func TestRentRailroads(t *testing.T) {
	reading := prop(5, "alice")
	pennsylvania := prop(15, "alice")
	bo := prop(25, "bob")
	short := prop(35, "")
	all := []*models.Property{reading, pennsylvania, bo, short}

	assert.Equal(t, 50, Rent(reading, board.Spaces[5], all, 0))
	assert.Equal(t, 25, Rent(bo, board.Spaces[25], all, 0))

	pennsylvania.OwnerId = nil
	assert.Equal(t, 25, Rent(reading, board.Spaces[5], all, 0))
}

func TestRentUtilities(t *testing.T) {
	electric := prop(12, "alice")
	water := prop(28, "alice")
	all := []*models.Property{electric, water}

	// Both utilities: 10x the roll.
	require.Equal(t, 70, Rent(electric, board.Spaces[12], all, 7))

	// One utility: 4x the roll.
	water.OwnerId = nil
	assert.Equal(t, 28, Rent(electric, board.Spaces[12], all, 7))

	// Without a roll the bare multiplier comes back.
	assert.Equal(t, 4, Rent(electric, board.Spaces[12], all, 0))
	water.OwnerId = electric.OwnerId
	assert.Equal(t, 10, Rent(electric, board.Spaces[12], all, 0))
}
