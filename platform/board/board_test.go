package board

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBoardHasOneSpacePerPosition(t *testing.T) {
	for i, s := range Spaces {
		assert.Equal(t, i, s.Position, "space %q out of place", s.Name)
		assert.NotEmpty(t, s.Name)
	}
}

func TestSpecialSpacesHaveNoPrice(t *testing.T) {
	for _, s := range Spaces {
		if s.Kind == KindSpecial {
			assert.Zero(t, s.Price, "%q", s.Name)
			assert.Empty(t, s.Rent, "%q", s.Name)
		} else {
			assert.Greater(t, s.Price, 0, "%q", s.Name)
			assert.NotEmpty(t, s.Rent, "%q", s.Name)
		}
	}
}

func TestPurchasableBreakdown(t *testing.T) {
	counts := map[SpaceKind]int{}
	for _, s := range Purchasables() {
		counts[s.Kind]++
	}
	assert.Equal(t, 22, counts[KindProperty])
	assert.Equal(t, 4, counts[KindRailroad])
	assert.Equal(t, 2, counts[KindUtility])
}

func TestRailroadAndUtilityPositions(t *testing.T) {
	for _, pos := range RailroadPositions {
		assert.Equal(t, KindRailroad, Spaces[pos].Kind)
	}
	for _, pos := range UtilityPositions {
		assert.Equal(t, KindUtility, Spaces[pos].Kind)
	}
	for _, pos := range ChancePositions {
		assert.Equal(t, "Chance", Spaces[pos].Name)
	}
	for _, pos := range ChestPositions {
		assert.Equal(t, "Community Chest", Spaces[pos].Name)
	}
}

func TestGetByPos(t *testing.T) {
	s, err := GetByPos(39)
	assert.NoError(t, err)
	assert.Equal(t, "Boardwalk", s.Name)

	_, err = GetByPos(40)
	assert.Error(t, err)
	_, err = GetByPos(-1)
	assert.Error(t, err)
}
