package rules

import (
	"github.com/maxwharris/monop/app/models"
	"github.com/maxwharris/monop/platform/board"
)

var railroadRents = []int{25, 50, 100, 200}

// Rent computes what a visitor owes on prop. Unowned or mortgaged
// spaces charge nothing. diceTotal is only meaningful for utilities;
// pass 0 when no roll is available, in which case the bare multiplier
// comes back and the caller must finish the computation.
//
// allProps is the full property table; group ownership is counted with
// a plain scan each call, which is fine at 28 rows.
func Rent(prop *models.Property, space board.Space, allProps []*models.Property, diceTotal int) int {
	if prop.OwnerId == nil || prop.IsMortgaged {
		return 0
	}

	switch space.Kind {
	case board.KindProperty:
		base := space.Rent[0]
		if prop.HouseCount >= 0 && prop.HouseCount < len(space.Rent) {
			base = space.Rent[prop.HouseCount]
		}
		// Full color set with no houses doubles the base rent.
		if prop.HouseCount == 0 && space.ColorGroup != "" && ownsWholeGroup(*prop.OwnerId, space.ColorGroup, allProps) {
			base *= 2
		}
		return base

	case board.KindRailroad:
		n := countOwned(*prop.OwnerId, "railroad", allProps)
		if n < 1 || n > len(railroadRents) {
			return 0
		}
		return railroadRents[n-1]

	case board.KindUtility:
		multiplier := 4
		if countOwned(*prop.OwnerId, "utility", allProps) == 2 {
			multiplier = 10
		}
		if diceTotal > 0 {
			return multiplier * diceTotal
		}
		return multiplier
	}
	return 0
}

func ownsWholeGroup(ownerId, group string, allProps []*models.Property) bool {
	for _, p := range allProps {
		if p.ColorGroup == group && !p.OwnedBy(ownerId) {
			return false
		}
	}
	return true
}

func countOwned(ownerId, propertyType string, allProps []*models.Property) int {
	n := 0
	for _, p := range allProps {
		if p.Type == propertyType && p.OwnedBy(ownerId) {
			n++
		}
	}
	return n
}
