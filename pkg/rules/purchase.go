package rules

import (
	"fmt"

	"github.com/maxwharris/monop/app/models"
)

// CanPurchase validates a purchase without mutating anything. The
// caller debits the player and writes ownership in one transaction
// only after this passes, so no partial state is ever committed.
func CanPurchase(player *models.Player, prop *models.Property) error {
	if prop.OwnerId != nil {
		return newError(CodeAlreadyOwned, "Property is already owned")
	}
	if player.Money < prop.Price {
		return newError(CodeInsufficientFunds,
			fmt.Sprintf("Insufficient funds. Need $%d, have $%d", prop.Price, player.Money))
	}
	if player.IsBankrupt {
		return newError(CodeInvalidState, "Cannot purchase property while bankrupt")
	}
	if prop.IsMortgaged {
		return newError(CodeMortgaged, "Property is mortgaged")
	}
	return nil
}
