package rules

import (
	"testing"

	"github.com/maxwharris/monop/app/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCanPurchase(t *testing.T) {
	player := &models.Player{Id: "p1", UserId: "u1", Money: 500}
	baltic := prop(3, "")

	assert.NoError(t, CanPurchase(player, baltic))
}

func TestCanPurchaseRejections(t *testing.T) {
	tests := []struct {
		name   string
		player *models.Player
		setup  func(*models.Property)
		code   Code
	}{
		{
			name:   "already owned",
			player: &models.Player{Id: "p1", Money: 500},
			setup: func(p *models.Property) {
				owner := "p2"
				p.OwnerId = &owner
			},
			code: CodeAlreadyOwned,
		},
		{
			name:   "insufficient funds",
			player: &models.Player{Id: "p1", Money: 59},
			setup:  func(p *models.Property) {},
			code:   CodeInsufficientFunds,
		},
		{
			name:   "bankrupt buyer",
			player: &models.Player{Id: "p1", Money: 500, IsBankrupt: true},
			setup:  func(p *models.Property) {},
			code:   CodeInvalidState,
		},
		{
			name:   "mortgaged",
			player: &models.Player{Id: "p1", Money: 500},
			setup:  func(p *models.Property) { p.IsMortgaged = true },
			code:   CodeMortgaged,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			baltic := prop(3, "")
			tt.setup(baltic)
			err := CanPurchase(tt.player, baltic)
			require.Error(t, err)
			re := AsRuleError(err)
			require.NotNil(t, re)
			assert.Equal(t, tt.code, re.Code)
		})
	}
}
