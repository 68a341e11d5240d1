package rules

import (
	"testing"

	"github.com/maxwharris/monop/app/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func jailed(money, cards, turns int) *models.Player {
	return &models.Player{
		Id: "p1", UserId: "u1",
		Money: money, IsInJail: true, JailTurns: turns,
		GetOutOfJailCards: cards, Position: 10,
	}
}

func TestSendToJail(t *testing.T) {
	p := &models.Player{Id: "p1", Position: 30, JailTurns: 2}
	SendToJail(p)
	assert.Equal(t, 10, p.Position)
	assert.True(t, p.IsInJail)
	assert.Equal(t, 0, p.JailTurns)
}

func TestReleaseByPayment(t *testing.T) {
	p := jailed(100, 0, 1)
	rel, err := Release(p, ReleasePay)
	require.NoError(t, err)
	assert.Equal(t, ReleasePay, rel.Method)
	assert.Equal(t, 50, rel.AmountPaid)
	assert.Equal(t, 50, p.Money)
	assert.False(t, p.IsInJail)
	assert.Equal(t, 0, p.JailTurns)
}

func TestReleaseByPaymentTooPoor(t *testing.T) {
	p := jailed(49, 0, 1)
	_, err := Release(p, ReleasePay)
	require.Error(t, err)
	assert.Equal(t, CodeInsufficientFunds, AsRuleError(err).Code)
	assert.True(t, p.IsInJail)
}

func TestReleaseByCard(t *testing.T) {
	p := jailed(0, 2, 0)
	rel, err := Release(p, ReleaseCard)
	require.NoError(t, err)
	assert.Equal(t, 1, rel.CardsRemaining)
	assert.Equal(t, 1, p.GetOutOfJailCards)
	assert.False(t, p.IsInJail)
}

func TestReleaseByCardWithoutCard(t *testing.T) {
	p := jailed(500, 0, 0)
	_, err := Release(p, ReleaseCard)
	require.Error(t, err)
	assert.Equal(t, CodeNoJailCard, AsRuleError(err).Code)
}

func TestReleaseByDoublesIsUnconditional(t *testing.T) {
	p := jailed(0, 0, 2)
	rel, err := Release(p, ReleaseDoubles)
	require.NoError(t, err)
	assert.Equal(t, ReleaseDoubles, rel.Method)
	assert.False(t, p.IsInJail)
}

func TestReleaseNotInJail(t *testing.T) {
	p := &models.Player{Id: "p1", Money: 500}
	_, err := Release(p, ReleasePay)
	require.Error(t, err)
	assert.Equal(t, CodeNotInJail, AsRuleError(err).Code)
}

func TestReleaseInvalidMethod(t *testing.T) {
	p := jailed(500, 1, 0)
	_, err := Release(p, ReleaseMethod("bribe"))
	require.Error(t, err)
	assert.Equal(t, CodeInvalidMethod, AsRuleError(err).Code)
}

func TestIncrementJailTurnsCounts(t *testing.T) {
	p := jailed(500, 0, 0)

	stay, err := IncrementJailTurns(p)
	require.NoError(t, err)
	assert.Equal(t, 1, stay.JailTurns)
	assert.False(t, stay.MustPayNext)

	stay, err = IncrementJailTurns(p)
	require.NoError(t, err)
	assert.Equal(t, 2, stay.JailTurns)
	assert.True(t, stay.MustPayNext)
}

func TestThirdJailTurnForcesCardFirst(t *testing.T) {
	p := jailed(500, 1, 2)
	stay, err := IncrementJailTurns(p)
	require.NoError(t, err)
	require.NotNil(t, stay.Released)
	assert.Equal(t, ReleaseCard, stay.Released.Method)
	assert.Equal(t, 500, p.Money) // card spares the cash
	assert.Equal(t, 0, p.GetOutOfJailCards)
}

func TestThirdJailTurnForcesPayment(t *testing.T) {
	p := jailed(80, 0, 2)
	stay, err := IncrementJailTurns(p)
	require.NoError(t, err)
	require.NotNil(t, stay.Released)
	assert.Equal(t, ReleasePay, stay.Released.Method)
	assert.Equal(t, 30, p.Money)
}

func TestThirdJailTurnBrokeAndCardless(t *testing.T) {
	p := jailed(20, 0, 2)
	_, err := IncrementJailTurns(p)
	require.Error(t, err)
	assert.Equal(t, CodeCannotAffordJailFine, AsRuleError(err).Code)
	assert.True(t, p.IsInJail)
	assert.Equal(t, 20, p.Money)
}
