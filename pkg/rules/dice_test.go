package rules

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRollDiceRange(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 1000; i++ {
		roll := RollDice(rng)
		assert.GreaterOrEqual(t, roll.Die1, 1)
		assert.LessOrEqual(t, roll.Die1, 6)
		assert.GreaterOrEqual(t, roll.Die2, 1)
		assert.LessOrEqual(t, roll.Die2, 6)
		assert.Equal(t, roll.Die1+roll.Die2, roll.Total)
		assert.Equal(t, roll.Die1 == roll.Die2, roll.IsDoubles)
	}
}

func TestRollDiceSeeded(t *testing.T) {
	a := RollDice(rand.New(rand.NewSource(7)))
	b := RollDice(rand.New(rand.NewSource(7)))
	assert.Equal(t, a, b)
}
