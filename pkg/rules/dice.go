package rules

import "math/rand"

type DiceRoll struct {
	Die1      int  `json:"die1"`
	Die2      int  `json:"die2"`
	Total     int  `json:"total"`
	IsDoubles bool `json:"is_doubles"`
}

// RollDice throws 2d6 from the given source. Callers inject the source
// so tests can fix outcomes.
func RollDice(rng *rand.Rand) DiceRoll {
	d1 := rng.Intn(6) + 1
	d2 := rng.Intn(6) + 1
	return DiceRoll{Die1: d1, Die2: d2, Total: d1 + d2, IsDoubles: d1 == d2}
}
