package rules

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMoveWrapsModulo40(t *testing.T) {
	for pos := 0; pos < 40; pos++ {
		for spaces := -39; spaces <= 39; spaces++ {
			got := Move(pos, spaces)
			want := ((pos+spaces)%40 + 40) % 40
			if got.NewPosition != want {
				t.Fatalf("Move(%d, %d).NewPosition = %d, want %d", pos, spaces, got.NewPosition, want)
			}
			if got.OldPosition != pos {
				t.Fatalf("Move(%d, %d) lost old position", pos, spaces)
			}
		}
	}
}

func TestMovePassingGoPaysSalary(t *testing.T) {
	res := Move(39, 2)
	assert.Equal(t, 1, res.NewPosition)
	assert.True(t, res.PassedGo)
	assert.Equal(t, 200, res.Salary)
}

func TestMoveLandingExactlyOnGo(t *testing.T) {
	res := Move(10, 30)
	assert.Equal(t, 0, res.NewPosition)
	assert.True(t, res.PassedGo)
	assert.Equal(t, 200, res.Salary)
}

// Wrapping backwards past GO pays nothing. This asymmetry is load
// bearing: "Go Back 3 Spaces" from position 1 must not collect salary.
func TestMoveBackwardWrapNoSalary(t *testing.T) {
	res := Move(5, -10)
	assert.Equal(t, 35, res.NewPosition)
	assert.False(t, res.PassedGo)
	assert.Equal(t, 0, res.Salary)

	res = Move(1, -3)
	assert.Equal(t, 38, res.NewPosition)
	assert.False(t, res.PassedGo)
}

func TestDistanceTo(t *testing.T) {
	assert.Equal(t, 0, DistanceTo(24, 24))
	assert.Equal(t, 5, DistanceTo(0, 5))
	assert.Equal(t, 35, DistanceTo(10, 5)) // wraps forward, never backward
}

func TestNearestAhead(t *testing.T) {
	railroads := []int{5, 15, 25, 35}
	assert.Equal(t, 15, NearestAhead(7, railroads))
	assert.Equal(t, 35, NearestAhead(25, railroads)) // strictly ahead
	assert.Equal(t, 5, NearestAhead(36, railroads))  // wraps to the first
}
