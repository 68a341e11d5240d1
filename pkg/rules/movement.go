package rules

import "github.com/maxwharris/monop/platform/board"

const boardSize = 40

type MoveResult struct {
	OldPosition int  `json:"old_position"`
	NewPosition int  `json:"new_position"`
	PassedGo    bool `json:"passed_go"`
	Salary      int  `json:"salary"`
}

// Move computes the board position after moving the given number of
// spaces (negative moves backwards). Salary is granted only when GO is
// crossed moving forward; wrapping backwards past GO pays nothing.
func Move(position, spaces int) MoveResult {
	newPos := ((position+spaces)%boardSize + boardSize) % boardSize
	passedGo := position+spaces >= boardSize && spaces > 0

	salary := 0
	if passedGo {
		salary = board.GoSalary
	}
	return MoveResult{
		OldPosition: position,
		NewPosition: newPos,
		PassedGo:    passedGo,
		Salary:      salary,
	}
}

// DistanceTo is the forward wrap distance from pos to target. Standing
// on the target yields zero, not a full lap.
func DistanceTo(pos, target int) int {
	return ((target - pos) + boardSize) % boardSize
}

// NearestAhead picks the first of positions strictly ahead of pos,
// wrapping to the first entry when none are. Positions must be sorted
// ascending.
func NearestAhead(pos int, positions []int) int {
	for _, p := range positions {
		if p > pos {
			return p
		}
	}
	return positions[0]
}
