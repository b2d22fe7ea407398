package engine

import "github.com/arfali/othello-engine/internal/board"

// orderMoves sorts actions by MovePriority, descending, so the search
// scans the most promising moves first (spec.md §4.3: "Move ordering:
// Mandatory: apply move_priority before scanning"). A ttMove, if
// present, is moved to the front ahead of priority ordering, mirroring
// the teacher's ordering.go giving the transposition-table move the
// single highest score of any ordering signal.
func orderMoves(actions []board.Action, ttMove board.Action, haveTT bool) {
	priorities := make([]int, len(actions))
	for i, a := range actions {
		priorities[i] = MovePriority(a)
		if haveTT && a.Equal(ttMove) {
			priorities[i] = priorityCorner + 1 // ahead of everything, including corners
		}
	}

	// Selection sort by descending priority: the move lists here are at
	// most a few dozen entries (Othello has no more than 27-ish legal
	// placements), so the O(n^2) cost is negligible and this keeps the
	// same "pick the best remaining move" idiom the teacher's
	// search.go/PickMove uses during the scan itself.
	for i := 0; i < len(actions); i++ {
		best := i
		for j := i + 1; j < len(actions); j++ {
			if priorities[j] > priorities[best] {
				best = j
			}
		}
		if best != i {
			actions[i], actions[best] = actions[best], actions[i]
			priorities[i], priorities[best] = priorities[best], priorities[i]
		}
	}
}
