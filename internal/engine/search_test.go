package engine

import (
	"testing"
	"time"

	"github.com/arfali/othello-engine/internal/board"
)

func TestIterativeDeepenReturnsLegalMove(t *testing.T) {
	eng := NewSearcher(NewTranspositionTable(1), PieceDiffEvaluator{})
	b := board.NewInitialBoard()

	action, stats, err := eng.IterativeDeepen(b, 200*time.Millisecond, 0)
	if err != nil {
		t.Fatalf("IterativeDeepen: %v", err)
	}
	if stats.DepthReached < 1 {
		t.Errorf("DepthReached = %d, want >= 1", stats.DepthReached)
	}

	legal := false
	for _, a := range b.Actions() {
		if a.Equal(action) {
			legal = true
			break
		}
	}
	if !legal {
		t.Errorf("IterativeDeepen chose %v, not among legal actions %v", action, b.Actions())
	}
}

// maxDepth caps the search even with a generous time budget.
func TestIterativeDeepenRespectsMaxDepth(t *testing.T) {
	eng := NewSearcher(NewTranspositionTable(1), PieceDiffEvaluator{})
	b := board.NewInitialBoard()

	_, stats, err := eng.IterativeDeepen(b, 5*time.Second, 2)
	if err != nil {
		t.Fatalf("IterativeDeepen: %v", err)
	}
	if stats.DepthReached > 2 {
		t.Errorf("DepthReached = %d, want <= 2 with maxDepth=2", stats.DepthReached)
	}
}

// A vanishingly small budget must still return some legal action rather
// than failing (spec.md §4.3's very-first-iteration-aborted fallback).
func TestIterativeDeepenTinyBudgetStillReturnsMove(t *testing.T) {
	eng := NewSearcher(NewTranspositionTable(1), PieceDiffEvaluator{})
	b := board.NewInitialBoard()

	action, _, err := eng.IterativeDeepen(b, 1*time.Nanosecond, 0)
	if err != nil {
		t.Fatalf("IterativeDeepen: %v", err)
	}
	legal := false
	for _, a := range b.Actions() {
		if a.Equal(action) {
			legal = true
			break
		}
	}
	if !legal {
		t.Errorf("IterativeDeepen(tiny budget) chose %v, not among legal actions %v", action, b.Actions())
	}
}

// Plain negamax without alpha-beta pruning, used only to check the
// pruned search agrees on the backed-up score (spec.md §8: "alpha-beta
// pruned search returns the same move/score as unpruned minimax at low
// depth").
func plainNegamax(eval Evaluator, b board.Board, depth int, consecutivePasses int) int {
	if depth == 0 {
		return eval.Evaluate(b)
	}
	actions := b.Actions()
	if len(actions) == 1 && actions[0].IsPass() {
		if consecutivePasses >= 1 {
			return eval.Evaluate(b)
		}
		child, _, _ := b.Apply(board.Pass)
		return -plainNegamax(eval, child, depth-1, consecutivePasses+1)
	}
	best := -Infinity
	for _, a := range actions {
		child, _, err := b.Apply(a)
		if err != nil {
			panic(err)
		}
		score := -plainNegamax(eval, child, depth-1, 0)
		if score > best {
			best = score
		}
	}
	return best
}

func TestAlphaBetaAgreesWithPlainMinimax(t *testing.T) {
	eval := PieceDiffEvaluator{}
	b := board.NewInitialBoard()
	const depth = 4

	s := NewSearcher(NewTranspositionTable(1), eval)
	score, _, err := s.negamax(b, depth, -Infinity, Infinity, 0, newDeadline(10*time.Second))
	if err != nil {
		t.Fatalf("negamax: %v", err)
	}

	want := plainNegamax(eval, b, depth, 0)
	if score != want {
		t.Errorf("alpha-beta score = %d, plain minimax score = %d, want equal", score, want)
	}
}

// spec.md §8 scenario 5 (corner trap): with exactly one legal corner and
// every other legal move an X-square, the engine must choose the
// corner. The root move is picked by backed-up score; MovePriority
// (spec.md §4.2) only sets the scan order, so the corner is scanned first
// and is kept on a tie.
func TestCornerTrapChoosesCorner(t *testing.T) {
	// own at 1-based (3,3),(2,5),(7,4); opp at (2,2),(2,6),(7,3). This
	// makes exactly three placements legal: the corner (1,1) (capturing
	// the opp disc at (2,2)) and the X-squares (2,7) and (7,2) (each
	// capturing one adjacent opp disc).
	own := board.SquareBB(board.NewSquare(2, 2)).Set(board.NewSquare(1, 4)).Set(board.NewSquare(6, 3))
	opp := board.SquareBB(board.NewSquare(1, 1)).Set(board.NewSquare(1, 5)).Set(board.NewSquare(6, 2))

	b := boardFromMasks(own, opp)
	if got := len(b.Actions()); got != 3 {
		t.Fatalf("setup: got %d legal moves, want 3 (one corner, two X-squares): %v", got, b.Actions())
	}

	eng := NewEngine(1, PhasedEvaluator{})
	action, _, err := eng.FindMove(b, 200*time.Millisecond, 0)
	if err != nil {
		t.Fatalf("FindMove: %v", err)
	}
	if action.Row() != 1 || action.Col() != 1 {
		t.Errorf("FindMove chose %v, want the corner (1,1)", action)
	}
}

// spec.md §8 scenario 6 (deadline respect): a short budget on a mid-game
// position returns promptly with some legal move.
func TestDeadlineRespect(t *testing.T) {
	eng := NewEngine(1, PhasedEvaluator{})
	b := midGameBoard(t)

	start := time.Now()
	action, _, err := eng.FindMove(b, 50*time.Millisecond, 0)
	elapsed := time.Since(start)
	if err != nil {
		t.Fatalf("FindMove: %v", err)
	}
	if elapsed > 200*time.Millisecond {
		t.Errorf("FindMove took %s for a 50ms budget, want well under the budget plus scheduling slack", elapsed)
	}

	legal := false
	for _, a := range b.Actions() {
		if a.Equal(action) {
			legal = true
			break
		}
	}
	if !legal {
		t.Errorf("FindMove returned %v, not among legal actions %v", action, b.Actions())
	}
}

// spec.md §8 scenario 2 at the engine level: the side to move has no
// legal placement but the opponent does. own at (4,2),(4,3), opp at
// (4,1) (same layout board_test.go's TestForcedPass validates): the
// root has only Pass available, so negamax's consecutivePasses==0
// branch recurses into the opponent's reply rather than terminating
// immediately, and FindMove must still report Pass as the move played
// at the root.
func TestFindMoveForcedPass(t *testing.T) {
	own := board.SquareBB(board.NewSquare(3, 1)).Set(board.NewSquare(3, 2))
	opp := board.SquareBB(board.NewSquare(3, 0))
	b := boardFromMasks(own, opp)

	if len(b.Actions()) != 1 || !b.Actions()[0].IsPass() {
		t.Fatalf("setup: Actions() = %v, want [Pass]", b.Actions())
	}

	eng := NewEngine(1, PieceDiffEvaluator{})
	action, _, err := eng.FindMove(b, 200*time.Millisecond, 0)
	if err != nil {
		t.Fatalf("FindMove: %v", err)
	}
	if !action.IsPass() {
		t.Errorf("FindMove = %v, want Pass", action)
	}
}

// spec.md §8 scenario 3 at the engine level: both sides are immobile,
// so the position is terminal — negamax's consecutivePasses>=1 branch
// returns the evaluator's score directly rather than recursing again.
// The backed-up score for the forced Pass at the root must equal
// evaluate(board) exactly, since for a side-symmetric evaluator a
// double negation of the opponent's (identical) position returns the
// original value.
func TestFindMoveDoubleImmobileIsTerminal(t *testing.T) {
	own := board.SquareBB(board.NewSquare(0, 0)) // A1
	opp := board.SquareBB(board.NewSquare(3, 3)) // D4
	b := boardFromMasks(own, opp)

	if len(b.Actions()) != 1 || !b.Actions()[0].IsPass() {
		t.Fatalf("setup: Actions() = %v, want [Pass]", b.Actions())
	}
	after, _, err := b.Apply(board.Pass)
	if err != nil {
		t.Fatalf("Apply(Pass): %v", err)
	}
	if len(after.Actions()) != 1 || !after.Actions()[0].IsPass() {
		t.Fatalf("setup: expected the opponent to also be immobile, got %v", after.Actions())
	}

	eval := PieceDiffEvaluator{}
	eng := NewEngine(1, eval)
	action, _, err := eng.FindMove(b, 200*time.Millisecond, 0)
	if err != nil {
		t.Fatalf("FindMove: %v", err)
	}
	if !action.IsPass() {
		t.Errorf("FindMove = %v, want Pass", action)
	}
	if want := eval.Evaluate(b); action.Score != want {
		t.Errorf("FindMove backed-up score = %d, want evaluate(board) = %d", action.Score, want)
	}
}

func TestEngineFindMoveAndReset(t *testing.T) {
	eng := NewEngine(1, PieceDiffEvaluator{})
	b := board.NewInitialBoard()

	action, _, err := eng.FindMove(b, 100*time.Millisecond, 0)
	if err != nil {
		t.Fatalf("FindMove: %v", err)
	}
	if action.IsPass() {
		t.Errorf("FindMove from the initial position returned Pass, want a placement")
	}

	eng.Reset() // must not panic, and leaves the engine usable.
	if _, _, err := eng.FindMove(b, 100*time.Millisecond, 0); err != nil {
		t.Fatalf("FindMove after Reset: %v", err)
	}
}
