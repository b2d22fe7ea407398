package engine

import (
	"errors"
	"fmt"
	"time"

	"github.com/arfali/othello-engine/internal/board"
)

// Infinity is a score magnitude no real evaluation can reach, used as the
// initial alpha-beta window (spec.md §4.3: "αβ(board, depth, −∞, +∞)").
const Infinity = 1 << 20

// Stats reports diagnostics about a completed iterative-deepening call,
// surfaced by the driver's -debug flag (SPEC_FULL.md §4.7).
type Stats struct {
	DepthReached int
	Nodes        uint64
	Elapsed      time.Duration
}

// Searcher runs iterative-deepening alpha-beta over a fixed Evaluator and
// transposition table. It holds no board state between calls: every
// Board it touches is a value passed in and discarded on return, per
// spec.md's "Board is immutable-by-value".
type Searcher struct {
	tt    *TranspositionTable
	eval  Evaluator
	nodes uint64
}

// NewSearcher creates a searcher over tt using eval to score leaves.
func NewSearcher(tt *TranspositionTable, eval Evaluator) *Searcher {
	return &Searcher{tt: tt, eval: eval}
}

// IterativeDeepen runs alpha-beta at increasing depths under budget,
// returning the move from the deepest depth that completed before the
// deadline (spec.md §4.3). maxDepth caps the depth independent of time —
// 0 means no cap beyond the number of empty squares (Othello's game tree
// cannot usefully be searched deeper than that: every ply places one
// disc).
func (s *Searcher) IterativeDeepen(b board.Board, budget time.Duration, maxDepth int) (board.Action, Stats, error) {
	s.nodes = 0
	dl := newDeadline(budget)

	depthCap := b.EmptySquares().PopCount()
	if maxDepth > 0 && maxDepth < depthCap {
		depthCap = maxDepth
	}

	var best board.Action
	haveBest := false
	depthReached := 0

	for depth := 1; depth <= depthCap; depth++ {
		if dl.expired() {
			break
		}

		action, err := s.searchRoot(b, depth, dl)
		if err != nil {
			if errors.Is(err, ErrTimeExpired) {
				break
			}
			return board.Action{}, Stats{}, err
		}

		best = action
		haveBest = true
		depthReached = depth
	}

	if !haveBest {
		// The very first iteration aborted (or there was no time to run
		// even depth 1): fall back to the first legal move, or Pass if
		// none (spec.md §4.3).
		best = b.Actions()[0]
		best.Score = s.eval.Evaluate(b)
	}

	return best, Stats{DepthReached: depthReached, Nodes: s.nodes, Elapsed: dl.elapsed()}, nil
}

// searchRoot runs one complete alpha-beta pass to depth and returns the
// chosen action, with its backed-up score attached (Action.Score).
func (s *Searcher) searchRoot(b board.Board, depth int, dl *deadline) (board.Action, error) {
	score, action, err := s.negamax(b, depth, -Infinity, Infinity, 0, dl)
	if err != nil {
		return board.Action{}, err
	}
	action.Score = score
	return action, nil
}

// negamax implements alpha-beta pruning in negamax form (spec.md §4.3
// calls out classic min/max and negamax as equivalent; this engine uses
// negamax throughout, matching the teacher's internal/engine/search.go).
// It returns the score from the perspective of the side to move at b,
// and the best action found at this node (the zero Action if the node
// is a leaf or a terminal double-pass).
//
// consecutivePasses tracks how many plies in a row were forced passes:
// two in a row means neither side can move, which spec.md treats as
// terminal ("if both sides pass... the position is terminal and the
// evaluator is used directly"), without recursing further regardless of
// remaining depth.
func (s *Searcher) negamax(b board.Board, depth int, alpha, beta int, consecutivePasses int, dl *deadline) (int, board.Action, error) {
	if dl.poll() {
		return 0, board.Action{}, ErrTimeExpired
	}
	s.nodes++

	hash := b.Hash()
	var ttMove board.Action
	haveTT := false
	if entry, found := s.tt.Probe(hash); found {
		ttMove = entry.BestMove
		haveTT = true
		if entry.Depth >= depth {
			switch entry.Bound {
			case Exact:
				return entry.Score, entry.BestMove, nil
			case LowerBound:
				if entry.Score >= beta {
					return entry.Score, entry.BestMove, nil
				}
			case UpperBound:
				if entry.Score <= alpha {
					return entry.Score, entry.BestMove, nil
				}
			}
		}
	}

	if depth == 0 {
		return s.eval.Evaluate(b), board.Action{}, nil
	}

	actions := b.Actions()

	if len(actions) == 1 && actions[0].IsPass() {
		if consecutivePasses >= 1 {
			return s.eval.Evaluate(b), board.Action{}, nil
		}
		child, _, err := b.Apply(board.Pass)
		if err != nil {
			panic(fmt.Sprintf("engine: pass rejected as illegal move: %v", err))
		}
		score, _, err := s.negamax(child, depth-1, -beta, -alpha, consecutivePasses+1, dl)
		if err != nil {
			return 0, board.Action{}, err
		}
		score = -score
		s.tt.Store(hash, depth, score, alpha, beta, board.Pass)
		return score, board.Pass, nil
	}

	orderMoves(actions, ttMove, haveTT)

	alpha0, beta0 := alpha, beta
	best := -Infinity
	var bestAction board.Action

	for _, a := range actions {
		child, _, err := b.Apply(a)
		if err != nil {
			// The search only ever applies actions it generated from
			// b.Actions() itself; a rejection here is an internal
			// invariant violation, not a recoverable condition
			// (spec.md §7: "IllegalMove... should surface as a fatal
			// bug").
			panic(fmt.Sprintf("engine: generated action %v rejected as illegal: %v", a, err))
		}

		score, _, err := s.negamax(child, depth-1, -beta, -alpha, 0, dl)
		if err != nil {
			return 0, board.Action{}, err
		}
		score = -score

		if score > best {
			best = score
			bestAction = a
		}
		if best > alpha {
			alpha = best
		}
		if alpha >= beta {
			break
		}
	}

	s.tt.Store(hash, depth, best, alpha0, beta0, bestAction)
	return best, bestAction, nil
}
