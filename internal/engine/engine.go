package engine

import (
	"log"
	"time"

	"github.com/arfali/othello-engine/internal/board"
)

// Engine is the owner of one searcher and one transposition table — the
// minimal façade the driver needs (spec.md §6), and the unit that holds
// all mutable search state so nothing is a package-level global (spec.md
// §9).
type Engine struct {
	searcher *Searcher
	tt       *TranspositionTable
}

// NewEngine creates an engine with a transposition table of the given
// size in megabytes, using eval to score leaves. A nil eval defaults to
// PhasedEvaluator, the engine's normal playing evaluator.
func NewEngine(ttSizeMB int, eval Evaluator) *Engine {
	if eval == nil {
		eval = PhasedEvaluator{}
	}
	log.Printf("[Engine] creating engine: tt=%dMB evaluator=%s", ttSizeMB, eval.Name())
	tt := NewTranspositionTable(ttSizeMB)
	return &Engine{
		searcher: NewSearcher(tt, eval),
		tt:       tt,
	}
}

// FindMove runs iterative deepening from b under budget and returns the
// chosen action (its Score set to the backed-up alpha-beta value) along
// with search statistics. maxDepth, if positive, caps the search depth
// independent of the time budget (SPEC_FULL.md §4.7); 0 means no
// additional cap.
func (e *Engine) FindMove(b board.Board, budget time.Duration, maxDepth int) (board.Action, Stats, error) {
	log.Printf("[Search] received position with ToMove=%v, budget=%s, maxDepth=%d", b.ToMove, budget, maxDepth)
	action, stats, err := e.searcher.IterativeDeepen(b, budget, maxDepth)
	if err != nil {
		return action, stats, err
	}
	log.Printf("[Search] chose %s (score=%d) at depth=%d, nodes=%d, elapsed=%s",
		action, action.Score, stats.DepthReached, stats.Nodes, stats.Elapsed)
	return action, stats, nil
}

// Reset clears the transposition table, discarding all cached search
// results. The table otherwise persists across FindMove calls for the
// lifetime of the Engine (spec.md §3: "Lifetime = process").
func (e *Engine) Reset() {
	log.Printf("[Engine] resetting transposition table")
	e.tt.Clear()
}
