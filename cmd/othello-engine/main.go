// Command othello-engine is the driver described in spec.md §4.4/§6: it
// parses a 65-character position string and a time budget, runs the
// search engine under that budget, and prints the chosen move.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"runtime/pprof"
	"strconv"
	"time"

	"github.com/fatih/color"

	"github.com/arfali/othello-engine/internal/board"
	"github.com/arfali/othello-engine/internal/engine"
)

var (
	debug      = flag.Bool("debug", false, "print a colorized board, move priority, and search stats to stderr")
	depthFlag  = flag.Int("depth", 0, "cap the search depth independent of the time budget (0 = no cap)")
	ttSizeMB   = flag.Int("tt-mb", 16, "transposition table size in megabytes")
	evalName   = flag.String("eval", "phased", "evaluator to use: phased or piece-diff")
	cpuprofile = flag.String("cpuprofile", "", "write a CPU profile to this file")
)

func main() {
	flag.Parse()

	if profilePath := *cpuprofile; profilePath != "" {
		f, err := os.Create(profilePath)
		if err != nil {
			log.Fatalf("othello-engine: could not create CPU profile: %v", err)
		}
		defer f.Close()
		if err := pprof.StartCPUProfile(f); err != nil {
			log.Fatalf("othello-engine: could not start CPU profile: %v", err)
		}
		defer pprof.StopCPUProfile()
		log.Printf("CPU profiling enabled, writing to %s", profilePath)
	}

	args := flag.Args()
	if len(args) != 2 {
		fmt.Fprintf(os.Stderr, "usage: othello-engine [flags] \"<65-char position>\" <seconds:float>\n")
		os.Exit(1)
	}

	pos, err := board.ParsePosition(args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "othello-engine: invalid position: %v\n", err)
		os.Exit(1)
	}

	seconds, err := strconv.ParseFloat(args[1], 64)
	if err != nil || seconds <= 0 {
		fmt.Fprintf(os.Stderr, "othello-engine: invalid time budget %q\n", args[1])
		os.Exit(1)
	}
	budget := time.Duration(seconds * float64(time.Second))

	eval, err := evaluatorByName(*evalName)
	if err != nil {
		fmt.Fprintf(os.Stderr, "othello-engine: %v\n", err)
		os.Exit(1)
	}

	log.Printf("othello-engine: starting search with %s evaluation, budget=%s", eval.Name(), budget)
	eng := engine.NewEngine(*ttSizeMB, eval)

	action, stats, err := eng.FindMove(pos, budget, *depthFlag)
	if err != nil {
		// IterativeDeepen only ever returns a non-nil error for a
		// condition outside spec.md's taxonomy (TimeExpired is always
		// recovered internally); treat it as the fatal, unexpected case
		// spec.md §7 requires.
		log.Fatalf("othello-engine: search failed: %v", err)
	}

	if *debug {
		printDebug(os.Stderr, pos, action, stats)
	}

	fmt.Println(action.String())
}

func evaluatorByName(name string) (engine.Evaluator, error) {
	switch name {
	case "phased", "":
		return engine.PhasedEvaluator{}, nil
	case "piece-diff":
		return engine.PieceDiffEvaluator{}, nil
	default:
		return nil, fmt.Errorf("unknown evaluator %q (want phased or piece-diff)", name)
	}
}

// printDebug renders the board and search diagnostics to w, colorized
// with fatih/color (SPEC_FULL.md §4.6). It never touches stdout, so it
// cannot interfere with the single-line move output the spec mandates.
func printDebug(w *os.File, pos board.Board, chosen board.Action, stats engine.Stats) {
	own := color.New(color.FgGreen, color.Bold)
	opp := color.New(color.FgRed, color.Bold)
	dot := color.New(color.FgHiBlack)

	for r := 7; r >= 0; r-- {
		fmt.Fprintf(w, "%d ", r+1)
		for c := 0; c < 8; c++ {
			sq := board.NewSquare(r, c)
			switch {
			case pos.Own().IsSet(sq):
				own.Fprint(w, "O ")
			case pos.Opp().IsSet(sq):
				opp.Fprint(w, "X ")
			default:
				dot.Fprint(w, ". ")
			}
		}
		fmt.Fprintln(w)
	}
	fmt.Fprintln(w, "  a b c d e f g h")

	fmt.Fprintf(w, "side to move: %s\n", pos.ToMove)
	fmt.Fprintf(w, "chosen move: %s  score: %d  priority: %d\n",
		chosen.String(), chosen.Score, engine.MovePriority(chosen))
	fmt.Fprintf(w, "depth reached: %d  nodes: %d  elapsed: %s\n",
		stats.DepthReached, stats.Nodes, stats.Elapsed)
}
