package engine

import "github.com/arfali/othello-engine/internal/board"

// stabilityDiff approximates (own stable discs) - (opponent stable
// discs), per spec.md's stability approximation: corners are
// unconditionally stable, and an edge disc is stable if there is an
// owned corner on the same edge and the line of that color's discs from
// the corner to the square is unbroken. Interior stability is not
// computed; precision matters less than monotonicity under capture
// (spec.md §4.2).
func stabilityDiff(b board.Board) int {
	own, opp := 0, 0
	for _, sq := range board.Corners() {
		if b.Own().IsSet(sq) {
			own++
		} else if b.Opp().IsSet(sq) {
			opp++
		}
	}
	for _, sq := range board.EdgeSquares() {
		if sq.IsCorner() {
			continue
		}
		if connectedToOwnedCorner(b, sq, true) {
			own++
		}
		if connectedToOwnedCorner(b, sq, false) {
			opp++
		}
	}
	return own - opp
}

// connectedToOwnedCorner reports whether sq is owned by the given side
// (own=true for the side to move, false for the opponent) and the run of
// that side's discs from either corner of sq's edge to sq itself is
// unbroken.
func connectedToOwnedCorner(b board.Board, sq board.Square, own bool) bool {
	mine := b.Own()
	if !own {
		mine = b.Opp()
	}
	if !mine.IsSet(sq) {
		return false
	}

	line := board.EdgeLine(sq)
	if len(line) == 0 {
		return false
	}

	// Try walking in from either end of the edge; sq is connected if
	// either end is an owned corner and every square between that corner
	// and sq belongs to the same side.
	if mine.IsSet(line[0]) && runUnbroken(mine, line, 0, indexOf(line, sq)) {
		return true
	}
	last := len(line) - 1
	if mine.IsSet(line[last]) && runUnbroken(mine, line, indexOf(line, sq), last) {
		return true
	}
	return false
}

func indexOf(line []board.Square, sq board.Square) int {
	for i, s := range line {
		if s == sq {
			return i
		}
	}
	return -1
}

func runUnbroken(mine board.Bitboard, line []board.Square, from, to int) bool {
	if from > to {
		from, to = to, from
	}
	for i := from; i <= to; i++ {
		if !mine.IsSet(line[i]) {
			return false
		}
	}
	return true
}
