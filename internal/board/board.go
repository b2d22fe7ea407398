package board

import "errors"

// ErrIllegalMove is returned by Apply when the requested placement is not
// legal: the target square is occupied, or the placement would flip no
// opposing discs. Per spec.md §7, this indicates a bug in the caller (the
// search never applies a move it did not itself generate) and should be
// treated as fatal by the driver, not recovered.
var ErrIllegalMove = errors.New("board: illegal move")

// Board is an immutable-by-value Othello position. own/opp/empty are
// disjoint masks covering all 64 squares; own always holds the discs of
// the side to move, never a fixed color. ToMove records which color own
// currently represents, needed only to parse and print the external
// position-string form.
type Board struct {
	own, opp, empty Bitboard
	ToMove          Color
}

// NewInitialBoard returns the standard Othello starting position: D4/E5
// belong to the side to move, D5/E4 to the opponent, white to move. This
// is the real-world standard Othello disc layout; spec.md §4.1's prose
// names the pairs the other way around, but its own worked example in
// §8 ("Initial position, white to move") decodes to D4/E5=white,
// D5/E4=black, which is what this follows (see DESIGN.md).
func NewInitialBoard() Board {
	d4 := NewSquare(3, 3) // rank 4, file D
	e5 := NewSquare(4, 4) // rank 5, file E
	d5 := NewSquare(4, 3) // rank 5, file D
	e4 := NewSquare(3, 4) // rank 4, file E

	own := SquareBB(d4).Set(e5)
	opp := SquareBB(d5).Set(e4)
	return Board{
		own:    own,
		opp:    opp,
		empty:  ^(own | opp),
		ToMove: White,
	}
}

// Own returns the bitboard of the side to move's discs.
func (b Board) Own() Bitboard { return b.own }

// Opp returns the bitboard of the opponent's discs.
func (b Board) Opp() Bitboard { return b.opp }

// EmptySquares returns the bitboard of empty squares.
func (b Board) EmptySquares() Bitboard { return b.empty }

// TotalDiscs returns popcount(own)+popcount(opp), used to derive game
// phase and parity without storing either.
func (b Board) TotalDiscs() int {
	return b.own.PopCount() + b.opp.PopCount()
}

// Phase is the derived game phase (spec.md §3).
type Phase int

const (
	Early Phase = iota
	Mid
	Late
)

// GamePhase derives the phase from total discs on the board.
func (b Board) GamePhase() Phase {
	total := b.TotalDiscs()
	switch {
	case total < 20:
		return Early
	case total < 45:
		return Mid
	default:
		return Late
	}
}

// Clone returns a structural copy. Board is a small value type (three
// Bitboards plus a Color), so this is just a value copy — kept as an
// explicit method because search code reads more clearly calling
// b.Clone() at points where a new position is conceptually being
// branched off, mirroring the teacher's Position.Copy() idiom.
func (b Board) Clone() Board {
	return b
}

// ColorSwapped returns a board identical in disc layout but with own/opp
// swapped and ToMove flipped — the "color-swapped twin" used by the
// evaluator's side-symmetry property (spec.md §8 item 6). It does not
// represent a legal successor position; it is a pure test/evaluation
// fixture.
func (b Board) ColorSwapped() Board {
	return Board{
		own:    b.opp,
		opp:    b.own,
		empty:  b.empty,
		ToMove: b.ToMove.Opponent(),
	}
}

// LegalMoves returns the raw bitboard of empty squares where a placement
// by the side to move would flip at least one opposing disc (spec.md
// §4.1). This is the bitboard primitive: it returns the empty set when
// there is no legal placement, it does not synthesize a Pass.
func (b Board) LegalMoves() Bitboard {
	var moves Bitboard
	for _, d := range directions {
		// Step one square into an opponent run from own.
		x := d.apply(b.own) & b.opp
		// Extend the run up to six more times (a run can span at most
		// six opponent discs between own discs on an 8-wide board).
		for i := 0; i < 6; i++ {
			x |= d.apply(x) & b.opp
		}
		// The landing empties one step past the run.
		moves |= d.apply(x) & b.empty
	}
	return moves
}

// Actions returns the legal moves as a slice of placement Actions, or the
// single-element []Action{Pass} if there are none.
func (b Board) Actions() []Action {
	bb := b.LegalMoves()
	if bb.None() {
		return []Action{Pass}
	}
	actions := make([]Action, 0, bb.PopCount())
	for _, sq := range bb.Squares() {
		actions = append(actions, actionFromSquare(sq))
	}
	return actions
}

// HasLegalMove reports whether the side to move has any legal placement.
func (b Board) HasLegalMove() bool {
	return b.LegalMoves().Any()
}

// Apply applies action to b and returns the resulting board along with
// the number of discs flipped (0 for a Pass). It fails with
// ErrIllegalMove if action is a placement on an occupied square or one
// that flips no discs.
func (b Board) Apply(action Action) (Board, int, error) {
	if action.IsPass() {
		return Board{own: b.opp, opp: b.own, empty: b.empty, ToMove: b.ToMove.Opponent()}, 0, nil
	}

	sq := action.square()
	if !sq.IsValid() || b.empty&SquareBB(sq) == 0 {
		return Board{}, 0, ErrIllegalMove
	}

	placed := SquareBB(sq)
	var captured Bitboard

	for _, d := range directions {
		var run Bitboard
		x := d.apply(placed) & b.opp
		for x.Any() {
			run |= x
			next := d.apply(x)
			if next&b.opp != 0 {
				x = next & b.opp
				continue
			}
			if next&b.own != 0 {
				captured |= run
			}
			break
		}
	}

	if captured.None() {
		return Board{}, 0, ErrIllegalMove
	}

	newOwn := b.opp &^ captured
	newOpp := b.own | placed | captured
	return Board{
		own:    newOwn,
		opp:    newOpp,
		empty:  b.empty &^ placed,
		ToMove: b.ToMove.Opponent(),
	}, captured.PopCount(), nil
}
