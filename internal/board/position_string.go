package board

import "fmt"

// ParsePosition decodes the external 65-character textual form (spec.md
// §6): character 0 is 'W' or 'B' for the side to move; characters 1..64,
// row-major from (1,1) to (8,8), are one of 'O' (white), 'X' (black), 'E'
// (empty). own/opp are always stored from the side-to-move's perspective,
// so the two color masks are swapped when the side to move is black.
func ParsePosition(s string) (Board, error) {
	if len(s) != 65 {
		return Board{}, fmt.Errorf("board: position string has length %d, want 65", len(s))
	}

	var toMove Color
	switch s[0] {
	case 'W':
		toMove = White
	case 'B':
		toMove = Black
	default:
		return Board{}, fmt.Errorf("board: position string side-to-move byte %q, want 'W' or 'B'", s[0])
	}

	var white, black, empty Bitboard
	for i := 1; i < 65; i++ {
		sq := Square(i - 1)
		switch s[i] {
		case 'O':
			white = white.Set(sq)
		case 'X':
			black = black.Set(sq)
		case 'E':
			empty = empty.Set(sq)
		default:
			return Board{}, fmt.Errorf("board: position string byte %d is %q, want 'O', 'X', or 'E'", i, s[i])
		}
	}

	if white&black != 0 || white|black|empty != Universe {
		return Board{}, fmt.Errorf("board: position string squares are not a partition of the board")
	}

	b := Board{empty: empty, ToMove: toMove}
	if toMove == White {
		b.own, b.opp = white, black
	} else {
		b.own, b.opp = black, white
	}
	return b, nil
}

// String re-serializes the board to the external 65-character form that
// ParsePosition accepts, such that ParsePosition(b.String()) round-trips
// to an equal board (spec.md §8, "Round-trip").
func (b Board) String() string {
	buf := make([]byte, 65)
	buf[0] = byte(b.ToMove.String()[0])

	white, black := b.own, b.opp
	if b.ToMove == Black {
		white, black = b.opp, b.own
	}

	for i := 0; i < 64; i++ {
		sq := Square(i)
		switch {
		case white.IsSet(sq):
			buf[i+1] = 'O'
		case black.IsSet(sq):
			buf[i+1] = 'X'
		default:
			buf[i+1] = 'E'
		}
	}
	return string(buf)
}

// Equal compares two boards by their masks and side to move.
func (b Board) Equal(other Board) bool {
	return b.own == other.own && b.opp == other.opp && b.empty == other.empty && b.ToMove == other.ToMove
}
