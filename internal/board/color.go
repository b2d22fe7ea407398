package board

// Color identifies a disc color, independent of whose turn it is. The
// Board itself never stores Color directly on its masks (own/opp track
// side-to-move, not color) — Color only matters at the parsing/printing
// boundary, where the external position string fixes W=white, B=black,
// O=white disc, X=black disc.
type Color uint8

const (
	White Color = iota
	Black
)

// Opponent returns the other color.
func (c Color) Opponent() Color {
	if c == White {
		return Black
	}
	return White
}

func (c Color) String() string {
	if c == White {
		return "W"
	}
	return "B"
}
