package board

// Hash mixing, grounded in the teacher's Zobrist scheme (internal/board's
// original zobrist.go): a fixed-seed xorshift64* PRNG fills per-square
// key tables once at package init, and a position's hash is the XOR of
// the keys for every own/opp disc plus a side-to-move key — cheap,
// deterministic across runs, and good enough for transposition-table
// indexing (spec.md §9: "a Zobrist scheme is welcome but not required").
var (
	zobristOwn  [64]uint64
	zobristOpp  [64]uint64
	zobristSide uint64
)

func init() {
	rng := newPRNG(0x4F7A1B6C9E2D3851)
	for sq := 0; sq < 64; sq++ {
		zobristOwn[sq] = rng.next()
	}
	for sq := 0; sq < 64; sq++ {
		zobristOpp[sq] = rng.next()
	}
	zobristSide = rng.next()
}

// prng is a minimal xorshift64* generator, seeded fixed so hash keys (and
// therefore search behavior) are reproducible across runs.
type prng struct {
	state uint64
}

func newPRNG(seed uint64) *prng {
	return &prng{state: seed}
}

func (p *prng) next() uint64 {
	p.state ^= p.state >> 12
	p.state ^= p.state << 25
	p.state ^= p.state >> 27
	return p.state * 0x2545F4914F6CDD1D
}

// Hash returns a fingerprint of (own, opp, ToMove), suitable as a
// transposition-table key (spec.md §3).
func (b Board) Hash() uint64 {
	var h uint64
	own, opp := b.own, b.opp
	for own != 0 {
		sq := own.PopLSB()
		h ^= zobristOwn[sq]
	}
	for opp != 0 {
		sq := opp.PopLSB()
		h ^= zobristOpp[sq]
	}
	if b.ToMove == Black {
		h ^= zobristSide
	}
	return h
}
