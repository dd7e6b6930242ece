// Package rng provides the deterministic generator used for every random
// choice in battle resolution. It is an xorshift with 32 bits of state,
// chosen so the exact sequence is trivial to reproduce bit-for-bit in any
// language that hosts the engine. Uniformity is all that matters here;
// cryptographic unpredictability is explicitly not a goal.
package rng

// seedFallback replaces an all-zero seed so the xorshift state never locks
// at zero.
const seedFallback uint32 = 0x9E3779B9

// Generator is a seedable xorshift32 PRNG. Two generators seeded identically
// produce identical sequences forever.
type Generator struct {
	state uint32
}

// New folds a 64-bit seed into the 32-bit state. A zero fold is replaced by
// a fixed constant.
func New(seed uint64) *Generator {
	s := uint32(seed) ^ uint32(seed>>32)
	if s == 0 {
		s = seedFallback
	}
	return &Generator{state: s}
}

// NextU32 advances the generator and returns the next 32-bit value.
func (g *Generator) NextU32() uint32 {
	x := g.state
	x ^= x << 13
	x ^= x >> 17
	x ^= x << 5
	g.state = x
	return x
}

// Range returns a value in [0, max). It returns 0 when max <= 0. The modulo
// is slightly biased but intentionally simple and auditable.
func (g *Generator) Range(max int) int {
	if max <= 0 {
		return 0
	}
	return int(g.NextU32() % uint32(max))
}

// Shuffle performs an in-place Fisher-Yates shuffle walking from the end.
func (g *Generator) Shuffle(n int, swap func(i, j int)) {
	for i := n - 1; i > 0; i-- {
		j := g.Range(i + 1)
		swap(i, j)
	}
}
