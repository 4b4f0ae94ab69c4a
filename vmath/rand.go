package vmath

// FastRand is a xorshift64 generator; deterministic for a given seed
type FastRand struct {
	state uint64
}

func NewFastRand(seed uint64) *FastRand {
	if seed == 0 {
		seed = 1
	}
	return &FastRand{state: seed}
}

func (r *FastRand) Next() uint64 {
	x := r.state
	x ^= x << 13
	x ^= x >> 17
	x ^= x << 5
	r.state = x
	return x
}

// Float32 returns a uniform value in [0,1) built from the top 24 bits
func (r *FastRand) Float32() float32 {
	return float32(r.Next()>>40) / (1 << 24)
}
