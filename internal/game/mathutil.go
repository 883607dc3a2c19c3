package game

// epsilon is the float64 machine epsilon.
const epsilon = 0x1p-52

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func clampF(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func satSub(v, d uint64) uint64 {
	if d > v {
		return 0
	}
	return v - d
}

func satMul32(v, k uint32) uint32 {
	if k != 0 && v > ^uint32(0)/k {
		return ^uint32(0)
	}
	return v * k
}

// Rand is a tiny deterministic RNG (xorshift64*). A Game owns exactly one and
// reseeds it on restart.
type Rand struct {
	s uint64
}

func NewRand(seed uint64) *Rand {
	if seed == 0 {
		seed = 1
	}
	return &Rand{s: seed}
}

func (r *Rand) NextU64() uint64 {
	x := r.s
	x ^= x >> 12
	x ^= x << 25
	x ^= x >> 27
	r.s = x
	return x * 2685821657736338717
}

func (r *Rand) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	return int(r.NextU64() % uint64(n))
}

func (r *Rand) Float64() float64 {
	return float64(r.NextU64()>>11) * (1.0 / (1 << 53))
}
