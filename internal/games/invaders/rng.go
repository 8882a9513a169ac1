package invaders

// SimpleRNG is a deterministic pseudo-random number generator.
// Uses a 64-bit LCG so that seeded runs replay identically.
type SimpleRNG struct {
	state uint64
}

// NewSimpleRNG creates a new RNG with the given seed.
func NewSimpleRNG(seed int64) *SimpleRNG {
	s := uint64(seed) //#nosec G115 -- intentional conversion for RNG seeding
	if s == 0 {
		s = 1
	}
	return &SimpleRNG{state: s}
}

// Next generates the next random uint64.
func (r *SimpleRNG) Next() uint64 {
	r.state = r.state*6364136223846793005 + 1442695040888963407
	return r.state
}

// Intn returns a random int in [0, n).
// The high bits are used; the low bits of an LCG cycle with short periods.
func (r *SimpleRNG) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	return int((r.Next() >> 33) % uint64(n)) //#nosec G115 -- n is always positive
}

// State returns the generator state for snapshots.
func (r *SimpleRNG) State() uint64 {
	return r.state
}
