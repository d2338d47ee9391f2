package rng

// Stream is a mulberry32 generator: 32 bits of state, one output per draw.
// The same seed always yields the same sequence, so a Stream is created fresh
// at the start of every generation pass and dropped at the end of it.
type Stream struct {
	state uint32
}

// golden is the Weyl increment added to the state on every draw.
const golden = 0x6D2B79F5

// two32 is 2^32; dividing the mixed state by it maps onto [0,1).
const two32 = 4294967296.0

// New returns a stream seeded with seed. Negative seeds are used as their
// two's complement bit pattern.
func New(seed int32) *Stream {
	return &Stream{state: uint32(seed)}
}

// next advances the state and returns the mixed 32-bit output.
func (s *Stream) next() uint32 {
	s.state += golden
	t := (s.state ^ s.state>>15) * (1 | s.state)
	t = (t + (t^t>>7)*(61|t)) ^ t
	return t ^ t>>14
}

// Float64 returns the next value in [0,1). Each seed has 2^32 distinct outputs.
func (s *Stream) Float64() float64 {
	return float64(s.next()) / two32
}

// Float32 returns the next value as a float32 in [0,1). The float64 draw is
// narrowed and values that would round up to 1 are pulled back below it.
func (s *Stream) Float32() float32 {
	f := float32(s.Float64())
	if f >= 1 {
		f = 0x1.fffffep-1
	}
	return f
}

// IntN returns floor(Float64()*n) for n > 0 and 0 otherwise. The
// multiplication is done in float64 so the result is always below n.
func (s *Stream) IntN(n int) int {
	if n <= 0 {
		s.next()
		return 0
	}
	return int(s.Float64() * float64(n))
}

// Uint64 makes a Stream usable as a math/rand/v2 Source. It consumes two draws.
func (s *Stream) Uint64() uint64 {
	hi := uint64(s.next())
	return hi<<32 | uint64(s.next())
}
