package engine

import "math/rand"

// Source supplies the uniform draws the generator needs.
// *math/rand.Rand satisfies it.
type Source interface {
	// Float64 returns a uniform value in [0, 1).
	Float64() float64
	// Intn returns a uniform value in [0, n). n must be positive.
	Intn(n int) int
}

// NewRand returns a math/rand backed Source seeded for reproducible games.
func NewRand(seed int64) Source {
	return rand.New(rand.NewSource(seed))
}

// SequenceSource replays a fixed list of draws in [0, 1), wrapping around when
// exhausted. Intn maps each draw onto [0, n). Used to script generator output.
type SequenceSource struct {
	draws []float64
	pos   int
}

// NewSequenceSource creates a source that replays draws.
func NewSequenceSource(draws ...float64) *SequenceSource {
	return &SequenceSource{draws: draws}
}

func (s *SequenceSource) next() float64 {
	if len(s.draws) == 0 {
		return 0
	}
	v := s.draws[s.pos%len(s.draws)]
	s.pos++
	if v < 0 {
		return 0
	}
	if v >= 1 {
		return 0.999999
	}
	return v
}

// Float64 returns the next scripted draw.
func (s *SequenceSource) Float64() float64 {
	return s.next()
}

// Intn scales the next scripted draw onto [0, n).
func (s *SequenceSource) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	i := int(s.next() * float64(n))
	if i >= n {
		i = n - 1
	}
	return i
}

// Consumed returns how many draws have been taken.
func (s *SequenceSource) Consumed() int {
	return s.pos
}

// Pick returns the draw that makes Intn(n) yield i. Handy for scripting.
func Pick(i, n int) float64 {
	return (float64(i) + 0.5) / float64(n)
}
