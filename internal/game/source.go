package game

import "math/rand/v2"

// RandomSource draws integers from the half-open range [low, high).
type RandomSource interface {
	IntRange(low, high int) int
}

type runtimeSource struct{}

// NewRandomSource returns a RandomSource backed by the runtime's auto-seeded generator.
func NewRandomSource() RandomSource {
	return runtimeSource{}
}

func (runtimeSource) IntRange(low, high int) int {
	return low + rand.IntN(high-low)
}
