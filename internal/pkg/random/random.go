// Package random adapts an rpg-toolkit dice roller into the chance, index and
// weighted picks used by loot generation and combat.
package random

import (
	"fmt"
	"math"

	"github.com/KirkDiggler/rpg-toolkit/dice"
)

// chanceDie is the die rolled for percentage checks; it gives 0.01% resolution
const chanceDie = 10000

// Weighted pairs a value with its selection weight
type Weighted[T any] struct {
	Value  T
	Weight int
}

// Source turns dice rolls into game decisions
type Source struct {
	roller dice.Roller
}

// New creates a Source. A nil roller uses the toolkit's default roller.
func New(roller dice.Roller) *Source {
	if roller == nil {
		roller = dice.DefaultRoller
	}
	return &Source{roller: roller}
}

// NewSeeded creates a deterministic Source for tests and reproducible runs
func NewSeeded(seed int64) *Source {
	return New(NewSeededRoller(seed))
}

// Chance reports whether an event with probability p happens
func (s *Source) Chance(p float64) bool {
	if p <= 0 {
		return false
	}
	if p >= 1 {
		return true
	}
	threshold := int(math.Round(p * chanceDie))
	return s.roll(chanceDie) <= threshold
}

// Intn returns a uniform value in [0, n). n must be positive.
func (s *Source) Intn(n int) int {
	if n <= 0 {
		panic(fmt.Sprintf("random: Intn called with n=%d", n))
	}
	if n == 1 {
		return 0
	}
	return s.roll(n) - 1
}

func (s *Source) roll(size int) int {
	v, err := s.roller.Roll(size)
	if err != nil {
		// size is always positive here, so a failure means the roller itself is broken
		panic(fmt.Sprintf("random: roll d%d failed: %v", size, err))
	}
	return v
}

// Pick returns one of the options at random, honouring their weights.
// Selection walks the options in order, subtracting each weight from the
// roll until it reaches zero.
func Pick[T any](s *Source, options []Weighted[T]) T {
	total := 0
	for _, o := range options {
		if o.Weight > 0 {
			total += o.Weight
		}
	}
	if total == 0 {
		panic("random: Pick needs at least one positive weight")
	}

	remaining := s.Intn(total) + 1
	for _, o := range options {
		if o.Weight <= 0 {
			continue
		}
		remaining -= o.Weight
		if remaining <= 0 {
			return o.Value
		}
	}

	// unreachable while weights are summed above
	return options[len(options)-1].Value
}

// Choose returns a uniformly selected element of values
func Choose[T any](s *Source, values []T) T {
	return values[s.Intn(len(values))]
}
