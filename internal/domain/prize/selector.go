package prize

import (
	"errors"
	"math/rand"
)

var ErrNonPositiveTotalWeight = errors.New("tier has non-positive total weight")

// Selector draws one option from a tier's weighted prize list. It is pure
// apart from the injected random source and safe for concurrent use.
type Selector struct {
	randFloat func() float64
}

func NewSelector() *Selector {
	return &Selector{randFloat: rand.Float64}
}

// NewSelectorWithRand pins the random source; randFloat must return values
// in [0, 1).
func NewSelectorWithRand(randFloat func() float64) *Selector {
	return &Selector{randFloat: randFloat}
}

// Select performs a cumulative-weight draw: probability of option i is
// weight_i / totalWeight. A remainder hitting exactly zero selects the
// current option, matching the configured odds at float boundaries.
func (s *Selector) Select(tier Tier) (Option, error) {
	totalWeight := 0
	for _, p := range tier.Prizes {
		totalWeight += p.Weight
	}
	if totalWeight <= 0 {
		return Option{}, ErrNonPositiveTotalWeight
	}

	remaining := s.randFloat() * float64(totalWeight)
	for _, p := range tier.Prizes {
		remaining -= float64(p.Weight)
		if remaining <= 0 {
			return p, nil
		}
	}

	// Rounding can leave a sliver of remainder after the walk; the last
	// declared option takes it.
	return tier.Prizes[len(tier.Prizes)-1], nil
}
