package prize

import (
	"encoding/json"
	"errors"
	"fmt"
)

var (
	ErrEmptyTierTable = errors.New("tier table is empty")
	ErrInvalidTier    = errors.New("invalid tier configuration")
)

// Item is one physical reward inside a prize.
type Item struct {
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
}

// Option is a prize a tier can award. Weight is the relative likelihood
// within its tier; weights are not comparable across tiers.
type Option struct {
	Name   string `json:"name"`
	Items  []Item `json:"items"`
	Weight int    `json:"weight"`
}

// Tier is an inclusive purchase-amount range with its weighted prize list.
type Tier struct {
	MinAmount float64  `json:"min"`
	MaxAmount float64  `json:"max"`
	Name      string   `json:"name"`
	Prizes    []Option `json:"prizes"`
}

// Table is the validated, ordered tier configuration. Constructed once at
// startup and passed in explicitly; never mutated afterwards.
type Table struct {
	tiers []Tier
}

func NewTable(tiers []Tier) (Table, error) {
	if len(tiers) == 0 {
		return Table{}, ErrEmptyTierTable
	}
	for _, t := range tiers {
		if t.Name == "" {
			return Table{}, fmt.Errorf("%w: tier without a name", ErrInvalidTier)
		}
		if t.MinAmount > t.MaxAmount {
			return Table{}, fmt.Errorf("%w: tier %q has min %.2f above max %.2f", ErrInvalidTier, t.Name, t.MinAmount, t.MaxAmount)
		}
		if len(t.Prizes) == 0 {
			return Table{}, fmt.Errorf("%w: tier %q has no prizes", ErrInvalidTier, t.Name)
		}
		for _, p := range t.Prizes {
			if p.Weight <= 0 {
				return Table{}, fmt.Errorf("%w: prize %q in tier %q has non-positive weight %d", ErrInvalidTier, p.Name, t.Name, p.Weight)
			}
		}
	}
	out := make([]Tier, len(tiers))
	copy(out, tiers)
	return Table{tiers: out}, nil
}

// ResolveTier returns the first tier whose inclusive range contains amount.
// An amount above every configured range resolves to the last tier: a
// high-value purchaser must never lose a prize to a configuration gap.
func (t Table) ResolveTier(amount float64) (Tier, error) {
	if len(t.tiers) == 0 {
		return Tier{}, ErrEmptyTierTable
	}
	for _, tier := range t.tiers {
		if amount >= tier.MinAmount && amount <= tier.MaxAmount {
			return tier, nil
		}
	}
	return t.tiers[len(t.tiers)-1], nil
}

func (t Table) Tiers() []Tier {
	out := make([]Tier, len(t.tiers))
	copy(out, t.tiers)
	return out
}

// ParseTiers decodes a PRIZE_TIERS JSON blob. An unset blob yields the
// built-in default tiers; an explicitly empty list is returned as-is so
// NewTable rejects it at startup instead of awarding defaults nobody
// configured.
func ParseTiers(blob string) ([]Tier, error) {
	if blob == "" {
		return DefaultTiers(), nil
	}
	var tiers []Tier
	if err := json.Unmarshal([]byte(blob), &tiers); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidTier, err)
	}
	return tiers, nil
}

// DefaultTiers is the margin-protected fallback configuration: cheapest
// prizes carry the highest weights.
func DefaultTiers() []Tier {
	return []Tier{
		{
			MinAmount: 100, MaxAmount: 299, Name: "Bronze",
			Prizes: []Option{
				{Name: "1 Tealight Candle", Items: []Item{{Name: "Tealight Candle", Quantity: 1}}, Weight: 50},
				{Name: "3 Tealight Candles", Items: []Item{{Name: "Tealight Candle", Quantity: 3}}, Weight: 30},
				{Name: "4 Tealight Candles", Items: []Item{{Name: "Tealight Candle", Quantity: 4}}, Weight: 15},
				{Name: "5 Tealight Candles", Items: []Item{{Name: "Tealight Candle", Quantity: 5}}, Weight: 5},
			},
		},
		{
			MinAmount: 300, MaxAmount: 499, Name: "Silver",
			Prizes: []Option{
				{Name: "1 Heart + 2 Tealights", Items: []Item{{Name: "Heart Tealight Candle", Quantity: 1}, {Name: "Tealight Candle", Quantity: 2}}, Weight: 45},
				{Name: "1 Heart + 3 Tealights", Items: []Item{{Name: "Heart Tealight Candle", Quantity: 1}, {Name: "Tealight Candle", Quantity: 3}}, Weight: 30},
				{Name: "2 Hearts + 2 Tealights", Items: []Item{{Name: "Heart Tealight Candle", Quantity: 2}, {Name: "Tealight Candle", Quantity: 2}}, Weight: 20},
				{Name: "2 Heart Candles", Items: []Item{{Name: "Heart Tealight Candle", Quantity: 2}}, Weight: 5},
			},
		},
		{
			MinAmount: 500, MaxAmount: 1000, Name: "Gold",
			Prizes: []Option{
				{Name: "1 Damru + 3 Hearts", Items: []Item{{Name: "Damru Candle", Quantity: 1}, {Name: "Heart Tealight Candle", Quantity: 3}}, Weight: 40},
				{Name: "1 Damru + 3 Hearts + 2 Tealights", Items: []Item{{Name: "Damru Candle", Quantity: 1}, {Name: "Heart Tealight Candle", Quantity: 3}, {Name: "Tealight Candle", Quantity: 2}}, Weight: 30},
				{Name: "1 Damru + 4 Hearts", Items: []Item{{Name: "Damru Candle", Quantity: 1}, {Name: "Heart Tealight Candle", Quantity: 4}}, Weight: 20},
				{Name: "1 Damru + 5 Hearts", Items: []Item{{Name: "Damru Candle", Quantity: 1}, {Name: "Heart Tealight Candle", Quantity: 5}}, Weight: 8},
				{Name: "2 Damru + 2 Hearts", Items: []Item{{Name: "Damru Candle", Quantity: 2}, {Name: "Heart Tealight Candle", Quantity: 2}}, Weight: 2},
			},
		},
	}
}
