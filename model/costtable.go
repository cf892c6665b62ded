package model

import (
	"encoding/json"
	"fmt"
	"io"
)

// CostTable holds the per-category tow and no-bay cost tables, plus the
// wrong-terminal penalty multiplier.
type CostTable struct {
	Tow        map[Category]float64
	NoBay      map[Category]float64
	TerPenalty float64
}

// Validate checks the monotonicity invariant every category must satisfy:
// the no-bay fallback must always cost strictly more than towing, so the
// solver only ever reaches for y as a last resort (property 6, spec §8).
func (c CostTable) Validate() error {
	for cat, tow := range c.Tow {
		nobay, ok := c.NoBay[cat]
		if !ok {
			return fmt.Errorf("cost table: category %s has a tow cost but no no-bay cost", cat)
		}
		if !(tow < nobay) {
			return fmt.Errorf("cost table: category %s: tow cost %.2f must be strictly less than no-bay cost %.2f", cat, tow, nobay)
		}
	}
	return nil
}

type rawCostTable struct {
	Tow        map[string]float64 `json:"tow"`
	NoBay      map[string]float64 `json:"nobay"`
	TerPenalty float64            `json:"ter_penalty"`
}

// LoadCostTableFromReader decodes {tow: {cat->cost}, nobay: {cat->cost},
// ter_penalty}. ter_penalty defaults to 100 (the spec's illustrative value)
// when absent or zero.
func LoadCostTableFromReader(r io.Reader) (CostTable, error) {
	var raw rawCostTable
	if err := json.NewDecoder(r).Decode(&raw); err != nil {
		return CostTable{}, fmt.Errorf("decoding cost table: %w", err)
	}
	out := CostTable{
		Tow:        make(map[Category]float64, len(raw.Tow)),
		NoBay:      make(map[Category]float64, len(raw.NoBay)),
		TerPenalty: raw.TerPenalty,
	}
	if out.TerPenalty == 0 {
		out.TerPenalty = 100
	}
	for cat, cost := range raw.Tow {
		c, err := parseCategory(cat)
		if err != nil {
			return CostTable{}, fmt.Errorf("cost table tow: %w", err)
		}
		out.Tow[c] = cost
	}
	for cat, cost := range raw.NoBay {
		c, err := parseCategory(cat)
		if err != nil {
			return CostTable{}, fmt.Errorf("cost table nobay: %w", err)
		}
		out.NoBay[c] = cost
	}
	if err := out.Validate(); err != nil {
		return CostTable{}, err
	}
	return out, nil
}
