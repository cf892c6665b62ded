// Package schedule samples a synthetic day's flight schedule from a
// parametric probability model: per-zone Gaussian arrival/length offsets and
// per-terminal aircraft/tow/preference weights.
package schedule

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"bap/backend/model"
)

// ZoneID identifies one time-zone bucket of the probability catalog.
type ZoneID int

// ZoneProbability is one zone's sampling parameters.
type ZoneProbability struct {
	Weight  float64        `yaml:"weight"`
	Type    model.TerminalID `yaml:"type"`
	MeanArr model.HM       `yaml:"mean_arr"`
	StdArr  float64        `yaml:"std_arr"`
	MeanLen float64        `yaml:"mean_len"` // minutes
	StdLen  float64        `yaml:"std_len"`
}

// ProbabilityCatalog maps zone id to its sampling parameters.
type ProbabilityCatalog map[ZoneID]ZoneProbability

// TerminalWeights is one terminal-type's aircraft/tow/preference weights.
type TerminalWeights struct {
	AC   map[string]float64 `yaml:"AC"`
	Tow  float64            `yaml:"tow"`
	Pref float64            `yaml:"pref"`
}

// WeightsCatalog maps terminal id to its weights.
type WeightsCatalog map[model.TerminalID]TerminalWeights

// Catalog bundles both YAML-authored tuning files consumed by the generator.
type Catalog struct {
	Prob    ProbabilityCatalog
	Weights WeightsCatalog
}

type rawCatalog struct {
	Prob    map[int]ZoneProbability  `yaml:"prob"`
	Weights map[string]TerminalWeights `yaml:"weights"`
}

// LoadCatalogFromReader decodes the combined {prob, weights} YAML document
// edited by airport-ops analysts (see DESIGN.md for why YAML, not JSON).
func LoadCatalogFromReader(r io.Reader) (Catalog, error) {
	var raw rawCatalog
	dec := yaml.NewDecoder(r)
	if err := dec.Decode(&raw); err != nil {
		return Catalog{}, fmt.Errorf("decoding schedule catalog: %w", err)
	}
	cat := Catalog{
		Prob:    make(ProbabilityCatalog, len(raw.Prob)),
		Weights: make(WeightsCatalog, len(raw.Weights)),
	}
	for zone, p := range raw.Prob {
		cat.Prob[ZoneID(zone)] = p
	}
	for terminal, w := range raw.Weights {
		cat.Weights[model.TerminalID(terminal)] = w
	}
	if len(cat.Prob) == 0 {
		return Catalog{}, fmt.Errorf("schedule catalog: prob section is empty")
	}
	if len(cat.Weights) == 0 {
		return Catalog{}, fmt.Errorf("schedule catalog: weights section is empty")
	}
	return cat, nil
}
