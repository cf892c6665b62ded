package schedule

import (
	"math"
	"math/rand"
	"sort"
)

// chooseZone draws a zone id from the union of all zone weights, using the
// same cumulative-weight draw idiom as the teacher's weighted stop sampling.
// Zones are visited in sorted order so the draw is reproducible — Go's map
// iteration order is randomized and would otherwise break the seed-determinism
// property (spec §8 property 7).
func chooseZone(rng *rand.Rand, prob ProbabilityCatalog) ZoneID {
	zones := make([]ZoneID, 0, len(prob))
	sum := 0.0
	for zone, p := range prob {
		zones = append(zones, zone)
		sum += p.Weight
	}
	sort.Slice(zones, func(i, j int) bool { return zones[i] < zones[j] })

	r := rng.Float64() * sum
	cum := 0.0
	for _, zone := range zones {
		cum += prob[zone].Weight
		if r <= cum {
			return zone
		}
	}
	return zones[len(zones)-1]
}

// chooseWeighted draws one key from a weight map via the same
// cumulative-draw idiom, visiting keys in sorted order for the same
// determinism reason as chooseZone. Returns "" if weights is empty.
func chooseWeighted(rng *rand.Rand, weights map[string]float64) string {
	keys := make([]string, 0, len(weights))
	sum := 0.0
	for k, w := range weights {
		keys = append(keys, k)
		sum += w
	}
	if sum <= 0 {
		return ""
	}
	sort.Strings(keys)

	r := rng.Float64() * sum
	cum := 0.0
	for _, k := range keys {
		cum += weights[k]
		if r <= cum {
			return k
		}
	}
	return keys[len(keys)-1]
}

// chooseBool draws true with probability p.
func chooseBool(rng *rand.Rand, p float64) bool {
	if p <= 0 {
		return false
	}
	if p >= 1 {
		return true
	}
	return rng.Float64() < p
}

// choosePrefWeight draws a preference weight uniformly from {5..10}.
func choosePrefWeight(rng *rand.Rand) float64 {
	return float64(5 + rng.Intn(6))
}

// roundToMinute rounds a Gaussian sample in seconds to the nearest whole
// minute, matching the source's round(gauss(...)/60)*60.
func roundToMinute(seconds float64) float64 {
	return math.Round(seconds/60) * 60
}
