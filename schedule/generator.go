package schedule

import (
	"fmt"
	"math/rand"
	"sort"
	"strconv"
	"time"

	"bap/backend/model"
)

// Generator samples a synthetic day's flight schedule. It is deterministic
// given a seed: the same seed, catalog, tables, and nflights always produce
// byte-identical turns (property 7, spec §8).
type Generator struct {
	AC     model.AircraftTable
	Bays   model.BayMap
	Catalog Catalog
	Params model.SchedulingParams
	Date   time.Time
	rng    *rand.Rand
}

// New returns a Generator seeded for reproducible sampling.
func New(ac model.AircraftTable, bays model.BayMap, catalog Catalog, params model.SchedulingParams, date time.Time, seed int64) *Generator {
	return &Generator{
		AC:      ac,
		Bays:    bays,
		Catalog: catalog,
		Params:  params,
		Date:    date,
		rng:     rand.New(rand.NewSource(seed)),
	}
}

// Generate samples nflights turns, numbered "1".."nflights".
func (g *Generator) Generate(nflights int) ([]model.Turn, error) {
	tstart := model.DateAt(g.Date, g.Params.TStart)
	tend := model.DateAt(g.Date, g.Params.TEnd)
	tmin := g.Params.TMin.Duration()
	ttow := g.Params.TTow.Duration()

	turns := make([]model.Turn, 0, nflights)
	for n := 1; n <= nflights; n++ {
		zone := chooseZone(g.rng, g.Catalog.Prob)
		zp, ok := g.Catalog.Prob[zone]
		if !ok {
			return nil, fmt.Errorf("schedule: zone %d not found in probability catalog", zone)
		}
		ter := zp.Type

		tw, ok := g.Catalog.Weights[ter]
		if !ok {
			return nil, fmt.Errorf("schedule: terminal %s has no weights entry", ter)
		}
		acID := chooseWeighted(g.rng, tw.AC)
		if acID == "" {
			return nil, fmt.Errorf("schedule: terminal %s has an empty AC weight table", ter)
		}
		ac, err := g.AC.Lookup(acID)
		if err != nil {
			return nil, fmt.Errorf("schedule: %w", err)
		}

		meanArr := model.DateAt(g.Date, zp.MeanArr)
		meanLen := time.Duration(zp.MeanLen) * time.Minute
		eta, etd := g.sampleTimes(meanArr, zp.StdArr, meanLen, zp.StdLen, tstart, tend, tmin)

		turn := model.Turn{
			ID:       model.NewBareTurnID(strconv.Itoa(n)),
			AC:       ac.ID,
			ETA:      eta,
			ETD:      etd,
			Terminal: ter,
		}

		if etd.Sub(eta) > ttow && ac.Cat != 'A' && ac.Cat != 'H' {
			if chooseBool(g.rng, tw.Tow) {
				turn.Tow = true
			}
		}

		if ac.Cat != 'A' {
			if chooseBool(g.rng, tw.Pref) {
				pref, ok := g.samplePref(ter, ac.Cat)
				if ok {
					turn.Pref = &pref
				}
			}
		}

		turns = append(turns, turn)
	}
	return turns, nil
}

// sampleTimes draws ETA/ETD via the rejection loop of spec §4.2 step 4: keep
// resampling the arrival and length offsets until the resulting window fits
// inside [tstart, tend] with at least tmin of runway.
func (g *Generator) sampleTimes(meanArr time.Time, stdArr float64, meanLen time.Duration, stdLen float64, tstart, tend time.Time, tmin time.Duration) (eta, etd time.Time) {
	negDeltaStart := -meanArr.Sub(tstart).Seconds()
	tendMinusMeanArr := tend.Sub(meanArr).Seconds()
	tminSec := tmin.Seconds()
	meanLenSec := meanLen.Seconds()

	var arr, leng float64
	for first := true; first || negDeltaStart >= arr || arr >= tendMinusMeanArr-tminSec ||
		meanLenSec+leng <= tminSec || leng >= tendMinusMeanArr-meanLenSec-arr; first = false {
		arr = roundToMinute(g.rng.NormFloat64() * stdArr * 60)
		leng = roundToMinute(g.rng.NormFloat64() * stdLen * 60)
	}

	eta = meanArr.Add(time.Duration(arr) * time.Second)
	etd = meanArr.Add(meanLen).Add(time.Duration(arr+leng) * time.Second)
	return eta, etd
}

// samplePref picks a preferred bay uniformly among ter's bays admitting cat
// and not of size Bus, plus a uniform weight in {5..10}.
func (g *Generator) samplePref(ter model.TerminalID, cat model.Category) (model.Pref, bool) {
	bays := g.Bays[ter]
	candidates := make([]int, 0, len(bays))
	for idx, bay := range bays {
		if bay.Cat.Admits(cat) && bay.Size != model.SizeB {
			candidates = append(candidates, idx)
		}
	}
	if len(candidates) == 0 {
		return model.Pref{}, false
	}
	sort.Ints(candidates)
	chosen := candidates[g.rng.Intn(len(candidates))]
	return model.Pref{Terminal: ter, Bay: chosen, Weight: choosePrefWeight(g.rng)}, true
}
