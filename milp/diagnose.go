package milp

import "bap/backend/model"

// Diagnose inspects Input for the two structural infeasibility patterns spec
// §8 "Infeasibility" calls out: a mandatory-tow long turn whose Arrival/
// Departure or Parking split has no admissible bay at all (so its split
// constraint can never satisfy the tow-forced w==1), and a pair of turns
// whose buffered windows overlap but whose admissible-bay sets share nothing
// in common. Neither is a full infeasibility proof — only the solver knows
// that for certain — but both are the most likely culprits when one shows
// up, so the external solver adapter surfaces them on a detected-infeasible
// result instead of just naming the LP file.
func Diagnose(in Input) (suspectLongTurns []string, suspectPairs [][2]string, err error) {
	for _, full := range in.Turns.Fulls() {
		if !full.Tow {
			continue
		}
		aircraft, lookupErr := in.AC.Lookup(full.AC)
		if lookupErr != nil {
			return nil, nil, lookupErr
		}
		var nonBus, bus []model.BayKey
		for _, key := range in.Costs.AdmissibleBaysAll(aircraft.Cat) {
			if key.Terminal == model.BUS {
				bus = append(bus, key)
			} else {
				nonBus = append(nonBus, key)
			}
		}
		if len(nonBus) == 0 || len(bus) == 0 {
			suspectLongTurns = append(suspectLongTurns, full.ID.String())
		}
	}

	for _, pair := range overlappingPairs(in.Turns.All(), in.TBuf) {
		i1, i2 := pair[0], pair[1]
		ac1, lookupErr := in.AC.Lookup(i1.AC)
		if lookupErr != nil {
			return nil, nil, lookupErr
		}
		ac2, lookupErr := in.AC.Lookup(i2.AC)
		if lookupErr != nil {
			return nil, nil, lookupErr
		}
		other := keySet(in.Costs.AdmissibleBaysAll(ac2.Cat))
		shared := false
		for _, key := range in.Costs.AdmissibleBaysAll(ac1.Cat) {
			if other[key] {
				shared = true
				break
			}
		}
		if !shared {
			suspectPairs = append(suspectPairs, [2]string{i1.ID.String(), i2.ID.String()})
		}
	}
	return suspectLongTurns, suspectPairs, nil
}
