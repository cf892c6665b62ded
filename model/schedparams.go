package model

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"gopkg.in/yaml.v3"
)

// HM is an (hours, minutes) pair as used throughout the scheduling
// parameters file and the schedule catalog's mean_arr entries.
type HM struct {
	H int
	M int
}

// Duration converts the pair to a time.Duration since midnight.
func (h HM) Duration() time.Duration {
	return time.Duration(h.H)*time.Hour + time.Duration(h.M)*time.Minute
}

// UnmarshalYAML decodes the original's [hours, minutes] sequence convention
// (flight_schedule.py's mean_arr), the same pair ZoneProbability.MeanArr is
// shaped like in the schedule catalog's YAML.
func (h *HM) UnmarshalYAML(value *yaml.Node) error {
	var pair [2]int
	if err := value.Decode(&pair); err != nil {
		return fmt.Errorf("decoding [h, m] pair: %w", err)
	}
	h.H, h.M = pair[0], pair[1]
	return nil
}

// SchedulingParams bounds the synthetic schedule's time window and
// classifies short vs. long turnarounds.
type SchedulingParams struct {
	TStart HM
	TEnd   HM
	TMin   HM
	TTow   HM

	// TBuf widens every turn's occupied interval before time-conflict and
	// adjacency overlap tests. It is a run-level knob, not part of the
	// scheduling-parameters file — the source passes it as a constructor
	// argument defaulting to 15 minutes, never loads it from a table.
	TBuf time.Duration
}

// DefaultTBuf matches the source's constructor default.
const DefaultTBuf = 15 * time.Minute

type rawHM [2]int

type rawSchedulingParams struct {
	TStart rawHM `json:"tstart"`
	TEnd   rawHM `json:"tend"`
	TMin   rawHM `json:"tmin"`
	TTow   rawHM `json:"ttow"`
}

// LoadSchedulingParamsFromReader decodes {tstart, tend, tmin, ttow}, each an
// (hours, minutes) pair. Absent tstart, tend and tmin default to 06:00, 23:59
// and 60 minutes. TBuf is set to DefaultTBuf; callers that need a different
// buffer should override the field after loading.
func LoadSchedulingParamsFromReader(r io.Reader) (SchedulingParams, error) {
	raw := rawSchedulingParams{TStart: rawHM{6, 0}, TEnd: rawHM{23, 59}, TMin: rawHM{1, 0}}
	if err := json.NewDecoder(r).Decode(&raw); err != nil {
		return SchedulingParams{}, fmt.Errorf("decoding scheduling parameters: %w", err)
	}
	p := SchedulingParams{
		TStart: HM{raw.TStart[0], raw.TStart[1]},
		TEnd:   HM{raw.TEnd[0], raw.TEnd[1]},
		TMin:   HM{raw.TMin[0], raw.TMin[1]},
		TTow:   HM{raw.TTow[0], raw.TTow[1]},
		TBuf:   DefaultTBuf,
	}
	if p.TEnd.Duration() <= p.TStart.Duration() {
		return SchedulingParams{}, fmt.Errorf("scheduling parameters: tend must be after tstart")
	}
	return p, nil
}

// DateAt combines a calendar date with an (hours, minutes) pair.
func DateAt(date time.Time, hm HM) time.Time {
	return time.Date(date.Year(), date.Month(), date.Day(), hm.H, hm.M, 0, 0, date.Location())
}
