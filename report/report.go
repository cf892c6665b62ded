// Package report writes the end-of-run solve summary, adapted from the
// reference pack's CSV bus report into a JSON document (spec §6).
package report

import (
	"encoding/json"
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"time"

	"bap/backend/model"
)

const timestampLayout = "2006/01/02 15:04:05"

// Assignment is one turn's final (terminal, bay) placement, or its fallback.
type Assignment struct {
	Turn     string `json:"turn"`
	Terminal string `json:"terminal,omitempty"`
	Bay      int    `json:"bay,omitempty"`
	Towed    bool   `json:"towed,omitempty"`
	NoBay    bool   `json:"no_bay,omitempty"`
}

// ScheduleEntry echoes one input turn's request, so a report is
// self-contained without the tables it was solved against.
type ScheduleEntry struct {
	Turn         string  `json:"turn"`
	AC           string  `json:"ac"`
	ETA          string  `json:"eta"`
	ETD          string  `json:"etd"`
	Terminal     string  `json:"terminal"`
	PrefTerminal string  `json:"pref_terminal,omitempty"`
	PrefBay      int     `json:"pref_bay,omitempty"`
	PrefWeight   float64 `json:"pref_weight,omitempty"`
}

// BayEntry echoes one bay of the layout the schedule was solved against.
type BayEntry struct {
	Terminal string  `json:"terminal"`
	Index    int     `json:"index"`
	Size     string  `json:"size"`
	Dist     float64 `json:"dist"`
}

// Report is the full JSON solve summary.
type Report struct {
	RunID        string          `json:"run_id"`
	GeneratedAt  string          `json:"generated_at"`
	NFlights     int             `json:"nflights"`
	Seed         int64           `json:"seed"`
	Objective    float64         `json:"objective"`
	SolveSeconds float64         `json:"solve_seconds"`
	TowedCount   int             `json:"towed_count"`
	NoBayCount   int             `json:"no_bay_count"`
	Schedule     []ScheduleEntry `json:"schedule"`
	Bays         []BayEntry      `json:"bays"`
	Assignments  []Assignment    `json:"assignments"`
}

// NewRunID mints a run identifier the way the teacher's SSE server mints a
// per-connection id: no external id generator in the pack, just a
// timestamp/random pair.
func NewRunID() string {
	return fmt.Sprintf("%d-%d", time.Now().UnixNano(), rand.Int63())
}

// Build assembles a Report from a solved model's variable valuation. allTurns
// and bays are echoed verbatim (spec §6: "echoed schedule, bays, variable
// valuations, solve time, objective value, timestamps") so the report is
// self-contained without the input tables it was solved against.
func Build(runID string, seed int64, nflights int, objective float64, solveDur time.Duration, allTurns []model.Turn, bays model.BayMap, towed map[model.TurnID]bool, assignments map[model.TurnID]model.BayKey, noBay map[model.TurnID]bool) Report {
	r := Report{
		RunID:        runID,
		GeneratedAt:  time.Now().Format(timestampLayout),
		NFlights:     nflights,
		Seed:         seed,
		Objective:    objective,
		SolveSeconds: solveDur.Seconds(),
	}
	for _, turn := range allTurns {
		se := ScheduleEntry{
			Turn:     turn.ID.String(),
			AC:       turn.AC,
			ETA:      turn.ETA.Format(timestampLayout),
			ETD:      turn.ETD.Format(timestampLayout),
			Terminal: string(turn.Terminal),
		}
		if turn.Pref != nil {
			se.PrefTerminal = string(turn.Pref.Terminal)
			se.PrefBay = turn.Pref.Bay
			se.PrefWeight = turn.Pref.Weight
		}
		r.Schedule = append(r.Schedule, se)

		a := Assignment{Turn: turn.ID.String()}
		if bay, ok := assignments[turn.ID]; ok {
			a.Terminal = string(bay.Terminal)
			a.Bay = bay.Index
		}
		if towed[turn.ID] {
			a.Towed = true
			r.TowedCount++
		}
		if noBay[turn.ID] {
			a.NoBay = true
			r.NoBayCount++
		}
		r.Assignments = append(r.Assignments, a)
	}
	for _, key := range bays.Keys() {
		bay, _ := bays.Lookup(key)
		r.Bays = append(r.Bays, BayEntry{
			Terminal: string(key.Terminal),
			Index:    key.Index,
			Size:     string(rune(bay.Size)),
			Dist:     bay.Dist,
		})
	}
	return r
}

// WriteJSON writes the report to dir, timestamped the way the teacher's
// WriteCSVReport names its file, and returns the path written.
func WriteJSON(dir string, r Report) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("report: creating %s: %w", dir, err)
	}
	ts := time.Now().Format("20060102-150405")
	path := filepath.Join(dir, fmt.Sprintf("report-%s.json", ts))

	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("report: creating %s: %w", path, err)
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(r); err != nil {
		return "", fmt.Errorf("report: encoding %s: %w", path, err)
	}
	return path, nil
}

// PrintConsole prints a human-readable summary, adapted from the teacher's
// PrintConsoleReport.
func PrintConsole(r Report) {
	fmt.Println("=== Bay Assignment Report ===")
	fmt.Printf("Run: %s\n", r.RunID)
	fmt.Printf("Flights: %d (seed %d)\n", r.NFlights, r.Seed)
	fmt.Printf("Objective: %.2f\n", r.Objective)
	fmt.Printf("Solve time: %.2fs\n", r.SolveSeconds)
	fmt.Printf("Towed: %d\n", r.TowedCount)
	fmt.Printf("No-bay fallback: %d\n", r.NoBayCount)
}
