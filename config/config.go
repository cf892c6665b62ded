// Package config loads the TOML run configuration for a bapsolve invocation,
// the way the pack's toml-consuming examples shape their scenario files,
// while the domain reference tables stay on model's JSON/YAML loaders.
package config

import (
	"fmt"
	"time"

	"github.com/BurntSushi/toml"
)

// RunConfig is the full configuration for one cmd/bapsolve invocation.
type RunConfig struct {
	Solver   SolverConfig   `toml:"solver"`
	Schedule ScheduleConfig `toml:"schedule"`
	Tables   TablesConfig   `toml:"tables"`
	Report   ReportConfig   `toml:"report"`
	Monitor  MonitorConfig  `toml:"monitor"`
	Logging  LoggingConfig  `toml:"logging"`
}

// SolverConfig points at the external MILP solver binary.
type SolverConfig struct {
	Path           string   `toml:"path"`
	Args           []string `toml:"args"`
	TimeoutSeconds int      `toml:"timeout_seconds"`
}

// Timeout converts TimeoutSeconds to a time.Duration, defaulting to 5 minutes.
func (s SolverConfig) Timeout() time.Duration {
	if s.TimeoutSeconds <= 0 {
		return 5 * time.Minute
	}
	return time.Duration(s.TimeoutSeconds) * time.Second
}

// ScheduleConfig parameterizes the synthetic schedule generator.
type ScheduleConfig struct {
	Seed     int64  `toml:"seed"`
	NFlights int    `toml:"nflights"`
	Date     string `toml:"date"` // RFC3339 date, e.g. "2026-07-30"
}

// ParsedDate parses Date as a bare RFC3339 date (no time-of-day component),
// the calendar day the generated schedule's ETA/ETD offsets are anchored to.
// An empty Date defaults to the current day, so a config written without it
// still runs.
func (s ScheduleConfig) ParsedDate() (time.Time, error) {
	if s.Date == "" {
		return time.Now(), nil
	}
	t, err := time.Parse("2006-01-02", s.Date)
	if err != nil {
		return time.Time{}, fmt.Errorf("config: parsing schedule.date %q: %w", s.Date, err)
	}
	return t, nil
}

// TablesConfig names the reference table files on disk.
type TablesConfig struct {
	Aircraft     string `toml:"aircraft"`
	Layout       string `toml:"layout"`
	Adjacency    string `toml:"adjacency"`
	Costs        string `toml:"costs"`
	SchedParams  string `toml:"sched_params"`
	Catalog      string `toml:"catalog"`
}

// ReportConfig configures where the JSON report is written.
type ReportConfig struct {
	Dir string `toml:"dir"`
}

// MonitorConfig configures the optional HTTP progress/health surface.
// ListenAddr empty disables the monitor entirely.
type MonitorConfig struct {
	ListenAddr string `toml:"listen_addr"`
}

// LoggingConfig configures the rotating structured logger.
type LoggingConfig struct {
	Dir     string `toml:"dir"`
	Level   string `toml:"level"`
	Console bool   `toml:"console"`
}

// Load decodes a RunConfig from a TOML file at path, applying defaults for
// anything left unset.
func Load(path string) (RunConfig, error) {
	var cfg RunConfig
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return RunConfig{}, fmt.Errorf("config: decoding %s: %w", path, err)
	}
	cfg.applyDefaults()
	return cfg, nil
}

func (c *RunConfig) applyDefaults() {
	if c.Schedule.NFlights <= 0 {
		c.Schedule.NFlights = 200
	}
	if c.Tables.Aircraft == "" {
		c.Tables.Aircraft = "data/aircraft.json"
	}
	if c.Tables.Layout == "" {
		c.Tables.Layout = "data/terminals.json"
	}
	if c.Tables.Adjacency == "" {
		c.Tables.Adjacency = "data/adjacency.json"
	}
	if c.Tables.Costs == "" {
		c.Tables.Costs = "data/costs.json"
	}
	if c.Tables.SchedParams == "" {
		c.Tables.SchedParams = "data/sched_params.json"
	}
	if c.Tables.Catalog == "" {
		c.Tables.Catalog = "data/catalog.yaml"
	}
	if c.Report.Dir == "" {
		c.Report.Dir = "reports"
	}
}
