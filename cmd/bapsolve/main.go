// Command bapsolve wires the library together: load input tables, build a
// schedule, decompose it, price it, build the MILP, solve it, report it —
// the way the teacher's main.go wires model/sim/driver together for a single
// simulation run.
package main

import (
	"context"
	"flag"
	"log"
	"net/http"
	"os"
	"time"

	"bap/backend/cache"
	"bap/backend/config"
	"bap/backend/cost"
	"bap/backend/decompose"
	"bap/backend/logging"
	"bap/backend/milp"
	"bap/backend/model"
	"bap/backend/monitor"
	"bap/backend/report"
	"bap/backend/schedule"
	"bap/backend/solver"
)

func main() {
	cfgPath := flag.String("config", "bapsolve.toml", "path to the TOML run configuration")
	dryRun := flag.Bool("dry-run", false, "build and price the model, write the LP file, but do not invoke the external solver")
	flag.Parse()

	if err := run(*cfgPath, *dryRun); err != nil {
		log.Fatalf("bapsolve: %v", err)
	}
}

func run(cfgPath string, dryRun bool) error {
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return err
	}

	logger := logging.New(logging.Options{Dir: cfg.Logging.Dir, Level: cfg.Logging.Level, Console: cfg.Logging.Console})
	runID := report.NewRunID()
	rlog := logger.WithRun(runID)

	var mon *monitor.Server
	var publish func(monitor.Event)
	if cfg.Monitor.ListenAddr != "" {
		mon = monitor.New()
		var closeRun func()
		publish, closeRun = mon.Register(runID)
		defer closeRun()
		go func() {
			rlog.Info("monitor listening", "addr", cfg.Monitor.ListenAddr)
			if err := serveMonitor(cfg.Monitor.ListenAddr, mon); err != nil {
				rlog.Error("monitor server stopped", "error", err)
			}
		}()
	} else {
		publish = func(monitor.Event) {}
	}

	start := time.Now()
	publish(monitor.RunStartedEvent{RunID: runID, Time: start, NFlights: cfg.Schedule.NFlights, Seed: cfg.Schedule.Seed})

	ac, bays, adj, costs, params, catalog, err := loadTables(cfg)
	if err != nil {
		publish(monitor.RunErrorEvent{Message: err.Error()})
		return err
	}

	scheduleDate, err := cfg.Schedule.ParsedDate()
	if err != nil {
		publish(monitor.RunErrorEvent{Message: err.Error()})
		return err
	}
	gen := schedule.New(ac, bays, catalog, params, scheduleDate, cfg.Schedule.Seed)
	turns, err := gen.Generate(cfg.Schedule.NFlights)
	if err != nil {
		publish(monitor.RunErrorEvent{Message: err.Error()})
		return err
	}
	publish(monitor.ScheduleGeneratedEvent{Turns: len(turns)})

	decomposed, err := decompose.Decompose(turns, ac, params.TTow)
	if err != nil {
		publish(monitor.RunErrorEvent{Message: err.Error()})
		return err
	}
	table := decomposed.Table
	publish(monitor.TurnsDecomposedEvent{Shorts: len(table.Shorts()), Fulls: len(table.Fulls()), Splits: len(table.Splits())})

	cb, err := cost.NewBuilder(ac, bays, costs)
	if err != nil {
		publish(monitor.RunErrorEvent{Message: err.Error()})
		return err
	}

	milpIn := milp.Input{
		Turns:     table,
		AC:        ac,
		Bays:      bays,
		Adjacency: adj,
		Costs:     cb,
		TBuf:      params.TBuf,
	}

	cacheKey, err := cache.Key(cfg.Schedule.Seed, cfg.Schedule.NFlights,
		cfg.Tables.Aircraft, cfg.Tables.Layout, cfg.Tables.Adjacency, cfg.Tables.Costs, cfg.Tables.SchedParams, cfg.Tables.Catalog)
	if err != nil {
		rlog.Warn("cache key derivation failed, continuing uncached", "error", err)
	} else if store, storeErr := cache.NewStore(".bapsolve-cache", 32); storeErr != nil {
		rlog.Warn("opening cost matrix cache failed, continuing uncached", "error", storeErr)
	} else if snap, hit, getErr := store.Get(cacheKey); getErr != nil {
		rlog.Warn("reading cost matrix cache failed, continuing uncached", "error", getErr)
	} else if hit {
		rlog.Info("cost matrix cache hit", "key", cacheKey)
		if turnCosts, towCosts, noBayCosts, convErr := cache.FromSnapshot(snap, table); convErr != nil {
			rlog.Warn("cost matrix cache entry unusable, recomputing", "error", convErr)
		} else {
			milpIn.TurnCosts, milpIn.TowCosts, milpIn.NoBayCosts = turnCosts, towCosts, noBayCosts
		}
	} else {
		turnCosts, tcErr := cb.BuildTurnCosts(table.All())
		towCosts, twErr := cb.BuildTowCosts(table.Fulls())
		noBayCosts, nbErr := cb.BuildNoBayCosts(table.ShortsAndFulls())
		if tcErr != nil || twErr != nil || nbErr != nil {
			publish(monitor.RunErrorEvent{Message: "pricing cost matrices failed"})
			if tcErr != nil {
				return tcErr
			}
			if twErr != nil {
				return twErr
			}
			return nbErr
		}
		milpIn.TurnCosts, milpIn.TowCosts, milpIn.NoBayCosts = turnCosts, towCosts, noBayCosts
		snap := cache.ToSnapshot(cfg.Schedule.Seed, cfg.Schedule.NFlights, turnCosts, towCosts, noBayCosts)
		if putErr := store.Put(cacheKey, snap); putErr != nil {
			rlog.Warn("writing cost matrix cache failed", "error", putErr)
		}
	}
	publish(monitor.CostsBuiltEvent{TurnCostEntries: len(milpIn.TurnCosts)})

	m, err := milp.Build(milpIn)
	if err != nil {
		publish(monitor.RunErrorEvent{Message: err.Error()})
		return err
	}
	publish(monitor.VariablesCreatedEvent{Count: len(m.Variables)})
	publish(monitor.ConstraintFamilyBuiltEvent{Family: "all", Count: len(m.Constraints)})

	if err := os.MkdirAll(cfg.Report.Dir, 0o755); err != nil {
		return err
	}

	adapter := solver.Adapter{Path: cfg.Solver.Path, Args: cfg.Solver.Args, Timeout: cfg.Solver.Timeout(), Diagnose: &milpIn}
	lpPath := cfg.Report.Dir + "/" + m.Name + ".lp"
	lpFile, err := os.Create(lpPath)
	if err != nil {
		return err
	}
	if err := solver.WriteLP(lpFile, m); err != nil {
		lpFile.Close()
		return err
	}
	lpFile.Close()

	if dryRun || cfg.Solver.Path == "" {
		rlog.Info("dry run: LP written, external solver not invoked", "path", lpPath)
		return nil
	}

	publish(monitor.SolverInvokedEvent{Path: cfg.Solver.Path})
	sol, err := adapter.Solve(context.Background(), m, cfg.Report.Dir)
	if err != nil {
		publish(monitor.RunErrorEvent{Message: err.Error()})
		return err
	}
	solveDur := time.Since(start)
	publish(monitor.SolverDoneEvent{Objective: sol.Objective, SolveSeconds: solveDur.Seconds()})

	towed := make(map[model.TurnID]bool)
	assignments := make(map[model.TurnID]model.BayKey)
	noBay := make(map[model.TurnID]bool)
	for _, full := range table.Fulls() {
		if sol.Value(milp.WName(full.ID)) {
			towed[full.ID] = true
		}
	}
	for _, turn := range table.ShortsAndFulls() {
		if sol.Value(milp.YName(turn.ID)) {
			noBay[turn.ID] = true
		}
	}
	for _, key := range bays.Keys() {
		for _, turn := range table.All() {
			if sol.Value(milp.XName(turn.ID, key)) {
				assignments[turn.ID] = key
			}
		}
	}

	rpt := report.Build(runID, cfg.Schedule.Seed, cfg.Schedule.NFlights, sol.Objective, solveDur, table.All(), bays, towed, assignments, noBay)
	if path, err := report.WriteJSON(cfg.Report.Dir, rpt); err != nil {
		rlog.Error("writing report failed", "error", err)
	} else {
		rlog.Info("report written", "path", path)
	}
	report.PrintConsole(rpt)
	return nil
}

func serveMonitor(addr string, mon *monitor.Server) error {
	srv := &http.Server{Addr: addr, Handler: mon.Mux()}
	return srv.ListenAndServe()
}
