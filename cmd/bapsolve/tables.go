package main

import (
	"fmt"
	"os"

	"bap/backend/config"
	"bap/backend/layout"
	"bap/backend/model"
	"bap/backend/schedule"
)

func loadTables(cfg config.RunConfig) (model.AircraftTable, model.BayMap, model.AdjacencyTable, model.CostTable, model.SchedulingParams, schedule.Catalog, error) {
	ac, err := loadAircraft(cfg.Tables.Aircraft)
	if err != nil {
		return nil, nil, nil, model.CostTable{}, model.SchedulingParams{}, schedule.Catalog{}, err
	}
	bays, err := loadLayout(cfg.Tables.Layout)
	if err != nil {
		return nil, nil, nil, model.CostTable{}, model.SchedulingParams{}, schedule.Catalog{}, err
	}
	adj, err := loadAdjacency(cfg.Tables.Adjacency)
	if err != nil {
		return nil, nil, nil, model.CostTable{}, model.SchedulingParams{}, schedule.Catalog{}, err
	}
	costs, err := loadCosts(cfg.Tables.Costs)
	if err != nil {
		return nil, nil, nil, model.CostTable{}, model.SchedulingParams{}, schedule.Catalog{}, err
	}
	params, err := loadSchedParams(cfg.Tables.SchedParams)
	if err != nil {
		return nil, nil, nil, model.CostTable{}, model.SchedulingParams{}, schedule.Catalog{}, err
	}
	catalog, err := loadCatalog(cfg.Tables.Catalog)
	if err != nil {
		return nil, nil, nil, model.CostTable{}, model.SchedulingParams{}, schedule.Catalog{}, err
	}
	return ac, bays, adj, costs, params, catalog, nil
}

func loadAircraft(path string) (model.AircraftTable, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening aircraft table %s: %w", path, err)
	}
	defer f.Close()
	return model.LoadAircraftTableFromReader(f)
}

func loadLayout(path string) (model.BayMap, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening terminal layout %s: %w", path, err)
	}
	defer f.Close()
	desc, err := model.LoadLayoutFromReader(f)
	if err != nil {
		return nil, err
	}
	return layout.Build(desc)
}

func loadAdjacency(path string) (model.AdjacencyTable, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening adjacency table %s: %w", path, err)
	}
	defer f.Close()
	return model.LoadAdjacencyTableFromReader(f)
}

func loadCosts(path string) (model.CostTable, error) {
	f, err := os.Open(path)
	if err != nil {
		return model.CostTable{}, fmt.Errorf("opening cost table %s: %w", path, err)
	}
	defer f.Close()
	return model.LoadCostTableFromReader(f)
}

func loadSchedParams(path string) (model.SchedulingParams, error) {
	f, err := os.Open(path)
	if err != nil {
		return model.SchedulingParams{}, fmt.Errorf("opening scheduling parameters %s: %w", path, err)
	}
	defer f.Close()
	return model.LoadSchedulingParamsFromReader(f)
}

func loadCatalog(path string) (schedule.Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		return schedule.Catalog{}, fmt.Errorf("opening schedule catalog %s: %w", path, err)
	}
	defer f.Close()
	return schedule.LoadCatalogFromReader(f)
}
