// Command recompute_bay_distances loads a terminal layout descriptor, runs it
// through layout.Build, and writes a companion JSON file of every bay's
// derived walking distance — the read-JSON/transform/write-JSON shape
// of the teacher's recompute_distances tool, re-pointed from route-stop
// haversine distances at the §4.1 bay distance formula.
package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"bap/backend/layout"
	"bap/backend/model"
)

type bayDistance struct {
	Terminal string  `json:"terminal"`
	Index    int     `json:"index"`
	Size     string  `json:"size"`
	Dist     float64 `json:"dist"`
}

func main() {
	if len(os.Args) < 2 {
		fmt.Println("usage: recompute_bay_distances <layout-json-file>")
		os.Exit(1)
	}
	path := os.Args[1]

	f, err := os.Open(path)
	if err != nil {
		panic(err)
	}
	desc, err := model.LoadLayoutFromReader(f)
	f.Close()
	if err != nil {
		panic(err)
	}

	bays, err := layout.Build(desc)
	if err != nil {
		panic(err)
	}

	var out []bayDistance
	var total float64
	for _, key := range bays.Keys() {
		bay, _ := bays.Lookup(key)
		out = append(out, bayDistance{
			Terminal: string(key.Terminal),
			Index:    key.Index,
			Size:     string(rune(bay.Size)),
			Dist:     bay.Dist,
		})
		total += bay.Dist
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Terminal != out[j].Terminal {
			return out[i].Terminal < out[j].Terminal
		}
		return out[i].Index < out[j].Index
	})

	ext := filepath.Ext(path)
	outPath := strings.TrimSuffix(path, ext) + ".distances.json"
	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		panic(err)
	}
	if err := os.WriteFile(outPath, data, 0o644); err != nil {
		panic(err)
	}
	fmt.Printf("Updated bay distances. %d bays, total walking distance %.3f, written to %s\n", len(out), total, outPath)
}
