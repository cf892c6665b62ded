package model

import (
	"encoding/json"
	"fmt"
	"io"
)

// TerminalID identifies a terminal: a domestic pier, an international pier,
// or the remote bus-gated apron.
type TerminalID string

const (
	DOM TerminalID = "DOM"
	INT TerminalID = "INT"
	BUS TerminalID = "BUS"
)

// SizeClass is a bay's physical size class: Large, Small, or remote-Bus.
type SizeClass byte

const (
	SizeL SizeClass = 'L'
	SizeS SizeClass = 'S'
	SizeB SizeClass = 'B'
)

// SizeClassDescriptor is one {count, category range, distance unit} entry of
// a terminal descriptor.
type SizeClassDescriptor struct {
	Count     int
	CatLo     Category
	CatHi     Category
	DistUnit  float64
}

// TerminalDescriptor is the per-size-class input to the bay layout builder.
type TerminalDescriptor struct {
	ID      TerminalID
	Classes map[SizeClass]SizeClassDescriptor
}

// Layout is the full terminal descriptor set, keyed by terminal id.
type Layout map[TerminalID]TerminalDescriptor

type rawSizeClassDescriptor struct {
	Num  int       `json:"num"`
	Cat  [2]string `json:"cat"`
	Dist float64   `json:"dist"`
}

// LoadLayoutFromReader decodes a terminal layout:
// {terminal -> {size-class -> {num, cat:[lo,hi], dist}}}.
func LoadLayoutFromReader(r io.Reader) (Layout, error) {
	var raw map[string]map[string]rawSizeClassDescriptor
	if err := json.NewDecoder(r).Decode(&raw); err != nil {
		return nil, fmt.Errorf("decoding terminal layout: %w", err)
	}
	out := make(Layout, len(raw))
	for terminal, classes := range raw {
		desc := TerminalDescriptor{ID: TerminalID(terminal), Classes: make(map[SizeClass]SizeClassDescriptor, len(classes))}
		for class, rc := range classes {
			if len(class) != 1 {
				return nil, fmt.Errorf("terminal %q: invalid size class %q", terminal, class)
			}
			lo, err := parseCategory(rc.Cat[0])
			if err != nil {
				return nil, fmt.Errorf("terminal %q size %q: %w", terminal, class, err)
			}
			hi, err := parseCategory(rc.Cat[1])
			if err != nil {
				return nil, fmt.Errorf("terminal %q size %q: %w", terminal, class, err)
			}
			if rc.Num < 0 {
				return nil, fmt.Errorf("terminal %q size %q: negative bay count", terminal, class)
			}
			desc.Classes[SizeClass(class[0])] = SizeClassDescriptor{
				Count:    rc.Num,
				CatLo:    lo,
				CatHi:    hi,
				DistUnit: rc.Dist,
			}
		}
		out[TerminalID(terminal)] = desc
	}
	return out, nil
}
