// Package loader reads world documents and compiles them into the
// engine's World aggregate. Three authoring formats funnel into the
// same Document shape: JSON (schema-validated), YAML, and a sandboxed
// Lua DSL.
package loader

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/tmarceau/fable/engine/state"
	"github.com/tmarceau/fable/types"
)

// Document is the on-disk world description.
type Document struct {
	Rooms    map[string]*types.Room `json:"rooms" yaml:"rooms"`
	Start    string                 `json:"start" yaml:"start"`
	Win      *types.Condition       `json:"win_condition,omitempty" yaml:"win_condition,omitempty"`
	Lose     *types.Condition       `json:"lose_condition,omitempty" yaml:"lose_condition,omitempty"`
	Metadata types.Metadata         `json:"metadata,omitempty" yaml:"metadata,omitempty"`
	Tasks    types.TaskList         `json:"tasks,omitempty" yaml:"tasks,omitempty"`
}

// Load reads a world file, picks the decoder by extension, compiles the
// document, and validates it. Any error here is structural: the caller
// must stop before starting a session.
func Load(path string) (*state.World, error) {
	var doc *Document
	var err error

	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		doc, err = loadJSON(path)
	case ".yaml", ".yml":
		doc, err = loadYAML(path)
	case ".lua":
		doc, err = loadLua(path)
	default:
		return nil, fmt.Errorf("unsupported world format %q (want .json, .yaml, or .lua)", filepath.Ext(path))
	}
	if err != nil {
		return nil, err
	}

	return Compile(doc)
}

func loadJSON(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading world file: %w", err)
	}
	if err := validateSchema(data); err != nil {
		return nil, fmt.Errorf("world file %s: %w", path, err)
	}
	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("world file %s is not valid JSON: %w", path, err)
	}
	return &doc, nil
}

func loadYAML(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading world file: %w", err)
	}
	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("world file %s is not valid YAML: %w", path, err)
	}
	return &doc, nil
}

// Compile turns a decoded document into the runtime world and runs
// structural validation on the result.
func Compile(doc *Document) (*state.World, error) {
	w := &state.World{
		Rooms:    doc.Rooms,
		Start:    doc.Start,
		Win:      doc.Win,
		Lose:     doc.Lose,
		Metadata: doc.Metadata,
		Tasks:    doc.Tasks,
	}
	if w.Rooms == nil {
		w.Rooms = map[string]*types.Room{}
	}
	// Normalize nested nil collections so the engine never branches on them.
	for _, room := range w.Rooms {
		if room.Items == nil {
			room.Items = []string{}
		}
		if room.Exits == nil {
			room.Exits = map[string]*types.Exit{}
		}
		if room.NPCs == nil {
			room.NPCs = map[string]*types.NPC{}
		}
	}

	if err := validate(w); err != nil {
		return nil, err
	}
	return w, nil
}

// EnsureFile makes sure a world file exists at path, writing the
// fallback document if it is missing. The fallback is injected by the
// caller; this package never decides on its own what the default world
// is. Returns true if the file was created.
func EnsureFile(path string, fallback func() *Document) (bool, error) {
	if _, err := os.Stat(path); err == nil {
		return false, nil
	}
	if fallback == nil {
		return false, fmt.Errorf("world file %s not found", path)
	}
	data, err := json.MarshalIndent(fallback(), "", "  ")
	if err != nil {
		return false, fmt.Errorf("encoding fallback world: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return false, fmt.Errorf("creating world file %s: %w", path, err)
	}
	return true, nil
}
