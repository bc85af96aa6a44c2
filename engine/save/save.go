// Package save implements JSON serialization and restore of player state.
// Only player-centric fields are persisted; room-level mutations (item
// placement, lock flags, riddle flags) live in the in-memory world and
// are not captured. See DESIGN.md for the rationale.
package save

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/tmarceau/fable/types"
)

// SaveData is the JSON-serializable save format.
type SaveData struct {
	Current        string          `json:"current"`
	Inventory      []string        `json:"inventory"`
	NPCProgress    map[string]int  `json:"npc_progress"`
	CompletedTasks []string        `json:"completed_tasks"`
	RiddlesSolved  map[string]bool `json:"riddles_solved"`
	HintsGiven     int             `json:"hints_given"`
}

// Snapshot captures the player state as serializable save data.
func Snapshot(s *types.PlayerState) SaveData {
	return SaveData{
		Current:        s.Current,
		Inventory:      s.Inventory,
		NPCProgress:    s.NPCProgress,
		CompletedTasks: s.CompletedTasks,
		RiddlesSolved:  s.RiddlesSolved,
		HintsGiven:     s.HintsGiven,
	}
}

// Marshal serializes player state to indented JSON bytes.
func Marshal(s *types.PlayerState) ([]byte, error) {
	return json.MarshalIndent(Snapshot(s), "", "  ")
}

// Unmarshal deserializes JSON bytes into SaveData.
func Unmarshal(data []byte) (*SaveData, error) {
	var sd SaveData
	if err := json.Unmarshal(data, &sd); err != nil {
		return nil, fmt.Errorf("decoding save data: %w", err)
	}
	// Ensure collections are never nil after load.
	if sd.Inventory == nil {
		sd.Inventory = []string{}
	}
	if sd.NPCProgress == nil {
		sd.NPCProgress = map[string]int{}
	}
	if sd.CompletedTasks == nil {
		sd.CompletedTasks = []string{}
	}
	if sd.RiddlesSolved == nil {
		sd.RiddlesSolved = map[string]bool{}
	}
	return &sd, nil
}

// Apply replaces the persisted player-state fields wholesale. The
// Running flag is untouched: a restore never resurrects a finished game
// by itself; the engine re-checks conditions right after.
func Apply(s *types.PlayerState, sd *SaveData) {
	s.Current = sd.Current
	s.Inventory = sd.Inventory
	s.NPCProgress = sd.NPCProgress
	s.CompletedTasks = sd.CompletedTasks
	s.RiddlesSolved = sd.RiddlesSolved
	s.HintsGiven = sd.HintsGiven
}

// WriteFile marshals player state and writes it to path.
func WriteFile(path string, s *types.PlayerState) error {
	data, err := Marshal(s)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing save file: %w", err)
	}
	return nil
}

// ReadFile reads and decodes a save file.
func ReadFile(path string) (*SaveData, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Unmarshal(data)
}
