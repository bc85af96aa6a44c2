// Package state holds the immutable-after-load world aggregate and the
// PlayerState constructor, plus the case-insensitive lookup helpers the
// action methods and condition evaluator share.
package state

import (
	"strings"

	"github.com/tmarceau/fable/types"
)

// World is the loaded game definition. The room map is an arena indexed
// by identifier; the engine holds identifiers into it and performs all
// room mutation (item moves, exit unlocks, riddle flags) through its
// action methods.
type World struct {
	Rooms    map[string]*types.Room
	Start    string
	Win      *types.Condition
	Lose     *types.Condition
	Metadata types.Metadata
	Tasks    types.TaskList
}

// NewState creates a fresh player state positioned at the world's start room.
func NewState(w *World) *types.PlayerState {
	return &types.PlayerState{
		Current:        w.Start,
		Inventory:      []string{},
		NPCProgress:    map[string]int{},
		RiddlesSolved:  map[string]bool{},
		Running:        true,
		CompletedTasks: []string{},
	}
}

// Room returns the room for an identifier, or nil if it doesn't exist.
func (w *World) Room(id string) *types.Room {
	return w.Rooms[id]
}

// FindItem returns the first entry of collection that equals target
// case-insensitively, preserving the entry's original spelling.
func FindItem(target string, collection []string) (string, bool) {
	for _, item := range collection {
		if strings.EqualFold(item, target) {
			return item, true
		}
	}
	return "", false
}

// CountItem returns the number of case-insensitive matches of target in
// collection. Duplicates count individually.
func CountItem(target string, collection []string) int {
	n := 0
	for _, item := range collection {
		if strings.EqualFold(item, target) {
			n++
		}
	}
	return n
}

// RemoveItem deletes the first case-insensitive match of target from
// collection, returning the shortened slice, the removed entry's original
// spelling, and whether a match was found. Order of the remaining
// entries is preserved.
func RemoveItem(target string, collection []string) ([]string, string, bool) {
	for i, item := range collection {
		if strings.EqualFold(item, target) {
			return append(collection[:i], collection[i+1:]...), item, true
		}
	}
	return collection, "", false
}

// ProgressKey builds the dialogue-progress key for an NPC in a room.
func ProgressKey(roomID, npcID string) string {
	return roomID + ":" + npcID
}
