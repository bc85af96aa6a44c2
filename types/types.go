// Package types defines the shared data structures for the fable engine.
// This package contains only type definitions, no logic.
package types

// Command is the parsed representation of a player input line.
// An empty Verb means the line was blank and should be ignored.
type Command struct {
	Verb string
	Arg  string // optional
}

// Result is the output of a single game step.
type Result struct {
	Output  []string
	Running bool
}

// Exit is a directed edge to another room, optionally locked behind a key.
type Exit struct {
	To     string `json:"to" yaml:"to"`
	Locked bool   `json:"locked,omitempty" yaml:"locked,omitempty"`
	Key    string `json:"key,omitempty" yaml:"key,omitempty"`
}

// NPC is a non-player character with an ordered dialogue script.
// The definition itself is stateless; progress lives in PlayerState keyed
// by "room:npc" so a definition can be reused without cross-room leakage.
type NPC struct {
	Name     string   `json:"name" yaml:"name"`
	Dialogue []string `json:"dialogue" yaml:"dialogue"`
}

// Riddle is a one-shot question attached to a room. Solved is owned by
// the room and is set exactly once, never reset.
type Riddle struct {
	Question string `json:"question" yaml:"question"`
	Answer   string `json:"answer" yaml:"answer"`
	Reward   string `json:"reward,omitempty" yaml:"reward,omitempty"`
	Solved   bool   `json:"solved" yaml:"solved"`
}

// Room is a node in the world graph. Rooms are mutated in place as items
// move, exits unlock, and riddles get solved, always through engine
// action methods rather than directly.
type Room struct {
	Description string           `json:"description" yaml:"description"`
	Items       []string         `json:"items,omitempty" yaml:"items,omitempty"`
	Exits       map[string]*Exit `json:"exits,omitempty" yaml:"exits,omitempty"`
	NPCs        map[string]*NPC  `json:"npcs,omitempty" yaml:"npcs,omitempty"`
	Riddle      *Riddle          `json:"riddle,omitempty" yaml:"riddle,omitempty"`
	Tasks       []string         `json:"tasks,omitempty" yaml:"tasks,omitempty"`
}

// Condition is a declarative win/lose predicate over player state. It is
// a closed set of predicate kinds; every kind present must hold (AND),
// kinds left at their zero value are not checked. An empty condition
// never fires.
type Condition struct {
	InventoryContains []string       `json:"inventory_contains,omitempty" yaml:"inventory_contains,omitempty"`
	InventoryHasAny   []string       `json:"inventory_has_any,omitempty" yaml:"inventory_has_any,omitempty"`
	InventoryCount    map[string]int `json:"inventory_count,omitempty" yaml:"inventory_count,omitempty"`
	InRoomEquals      string         `json:"in_room_equals,omitempty" yaml:"in_room_equals,omitempty"`
	HasSolvedRiddle   bool           `json:"has_solved_riddle,omitempty" yaml:"has_solved_riddle,omitempty"`
}

// Metadata describes the world document itself (display only).
type Metadata struct {
	Title       string `json:"title,omitempty" yaml:"title,omitempty"`
	Author      string `json:"author,omitempty" yaml:"author,omitempty"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
}

// TaskList is the top-level quest summary (display only).
type TaskList struct {
	MainQuest  string   `json:"main_quest,omitempty" yaml:"main_quest,omitempty"`
	SideQuests []string `json:"side_quests,omitempty" yaml:"side_quests,omitempty"`
}

// PlayerState is the complete mutable session state, distinct from the
// static world. It is created from the world's start room and replaced
// wholesale on load.
type PlayerState struct {
	Current        string          // current room identifier
	Inventory      []string        // ordered; duplicates allowed and meaningful
	NPCProgress    map[string]int  // "room:npc" → next dialogue line
	RiddlesSolved  map[string]bool // room identifier → riddle solved there
	HintsGiven     int
	Running        bool
	CompletedTasks []string
}
