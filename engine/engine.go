// Package engine owns the game state and provides the Step() entry point
// that wires parsing, verb dispatch, action methods, and win/lose
// evaluation into a single turn.
package engine

import (
	"fmt"
	"sort"
	"strings"

	"github.com/tmarceau/fable/engine/condition"
	"github.com/tmarceau/fable/engine/parser"
	"github.com/tmarceau/fable/engine/state"
	"github.com/tmarceau/fable/types"
)

// Engine holds the world definitions and the mutable player state.
// All room mutation (item moves, exit unlocks, riddle flags) goes
// through its action methods.
type Engine struct {
	World *state.World
	State *types.PlayerState

	// SaveDir is where the save/load verbs read and write save files.
	SaveDir string
}

// New creates an engine with a fresh player state at the world's start room.
func New(w *state.World) *Engine {
	return &Engine{
		World:   w,
		State:   state.NewState(w),
		SaveDir: ".",
	}
}

// directionAliases expands shorthand direction tokens. Unknown tokens
// pass through unchanged.
var directionAliases = map[string]string{
	"n":  "north",
	"s":  "south",
	"e":  "east",
	"w":  "west",
	"u":  "up",
	"d":  "down",
	"ne": "northeast",
	"nw": "northwest",
	"se": "southeast",
	"sw": "southwest",
}

// directionWords are the bare tokens accepted as a standalone movement
// command ("north" instead of "go north").
var directionWords = map[string]bool{
	"north": true, "south": true, "east": true, "west": true,
	"northeast": true, "northwest": true, "southeast": true, "southwest": true,
	"up": true, "down": true,
	"n": true, "s": true, "e": true, "w": true, "u": true, "d": true,
	"ne": true, "nw": true, "se": true, "sw": true,
}

func normalizeDirection(d string) string {
	d = strings.ToLower(d)
	if full, ok := directionAliases[d]; ok {
		return full
	}
	return d
}

// Step processes one player command and returns the emitted messages
// plus whether the session is still running. Unknown verbs and failed
// actions are messages, never errors; only the terminal flag stops play.
func (e *Engine) Step(input string) types.Result {
	if !e.State.Running {
		return types.Result{
			Output:  []string{"The game has ended."},
			Running: false,
		}
	}

	cmd := parser.Parse(input)
	var out []string

	switch cmd.Verb {
	case "":
		// Blank input: nothing to do.

	case "quit", "exit":
		out = append(out, "Goodbye.")
		e.State.Running = false

	case "look", "l":
		out = append(out, e.describeRoom()...)

	case "inventory", "i":
		out = append(out, e.showInventory())

	case "help", "?":
		out = append(out, helpText()...)

	case "go", "move":
		if cmd.Arg == "" {
			out = append(out, "Go where?")
			break
		}
		out = append(out, e.move(cmd.Arg)...)

	case "take", "get", "pick", "grab":
		if cmd.Arg == "" {
			out = append(out, "Take what?")
			break
		}
		out = append(out, e.take(cmd.Arg)...)

	case "drop", "leave", "put":
		if cmd.Arg == "" {
			out = append(out, "Drop what?")
			break
		}
		out = append(out, e.drop(cmd.Arg)...)

	case "use":
		if cmd.Arg == "" {
			out = append(out, "Use what?")
			break
		}
		item, target := splitUseArg(cmd.Arg)
		out = append(out, e.use(item, target)...)

	case "talk", "speak", "chat":
		// The parser's lookahead only covers "talk to"; strip a
		// leading "to" for the synonyms ("speak to the cook").
		words := strings.Fields(cmd.Arg)
		if len(words) > 0 && words[0] == "to" {
			words = words[1:]
		}
		arg := strings.Join(words, " ")
		if arg == "" {
			out = append(out, "Talk to whom?")
			break
		}
		out = append(out, e.talk(arg))

	case "examine", "inspect", "check", "read":
		if cmd.Arg == "" {
			out = append(out, "Examine what?")
			break
		}
		out = append(out, e.examine(cmd.Arg))

	case "answer", "solve":
		if cmd.Arg == "" {
			out = append(out, "Answer what? Try 'answer <your answer>'.")
			break
		}
		out = append(out, e.answerRiddle(cmd.Arg)...)

	case "tasks", "task", "quest", "quests":
		out = append(out, e.showTasks()...)

	case "hint", "hints", "clue":
		out = append(out, e.giveHint())

	case "save":
		out = append(out, e.saveGame(cmd.Arg))

	case "load":
		out = append(out, e.loadGame(cmd.Arg)...)

	default:
		if directionWords[cmd.Verb] {
			out = append(out, e.move(cmd.Verb)...)
			break
		}
		out = append(out, "I don't understand that command. Type 'help' for a list of commands.")
	}

	return types.Result{Output: out, Running: e.State.Running}
}

// checkConditions evaluates win first, then lose, stopping the game and
// emitting the terminal banner if either fires. Called only after
// state-changing actions.
func (e *Engine) checkConditions() []string {
	if condition.Eval(e.World.Win, e.State) {
		e.State.Running = false
		return []string{"CONGRATULATIONS! You've met the win condition."}
	}
	if condition.Eval(e.World.Lose, e.State) {
		e.State.Running = false
		return []string{"You have met a lose condition. Game over."}
	}
	return nil
}

// describeRoom produces the standard room description: header, prose,
// items, people, an unsolved riddle if present, and exits with lock
// markers.
func (e *Engine) describeRoom() []string {
	room := e.World.Room(e.State.Current)
	if room == nil {
		return []string{"You are somewhere unknown."}
	}

	out := []string{
		fmt.Sprintf("== %s ==", e.State.Current),
		room.Description,
	}

	if len(room.Items) > 0 {
		out = append(out, "You see: "+strings.Join(room.Items, ", "))
	}

	if len(room.NPCs) > 0 {
		names := make([]string, 0, len(room.NPCs))
		for id, npc := range room.NPCs {
			name := npc.Name
			if name == "" {
				name = id
			}
			names = append(names, name)
		}
		sort.Strings(names) // deterministic order
		out = append(out, "People here: "+strings.Join(names, ", "))
	}

	if room.Riddle != nil && !room.Riddle.Solved {
		out = append(out, fmt.Sprintf("A riddle hangs in the air: %q", room.Riddle.Question))
	}

	if len(room.Exits) > 0 {
		dirs := make([]string, 0, len(room.Exits))
		for dir := range room.Exits {
			dirs = append(dirs, dir)
		}
		sort.Strings(dirs) // deterministic order
		labels := make([]string, 0, len(dirs))
		for _, dir := range dirs {
			label := dir
			if room.Exits[dir].Locked {
				label += " (locked)"
			}
			labels = append(labels, label)
		}
		out = append(out, "Exits: "+strings.Join(labels, ", "))
	}

	return out
}

func (e *Engine) showInventory() string {
	if len(e.State.Inventory) == 0 {
		return "You are not carrying anything."
	}
	return "You are carrying: " + strings.Join(e.State.Inventory, ", ")
}

// splitUseArg splits "item on target" at the first bare "on" token.
// Without one, the whole argument is the item and there is no target.
func splitUseArg(arg string) (item, target string) {
	words := strings.Fields(arg)
	for i, w := range words {
		if w == "on" {
			return strings.Join(words[:i], " "), strings.Join(words[i+1:], " ")
		}
	}
	return arg, ""
}

func helpText() []string {
	return []string{
		"Commands:",
		"  look or l                   - Describe the current room",
		"  go <direction>              - Move (north, south, east, west, etc)",
		"  <direction>                 - Shortcut to move (north, n, south, s, etc)",
		"  take <item>                 - Pick up an item",
		"  drop <item>                 - Drop an item",
		"  inventory or i              - Show your inventory",
		"  use <item> [on <direction>] - Use an item (e.g., use silver_key on north)",
		"  talk to <npc>               - Talk to someone",
		"  examine <item>              - Look closely at an item",
		"  answer <text>               - Answer the room's riddle",
		"  tasks                       - Show quests and completed tasks",
		"  hint                        - Get a nudge in the right direction",
		"  save [filename]             - Save your game (default: save.json)",
		"  load [filename]             - Load a saved game (default: save.json)",
		"  quit / exit                 - Exit the game",
		"  help                        - Show this help",
	}
}
