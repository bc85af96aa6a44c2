package engine

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/tmarceau/fable/engine/save"
	"github.com/tmarceau/fable/engine/state"
	"github.com/tmarceau/fable/types"
)

// move walks the player through an exit. Locked exits unlock
// automatically when a matching key is carried; the key stays in the
// inventory, only the lock flips. A destination missing from the world
// is reported, not traversed.
func (e *Engine) move(direction string) []string {
	d := normalizeDirection(direction)
	room := e.World.Room(e.State.Current)
	if room == nil {
		return []string{"You are somewhere unknown."}
	}

	exit, ok := room.Exits[d]
	if !ok {
		return []string{"You can't go that way."}
	}

	var out []string
	if exit.Locked {
		if exit.Key != "" {
			if _, held := state.FindItem(exit.Key, e.State.Inventory); held {
				exit.Locked = false
				out = append(out, fmt.Sprintf("You use the %s to unlock the way %s.", exit.Key, d))
				e.recordTask(fmt.Sprintf("Unlocked the way %s from %s", d, e.State.Current))
			}
		}
		if exit.Locked {
			if exit.Key != "" {
				return []string{fmt.Sprintf("The way %s is locked. You need the %s.", d, exit.Key)}
			}
			return []string{fmt.Sprintf("The way %s is locked.", d)}
		}
	}

	if exit.To == "" || e.World.Room(exit.To) == nil {
		return append(out, "The exit seems to lead nowhere.")
	}

	e.State.Current = exit.To
	out = append(out, e.describeRoom()...)
	return append(out, e.checkConditions()...)
}

// take moves an item from the current room into the inventory.
func (e *Engine) take(itemName string) []string {
	room := e.World.Room(e.State.Current)
	items, found, ok := state.RemoveItem(itemName, room.Items)
	if !ok {
		return []string{fmt.Sprintf("There is no '%s' here.", itemName)}
	}
	room.Items = items
	e.State.Inventory = append(e.State.Inventory, found)

	out := []string{fmt.Sprintf("You take the %s.", found)}
	return append(out, e.checkConditions()...)
}

// drop moves an item from the inventory into the current room.
func (e *Engine) drop(itemName string) []string {
	inv, found, ok := state.RemoveItem(itemName, e.State.Inventory)
	if !ok {
		return []string{fmt.Sprintf("You don't have '%s'.", itemName)}
	}
	e.State.Inventory = inv
	room := e.World.Room(e.State.Current)
	room.Items = append(room.Items, found)
	return []string{fmt.Sprintf("You drop the %s.", found)}
}

// use requires the item in inventory. With a direction target it tries
// the unlock path; without one, using an item has no generic effect.
func (e *Engine) use(itemName, target string) []string {
	found, ok := state.FindItem(itemName, e.State.Inventory)
	if !ok {
		return []string{fmt.Sprintf("You don't have '%s'.", itemName)}
	}

	if target == "" {
		return []string{fmt.Sprintf("You use the %s, but nothing obvious happens.", found)}
	}

	d := normalizeDirection(target)
	room := e.World.Room(e.State.Current)
	exit, ok := room.Exits[d]
	if !ok {
		return []string{"There's no exit in that direction."}
	}
	if !exit.Locked {
		return []string{"That way is already unlocked."}
	}
	if exit.Key == "" || !strings.EqualFold(exit.Key, found) {
		return []string{"That key doesn't fit this lock."}
	}

	exit.Locked = false
	e.recordTask(fmt.Sprintf("Unlocked the way %s from %s", d, e.State.Current))
	return []string{fmt.Sprintf("You used the %s to unlock the way %s.", found, d)}
}

// talk speaks the next dialogue line of an NPC in the current room,
// matched by key or display name. Progress advances until the last line
// and then stays there: repeated conversation repeats the final line.
func (e *Engine) talk(nameOrKey string) string {
	room := e.World.Room(e.State.Current)

	var npcID string
	var npc *types.NPC
	for id, n := range room.NPCs {
		display := n.Name
		if display == "" {
			display = id
		}
		if strings.EqualFold(id, nameOrKey) || strings.EqualFold(display, nameOrKey) {
			npcID, npc = id, n
			break
		}
	}
	if npc == nil {
		return "There's no one here by that name."
	}

	display := npc.Name
	if display == "" {
		display = npcID
	}
	if len(npc.Dialogue) == 0 {
		return fmt.Sprintf("%s has nothing to say.", display)
	}

	key := state.ProgressKey(e.State.Current, npcID)
	progress := e.State.NPCProgress[key]
	if progress > len(npc.Dialogue)-1 {
		progress = len(npc.Dialogue) - 1
	}
	line := npc.Dialogue[progress]
	if progress < len(npc.Dialogue)-1 {
		e.State.NPCProgress[key] = progress + 1
	}
	return fmt.Sprintf("%s says: %q", display, line)
}

// itemFlavor holds close-up descriptions for well-known items. Items
// not listed fall back to a generic template.
var itemFlavor = map[string]string{
	"map":         "A rough sketch of the surroundings. North is up, probably.",
	"knife":       "A kitchen knife. Sharp enough to be respected.",
	"silver_key":  "A small silver key, cold to the touch.",
	"golden_key":  "A heavy golden key with ornate teeth.",
	"flower":      "A bright bloom. It smells faintly of summer.",
	"treasure":    "Gold, gems, and things that glitter. This is what you came for.",
	"lantern":     "A battered lantern. The flame still holds.",
	"golden_coin": "A thick coin stamped with a face no one remembers.",
	"book":        "A dusty tome. The margins are full of cramped notes.",
	"rope":        "A coil of rope, fraying but serviceable.",
}

// examine describes a carried item from the flavor table, or notes a
// room item as takeable. It changes no state.
func (e *Engine) examine(itemName string) string {
	if found, ok := state.FindItem(itemName, e.State.Inventory); ok {
		if flavor, ok := itemFlavor[strings.ToLower(found)]; ok {
			return flavor
		}
		return fmt.Sprintf("It's a %s. Nothing more to learn from it.", found)
	}

	room := e.World.Room(e.State.Current)
	if found, ok := state.FindItem(itemName, room.Items); ok {
		return fmt.Sprintf("The %s lies here. You could take it.", found)
	}

	return fmt.Sprintf("You see no '%s' here.", itemName)
}

// answerRiddle checks an answer against the current room's riddle.
// A solved riddle stays solved; answering it again is reported
// distinctly and never grants the reward twice.
func (e *Engine) answerRiddle(text string) []string {
	room := e.World.Room(e.State.Current)
	if room.Riddle == nil {
		return []string{"There's no riddle to answer here."}
	}
	if room.Riddle.Solved {
		return []string{"You've already solved this riddle."}
	}

	if !strings.EqualFold(strings.TrimSpace(text), strings.TrimSpace(room.Riddle.Answer)) {
		return []string{"That's not the answer. Think it over and try again."}
	}

	room.Riddle.Solved = true
	e.State.RiddlesSolved[e.State.Current] = true
	e.recordTask(fmt.Sprintf("Solved the riddle in %s", e.State.Current))

	out := []string{"Correct!"}
	if room.Riddle.Reward != "" {
		e.State.Inventory = append(e.State.Inventory, room.Riddle.Reward)
		out = append(out, fmt.Sprintf("You receive the %s.", room.Riddle.Reward))
	}
	return append(out, e.checkConditions()...)
}

// giveHint emits one context-sensitive nudge and counts it. Read-only
// apart from the counter; no condition check runs.
func (e *Engine) giveHint() string {
	room := e.World.Room(e.State.Current)
	e.State.HintsGiven++

	hint := "Explore every exit, take what you find, and talk to everyone."
	switch {
	case room.Riddle != nil && !room.Riddle.Solved:
		hint = "The riddle here may reward a correct answer. Try 'answer <text>'."
	case hasLockedExit(room):
		hint = "A locked way needs the right key. Keys turn up where you least expect them."
	case len(room.NPCs) > 0:
		hint = "Someone here might say more if you keep talking to them."
	}

	return fmt.Sprintf("Hint #%d: %s", e.State.HintsGiven, hint)
}

func hasLockedExit(room *types.Room) bool {
	for _, exit := range room.Exits {
		if exit.Locked {
			return true
		}
	}
	return false
}

// showTasks lists the world's quest summary, the current room's tasks,
// and everything the player has completed so far.
func (e *Engine) showTasks() []string {
	var out []string

	if e.World.Tasks.MainQuest != "" {
		out = append(out, "Main quest: "+e.World.Tasks.MainQuest)
	}
	for _, q := range e.World.Tasks.SideQuests {
		out = append(out, "Side quest: "+q)
	}

	room := e.World.Room(e.State.Current)
	for _, task := range room.Tasks {
		out = append(out, "Here: "+task)
	}

	if len(e.State.CompletedTasks) > 0 {
		out = append(out, "Completed:")
		for _, task := range e.State.CompletedTasks {
			out = append(out, "  - "+task)
		}
	}

	if len(out) == 0 {
		return []string{"Nothing needs doing right now."}
	}
	return out
}

// recordTask appends to the completed-task log.
func (e *Engine) recordTask(entry string) {
	e.State.CompletedTasks = append(e.State.CompletedTasks, entry)
}

// saveGame snapshots the player state to a JSON file under SaveDir.
func (e *Engine) saveGame(filename string) string {
	if filename == "" {
		filename = "save.json"
	}
	path := filepath.Join(e.SaveDir, filename)
	if err := save.WriteFile(path, e.State); err != nil {
		return fmt.Sprintf("Error saving game: %v", err)
	}
	return fmt.Sprintf("Game saved to '%s'.", filename)
}

// loadGame restores player state from a save file. Any failure leaves
// the current state untouched and reports a single diagnostic.
func (e *Engine) loadGame(filename string) []string {
	if filename == "" {
		filename = "save.json"
	}
	path := filepath.Join(e.SaveDir, filename)

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return []string{fmt.Sprintf("No save file found at '%s'.", filename)}
	}
	if err != nil {
		return []string{fmt.Sprintf("Error loading save: %v", err)}
	}

	sd, err := save.Unmarshal(data)
	if err != nil {
		return []string{"Save file is corrupted."}
	}

	if e.World.Room(sd.Current) == nil {
		return []string{"Save file references an unknown room. Load aborted."}
	}

	save.Apply(e.State, sd)
	out := []string{fmt.Sprintf("Game loaded from '%s'.", filename)}
	out = append(out, e.describeRoom()...)
	return append(out, e.checkConditions()...)
}
