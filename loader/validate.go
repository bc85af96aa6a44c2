package loader

import (
	"fmt"
	"os"
	"strings"

	"github.com/tmarceau/fable/engine/state"
)

// ValidationError collects structural errors and warnings found in a
// compiled world. Warnings alone don't fail the load.
type ValidationError struct {
	Errors   []string
	Warnings []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("world validation failed with %d error(s):\n  %s",
		len(e.Errors), strings.Join(e.Errors, "\n  "))
}

// validate checks the compiled world for the invariants the engine
// relies on. Dangling exit destinations are deliberately a warning:
// traversal reports them at runtime as "leads nowhere" rather than
// refusing the whole world.
func validate(w *state.World) error {
	ve := &ValidationError{}

	if len(w.Rooms) == 0 {
		ve.Errors = append(ve.Errors, "world must define at least one room in 'rooms'")
	}

	if w.Start == "" {
		ve.Errors = append(ve.Errors, "'start' room identifier is required")
	} else if _, ok := w.Rooms[w.Start]; !ok {
		ve.Errors = append(ve.Errors, fmt.Sprintf(
			"start room %q not present in 'rooms'", w.Start))
	}

	for id, room := range w.Rooms {
		for dir, exit := range room.Exits {
			if exit.To == "" {
				ve.Errors = append(ve.Errors, fmt.Sprintf(
					"room %q exit %q has no destination", id, dir))
				continue
			}
			if _, ok := w.Rooms[exit.To]; !ok {
				ve.Warnings = append(ve.Warnings, fmt.Sprintf(
					"room %q exit %q leads to undefined room %q", id, dir, exit.To))
			}
			if exit.Locked && exit.Key == "" {
				ve.Warnings = append(ve.Warnings, fmt.Sprintf(
					"room %q exit %q is locked but names no key; it can never be unlocked", id, dir))
			}
		}

		for npcID, npc := range room.NPCs {
			if len(npc.Dialogue) == 0 {
				ve.Warnings = append(ve.Warnings, fmt.Sprintf(
					"npc %q in room %q has no dialogue", npcID, id))
			}
		}

		if room.Riddle != nil && room.Riddle.Answer == "" {
			ve.Errors = append(ve.Errors, fmt.Sprintf(
				"riddle in room %q has an empty answer", id))
		}
	}

	// Print warnings to stderr.
	for _, warning := range ve.Warnings {
		fmt.Fprintf(os.Stderr, "warning: %s\n", warning)
	}

	if len(ve.Errors) > 0 {
		return ve
	}
	return nil
}
