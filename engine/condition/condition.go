// Package condition evaluates declarative win/lose predicates against
// player state. Evaluation is a pure function: no mutation, no I/O.
package condition

import (
	"github.com/tmarceau/fable/engine/state"
	"github.com/tmarceau/fable/types"
)

// Eval reports whether the condition holds for the given player state.
//
// Every predicate kind present in the condition must hold (AND across
// kinds); absent kinds are not checked. A nil or empty condition never
// fires. Item matching is case-insensitive; room identifiers are
// structural keys and compare exactly.
func Eval(c *types.Condition, s *types.PlayerState) bool {
	if c == nil || isEmpty(c) {
		return false
	}

	for _, item := range c.InventoryContains {
		if _, ok := state.FindItem(item, s.Inventory); !ok {
			return false
		}
	}

	if len(c.InventoryHasAny) > 0 {
		any := false
		for _, item := range c.InventoryHasAny {
			if _, ok := state.FindItem(item, s.Inventory); ok {
				any = true
				break
			}
		}
		if !any {
			return false
		}
	}

	for item, need := range c.InventoryCount {
		if state.CountItem(item, s.Inventory) < need {
			return false
		}
	}

	if c.InRoomEquals != "" && s.Current != c.InRoomEquals {
		return false
	}

	if c.HasSolvedRiddle && len(s.RiddlesSolved) == 0 {
		return false
	}

	return true
}

// isEmpty reports whether no predicate kind is present at all.
func isEmpty(c *types.Condition) bool {
	return len(c.InventoryContains) == 0 &&
		len(c.InventoryHasAny) == 0 &&
		len(c.InventoryCount) == 0 &&
		c.InRoomEquals == "" &&
		!c.HasSolvedRiddle
}
