package condition

import (
	"testing"

	"github.com/tmarceau/fable/types"
)

func playerState() *types.PlayerState {
	return &types.PlayerState{
		Current:       "Hall",
		Inventory:     []string{},
		NPCProgress:   map[string]int{},
		RiddlesSolved: map[string]bool{},
		Running:       true,
	}
}

func TestEval(t *testing.T) {
	tests := []struct {
		name  string
		cond  *types.Condition
		setup func(s *types.PlayerState)
		want  bool
	}{
		{
			name: "nil condition never fires",
			cond: nil,
			want: false,
		},
		{
			name: "empty condition never fires",
			cond: &types.Condition{},
			want: false,
		},
		{
			name: "inventory_contains all present",
			cond: &types.Condition{InventoryContains: []string{"treasure", "map"}},
			setup: func(s *types.PlayerState) {
				s.Inventory = []string{"Map", "Treasure"}
			},
			want: true,
		},
		{
			name: "inventory_contains one missing",
			cond: &types.Condition{InventoryContains: []string{"treasure", "map"}},
			setup: func(s *types.PlayerState) {
				s.Inventory = []string{"map"}
			},
			want: false,
		},
		{
			name: "inventory_has_any matches one option",
			cond: &types.Condition{InventoryHasAny: []string{"sword", "knife"}},
			setup: func(s *types.PlayerState) {
				s.Inventory = []string{"KNIFE"}
			},
			want: true,
		},
		{
			name: "inventory_has_any matches none",
			cond: &types.Condition{InventoryHasAny: []string{"sword", "knife"}},
			setup: func(s *types.PlayerState) {
				s.Inventory = []string{"flower"}
			},
			want: false,
		},
		{
			name: "inventory_count duplicates counted",
			cond: &types.Condition{InventoryCount: map[string]int{"golden_coin": 3}},
			setup: func(s *types.PlayerState) {
				s.Inventory = []string{"golden_coin", "Golden_Coin", "golden_coin"}
			},
			want: true,
		},
		{
			name: "inventory_count below minimum",
			cond: &types.Condition{InventoryCount: map[string]int{"golden_coin": 3}},
			setup: func(s *types.PlayerState) {
				s.Inventory = []string{"golden_coin", "golden_coin"}
			},
			want: false,
		},
		{
			name: "in_room_equals exact match",
			cond: &types.Condition{InRoomEquals: "Hall"},
			want: true,
		},
		{
			name: "in_room_equals is case sensitive",
			cond: &types.Condition{InRoomEquals: "hall"},
			want: false,
		},
		{
			name: "has_solved_riddle with no riddles solved",
			cond: &types.Condition{HasSolvedRiddle: true},
			want: false,
		},
		{
			name: "has_solved_riddle with one solved",
			cond: &types.Condition{HasSolvedRiddle: true},
			setup: func(s *types.PlayerState) {
				s.RiddlesSolved["Cellar"] = true
			},
			want: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := playerState()
			if tt.setup != nil {
				tt.setup(s)
			}
			if got := Eval(tt.cond, s); got != tt.want {
				t.Errorf("Eval() = %v, want %v", got, tt.want)
			}
		})
	}
}

// All predicate kinds present must hold simultaneously.
func TestEvalConjunction(t *testing.T) {
	cond := &types.Condition{
		InventoryCount:  map[string]int{"golden_coin": 3},
		HasSolvedRiddle: true,
	}

	s := playerState()

	// Two coins, riddle solved: count fails.
	s.Inventory = []string{"golden_coin", "golden_coin"}
	s.RiddlesSolved["Cave"] = true
	if Eval(cond, s) {
		t.Error("condition fired with only 2 of 3 coins")
	}

	// Three coins, no riddle: riddle kind fails.
	s.Inventory = append(s.Inventory, "golden_coin")
	s.RiddlesSolved = map[string]bool{}
	if Eval(cond, s) {
		t.Error("condition fired without a solved riddle")
	}

	// Both hold.
	s.RiddlesSolved["Cave"] = true
	if !Eval(cond, s) {
		t.Error("condition did not fire with both kinds satisfied")
	}
}
