package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/tmarceau/fable/engine"
	"github.com/tmarceau/fable/engine/state"
	"github.com/tmarceau/fable/types"
)

func testEngine() *engine.Engine {
	w := &state.World{
		Rooms: map[string]*types.Room{
			"Hall": {
				Description: "A grand hall.",
				Items:       []string{"map"},
				Exits:       map[string]*types.Exit{"north": {To: "Garden"}},
			},
			"Garden": {
				Description: "A garden.",
				Exits:       map[string]*types.Exit{"south": {To: "Hall"}},
			},
		},
		Start:    "Hall",
		Metadata: types.Metadata{Title: "Test", Author: "t"},
	}
	return engine.New(w)
}

func TestClassifyLine(t *testing.T) {
	tests := []struct {
		line string
		want lineKind
	}{
		{"== Hall ==", kindHeader},
		{"You see: map, knife", kindListing},
		{"People here: Old Man", kindListing},
		{"You are carrying: map", kindListing},
		{"Exits: east, south", kindExits},
		{`Old Man says: "Stay awhile and listen..."`, kindDialogue},
		{"Hint #2: A locked way needs the right key.", kindHint},
		{"CONGRATULATIONS! You've met the win condition.", kindBanner},
		{"You have met a lose condition. Game over.", kindBanner},
		{"You can't go that way.", kindError},
		{"You don't have 'map'.", kindError},
		{"There is no 'map' here.", kindError},
		{"There's no one here by that name.", kindError},
		{"I don't understand that command. Type 'help' for a list of commands.", kindError},
		{"A grand hall.", kindProse},
		{"You take the map.", kindProse},
		{"", kindProse},
	}
	for _, tt := range tests {
		if got := classifyLine(tt.line); got != tt.want {
			t.Errorf("classifyLine(%q) = %v, want %v", tt.line, got, tt.want)
		}
	}
}

func TestHistoryNavigation(t *testing.T) {
	h := newHistory(3)

	if _, ok := h.prev(); ok {
		t.Error("prev on empty history returned an entry")
	}

	h.push("look")
	h.push("look") // consecutive duplicate collapses
	h.push("go north")
	h.push("take map")

	if got, _ := h.prev(); got != "take map" {
		t.Errorf("prev = %q, want %q", got, "take map")
	}
	if got, _ := h.prev(); got != "go north" {
		t.Errorf("prev = %q, want %q", got, "go north")
	}
	if got, _ := h.prev(); got != "look" {
		t.Errorf("prev = %q, want %q", got, "look")
	}
	// At the oldest entry, prev stays put.
	if got, _ := h.prev(); got != "look" {
		t.Errorf("prev at oldest = %q, want %q", got, "look")
	}

	if got, _ := h.next(); got != "go north" {
		t.Errorf("next = %q, want %q", got, "go north")
	}
	h.next()
	if _, ok := h.next(); ok {
		t.Error("next past the newest entry should return to fresh input")
	}
}

func TestHistoryBounded(t *testing.T) {
	h := newHistory(2)
	h.push("a")
	h.push("b")
	h.push("c")
	if len(h.entries) != 2 {
		t.Errorf("len = %d, want 2", len(h.entries))
	}
	if h.entries[0] != "b" {
		t.Errorf("oldest = %q, want %q", h.entries[0], "b")
	}
}

func typeAndEnter(m Model, input string) Model {
	m.input.SetValue(input)
	next, _ := m.handleEnter()
	return next.(Model)
}

func TestHandleEnterRunsCommand(t *testing.T) {
	m := New(testEngine())
	m, _ = sized(m)

	m = typeAndEnter(m, "go north")

	if m.engine.State.Current != "Garden" {
		t.Errorf("Current = %q, want Garden", m.engine.State.Current)
	}

	transcript := transcriptText(m)
	if !strings.Contains(transcript, "> go north") {
		t.Error("input not echoed into the transcript")
	}
	if !strings.Contains(transcript, "== Garden ==") {
		t.Error("room description missing from transcript")
	}
}

func TestHandleEnterQuitFlow(t *testing.T) {
	m := New(testEngine())
	m, _ = sized(m)

	m = typeAndEnter(m, "quit")
	if !m.finished {
		t.Fatal("model not finished after quit verb")
	}
	if !strings.Contains(transcriptText(m), "story has ended") {
		t.Error("end-of-story notice missing")
	}

	// Next enter leaves the program.
	next, cmd := m.handleEnter()
	if cmd == nil {
		t.Fatal("expected a quit command")
	}
	if !next.(Model).quitting {
		t.Error("model not quitting after final enter")
	}
}

func TestStatusBarShowsRoomAndInventory(t *testing.T) {
	m := New(testEngine())
	m, _ = sized(m)

	m = typeAndEnter(m, "take map")

	bar := m.renderStatusBar()
	if !strings.Contains(bar, "Hall") {
		t.Errorf("status bar missing room: %q", bar)
	}
	if !strings.Contains(bar, "map") {
		t.Errorf("status bar missing inventory: %q", bar)
	}
}

// sized delivers a window size so the viewport initializes.
func sized(m Model) (Model, tea.Cmd) {
	next, cmd := m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	return next.(Model), cmd
}

func transcriptText(m Model) string {
	var b strings.Builder
	for _, rl := range m.rawLines {
		b.WriteString(rl.text)
		b.WriteString("\n")
	}
	return b.String()
}
