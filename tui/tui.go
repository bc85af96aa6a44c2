package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/muesli/reflow/wordwrap"

	"github.com/tmarceau/fable/engine"
)

// rawLine stores an unstyled output line with its classification so
// the whole transcript can be re-wrapped and re-styled on resize.
type rawLine struct {
	text    string
	kind    lineKind
	isInput bool // echoed player input
}

// Model is the Bubble Tea model for the fable TUI. There are no
// UI-level meta-commands: save, load, and quit are game verbs and go
// through the engine like everything else.
type Model struct {
	engine *engine.Engine

	viewport viewport.Model
	input    textinput.Model
	history  *history

	rawLines []rawLine

	width    int
	height   int
	ready    bool
	finished bool // engine stopped; next enter leaves
	quitting bool
}

// gameOutputMsg carries engine output into the Update loop.
type gameOutputMsg struct {
	input string // echoed player input (empty for the intro)
	lines []string
}

// New creates a TUI model wired to the given engine.
func New(eng *engine.Engine) Model {
	ti := textinput.New()
	ti.Prompt = "> "
	ti.Focus()
	ti.CharLimit = 256
	ti.PromptStyle = styleInputPrompt

	return Model{
		engine:  eng,
		input:   ti,
		history: newHistory(100),
	}
}

// Run starts the Bubble Tea program.
func Run(eng *engine.Engine) error {
	p := tea.NewProgram(New(eng), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

// Init produces the intro banner and the first room description.
func (m Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.initialOutput())
}

func (m Model) initialOutput() tea.Cmd {
	return func() tea.Msg {
		var lines []string

		meta := m.engine.World.Metadata
		if meta.Title != "" {
			banner := meta.Title
			if meta.Author != "" {
				banner += " by " + meta.Author
			}
			lines = append(lines, banner)
			lines = append(lines, "")
		}

		lines = append(lines, m.engine.Step("look").Output...)
		return gameOutputMsg{lines: lines}
	}
}

// Update handles key presses, resizes, and engine output.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

		vpHeight := m.height - 2 // status bar + input line
		if vpHeight < 1 {
			vpHeight = 1
		}

		if !m.ready {
			m.viewport = viewport.New(m.width, vpHeight)
			m.ready = true
		} else {
			m.viewport.Width = m.width
			m.viewport.Height = vpHeight
		}

		m.refreshViewport()

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			m.quitting = true
			return m, tea.Quit

		case "enter":
			return m.handleEnter()

		case "up":
			if prev, ok := m.history.prev(); ok {
				m.input.SetValue(prev)
				m.input.CursorEnd()
			}
			return m, nil

		case "down":
			if next, ok := m.history.next(); ok {
				m.input.SetValue(next)
				m.input.CursorEnd()
			} else {
				m.input.SetValue("")
				m.history.reset()
			}
			return m, nil

		case "pgup", "pgdown":
			var vpCmd tea.Cmd
			m.viewport, vpCmd = m.viewport.Update(msg)
			return m, vpCmd
		}

	case gameOutputMsg:
		m = m.appendOutput(msg)
	}

	var inputCmd tea.Cmd
	m.input, inputCmd = m.input.Update(msg)
	cmds = append(cmds, inputCmd)

	return m, tea.Batch(cmds...)
}

// handleEnter feeds the submitted line to the engine.
func (m Model) handleEnter() (tea.Model, tea.Cmd) {
	if m.finished {
		m.quitting = true
		return m, tea.Quit
	}

	input := strings.TrimSpace(m.input.Value())
	m.input.SetValue("")

	if input == "" {
		return m, nil
	}

	m.history.push(input)
	m.history.reset()

	result := m.engine.Step(input)
	m = m.appendOutput(gameOutputMsg{input: input, lines: result.Output})

	if !result.Running {
		m.finished = true
		m = m.appendOutput(gameOutputMsg{lines: []string{"The story has ended. Press enter to leave."}})
	}
	return m, nil
}

// appendOutput adds lines to the transcript and refreshes the viewport.
func (m Model) appendOutput(msg gameOutputMsg) Model {
	if msg.input != "" {
		m.rawLines = append(m.rawLines, rawLine{text: "> " + msg.input, isInput: true})
	}

	for _, line := range msg.lines {
		m.rawLines = append(m.rawLines, rawLine{text: line, kind: classifyLine(line)})
	}

	// Blank separator between turns.
	m.rawLines = append(m.rawLines, rawLine{})

	m.refreshViewport()
	return m
}

// refreshViewport re-wraps and re-styles the transcript at the current
// width and scrolls to the bottom.
func (m *Model) refreshViewport() {
	if !m.ready {
		return
	}

	width := m.width
	if width < 10 {
		width = 10
	}

	var styled []string
	for _, rl := range m.rawLines {
		if rl.text == "" {
			styled = append(styled, "")
			continue
		}

		wrapped := wordwrap.String(rl.text, width)
		if rl.isInput {
			styled = append(styled, stylePlayerInput.Render(wrapped))
			continue
		}
		styled = append(styled, renderLine(wrapped, rl.kind))
	}

	m.viewport.SetContent(strings.Join(styled, "\n"))
	m.viewport.GotoBottom()
}

// View renders viewport + status bar + input line.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if !m.ready {
		return "Loading..."
	}
	return m.viewport.View() + "\n" + m.renderStatusBar() + "\n" + m.input.View()
}
