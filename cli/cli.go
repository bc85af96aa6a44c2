// Package cli provides the plain line-based session controller: read a
// line, feed it to the engine, print the messages, loop until the
// engine stops.
package cli

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/muesli/reflow/wordwrap"

	"github.com/tmarceau/fable/engine"
)

// CLI handles terminal interaction with the player. In and Out are
// injectable for tests and script playback.
type CLI struct {
	Engine    *engine.Engine
	In        io.Reader
	Out       io.Writer
	WrapWidth int
}

// New creates a CLI wired to the given engine using the configured
// wrap width.
func New(eng *engine.Engine, cfg Config) *CLI {
	return &CLI{
		Engine:    eng,
		In:        os.Stdin,
		Out:       os.Stdout,
		WrapWidth: cfg.WrapWidth,
	}
}

// Run starts the session: banner, initial room description, then the
// prompt loop. It returns when the engine stops or input ends.
func (c *CLI) Run() {
	meta := c.Engine.World.Metadata
	if meta.Title != "" {
		banner := meta.Title
		if meta.Author != "" {
			banner += " by " + meta.Author
		}
		c.printLine(banner)
	}
	c.printLine("Type 'help' for commands.")
	c.printLine("")

	c.printOutput(c.Engine.Step("look").Output)

	scanner := bufio.NewScanner(c.In)
	for {
		c.print("> ")
		if !scanner.Scan() {
			// End of input or interrupt: orderly shutdown, not a failure.
			c.printLine("")
			c.printLine("Goodbye.")
			return
		}

		input := strings.TrimSpace(scanner.Text())
		if input == "" {
			continue
		}

		result := c.Engine.Step(input)
		c.printOutput(result.Output)

		if !result.Running {
			return
		}
	}
}

func (c *CLI) printOutput(lines []string) {
	for _, line := range lines {
		c.printLine(line)
	}
	if len(lines) > 0 {
		c.printLine("")
	}
}

func (c *CLI) printLine(text string) {
	if c.WrapWidth > 0 {
		text = wordwrap.String(text, c.WrapWidth)
	}
	fmt.Fprintln(c.Out, text)
}

func (c *CLI) print(text string) {
	fmt.Fprint(c.Out, text)
}
