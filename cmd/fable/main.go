// Fable is a data-driven runtime for text adventures described by
// declarative world documents (JSON, YAML, or a Lua DSL).
// Usage: fable [--version] [--plain] [world_file]
package main

import (
	"fmt"
	"os"

	"github.com/tmarceau/fable/cli"
	"github.com/tmarceau/fable/engine"
	"github.com/tmarceau/fable/loader"
	"github.com/tmarceau/fable/tui"
)

const defaultWorldFile = "game_map.json"

// Set via -ldflags at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	plain := false
	worldPath := ""

	for _, arg := range os.Args[1:] {
		switch arg {
		case "--version":
			fmt.Printf("fable %s (commit %s, built %s)\n", version, commit, date)
			return
		case "--plain":
			plain = true
		default:
			if worldPath == "" {
				worldPath = arg
			} else {
				fmt.Fprintf(os.Stderr, "Usage: fable [--version] [--plain] [world_file]\n")
				os.Exit(1)
			}
		}
	}

	cfg, err := cli.LoadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading configuration: %v\n", err)
		os.Exit(1)
	}

	// Only the default path gets the sample-world fallback; an explicit
	// path that doesn't exist is the player's mistake to fix.
	if worldPath == "" {
		worldPath = defaultWorldFile
		created, err := loader.EnsureFile(worldPath, loader.SampleDocument)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating sample world: %v\n", err)
			os.Exit(1)
		}
		if created {
			fmt.Printf("No world found. Created a sample at '%s'. Edit it to make your own game.\n", worldPath)
		}
	}

	world, err := loader.Load(worldPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading world: %v\n", err)
		os.Exit(1)
	}

	eng := engine.New(world)
	eng.SaveDir = cfg.SaveDir

	if plain || cfg.Plain || !isTerminal() {
		cli.New(eng, cfg).Run()
		return
	}

	if err := tui.Run(eng); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// isTerminal returns true if stdout is a terminal (not piped/redirected).
func isTerminal() bool {
	fi, err := os.Stdout.Stat()
	if err != nil {
		return false
	}
	return fi.Mode()&os.ModeCharDevice != 0
}
