package cli

import (
	"bytes"
	"strings"
	"testing"

	"github.com/tmarceau/fable/engine"
	"github.com/tmarceau/fable/loader"
)

func testCLI(t *testing.T, input string) (*CLI, *bytes.Buffer) {
	t.Helper()
	w, err := loader.Compile(loader.SampleDocument())
	if err != nil {
		t.Fatalf("compiling sample world: %v", err)
	}
	eng := engine.New(w)
	eng.SaveDir = t.TempDir()

	out := &bytes.Buffer{}
	return &CLI{
		Engine:    eng,
		In:        strings.NewReader(input),
		Out:       out,
		WrapWidth: 78,
	}, out
}

func TestRunBannerAndInitialLook(t *testing.T) {
	c, out := testCLI(t, "quit\n")
	c.Run()

	got := out.String()
	for _, want := range []string{
		"The Locked Door by fable",
		"Type 'help' for commands.",
		"== Hall ==",
		"You see: map",
		"Goodbye.",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("output missing %q:\n%s", want, got)
		}
	}
}

func TestRunStopsOnEOF(t *testing.T) {
	c, out := testCLI(t, "look\n")
	c.Run()

	if !strings.Contains(out.String(), "Goodbye.") {
		t.Errorf("EOF did not produce an orderly goodbye:\n%s", out.String())
	}
}

func TestRunSkipsBlankLines(t *testing.T) {
	c, out := testCLI(t, "\n   \nquit\n")
	c.Run()

	// Exactly one goodbye, no complaints about the blank lines.
	if got := strings.Count(out.String(), "Goodbye."); got != 1 {
		t.Errorf("Goodbye appeared %d times, want 1", got)
	}
	if strings.Contains(out.String(), "don't understand") {
		t.Errorf("blank line treated as a command:\n%s", out.String())
	}
}

// A full winning playthrough of the sample world ends the loop without
// an explicit quit.
func TestRunWinningPlaythrough(t *testing.T) {
	script := strings.Join([]string{
		"take map",
		"go east",
		"take silver_key",
		"go north",
		"take treasure",
		// Anything after the win is never read.
		"look",
	}, "\n") + "\n"

	c, out := testCLI(t, script)
	c.Run()

	got := out.String()
	if !strings.Contains(got, "CONGRATULATIONS") {
		t.Fatalf("no win banner:\n%s", got)
	}
	if !strings.Contains(got, "unlock the way north") {
		t.Errorf("auto-unlock message missing:\n%s", got)
	}
	// The loop must have stopped at the banner.
	if strings.Contains(strings.SplitN(got, "CONGRATULATIONS", 2)[1], "== Treasure Room ==") {
		t.Errorf("loop kept processing input after the win:\n%s", got)
	}
}

func TestOutputWrapping(t *testing.T) {
	c, out := testCLI(t, "quit\n")
	c.WrapWidth = 30
	c.Run()

	for _, line := range strings.Split(out.String(), "\n") {
		if len(line) > 30 {
			t.Errorf("line longer than wrap width: %q", line)
		}
	}
}

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.SaveDir != "." {
		t.Errorf("SaveDir = %q, want %q", cfg.SaveDir, ".")
	}
	if cfg.WrapWidth != 78 {
		t.Errorf("WrapWidth = %d, want 78", cfg.WrapWidth)
	}
}

func TestLoadConfigFromEnv(t *testing.T) {
	t.Setenv("FABLE_SAVE_DIR", "/tmp/saves")
	t.Setenv("FABLE_PLAIN", "true")
	t.Setenv("FABLE_WRAP_WIDTH", "60")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.SaveDir != "/tmp/saves" || !cfg.Plain || cfg.WrapWidth != 60 {
		t.Errorf("cfg = %+v", cfg)
	}
}
