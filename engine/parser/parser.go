// Package parser converts raw input lines into Command structs.
// Intentionally dumb: no NLP and no synonym resolution. The engine owns
// verb aliasing so the parser stays a pure tokenizer.
package parser

import (
	"strings"

	"github.com/tmarceau/fable/types"
)

// Parse normalizes a raw line into a (verb, argument) pair.
//
// The line is trimmed and lower-cased, then split on whitespace. The
// first token is the verb; the rest, joined by single spaces, is the
// argument. One lookahead rule runs before the generic split: "talk to
// X" keeps "talk" as the verb and takes everything after "to" as the
// argument, so "talk to old man" and "talk old man" parse the same.
func Parse(raw string) types.Command {
	words := strings.Fields(strings.ToLower(strings.TrimSpace(raw)))
	if len(words) == 0 {
		return types.Command{}
	}

	if len(words) >= 2 && words[0] == "talk" && words[1] == "to" {
		return types.Command{
			Verb: "talk",
			Arg:  strings.Join(words[2:], " "),
		}
	}

	return types.Command{
		Verb: words[0],
		Arg:  strings.Join(words[1:], " "),
	}
}
