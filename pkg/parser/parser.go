package parser

import (
	"strings"

	"github.com/jwebster45206/adventure-engine/pkg/world"
)

// Command is a parsed input line. Verb is empty for blank input, which
// callers must treat as a no-op. Noun is empty when the line had no second
// token; tokens beyond the second are discarded.
type Command struct {
	Verb string `json:"verb"`
	Noun string `json:"noun,omitempty"`
	Raw  string `json:"raw"`
}

// Parse splits a raw input line into a verb and an optional noun. Input is
// lowercased and split on whitespace. A lone direction abbreviation
// (n/s/e/w/u/d) is rewritten to "go <direction>" so the dispatcher only sees
// the long form.
func Parse(input string) Command {
	raw := strings.TrimSpace(input)
	if raw == "" {
		return Command{Raw: raw}
	}

	fields := strings.Fields(strings.ToLower(raw))
	verb := fields[0]
	noun := ""
	if len(fields) > 1 {
		noun = fields[1]
	}

	if len(fields) == 1 {
		if full, ok := world.ExpandDirection(verb); ok {
			return Command{Verb: "go", Noun: full, Raw: raw}
		}
	}

	return Command{Verb: verb, Noun: noun, Raw: raw}
}
