package world

const (
	North = "north"
	South = "south"
	East  = "east"
	West  = "west"
	Up    = "up"
	Down  = "down"
)

var directionAliases = map[string]string{
	"n": North,
	"s": South,
	"e": East,
	"w": West,
	"u": Up,
	"d": Down,
}

var directionWords = map[string]bool{
	North: true, South: true, East: true, West: true, Up: true, Down: true,
	"n": true, "s": true, "e": true, "w": true, "u": true, "d": true,
}

// ExpandDirection resolves a single-letter abbreviation (n/s/e/w/u/d) to its
// full direction name. The second return is false for anything else,
// including full direction names.
func ExpandDirection(s string) (string, bool) {
	full, ok := directionAliases[s]
	return full, ok
}

// NormalizeDirection returns the full direction name for an abbreviation,
// or the input unchanged.
func NormalizeDirection(s string) string {
	if full, ok := directionAliases[s]; ok {
		return full
	}
	return s
}

// IsDirectionWord reports whether s is a direction name or abbreviation.
func IsDirectionWord(s string) bool {
	return directionWords[s]
}
