package world

import "sort"

// Room is a place in the game world. Room definitions are static; the items
// list here is the initial contents, copied into each session so takes and
// drops never touch the definition.
type Room struct {
	ID          string            `json:"id"`
	Name        string            `json:"name"`
	Description string            `json:"description"`
	Exits       map[string]string `json:"exits,omitempty"` // direction → room ID
	Items       []string          `json:"items,omitempty"`
	Dark        bool              `json:"dark,omitempty"` // needs an equipped light to see
}

// ExitDirections returns the room's exit directions in sorted order, so
// rendered exit lists are stable.
func (r *Room) ExitDirections() []string {
	dirs := make([]string, 0, len(r.Exits))
	for d := range r.Exits {
		dirs = append(dirs, d)
	}
	sort.Strings(dirs)
	return dirs
}
