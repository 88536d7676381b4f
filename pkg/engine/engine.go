package engine

import (
	"errors"
	"fmt"
	"strings"

	"github.com/jwebster45206/adventure-engine/pkg/parser"
	"github.com/jwebster45206/adventure-engine/pkg/session"
	"github.com/jwebster45206/adventure-engine/pkg/world"
)

// Score rewards. The map's max_score is authored data and is not derived
// from these.
const (
	takeReward   = 2
	unlockReward = 3
	winReward    = 3
)

var (
	// ErrNotWon is returned by Advance when the session has not won its map.
	ErrNotWon = errors.New("session has not won its current map")
	// ErrLastMap is returned by Advance when there is no next map.
	ErrLastMap = errors.New("no further maps")
)

// Engine interprets parsed commands against a session and the static world.
// Every invalid action is an ordinary message with the session left
// unchanged; the engine never returns errors from Run.
type Engine struct {
	world *world.Registry
}

// New creates an engine over a world registry.
func New(reg *world.Registry) *Engine {
	return &Engine{world: reg}
}

// Run dispatches one parsed command, mutating the session in place and
// returning the text to show the player. An empty verb is a no-op with an
// empty message.
func (e *Engine) Run(s *session.State, cmd parser.Command) string {
	verb := strings.ToLower(cmd.Verb)
	noun := strings.TrimSpace(cmd.Noun)

	switch {
	case verb == "go" && noun != "" && world.IsDirectionWord(noun):
		return e.move(s, noun)

	case verb == "n", verb == "s", verb == "e", verb == "w", verb == "u", verb == "d":
		return e.move(s, verb)

	case verb == "take", verb == "get":
		if noun == "" {
			return "Take what?"
		}
		return e.take(s, noun)

	case verb == "drop":
		if noun == "" {
			return "Drop what?"
		}
		return e.drop(s, noun)

	case verb == "examine", verb == "x":
		if noun == "" {
			return "Examine what?"
		}
		return e.examine(s, noun)

	case verb == "inventory", verb == "i":
		return e.describeInventory(s)

	case verb == "open":
		return e.open(s, noun)

	case verb == "wield", verb == "wear", verb == "light":
		if noun == "" {
			return "Wield what?"
		}
		return e.wield(s, noun)

	case verb == "look", verb == "l":
		return e.describeRoom(s, s.RoomID)

	case verb == "score":
		return fmt.Sprintf("Your score: %d / %d.", s.Score, s.MaxScore)

	case verb == "":
		return ""

	default:
		echo := verb
		if noun != "" {
			echo += " " + noun
		}
		return fmt.Sprintf("I don't understand %q.", echo)
	}
}

// Describe renders the session's current room, honoring darkness.
func (e *Engine) Describe(s *session.State) string {
	return e.describeRoom(s, s.RoomID)
}

// Advance moves a won session to the next map in the progression and
// returns the opening description of the new map. Score and max score carry
// forward; everything room-scoped resets.
func (e *Engine) Advance(s *session.State) (string, error) {
	if !s.Won {
		return "", ErrNotWon
	}
	nextID, ok := e.world.NextMapID(s.MapID)
	if !ok {
		return "", ErrLastMap
	}
	if err := s.EnterMap(e.world, nextID); err != nil {
		return "", err
	}
	m, _ := e.world.Map(nextID)
	return m.Name + "\n\n" + e.describeRoom(s, s.RoomID), nil
}

func (e *Engine) move(s *session.State, dir string) string {
	room, ok := e.world.Room(s.MapID, s.RoomID)
	if !ok {
		return "You are nowhere."
	}

	dir = world.NormalizeDirection(dir)
	nextID, ok := room.Exits[dir]
	if !ok {
		return fmt.Sprintf("You cannot go %s.", dir)
	}

	if m, ok := e.world.Map(s.MapID); ok {
		if le, locked := m.LockedExitFrom(room.ID, dir); locked && !s.HasGlobalFlag(le.Flag) {
			return fmt.Sprintf("The door to the %s is locked. You need a key.", dir)
		}
	}

	s.RoomID = nextID
	return e.describeRoom(s, s.RoomID)
}

func (e *Engine) take(s *session.State, noun string) string {
	room, ok := e.world.Room(s.MapID, s.RoomID)
	if !ok {
		return "You are nowhere."
	}
	if room.Dark && !s.HasLight() {
		return "It is too dark to see."
	}

	id := e.resolveInRoom(noun, s.ItemsIn(room.ID))
	if id == "" {
		if held := e.resolveInInventory(s, noun); held != "" {
			return fmt.Sprintf("You already have the %s.", e.world.ItemName(held))
		}
		return fmt.Sprintf("You don't see %q here.", noun)
	}
	if s.HasItem(id) {
		return fmt.Sprintf("You already have the %s.", e.world.ItemName(id))
	}

	s.AddItem(id)
	s.RemoveFromRoom(room.ID, id)
	s.Score += takeReward

	if m, ok := e.world.Map(s.MapID); ok && s.RoomID == m.Win.RoomID && id == m.Win.ItemID {
		s.Won = true
		s.GameOver = true
		s.Score += winReward
	}
	return "Taken."
}

func (e *Engine) drop(s *session.State, noun string) string {
	room, ok := e.world.Room(s.MapID, s.RoomID)
	if !ok {
		return "You are nowhere."
	}

	id := e.resolveInInventory(s, noun)
	if id == "" {
		return fmt.Sprintf("You don't have %q.", noun)
	}

	s.RemoveItem(id)
	s.AddToRoom(room.ID, id)
	return "Dropped."
}

func (e *Engine) examine(s *session.State, noun string) string {
	room, ok := e.world.Room(s.MapID, s.RoomID)
	if !ok {
		return "You are nowhere."
	}

	var id string
	if !room.Dark || s.HasLight() {
		id = e.resolveInRoom(noun, s.ItemsIn(room.ID))
	}
	if id == "" {
		id = e.resolveInInventory(s, noun)
	}
	if id == "" {
		return fmt.Sprintf("You don't see %q here.", noun)
	}

	if def, ok := e.world.Item(id); ok && def.Description != "" {
		return def.Description
	}
	return "You see nothing special."
}

func (e *Engine) open(s *session.State, noun string) string {
	if noun == "" || !strings.Contains(strings.ToLower(noun), "door") {
		return "Open what?"
	}

	m, ok := e.world.Map(s.MapID)
	if !ok {
		return "You are nowhere."
	}
	le, ok := m.LockedExitFrom(s.RoomID, "")
	if !ok {
		return "There is no door to open here."
	}
	if s.HasGlobalFlag(le.Flag) {
		return "The door is already open."
	}
	if !s.HasItem(le.KeyID) {
		return "You don't have the key."
	}

	s.SetGlobalFlag(le.Flag)
	s.Score += unlockReward
	return fmt.Sprintf("You unlock the heavy door with the %s. It swings open.", e.world.ItemName(le.KeyID))
}

func (e *Engine) wield(s *session.State, noun string) string {
	id := e.resolveInInventory(s, noun)
	if id == "" {
		return fmt.Sprintf("You don't have %q.", noun)
	}

	def, ok := e.world.Item(id)
	if !ok {
		return "You can't wield that."
	}

	// Only weapons and lights are wieldable; armor and relics have no verb
	// in the vocabulary.
	var slot world.Slot
	switch def.Slot {
	case world.SlotWeapon:
		slot = world.SlotWeapon
	case world.SlotLight:
		slot = world.SlotLight
	default:
		return "You can't wield that."
	}

	s.Equip(def, slot)
	action := "wield"
	if slot == world.SlotLight {
		action = "light"
	}
	return fmt.Sprintf("You %s the %s.", action, def.Name)
}
