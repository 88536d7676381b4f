package engine

import (
	"fmt"
	"sort"
	"strings"

	"github.com/jwebster45206/adventure-engine/pkg/session"
	"github.com/jwebster45206/adventure-engine/pkg/world"
)

const roomDivider = "========================================"

// describeRoom renders a room: dividers, name, description, items, exits.
// In a dark room without an equipped light only the name and a darkness
// message are shown; items and exits stay hidden.
func (e *Engine) describeRoom(s *session.State, roomID string) string {
	room, ok := e.world.Room(s.MapID, roomID)
	if !ok {
		return "You are nowhere."
	}

	lines := []string{roomDivider, room.Name, roomDivider, ""}

	if room.Dark && !s.HasLight() {
		lines = append(lines, "It is too dark to see. Light a torch or find another source of light.")
		return strings.Join(lines, "\n")
	}

	lines = append(lines, room.Description, "")

	if items := s.ItemsIn(room.ID); len(items) > 0 {
		names := make([]string, len(items))
		for i, id := range items {
			names[i] = e.world.ItemName(id)
		}
		lines = append(lines, fmt.Sprintf("You see: %s.", strings.Join(names, ", ")), "")
	}

	if exits := room.ExitDirections(); len(exits) > 0 {
		lines = append(lines, fmt.Sprintf("Exits: %s.", strings.Join(exits, ", ")))
	}

	return strings.Join(lines, "\n")
}

// describeInventory lists held items and occupied equip slots.
func (e *Engine) describeInventory(s *session.State) string {
	if len(s.Inventory) == 0 {
		return "You carry nothing."
	}

	names := make([]string, len(s.Inventory))
	for i, id := range s.Inventory {
		names[i] = e.world.ItemName(id)
	}
	lines := []string{fmt.Sprintf("You carry: %s.", strings.Join(names, ", "))}

	if len(s.Equipped) > 0 {
		slots := make([]string, 0, len(s.Equipped))
		for slot := range s.Equipped {
			slots = append(slots, string(slot))
		}
		sort.Strings(slots)

		pairs := make([]string, len(slots))
		for i, slot := range slots {
			pairs[i] = fmt.Sprintf("%s → %s", slot, e.world.ItemName(s.Equipped[world.Slot(slot)]))
		}
		lines = append(lines, fmt.Sprintf("Wielded: %s", strings.Join(pairs, ", ")))
	}

	return strings.Join(lines, "\n")
}
