package engine

import (
	"strings"

	"github.com/jwebster45206/adventure-engine/pkg/session"
)

// Noun resolution is deliberately permissive: exact ID, then exact name,
// then substring of the item name. First match in candidate order wins, so
// ambiguity resolves by room/inventory listing order, not by best match.

// normalizeNoun lowercases and collapses whitespace runs to underscores,
// matching the item ID convention.
func normalizeNoun(noun string) string {
	return strings.Join(strings.Fields(strings.ToLower(noun)), "_")
}

// resolveInRoom matches a noun against a room's item list. The substring
// test runs over the underscore-normalized item name.
func (e *Engine) resolveInRoom(noun string, itemIDs []string) string {
	normalized := normalizeNoun(noun)
	for _, id := range itemIDs {
		def, ok := e.world.Item(id)
		if !ok {
			continue
		}
		if id == normalized || strings.EqualFold(def.Name, noun) {
			return id
		}
		if strings.Contains(normalizeNoun(def.Name), normalized) {
			return id
		}
	}
	return ""
}

// resolveInInventory matches a noun against held items. Unlike the room
// resolver, the substring test runs over the raw lowercased name; both
// behaviors are long-standing and covered by tests.
func (e *Engine) resolveInInventory(s *session.State, noun string) string {
	normalized := normalizeNoun(noun)
	lower := strings.ToLower(noun)
	for _, id := range s.Inventory {
		def, ok := e.world.Item(id)
		if !ok {
			continue
		}
		if id == normalized || strings.EqualFold(def.Name, noun) {
			return id
		}
		if strings.Contains(strings.ToLower(def.Name), lower) {
			return id
		}
	}
	return ""
}
