package session

import "github.com/jwebster45206/adventure-engine/pkg/world"

// Inventory and equipment mutators. An item ID appears at most once in the
// inventory, and each equip slot holds at most one item.

// HasItem reports whether the session holds an item.
func (s *State) HasItem(itemID string) bool {
	for _, id := range s.Inventory {
		if id == itemID {
			return true
		}
	}
	return false
}

// AddItem puts an item into the inventory. Adding an item already held is a
// no-op.
func (s *State) AddItem(itemID string) {
	if s.HasItem(itemID) {
		return
	}
	s.Inventory = append(s.Inventory, itemID)
}

// RemoveItem takes an item out of the inventory.
func (s *State) RemoveItem(itemID string) bool {
	for i, id := range s.Inventory {
		if id == itemID {
			s.Inventory = append(s.Inventory[:i], s.Inventory[i+1:]...)
			return true
		}
	}
	return false
}

// Equip places a held item into a slot. It fails when the item is not held,
// or when the item's definition names a different slot. Whatever previously
// occupied the slot is silently replaced.
func (s *State) Equip(def world.ItemDef, slot world.Slot) bool {
	if !s.HasItem(def.ID) {
		return false
	}
	if def.Slot != "" && def.Slot != slot {
		return false
	}
	if s.Equipped == nil {
		s.Equipped = make(map[world.Slot]string)
	}
	s.Equipped[slot] = def.ID
	return true
}

// Unequip empties a slot and returns the item that occupied it, if any.
func (s *State) Unequip(slot world.Slot) string {
	itemID := s.Equipped[slot]
	delete(s.Equipped, slot)
	return itemID
}

// EquippedIn returns the item occupying a slot, or "".
func (s *State) EquippedIn(slot world.Slot) string {
	return s.Equipped[slot]
}

// HasLight reports whether any item occupies the light slot. Presence is
// all that matters; there is no notion of light potency.
func (s *State) HasLight() bool {
	return s.Equipped[world.SlotLight] != ""
}
