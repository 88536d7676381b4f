package world

// Slot is an equipment category. A slot holds at most one item at a time.
type Slot string

const (
	SlotWeapon Slot = "weapon"
	SlotArmor  Slot = "armor"
	SlotLight  Slot = "light"
	SlotRelic  Slot = "relic"
)

// ItemDef describes an item that can appear in rooms or be carried.
// Definitions are immutable and shared; only room/inventory membership moves.
type ItemDef struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Slot        Slot   `json:"slot,omitempty"` // empty when the item is not equippable
}
