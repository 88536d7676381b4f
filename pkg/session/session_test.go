package session

import (
	"encoding/json"
	"testing"

	"github.com/jwebster45206/adventure-engine/pkg/world"
)

func TestNewSession(t *testing.T) {
	reg := world.Default()

	s, err := New(reg, "")
	if err != nil {
		t.Fatalf("Failed to create session: %v", err)
	}

	if s.MapID != "tower" {
		t.Errorf("Expected default map 'tower', got %q", s.MapID)
	}
	if s.RoomID != "field" {
		t.Errorf("Expected start room 'field', got %q", s.RoomID)
	}
	if s.Score != 0 || s.MaxScore != 12 {
		t.Errorf("Expected score 0/12, got %d/%d", s.Score, s.MaxScore)
	}
	if s.GameOver || s.Won {
		t.Error("New session must not be over")
	}
	if s.ID.String() == "" {
		t.Error("Expected session ID to be set")
	}
}

func TestNewSessionUnknownMap(t *testing.T) {
	reg := world.Default()
	if _, err := New(reg, "atlantis"); err == nil {
		t.Error("Expected error for unknown map")
	}
}

func TestRoomItemsAreSessionScoped(t *testing.T) {
	reg := world.Default()

	s1, err := New(reg, "tower")
	if err != nil {
		t.Fatalf("Failed to create session: %v", err)
	}
	s2, err := New(reg, "tower")
	if err != nil {
		t.Fatalf("Failed to create session: %v", err)
	}

	if !s1.RemoveFromRoom("tower_entrance", "torch") {
		t.Fatal("Expected to remove torch from tower_entrance")
	}

	// The other session and the definition both keep their torch.
	if len(s2.ItemsIn("tower_entrance")) != 2 {
		t.Errorf("Expected sibling session untouched, got %v", s2.ItemsIn("tower_entrance"))
	}
	def, _ := reg.Room("tower", "tower_entrance")
	if len(def.Items) != 2 {
		t.Errorf("Expected room definition untouched, got %v", def.Items)
	}
}

func TestInventory(t *testing.T) {
	reg := world.Default()
	s, _ := New(reg, "")

	if s.HasItem("torch") {
		t.Error("New session should hold nothing")
	}

	s.AddItem("torch")
	if !s.HasItem("torch") {
		t.Error("Expected torch in inventory")
	}

	// Adding again must not duplicate.
	s.AddItem("torch")
	if len(s.Inventory) != 1 {
		t.Errorf("Expected 1 item, got %d", len(s.Inventory))
	}

	if !s.RemoveItem("torch") {
		t.Error("Expected removal to succeed")
	}
	if s.RemoveItem("torch") {
		t.Error("Expected second removal to fail")
	}
}

func TestEquip(t *testing.T) {
	reg := world.Default()
	s, _ := New(reg, "")
	torch, _ := reg.Item("torch")
	sword, _ := reg.Item("broadsword")

	// Not held yet.
	if s.Equip(torch, world.SlotLight) {
		t.Error("Equipping an item not held must fail")
	}

	s.AddItem("torch")
	s.AddItem("broadsword")

	// Wrong slot for the item's definition.
	if s.Equip(torch, world.SlotWeapon) {
		t.Error("Equipping into a mismatched slot must fail")
	}

	if !s.Equip(torch, world.SlotLight) {
		t.Error("Expected equip to succeed")
	}
	if got := s.EquippedIn(world.SlotLight); got != "torch" {
		t.Errorf("Expected torch in light slot, got %q", got)
	}
	if !s.HasLight() {
		t.Error("Expected HasLight after equipping a light")
	}

	if !s.Equip(sword, world.SlotWeapon) {
		t.Error("Expected weapon equip to succeed")
	}
}

func TestEquipReplacesSlotSilently(t *testing.T) {
	lantern := world.ItemDef{ID: "lantern", Name: "lantern", Description: "A lantern.", Slot: world.SlotLight}
	torch := world.ItemDef{ID: "torch2", Name: "spare torch", Description: "Another torch.", Slot: world.SlotLight}

	reg := world.Default()
	s, _ := New(reg, "")
	s.AddItem("lantern")
	s.AddItem("torch2")

	s.Equip(lantern, world.SlotLight)
	s.Equip(torch, world.SlotLight)

	// The previous occupant is replaced; there is no unequip step.
	if got := s.EquippedIn(world.SlotLight); got != "torch2" {
		t.Errorf("Expected torch2 to displace lantern, got %q", got)
	}
}

func TestUnequip(t *testing.T) {
	reg := world.Default()
	s, _ := New(reg, "")
	torch, _ := reg.Item("torch")
	s.AddItem("torch")
	s.Equip(torch, world.SlotLight)

	if got := s.Unequip(world.SlotLight); got != "torch" {
		t.Errorf("Expected torch returned, got %q", got)
	}
	if s.HasLight() {
		t.Error("Expected light slot to be empty")
	}
	if got := s.Unequip(world.SlotLight); got != "" {
		t.Errorf("Expected empty slot, got %q", got)
	}
}

func TestFlags(t *testing.T) {
	reg := world.Default()
	s, _ := New(reg, "")

	if s.HasGlobalFlag("sanctum_door_open") {
		t.Error("Flag should start unset")
	}
	s.SetGlobalFlag("sanctum_door_open")
	if !s.HasGlobalFlag("sanctum_door_open") {
		t.Error("Expected flag to be set")
	}

	if s.HasRoomFlag("hall", "visited") {
		t.Error("Room flag should start unset")
	}
	s.SetRoomFlag("hall", "visited")
	if !s.HasRoomFlag("hall", "visited") {
		t.Error("Expected room flag to be set")
	}
	if s.HasRoomFlag("field", "visited") {
		t.Error("Room flags are scoped to their room")
	}
}

func TestEnterMapResetsRoomState(t *testing.T) {
	reg := world.Default()
	s, _ := New(reg, "tower")

	s.AddItem("torch")
	s.SetGlobalFlag("sanctum_door_open")
	s.Score = 8
	s.Won = true
	s.GameOver = true

	if err := s.EnterMap(reg, "vault"); err != nil {
		t.Fatalf("Failed to enter map: %v", err)
	}

	if s.MapID != "vault" || s.RoomID != "passage" {
		t.Errorf("Expected vault/passage, got %s/%s", s.MapID, s.RoomID)
	}
	if len(s.Inventory) != 0 {
		t.Errorf("Expected inventory cleared, got %v", s.Inventory)
	}
	if s.HasGlobalFlag("sanctum_door_open") {
		t.Error("Expected flags cleared")
	}
	if s.Score != 8 {
		t.Errorf("Score carries forward, got %d", s.Score)
	}
	if s.MaxScore != 12+14 {
		t.Errorf("Expected accumulated max score 26, got %d", s.MaxScore)
	}
	if s.Won || s.GameOver {
		t.Error("Expected won/game over cleared")
	}
	if len(s.ItemsIn("passage")) != 2 {
		t.Errorf("Expected fresh vault room items, got %v", s.ItemsIn("passage"))
	}
}

func TestTranscriptCap(t *testing.T) {
	reg := world.Default()
	s, _ := New(reg, "")

	for i := 0; i < TranscriptLimit+25; i++ {
		s.Record(RolePlayer, "look")
	}
	if len(s.Transcript) != TranscriptLimit {
		t.Errorf("Expected transcript capped at %d, got %d", TranscriptLimit, len(s.Transcript))
	}
}

func TestJSONRoundTrip(t *testing.T) {
	reg := world.Default()
	s, _ := New(reg, "")
	torch, _ := reg.Item("torch")
	s.AddItem("torch")
	s.Equip(torch, world.SlotLight)
	s.SetGlobalFlag("sanctum_door_open")
	s.Score = 5
	s.Record(RoleNarrator, "Taken.")

	data, err := json.Marshal(s)
	if err != nil {
		t.Fatalf("Failed to marshal session: %v", err)
	}

	var loaded State
	if err := json.Unmarshal(data, &loaded); err != nil {
		t.Fatalf("Failed to unmarshal session: %v", err)
	}

	if loaded.ID != s.ID {
		t.Errorf("Expected ID %v, got %v", s.ID, loaded.ID)
	}
	if !loaded.HasItem("torch") || !loaded.HasLight() {
		t.Error("Expected inventory and equipment to survive the round trip")
	}
	if !loaded.HasGlobalFlag("sanctum_door_open") {
		t.Error("Expected flags to survive the round trip")
	}
	if len(loaded.ItemsIn("tower_entrance")) != 2 {
		t.Errorf("Expected room items to survive, got %v", loaded.ItemsIn("tower_entrance"))
	}
}
