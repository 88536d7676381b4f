package world

// WinCondition is the (room, item) pair that ends a map in victory: taking
// the item while standing in the room.
type WinCondition struct {
	RoomID string `json:"room_id"`
	ItemID string `json:"item_id"`
}

// LockedExit gates an exit behind a key-unlocked flag. The exit is not
// traversable until the flag is set, which the "open" command does when the
// player holds the key.
type LockedExit struct {
	FromRoomID string `json:"from_room_id"`
	ToRoomID   string `json:"to_room_id"`
	Direction  string `json:"direction"`
	KeyID      string `json:"key_id"`
	Flag       string `json:"flag"`
}

// MapDef is a playable map: a set of rooms, a starting room, a win
// condition, and any locked exits. Maps are played in a fixed sequence.
type MapDef struct {
	ID          string       `json:"id"`
	Name        string       `json:"name"`
	Sequence    int          `json:"sequence"` // position in the progression, 1-based
	Rooms       []Room       `json:"rooms"`
	StartRoomID string       `json:"start_room_id"`
	Win         WinCondition `json:"win_condition"`
	MaxScore    int          `json:"max_score"`
	LockedExits []LockedExit `json:"locked_exits,omitempty"`
}

// LockedExitFrom returns the locked exit leaving roomID in direction, if any.
// An empty direction matches any locked exit leaving the room.
func (m *MapDef) LockedExitFrom(roomID, direction string) (LockedExit, bool) {
	for _, le := range m.LockedExits {
		if le.FromRoomID != roomID {
			continue
		}
		if direction == "" || le.Direction == direction {
			return le, true
		}
	}
	return LockedExit{}, false
}
