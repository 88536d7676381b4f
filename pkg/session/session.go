package session

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/jwebster45206/adventure-engine/pkg/world"
)

// State is the mutable record of one play session. Every command reads and
// writes it; the service layer persists it between requests. Room item lists
// are copied out of the map definition at map entry so takes and drops are
// private to the session.
type State struct {
	ID          uuid.UUID                  `json:"id"`
	MapID       string                     `json:"map_id"`
	RoomID      string                     `json:"room_id"`
	Inventory   []string                   `json:"inventory,omitempty"`
	Equipped    map[world.Slot]string      `json:"equipped,omitempty"`   // slot → item ID
	RoomItems   map[string][]string        `json:"room_items"`           // room ID → items lying there
	RoomFlags   map[string]map[string]bool `json:"room_flags,omitempty"` // room ID → flag set
	GlobalFlags map[string]bool            `json:"global_flags,omitempty"`
	Score       int                        `json:"score"`
	MaxScore    int                        `json:"max_score"`
	GameOver    bool                       `json:"game_over"`
	Won         bool                       `json:"won"`
	Transcript  []Entry                    `json:"transcript,omitempty"`
	CreatedAt   time.Time                  `json:"created_at"`
	UpdatedAt   time.Time                  `json:"updated_at"`
}

// New creates a session at the start of the given map. An empty mapID starts
// the first map in the progression.
func New(reg *world.Registry, mapID string) (*State, error) {
	if mapID == "" {
		mapID = reg.FirstMapID()
	}
	s := &State{
		ID:        uuid.New(),
		CreatedAt: time.Now(),
	}
	if err := s.EnterMap(reg, mapID); err != nil {
		return nil, err
	}
	return s, nil
}

// EnterMap (re)positions the session at the start of a map: fresh room item
// lists, cleared inventory, equipment and flags. Score carries over and the
// map's max score is added to the running maximum.
func (s *State) EnterMap(reg *world.Registry, mapID string) error {
	m, ok := reg.Map(mapID)
	if !ok {
		return fmt.Errorf("unknown map: %s", mapID)
	}

	s.MapID = m.ID
	s.RoomID = m.StartRoomID
	s.Inventory = nil
	s.Equipped = make(map[world.Slot]string)
	s.RoomFlags = make(map[string]map[string]bool)
	s.GlobalFlags = make(map[string]bool)
	s.MaxScore += m.MaxScore
	s.GameOver = false
	s.Won = false

	s.RoomItems = make(map[string][]string, len(m.Rooms))
	for _, room := range m.Rooms {
		items := make([]string, len(room.Items))
		copy(items, room.Items)
		s.RoomItems[room.ID] = items
	}
	return nil
}

// ItemsIn returns the items currently lying in a room.
func (s *State) ItemsIn(roomID string) []string {
	return s.RoomItems[roomID]
}

// RemoveFromRoom deletes one occurrence of itemID from a room's item list.
func (s *State) RemoveFromRoom(roomID, itemID string) bool {
	items := s.RoomItems[roomID]
	for i, id := range items {
		if id == itemID {
			s.RoomItems[roomID] = append(items[:i], items[i+1:]...)
			return true
		}
	}
	return false
}

// AddToRoom appends itemID to a room's item list.
func (s *State) AddToRoom(roomID, itemID string) {
	s.RoomItems[roomID] = append(s.RoomItems[roomID], itemID)
}

// SetGlobalFlag marks a world-state change, e.g. a door being unlocked.
func (s *State) SetGlobalFlag(flag string) {
	if s.GlobalFlags == nil {
		s.GlobalFlags = make(map[string]bool)
	}
	s.GlobalFlags[flag] = true
}

// HasGlobalFlag reports whether a global flag is set.
func (s *State) HasGlobalFlag(flag string) bool {
	return s.GlobalFlags[flag]
}

// SetRoomFlag sets a flag scoped to one room.
func (s *State) SetRoomFlag(roomID, flag string) {
	if s.RoomFlags == nil {
		s.RoomFlags = make(map[string]map[string]bool)
	}
	if s.RoomFlags[roomID] == nil {
		s.RoomFlags[roomID] = make(map[string]bool)
	}
	s.RoomFlags[roomID][flag] = true
}

// HasRoomFlag reports whether a room-scoped flag is set.
func (s *State) HasRoomFlag(roomID, flag string) bool {
	return s.RoomFlags[roomID][flag]
}
