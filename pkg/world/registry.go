package world

import (
	"fmt"
	"sort"
)

// Registry is the static world: item definitions and ordered maps. It is
// built once at startup and read-only afterwards; sessions copy the mutable
// parts (room item lists) out of it.
type Registry struct {
	items map[string]ItemDef
	maps  map[string]*MapDef
	rooms map[string]map[string]*Room // map ID → room ID → room definition
	order []string                    // map IDs in progression order
}

// MapSummary is the listing form of a map.
type MapSummary struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// NewRegistry builds a registry from item and map definitions. Maps are
// ordered by their Sequence field. Definitions with duplicate or missing IDs
// are rejected; deeper cross-reference checks live in cmd/validate.
func NewRegistry(items []ItemDef, maps []MapDef) (*Registry, error) {
	r := &Registry{
		items: make(map[string]ItemDef, len(items)),
		maps:  make(map[string]*MapDef, len(maps)),
		rooms: make(map[string]map[string]*Room, len(maps)),
	}

	for _, it := range items {
		if it.ID == "" {
			return nil, fmt.Errorf("item %q has no id", it.Name)
		}
		if _, ok := r.items[it.ID]; ok {
			return nil, fmt.Errorf("duplicate item id %q", it.ID)
		}
		r.items[it.ID] = it
	}

	for i := range maps {
		m := maps[i]
		if m.ID == "" {
			return nil, fmt.Errorf("map %q has no id", m.Name)
		}
		if _, ok := r.maps[m.ID]; ok {
			return nil, fmt.Errorf("duplicate map id %q", m.ID)
		}
		byID := make(map[string]*Room, len(m.Rooms))
		for j := range m.Rooms {
			room := &m.Rooms[j]
			if room.ID == "" {
				return nil, fmt.Errorf("map %q: room %q has no id", m.ID, room.Name)
			}
			if _, ok := byID[room.ID]; ok {
				return nil, fmt.Errorf("map %q: duplicate room id %q", m.ID, room.ID)
			}
			byID[room.ID] = room
		}
		if _, ok := byID[m.StartRoomID]; !ok {
			return nil, fmt.Errorf("map %q: start room %q not declared", m.ID, m.StartRoomID)
		}
		r.maps[m.ID] = &maps[i]
		r.rooms[m.ID] = byID
		r.order = append(r.order, m.ID)
	}

	sort.SliceStable(r.order, func(a, b int) bool {
		return r.maps[r.order[a]].Sequence < r.maps[r.order[b]].Sequence
	})

	if len(r.order) == 0 {
		return nil, fmt.Errorf("registry has no maps")
	}
	return r, nil
}

// Item looks up an item definition by ID.
func (r *Registry) Item(id string) (ItemDef, bool) {
	it, ok := r.items[id]
	return it, ok
}

// ItemName returns the item's display name, falling back to the raw ID for
// unknown items.
func (r *Registry) ItemName(id string) string {
	if it, ok := r.items[id]; ok {
		return it.Name
	}
	return id
}

// Items returns all item definitions, sorted by ID.
func (r *Registry) Items() []ItemDef {
	out := make([]ItemDef, 0, len(r.items))
	for _, it := range r.items {
		out = append(out, it)
	}
	sort.Slice(out, func(a, b int) bool { return out[a].ID < out[b].ID })
	return out
}

// Map looks up a map definition by ID.
func (r *Registry) Map(id string) (*MapDef, bool) {
	m, ok := r.maps[id]
	return m, ok
}

// Room looks up a room definition within a map.
func (r *Registry) Room(mapID, roomID string) (*Room, bool) {
	rooms, ok := r.rooms[mapID]
	if !ok {
		return nil, false
	}
	room, ok := rooms[roomID]
	return room, ok
}

// FirstMapID returns the first map in the progression.
func (r *Registry) FirstMapID() string {
	return r.order[0]
}

// NextMapID returns the map that follows mapID in the progression. The
// second return is false when mapID is last or unknown.
func (r *Registry) NextMapID(mapID string) (string, bool) {
	for i, id := range r.order {
		if id == mapID && i < len(r.order)-1 {
			return r.order[i+1], true
		}
	}
	return "", false
}

// StartRoomID returns the starting room for a map, or "" for unknown maps.
func (r *Registry) StartRoomID(mapID string) string {
	if m, ok := r.maps[mapID]; ok {
		return m.StartRoomID
	}
	return ""
}

// MaxScore returns the maximum achievable score for a map, or 0 for unknown
// maps.
func (r *Registry) MaxScore(mapID string) int {
	if m, ok := r.maps[mapID]; ok {
		return m.MaxScore
	}
	return 0
}

// MapSummaries lists the maps in progression order.
func (r *Registry) MapSummaries() []MapSummary {
	out := make([]MapSummary, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, MapSummary{ID: id, Name: r.maps[id].Name})
	}
	return out
}
