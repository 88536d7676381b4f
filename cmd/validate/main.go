package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/jwebster45206/adventure-engine/pkg/world"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintf(os.Stderr, "Usage: %s <map.json> [more maps...]\n", os.Args[0])
		os.Exit(1)
	}

	items := make(map[string]world.ItemDef)
	for _, it := range world.DefaultItems() {
		items[it.ID] = it
	}

	failed := false
	for _, filename := range os.Args[1:] {
		validator := &MapValidator{items: items}
		if err := validator.validateFile(filename); err != nil {
			fmt.Fprintf(os.Stderr, "Validation failed: %v\n", err)
			failed = true
			continue
		}
		fmt.Printf("%s is valid!\n", filename)
	}
	if failed {
		os.Exit(1)
	}
}

type MapValidator struct {
	items  map[string]world.ItemDef
	errors []string
}

func (v *MapValidator) validateFile(filename string) error {
	fmt.Printf("Validating %s...\n", filename)

	baseName := filepath.Base(filename)
	if !strings.HasSuffix(baseName, ".json") {
		return fmt.Errorf("map file must have .json extension: %s", baseName)
	}

	nameWithoutExt := strings.TrimSuffix(baseName, ".json")
	if !isValidMapFilename(nameWithoutExt) {
		return fmt.Errorf("map filename '%s' must be lowercase snake_case (e.g., my_map.json, not my-map.json or MyMap.json)", baseName)
	}

	data, err := os.ReadFile(filename)
	if err != nil {
		return fmt.Errorf("failed to read file %s: %w", filename, err)
	}

	if !json.Valid(data) {
		return fmt.Errorf("file %s contains invalid JSON", filename)
	}

	var m world.MapDef
	if err := json.Unmarshal(data, &m); err != nil {
		return fmt.Errorf("failed to unmarshal map: %w", err)
	}

	v.errors = nil
	v.validateMap(&m)

	if len(v.errors) > 0 {
		return fmt.Errorf("map %s has %d problem(s):\n  - %s",
			m.ID, len(v.errors), strings.Join(v.errors, "\n  - "))
	}
	return nil
}

func (v *MapValidator) errorf(format string, args ...interface{}) {
	v.errors = append(v.errors, fmt.Sprintf(format, args...))
}

func (v *MapValidator) validateMap(m *world.MapDef) {
	if m.ID == "" {
		v.errorf("map has no id")
	}
	if m.Name == "" {
		v.errorf("map has no name")
	}
	if m.Sequence < 1 {
		v.errorf("sequence must be >= 1, got %d", m.Sequence)
	}
	if len(m.Rooms) == 0 {
		v.errorf("map has no rooms")
		return
	}

	rooms := make(map[string]bool, len(m.Rooms))
	for _, r := range m.Rooms {
		if r.ID == "" {
			v.errorf("room %q has no id", r.Name)
			continue
		}
		if rooms[r.ID] {
			v.errorf("duplicate room id %q", r.ID)
		}
		rooms[r.ID] = true
	}

	for _, r := range m.Rooms {
		for dir, dest := range r.Exits {
			if !world.IsDirectionWord(dir) {
				v.errorf("room %q: %q is not a direction", r.ID, dir)
			}
			if !rooms[dest] {
				v.errorf("room %q: exit %s leads to undeclared room %q", r.ID, dir, dest)
			}
		}
		for _, itemID := range r.Items {
			if _, ok := v.items[itemID]; !ok {
				v.errorf("room %q: unknown item %q", r.ID, itemID)
			}
		}
	}

	if !rooms[m.StartRoomID] {
		v.errorf("start room %q not declared", m.StartRoomID)
	}
	if !rooms[m.Win.RoomID] {
		v.errorf("win condition room %q not declared", m.Win.RoomID)
	}
	if _, ok := v.items[m.Win.ItemID]; !ok {
		v.errorf("win condition item %q is unknown", m.Win.ItemID)
	}

	for _, le := range m.LockedExits {
		if !rooms[le.FromRoomID] {
			v.errorf("locked exit: from room %q not declared", le.FromRoomID)
		}
		if !rooms[le.ToRoomID] {
			v.errorf("locked exit: to room %q not declared", le.ToRoomID)
		}
		if !world.IsDirectionWord(le.Direction) {
			v.errorf("locked exit: %q is not a direction", le.Direction)
		}
		if _, ok := v.items[le.KeyID]; !ok {
			v.errorf("locked exit: key item %q is unknown", le.KeyID)
		}
		if le.Flag == "" {
			v.errorf("locked exit %s→%s has no flag", le.FromRoomID, le.ToRoomID)
		}
	}
}

var mapFilenamePattern = regexp.MustCompile(`^[a-z0-9]+(_[a-z0-9]+)*$`)

func isValidMapFilename(name string) bool {
	return mapFilenamePattern.MatchString(name)
}
