package world

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
)

// LoadDir builds a registry from a data directory laid out as:
//
//	<dir>/items.json   — array of item definitions
//	<dir>/maps/*.json  — one map definition per file
//
// This is the authorable form of the built-in content; cmd/validate lints
// the map files against the same rules NewRegistry enforces plus
// cross-reference checks.
func LoadDir(dir string) (*Registry, error) {
	items, err := loadItems(filepath.Join(dir, "items.json"))
	if err != nil {
		return nil, err
	}

	maps, err := loadMaps(filepath.Join(dir, "maps"))
	if err != nil {
		return nil, err
	}

	return NewRegistry(items, maps)
}

func loadItems(path string) ([]ItemDef, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read items file: %w", err)
	}

	var items []ItemDef
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, fmt.Errorf("failed to unmarshal items file %s: %w", path, err)
	}
	return items, nil
}

func loadMaps(dir string) ([]MapDef, error) {
	var paths []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && filepath.Ext(path) == ".json" {
			paths = append(paths, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to walk maps directory: %w", err)
	}
	sort.Strings(paths)

	maps := make([]MapDef, 0, len(paths))
	for _, path := range paths {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read map file %s: %w", path, err)
		}
		var m MapDef
		if err := json.Unmarshal(data, &m); err != nil {
			return nil, fmt.Errorf("failed to unmarshal map file %s: %w", path, err)
		}
		maps = append(maps, m)
	}
	return maps, nil
}
