package tools

/*
Loads the list of items to scan.
Format: [[item_id, "Item Name"], ...]. {"id": .., "name": ..} objects are also accepted,
and comments or trailing commas are tolerated.
*/

import (
	"errors"
	"fmt"
	"os"

	"github.com/titanous/json5"
)

var ErrItemDatabaseNotFound = errors.New("item database not found")

func LoadItems(path string) ([]Item, error) {
	raw, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("%w at %s", ErrItemDatabaseNotFound, path)
	}
	if err != nil {
		return nil, err
	}

	var entries []any
	if err := json5.Unmarshal(raw, &entries); err != nil {
		return nil, fmt.Errorf("failed to parse item database %s: %w", path, err)
	}

	items := make([]Item, 0, len(entries))
	for i, entry := range entries {
		item, err := parseItemEntry(entry)
		if err != nil {
			return nil, fmt.Errorf("item database %s, entry %d: %w", path, i, err)
		}
		items = append(items, item)
	}
	return items, nil
}

func parseItemEntry(entry any) (Item, error) {
	switch e := entry.(type) {
	case []any:
		if len(e) != 2 {
			return Item{}, fmt.Errorf("expected [id, name], got %d values", len(e))
		}
		return newItem(e[0], e[1])
	case map[string]any:
		return newItem(e["id"], e["name"])
	}
	return Item{}, fmt.Errorf("unsupported entry %v", entry)
}

func newItem(id any, name any) (Item, error) {
	idF, ok := id.(float64)
	if !ok || idF <= 0 || idF != float64(int(idF)) {
		return Item{}, fmt.Errorf("invalid item id %v", id)
	}
	nameS, ok := name.(string)
	if !ok || nameS == "" {
		return Item{}, fmt.Errorf("invalid item name %v", name)
	}
	return Item{ID: int(idF), Name: nameS}, nil
}
