package catalog

import (
	"github.com/markmahoney/the-grid/internal/bungie"
)

// randomRollPerks walks one weapon's sockets and collects every perk hash
// obtainable from a randomized plug set. Fixed sockets carry no plug-set
// reference and contribute nothing. Set semantics dedup across sockets and
// across repeated references to the same plug set.
func randomRollPerks(item bungie.InventoryItemDef, plugSets map[bungie.Hash]bungie.PlugSetDef) (map[bungie.Hash]struct{}, error) {
	perks := make(map[bungie.Hash]struct{})
	if item.Sockets == nil {
		return perks, nil
	}
	for _, entry := range item.Sockets.SocketEntries {
		if entry.RandomizedPlugSetHash == nil {
			continue
		}
		set, ok := plugSets[*entry.RandomizedPlugSetHash]
		if !ok {
			return nil, &MissingReferenceError{Kind: "plug set", Ref: *entry.RandomizedPlugSetHash, Item: item.Hash}
		}
		for _, plug := range set.ReusablePlugItems {
			perks[plug.PlugItemHash] = struct{}{}
		}
	}
	return perks, nil
}

// resolveRandomRolls aggregates obtainable perk hashes over every weapon
// and maps each one back to its display name via the item table.
func resolveRandomRolls(weapons []bungie.InventoryItemDef, defs bungie.Definitions) (map[bungie.Hash]string, error) {
	all := make(map[bungie.Hash]struct{})
	for _, w := range weapons {
		perks, err := randomRollPerks(w, defs.PlugSets)
		if err != nil {
			return nil, err
		}
		for h := range perks {
			all[h] = struct{}{}
		}
	}

	names := make(map[bungie.Hash]string, len(all))
	for h := range all {
		item, ok := defs.Items[h]
		if !ok {
			return nil, &MissingReferenceError{Kind: "plug item", Ref: h}
		}
		names[h] = item.DisplayProperties.Name
	}
	return names, nil
}
