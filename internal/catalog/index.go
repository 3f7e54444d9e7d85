package catalog

import (
	"slices"

	"github.com/rs/zerolog"

	"github.com/markmahoney/the-grid/internal/bungie"
)

const weaponCategoryName = "Weapon"

// Index maps normalized names to catalog hashes for weapons and for every
// perk obtainable as a random roll. Built once per run from freshly fetched
// definitions, read-only afterwards.
type Index struct {
	weapons map[string]bungie.Hash
	perks   map[string]bungie.Hash

	weaponNames map[bungie.Hash]string
	perkNames   map[bungie.Hash]string
}

// Build constructs the index. It fails with SchemaDriftError when the
// "Weapon" category cannot be found exactly once, and with
// MissingReferenceError when roll resolution hits a dangling identifier.
func Build(defs bungie.Definitions, log zerolog.Logger) (*Index, error) {
	weaponCat, err := findWeaponCategory(defs.Categories)
	if err != nil {
		return nil, err
	}

	ix := &Index{
		weapons:     make(map[string]bungie.Hash),
		perks:       make(map[string]bungie.Hash),
		weaponNames: make(map[bungie.Hash]string),
		perkNames:   make(map[bungie.Hash]string),
	}

	// Hashes are registered in ascending order so a normalized-name
	// collision resolves the same way every run.
	weapons := make([]bungie.InventoryItemDef, 0, 1024)
	for _, h := range sortedHashes(defs.Items) {
		item := defs.Items[h]
		if !slices.Contains(item.ItemCategoryHashes, weaponCat) {
			continue
		}
		weapons = append(weapons, item)
		ix.weaponNames[h] = item.DisplayProperties.Name
		register(ix.weapons, item.DisplayProperties.Name, h, "weapon", log)
	}

	perkNames, err := resolveRandomRolls(weapons, defs)
	if err != nil {
		return nil, err
	}
	for _, h := range sortedHashes(perkNames) {
		ix.perkNames[h] = perkNames[h]
		register(ix.perks, perkNames[h], h, "perk", log)
	}

	log.Info().
		Int("weapons", len(ix.weaponNames)).
		Int("perks", len(ix.perkNames)).
		Msg("catalog index built")
	return ix, nil
}

// Weapon resolves a raw weapon name to its catalog hash.
func (ix *Index) Weapon(name string) (bungie.Hash, bool) {
	h, ok := ix.weapons[Normalize(name)]
	return h, ok
}

// Perk resolves a raw perk name to its catalog hash.
func (ix *Index) Perk(name string) (bungie.Hash, bool) {
	h, ok := ix.perks[Normalize(name)]
	return h, ok
}

// WeaponTable returns hash→display name for every weapon in the index.
func (ix *Index) WeaponTable() map[bungie.Hash]string {
	return copyTable(ix.weaponNames)
}

// PerkTable returns hash→display name for every random-roll perk.
func (ix *Index) PerkTable() map[bungie.Hash]string {
	return copyTable(ix.perkNames)
}

func copyTable(m map[bungie.Hash]string) map[bungie.Hash]string {
	out := make(map[bungie.Hash]string, len(m))
	for h, n := range m {
		out[h] = n
	}
	return out
}

// findWeaponCategory scans the full category table instead of stopping at
// the first match: zero or multiple candidates both mean the catalog schema
// has drifted from what the join relies on.
func findWeaponCategory(categories map[bungie.Hash]bungie.ItemCategoryDef) (bungie.Hash, error) {
	var found []bungie.Hash
	for h, c := range categories {
		if c.DisplayProperties.Name == weaponCategoryName {
			found = append(found, h)
		}
	}
	if len(found) != 1 {
		return 0, &SchemaDriftError{Category: weaponCategoryName, Count: len(found)}
	}
	return found[0], nil
}

func register(m map[string]bungie.Hash, name string, h bungie.Hash, kind string, log zerolog.Logger) {
	key := Normalize(name)
	if key == "" {
		return
	}
	if prev, ok := m[key]; ok {
		log.Warn().
			Str("kind", kind).
			Str("key", key).
			Uint32("kept", uint32(prev)).
			Uint32("dropped", uint32(h)).
			Msg("duplicate normalized name")
		return
	}
	m[key] = h
}

func sortedHashes[T any](m map[bungie.Hash]T) []bungie.Hash {
	out := make([]bungie.Hash, 0, len(m))
	for h := range m {
		out = append(out, h)
	}
	slices.Sort(out)
	return out
}
