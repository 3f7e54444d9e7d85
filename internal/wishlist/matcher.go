package wishlist

import (
	"github.com/rs/zerolog"

	"github.com/markmahoney/the-grid/internal/bungie"
	"github.com/markmahoney/the-grid/internal/catalog"
	"github.com/markmahoney/the-grid/internal/grid"
)

// Match is one reconciled grid row: catalog hashes plus the source row for
// building the notes comment.
type Match struct {
	Weapon bungie.Hash
	Perk1  bungie.Hash
	Perk2  bungie.Hash
	Row    grid.Row
}

// MatchRows resolves grid rows against the index, strictly in input order.
// A row missing any of its three names is dropped whole with one diagnostic
// naming the missing field; surrounding rows are unaffected.
func MatchRows(rows []grid.Row, ix *catalog.Index, log zerolog.Logger) []Match {
	matches := make([]Match, 0, len(rows))
	for i, row := range rows {
		weapon, ok := ix.Weapon(row.Weapon)
		if !ok {
			log.Warn().Int("row", i+1).Str("weapon", row.Weapon).Msg("weapon not in catalog, row skipped")
			continue
		}
		perk1, ok := ix.Perk(row.Perk1)
		if !ok {
			log.Warn().Int("row", i+1).Str("perk", row.Perk1).Msg("perk not in catalog, row skipped")
			continue
		}
		perk2, ok := ix.Perk(row.Perk2)
		if !ok {
			log.Warn().Int("row", i+1).Str("perk", row.Perk2).Msg("perk not in catalog, row skipped")
			continue
		}
		matches = append(matches, Match{Weapon: weapon, Perk1: perk1, Perk2: perk2, Row: row})
	}
	return matches
}
