package catalog

import (
	"fmt"

	"github.com/markmahoney/the-grid/internal/bungie"
)

// SchemaDriftError means the catalog no longer has the structure the index
// is built on: the weapon category cannot be located unambiguously. There
// is no alternate join key, so callers must abort the run.
type SchemaDriftError struct {
	Category string
	Count    int
}

func (e *SchemaDriftError) Error() string {
	if e.Count == 0 {
		return fmt.Sprintf("catalog: no item category named %q", e.Category)
	}
	return fmt.Sprintf("catalog: %d item categories named %q, want exactly one", e.Count, e.Category)
}

// MissingReferenceError means a definition points at an identifier that is
// absent from its table. A partially resolved perk set looks identical to a
// legitimately small one, so resolution aborts instead of omitting.
type MissingReferenceError struct {
	Kind string // "plug set" or "plug item"
	Ref  bungie.Hash
	Item bungie.Hash // the weapon whose resolution hit the dangling ref, 0 if none
}

func (e *MissingReferenceError) Error() string {
	if e.Item != 0 {
		return fmt.Sprintf("catalog: %s %d referenced by item %d not found", e.Kind, e.Ref, e.Item)
	}
	return fmt.Sprintf("catalog: %s %d not found", e.Kind, e.Ref)
}
