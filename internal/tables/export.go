package tables

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/xuri/excelize/v2"

	"github.com/markmahoney/the-grid/internal/bungie"
	"github.com/markmahoney/the-grid/internal/catalog"
)

// Export writes the weapon and perk name/hash lookup tables to one
// workbook, a sheet each, sorted by display name so successive exports diff
// cleanly against the curated sheet.
func Export(path string, ix *catalog.Index) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := writeSheet(f, "Weapons", ix.WeaponTable()); err != nil {
		return err
	}
	if err := writeSheet(f, "Perks", ix.PerkTable()); err != nil {
		return err
	}
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return err
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	return f.SaveAs(path)
}

func writeSheet(f *excelize.File, sheet string, table map[bungie.Hash]string) error {
	if _, err := f.NewSheet(sheet); err != nil {
		return err
	}
	f.SetCellValue(sheet, "A1", "Name")
	f.SetCellValue(sheet, "B1", "Hash")

	type entry struct {
		name string
		hash bungie.Hash
	}
	entries := make([]entry, 0, len(table))
	for h, n := range table {
		entries = append(entries, entry{name: n, hash: h})
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].name != entries[j].name {
			return entries[i].name < entries[j].name
		}
		return entries[i].hash < entries[j].hash
	})

	for i, e := range entries {
		row := i + 2
		f.SetCellValue(sheet, fmt.Sprintf("A%d", row), e.name)
		f.SetCellValue(sheet, fmt.Sprintf("B%d", row), uint32(e.hash))
	}
	return nil
}
