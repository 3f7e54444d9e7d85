package grid

// Row is one curated spreadsheet line, fields exactly as entered. Rows are
// immutable and keep their input order through the whole pipeline.
type Row struct {
	Weapon string
	Perk1  string
	Perk2  string
}

// Columns names the three required header cells. Header matching is by
// normalized name, so "perk 1" and "Perk 1" find the same column.
type Columns struct {
	Weapon string
	Perk1  string
	Perk2  string
}

func DefaultColumns() Columns {
	return Columns{Weapon: "Weapon", Perk1: "Perk 1", Perk2: "Perk 2"}
}
