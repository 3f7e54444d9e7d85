package grid

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/markmahoney/the-grid/internal/catalog"
)

var httpClient = &http.Client{Timeout: 25 * time.Second}

// Load reads the grid from source, which may be a local .csv or .xlsx path
// or an http(s) URL serving CSV (e.g. a published Google Sheet export).
// sheet selects the worksheet for .xlsx sources; empty means the first.
func Load(ctx context.Context, source, sheet string, cols Columns) ([]Row, error) {
	if strings.HasPrefix(source, "http://") || strings.HasPrefix(source, "https://") {
		return loadCSVURL(ctx, source, cols)
	}
	if strings.EqualFold(filepath.Ext(source), ".xlsx") {
		return loadXLSX(source, sheet, cols)
	}
	return loadCSVFile(source, cols)
}

func loadCSVFile(path string, cols Columns) ([]Row, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("grid: open %s: %w", path, err)
	}
	defer f.Close()

	rows, err := readCSV(f, cols)
	if err != nil {
		return nil, fmt.Errorf("grid: %s: %w", path, err)
	}
	return rows, nil
}

func loadCSVURL(ctx context.Context, url string, cols Columns) ([]Row, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	resp, err := httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("grid: fetch %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		b, _ := io.ReadAll(io.LimitReader(resp.Body, 4<<10))
		return nil, fmt.Errorf("grid: status %d for %s: %s", resp.StatusCode, url, string(b))
	}

	rows, err := readCSV(resp.Body, cols)
	if err != nil {
		return nil, fmt.Errorf("grid: %s: %w", url, err)
	}
	return rows, nil
}

func readCSV(r io.Reader, cols Columns) ([]Row, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	records, err := cr.ReadAll()
	if err != nil {
		return nil, err
	}
	return fromRecords(records, cols)
}

func loadXLSX(path, sheet string, cols Columns) ([]Row, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("grid: open %s: %w", path, err)
	}
	defer f.Close()

	if sheet == "" {
		sheet = f.GetSheetName(0)
	}
	records, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("grid: read sheet %q: %w", sheet, err)
	}

	rows, err := fromRecords(records, cols)
	if err != nil {
		return nil, fmt.Errorf("grid: %s: %w", path, err)
	}
	return rows, nil
}

// fromRecords maps the header row to column positions and converts the rest
// to Rows in input order. Fully blank lines are dropped; anything else is
// kept for the matcher to judge.
func fromRecords(records [][]string, cols Columns) ([]Row, error) {
	if len(records) == 0 {
		return nil, fmt.Errorf("empty sheet, expected a header row")
	}

	idx, err := headerIndex(records[0], cols)
	if err != nil {
		return nil, err
	}

	rows := make([]Row, 0, len(records)-1)
	for _, rec := range records[1:] {
		row := Row{
			Weapon: cell(rec, idx.weapon),
			Perk1:  cell(rec, idx.perk1),
			Perk2:  cell(rec, idx.perk2),
		}
		if row.Weapon == "" && row.Perk1 == "" && row.Perk2 == "" {
			continue
		}
		rows = append(rows, row)
	}
	return rows, nil
}

type columnIndex struct {
	weapon, perk1, perk2 int
}

func headerIndex(header []string, cols Columns) (columnIndex, error) {
	find := func(name string) (int, error) {
		want := catalog.Normalize(name)
		for i, h := range header {
			if catalog.Normalize(h) == want {
				return i, nil
			}
		}
		return 0, fmt.Errorf("header has no %q column", name)
	}

	var idx columnIndex
	var err error
	if idx.weapon, err = find(cols.Weapon); err != nil {
		return columnIndex{}, err
	}
	if idx.perk1, err = find(cols.Perk1); err != nil {
		return columnIndex{}, err
	}
	if idx.perk2, err = find(cols.Perk2); err != nil {
		return columnIndex{}, err
	}
	return idx, nil
}

func cell(rec []string, i int) string {
	if i >= len(rec) {
		return ""
	}
	return strings.TrimSpace(rec[i])
}
