// Package catalog supplies machine records from the catalog CSV and holds
// the in-memory snapshot the matcher reads from.
package catalog

import (
	"encoding/csv"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/autobake/backend/internal/domain"
)

// Catalog column headers, exactly as they appear in the source sheet.
const (
	colMachineName = "Machine Name"
	colCompanyName = "Company Name"
	colCategory    = "Category"
	colProducts    = "Products"
	colDoughMin    = "Dough Min (g)"
	colDoughMax    = "Dough Max (g)"
	colCapacity    = "Production Capacity (pcs/hr)"
	colKeyFeatures = "Key Features / Notes"
)

// CSVLoader reads machine records from a catalog CSV file.
type CSVLoader struct {
	path string
}

// NewCSVLoader creates a loader for the given CSV path
func NewCSVLoader(path string) *CSVLoader {
	return &CSVLoader{path: path}
}

// Load reads and parses the full catalog. Cells are trimmed, the Products
// field is lowercased, fully duplicated rows are dropped, and numeric cells
// that fail to parse are kept as raw strings with an unknown parsed value.
// A malformed cell never fails the load.
func (l *CSVLoader) Load() ([]domain.MachineRecord, error) {
	f, err := os.Open(l.path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrCatalogUnavailable, err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrCatalogUnavailable, err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: %s is empty", domain.ErrCatalogUnavailable, l.path)
	}

	index := headerIndex(rows[0])
	if _, ok := index[colProducts]; !ok {
		log.Printf("[CATALOG] WARNING: %q column not found in %s; records will match no products", colProducts, l.path)
	}

	records := make([]domain.MachineRecord, 0, len(rows)-1)
	seen := make(map[string]struct{}, len(rows)-1)
	for _, row := range rows[1:] {
		key := strings.Join(row, "\x1f")
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		records = append(records, recordFromRow(row, index))
	}

	log.Printf("[CATALOG] loaded %d machines from %s", len(records), l.path)
	return records, nil
}

// headerIndex maps trimmed column headers to their positions
func headerIndex(header []string) map[string]int {
	index := make(map[string]int, len(header))
	for i, name := range header {
		index[strings.TrimSpace(name)] = i
	}
	return index
}

func recordFromRow(row []string, index map[string]int) domain.MachineRecord {
	rec := domain.MachineRecord{
		Name:         cell(row, index, colMachineName),
		Manufacturer: cell(row, index, colCompanyName),
		Category:     cell(row, index, colCategory),
		Products:     strings.ToLower(cell(row, index, colProducts)),
		DoughMinRaw:  cell(row, index, colDoughMin),
		DoughMaxRaw:  cell(row, index, colDoughMax),
		CapacityRaw:  cell(row, index, colCapacity),
		KeyFeatures:  cell(row, index, colKeyFeatures),
	}

	rec.DoughMin = parseNumeric(rec.DoughMinRaw)
	rec.DoughMax = parseNumeric(rec.DoughMaxRaw)
	rec.Capacity = parseNumeric(rec.CapacityRaw)

	return rec
}

// cell returns the trimmed value at the named column, or "" when the column
// is missing from the header or the row is short.
func cell(row []string, index map[string]int, col string) string {
	i, ok := index[col]
	if !ok || i >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[i])
}

// parseNumeric coerces a catalog cell to a number. Blank, placeholder or
// non-numeric values yield nil ("unknown"), never an error.
func parseNumeric(s string) *float64 {
	trimmed := strings.TrimSpace(s)
	switch strings.ToLower(trimmed) {
	case "", "-", "n/a", "na", "nan":
		return nil
	}

	v, err := strconv.ParseFloat(strings.ReplaceAll(trimmed, ",", ""), 64)
	if err != nil {
		return nil
	}
	return &v
}
