package parser

import (
	"strings"

	"github.com/DanCas03/IA-Proyecto-Final/pkg/etl/models"
)

// ColumnMapping maps canonical field keys to 0-based column indexes
// within a sheet or region. Each field key is assigned at most one
// column.
type ColumnMapping map[string]int

// HeaderSearch bounds header-row location.
type HeaderSearch struct {
	// MaxRows is how many leading rows to inspect.
	MaxRows int
	// Threshold is the minimum similarity for a cell to map to a
	// canonical field.
	Threshold int
	// MandatoryField is the field key a row must map for the row to
	// qualify as a header.
	MandatoryField string
}

// DefaultHeaderSearch returns the header search bounds tuned for the
// known corpus.
func DefaultHeaderSearch() HeaderSearch {
	return HeaderSearch{
		MaxRows:        20,
		Threshold:      60,
		MandatoryField: models.FieldTexto,
	}
}

// FindHeaderRow scans the leading rows of a grid top-down and returns
// the first row whose non-empty cells map to a ColumnMapping containing
// the mandatory field, together with that mapping. Later rows are not
// considered once a row qualifies. Returns -1 and nil when no row
// within the bound qualifies.
func FindHeaderRow(rows [][]string, fields []models.PatternSet, p HeaderSearch) (int, ColumnMapping) {
	limit := min(p.MaxRows, len(rows))
	for rowIdx := 0; rowIdx < limit; rowIdx++ {
		mapping := mapHeaderCells(rows[rowIdx], 0, len(rows[rowIdx]), fields, p.Threshold)
		if _, ok := mapping[p.MandatoryField]; ok {
			return rowIdx, mapping
		}
	}
	return -1, nil
}

// FindRegionHeader searches the bounded row window below a multi-table
// title row for a header row scoped to one region's columns. Returns -1
// and nil when the window holds no qualifying row; the region then
// contributes no records.
func FindRegionHeader(rows [][]string, region models.TableRegion, titleRow, searchRows int, fields []models.PatternSet, p HeaderSearch) (int, ColumnMapping) {
	last := titleRow + searchRows
	for rowIdx := titleRow + 1; rowIdx <= last && rowIdx < len(rows); rowIdx++ {
		mapping := mapHeaderCells(rows[rowIdx], region.C1, region.C2, fields, p.Threshold)
		if _, ok := mapping[p.MandatoryField]; ok {
			return rowIdx, mapping
		}
	}
	return -1, nil
}

// mapHeaderCells fuzzy-matches the cells of row within [c1, c2) against
// the field catalog. The leftmost matching column keeps a field key;
// later duplicates are ignored.
func mapHeaderCells(row []string, c1, c2 int, fields []models.PatternSet, threshold int) ColumnMapping {
	mapping := ColumnMapping{}
	if c2 > len(row) {
		c2 = len(row)
	}
	for col := max(c1, 0); col < c2; col++ {
		if strings.TrimSpace(row[col]) == "" {
			continue
		}
		key := MatchKey(row[col], fields, threshold)
		if key == "" {
			continue
		}
		if _, taken := mapping[key]; !taken {
			mapping[key] = col
		}
	}
	return mapping
}
