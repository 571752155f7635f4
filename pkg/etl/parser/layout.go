package parser

import (
	"strings"

	"github.com/DanCas03/IA-Proyecto-Final/pkg/etl/models"
)

// LayoutParams holds parameters for multi-table layout detection.
type LayoutParams struct {
	// MaxScanRows is how many leading rows to inspect for a title row.
	MaxScanRows int
	// TitleThreshold is the similarity floor for a cell to count as a
	// category title. Stricter than sheet-name matching because every
	// scanned cell is a candidate.
	TitleThreshold int
	// MinSpacing is the minimum column distance between consecutive
	// title cells. Rejects coincidental single-cell matches that are
	// not true parallel-table headers.
	MinSpacing int
	// RegionCols is the column window granted to each region's header
	// search.
	RegionCols int
	// MinRegions is how many distinct category titles a row needs to
	// qualify as a multi-table title row.
	MinRegions int
}

// DefaultLayoutParams returns detection parameters tuned for the known
// corpus format: three category tables placed five or more columns
// apart on one sheet. Differently shaped multi-table inputs need these
// adjusted.
func DefaultLayoutParams() LayoutParams {
	return LayoutParams{
		MaxScanRows:    20,
		TitleThreshold: 75,
		MinSpacing:     5,
		RegionCols:     7,
		MinRegions:     3,
	}
}

// Layout describes what DetectLayout found on a sheet.
type Layout struct {
	// MultiTable reports whether the sheet holds several side-by-side
	// tables.
	MultiTable bool
	// TitleRow is the 0-based row holding the category titles. Only
	// meaningful when MultiTable is true.
	TitleRow int
	// Regions are the detected per-category column ranges, in column
	// order.
	Regions []models.TableRegion
}

// DetectLayout decides whether a sheet is one logical table or several
// tables placed side by side. It scans the leading rows for a row where
// the cells looking like category titles cover at least MinRegions
// distinct categories and every pair of consecutive title columns is at
// least MinSpacing apart; the first qualifying row seeds the regions,
// one per title cell. Sheets without one are treated as single-table.
func DetectLayout(rows [][]string, categories []models.PatternSet, p LayoutParams) Layout {
	limit := min(p.MaxScanRows, len(rows))
	for rowIdx := 0; rowIdx < limit; rowIdx++ {
		hits := titleHits(rows[rowIdx], categories, p.TitleThreshold)
		if distinctKeys(hits) < p.MinRegions {
			continue
		}
		if !spacedApart(hits, p.MinSpacing) {
			continue
		}
		return Layout{
			MultiTable: true,
			TitleRow:   rowIdx,
			Regions:    buildRegions(hits, p.RegionCols),
		}
	}
	return Layout{}
}

type titleHit struct {
	col int
	key string
}

// titleHits returns every cell of the row that matches a category
// title, duplicates included, in ascending column order. The spacing
// check must see all title-like cells: a second title of an already
// matched category sitting too close still disqualifies the row.
func titleHits(row []string, categories []models.PatternSet, threshold int) []titleHit {
	var hits []titleHit
	for col, cell := range row {
		if strings.TrimSpace(cell) == "" {
			continue
		}
		key := MatchKey(cell, categories, threshold)
		if key == "" {
			continue
		}
		hits = append(hits, titleHit{col: col, key: key})
	}
	return hits
}

// distinctKeys counts the distinct categories among the hits.
func distinctKeys(hits []titleHit) int {
	seen := map[string]bool{}
	for _, h := range hits {
		seen[h.key] = true
	}
	return len(seen)
}

// spacedApart reports whether consecutive hit columns are at least
// minSpacing apart.
func spacedApart(hits []titleHit, minSpacing int) bool {
	for i := 1; i < len(hits); i++ {
		if hits[i].col-hits[i-1].col < minSpacing {
			return false
		}
	}
	return true
}

// buildRegions grants each hit a column window, clipped at the next
// hit's start column so regions never share columns even when the
// window exceeds the spacing minimum.
func buildRegions(hits []titleHit, regionCols int) []models.TableRegion {
	regions := make([]models.TableRegion, len(hits))
	for i, h := range hits {
		end := h.col + regionCols
		if i+1 < len(hits) && hits[i+1].col < end {
			end = hits[i+1].col
		}
		regions[i] = models.TableRegion{Categoria: h.key, C1: h.col, C2: end}
	}
	return regions
}
